package app

import (
	"quiz_catalog_backend/docs"
	"quiz_catalog_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 主题
		api.GET("/topics", c.topic.ListTopics)
		api.POST("/topics", c.topic.CreateTopic)
		api.GET("/topics/slug/:slug", c.topic.GetTopicBySlug)
		api.GET("/topics/:id", c.topic.GetTopic)
		api.PUT("/topics/:id", c.topic.UpdateTopic)
		api.DELETE("/topics/:id", c.topic.DeleteTopic)
		api.GET("/topics/:id/questions", c.question.GetQuestionsByTopic)

		// 题目
		api.GET("/questions", c.question.ListQuestions)
		api.POST("/questions", c.question.CreateQuestion)
		api.GET("/questions/type/:type", c.question.GetQuestionsByType)
		api.GET("/questions/search/:query", c.question.SearchQuestions)
		api.GET("/questions/:id", c.question.GetQuestion)
		api.PUT("/questions/:id", c.question.UpdateQuestion)
		api.DELETE("/questions/:id", c.question.DeleteQuestion)

		// 批量导入
		api.POST("/questions/bulk", c.imports.BulkCreate)
		api.POST("/import/upload", c.imports.UploadQuestionBank)
		// 文件名可能带目录前缀，用通配参数接收
		api.POST("/import/files/*name", c.imports.ImportQuestionBank)
	}
}

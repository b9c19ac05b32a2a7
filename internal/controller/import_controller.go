package controller

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"quiz_catalog_backend/internal/model"
	"quiz_catalog_backend/internal/service"
	"quiz_catalog_backend/internal/util"
	"quiz_catalog_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ImportController struct {
	Service *service.QuestionImportService
	Storage *service.StorageService
}

func NewImportController(s *service.QuestionImportService, storage *service.StorageService) *ImportController {
	return &ImportController{Service: s, Storage: storage}
}

// @Summary 批量导入题目
// @Description 整批共用一个事务：任一条失败则整批回滚，created/failed仅用于诊断
// @Tags 导入
// @Accept json
// @Produce json
// @Param request body model.BulkCreateRequest true "主题slug与题目列表"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/bulk [post]
func (c *ImportController) BulkCreate(ctx *gin.Context) {
	var req model.BulkCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.BulkCreate(ctx.Request.Context(), req.TopicSlug, req.Questions)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	monitoring.BulkImportQuestions.WithLabelValues("created").Add(float64(result.Created))
	monitoring.BulkImportQuestions.WithLabelValues("failed").Add(float64(result.Failed))
	util.Success(ctx, result)
}

// @Summary 上传题库文件
// @Tags 导入
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "JSON题库文件"
// @Success 201 {object} util.Response
// @Router /api/import/upload [post]
func (c *ImportController) UploadQuestionBank(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	if filepath.Ext(fileHeader.Filename) != ".json" {
		util.BadRequest(ctx, "only .json question bank files are accepted")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	objectName := fmt.Sprintf("question-banks/%d-%s", time.Now().Unix(), filepath.Base(fileHeader.Filename))
	url, err := c.Storage.Upload(ctx.Request.Context(), objectName, file, fileHeader.Size, "application/json")
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"name": objectName, "url": url})
}

// @Summary 导入已上传的题库文件
// @Description 读取存储中的题库文件并走同一条批量导入管道
// @Tags 导入
// @Produce json
// @Param name path string true "上传时返回的文件名"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/import/files/{name} [post]
func (c *ImportController) ImportQuestionBank(ctx *gin.Context) {
	name := strings.TrimPrefix(ctx.Param("name"), "/")
	result, err := c.Service.ImportFromStorage(ctx.Request.Context(), name)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	monitoring.BulkImportQuestions.WithLabelValues("created").Add(float64(result.Created))
	monitoring.BulkImportQuestions.WithLabelValues("failed").Add(float64(result.Failed))
	util.Success(ctx, result)
}

package controller

import (
	"quiz_catalog_backend/internal/model"
	"quiz_catalog_backend/internal/service"
	"quiz_catalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TopicController struct {
	Service *service.TopicService
}

func NewTopicController(s *service.TopicService) *TopicController {
	return &TopicController{Service: s}
}

// @Summary 获取主题列表
// @Tags 主题
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/topics [get]
func (c *TopicController) ListTopics(ctx *gin.Context) {
	topics, err := c.Service.ListTopics()
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, topics)
}

// @Summary 按ID获取主题
// @Tags 主题
// @Produce json
// @Param id path string true "主题ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/topics/{id} [get]
func (c *TopicController) GetTopic(ctx *gin.Context) {
	topic, err := c.Service.GetTopic(ctx.Param("id"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, topic)
}

// @Summary 按slug获取主题
// @Tags 主题
// @Produce json
// @Param slug path string true "主题slug"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/topics/slug/{slug} [get]
func (c *TopicController) GetTopicBySlug(ctx *gin.Context) {
	topic, err := c.Service.GetTopicBySlug(ctx.Param("slug"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, topic)
}

// @Summary 创建主题
// @Tags 主题
// @Accept json
// @Produce json
// @Param request body model.CreateTopicRequest true "主题信息"
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/topics [post]
func (c *TopicController) CreateTopic(ctx *gin.Context) {
	var req model.CreateTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	topic, err := c.Service.CreateTopic(req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, topic)
}

// @Summary 更新主题
// @Tags 主题
// @Accept json
// @Produce json
// @Param id path string true "主题ID"
// @Param request body model.UpdateTopicRequest true "更新字段"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/topics/{id} [put]
func (c *TopicController) UpdateTopic(ctx *gin.Context) {
	var req model.UpdateTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	topic, err := c.Service.UpdateTopic(ctx.Param("id"), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, topic)
}

// @Summary 删除主题
// @Description 主题下的题目会在同一事务里一并删除
// @Tags 主题
// @Produce json
// @Param id path string true "主题ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/topics/{id} [delete]
func (c *TopicController) DeleteTopic(ctx *gin.Context) {
	if err := c.Service.DeleteTopic(ctx.Request.Context(), ctx.Param("id")); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

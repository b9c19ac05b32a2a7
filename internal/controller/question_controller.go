package controller

import (
	"strconv"

	"quiz_catalog_backend/internal/model"
	"quiz_catalog_backend/internal/service"
	"quiz_catalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(s *service.QuestionService) *QuestionController {
	return &QuestionController{Service: s}
}

// queryInt 解析整型查询参数，缺失或非数字一律回退默认值
func queryInt(ctx *gin.Context, key string, defaultValue int) int {
	raw := ctx.Query(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// @Summary 分页获取题目列表
// @Tags 题目
// @Produce json
// @Param page query int false "页码，默认1"
// @Param limit query int false "每页条数，默认20，最大100"
// @Success 200 {object} util.Response
// @Router /api/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	page := queryInt(ctx, "page", util.DefaultPage)
	limit := queryInt(ctx, "limit", util.DefaultLimit)

	questions, total, page, limit, err := c.Service.ListQuestions(page, limit)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{
		List:  model.ViewList(questions),
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 按ID获取题目
// @Tags 题目
// @Produce json
// @Param id path string true "题目ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	question, err := c.Service.GetQuestion(ctx.Param("id"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, question.View())
}

// @Summary 创建题目
// @Tags 题目
// @Accept json
// @Produce json
// @Param request body model.CreateQuestionRequest true "题目信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req model.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, question.View())
}

// @Summary 更新题目
// @Tags 题目
// @Accept json
// @Produce json
// @Param id path string true "题目ID"
// @Param request body model.UpdateQuestionRequest true "更新字段"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	var req model.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.UpdateQuestion(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, question.View())
}

// @Summary 删除题目
// @Tags 题目
// @Produce json
// @Param id path string true "题目ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	if err := c.Service.DeleteQuestion(ctx.Request.Context(), ctx.Param("id")); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 获取主题下的全部题目
// @Tags 题目
// @Produce json
// @Param id path string true "主题ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/topics/{id}/questions [get]
func (c *QuestionController) GetQuestionsByTopic(ctx *gin.Context) {
	questions, err := c.Service.GetQuestionsByTopic(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, model.ViewList(questions))
}

// @Summary 按类型筛选题目
// @Tags 题目
// @Produce json
// @Param type path string true "题目类型 single/multiple"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/questions/type/{type} [get]
func (c *QuestionController) GetQuestionsByType(ctx *gin.Context) {
	questions, err := c.Service.GetQuestionsByType(ctx.Param("type"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, model.ViewList(questions))
}

// @Summary 搜索题目
// @Description 在题干、解析和主题名上做子串匹配
// @Tags 题目
// @Produce json
// @Param query path string true "搜索关键词"
// @Success 200 {object} util.Response
// @Router /api/questions/search/{query} [get]
func (c *QuestionController) SearchQuestions(ctx *gin.Context) {
	questions, err := c.Service.SearchQuestions(ctx.Param("query"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, model.ViewList(questions))
}

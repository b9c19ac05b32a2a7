package util

import (
	"errors"
	"net/http"

	"quiz_catalog_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// PageResponse 分页响应结构
type PageResponse struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: false,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

// HandleServiceError 把service层错误映射为对应的响应类别
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTopicNotFound), errors.Is(err, ErrQuestionNotFound),
		errors.Is(err, ErrImportFileNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, ErrSlugTaken):
		Conflict(c, err.Error())
	case errors.Is(err, ErrInvalidQuestionType), errors.Is(err, ErrInvalidDifficulty),
		errors.Is(err, ErrTopicNameRequired), errors.Is(err, ErrInvalidImportFile),
		errors.Is(err, ErrInvalidQuestion):
		BadRequest(c, err.Error())
	default:
		LogInternalError(c, err)
	}
}

package controller

import (
	"net/http/httptest"
	"testing"

	"quiz_catalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func TestQueryInt(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		rawQuery string
		key      string
		def      int
		want     int
	}{
		{"missing", "", "limit", util.DefaultLimit, util.DefaultLimit},
		{"numeric", "limit=50", "limit", util.DefaultLimit, 50},
		{"non-numeric falls back to default", "limit=abc", "limit", util.DefaultLimit, util.DefaultLimit},
		{"empty value", "limit=", "limit", util.DefaultLimit, util.DefaultLimit},
		{"non-numeric page", "page=x&limit=5", "page", util.DefaultPage, util.DefaultPage},
		{"trailing garbage", "page=2x", "page", util.DefaultPage, util.DefaultPage},
		// 负数交给service层的范围收敛处理
		{"negative passes through", "page=-3", "page", util.DefaultPage, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/api/questions?"+tt.rawQuery, nil)
			if got := queryInt(c, tt.key, tt.def); got != tt.want {
				t.Errorf("queryInt(%q, %d) = %d, want %d", tt.key, tt.def, got, tt.want)
			}
		})
	}
}

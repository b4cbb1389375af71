package public

import (
	"net/http"
	"time"

	"github.com/haxeuz-store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// NoRoute 未匹配路由
func (h *Handler) NoRoute(c *gin.Context) {
	response.Error(c, http.StatusNotFound, "Not found")
}

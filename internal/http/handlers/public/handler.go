package public

import (
	handlershared "github.com/haxeuz-store/internal/http/handlers/shared"
	"github.com/haxeuz-store/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler 店面公开与用户侧接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建店面处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, status int, msg string, err error) {
	handlershared.RespondError(c, status, msg, err)
}

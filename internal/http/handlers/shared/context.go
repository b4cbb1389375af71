package shared

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetContextUint 从上下文读取 uint 值并统一处理错误响应。
func GetContextUint(c *gin.Context, key string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, http.StatusUnauthorized, "Authentication credentials were not provided.", nil)
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			RespondError(c, http.StatusBadRequest, "Invalid identity", nil)
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			RespondError(c, http.StatusBadRequest, "Invalid identity", nil)
			return 0, false
		}
		return uint(v), true
	default:
		RespondError(c, http.StatusInternalServerError, "Invalid identity", nil)
		return 0, false
	}
}

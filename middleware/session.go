package middleware

import (
	"time"

	"hris/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware gắn sessionId cho mỗi request; app mobile giữ nguyên
// header X-Session-ID giữa clock-in và clock-out để trace theo ca làm việc.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader("X-Session-ID")
		if sessionId == "" {
			// Tạo sessionId mới
			sessionId = uuid.NewString()
		}

		// Gán vào context để dùng trong controller hoặc service
		c.Set("sessionId", sessionId)
		c.Writer.Header().Set("X-Session-ID", sessionId)

		start := time.Now()
		c.Next()

		utils.LogInfo("session=%s %s %s -> %d (%v)",
			sessionId, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

package middlewares

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
)

// UserIDHeader заголовок с идентификатором пользователя, проставляется
// вышестоящим auth-прокси. Сервис доверяет ему и сам токены не проверяет.
const UserIDHeader = "X-User-ID"

const userIDContextKey = "user_id"

// Identity извлекает идентификатор пользователя из заголовка и кладёт его
// в контекст запроса. Запросы без заголовка отклоняются с 401.
func Identity(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			log.Warn("request without identity header",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized",
			})
			return
		}

		c.Set(userIDContextKey, userID)
		c.Next()
	}
}

// UserID возвращает идентификатор пользователя, установленный Identity
func UserID(c *gin.Context) string {
	return c.GetString(userIDContextKey)
}

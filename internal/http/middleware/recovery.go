package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fundsinvestors/backend/internal/http/response"
	"github.com/fundsinvestors/backend/internal/platform/logger"
)

// Recovery is the catch-all boundary: any panic below it is logged and turned
// into a generic 500 envelope. Handlers never see a half-written response.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if log != nil {
			log.Error("Unhandled panic", "panic", recovered, "path", c.Request.URL.Path)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorEnvelope{
			Error: response.APIError{
				Message: "an unexpected error occurred",
				Code:    "internal_error",
			},
		})
	})
}

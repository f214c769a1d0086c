// middlewares/correlation.go
package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CorrelationMiddleware assigns every request a correlation id (or adopts
// the one the client sent), echoes it in the response header, and logs the
// request outcome. Error responses repeat the id in their body so a support
// ticket can be matched to the exact log lines.
func CorrelationMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		corrID := c.GetHeader("X-Correlation-ID")
		if corrID == "" {
			corrID = uuid.NewString()
		}
		c.Set("correlation_id", corrID)
		c.Writer.Header().Set("X-Correlation-ID", corrID)

		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("correlation_id", corrID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)),
		)
	}
}

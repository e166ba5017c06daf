package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"workerconnect/internal/pkg/response"
)

// RequestLogger logs every request with its outcome and recovers from
// handler panics so the client still gets the uniform error envelope.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				log.WithFields(logrus.Fields{
					"method":    c.Request.Method,
					"path":      c.Request.URL.Path,
					"client_ip": c.ClientIP(),
					"panic":     recovered,
					"stack":     string(debug.Stack()),
				}).Error("request panicked")

				response.AbortError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
				return
			}

			fields := logrus.Fields{
				"method":    c.Request.Method,
				"path":      c.Request.URL.Path,
				"status":    c.Writer.Status(),
				"latency":   time.Since(start).String(),
				"client_ip": c.ClientIP(),
			}
			if userID := c.GetInt64("user_id"); userID != 0 {
				fields["user_id"] = userID
			}
			for _, err := range c.Errors {
				log.WithFields(fields).Error(err.Error())
			}

			switch {
			case c.Writer.Status() >= http.StatusInternalServerError:
				log.WithFields(fields).Error("request failed")
			case c.Writer.Status() >= http.StatusBadRequest:
				log.WithFields(fields).Warn("request rejected")
			default:
				log.WithFields(fields).Info("request")
			}
		}()

		c.Next()
	}
}

// internal/interfaces/http/middleware/logger.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/store-admin/internal/config"
)

// Logger returns structured request logging backed by logrus. The raw
// query string is recorded so report filters and assistant tool calls
// can be replayed when a request misbehaves.
func Logger(cfg *config.Config) gin.HandlerFunc {
	logger := logrus.New()

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		entry := logger.WithFields(logrus.Fields{
			"request_id": param.Keys["request_id"],
			"method":     param.Method,
			"path":       param.Path,
			"query":      param.Request.URL.RawQuery,
			"status":     param.StatusCode,
			"latency_ms": param.Latency.Milliseconds(),
			"client_ip":  param.ClientIP,
			"user_agent": param.Request.UserAgent(),
			"bytes":      param.BodySize,
		})

		if param.ErrorMessage != "" {
			entry = entry.WithField("error", param.ErrorMessage)
		}

		switch {
		case param.StatusCode >= 500:
			entry.Error("request failed")
		case param.StatusCode >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request completed")
		}

		return ""
	})
}

package v1

import (
	"time"

	"github.com/VinciYan/tileserv/internal/infrastructure/http/v1/handler"
	"github.com/VinciYan/tileserv/pkg/logger"
	"github.com/VinciYan/tileserv/pkg/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const requestIDHeader = "X-Request-Id"

func NewRouter(handler *handler.Handler, l logger.Logger, telemetryEnabled bool) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(requestID())

	if telemetryEnabled {
		r.Use(telemetry.GinMiddleware("tileserv"))
	}

	r.Use(ginZapLogger(l))

	r.GET("/", handler.Index)
	r.GET("/tiles/:z/:x/:y", handler.Tile)

	r.GET("/healthz", handler.Healthz)

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// requestID tags every request with an id, honoring one supplied by the
// caller, and echoes it back in the response.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}

func ginZapLogger(l logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLogger := l
		if id := c.GetString("request_id"); id != "" {
			reqLogger = l.With("request_id", id)
		}
		c.Set("logger", reqLogger)

		start := time.Now()

		c.Next()

		if c.Request.URL.Path == "/healthz" || c.Request.URL.Path == "/metrics" {
			return
		}

		latency := time.Since(start)

		reqLogger.Info("request",
			"status", c.Writer.Status(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
			"latency", latency,
			"size", c.Writer.Size(),
		)
	}
}

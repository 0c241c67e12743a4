package server

import (
	"log/slog"
	"net/http"
	"time"

	"ctchen222/Five-In-A-Row/internal/api/controller"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const requestIDHeader = "X-Request-ID"

var tracer = otel.Tracer("server")

type Server struct {
	engine *gin.Engine
}

func NewServer(engineController *controller.EngineController) *Server {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), traced())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.POST("/move", engineController.BestMove)
	v1.POST("/winner", engineController.Winner)
	v1.POST("/evaluate", engineController.Evaluate)

	return &Server{engine: r}
}

// Engine returns the http.Handler to serve.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// requestID reuses the caller's X-Request-ID or generates a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// traced wraps each request in a span and writes an access log line.
func traced() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ctx, span := tracer.Start(c.Request.Context(), "server."+c.Request.Method+" "+c.FullPath(), trace.WithAttributes(
			attribute.String("http.url", c.Request.URL.String()),
			attribute.String("http.method", c.Request.Method),
			attribute.String("request.id", c.GetString("request_id")),
		))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}

		slog.InfoContext(ctx, "request handled",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"request.id", c.GetString("request_id"),
			"duration", time.Since(start),
		)
	}
}

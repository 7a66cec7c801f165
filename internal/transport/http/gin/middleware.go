package httpgin

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/service/signin"
)

const (
	ctxRequestID = "request_id"
	ctxSessionID = "session_id"
)

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		c.Writer.Header().Set("X-Request-ID", reqID)
		c.Set(ctxRequestID, reqID)

		c.Next()
	}
}

func CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			"GET", "POST", "PUT", "DELETE", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Requested-With",
			"X-Request-ID",
			"If-None-Match",
		},
		ExposeHeaders: []string{
			"X-Request-ID",
			"ETag",
			"Cache-Control",
		},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	return cors.New(cfg)
}

func LoggingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		reqID, _ := c.Get(ctxRequestID)
		sessionID, _ := c.Get(ctxSessionID)

		attrs := []any{
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("ip", c.ClientIP()),
			slog.Any("request_id", reqID),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes_out", c.Writer.Size()),
		}
		if sessionID != nil {
			attrs = append(attrs, slog.Any("session", sessionID))
		}

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("http", slog.Group("http", attrs...))
		} else {
			logger.Info("http", slog.Group("http", attrs...))
		}
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(h, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// SessionMiddleware resolves the bearer token to a session id. Requests
// without a valid token are rejected.
func SessionMiddleware(svc *signin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := svc.Resolve(bearerToken(c))
		if err != nil {
			respondErr(c, err)
			c.Abort()
			return
		}

		c.Set(ctxSessionID, sid)
		c.Next()
	}
}

// RequireAuthenticated lets a request through only when its session flag
// is set. It runs after SessionMiddleware.
func RequireAuthenticated(svc *signin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := svc.Authenticated(c.Request.Context(), c.GetString(ctxSessionID))
		if err != nil {
			respondErr(c, err)
			c.Abort()
			return
		}

		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
			return
		}

		c.Next()
	}
}

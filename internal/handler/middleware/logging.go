package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"experience-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxBookingIDKey = "booking_id"

func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		requestID := l.generateRequestID()

		c.Set("request_id", requestID)

		logAttrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}

		l.logger.LogAttrs(context.Background(), slog.LevelInfo, "Request started", logAttrs...)

		c.Next()

		duration := time.Since(startTime)
		statusCode := c.Writer.Status()

		responseAttrs := make([]slog.Attr, len(logAttrs), len(logAttrs)+8)
		copy(responseAttrs, logAttrs)
		// Identity and resource ids are only known once auth and the handler have run.
		responseAttrs = append(responseAttrs, requestContextAttrs(c)...)
		responseAttrs = append(responseAttrs,
			slog.Int("status_code", statusCode),
			slog.Duration("duration", duration),
		)

		if responseSize := c.Writer.Size(); responseSize > 0 {
			responseAttrs = append(responseAttrs, slog.Int("response_size", responseSize))
		}

		if len(c.Errors) > 0 {
			responseAttrs = append(responseAttrs, slog.String("errors", c.Errors.String()))
		}

		logLevel := slog.LevelInfo
		if statusCode >= 500 {
			logLevel = slog.LevelError
		} else if statusCode >= 400 {
			logLevel = slog.LevelWarn
		}

		l.logger.LogAttrs(context.Background(), logLevel, "Request completed", responseAttrs...)
	}
}

// SetBookingID tags the request log with the booking a handler created.
func SetBookingID(c *gin.Context, id uuid.UUID) {
	c.Set(ctxBookingIDKey, id)
}

func requestContextAttrs(c *gin.Context) []slog.Attr {
	var attrs []slog.Attr
	if userID, ok := GetUserID(c); ok {
		attrs = append(attrs, slog.String("user_id", userID.String()))
	}
	if role, ok := GetUserRole(c); ok {
		attrs = append(attrs, slog.String("role", string(role)))
	}

	route := c.FullPath()
	if id := c.Param("id"); id != "" {
		switch {
		case strings.HasPrefix(route, "/api/wizard/"):
			attrs = append(attrs, slog.String("wizard_id", id))
		case strings.HasPrefix(route, "/api/bookings/"):
			attrs = append(attrs, slog.String("booking_id", id))
		case strings.HasPrefix(route, "/api/activities/"):
			attrs = append(attrs, slog.String("activity_id", id))
		}
	}
	if v, ok := c.Get(ctxBookingIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			attrs = append(attrs, slog.String("booking_id", id.String()))
		}
	}
	return attrs
}

func NewLogger(cfg config.LogConfig) *Logger {
	return NewLoggerTo(cfg, os.Stdout)
}

// NewLoggerTo is NewLogger writing to w.
func NewLoggerTo(cfg config.LogConfig, w io.Writer) *Logger {
	var logLevel slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return &Logger{
		logger:   logger,
		cfg:      cfg,
		timezone: timezone,
	}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

func LoggingMiddleware(cfg config.LogConfig) gin.HandlerFunc {
	return NewLogger(cfg).LoggingMiddleware()
}

func (l *Logger) generateRequestID() string {
	timestamp := time.Now().In(l.timezone).Format("20060102150405")

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("%s-fallback-%d", timestamp, time.Now().UnixNano()%100000000)
	}

	randomHex := hex.EncodeToString(randomBytes)
	return fmt.Sprintf("%s-%s", timestamp, randomHex)
}

type Logger struct {
	logger   *slog.Logger
	cfg      config.LogConfig
	timezone *time.Location
}

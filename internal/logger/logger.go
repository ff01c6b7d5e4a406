package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDKey is the gin context key holding the request id
	RequestIDKey = "request_id"
	// ContextLoggerKey is the gin context key holding the request scoped logger
	ContextLoggerKey = "logger"
)

var (
	base     = logrus.New()
	initOnce sync.Once
)

type ctxKey struct{}

// Init configures the process-wide logger. Unknown levels fall back to info.
func Init(level, format string) {
	initOnce.Do(func() {
		base.SetOutput(os.Stdout)
	})

	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	base.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// Base returns the underlying logrus logger
func Base() *logrus.Logger {
	return base
}

// New returns a fresh entry on the process-wide logger
func New() *logrus.Entry {
	return logrus.NewEntry(base)
}

// FromGinContext returns the request scoped logger placed by the request logging middleware,
// or a new entry tagged with the request id when the middleware did not run.
func FromGinContext(c *gin.Context) *logrus.Entry {
	if c == nil {
		return New()
	}
	if v, ok := c.Get(ContextLoggerKey); ok {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	entry := New()
	if id, ok := c.Get(RequestIDKey); ok {
		entry = entry.WithField(RequestIDKey, id)
	}
	return entry
}

// WithContext stores an entry in a context so that services can log with request fields
func WithContext(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, ctxKey{}, entry)
}

// FromContext returns the entry stored by WithContext or a new entry
func FromContext(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if entry, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok {
			return entry
		}
	}
	return New()
}

package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInit_LevelAndFormat(t *testing.T) {
	Init("debug", "json")
	assert.Equal(t, logrus.DebugLevel, Base().GetLevel())
	_, isJSON := Base().Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)

	Init("not-a-level", "text")
	assert.Equal(t, logrus.InfoLevel, Base().GetLevel())
	_, isText := Base().Formatter.(*logrus.TextFormatter)
	assert.True(t, isText)
}

func TestFromGinContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("uses request id when no logger stored", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(RequestIDKey, "req-1")

		entry := FromGinContext(c)
		assert.Equal(t, "req-1", entry.Data[RequestIDKey])
	})

	t.Run("returns stored logger", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		stored := New().WithField("marker", "yes")
		c.Set(ContextLoggerKey, stored)

		assert.Same(t, stored, FromGinContext(c))
	})

	t.Run("nil context", func(t *testing.T) {
		assert.NotNil(t, FromGinContext(nil))
	})
}

func TestContextRoundTrip(t *testing.T) {
	entry := New().WithField("platform", "facebook")
	ctx := WithContext(context.Background(), entry)

	assert.Same(t, entry, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}

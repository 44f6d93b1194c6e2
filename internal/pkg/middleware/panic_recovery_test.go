package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kliklance/kliklance/internal/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newCapturedLogger(buf *bytes.Buffer) *logger.ZapLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewDevelopmentConfig().EncoderConfig),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return &logger.ZapLogger{Logger: zap.New(core)}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		panicValue   interface{}
		expectInLogs []string
		setupContext func(c echo.Context)
	}{
		{
			name:       "string panic",
			panicValue: "something broke",
			expectInLogs: []string{
				"something broke",
				"stack_trace",
				"Panic recovered during request processing",
			},
		},
		{
			name:       "error panic",
			panicValue: fmt.Errorf("wrapped failure"),
			expectInLogs: []string{
				"wrapped failure",
				"*errors.errorString",
			},
		},
		{
			name:       "panic with user context",
			panicValue: "user panic",
			expectInLogs: []string{
				"user panic",
				"42",
			},
			setupContext: func(c echo.Context) {
				c.Set("user_id", int64(42))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuffer bytes.Buffer
			zapLogger := newCapturedLogger(&logBuffer)

			e := echo.New()
			handler := PanicRecoveryMiddleware(zapLogger)(func(c echo.Context) error {
				if tt.setupContext != nil {
					tt.setupContext(c)
				}
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/ws/chat/7", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			// The panic must not escape the middleware.
			require.NoError(t, handler(c))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var response map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "internal server error", response["error"])

			logOutput := logBuffer.String()
			for _, expected := range tt.expectInLogs {
				assert.Contains(t, logOutput, expected)
			}
			assert.Contains(t, logOutput, "/ws/chat/7")
		})
	}
}

func TestPanicRecoveryMiddlewarePassesThrough(t *testing.T) {
	var logBuffer bytes.Buffer
	zapLogger := newCapturedLogger(&logBuffer)

	e := echo.New()
	handler := PanicRecoveryMiddleware(zapLogger)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, logBuffer.String())
}

package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/kliklance/kliklance/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// trace, and converts the panic into a 500 response.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					userID := "anonymous"
					if uid := c.Get("user_id"); uid != nil {
						userID = fmt.Sprintf("%v", uid)
					}

					zapLogger.Error("Panic recovered during request processing",
						logger.Any("panic_value", r),
						logger.String("panic_type", fmt.Sprintf("%T", r)),
						logger.String("stack_trace", string(debug.Stack())),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
						logger.String("user_id", userID),
					)

					if !c.Response().Committed {
						_ = c.JSON(http.StatusInternalServerError, map[string]string{
							"error": "internal server error",
						})
					}
				}
			}()

			return next(c)
		}
	}
}

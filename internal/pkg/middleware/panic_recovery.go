package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/logger"
	"github.com/ziswafid/ziswaf-manager/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// trace, and responds with a generic 500.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					zapLogger.Error("Recovered from panic",
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.Any("panic", r),
						logger.String("stack", string(debug.Stack())),
					)

					if !c.Response().Committed {
						_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError,
							"Internal server error")
					}
				}
			}()

			return next(c)
		}
	}
}

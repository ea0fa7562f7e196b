package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/yashisrani/Yosemite-Crew-sub011/internal/platform/fhir"
)

// Recovery turns a handler panic into a logged 500 carrying the
// OperationOutcome envelope the rest of the service speaks, so a
// crashing conversion still answers in FHIR.
func Recovery(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					var stack [4096]byte
					n := runtime.Stack(stack[:], false)

					rid, _ := c.Get(RequestIDKey).(string)
					logger.Error().
						Str("request_id", rid).
						Str("method", c.Request().Method).
						Str("path", c.Request().URL.Path).
						Str("panic", fmt.Sprintf("%v", r)).
						Str("stack", string(stack[:n])).
						Msg("panic recovered")

					if !c.Response().Committed {
						_ = c.JSON(http.StatusInternalServerError, fhir.NewOperationOutcome(
							fhir.IssueSeverityError, fhir.IssueTypeProcessing, "internal server error"))
					}
				}
			}()
			return next(c)
		}
	}
}

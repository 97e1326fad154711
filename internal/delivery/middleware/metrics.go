package middleware

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "account/internal/domain/errors"
	"account/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Metrics records request count and latency per route template.
// Unmatched routes share one label so scans cannot inflate cardinality.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = statusFromError(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request().Method, route, strconv.Itoa(status), time.Since(start))

		return err
	}
}

// statusFromError predicts the status the error handler will render for err.
func statusFromError(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/contactsphere/contacts-system/internal/api/metrics"
	"github.com/contactsphere/contacts-system/internal/core/ports"
)

// RateLimit caps request rate per client address on the routes it wraps. It
// runs ahead of the handler chain's business logic, so an over-limit client
// is rejected before any database access.
func RateLimit(limiter ports.RateLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Path() + ":" + c.RealIP()

			allowed, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				// Fail open; the limiter already allowed the request.
				log.Warn().Err(err).Msg("rate limiter unavailable")
			}
			if !allowed {
				metrics.RateLimitRejectedTotal.WithLabelValues(c.Path()).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}

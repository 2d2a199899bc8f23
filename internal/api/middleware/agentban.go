package middleware

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"
)

// bannedAgents lists user-agent patterns that are refused outright.
var bannedAgents = []*regexp.Regexp{
	regexp.MustCompile(`Googlebot`),
	regexp.MustCompile(`Python-urllib`),
}

// AgentBan rejects requests from banned user agents with 403.
func AgentBan() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			agent := c.Request().UserAgent()
			for _, pattern := range bannedAgents {
				if pattern.MatchString(agent) {
					return echo.NewHTTPError(http.StatusForbidden, "You are banned")
				}
			}
			return next(c)
		}
	}
}

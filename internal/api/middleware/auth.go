package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/contactsphere/contacts-system/internal/core/domain"
	"github.com/contactsphere/contacts-system/internal/core/ports"
	"github.com/contactsphere/contacts-system/internal/core/token"
)

// userContextKey is where Auth stores the resolved *domain.User.
const userContextKey = "current_user"

// Auth resolves the bearer token to a user and injects it into the request
// context. It is the single authorization gate: every protected route runs
// through it before any business logic, and there is no other path to a
// protected handler.
//
// Only access-scope tokens pass; a refresh or confirmation token fails the
// scope check inside Decode. All failures collapse to one 401.
func Auth(codec *token.Codec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return unauthorized(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthorized(c)
			}

			claims, err := codec.Decode(parts[1], token.ScopeAccess)
			if err != nil {
				return unauthorized(c)
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				return unauthorized(c)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user injected by Auth, or nil when the middleware
// did not run.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, domain.MsgCredentials)
}

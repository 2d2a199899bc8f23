package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contactsphere/contacts-system/internal/api/middleware"
	"github.com/contactsphere/contacts-system/internal/core/domain"
)

// ctxUser extracts the user injected by the Auth middleware. Its presence
// proves the gate ran; a protected handler reached without it is a wiring
// bug and fails closed with 401.
func ctxUser(c echo.Context) (*domain.User, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, domain.MsgCredentials)
	}
	return user, nil
}

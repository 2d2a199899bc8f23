package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/contactsphere/contacts-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The key
// is "detail" and the messages are fixed constants clients match on.
type errorResponse struct {
	Detail string `json:"detail"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Adds a WWW-Authenticate challenge to every 401.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"detail": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if code == http.StatusUnauthorized {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		}
		_ = c.JSON(code, errorResponse{Detail: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Login failures that
	// differ in cause share one message so the response never reveals
	// whether the email exists or which token check failed.
	switch {
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusConflict, domain.MsgAccountExists
	case errors.Is(err, domain.ErrIncorrectLogin):
		return http.StatusUnauthorized, domain.MsgIncorrectLogin
	case errors.Is(err, domain.ErrNotConfirmed):
		return http.StatusUnauthorized, domain.MsgNotConfirmed
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, domain.MsgCredentials
	case errors.Is(err, domain.ErrVerification):
		return http.StatusBadRequest, domain.MsgVerificationError
	case errors.Is(err, domain.ErrAlreadyConfirmed):
		return http.StatusBadRequest, domain.MsgAlreadyConfirmed
	case errors.Is(err, domain.ErrContactNotFound):
		return http.StatusNotFound, "Contact not found"
	case errors.Is(err, domain.ErrContactEmailExists):
		return http.StatusBadRequest, "Email already exists"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error"
}

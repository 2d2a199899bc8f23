package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contactsphere/contacts-system/internal/api/metrics"
	"github.com/contactsphere/contacts-system/internal/core/domain"
	"github.com/contactsphere/contacts-system/internal/core/ports"
)

const tokenTypeBearer = "bearer"

type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates a new unconfirmed account and schedules the confirmation
// email.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, userResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Avatar:   user.Avatar,
	})
}

// Token authenticates form-encoded credentials and returns an access +
// refresh token pair.
//
// @Summary      Obtain an access and refresh token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Account email"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  tokenPairResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pair, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("access").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("refresh").Inc()
	return c.JSON(http.StatusOK, tokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    tokenTypeBearer,
	})
}

// Refresh exchanges a refresh token for a new access token.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  accessTokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	access, err := h.auth.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.WithLabelValues("access").Inc()
	return c.JSON(http.StatusOK, accessTokenResponse{
		AccessToken: access,
		TokenType:   tokenTypeBearer,
	})
}

// ConfirmEmail validates the emailed confirmation token and marks the
// account confirmed.
//
// @Summary      Confirm an email address
// @Tags         auth
// @Produce      json
// @Param        token  path      string  true  "Confirmation token from the email link"
// @Success      200    {object}  messageResponse
// @Failure      400    {object}  map[string]string
// @Router       /auth/confirmed_email/{token} [get]
func (h *AuthHandler) ConfirmEmail(c echo.Context) error {
	if err := h.auth.ConfirmEmail(c.Request().Context(), c.Param("token")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: domain.MsgConfirmed})
}

func loginResult(err error) string {
	switch err {
	case domain.ErrIncorrectLogin:
		return "incorrect_login"
	case domain.ErrNotConfirmed:
		return "not_confirmed"
	default:
		return "error"
	}
}

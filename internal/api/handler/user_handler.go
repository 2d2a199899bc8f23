package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/contactsphere/contacts-system/internal/core/ports"
)

// UserHandler handles account-level operations for the authenticated user.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// UpdateAvatar handles PATCH /users/avatar with a multipart image upload.
//
// @Summary      Upload a new avatar
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Avatar image"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /users/avatar [patch]
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid file type")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read file")
	}
	defer src.Close()

	updated, err := h.service.UpdateAvatar(c.Request().Context(), user, src, contentType)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		ID:       updated.ID,
		Username: updated.Username,
		Email:    updated.Email,
		Avatar:   updated.Avatar,
	})
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/contactsphere/contacts-system/internal/core/ports"
)

// ContactHandler handles HTTP requests for the owner-scoped contact
// operations. Every handler here sits behind the Auth middleware.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Create handles POST /contacts.
//
// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      contactRequest  true  "Contact details"
// @Success      201   {object}  contactResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact, err := h.service.CreateContact(c.Request().Context(), user.ID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toContactResponse(contact))
}

// List handles GET /contacts?skip=&limit=.
//
// @Summary      List contacts
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Number of contacts to skip"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {array}   contactResponse
// @Failure      401    {object}  map[string]string
// @Router       /contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	skip, _ := strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)

	contacts, err := h.service.GetContacts(c.Request().Context(), user.ID, skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContactResponses(contacts))
}

// Search handles GET /contacts/search?first_name=&last_name=&email=.
//
// @Summary      Search contacts by name or email substring
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        first_name  query     string  false  "First name filter"
// @Param        last_name   query     string  false  "Last name filter"
// @Param        email       query     string  false  "Email filter"
// @Success      200         {array}   contactResponse
// @Failure      401         {object}  map[string]string
// @Router       /contacts/search [get]
func (h *ContactHandler) Search(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	contacts, err := h.service.SearchContacts(c.Request().Context(), user.ID, ports.ContactFilter{
		FirstName: c.QueryParam("first_name"),
		LastName:  c.QueryParam("last_name"),
		Email:     c.QueryParam("email"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContactResponses(contacts))
}

// Birthdays handles GET /contacts/birthdays.
//
// @Summary      Contacts with a birthday in the next seven days
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   contactResponse
// @Failure      401  {object}  map[string]string
// @Router       /contacts/birthdays [get]
func (h *ContactHandler) Birthdays(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	contacts, err := h.service.UpcomingBirthdays(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContactResponses(contacts))
}

// Get handles GET /contacts/:id.
//
// @Summary      Get a contact by id
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Contact id"
// @Success      200  {object}  contactResponse
// @Failure      404  {object}  map[string]string
// @Router       /contacts/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := contactID(c)
	if err != nil {
		return err
	}

	contact, err := h.service.GetContact(c.Request().Context(), user.ID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContactResponse(contact))
}

// Update handles PUT /contacts/:id.
//
// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Contact id"
// @Param        body  body      contactRequest  true  "Contact details"
// @Success      200   {object}  contactResponse
// @Failure      404   {object}  map[string]string
// @Router       /contacts/{id} [put]
func (h *ContactHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := contactID(c)
	if err != nil {
		return err
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact, err := h.service.UpdateContact(c.Request().Context(), user.ID, id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContactResponse(contact))
}

// Delete handles DELETE /contacts/:id.
//
// @Summary      Delete a contact
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Contact id"
// @Success      200  {object}  contactResponse
// @Failure      404  {object}  map[string]string
// @Router       /contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := contactID(c)
	if err != nil {
		return err
	}

	contact, err := h.service.DeleteContact(c.Request().Context(), user.ID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContactResponse(contact))
}

func contactID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid contact id")
	}
	return id, nil
}

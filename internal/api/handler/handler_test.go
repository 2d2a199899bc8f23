package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/contactsphere/contacts-system/internal/api"
	"github.com/contactsphere/contacts-system/internal/api/handler"
	"github.com/contactsphere/contacts-system/internal/api/middleware"
	"github.com/contactsphere/contacts-system/internal/core/domain"
	"github.com/contactsphere/contacts-system/internal/core/ports"
	"github.com/contactsphere/contacts-system/internal/core/service"
	"github.com/contactsphere/contacts-system/internal/core/token"
)

// --- In-memory stubs backing the HTTP stack under test ---

type userRepoStub struct {
	users  map[string]*domain.User
	nextID int64
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: make(map[string]*domain.User)}
}

func (r *userRepoStub) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepoStub) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrAccountExists
	}
	r.nextID++
	stored := *user
	stored.ID = r.nextID
	r.users[stored.Email] = &stored
	clone := stored
	return &clone, nil
}

func (r *userRepoStub) ConfirmEmail(_ context.Context, email string) error {
	u, ok := r.users[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Confirmed = true
	return nil
}

func (r *userRepoStub) UpdateAvatar(_ context.Context, email, avatarURL string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Avatar = avatarURL
	clone := *u
	return &clone, nil
}

type contactRepoStub struct {
	contacts map[int64]*domain.Contact
	nextID   int64
}

func newContactRepoStub() *contactRepoStub {
	return &contactRepoStub{contacts: make(map[int64]*domain.Contact)}
}

func (r *contactRepoStub) Create(_ context.Context, contact *domain.Contact) (*domain.Contact, error) {
	for _, existing := range r.contacts {
		if existing.UserID == contact.UserID && existing.Email == contact.Email {
			return nil, domain.ErrContactEmailExists
		}
	}
	r.nextID++
	stored := *contact
	stored.ID = r.nextID
	r.contacts[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *contactRepoStub) FindByID(_ context.Context, userID, contactID int64) (*domain.Contact, error) {
	c, ok := r.contacts[contactID]
	if !ok || c.UserID != userID {
		return nil, domain.ErrContactNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *contactRepoStub) List(_ context.Context, userID int64, _, _ int64) ([]*domain.Contact, error) {
	return r.All(context.Background(), userID)
}

func (r *contactRepoStub) All(_ context.Context, userID int64) ([]*domain.Contact, error) {
	out := make([]*domain.Contact, 0)
	for _, c := range r.contacts {
		if c.UserID == userID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *contactRepoStub) Search(_ context.Context, userID int64, filter ports.ContactFilter) ([]*domain.Contact, error) {
	out := make([]*domain.Contact, 0)
	for _, c := range r.contacts {
		if c.UserID != userID {
			continue
		}
		if filter.Email != "" && !strings.Contains(strings.ToLower(c.Email), strings.ToLower(filter.Email)) {
			continue
		}
		if filter.FirstName != "" && !strings.Contains(strings.ToLower(c.FirstName), strings.ToLower(filter.FirstName)) {
			continue
		}
		if filter.LastName != "" && !strings.Contains(strings.ToLower(c.LastName), strings.ToLower(filter.LastName)) {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *contactRepoStub) Update(_ context.Context, contact *domain.Contact) (*domain.Contact, error) {
	if _, ok := r.contacts[contact.ID]; !ok {
		return nil, domain.ErrContactNotFound
	}
	stored := *contact
	r.contacts[contact.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *contactRepoStub) Delete(_ context.Context, userID, contactID int64) (*domain.Contact, error) {
	c, ok := r.contacts[contactID]
	if !ok || c.UserID != userID {
		return nil, domain.ErrContactNotFound
	}
	delete(r.contacts, contactID)
	return c, nil
}

type mailQueueStub struct {
	mails []ports.ConfirmationMail
}

func (q *mailQueueStub) Enqueue(mail ports.ConfirmationMail) {
	q.mails = append(q.mails, mail)
}

type avatarStorageStub struct {
	key         string
	contentType string
}

func (s *avatarStorageStub) Upload(_ context.Context, key, contentType string, _ io.Reader) (string, error) {
	s.key = key
	s.contentType = contentType
	return "https://cdn.example.com/" + key, nil
}

// --- Test server wiring ---

type testEnv struct {
	e       *echo.Echo
	users   *userRepoStub
	queue   *mailQueueStub
	avatars *avatarStorageStub
	codec   *token.Codec
}

func newTestEnv() *testEnv {
	codec := token.NewCodec("test-secret")
	issuer := token.NewIssuer(codec, 15*time.Minute, 7*24*time.Hour, 24*time.Hour)
	users := newUserRepoStub()
	queue := &mailQueueStub{}
	avatars := &avatarStorageStub{}

	authService := service.NewAuthService(users, codec, issuer, queue, zerolog.Nop())
	contactService := service.NewContactService(newContactRepoStub())
	userService := service.NewUserService(users, avatars)

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)
	userHandler := handler.NewUserHandler(userService)
	gate := middleware.Auth(codec, users)

	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/token", authHandler.Token)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/confirmed_email/:token", authHandler.ConfirmEmail)

	contacts := e.Group("/contacts", gate)
	contacts.POST("", contactHandler.Create)
	contacts.GET("", contactHandler.List)
	contacts.GET("/search", contactHandler.Search)
	contacts.GET("/birthdays", contactHandler.Birthdays)
	contacts.GET("/:id", contactHandler.Get)
	contacts.PUT("/:id", contactHandler.Update)
	contacts.DELETE("/:id", contactHandler.Delete)

	usersGroup := e.Group("/users", gate)
	usersGroup.PATCH("/avatar", userHandler.UpdateAvatar)

	return &testEnv{e: e, users: users, queue: queue, avatars: avatars, codec: codec}
}

func (env *testEnv) doJSON(method, path, body, bearer string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) doForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func detail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not the error envelope: %s", rec.Body.String())
	}
	return body.Detail
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
}

const registerBody = `{"username":"test","email":"test@example.com","password":"test"}`

func register(t *testing.T, env *testEnv) {
	t.Helper()
	if rec := env.doJSON(http.MethodPost, "/auth/register", registerBody, ""); rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d: %s", rec.Code, rec.Body.String())
	}
}

func confirm(t *testing.T, env *testEnv) {
	t.Helper()
	if len(env.queue.mails) == 0 {
		t.Fatal("no confirmation mail queued")
	}
	mail := env.queue.mails[len(env.queue.mails)-1]
	if rec := env.doJSON(http.MethodGet, "/auth/confirmed_email/"+mail.Token, "", ""); rec.Code != http.StatusOK {
		t.Fatalf("confirm status = %d: %s", rec.Code, rec.Body.String())
	}
}

func login(t *testing.T, env *testEnv, email, password string) (access, refresh string) {
	t.Helper()
	rec := env.doForm("/auth/token", url.Values{"username": {email}, "password": {password}})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", rec.Code, rec.Body.String())
	}
	var pair struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
	}
	decodeJSON(t, rec, &pair)
	if pair.TokenType != "bearer" {
		t.Fatalf("token_type = %s", pair.TokenType)
	}
	return pair.AccessToken, pair.RefreshToken
}

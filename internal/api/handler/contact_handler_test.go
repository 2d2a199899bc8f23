package handler_test

import (
	"net/http"
	"testing"

	"github.com/contactsphere/contacts-system/internal/core/domain"
)

const contactBody = `{
	"first_name": "Ada",
	"last_name": "Lovelace",
	"email": "ada@example.com",
	"phone_number": "+12025550123",
	"birthday": "1990-12-10"
}`

func authedEnv(t *testing.T) (*testEnv, string) {
	t.Helper()
	env := newTestEnv()
	register(t, env)
	confirm(t, env)
	access, _ := login(t, env, "test@example.com", "test")
	return env, access
}

func TestContacts_RequireAuth(t *testing.T) {
	env := newTestEnv()

	paths := []struct{ method, path string }{
		{http.MethodGet, "/contacts"},
		{http.MethodPost, "/contacts"},
		{http.MethodGet, "/contacts/search"},
		{http.MethodGet, "/contacts/birthdays"},
		{http.MethodGet, "/contacts/1"},
		{http.MethodPut, "/contacts/1"},
		{http.MethodDelete, "/contacts/1"},
	}
	for _, p := range paths {
		rec := env.doJSON(p.method, p.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without token: status = %d", p.method, p.path, rec.Code)
		}
		if got := detail(t, rec); got != domain.MsgCredentials {
			t.Fatalf("%s %s detail = %q", p.method, p.path, got)
		}
	}
}

func TestContacts_CRUD(t *testing.T) {
	env, access := authedEnv(t)

	// Create.
	rec := env.doJSON(http.MethodPost, "/contacts", contactBody, access)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID       int64  `json:"id"`
		Email    string `json:"email"`
		Birthday string `json:"birthday"`
	}
	decodeJSON(t, rec, &created)
	if created.ID == 0 || created.Email != "ada@example.com" || created.Birthday != "1990-12-10" {
		t.Fatalf("create payload: %+v", created)
	}

	// Read back.
	rec = env.doJSON(http.MethodGet, "/contacts/1", "", access)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: %d %s", rec.Code, rec.Body.String())
	}

	// Full update replaces the fields.
	updateBody := `{
		"first_name": "Ada",
		"last_name": "King",
		"email": "ada.king@example.com",
		"phone_number": "+12025550123"
	}`
	rec = env.doJSON(http.MethodPut, "/contacts/1", updateBody, access)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: %d %s", rec.Code, rec.Body.String())
	}
	var updated struct {
		LastName string `json:"last_name"`
		Email    string `json:"email"`
	}
	decodeJSON(t, rec, &updated)
	if updated.LastName != "King" || updated.Email != "ada.king@example.com" {
		t.Fatalf("update payload: %+v", updated)
	}

	// Delete returns the removed contact, then the id is gone.
	rec = env.doJSON(http.MethodDelete, "/contacts/1", "", access)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: %d %s", rec.Code, rec.Body.String())
	}
	rec = env.doJSON(http.MethodGet, "/contacts/1", "", access)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: %d", rec.Code)
	}
	if got := detail(t, rec); got != "Contact not found" {
		t.Fatalf("detail = %q", got)
	}
}

func TestContacts_Validation(t *testing.T) {
	env, access := authedEnv(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing first name", `{"last_name":"L","email":"a@example.com","phone_number":"+12025550123"}`},
		{"bad email", `{"first_name":"A","last_name":"L","email":"nope","phone_number":"+12025550123"}`},
		{"bad phone", `{"first_name":"A","last_name":"L","email":"a@example.com","phone_number":"abc"}`},
		{"bad birthday", `{"first_name":"A","last_name":"L","email":"a@example.com","phone_number":"+12025550123","birthday":"12/10/1990"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.doJSON(http.MethodPost, "/contacts", tc.body, access)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestContacts_DuplicateEmail(t *testing.T) {
	env, access := authedEnv(t)

	if rec := env.doJSON(http.MethodPost, "/contacts", contactBody, access); rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	rec := env.doJSON(http.MethodPost, "/contacts", contactBody, access)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate create: %d %s", rec.Code, rec.Body.String())
	}
	if got := detail(t, rec); got != "Email already exists" {
		t.Fatalf("detail = %q", got)
	}
}

func TestContacts_InvalidID(t *testing.T) {
	env, access := authedEnv(t)

	for _, id := range []string{"abc", "0", "-3"} {
		rec := env.doJSON(http.MethodGet, "/contacts/"+id, "", access)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("id %q: status = %d", id, rec.Code)
		}
	}
}

func TestContacts_Search(t *testing.T) {
	env, access := authedEnv(t)

	bodies := []string{
		`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","phone_number":"+12025550123"}`,
		`{"first_name":"Grace","last_name":"Hopper","email":"grace@example.com","phone_number":"+12025550124"}`,
	}
	for _, b := range bodies {
		if rec := env.doJSON(http.MethodPost, "/contacts", b, access); rec.Code != http.StatusCreated {
			t.Fatalf("seed: %d %s", rec.Code, rec.Body.String())
		}
	}

	rec := env.doJSON(http.MethodGet, "/contacts/search?first_name=ada", "", access)
	if rec.Code != http.StatusOK {
		t.Fatalf("search: %d %s", rec.Code, rec.Body.String())
	}
	var results []struct {
		Email string `json:"email"`
	}
	decodeJSON(t, rec, &results)
	if len(results) != 1 || results[0].Email != "ada@example.com" {
		t.Fatalf("search results: %+v", results)
	}

	// No filter matches: empty array, not null.
	rec = env.doJSON(http.MethodGet, "/contacts/search?email=nobody", "", access)
	if body := rec.Body.String(); body != "[]\n" && body != "[]" {
		t.Fatalf("empty search body = %q", body)
	}
}

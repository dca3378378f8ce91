package handlers_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"golang.org/x/crypto/bcrypt"

	"recordstore-api/internal/handlers"
	"recordstore-api/internal/middleware"
	"recordstore-api/internal/repository"
	"recordstore-api/internal/services"
)

type testServer struct {
	handler fasthttp.RequestHandler
}

func newTestServer(t *testing.T, requireAuth bool) *testServer {
	t.Helper()
	authService, err := services.NewAuthService(services.AuthConfig{
		Username:    "tanish",
		Password:    "12345",
		StaticToken: "abc123xyz",
		Mode:        services.TokenModeStatic,
		HashCost:    bcrypt.MinCost,
	})
	require.NoError(t, err)

	itemService := services.NewItemService(repository.NewItemRepository())
	userService := services.NewUserService(repository.NewUserRepository())

	var guard handlers.Middleware
	if requireAuth {
		guard = middleware.NewAuthMiddleware(authService).RequireToken
	}
	r := handlers.NewRouter(handlers.Handlers{
		Root:  handlers.NewRootHandler("Welcome to Full CRUD API Example", "Tanish", itemService, userService),
		Items: handlers.NewItemHandler(itemService),
		Users: handlers.NewUserHandler(userService),
		Auth:  handlers.NewAuthHandler(authService),
	}, guard)
	return &testServer{handler: r.Handler}
}

type response struct {
	status int
	body   []byte
}

func (s *testServer) do(method, uri, body string, headers ...string) response {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if body != "" {
		req.Header.SetContentType("application/json")
		req.SetBodyString(body)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	var ctx fasthttp.RequestCtx
	ctx.Init(&req, nil, nil)
	s.handler(&ctx)

	return response{
		status: ctx.Response.StatusCode(),
		body:   append([]byte(nil), ctx.Response.Body()...),
	}
}

func decode(t *testing.T, r response) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(r.body, &out), "body: %s", r.body)
	return out
}

func TestItemLifecycle(t *testing.T) {
	s := newTestServer(t, false)

	r := s.do("POST", "/items", `{"id":1,"name":"A"}`)
	require.Equal(t, 200, r.status)
	require.JSONEq(t, `{"id":1,"name":"A","description":null}`, string(r.body))

	r = s.do("POST", "/items", `{"id":1,"name":"B"}`)
	require.Equal(t, 400, r.status)
	require.Equal(t, "Item with this ID already exists", decode(t, r)["detail"])

	r = s.do("GET", "/items/1", "")
	require.Equal(t, 200, r.status)
	require.JSONEq(t, `{"id":1,"name":"A","description":null}`, string(r.body))

	r = s.do("DELETE", "/items/1", "")
	require.Equal(t, 200, r.status)
	require.Equal(t, "Item with ID 1 deleted successfully", decode(t, r)["message"])

	r = s.do("GET", "/items/1", "")
	require.Equal(t, 404, r.status)
	require.Equal(t, "Item not found", decode(t, r)["detail"])

	r = s.do("DELETE", "/items/1", "")
	require.Equal(t, 404, r.status)
}

func TestListItems(t *testing.T) {
	s := newTestServer(t, false)

	r := s.do("GET", "/items", "")
	require.Equal(t, 200, r.status)
	require.JSONEq(t, `[]`, string(r.body))

	s.do("POST", "/items", `{"id":2,"name":"B","description":"second"}`)
	s.do("POST", "/items", `{"id":1,"name":"A"}`)

	r = s.do("GET", "/items", "")
	require.Equal(t, 200, r.status)
	require.JSONEq(t, `[{"id":2,"name":"B","description":"second"},{"id":1,"name":"A","description":null}]`, string(r.body))
}

func TestUpdateItem(t *testing.T) {
	s := newTestServer(t, false)
	s.do("POST", "/items", `{"id":1,"name":"A","description":"old"}`)

	r := s.do("PUT", "/items/1", `{"id":2,"name":"B"}`)
	require.Equal(t, 400, r.status)
	require.Equal(t, "Item ID in body must match URL ID", decode(t, r)["detail"])

	r = s.do("GET", "/items/1", "")
	require.JSONEq(t, `{"id":1,"name":"A","description":"old"}`, string(r.body))

	r = s.do("PUT", "/items/1", `{"id":1,"name":"B"}`)
	require.Equal(t, 200, r.status)
	require.JSONEq(t, `{"id":1,"name":"B","description":null}`, string(r.body))

	r = s.do("PUT", "/items/9", `{"id":9,"name":"Z"}`)
	require.Equal(t, 404, r.status)
	require.Equal(t, "Item not found", decode(t, r)["detail"])
}

func TestItemValidation(t *testing.T) {
	s := newTestServer(t, false)

	for _, tc := range []struct {
		name, method, uri, body string
	}{
		{"non-integer id", "GET", "/items/abc", ""},
		{"missing name", "POST", "/items", `{"id":1}`},
		{"missing id", "POST", "/items", `{"name":"A"}`},
		{"wrong id type", "POST", "/items", `{"id":"one","name":"A"}`},
		{"fractional id", "POST", "/items", `{"id":1.5,"name":"A"}`},
		{"broken json", "POST", "/items", `{"id":1,`},
		{"empty body", "POST", "/items", ""},
		{"non-integer put id", "PUT", "/items/x", `{"id":1,"name":"A"}`},
		{"upper-case keys", "POST", "/items", `{"ID":1,"NAME":"A"}`},
		{"mixed-case name", "POST", "/items", `{"id":1,"Name":"A"}`},
		{"array body", "POST", "/items", `[]`},
		{"null body", "POST", "/items", `null`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := s.do(tc.method, tc.uri, tc.body)
			require.Equal(t, 422, r.status, "body: %s", r.body)
			require.NotEmpty(t, decode(t, r)["detail"])
		})
	}

	r := s.do("GET", "/items", "")
	require.JSONEq(t, `[]`, string(r.body))
}

func TestUserLifecycle(t *testing.T) {
	s := newTestServer(t, false)

	r := s.do("POST", "/users", `{"id":1,"name":"Ada","email":"ada@example.com","age":36}`)
	require.Equal(t, 200, r.status)
	require.JSONEq(t, `{"message":"User created successfully","user":{"id":1,"name":"Ada","email":"ada@example.com","age":36}}`, string(r.body))

	r = s.do("POST", "/users", `{"id":1,"name":"Other","email":"o@example.com"}`)
	require.Equal(t, 400, r.status)
	require.Equal(t, "User ID already exists", decode(t, r)["detail"])

	r = s.do("GET", "/users/1", "")
	require.Equal(t, 200, r.status)
	require.JSONEq(t, `{"user":{"id":1,"name":"Ada"}}`, string(r.body))

	r = s.do("GET", "/users/1?details=true", "")
	require.Equal(t, 200, r.status)
	require.JSONEq(t, `{"user":{"id":1,"name":"Ada","email":"ada@example.com","age":36}}`, string(r.body))

	r = s.do("GET", "/users/1?details=maybe", "")
	require.Equal(t, 422, r.status)

	r = s.do("PUT", "/users/1", `{"id":3,"name":"Ada","email":"ada@example.com"}`)
	require.Equal(t, 400, r.status)
	require.Equal(t, "User ID in body must match URL ID", decode(t, r)["detail"])

	r = s.do("PUT", "/users/1", `{"id":1,"name":"Ada L","email":"ada@example.com"}`)
	require.Equal(t, 200, r.status)
	require.JSONEq(t, `{"message":"User updated successfully","user":{"id":1,"name":"Ada L","email":"ada@example.com","age":null}}`, string(r.body))

	r = s.do("GET", "/users", "")
	require.Equal(t, 200, r.status)
	require.JSONEq(t, `[{"id":1,"name":"Ada L","email":"ada@example.com","age":null}]`, string(r.body))

	r = s.do("DELETE", "/users/1", "")
	require.Equal(t, 200, r.status)
	require.JSONEq(t, `{"message":"User deleted successfully","user":{"id":1,"name":"Ada L","email":"ada@example.com","age":null}}`, string(r.body))

	r = s.do("GET", "/users/1", "")
	require.Equal(t, 404, r.status)
	require.Equal(t, "User not found", decode(t, r)["detail"])

	r = s.do("PUT", "/users/1", `{"id":1,"name":"Ada","email":"a@example.com"}`)
	require.Equal(t, 404, r.status)
}

func TestUserRequiresEmail(t *testing.T) {
	s := newTestServer(t, false)
	r := s.do("POST", "/users", `{"id":1,"name":"Ada"}`)
	require.Equal(t, 422, r.status)
	require.Contains(t, decode(t, r)["detail"], "email")
}

func TestRootAndGreet(t *testing.T) {
	s := newTestServer(t, false)

	r := s.do("GET", "/", "")
	require.Equal(t, 200, r.status)
	require.JSONEq(t, `{"message":"Welcome to Full CRUD API Example"}`, string(r.body))

	r = s.do("POST", "/greet", "")
	require.Equal(t, 200, r.status)
	require.JSONEq(t, `{"message":"Hello, Tanish!"}`, string(r.body))

	r = s.do("POST", "/greet?name=Ada", "")
	require.JSONEq(t, `{"message":"Hello, Ada!"}`, string(r.body))

	r = s.do("GET", "/greet", "")
	require.Equal(t, 405, r.status)

	r = s.do("GET", "/nowhere", "")
	require.Equal(t, 404, r.status)
	require.Equal(t, "Not Found", decode(t, r)["detail"])
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, false)
	s.do("POST", "/items", `{"id":1,"name":"A"}`)
	s.do("POST", "/users", `{"id":1,"name":"Ada","email":"a@example.com"}`)
	s.do("POST", "/users", `{"id":2,"name":"Bob","email":"b@example.com"}`)

	r := s.do("GET", "/health", "")
	require.Equal(t, 200, r.status)
	out := decode(t, r)
	require.Equal(t, "ok", out["status"])
	require.EqualValues(t, 1, out["items"])
	require.EqualValues(t, 2, out["users"])
}

func TestLogin(t *testing.T) {
	s := newTestServer(t, false)

	r := s.do("POST", "/login", `{"username":"tanish","password":"12345"}`)
	require.Equal(t, 200, r.status)
	require.JSONEq(t, `{"status":"success","token":"abc123xyz"}`, string(r.body))

	for _, body := range []string{
		`{"username":"tanish","password":"nope"}`,
		`{"username":"other","password":"12345"}`,
		`{"username":"tanish","password":"12345\u000012345"}`,
		`{"username":"tanish","password":"` + strings.Repeat(`12345\u0000`, 12) + `trailing"}`,
	} {
		r = s.do("POST", "/login", body)
		require.Equal(t, 200, r.status)
		require.JSONEq(t, `{"status":"error","message":"Invalid credentials"}`, string(r.body), "body %s", body)
	}

	r = s.do("POST", "/login", `{"username":"tanish"}`)
	require.Equal(t, 422, r.status)
}

func TestRequireAuthGuardsWrites(t *testing.T) {
	s := newTestServer(t, true)

	r := s.do("POST", "/items", `{"id":1,"name":"A"}`)
	require.Equal(t, 401, r.status)

	r = s.do("POST", "/items", `{"id":1,"name":"A"}`, "Authorization", "Bearer wrong")
	require.Equal(t, 401, r.status)

	r = s.do("POST", "/items", `{"id":1,"name":"A"}`, "Authorization", "Token abc123xyz")
	require.Equal(t, 401, r.status)

	r = s.do("POST", "/items", `{"id":1,"name":"A"}`, "Authorization", "Bearer abc123xyz")
	require.Equal(t, 200, r.status)

	r = s.do("GET", "/items/1", "")
	require.Equal(t, 200, r.status, "reads stay open")

	r = s.do("DELETE", "/items/1", "")
	require.Equal(t, 401, r.status)
}

func TestExtraKeysIgnored(t *testing.T) {
	s := newTestServer(t, false)
	r := s.do("POST", "/items", `{"id":1,"name":"A","colour":"red","NAME":"B"}`)
	require.Equal(t, 200, r.status)
	require.JSONEq(t, `{"id":1,"name":"A","description":null}`, string(r.body))
}

func TestNoPathRewriting(t *testing.T) {
	s := newTestServer(t, false)
	s.do("POST", "/items", `{"id":1,"name":"A"}`)

	r := s.do("GET", "/ITEMS", "")
	require.Equal(t, 404, r.status)

	r = s.do("GET", "/items/", "")
	require.Equal(t, 404, r.status)

	r = s.do("GET", "/Items/1", "")
	require.Equal(t, 404, r.status)

	r = s.do("OPTIONS", "/items", "")
	require.Equal(t, 405, r.status)
	require.Equal(t, "Method Not Allowed", decode(t, r)["detail"])
}

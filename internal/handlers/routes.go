package handlers

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

// Middleware wraps a handler, e.g. with an auth check.
type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

type Handlers struct {
	Root  *RootHandler
	Items *ItemHandler
	Users *UserHandler
	Auth  *AuthHandler
}

// NewRouter registers every route. guardWrites wraps the mutating /items and /users routes; nil leaves them open.
func NewRouter(h Handlers, guardWrites Middleware) *router.Router {
	if guardWrites == nil {
		guardWrites = func(next fasthttp.RequestHandler) fasthttp.RequestHandler { return next }
	}

	r := router.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.HandleOPTIONS = false
	r.NotFound = func(ctx *fasthttp.RequestCtx) {
		writeDetail(ctx, fasthttp.StatusNotFound, "Not Found")
	}
	r.MethodNotAllowed = func(ctx *fasthttp.RequestCtx) {
		writeDetail(ctx, fasthttp.StatusMethodNotAllowed, "Method Not Allowed")
	}

	r.GET("/", h.Root.Home)
	r.GET("/health", h.Root.Health)
	r.POST("/greet", h.Root.Greet)
	r.POST("/login", h.Auth.LoginHandler)

	r.GET("/items", h.Items.ListItems)
	r.GET("/items/{id}", h.Items.GetItem)
	r.POST("/items", guardWrites(h.Items.CreateItem))
	r.PUT("/items/{id}", guardWrites(h.Items.UpdateItem))
	r.DELETE("/items/{id}", guardWrites(h.Items.DeleteItem))

	r.GET("/users", h.Users.ListUsers)
	r.GET("/users/{id}", h.Users.GetUser)
	r.POST("/users", guardWrites(h.Users.CreateUser))
	r.PUT("/users/{id}", guardWrites(h.Users.UpdateUser))
	r.DELETE("/users/{id}", guardWrites(h.Users.DeleteUser))

	return r
}

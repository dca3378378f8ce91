package handlers

import (
	"time"

	"github.com/valyala/fasthttp"

	"recordstore-api/internal/models"
	"recordstore-api/internal/services"
)

type RootHandler struct {
	welcomeMessage string
	defaultName    string
	itemService    *services.ItemService
	userService    *services.UserService
}

func NewRootHandler(welcomeMessage, defaultName string, itemService *services.ItemService, userService *services.UserService) *RootHandler {
	return &RootHandler{
		welcomeMessage: welcomeMessage,
		defaultName:    defaultName,
		itemService:    itemService,
		userService:    userService,
	}
}

// Home handles GET /.
func (h *RootHandler) Home(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, models.MessageResponse{Message: h.welcomeMessage})
}

// Greet handles POST /greet. An explicit but empty ?name= is echoed as is.
func (h *RootHandler) Greet(ctx *fasthttp.RequestCtx) {
	name := h.defaultName
	if args := ctx.QueryArgs(); args.Has("name") {
		name = string(args.Peek("name"))
	}
	writeJSON(ctx, fasthttp.StatusOK, models.MessageResponse{Message: "Hello, " + name + "!"})
}

func (h *RootHandler) Health(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, models.HealthResponse{
		Status:  "ok",
		Message: "Record store is running",
		Time:    time.Now().Format(time.RFC3339),
		Items:   h.itemService.Count(ctx),
		Users:   h.userService.Count(ctx),
	})
}

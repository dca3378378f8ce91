package handlers

import (
	"github.com/valyala/fasthttp"

	"recordstore-api/internal/models"
	"recordstore-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, h.userService.ListUsers(ctx))
}

// GetUser handles GET /users/{id}. Without ?details=true only id and name are returned.
func (h *UserHandler) GetUser(ctx *fasthttp.RequestCtx) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	details := false
	if args := ctx.QueryArgs(); args.Has("details") {
		v, err := parseQueryBool(string(args.Peek("details")))
		if err != nil {
			writeDetail(ctx, fasthttp.StatusUnprocessableEntity, "details: value could not be parsed to a boolean")
			return
		}
		details = v
	}

	user, err := h.userService.GetUser(ctx, id)
	if err != nil {
		writeStoreError(ctx, userMessages, err)
		return
	}

	if details {
		writeJSON(ctx, fasthttp.StatusOK, models.UserEnvelope{User: user})
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, models.UserEnvelope{User: user.Summary()})
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(ctx *fasthttp.RequestCtx) {
	var payload models.UserPayload
	if !decodeBody(ctx, &payload) {
		return
	}
	user, err := payload.ToUser()
	if err != nil {
		writeValidationError(ctx, err)
		return
	}

	created, err := h.userService.CreateUser(ctx, user)
	if err != nil {
		writeStoreError(ctx, userMessages, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, models.UserMutationResponse{
		Message: "User created successfully",
		User:    created,
	})
}

// UpdateUser handles PUT /users/{id}.
func (h *UserHandler) UpdateUser(ctx *fasthttp.RequestCtx) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var payload models.UserPayload
	if !decodeBody(ctx, &payload) {
		return
	}
	user, err := payload.ToUser()
	if err != nil {
		writeValidationError(ctx, err)
		return
	}

	updated, err := h.userService.UpdateUser(ctx, id, user)
	if err != nil {
		writeStoreError(ctx, userMessages, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, models.UserMutationResponse{
		Message: "User updated successfully",
		User:    updated,
	})
}

// DeleteUser handles DELETE /users/{id}.
func (h *UserHandler) DeleteUser(ctx *fasthttp.RequestCtx) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	removed, err := h.userService.DeleteUser(ctx, id)
	if err != nil {
		writeStoreError(ctx, userMessages, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, models.UserMutationResponse{
		Message: "User deleted successfully",
		User:    removed,
	})
}

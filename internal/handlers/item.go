package handlers

import (
	"fmt"

	"github.com/valyala/fasthttp"

	"recordstore-api/internal/models"
	"recordstore-api/internal/services"
	"recordstore-api/internal/utils"
)

type ItemHandler struct {
	itemService *services.ItemService
}

func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// ListItems handles GET /items.
func (h *ItemHandler) ListItems(ctx *fasthttp.RequestCtx) {
	items := h.itemService.ListItems(ctx)
	writeJSON(ctx, fasthttp.StatusOK, items)
}

// GetItem handles GET /items/{id}.
func (h *ItemHandler) GetItem(ctx *fasthttp.RequestCtx) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	item, err := h.itemService.GetItem(ctx, id)
	if err != nil {
		writeStoreError(ctx, itemMessages, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, item)
}

// CreateItem handles POST /items.
func (h *ItemHandler) CreateItem(ctx *fasthttp.RequestCtx) {
	var payload models.ItemPayload
	if !decodeBody(ctx, &payload) {
		return
	}
	item, err := payload.ToItem()
	if err != nil {
		writeValidationError(ctx, err)
		return
	}

	created, err := h.itemService.CreateItem(ctx, item)
	if err != nil {
		writeStoreError(ctx, itemMessages, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, created)
}

// UpdateItem handles PUT /items/{id}.
func (h *ItemHandler) UpdateItem(ctx *fasthttp.RequestCtx) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var payload models.ItemPayload
	if !decodeBody(ctx, &payload) {
		return
	}
	item, err := payload.ToItem()
	if err != nil {
		writeValidationError(ctx, err)
		return
	}

	updated, err := h.itemService.UpdateItem(ctx, id, item)
	if err != nil {
		writeStoreError(ctx, itemMessages, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, updated)
}

// DeleteItem handles DELETE /items/{id}.
func (h *ItemHandler) DeleteItem(ctx *fasthttp.RequestCtx) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if _, err := h.itemService.DeleteItem(ctx, id); err != nil {
		writeStoreError(ctx, itemMessages, err)
		return
	}

	utils.LogSuccess("ItemHandler", fmt.Sprintf("Item %d removed", id))
	writeJSON(ctx, fasthttp.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Item with ID %d deleted successfully", id),
	})
}

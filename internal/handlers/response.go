package handlers

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"recordstore-api/internal/models"
	"recordstore-api/internal/repository"
	"recordstore-api/internal/utils"
)

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		utils.LogError("Handlers", "Failed to encode response", err)
	}
}

func writeDetail(ctx *fasthttp.RequestCtx, status int, detail string) {
	writeJSON(ctx, status, models.ErrorResponse{Detail: detail})
}

// pathID reads the {id} route parameter. On failure it has already written a 422.
func pathID(ctx *fasthttp.RequestCtx) (int, bool) {
	raw, _ := ctx.UserValue("id").(string)
	id, err := strconv.Atoi(raw)
	if err != nil {
		utils.LogWarning("Handlers", fmt.Sprintf("Invalid path id %q", raw))
		writeDetail(ctx, fasthttp.StatusUnprocessableEntity, "id: value is not a valid integer")
		return 0, false
	}
	return id, true
}

// decodeBody unmarshals the request body into dst. On failure it has already written a 422.
func decodeBody(ctx *fasthttp.RequestCtx, dst interface{}) bool {
	body := ctx.PostBody()
	if len(body) == 0 {
		writeDetail(ctx, fasthttp.StatusUnprocessableEntity, "body: field required")
		return false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		utils.LogWarning("Handlers", fmt.Sprintf("Malformed request body: %v", err))
		writeDetail(ctx, fasthttp.StatusUnprocessableEntity, "body: invalid JSON")
		return false
	}
	exact, err := json.Marshal(exactKeys(fields, dst))
	if err != nil {
		writeDetail(ctx, fasthttp.StatusUnprocessableEntity, "body: invalid JSON")
		return false
	}
	if err := json.Unmarshal(exact, dst); err != nil {
		utils.LogWarning("Handlers", fmt.Sprintf("Malformed request body: %v", err))
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			writeDetail(ctx, fasthttp.StatusUnprocessableEntity,
				fmt.Sprintf("%s: expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value))
			return false
		}
		writeDetail(ctx, fasthttp.StatusUnprocessableEntity, "body: invalid JSON")
		return false
	}
	return true
}

// exactKeys keeps only the members whose names equal a json tag of dst's struct.
// encoding/json would otherwise match "ID" or "NAME" to the id and name fields.
func exactKeys(fields map[string]json.RawMessage, dst interface{}) map[string]json.RawMessage {
	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := make(map[string]json.RawMessage, len(fields))
	if t.Kind() != reflect.Struct {
		return out
	}
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		if raw, ok := fields[name]; ok {
			out[name] = raw
		}
	}
	return out
}

// writeValidationError answers a payload that decoded but failed field checks.
func writeValidationError(ctx *fasthttp.RequestCtx, err error) {
	if errors.Is(err, models.ErrFieldRequired) {
		writeDetail(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}
	writeDetail(ctx, fasthttp.StatusUnprocessableEntity, "invalid request")
}

// storeMessages holds the fixed client-facing text for each store failure.
type storeMessages struct {
	NotFound      string
	AlreadyExists string
	IDMismatch    string
}

var (
	itemMessages = storeMessages{
		NotFound:      "Item not found",
		AlreadyExists: "Item with this ID already exists",
		IDMismatch:    "Item ID in body must match URL ID",
	}
	userMessages = storeMessages{
		NotFound:      "User not found",
		AlreadyExists: "User ID already exists",
		IDMismatch:    "User ID in body must match URL ID",
	}
)

func writeStoreError(ctx *fasthttp.RequestCtx, msgs storeMessages, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeDetail(ctx, fasthttp.StatusNotFound, msgs.NotFound)
	case errors.Is(err, repository.ErrAlreadyExists):
		writeDetail(ctx, fasthttp.StatusBadRequest, msgs.AlreadyExists)
	case errors.Is(err, repository.ErrIDMismatch):
		writeDetail(ctx, fasthttp.StatusBadRequest, msgs.IDMismatch)
	default:
		utils.LogError("Handlers", "Unexpected store error", err)
		writeDetail(ctx, fasthttp.StatusInternalServerError, "Internal server error")
	}
}

// parseQueryBool accepts the usual spellings of a boolean query flag.
func parseQueryBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	}
	return false, errors.Newf("%q is not a boolean", raw)
}

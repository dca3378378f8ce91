package handlers

import (
	"fmt"

	"github.com/valyala/fasthttp"

	"recordstore-api/internal/models"
	"recordstore-api/internal/services"
	"recordstore-api/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	utils.LogSuccess("AuthHandler", "Login handler initialized")
	return &AuthHandler{authService: authService}
}

// LoginHandler handles POST /login. A wrong pair is still a 200 carrying an error status.
func (h *AuthHandler) LoginHandler(ctx *fasthttp.RequestCtx) {
	var req models.LoginRequest
	if !decodeBody(ctx, &req) {
		return
	}
	username, password, err := req.Credentials()
	if err != nil {
		writeValidationError(ctx, err)
		return
	}

	utils.LogInfo("AuthHandler", fmt.Sprintf("Login attempt: %s", username))

	token, ok, err := h.authService.Login(username, password)
	if err != nil {
		utils.LogError("AuthHandler", "Token issue failed", err)
		writeDetail(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}
	if !ok {
		writeJSON(ctx, fasthttp.StatusOK, models.LoginErrorResponse{
			Status:  "error",
			Message: "Invalid credentials",
		})
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, models.LoginSuccessResponse{
		Status: "success",
		Token:  token,
	})
}

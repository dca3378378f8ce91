package middleware

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"recordstore-api/internal/models"
	"recordstore-api/internal/services"
	"recordstore-api/internal/utils"
)

type AuthMiddleware struct {
	authService *services.AuthService
}

func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	utils.LogSuccess("Middleware", "Bearer token guard initialized")
	return &AuthMiddleware{authService: authService}
}

func unauthorized(ctx *fasthttp.RequestCtx, detail string) {
	ctx.SetStatusCode(fasthttp.StatusUnauthorized)
	ctx.SetContentType("application/json")
	ctx.Response.Header.Set("WWW-Authenticate", "Bearer")
	_ = json.NewEncoder(ctx).Encode(models.ErrorResponse{Detail: detail})
}

// RequireToken rejects requests without an "Authorization: Bearer <token>" the auth service accepts.
func (m *AuthMiddleware) RequireToken(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		authHeader := string(ctx.Request.Header.Peek("Authorization"))
		if authHeader == "" {
			utils.LogWarning("Middleware", "Missing Authorization header")
			unauthorized(ctx, "Not authenticated")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.LogWarning("Middleware", "Malformed Authorization header")
			unauthorized(ctx, "Invalid authorization header")
			return
		}

		claims, err := m.authService.ValidateToken(parts[1])
		if err != nil {
			utils.LogWarning("Middleware", fmt.Sprintf("Token rejected: %v", err))
			unauthorized(ctx, "Invalid or expired token")
			return
		}

		ctx.SetUserValue("username", claims.Username)
		utils.LogDebug("Middleware", fmt.Sprintf("Authenticated: %s", claims.Username))

		next(ctx)
	}
}

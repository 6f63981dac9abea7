package middleware

import (
	"net/http"
	"strings"

	"petconnect/internal/data/entity"
	"petconnect/pkg/utils"

	"go.uber.org/zap"
)

// JWTAuth validates the Bearer access token and stores the identity
// (user ID and role) in the request context. The role claim must parse
// to a known role; tokens carrying anything else are rejected.
func JWTAuth(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}
			raw := strings.TrimPrefix(authHeader, "Bearer ")

			userIDStr, roleStr, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				logger.Warn("Invalid access token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := utils.ParseUUID(userIDStr)
			if err != nil {
				logger.Warn("Invalid subject claim", zap.String("sub", userIDStr))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			role, err := entity.ParseRole(roleStr)
			if err != nil {
				logger.Warn("Unknown role claim", zap.String("role", roleStr))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, string(role))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects requests whose authenticated role is not in the
// allowed set. Must run after JWTAuth.
func RequireRole(logger *zap.Logger, roles ...entity.Role) func(http.Handler) http.Handler {
	allowed := make(map[entity.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleStr, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !allowed[entity.Role(roleStr)] {
				logger.Warn("Role not allowed",
					zap.String("role", roleStr),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

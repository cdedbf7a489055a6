package middleware

import (
	"net/http"

	"go-dental-clinic/internal/domain/entity"
	"go-dental-clinic/pkg/response"
)

// RequireAdmin rejects requests from non-admin users. Must run after
// Authenticate so the role is present in the request context.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := GetUserRoleFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "")
			return
		}
		if role != entity.RoleAdmin {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

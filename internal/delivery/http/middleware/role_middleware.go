package middleware

import (
	"context"
	"net/http"

	"go-clinic-management/config"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/pkg/response"
)

// Require gates a handler behind permission. The check is a placeholder for
// policy evaluation and is only as strong as the access mode behind it.
func (m *AuthMiddleware) Require(permission entity.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch m.mode {
			case config.AccessModeOff:
				next.ServeHTTP(w, r)
				return

			case config.AccessModeToken:
				claims, err := m.verifyBearer(r)
				if err != nil {
					m.writeTokenError(w, err)
					return
				}
				r = r.WithContext(withClaims(r.Context(), claims))

			default:
				role, ok := entity.ParseRole(r.Header.Get(m.roleHeader))
				if !ok {
					response.Forbidden(w, "Forbidden")
					return
				}
				r = r.WithContext(context.WithValue(r.Context(), RoleKey, role))
			}

			role, _ := GetRoleFromContext(r.Context())
			if !role.Can(permission) {
				response.Forbidden(w, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

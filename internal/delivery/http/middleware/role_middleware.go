package middleware

import (
	"context"
	"net/http"

	"self-fitness/internal/domain/entity"
	"self-fitness/pkg/response"

	"github.com/google/uuid"
)

// AuthorityResolver loads the authorities of a user: ROLE_<name> for every
// role plus every permission granted through those roles.
type AuthorityResolver interface {
	Authorities(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// RequirePermission lets the request through when the user holds any of the
// given authorities. ROLE_ADMIN passes every check.
func RequirePermission(resolver AuthorityResolver, authorities ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "User information not found")
				return
			}

			granted, err := resolver.Authorities(r.Context(), userID)
			if err != nil {
				response.InternalServerError(w, "Failed to load authorities")
				return
			}
			if !hasAny(granted, entity.RolePrefix+entity.RoleAdmin) && !hasAny(granted, authorities...) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole checks for ROLE_<name> only.
func RequireRole(resolver AuthorityResolver, name string) func(http.Handler) http.Handler {
	return RequirePermission(resolver, entity.RolePrefix+name)
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(resolver AuthorityResolver) func(http.Handler) http.Handler {
	return RequireRole(resolver, entity.RoleAdmin)
}

func hasAny(granted []string, wanted ...string) bool {
	for _, w := range wanted {
		for _, g := range granted {
			if g == w {
				return true
			}
		}
	}
	return false
}

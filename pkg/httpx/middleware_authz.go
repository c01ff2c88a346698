package httpx

import (
	"fmt"
	"net/http"
)

// RequireRole gates a route on an exact role match. The caller must already
// be authenticated (AuthnMiddleware runs first in the chain); a mismatched
// role gets a 403 naming both the current and the required role so the
// client can render a meaningful access-denied view.
func RequireRole(required string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current := RoleFromContext(r.Context())
			if current == required {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="role:`+required+`"`)
			WriteJSON(w, http.StatusForbidden, map[string]string{
				"error":             "access_denied",
				"error_description": fmt.Sprintf("access denied: your role is %q, this area requires %q", current, required),
				"current_role":      current,
				"required_role":     required,
			})
		})
	}
}

// RequireAnyRole admits callers holding any of the listed roles.
func RequireAnyRole(roles ...string) Middleware {
	want := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		want[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current := RoleFromContext(r.Context())
			if _, ok := want[current]; ok {
				next.ServeHTTP(w, r)
				return
			}

			WriteJSON(w, http.StatusForbidden, map[string]string{
				"error":             "access_denied",
				"error_description": fmt.Sprintf("access denied for role %q", current),
				"current_role":      current,
			})
		})
	}
}

package http

import (
	"context"
	"net/http"

	"excise-portal-backend/internal/domain"
	"excise-portal-backend/internal/security"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionGate authenticates requests from the session cookie and gates
// handlers by role.
type SessionGate struct {
	tokenManager security.TokenManager
	cookieName   string
}

func NewSessionGate(tokenManager security.TokenManager, cookieName string) *SessionGate {
	return &SessionGate{
		tokenManager: tokenManager,
		cookieName:   cookieName,
	}
}

// SessionFromContext returns the session established by the middleware.
func SessionFromContext(ctx context.Context) (*security.SessionClaims, bool) {
	claims, ok := ctx.Value(sessionContextKey).(*security.SessionClaims)
	return claims, ok
}

func (g *SessionGate) sessionFromRequest(r *http.Request) (*security.SessionClaims, error) {
	cookie, err := r.Cookie(g.cookieName)
	if err != nil {
		return nil, security.ErrInvalidToken
	}
	return g.tokenManager.ValidateToken(cookie.Value)
}

// RequireSession rejects API requests without a valid session.
func (g *SessionGate) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := g.sessionFromRequest(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "login required")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionContextKey, claims)))
	})
}

// RequireRole rejects API requests whose session role does not match.
func (g *SessionGate) RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := g.sessionFromRequest(r)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "login required")
				return
			}
			if claims.Role != role {
				writeError(w, http.StatusForbidden, domain.ErrForbidden.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionContextKey, claims)))
		})
	}
}

// RequirePageSession redirects browsers without a valid session to /login.
func (g *SessionGate) RequirePageSession(role domain.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := g.sessionFromRequest(r)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		if role != "" && claims.Role != role {
			http.Error(w, "Unauthorized", http.StatusForbidden)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), sessionContextKey, claims)))
	}
}

package http

import (
	"net/http"
	"time"

	"excise-portal-backend/internal/domain"
	"excise-portal-backend/internal/logger"
	"excise-portal-backend/internal/service"
)

// AuthHandler serves the login/logout flow and the role-gated page shells.
type AuthHandler struct {
	authSvc       service.AuthService
	cookieName    string
	cookieTTL     time.Duration
	secureCookies bool
}

func NewAuthHandler(authSvc service.AuthService, cookieName string, cookieTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authSvc:       authSvc,
		cookieName:    cookieName,
		cookieTTL:     cookieTTL,
		secureCookies: secureCookies,
	}
}

// Index redirects to the page matching the session role, or to login.
func (h *AuthHandler) Index(gate *SessionGate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := gate.sessionFromRequest(r)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		http.Redirect(w, r, homeFor(claims.Role), http.StatusFound)
	}
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	loginPage.Execute(w, map[string]any{})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		loginPage.Execute(w, map[string]any{"Error": "Invalid form submission"})
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, token, err := h.authSvc.Login(r.Context(), username, password)
	if err != nil {
		logger.Debug("Login rejected", "username", username, "error", err)
		loginPage.Execute(w, map[string]any{"Error": "Invalid username or password"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookieTTL),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, homeFor(user.Role), http.StatusFound)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *AuthHandler) CitizenPage(w http.ResponseWriter, r *http.Request) {
	h.renderPortal(w, r, "Citizen Portal")
}

func (h *AuthHandler) OfficerPage(w http.ResponseWriter, r *http.Request) {
	h.renderPortal(w, r, "Officer Portal")
}

func (h *AuthHandler) VerifyPage(w http.ResponseWriter, r *http.Request) {
	verifyPage.Execute(w, nil)
}

func (h *AuthHandler) renderPortal(w http.ResponseWriter, r *http.Request, title string) {
	claims, ok := SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	portalPage.Execute(w, map[string]any{
		"Title":    title,
		"Username": claims.Username,
		"Role":     claims.Role,
	})
}

func homeFor(role domain.Role) string {
	if role == domain.RoleOfficer {
		return "/officer"
	}
	return "/citizen"
}

package server

import (
	"net/http"
)

func handleAdminLogout(auth *gmAuth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(gmCookieName)
		if err == nil && cookie.Value != "" {
			auth.sessions.Delete(cookie.Value)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     gmCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

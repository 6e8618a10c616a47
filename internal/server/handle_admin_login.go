package server

import (
	"net/http"
	"time"
)

// AdminLoginRequest is the request body for POST /api/admin/login.
type AdminLoginRequest struct {
	Key string `json:"key"`
}

func handleAdminLogin(auth *gmAuth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminLoginRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Key == "" {
			writeError(w, http.StatusBadRequest, "key is required")
			return
		}

		if !auth.VerifyKey(req.Key) {
			writeError(w, http.StatusUnauthorized, "invalid key")
			return
		}

		sessionID := auth.sessions.Create()

		http.SetCookie(w, &http.Cookie{
			Name:     gmCookieName,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   int(24 * time.Hour / time.Second),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func handleAdminMe(auth *gmAuth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := gmFromRequest(r, auth); err != nil {
			writeError(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

package server

import (
	"context"
	"net/http"

	"github.com/mysteria/outpost/internal/game"
)

type ctxKey int

const ctxKeyTeam ctxKey = iota

// teamMiddleware resolves the bearer session token to a team code and
// stores it in the request context.
func teamMiddleware(sessions *teamSessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code, err := teamFromRequest(r, sessions)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or missing session token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyTeam, code)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// gmMiddleware rejects requests without a valid GM session cookie. The
// check short-circuits before any core call.
func gmMiddleware(auth *gmAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := gmFromRequest(r, auth); err != nil {
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func teamCode(r *http.Request) game.TeamCode {
	return r.Context().Value(ctxKeyTeam).(game.TeamCode)
}

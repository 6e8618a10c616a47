package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mysteria/outpost/internal/game"
)

var errNoSession = errors.New("no valid session")

// teamFromToken resolves a bearer token to a team code.
func teamFromToken(sessions *teamSessions, token string) (game.TeamCode, error) {
	code, ok := sessions.Lookup(token)
	if !ok {
		return "", errNoSession
	}
	return code, nil
}

// teamFromRequest reads the Authorization header and resolves the team.
func teamFromRequest(r *http.Request, sessions *teamSessions) (game.TeamCode, error) {
	auth := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		return "", errNoSession
	}
	return teamFromToken(sessions, token)
}

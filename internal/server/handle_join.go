package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mysteria/outpost/internal/game"
)

type JoinRequest struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

type JoinResponse struct {
	Token string `json:"token"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// handleJoin creates or re-opens the team for the submitted code and
// issues a device session token. Rejoining is idempotent: a known code
// returns the existing team with its score and progress intact.
func handleJoin(session *game.Session, sessions *teamSessions, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req JoinRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if strings.TrimSpace(req.Code) == "" {
			writeError(w, http.StatusBadRequest, "code is required")
			return
		}

		team, err := session.CreateOrGet(req.Code)
		if errors.Is(err, game.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "code is required")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if name := strings.TrimSpace(req.Name); name != "" {
			team, err = session.Rename(req.Code, name)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
		}

		token := sessions.Create(team.Code)

		broker.Publish(gmTopic, SSEEvent{
			Type: "team_joined",
			Team: string(team.Code),
		})

		writeJSON(w, http.StatusOK, JoinResponse{
			Token: token,
			Code:  string(team.Code),
			Name:  team.Name,
			Score: team.Score,
		})
	}
}

type RenameRequest struct {
	Name string `json:"name"`
}

// handleRename overwrites the team's display name. Allowed at any time.
func handleRename(session *game.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RenameRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		team, err := session.Rename(string(teamCode(r)), req.Name)
		if errors.Is(err, game.ErrNotFound) {
			writeError(w, http.StatusNotFound, "team not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"name": team.Name})
	}
}

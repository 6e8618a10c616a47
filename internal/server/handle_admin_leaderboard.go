package server

import (
	"net/http"

	"github.com/mysteria/outpost/internal/game"
)

type LeaderboardRow struct {
	Rank        int    `json:"rank"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Score       int    `json:"score"`
	SolvedCount int    `json:"solvedCount"`
}

// handleLeaderboard returns all teams ranked by score, then solved
// posts, then code. Read-only; the GM dashboard polls it.
func handleLeaderboard(session *game.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings := session.Leaderboard()

		rows := make([]LeaderboardRow, 0, len(standings))
		for _, st := range standings {
			rows = append(rows, LeaderboardRow{
				Rank:        st.Rank,
				Code:        string(st.Code),
				Name:        st.Name,
				Score:       st.Score,
				SolvedCount: st.SolvedCount,
			})
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

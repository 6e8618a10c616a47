package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/mysteria/outpost/internal/catalog"
	"github.com/mysteria/outpost/internal/game"
)

type ClockInfo struct {
	Phase            string     `json:"phase"`
	StartedAt        *time.Time `json:"startedAt,omitempty"`
	EndsAt           *time.Time `json:"endsAt,omitempty"`
	RemainingSeconds int        `json:"remainingSeconds"`
}

type TeamInfo struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Score       int    `json:"score"`
	SolvedCount int    `json:"solvedCount"`
}

type HintInfo struct {
	Tier      int    `json:"tier"`
	Cost      int    `json:"cost"`
	Purchased bool   `json:"purchased"`
	// Text is only present for hints the team has already paid for.
	Text string `json:"text,omitempty"`
}

type PostInfo struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Question      string     `json:"question"`
	Solved        bool       `json:"solved"`
	RewardPending bool       `json:"rewardPending"`
	Reward        int        `json:"reward"`
	Hints         []HintInfo `json:"hints"`
}

type GameStateResponse struct {
	Clock ClockInfo  `json:"clock"`
	Team  TeamInfo   `json:"team"`
	Posts []PostInfo `json:"posts"`
}

// handleGameState returns the full view for the requesting team: clock
// phase (re-derived from the wall clock on this read), score, and
// per-post progress over the catalog.
func handleGameState(session *game.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team, err := session.Team(string(teamCode(r)))
		if errors.Is(err, game.ErrNotFound) {
			writeError(w, http.StatusNotFound, "team not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, GameStateResponse{
			Clock: clockInfo(session.Status()),
			Team: TeamInfo{
				Code:        string(team.Code),
				Name:        team.Name,
				Score:       team.Score,
				SolvedCount: len(team.Solved),
			},
			Posts: postInfos(session.Catalog(), team),
		})
	}
}

func clockInfo(st game.ClockStatus) ClockInfo {
	info := ClockInfo{
		Phase:     string(st.Phase),
		StartedAt: st.StartedAt,
		EndsAt:    st.EndsAt,
	}
	if st.Remaining > 0 {
		info.RemainingSeconds = int(st.Remaining / time.Second)
	}
	return info
}

func postInfos(cat *catalog.Catalog, team game.TeamView) []PostInfo {
	solved := make(map[catalog.PostID]bool, len(team.Solved))
	for _, id := range team.Solved {
		solved[id] = true
	}
	claimed := make(map[catalog.PostID]bool, len(team.RewardClaimed))
	for _, id := range team.RewardClaimed {
		claimed[id] = true
	}
	purchased := make(map[catalog.PostID]map[int]bool, len(team.HintsUsed))
	for id, tiers := range team.HintsUsed {
		purchased[id] = make(map[int]bool, len(tiers))
		for _, tier := range tiers {
			purchased[id][tier] = true
		}
	}

	posts := make([]PostInfo, 0, cat.Len())
	for _, p := range cat.Posts() {
		info := PostInfo{
			ID:            int(p.ID),
			Title:         p.Title,
			Question:      p.Question,
			Solved:        solved[p.ID],
			RewardPending: solved[p.ID] && !claimed[p.ID],
			Reward:        p.Reward,
			Hints:         make([]HintInfo, 0, len(p.Hints)),
		}
		for _, h := range p.Hints {
			hi := HintInfo{
				Tier:      h.Tier,
				Cost:      h.Cost,
				Purchased: purchased[p.ID][h.Tier],
			}
			if hi.Purchased {
				hi.Text = h.Text
			}
			info.Hints = append(info.Hints, hi)
		}
		posts = append(posts, info)
	}
	return posts
}

package server

import (
	"errors"
	"net/http"

	"github.com/mysteria/outpost/internal/catalog"
	"github.com/mysteria/outpost/internal/game"
)

type RewardRequest struct {
	PostID int `json:"postId"`
	// Choice is "safe" for the guaranteed reward or "chance" for a
	// card draw.
	Choice string `json:"choice"`
}

type RewardResponse struct {
	Outcome    string `json:"outcome"`
	ScoreDelta int    `json:"scoreDelta"`
	Score      int    `json:"score"`
	StolenFrom string `json:"stolenFrom,omitempty"`
}

// handleReward finalizes the reward for a solved post. One-shot per
// post: repeat calls return 409 and change nothing.
func handleReward(session *game.Session, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RewardRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Choice != "safe" && req.Choice != "chance" {
			writeError(w, http.StatusBadRequest, "choice must be safe or chance")
			return
		}

		code := teamCode(r)
		var (
			res game.RewardResult
			err error
		)
		if req.Choice == "safe" {
			res, err = session.ChooseSafe(string(code), catalog.PostID(req.PostID))
		} else {
			res, err = session.ChooseChance(string(code), catalog.PostID(req.PostID))
		}
		if errors.Is(err, game.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		if errors.Is(err, game.ErrLocked) {
			writeError(w, http.StatusConflict, lockedMessage(err))
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		event := SSEEvent{
			Type:    "reward_resolved",
			Team:    string(code),
			PostID:  req.PostID,
			Outcome: string(res.Outcome),
			Amount:  res.ScoreDelta,
		}
		broker.Publish(string(code), event)
		broker.Publish(gmTopic, event)

		if res.Outcome == game.OutcomeSteal {
			// Tell the victim they just lost points.
			broker.Publish(string(res.StolenFrom), SSEEvent{
				Type:   "points_stolen",
				Team:   string(code),
				Amount: res.ScoreDelta,
			})
		}

		writeJSON(w, http.StatusOK, RewardResponse{
			Outcome:    string(res.Outcome),
			ScoreDelta: res.ScoreDelta,
			Score:      res.Score,
			StolenFrom: string(res.StolenFrom),
		})
	}
}

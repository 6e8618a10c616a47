package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mysteria/outpost/internal/catalog"
	"github.com/mysteria/outpost/internal/game"
)

type AnswerRequest struct {
	PostID int    `json:"postId"`
	Answer string `json:"answer"`
}

type AnswerResponse struct {
	Correct bool   `json:"correct"`
	Penalty int    `json:"penalty,omitempty"`
	Score   int    `json:"score"`
	Clue    string `json:"clue,omitempty"`
	// RewardPending signals the team must now pick the safe reward or
	// a chance draw via /api/game/reward.
	RewardPending bool `json:"rewardPending"`
}

// handleAnswer submits an answer for a post. Wrong answers cost the
// post's penalty; a correct answer locks the post and leaves a reward
// choice pending. Returns 409 when the clock is not running or the
// post is already solved.
func handleAnswer(session *game.Session, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Answer) == "" {
			writeError(w, http.StatusBadRequest, "answer is required")
			return
		}

		code := teamCode(r)
		res, err := session.SubmitAnswer(string(code), catalog.PostID(req.PostID), req.Answer)
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
			Type:   "wrong_answer",
			Team:   string(code),
			PostID: req.PostID,
		}
		if res.Correct {
			event.Type = "post_solved"
		}
		broker.Publish(string(code), event)
		broker.Publish(gmTopic, event)

		writeJSON(w, http.StatusOK, AnswerResponse{
			Correct:       res.Correct,
			Penalty:       res.Penalty,
			Score:         res.Score,
			Clue:          res.Clue,
			RewardPending: res.RewardPending,
		})
	}
}

// lockedMessage strips the sentinel suffix so clients see the reason.
func lockedMessage(err error) string {
	return strings.TrimSuffix(err.Error(), ": locked")
}

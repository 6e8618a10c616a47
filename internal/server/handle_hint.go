package server

import (
	"errors"
	"net/http"

	"github.com/mysteria/outpost/internal/catalog"
	"github.com/mysteria/outpost/internal/game"
)

type HintRequest struct {
	PostID int `json:"postId"`
	Tier   int `json:"tier"`
}

type HintResponse struct {
	Tier  int    `json:"tier"`
	Text  string `json:"text"`
	Cost  int    `json:"cost"`
	Score int    `json:"score"`
}

// handleHint sells a hint tier to the team. The charge is irreversible
// and may drive the score negative. Returns 409 if the post is solved,
// the tier was already bought, or the clock is not running.
func handleHint(session *game.Session, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HintRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		code := teamCode(r)
		res, err := session.PurchaseHint(string(code), catalog.PostID(req.PostID), req.Tier)
		if errors.Is(err, game.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post or hint tier not found")
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

		broker.Publish(gmTopic, SSEEvent{
			Type:   "hint_purchased",
			Team:   string(code),
			PostID: req.PostID,
			Amount: res.Cost,
		})

		writeJSON(w, http.StatusOK, HintResponse{
			Tier:  res.Tier,
			Text:  res.Text,
			Cost:  res.Cost,
			Score: res.Score,
		})
	}
}

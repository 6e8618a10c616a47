package server

import (
	"net/http"

	"github.com/mysteria/outpost/internal/game"
)

type ClockResponse struct {
	Clock ClockInfo `json:"clock"`
}

// handleClockStart starts the game clock. No-op unless the clock is
// idle, so a double-tap on the GM dashboard cannot restart the timer.
func handleClockStart(session *game.Session, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := session.Start()
		broker.Publish(gmTopic, SSEEvent{Type: "clock", Phase: string(st.Phase)})
		writeJSON(w, http.StatusOK, ClockResponse{Clock: clockInfo(st)})
	}
}

// handleClockEnd forces the game to end regardless of remaining time.
// The very next gameplay call from any team sees the Ended phase.
func handleClockEnd(session *game.Session, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := session.End()
		broker.Publish(gmTopic, SSEEvent{Type: "clock", Phase: string(st.Phase)})
		writeJSON(w, http.StatusOK, ClockResponse{Clock: clockInfo(st)})
	}
}

// handleClockReset wipes every team and returns the clock to idle, for
// running a fresh event. Team session tokens die with the records they
// point at.
func handleClockReset(session *game.Session, sessions *teamSessions, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := session.Reset()
		sessions.Reset()
		broker.Publish(gmTopic, SSEEvent{Type: "clock", Phase: string(st.Phase)})
		writeJSON(w, http.StatusOK, ClockResponse{Clock: clockInfo(st)})
	}
}

// handleClockStatus reports the current phase. Reading re-derives
// Running vs Ended from the wall clock, so a poll from the GM
// dashboard is what flips an expired game to Ended.
func handleClockStatus(session *game.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ClockResponse{Clock: clockInfo(session.Status())})
	}
}

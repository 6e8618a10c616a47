package server

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/mysteria/outpost/internal/game"
)

func addRoutes(r chi.Router, logger *slog.Logger, session *game.Session, auth *gmAuth, db *sql.DB) {
	broker := NewBroker()
	sessions := newTeamSessions()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Mysteria Outpost API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	// Team routes — bearer session token issued by /api/join.
	r.Post("/api/join", handleJoin(session, sessions, broker))
	r.Get("/api/game/events", handleEvents(sessions, broker))
	r.Group(func(r chi.Router) {
		r.Use(teamMiddleware(sessions))
		r.Post("/api/rename", handleRename(session))
		r.Get("/api/game/state", handleGameState(session))
		r.Post("/api/game/answer", handleAnswer(session, broker))
		r.Post("/api/game/hint", handleHint(session, broker))
		r.Post("/api/game/reward", handleReward(session, broker))
	})

	// GM routes — shared-key login, session cookie afterwards.
	r.Post("/api/admin/login", handleAdminLogin(auth))
	r.Post("/api/admin/logout", handleAdminLogout(auth))
	r.Get("/api/admin/me", handleAdminMe(auth))
	r.Group(func(r chi.Router) {
		r.Use(gmMiddleware(auth))
		r.Get("/api/admin/clock", handleClockStatus(session))
		r.Post("/api/admin/clock/start", handleClockStart(session, broker))
		r.Post("/api/admin/clock/end", handleClockEnd(session, broker))
		r.Post("/api/admin/clock/reset", handleClockReset(session, sessions, broker))
		r.Get("/api/admin/leaderboard", handleLeaderboard(session))
		r.Get("/api/admin/events", handleAdminEvents(broker))
	})
}

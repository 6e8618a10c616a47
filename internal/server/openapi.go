package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi31"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi31.Spec {
	r := openapi31.NewReflector()
	r.Spec.Info.Title = "Mysteria Outpost API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the Mysteria outdoor quiz competition.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(map[string]struct {
		Status string `json:"status"`
	}{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(map[string]struct {
		Status string `json:"status"`
	}{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/join
	postJoin, _ := r.NewOperationContext(http.MethodPost, "/api/join")
	postJoin.SetSummary("Join as a team")
	postJoin.SetDescription("Create or re-open the team for a join code. Returns a session token. Rejoining a known code is idempotent.")
	postJoin.AddReqStructure(JoinRequest{})
	postJoin.AddRespStructure(JoinResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postJoin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postJoin)

	// POST /api/rename
	postRename, _ := r.NewOperationContext(http.MethodPost, "/api/rename")
	postRename.SetSummary("Rename team")
	postRename.SetDescription("Overwrites the team's display name. Requires Bearer token.")
	postRename.AddReqStructure(RenameRequest{})
	postRename.AddRespStructure(map[string]string{}, openapi.WithHTTPStatus(http.StatusOK))
	postRename.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postRename)

	// GET /api/game/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/game/state")
	getState.SetSummary("Get game state")
	getState.SetDescription("Returns the clock, the team's score, and per-post progress. Requires Bearer token.")
	getState.AddRespStructure(GameStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getState)

	// POST /api/game/answer
	postAnswer, _ := r.NewOperationContext(http.MethodPost, "/api/game/answer")
	postAnswer.SetSummary("Submit answer")
	postAnswer.SetDescription("Submit an answer for a post. A wrong answer costs the post's penalty; a correct one leaves a reward choice pending. Requires Bearer token.")
	postAnswer.AddReqStructure(AnswerRequest{})
	postAnswer.AddRespStructure(AnswerResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postAnswer)

	// POST /api/game/hint
	postHint, _ := r.NewOperationContext(http.MethodPost, "/api/game/hint")
	postHint.SetSummary("Buy a hint")
	postHint.SetDescription("Buy a hint tier for a post. Irreversible; each tier is sold once per team. Requires Bearer token.")
	postHint.AddReqStructure(HintRequest{})
	postHint.AddRespStructure(HintResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postHint.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	postHint.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postHint.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postHint)

	// POST /api/game/reward
	postReward, _ := r.NewOperationContext(http.MethodPost, "/api/game/reward")
	postReward.SetSummary("Claim reward")
	postReward.SetDescription("Finalize the reward for a solved post: the guaranteed amount, or a chance card draw. One-shot per post. Requires Bearer token.")
	postReward.AddReqStructure(RewardRequest{})
	postReward.AddRespStructure(RewardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postReward.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	postReward.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postReward.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postReward)

	// GET /api/game/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/game/events")
	getEvents.SetSummary("Team SSE stream")
	getEvents.SetDescription("Server-Sent Events stream for the team. Pass the session token as a query parameter.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// POST /api/admin/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	postLogin.SetSummary("GM login")
	postLogin.SetDescription("Authenticate with the shared GM key. Sets gm_session cookie.")
	postLogin.AddReqStructure(AdminLoginRequest{})
	postLogin.AddRespStructure(map[string]string{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postLogin)

	// POST /api/admin/logout
	postLogout, _ := r.NewOperationContext(http.MethodPost, "/api/admin/logout")
	postLogout.SetSummary("GM logout")
	postLogout.SetDescription("Clears the GM session and cookie.")
	postLogout.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postLogout)

	// GET /api/admin/me
	getMe, _ := r.NewOperationContext(http.MethodGet, "/api/admin/me")
	getMe.SetSummary("GM session check")
	getMe.SetDescription("Returns ok when the gm_session cookie is valid.")
	getMe.AddRespStructure(map[string]string{}, openapi.WithHTTPStatus(http.StatusOK))
	getMe.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getMe)

	// GET /api/admin/clock
	getClock, _ := r.NewOperationContext(http.MethodGet, "/api/admin/clock")
	getClock.SetSummary("Clock status")
	getClock.SetDescription("Returns the game phase and remaining time. Reading an expired clock flips it to ended. Requires gm_session cookie.")
	getClock.AddRespStructure(ClockResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getClock.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getClock)

	// POST /api/admin/clock/start
	postStart, _ := r.NewOperationContext(http.MethodPost, "/api/admin/clock/start")
	postStart.SetSummary("Start game")
	postStart.SetDescription("Starts the game clock. No-op unless the clock is idle. Requires gm_session cookie.")
	postStart.AddRespStructure(ClockResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postStart)

	// POST /api/admin/clock/end
	postEnd, _ := r.NewOperationContext(http.MethodPost, "/api/admin/clock/end")
	postEnd.SetSummary("End game")
	postEnd.SetDescription("Forces the game to end immediately, overriding remaining time. Requires gm_session cookie.")
	postEnd.AddRespStructure(ClockResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postEnd.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postEnd)

	// POST /api/admin/clock/reset
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/admin/clock/reset")
	postReset.SetSummary("Reset game")
	postReset.SetDescription("Clears every team and returns the clock to idle, ready for a new event. Requires gm_session cookie.")
	postReset.AddRespStructure(ClockResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postReset.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postReset)

	// GET /api/admin/leaderboard
	getBoard, _ := r.NewOperationContext(http.MethodGet, "/api/admin/leaderboard")
	getBoard.SetSummary("Leaderboard")
	getBoard.SetDescription("All teams ranked by score desc, solved posts desc, code asc. Requires gm_session cookie.")
	getBoard.AddRespStructure([]LeaderboardRow{}, openapi.WithHTTPStatus(http.StatusOK))
	getBoard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getBoard)

	// GET /api/admin/events
	getGMEvents, _ := r.NewOperationContext(http.MethodGet, "/api/admin/events")
	getGMEvents.SetSummary("GM SSE stream")
	getGMEvents.SetDescription("Server-Sent Events stream of all gameplay activity. Requires gm_session cookie.")
	getGMEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getGMEvents)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

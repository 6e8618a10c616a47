package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mysteria/outpost/internal/game"
)

// teamSessions maps bearer tokens to team codes. Tokens live in memory
// only; a process restart logs every device out, consistent with the
// game state itself being in-memory.
type teamSessions struct {
	mu      sync.RWMutex
	byToken map[string]game.TeamCode
}

func newTeamSessions() *teamSessions {
	return &teamSessions{byToken: make(map[string]game.TeamCode)}
}

// Create issues a fresh token for the team. A team may hold several
// tokens at once — each device joins with the shared code and gets its
// own.
func (s *teamSessions) Create(code game.TeamCode) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.byToken[token] = code
	s.mu.Unlock()
	return token
}

// Lookup resolves a token to its team code.
func (s *teamSessions) Lookup(token string) (game.TeamCode, bool) {
	s.mu.RLock()
	code, ok := s.byToken[token]
	s.mu.RUnlock()
	return code, ok
}

// Reset drops every token. Called when the GM resets the game, since
// the team records the tokens point at are gone too.
func (s *teamSessions) Reset() {
	s.mu.Lock()
	s.byToken = make(map[string]game.TeamCode)
	s.mu.Unlock()
}

// gmSessions tracks logged-in GM cookies.
type gmSessions struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func newGMSessions() *gmSessions {
	return &gmSessions{tokens: make(map[string]struct{})}
}

func (s *gmSessions) Create() string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()
	return token
}

func (s *gmSessions) Valid(token string) bool {
	s.mu.RLock()
	_, ok := s.tokens[token]
	s.mu.RUnlock()
	return ok
}

func (s *gmSessions) Delete(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

// Package game implements the session and reward engine for a live,
// time-boxed outdoor quiz competition: the game clock, per-team scoring
// and hint economy, the dual reward mechanism, and the leaderboard.
//
// All mutable state is owned by a single Session and guarded by one
// mutex, so every operation runs check-preconditions-and-apply as an
// atomic unit. A Steal debits one team and credits another inside the
// same critical section; no reader observes the transfer half done.
package game

import (
	"sync"
	"time"

	"github.com/mysteria/outpost/internal/catalog"
)

// Config carries the tunables of a game session. Values come from the
// environment; see the config package.
type Config struct {
	// Duration is the total game time applied on Start.
	Duration time.Duration

	// BaselineScore is the score a team starts with on first join.
	BaselineScore int

	// StealAmount is transferred from the leader on a Steal card, and
	// credited flat when no other team exists.
	StealAmount int

	// MinusPenalty is subtracted from the drawing team on a Minus card.
	MinusPenalty int

	// DoubleMultiplier scales the post's guaranteed reward on a Double
	// card. Must be at least 2 so the bonus strictly beats the safe path.
	DoubleMultiplier int

	// Deck is the card composition used by the chance strategies.
	Deck DeckComposition
}

// Session owns the whole in-memory game state: the clock, the team map,
// and the chance-draw policy. It is the only entry point for mutation;
// nothing outside this package writes a team's score.
type Session struct {
	mu      sync.Mutex
	cfg     Config
	catalog *catalog.Catalog
	chance  ChanceStrategy

	phase   Phase
	startAt time.Time
	endAt   time.Time
	teams   map[TeamCode]*team

	now func() time.Time
}

// NewSession creates an idle session with no teams. The chance strategy
// decides how ChooseChance draws its cards; see NewDeckStrategy and
// NewWeightedStrategy.
func NewSession(cfg Config, cat *catalog.Catalog, chance ChanceStrategy) *Session {
	return &Session{
		cfg:     cfg,
		catalog: cat,
		chance:  chance,
		phase:   PhaseIdle,
		teams:   make(map[TeamCode]*team),
		now:     time.Now,
	}
}

// Catalog returns the read-only post catalog this session plays on.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/mysteria/outpost/internal/catalog"
)

// Card is one chance-draw outcome.
type Card string

const (
	CardDouble Card = "double"
	CardMinus  Card = "minus"
	CardSteal  Card = "steal"
)

// DeckComposition is the card multiset of one deck, and doubles as the
// weight vector for the stateless strategy.
type DeckComposition struct {
	Double int
	Minus  int
	Steal  int
}

// Size returns the total number of cards in one deck.
func (c DeckComposition) Size() int {
	return c.Double + c.Minus + c.Steal
}

// ChanceStrategy decides the outcome of a chance draw. Draw is always
// called with the session lock held, so implementations may touch the
// team's deck without further synchronization.
type ChanceStrategy interface {
	Draw(t *team) Card
}

// DeckStrategy draws from a per-team shuffled deck without replacement.
// An exhausted deck is regenerated with the same composition. This is
// the canonical strategy: over any deck-sized window every team sees
// the exact configured card ratio.
type DeckStrategy struct {
	comp DeckComposition
	rng  *rand.Rand
}

// NewDeckStrategy builds the deck-based strategy. The caller supplies
// the random source so tests can seed it.
func NewDeckStrategy(comp DeckComposition, rng *rand.Rand) *DeckStrategy {
	return &DeckStrategy{comp: comp, rng: rng}
}

func (d *DeckStrategy) Draw(t *team) Card {
	if len(t.deck) == 0 {
		t.deck = d.newDeck()
	}
	card := t.deck[0]
	t.deck = t.deck[1:]
	return card
}

// deckShuffleRetries bounds the rejection sampling below. With the
// default 5/3/2 composition a valid permutation is found almost
// immediately; the deterministic repair after the limit is a safety
// net, not an expected path.
const deckShuffleRetries = 64

// newDeck permutes the configured multiset uniformly at random and
// rejects any ordering with two adjacent Minus cards.
func (d *DeckStrategy) newDeck() []Card {
	deck := make([]Card, 0, d.comp.Size())
	for i := 0; i < d.comp.Double; i++ {
		deck = append(deck, CardDouble)
	}
	for i := 0; i < d.comp.Minus; i++ {
		deck = append(deck, CardMinus)
	}
	for i := 0; i < d.comp.Steal; i++ {
		deck = append(deck, CardSteal)
	}

	for retry := 0; retry < deckShuffleRetries; retry++ {
		d.rng.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
		if !hasAdjacentMinus(deck) {
			return deck
		}
	}
	return repairAdjacentMinus(deck)
}

func hasAdjacentMinus(deck []Card) bool {
	for i := 1; i < len(deck); i++ {
		if deck[i] == CardMinus && deck[i-1] == CardMinus {
			return true
		}
	}
	return false
}

// repairAdjacentMinus swaps each offending Minus with the next
// non-Minus card. Satisfiable whenever minus <= ceil(size/2), which
// holds for every composition this game configures.
func repairAdjacentMinus(deck []Card) []Card {
	for i := 1; i < len(deck); i++ {
		if deck[i] != CardMinus || deck[i-1] != CardMinus {
			continue
		}
		for j := i + 1; j < len(deck); j++ {
			if deck[j] != CardMinus {
				deck[i], deck[j] = deck[j], deck[i]
				break
			}
		}
	}
	return deck
}

// WeightedStrategy draws a fresh weighted-random card on every call,
// independent of history. The composition counts act as weights, so
// the long-run odds match the deck strategy without its anti-streak
// guarantee. Selectable via CHANCE_STRATEGY=weighted.
type WeightedStrategy struct {
	comp DeckComposition
	rng  *rand.Rand
}

// NewWeightedStrategy builds the stateless strategy.
func NewWeightedStrategy(comp DeckComposition, rng *rand.Rand) *WeightedStrategy {
	return &WeightedStrategy{comp: comp, rng: rng}
}

func (w *WeightedStrategy) Draw(_ *team) Card {
	n := w.rng.IntN(w.comp.Size())
	switch {
	case n < w.comp.Double:
		return CardDouble
	case n < w.comp.Double+w.comp.Minus:
		return CardMinus
	default:
		return CardSteal
	}
}

// Outcome names the resolved reward path in API responses.
type Outcome string

const (
	OutcomeSafe   Outcome = "safe"
	OutcomeDouble Outcome = "double"
	OutcomeMinus  Outcome = "minus"
	OutcomeSteal  Outcome = "steal"
	// OutcomeBonus is the documented fallback when a Steal card is
	// drawn and no other team exists to steal from.
	OutcomeBonus Outcome = "bonus"
)

// RewardResult reports a finalized reward choice.
type RewardResult struct {
	Outcome    Outcome
	ScoreDelta int
	// Score is the drawing team's score after the effect.
	Score int
	// StolenFrom is set when Outcome is "steal".
	StolenFrom TeamCode
}

// ChooseSafe credits the post's guaranteed reward. The claim is
// write-once per (team, post): a repeat call, or a ChooseChance after
// it, fails Locked and changes nothing.
func (s *Session) ChooseSafe(rawCode string, postID catalog.PostID) (RewardResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, post, err := s.claimableLocked(rawCode, postID)
	if err != nil {
		return RewardResult{}, err
	}

	t.score += post.Reward
	t.rewardClaimed[postID] = struct{}{}
	return RewardResult{
		Outcome:    OutcomeSafe,
		ScoreDelta: post.Reward,
		Score:      t.score,
	}, nil
}

// ChooseChance draws the team's next chance card and applies it:
//
//   - Double: credit the post reward times the configured multiplier,
//     strictly more than the safe path.
//   - Minus: subtract the configured penalty from the drawing team.
//   - Steal: transfer the configured amount from the highest-ranked
//     other team. With no other team, degrade to a flat bonus.
//
// The claim is finalized whatever the card says — a bad draw cannot be
// retried into a good one.
func (s *Session) ChooseChance(rawCode string, postID catalog.PostID) (RewardResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, post, err := s.claimableLocked(rawCode, postID)
	if err != nil {
		return RewardResult{}, err
	}

	card := s.chance.Draw(t)
	t.rewardClaimed[postID] = struct{}{}

	switch card {
	case CardDouble:
		delta := post.Reward * s.cfg.DoubleMultiplier
		t.score += delta
		return RewardResult{Outcome: OutcomeDouble, ScoreDelta: delta, Score: t.score}, nil

	case CardMinus:
		t.score -= s.cfg.MinusPenalty
		return RewardResult{Outcome: OutcomeMinus, ScoreDelta: -s.cfg.MinusPenalty, Score: t.score}, nil

	default: // CardSteal
		victim := s.stealTargetLocked(t)
		if victim == nil {
			t.score += s.cfg.StealAmount
			return RewardResult{Outcome: OutcomeBonus, ScoreDelta: s.cfg.StealAmount, Score: t.score}, nil
		}
		// Debit and credit under the same lock; no reader sees the
		// transfer half done.
		victim.score -= s.cfg.StealAmount
		t.score += s.cfg.StealAmount
		return RewardResult{
			Outcome:    OutcomeSteal,
			ScoreDelta: s.cfg.StealAmount,
			Score:      t.score,
			StolenFrom: victim.code,
		}, nil
	}
}

// stealTargetLocked picks the victim of a Steal card: the first team
// other than the drawer in leaderboard order. Nil when the drawer is
// the only team.
func (s *Session) stealTargetLocked(drawer *team) *team {
	for _, st := range s.standingsLocked() {
		if st.Code != drawer.code {
			return s.teams[st.Code]
		}
	}
	return nil
}

// claimableLocked validates the shared reward preconditions: the team
// and post exist, the game is running, the post is solved, and no
// reward has been claimed for it yet.
func (s *Session) claimableLocked(rawCode string, postID catalog.PostID) (*team, catalog.Post, error) {
	t, err := s.teamLocked(rawCode)
	if err != nil {
		return nil, catalog.Post{}, err
	}
	post, ok := s.catalog.Get(postID)
	if !ok {
		return nil, catalog.Post{}, fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}

	s.expireLocked()
	if s.phase != PhaseRunning {
		return nil, catalog.Post{}, fmt.Errorf("game is not running: %w", ErrLocked)
	}
	if _, solved := t.solved[postID]; !solved {
		return nil, catalog.Post{}, fmt.Errorf("post %d not solved: %w", postID, ErrLocked)
	}
	if _, claimed := t.rewardClaimed[postID]; claimed {
		return nil, catalog.Post{}, fmt.Errorf("reward for post %d already claimed: %w", postID, ErrLocked)
	}
	return t, post, nil
}

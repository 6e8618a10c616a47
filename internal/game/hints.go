package game

import (
	"fmt"

	"github.com/mysteria/outpost/internal/catalog"
)

// HintResult is a purchased hint and the price paid for it.
type HintResult struct {
	Tier int
	Text string
	Cost int
	// Score is the team's score after the charge.
	Score int
}

// PurchaseHint sells the given hint tier to the team. The charge is
// unconditional and irreversible — no refunds, and the score may go
// negative. A tier is sold to a team at most once per post; repeat
// purchases fail Locked without re-charging. Buying hints for an
// already-solved post is also Locked.
func (s *Session) PurchaseHint(rawCode string, postID catalog.PostID, tier int) (HintResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.teamLocked(rawCode)
	if err != nil {
		return HintResult{}, err
	}
	post, ok := s.catalog.Get(postID)
	if !ok {
		return HintResult{}, fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}
	hint, ok := post.Hint(tier)
	if !ok {
		return HintResult{}, fmt.Errorf("post %d has no hint tier %d: %w", postID, tier, ErrNotFound)
	}

	s.expireLocked()
	if s.phase != PhaseRunning {
		return HintResult{}, fmt.Errorf("game is not running: %w", ErrLocked)
	}
	if _, solved := t.solved[postID]; solved {
		return HintResult{}, fmt.Errorf("post %d already solved: %w", postID, ErrLocked)
	}
	if _, used := t.hintsUsed[postID][tier]; used {
		return HintResult{}, fmt.Errorf("hint tier %d already purchased: %w", tier, ErrLocked)
	}

	t.score -= hint.Cost
	if t.hintsUsed[postID] == nil {
		t.hintsUsed[postID] = make(map[int]struct{})
	}
	t.hintsUsed[postID][tier] = struct{}{}

	return HintResult{
		Tier:  tier,
		Text:  hint.Text,
		Cost:  hint.Cost,
		Score: t.score,
	}, nil
}

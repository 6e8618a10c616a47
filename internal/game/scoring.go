package game

import (
	"fmt"

	"github.com/mysteria/outpost/internal/catalog"
)

// SubmitResult reports the outcome of an answer submission.
type SubmitResult struct {
	Correct bool
	// Penalty is the amount subtracted on a wrong answer, zero otherwise.
	Penalty int
	// Score is the team's score after the submission.
	Score int
	// Clue is the post's clue, revealed on a correct answer.
	Clue string
	// RewardPending is true after a correct answer: the post is now
	// solved but no points are credited until the team picks the safe
	// reward or a chance draw.
	RewardPending bool
}

// SubmitAnswer validates a team's answer against the post's accepted
// set. Wrong answers cost the post's fixed penalty and may drive the
// score negative. A correct answer marks the post solved immediately —
// it can never be submitted again — but crediting is deferred to
// ChooseSafe or ChooseChance.
func (s *Session) SubmitAnswer(rawCode string, postID catalog.PostID, rawAnswer string) (SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.teamLocked(rawCode)
	if err != nil {
		return SubmitResult{}, err
	}
	post, ok := s.catalog.Get(postID)
	if !ok {
		return SubmitResult{}, fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}

	s.expireLocked()
	if s.phase != PhaseRunning {
		return SubmitResult{}, fmt.Errorf("game is not running: %w", ErrLocked)
	}
	if _, solved := t.solved[postID]; solved {
		return SubmitResult{}, fmt.Errorf("post %d already solved: %w", postID, ErrLocked)
	}

	if !post.Accepts(rawAnswer) {
		t.score -= post.Penalty
		return SubmitResult{
			Correct: false,
			Penalty: post.Penalty,
			Score:   t.score,
		}, nil
	}

	t.solved[postID] = struct{}{}
	return SubmitResult{
		Correct:       true,
		Score:         t.score,
		Clue:          post.Clue,
		RewardPending: true,
	}, nil
}

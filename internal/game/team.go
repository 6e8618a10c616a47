package game

import (
	"fmt"
	"strings"

	"github.com/mysteria/outpost/internal/catalog"
)

// TeamCode is the join key identifying a team, e.g. "HOLD3". Codes are
// normalized on entry: trimmed, uppercased, internal spaces removed.
type TeamCode string

// NormalizeCode canonicalizes a raw team code.
func NormalizeCode(raw string) TeamCode {
	c := strings.ToUpper(strings.TrimSpace(raw))
	c = strings.ReplaceAll(c, " ", "")
	return TeamCode(c)
}

// team is the internal record. Score is only ever mutated through the
// scoring, hint, and reward entry points on Session.
type team struct {
	code  TeamCode
	name  string
	score int

	solved        map[catalog.PostID]struct{}
	hintsUsed     map[catalog.PostID]map[int]struct{}
	rewardClaimed map[catalog.PostID]struct{}
	deck          []Card
}

// TeamView is a read-only snapshot of a team, safe to use outside the
// session lock.
type TeamView struct {
	Code          TeamCode
	Name          string
	Score         int
	Solved        []catalog.PostID
	RewardClaimed []catalog.PostID
	HintsUsed     map[catalog.PostID][]int
}

func (t *team) view() TeamView {
	v := TeamView{
		Code:      t.code,
		Name:      t.name,
		Score:     t.score,
		HintsUsed: make(map[catalog.PostID][]int, len(t.hintsUsed)),
	}
	for id := range t.solved {
		v.Solved = append(v.Solved, id)
	}
	for id := range t.rewardClaimed {
		v.RewardClaimed = append(v.RewardClaimed, id)
	}
	for id, tiers := range t.hintsUsed {
		for tier := range tiers {
			v.HintsUsed[id] = append(v.HintsUsed[id], tier)
		}
	}
	return v
}

// CreateOrGet returns the team for code, creating it with the baseline
// score on first join. Rejoining with a known code is idempotent and
// returns the existing record untouched.
func (s *Session) CreateOrGet(rawCode string) (TeamView, error) {
	code := NormalizeCode(rawCode)
	if code == "" {
		return TeamView{}, fmt.Errorf("empty team code: %w", ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[code]
	if !ok {
		t = &team{
			code:          code,
			name:          string(code),
			score:         s.cfg.BaselineScore,
			solved:        make(map[catalog.PostID]struct{}),
			hintsUsed:     make(map[catalog.PostID]map[int]struct{}),
			rewardClaimed: make(map[catalog.PostID]struct{}),
		}
		s.teams[code] = t
	}
	return t.view(), nil
}

// Rename overwrites the team's display name. Allowed at any phase; a
// team may rename itself mid-game.
func (s *Session) Rename(rawCode, name string) (TeamView, error) {
	name = strings.TrimSpace(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.teamLocked(rawCode)
	if err != nil {
		return TeamView{}, err
	}
	if name != "" {
		t.name = name
	}
	return t.view(), nil
}

// Team returns a snapshot of the team for code.
func (s *Session) Team(rawCode string) (TeamView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.teamLocked(rawCode)
	if err != nil {
		return TeamView{}, err
	}
	return t.view(), nil
}

// Teams returns snapshots of every team, in no particular order.
// Consumers that need ranking use Leaderboard.
func (s *Session) Teams() []TeamView {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]TeamView, 0, len(s.teams))
	for _, t := range s.teams {
		views = append(views, t.view())
	}
	return views
}

func (s *Session) teamLocked(rawCode string) (*team, error) {
	t, ok := s.teams[NormalizeCode(rawCode)]
	if !ok {
		return nil, fmt.Errorf("team %q: %w", rawCode, ErrNotFound)
	}
	return t, nil
}

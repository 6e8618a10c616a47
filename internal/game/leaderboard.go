package game

import "sort"

// Standing is one leaderboard row.
type Standing struct {
	Rank        int
	Code        TeamCode
	Name        string
	Score       int
	SolvedCount int
}

// Leaderboard returns all teams in a deterministic total order: score
// descending, then solved posts descending, then team code ascending.
// Pure snapshot, no side effects.
func (s *Session) Leaderboard() []Standing {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.standingsLocked()
}

func (s *Session) standingsLocked() []Standing {
	rows := make([]Standing, 0, len(s.teams))
	for _, t := range s.teams {
		rows = append(rows, Standing{
			Code:        t.code,
			Name:        t.name,
			Score:       t.score,
			SolvedCount: len(t.solved),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		if rows[i].SolvedCount != rows[j].SolvedCount {
			return rows[i].SolvedCount > rows[j].SolvedCount
		}
		return rows[i].Code < rows[j].Code
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

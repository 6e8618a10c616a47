package game

import "time"

// Phase is the global game phase driven by the GM.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRunning Phase = "running"
	PhaseEnded   Phase = "ended"
)

// ClockStatus is a snapshot of the game clock.
type ClockStatus struct {
	Phase     Phase
	StartedAt *time.Time
	EndsAt    *time.Time
	Remaining time.Duration
}

// There is no background timer. Every phase-gated call re-derives
// Running vs Ended from the wall clock, so the Running->Ended flip is
// observed on read, not scheduled.
func (s *Session) expireLocked() {
	if s.phase == PhaseRunning && !s.now().Before(s.endAt) {
		s.phase = PhaseEnded
	}
}

// Start begins the game. No-op unless the clock is idle.
func (s *Session) Start() ClockStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseIdle {
		s.phase = PhaseRunning
		s.startAt = s.now()
		s.endAt = s.startAt.Add(s.cfg.Duration)
	}
	return s.clockStatusLocked()
}

// End forces the game to Ended, regardless of remaining time. The very
// next phase-gated call from any team observes the new phase.
func (s *Session) End() ClockStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = PhaseEnded
	return s.clockStatusLocked()
}

// Reset returns the clock to Idle and drops every team record.
func (s *Session) Reset() ClockStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = PhaseIdle
	s.startAt = time.Time{}
	s.endAt = time.Time{}
	s.teams = make(map[TeamCode]*team)
	return s.clockStatusLocked()
}

// Status reports the current phase, flipping Running to Ended first if
// the deadline has passed.
func (s *Session) Status() ClockStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked()
	return s.clockStatusLocked()
}

func (s *Session) clockStatusLocked() ClockStatus {
	st := ClockStatus{Phase: s.phase}
	if s.phase == PhaseIdle {
		return st
	}
	if !s.startAt.IsZero() {
		t := s.startAt
		st.StartedAt = &t
		e := s.endAt
		st.EndsAt = &e
	}
	if s.phase == PhaseRunning {
		st.Remaining = s.endAt.Sub(s.now())
	}
	return st
}

package game

import (
	"errors"
	"testing"
)

// Team joins while the clock is idle: submissions are locked and the
// baseline score is untouched.
func TestSubmitLockedWhileIdle(t *testing.T) {
	s := newTestSession(t, nil)
	s.CreateOrGet("HOLD1")

	_, err := s.SubmitAnswer("HOLD1", 1, "SVAR1")
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("err = %v, want ErrLocked", err)
	}

	team, _ := s.Team("HOLD1")
	if team.Score != 50 {
		t.Errorf("score = %d, want 50", team.Score)
	}
}

func TestSubmitWrongAnswerPenalty(t *testing.T) {
	s := newTestSession(t, nil)
	s.CreateOrGet("HOLD1")
	s.Start()

	res, err := s.SubmitAnswer("HOLD1", 1, "abc")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Correct {
		t.Fatal("abc accepted as correct")
	}
	if res.Penalty != 5 || res.Score != 45 {
		t.Errorf("penalty = %d score = %d, want 5 and 45", res.Penalty, res.Score)
	}

	team, _ := s.Team("HOLD1")
	if len(team.Solved) != 0 {
		t.Errorf("wrong answer marked post solved: %v", team.Solved)
	}
}

func TestSubmitCorrectDefersReward(t *testing.T) {
	s := newTestSession(t, nil)
	s.CreateOrGet("HOLD1")
	s.Start()

	res, err := s.SubmitAnswer("HOLD1", 1, "svar1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Correct || !res.RewardPending {
		t.Fatalf("res = %+v, want correct with reward pending", res)
	}
	// No points yet: crediting happens in the reward choice.
	if res.Score != 50 {
		t.Errorf("score = %d, want 50 (unchanged)", res.Score)
	}
	if res.Clue == "" {
		t.Error("clue not revealed on solve")
	}

	team, _ := s.Team("HOLD1")
	if len(team.Solved) != 1 || team.Solved[0] != 1 {
		t.Errorf("solved = %v, want [1]", team.Solved)
	}
}

func TestSubmitNormalization(t *testing.T) {
	s := newTestSession(t, nil)
	s.CreateOrGet("HOLD1")
	s.Start()

	// Lowercase, padding, and internal whitespace runs all normalize
	// away; "SVAR 1" is a separately accepted spelling.
	res, err := s.SubmitAnswer("HOLD1", 1, "  svar   1 ")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Correct {
		t.Fatal("normalized variant rejected")
	}
}

func TestSubmitSolvedPostLocked(t *testing.T) {
	s := newTestSession(t, nil)
	s.CreateOrGet("HOLD1")
	s.Start()
	s.SubmitAnswer("HOLD1", 1, "SVAR1")

	_, err := s.SubmitAnswer("HOLD1", 1, "SVAR1")
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("resubmit err = %v, want ErrLocked", err)
	}

	team, _ := s.Team("HOLD1")
	if team.Score != 50 {
		t.Errorf("resubmit changed score: %d", team.Score)
	}
}

func TestSubmitUnknownPostOrTeam(t *testing.T) {
	s := newTestSession(t, nil)
	s.CreateOrGet("HOLD1")
	s.Start()

	if _, err := s.SubmitAnswer("HOLD1", 99, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown post err = %v, want ErrNotFound", err)
	}
	if _, err := s.SubmitAnswer("HOLD9", 1, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown team err = %v, want ErrNotFound", err)
	}
}

func TestScoreUnboundedBelow(t *testing.T) {
	s := newTestSession(t, nil)
	s.CreateOrGet("HOLD1")
	s.Start()

	for i := 0; i < 15; i++ {
		s.SubmitAnswer("HOLD1", 1, "forkert")
	}

	team, _ := s.Team("HOLD1")
	if want := 50 - 15*5; team.Score != want {
		t.Errorf("score = %d, want %d", team.Score, want)
	}
	if team.Score >= 0 {
		t.Errorf("score should have gone negative, got %d", team.Score)
	}
}

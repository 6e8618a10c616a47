package game

import (
	"errors"
	"testing"
)

func TestPurchaseHint(t *testing.T) {
	s := newTestSession(t, nil)
	s.CreateOrGet("HOLD1")
	s.Start()

	res, err := s.PurchaseHint("HOLD1", 1, 1)
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if res.Text != "første tip" || res.Cost != 10 || res.Score != 40 {
		t.Errorf("res = %+v", res)
	}

	// Tier 2 costs more and charges on top.
	res, err = s.PurchaseHint("HOLD1", 1, 2)
	if err != nil {
		t.Fatalf("purchase tier 2: %v", err)
	}
	if res.Cost != 20 || res.Score != 20 {
		t.Errorf("tier 2 res = %+v", res)
	}
}

func TestPurchaseHintTwiceNoRecharge(t *testing.T) {
	s := newTestSession(t, nil)
	s.CreateOrGet("HOLD1")
	s.Start()
	s.PurchaseHint("HOLD1", 1, 1)

	_, err := s.PurchaseHint("HOLD1", 1, 1)
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("err = %v, want ErrLocked", err)
	}

	team, _ := s.Team("HOLD1")
	if team.Score != 40 {
		t.Errorf("repeat purchase re-charged: score = %d, want 40", team.Score)
	}
}

func TestPurchaseHintLockedAfterSolve(t *testing.T) {
	s := newTestSession(t, nil)
	s.CreateOrGet("HOLD1")
	s.Start()
	s.SubmitAnswer("HOLD1", 1, "SVAR1")

	if _, err := s.PurchaseHint("HOLD1", 1, 1); !errors.Is(err, ErrLocked) {
		t.Fatalf("err = %v, want ErrLocked", err)
	}
}

func TestPurchaseHintLockedWhileIdle(t *testing.T) {
	s := newTestSession(t, nil)
	s.CreateOrGet("HOLD1")

	if _, err := s.PurchaseHint("HOLD1", 1, 1); !errors.Is(err, ErrLocked) {
		t.Fatalf("err = %v, want ErrLocked", err)
	}
}

func TestPurchaseHintUnknownTier(t *testing.T) {
	s := newTestSession(t, nil)
	s.CreateOrGet("HOLD1")
	s.Start()

	if _, err := s.PurchaseHint("HOLD1", 3, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("post without hints: err = %v, want ErrNotFound", err)
	}
	if _, err := s.PurchaseHint("HOLD1", 1, 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown tier: err = %v, want ErrNotFound", err)
	}
}

// Hints charge unconditionally, even into negative territory.
func TestPurchaseHintNegativeScore(t *testing.T) {
	s := newTestSession(t, nil)
	s.CreateOrGet("HOLD1")
	s.Start()

	for i := 0; i < 12; i++ {
		s.SubmitAnswer("HOLD1", 1, "forkert")
	}
	res, err := s.PurchaseHint("HOLD1", 1, 2)
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if res.Score != 50-12*5-20 {
		t.Errorf("score = %d", res.Score)
	}
}

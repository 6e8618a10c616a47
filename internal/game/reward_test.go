package game

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestChooseSafeOneShot(t *testing.T) {
	s := newTestSession(t, nil)
	s.CreateOrGet("HOLD1")
	s.Start()
	s.SubmitAnswer("HOLD1", 1, "svar1")

	res, err := s.ChooseSafe("HOLD1", 1)
	if err != nil {
		t.Fatalf("choose safe: %v", err)
	}
	if res.Outcome != OutcomeSafe || res.ScoreDelta != 100 || res.Score != 150 {
		t.Errorf("res = %+v", res)
	}

	// Repeat claims — either path — are locked and change nothing.
	if _, err := s.ChooseSafe("HOLD1", 1); !errors.Is(err, ErrLocked) {
		t.Errorf("second safe err = %v, want ErrLocked", err)
	}
	if _, err := s.ChooseChance("HOLD1", 1); !errors.Is(err, ErrLocked) {
		t.Errorf("chance after safe err = %v, want ErrLocked", err)
	}
	team, _ := s.Team("HOLD1")
	if team.Score != 150 {
		t.Errorf("score = %d, want 150", team.Score)
	}
}

func TestChooseChanceLockedUntilSolved(t *testing.T) {
	s := newTestSession(t, nil)
	s.CreateOrGet("HOLD1")
	s.Start()

	if _, err := s.ChooseChance("HOLD1", 1); !errors.Is(err, ErrLocked) {
		t.Fatalf("unsolved post err = %v, want ErrLocked", err)
	}
	if _, err := s.ChooseSafe("HOLD1", 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown post err = %v, want ErrNotFound", err)
	}
}

func TestChanceDoubleBeatsSafe(t *testing.T) {
	s := newTestSession(t, forceStrategy(CardDouble))
	s.CreateOrGet("HOLD1")
	s.Start()
	s.SubmitAnswer("HOLD1", 1, "SVAR1")

	res, err := s.ChooseChance("HOLD1", 1)
	if err != nil {
		t.Fatalf("chance: %v", err)
	}
	if res.Outcome != OutcomeDouble {
		t.Fatalf("outcome = %q, want double", res.Outcome)
	}
	post, _ := s.Catalog().Get(1)
	if res.ScoreDelta <= post.Reward {
		t.Errorf("double delta %d not strictly above safe reward %d", res.ScoreDelta, post.Reward)
	}
	if res.Score != 50+res.ScoreDelta {
		t.Errorf("score = %d", res.Score)
	}
}

func TestChanceMinus(t *testing.T) {
	s := newTestSession(t, forceStrategy(CardMinus))
	s.CreateOrGet("HOLD1")
	s.Start()
	s.SubmitAnswer("HOLD1", 1, "SVAR1")

	res, err := s.ChooseChance("HOLD1", 1)
	if err != nil {
		t.Fatalf("chance: %v", err)
	}
	if res.Outcome != OutcomeMinus || res.ScoreDelta != -25 || res.Score != 25 {
		t.Errorf("res = %+v", res)
	}
}

// HOLD2 leads with 80; HOLD1 at 45 draws Steal: 95 vs 30.
func TestChanceStealFromLeader(t *testing.T) {
	s := newTestSession(t, forceStrategy(CardSteal))
	s.CreateOrGet("HOLD1")
	s.CreateOrGet("HOLD2")
	s.Start()

	s.SubmitAnswer("HOLD1", 1, "abc") // 45
	s.teams["HOLD2"].score = 80
	s.SubmitAnswer("HOLD1", 2, "SVAR2")

	res, err := s.ChooseChance("HOLD1", 2)
	if err != nil {
		t.Fatalf("chance: %v", err)
	}
	if res.Outcome != OutcomeSteal || res.StolenFrom != "HOLD2" {
		t.Fatalf("res = %+v", res)
	}
	if res.Score != 95 {
		t.Errorf("drawer score = %d, want 95", res.Score)
	}
	victim, _ := s.Team("HOLD2")
	if victim.Score != 30 {
		t.Errorf("victim score = %d, want 30", victim.Score)
	}
}

// The drawer leads: the transfer falls back to the next-ranked team.
func TestChanceStealSelfLeaderFallsBack(t *testing.T) {
	s := newTestSession(t, forceStrategy(CardSteal))
	s.CreateOrGet("HOLD1")
	s.CreateOrGet("HOLD2")
	s.CreateOrGet("HOLD3")
	s.Start()

	s.teams["HOLD1"].score = 200
	s.teams["HOLD2"].score = 120
	s.teams["HOLD3"].score = 90
	s.SubmitAnswer("HOLD1", 1, "SVAR1")

	res, err := s.ChooseChance("HOLD1", 1)
	if err != nil {
		t.Fatalf("chance: %v", err)
	}
	if res.StolenFrom != "HOLD2" {
		t.Errorf("stolen from %q, want HOLD2", res.StolenFrom)
	}
	victim, _ := s.Team("HOLD2")
	if victim.Score != 70 {
		t.Errorf("victim score = %d, want 70", victim.Score)
	}
}

// A lone team drawing Steal gets the flat bonus instead.
func TestChanceStealNoOtherTeam(t *testing.T) {
	s := newTestSession(t, forceStrategy(CardSteal))
	s.CreateOrGet("HOLD1")
	s.Start()
	s.SubmitAnswer("HOLD1", 1, "SVAR1")

	res, err := s.ChooseChance("HOLD1", 1)
	if err != nil {
		t.Fatalf("chance: %v", err)
	}
	if res.Outcome != OutcomeBonus || res.ScoreDelta != 50 || res.Score != 100 {
		t.Errorf("res = %+v", res)
	}
}

func TestDeckCompositionAndAntiStreak(t *testing.T) {
	comp := DeckComposition{Double: 5, Minus: 3, Steal: 2}

	for seed := uint64(0); seed < 100; seed++ {
		d := NewDeckStrategy(comp, rand.New(rand.NewPCG(seed, 0)))
		deck := d.newDeck()

		if len(deck) != comp.Size() {
			t.Fatalf("seed %d: deck size = %d, want %d", seed, len(deck), comp.Size())
		}
		counts := map[Card]int{}
		for _, c := range deck {
			counts[c]++
		}
		if counts[CardDouble] != 5 || counts[CardMinus] != 3 || counts[CardSteal] != 2 {
			t.Fatalf("seed %d: composition = %v", seed, counts)
		}
		if hasAdjacentMinus(deck) {
			t.Fatalf("seed %d: adjacent minus cards in %v", seed, deck)
		}
	}
}

// Drawing through a deck and past it: each 10-card window carries the
// full composition, and the regenerated deck is valid too.
func TestDeckRegeneratesWhenExhausted(t *testing.T) {
	comp := DeckComposition{Double: 5, Minus: 3, Steal: 2}
	d := NewDeckStrategy(comp, rand.New(rand.NewPCG(7, 0)))
	tm := &team{}

	for window := 0; window < 3; window++ {
		counts := map[Card]int{}
		for i := 0; i < comp.Size(); i++ {
			counts[d.Draw(tm)]++
		}
		if counts[CardDouble] != 5 || counts[CardMinus] != 3 || counts[CardSteal] != 2 {
			t.Fatalf("window %d composition = %v", window, counts)
		}
	}
}

func TestRepairAdjacentMinus(t *testing.T) {
	deck := []Card{CardMinus, CardMinus, CardMinus, CardDouble, CardDouble, CardSteal}
	repaired := repairAdjacentMinus(deck)

	if hasAdjacentMinus(repaired) {
		t.Fatalf("repair left adjacent minus: %v", repaired)
	}
	counts := map[Card]int{}
	for _, c := range repaired {
		counts[c]++
	}
	if counts[CardMinus] != 3 || counts[CardDouble] != 2 || counts[CardSteal] != 1 {
		t.Fatalf("repair changed composition: %v", counts)
	}
}

func TestWeightedStrategyDraws(t *testing.T) {
	comp := DeckComposition{Double: 5, Minus: 3, Steal: 2}
	w := NewWeightedStrategy(comp, rand.New(rand.NewPCG(3, 0)))

	seen := map[Card]int{}
	for i := 0; i < 1000; i++ {
		card := w.Draw(nil)
		switch card {
		case CardDouble, CardMinus, CardSteal:
			seen[card]++
		default:
			t.Fatalf("unknown card %q", card)
		}
	}
	// All three outcomes should show up over 1000 draws.
	if len(seen) != 3 {
		t.Errorf("outcomes seen = %v", seen)
	}
}

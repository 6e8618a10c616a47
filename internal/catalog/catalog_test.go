package catalog

import "testing"

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  timeglas ", "TIMEGLAS"},
		{"time   glas", "TIME GLAS"},
		{"grøn-rød-blå", "GRØN-RØD-BLÅ"},
		{"\tnord\n", "NORD"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeAnswer(tt.in); got != tt.want {
			t.Errorf("NormalizeAnswer(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPostAccepts(t *testing.T) {
	p := Post{Answers: []string{"TIMEGLAS", "TIME GLAS"}}

	for _, raw := range []string{"timeglas", " TIMEGLAS ", "time  glas"} {
		if !p.Accepts(raw) {
			t.Errorf("Accepts(%q) = false", raw)
		}
	}
	if p.Accepts("kompas") {
		t.Error("Accepts(kompas) = true")
	}
}

func TestNewNormalizesAndOrders(t *testing.T) {
	c := New([]Post{
		{ID: 3, Answers: []string{" nord "}},
		{ID: 1, Answers: []string{"syd"}},
	})

	posts := c.Posts()
	if len(posts) != 2 || posts[0].ID != 1 || posts[1].ID != 3 {
		t.Fatalf("posts = %+v", posts)
	}

	p, ok := c.Get(3)
	if !ok {
		t.Fatal("post 3 missing")
	}
	if p.Answers[0] != "NORD" {
		t.Errorf("answers not normalized on load: %v", p.Answers)
	}
}

func TestHintLookup(t *testing.T) {
	p := Post{Hints: []Hint{{Tier: 1, Cost: 10}, {Tier: 2, Cost: 20}}}

	h, ok := p.Hint(2)
	if !ok || h.Cost != 20 {
		t.Fatalf("Hint(2) = %+v, %v", h, ok)
	}
	if _, ok := p.Hint(5); ok {
		t.Error("Hint(5) should not exist")
	}
}

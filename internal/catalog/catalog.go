// Package catalog holds the static post catalog: titles, accepted
// answers, hint ladders, and reward amounts. The catalog is loaded from
// SQLite once at startup and is read-only for the rest of the process;
// game state itself is never persisted.
package catalog

import (
	"sort"
	"strings"
)

// PostID identifies a post in the catalog.
type PostID int

// Hint is one rung of a post's hint ladder. Tiers start at 1 and costs
// increase with tier.
type Hint struct {
	Tier int    `json:"tier"`
	Cost int    `json:"cost"`
	Text string `json:"text"`
}

// Post is one challenge. Immutable once loaded.
type Post struct {
	ID       PostID
	Title    string
	Question string
	// Clue is revealed to the team when the post is solved.
	Clue string
	// Answers holds every accepted spelling, normalized with
	// NormalizeAnswer. Punctuation variants are separate entries.
	Answers []string
	// Hints is the hint ladder, ordered by ascending tier.
	Hints []Hint
	// Reward is the guaranteed amount for the safe reward path.
	Reward int
	// Penalty is subtracted on a wrong answer.
	Penalty int
}

// Hint returns the ladder entry for tier, if present.
func (p Post) Hint(tier int) (Hint, bool) {
	for _, h := range p.Hints {
		if h.Tier == tier {
			return h, true
		}
	}
	return Hint{}, false
}

// Accepts reports whether raw matches one of the post's accepted
// answers after normalization.
func (p Post) Accepts(raw string) bool {
	norm := NormalizeAnswer(raw)
	for _, a := range p.Answers {
		if a == norm {
			return true
		}
	}
	return false
}

// NormalizeAnswer canonicalizes an answer string: trim, uppercase,
// collapse internal whitespace runs to single spaces.
func NormalizeAnswer(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), " "))
}

// Catalog is an immutable set of posts keyed by id.
type Catalog struct {
	posts map[PostID]Post
	order []PostID
}

// New builds a catalog from posts, normalizing every accepted answer.
func New(posts []Post) *Catalog {
	c := &Catalog{posts: make(map[PostID]Post, len(posts))}
	for _, p := range posts {
		answers := make([]string, len(p.Answers))
		for i, a := range p.Answers {
			answers[i] = NormalizeAnswer(a)
		}
		p.Answers = answers
		c.posts[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	sort.Slice(c.order, func(i, j int) bool { return c.order[i] < c.order[j] })
	return c
}

// Get returns the post with the given id.
func (c *Catalog) Get(id PostID) (Post, bool) {
	p, ok := c.posts[id]
	return p, ok
}

// Posts returns all posts in ascending id order.
func (c *Catalog) Posts() []Post {
	out := make([]Post, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.posts[id])
	}
	return out
}

// Len returns the number of posts.
func (c *Catalog) Len() int {
	return len(c.posts)
}

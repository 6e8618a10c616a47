package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Load reads the full posts table into an immutable Catalog.
func Load(ctx context.Context, db *sql.DB) (*Catalog, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, title, question, clue, answers_json, hints_json, reward, penalty
		FROM posts
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying posts: %w", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var (
			p           Post
			answersJSON string
			hintsJSON   string
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Question, &p.Clue,
			&answersJSON, &hintsJSON, &p.Reward, &p.Penalty); err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		if err := json.Unmarshal([]byte(answersJSON), &p.Answers); err != nil {
			return nil, fmt.Errorf("post %d answers: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(hintsJSON), &p.Hints); err != nil {
			return nil, fmt.Errorf("post %d hints: %w", p.ID, err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading posts: %w", err)
	}
	if len(posts) == 0 {
		return nil, fmt.Errorf("posts table is empty")
	}
	return New(posts), nil
}

// Seed inserts the demo posts if the table is empty. Idempotent.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return fmt.Errorf("counting posts: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range demoPosts() {
		answersJSON, err := json.Marshal(p.Answers)
		if err != nil {
			return err
		}
		hintsJSON, err := json.Marshal(p.Hints)
		if err != nil {
			return err
		}
		_, err = db.ExecContext(ctx, `
			INSERT INTO posts (id, title, question, clue, answers_json, hints_json, reward, penalty)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, p.ID, p.Title, p.Question, p.Clue, string(answersJSON), string(hintsJSON), p.Reward, p.Penalty)
		if err != nil {
			return fmt.Errorf("seeding post %d: %w", p.ID, err)
		}
	}
	return nil
}

// demoPosts is the Mysteria demo course.
func demoPosts() []Post {
	return []Post{
		{
			ID:       1,
			Title:    "Post 1 – Skovkanten",
			Question: "Hvilket symbol fandt I?",
			Clue:     "Ledetråd: I kan udelukke PERSON C.",
			Answers:  []string{"TIMEGLAS", "TIME GLAS"},
			Hints: []Hint{
				{Tier: 1, Cost: 10, Text: "Tip: Det er et symbol på tid."},
				{Tier: 2, Cost: 20, Text: "Tip: Vend det på hovedet, og det starter forfra."},
			},
			Reward:  100,
			Penalty: 5,
		},
		{
			ID:       2,
			Title:    "Post 2 – Lysningen",
			Question: "Hvilken retning peger pilene samlet set?",
			Clue:     "Ledetråd: GENSTAND B var ikke involveret.",
			Answers:  []string{"NORD"},
			Hints: []Hint{
				{Tier: 1, Cost: 10, Text: "Tip: Følg den længste pil først."},
				{Tier: 2, Cost: 20, Text: "Tip: Kompassets røde ende."},
			},
			Reward:  100,
			Penalty: 5,
		},
		{
			ID:       3,
			Title:    "Post 3 – Stenringen",
			Question: "Hvilken farve-sekvens var korrekt?",
			Clue:     "Ledetråd: Hændelsen skete IKKE ved STED D.",
			Answers:  []string{"GRØN-RØD-BLÅ", "GRØN RØD BLÅ", "GRØN,RØD,BLÅ"},
			Hints: []Hint{
				{Tier: 1, Cost: 10, Text: "Tip: Start ved den mosgroede sten."},
				{Tier: 2, Cost: 20, Text: "Tip: Tre farver, ingen gentagelser."},
			},
			Reward:  100,
			Penalty: 5,
		},
	}
}

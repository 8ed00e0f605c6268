package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/amina/career-match/internal/types"
)

// Candidate represents a stored candidate record.
type Candidate struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	FieldOfStudy string    `json:"field_of_study"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateCandidate inserts a new candidate and returns the stored record.
func (db *DB) CreateCandidate(ctx context.Context, name, email, fieldOfStudy string) (*Candidate, error) {
	var c Candidate
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, email, field_of_study)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, email, field_of_study, created_at`,
		name, email, fieldOfStudy,
	).Scan(&c.ID, &c.Name, &c.Email, &c.FieldOfStudy, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return &c, nil
}

// GetCandidate retrieves a candidate by ID. Returns nil if not found.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*Candidate, error) {
	var c Candidate
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, field_of_study, created_at
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.FieldOfStudy, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return &c, nil
}

// ReplaceSkills replaces a candidate's skill list, preserving the given
// order. Profile order matters to the engine: ties between equally similar
// skills keep the first-seen one.
func (db *DB) ReplaceSkills(ctx context.Context, candidateID uuid.UUID, skills []types.CandidateSkill) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM candidate_skills WHERE candidate_id = $1`, candidateID); err != nil {
		return fmt.Errorf("failed to clear skills: %w", err)
	}

	for i, skill := range skills {
		if _, err := tx.Exec(ctx,
			`INSERT INTO candidate_skills (candidate_id, name, level, verified, position)
			 VALUES ($1, $2, $3, $4, $5)`,
			candidateID, skill.Name, skill.Level, skill.Verified, i,
		); err != nil {
			return fmt.Errorf("failed to insert skill %s: %w", skill.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit skills: %w", err)
	}
	return nil
}

// ListSkills returns a candidate's skills in stored order.
func (db *DB) ListSkills(ctx context.Context, candidateID uuid.UUID) ([]types.CandidateSkill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, level, verified
		 FROM candidate_skills
		 WHERE candidate_id = $1
		 ORDER BY position ASC`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []types.CandidateSkill
	for rows.Next() {
		var s types.CandidateSkill
		if err := rows.Scan(&s.Name, &s.Level, &s.Verified); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// GetCandidateProfile assembles the engine input for a stored candidate.
// Returns nil if the candidate does not exist.
func (db *DB) GetCandidateProfile(ctx context.Context, candidateID uuid.UUID) (*types.CandidateProfile, error) {
	candidate, err := db.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, nil
	}

	skills, err := db.ListSkills(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	return &types.CandidateProfile{
		Skills:       skills,
		FieldOfStudy: candidate.FieldOfStudy,
	}, nil
}

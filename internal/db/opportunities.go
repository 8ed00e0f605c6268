package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/amina/career-match/internal/types"
)

// CreateOpportunity inserts a new opportunity and returns it with its
// generated ID.
func (db *DB) CreateOpportunity(ctx context.Context, opp types.Opportunity) (*types.Opportunity, error) {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO opportunities
		 (title, company, location, type, salary, url, description, deadline, required_skills, sector, department)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		opp.Title, opp.Company, opp.Location, opp.Type, opp.Salary, opp.URL,
		opp.Description, opp.Deadline, opp.RequiredSkills, opp.Sector, opp.Department,
	).Scan(&opp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}
	return &opp, nil
}

// GetOpportunity retrieves an opportunity by ID. Returns nil if not found.
func (db *DB) GetOpportunity(ctx context.Context, id uuid.UUID) (*types.Opportunity, error) {
	var opp types.Opportunity
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, company, location, type, salary, url, description,
		        deadline, required_skills, sector, department
		 FROM opportunities WHERE id = $1`,
		id,
	).Scan(&opp.ID, &opp.Title, &opp.Company, &opp.Location, &opp.Type,
		&opp.Salary, &opp.URL, &opp.Description, &opp.Deadline,
		&opp.RequiredSkills, &opp.Sector, &opp.Department)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get opportunity: %w", err)
	}
	return &opp, nil
}

// ListActiveOpportunities returns active opportunities, newest first,
// capped at limit.
func (db *DB) ListActiveOpportunities(ctx context.Context, limit int) ([]types.Opportunity, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, company, location, type, salary, url, description,
		        deadline, required_skills, sector, department
		 FROM opportunities
		 WHERE active
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}
	defer rows.Close()

	var opportunities []types.Opportunity
	for rows.Next() {
		var opp types.Opportunity
		if err := rows.Scan(&opp.ID, &opp.Title, &opp.Company, &opp.Location,
			&opp.Type, &opp.Salary, &opp.URL, &opp.Description, &opp.Deadline,
			&opp.RequiredSkills, &opp.Sector, &opp.Department); err != nil {
			return nil, fmt.Errorf("failed to scan opportunity: %w", err)
		}
		opportunities = append(opportunities, opp)
	}
	return opportunities, rows.Err()
}

// DeactivateOpportunity marks an opportunity inactive so it no longer
// appears in catalog listings. Returns false if the ID does not exist.
func (db *DB) DeactivateOpportunity(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE opportunities SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate opportunity: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/girigiri/models"
)

// ErrDuplicateDistrict is returned when a dataset repeats a district id
var ErrDuplicateDistrict = errors.New("duplicate district id")

// ReplaceDistricts swaps the stored dataset for districts in one transaction.
// Input order is kept in the position columns. District ids must be unique;
// a repeated id is rejected before anything is written.
func ReplaceDistricts(ctx context.Context, db *sql.DB, districts []models.District) error {
	seen := make(map[string]bool, len(districts))
	for _, d := range districts {
		if seen[d.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateDistrict, d.ID)
		}
		seen[d.ID] = true
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Candidates first; SQLite only cascades with foreign_keys enabled
	if _, err := tx.ExecContext(ctx, `DELETE FROM candidate`); err != nil {
		return fmt.Errorf("failed to clear candidates: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM district`); err != nil {
		return fmt.Errorf("failed to clear districts: %w", err)
	}

	for i, d := range districts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO district (id, prefecture, name, margin, total_votes, position)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, d.ID, d.Prefecture, d.Name, d.Margin, d.TotalVotes, i)
		if err != nil {
			return fmt.Errorf("failed to insert district %s: %w", d.ID, err)
		}

		for j, c := range d.Candidates {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO candidate (district_id, id, name, party, votes, is_winner, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, d.ID, c.ID, c.Name, c.Party, c.Votes, c.IsWinner, j)
			if err != nil {
				return fmt.Errorf("failed to insert candidate %s/%s: %w", d.ID, c.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit districts: %w", err)
	}
	return nil
}

// LoadDistricts reads every district with its candidates, in stored order
func LoadDistricts(ctx context.Context, db *sql.DB) ([]models.District, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, prefecture, name, margin, total_votes
		FROM district
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query districts: %w", err)
	}
	defer rows.Close()

	districts := []models.District{}
	index := make(map[string]int)
	for rows.Next() {
		var d models.District
		if err := rows.Scan(&d.ID, &d.Prefecture, &d.Name, &d.Margin, &d.TotalVotes); err != nil {
			return nil, fmt.Errorf("failed to scan district: %w", err)
		}
		d.Candidates = []models.Candidate{}
		index[d.ID] = len(districts)
		districts = append(districts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	candidates, err := db.QueryContext(ctx, `
		SELECT district_id, id, name, party, votes, is_winner
		FROM candidate
		ORDER BY district_id, position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer candidates.Close()

	for candidates.Next() {
		var districtID string
		var c models.Candidate
		if err := candidates.Scan(&districtID, &c.ID, &c.Name, &c.Party, &c.Votes, &c.IsWinner); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		i, ok := index[districtID]
		if !ok {
			continue
		}
		districts[i].Candidates = append(districts[i].Candidates, c)
	}

	return districts, candidates.Err()
}

// CountDistricts returns the number of stored districts
func CountDistricts(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM district`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count districts: %w", err)
	}
	return count, nil
}

// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mdhender/olympians/model"
)

var _ model.Store = (*SQLiteStore)(nil)

// InsertOlympian inserts a Record and returns its assigned ID.
// Zero timestamps are set to the current time.
func (s *SQLiteStore) InsertOlympian(ctx context.Context, r *model.Record) (int64, error) {
	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}

	const query = `
		INSERT INTO olympians (name, energy, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, query,
		r.Name,
		energyValue(r.Energy),
		r.CreatedAt.Format(time.RFC3339),
		r.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, &ErrDatabase{Op: "insert olympian", Err: err}
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, &ErrDatabase{Op: "insert olympian", Err: err}
	}
	r.ID = id
	return id, nil
}

// GetOlympian returns the Record with the given ID or model.ErrNotFound.
func (s *SQLiteStore) GetOlympian(ctx context.Context, id int64) (*model.Record, error) {
	const query = `
		SELECT id, name, energy, created_at, updated_at
		FROM olympians
		WHERE id = ?
	`
	r, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("olympian %d: %w", id, model.ErrNotFound)
	} else if err != nil {
		return nil, &ErrDatabase{Op: "get olympian", Err: err}
	}
	return r, nil
}

// ListOlympians returns all Records ordered by ID.
func (s *SQLiteStore) ListOlympians(ctx context.Context) ([]*model.Record, error) {
	const query = `
		SELECT id, name, energy, created_at, updated_at
		FROM olympians
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &ErrDatabase{Op: "list olympians", Err: err}
	}
	defer rows.Close()

	var records []*model.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, &ErrDatabase{Op: "scan olympian", Err: err}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &ErrDatabase{Op: "list olympians", Err: err}
	}
	return records, nil
}

// UpdateOlympian overwrites the name and energy of an existing Record.
func (s *SQLiteStore) UpdateOlympian(ctx context.Context, r *model.Record) error {
	r.UpdatedAt = time.Now().UTC()

	const query = `
		UPDATE olympians
		SET name = ?, energy = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := s.db.ExecContext(ctx, query,
		r.Name,
		energyValue(r.Energy),
		r.UpdatedAt.Format(time.RFC3339),
		r.ID,
	)
	if err != nil {
		return &ErrDatabase{Op: "update olympian", Err: err}
	}
	return checkAffected(result, r.ID)
}

// DeleteOlympian removes the Record with the given ID.
func (s *SQLiteStore) DeleteOlympian(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM olympians WHERE id = ?`, id)
	if err != nil {
		return &ErrDatabase{Op: "delete olympian", Err: err}
	}
	return checkAffected(result, id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*model.Record, error) {
	var r model.Record
	var energy sql.NullFloat64
	var createdAt, updatedAt string
	if err := row.Scan(&r.ID, &r.Name, &energy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if energy.Valid {
		r.Energy = energy.Float64
	} else {
		r.Energy = math.NaN()
	}
	var err error
	if r.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("created_at: %w", err)
	}
	if r.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("updated_at: %w", err)
	}
	return &r, nil
}

// energyValue maps NaN to NULL since SQLite has no REAL encoding for it.
func energyValue(energy float64) any {
	if math.IsNaN(energy) {
		return nil
	}
	return energy
}

func checkAffected(result sql.Result, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return &ErrDatabase{Op: "rows affected", Err: err}
	} else if n == 0 {
		return fmt.Errorf("olympian %d: %w", id, model.ErrNotFound)
	}
	return nil
}

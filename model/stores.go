// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

import "context"

// Store is an interface for persisting Olympians.
type Store interface {
	InsertOlympian(ctx context.Context, r *Record) (int64, error)
	GetOlympian(ctx context.Context, id int64) (*Record, error)
	ListOlympians(ctx context.Context) ([]*Record, error)
	UpdateOlympian(ctx context.Context, r *Record) error
	DeleteOlympian(ctx context.Context, id int64) error
	Close() error
}

// Stats holds store statistics.
type Stats struct {
	Olympians   int
	TotalEnergy float64
}

// Summarize computes statistics over a set of records.
func Summarize(records []*Record) Stats {
	var s Stats
	for _, r := range records {
		s.Olympians++
		s.TotalEnergy += r.Energy
	}
	return s
}

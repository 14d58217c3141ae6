// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package storetest holds behaviour checks shared by every model.Store.
package storetest

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/mdhender/olympians/model"
)

// Run exercises a store returned by newStore. Each subtest gets a fresh store.
func Run(t *testing.T, newStore func() (model.Store, error)) {
	t.Helper()

	open := func(t *testing.T) model.Store {
		t.Helper()
		s, err := newStore()
		if err != nil {
			t.Fatalf("create store: %v", err)
		}
		t.Cleanup(func() { _ = s.Close() })
		return s
	}

	t.Run("InsertGet", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)

		e := model.NewEntrant("Zeus")
		r := e.Record()
		id, err := s.InsertOlympian(ctx, r)
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		if id == 0 || r.ID != id {
			t.Fatalf("insert: want assigned id, got id %d record id %d", id, r.ID)
		}

		got, err := s.GetOlympian(ctx, id)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Name != "Zeus" {
			t.Errorf("Name: want %q, got %q", "Zeus", got.Name)
		}
		if got.Energy != 100.0 {
			t.Errorf("Energy: want %v, got %v", 100.0, got.Energy)
		}
		if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
			t.Errorf("timestamps: want set, got %v / %v", got.CreatedAt, got.UpdatedAt)
		}
	})

	t.Run("ZeroValueAndNegativeEnergy", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)

		var blank model.Entrant
		blankID, err := s.InsertOlympian(ctx, blank.Record())
		if err != nil {
			t.Fatalf("insert blank: %v", err)
		}
		neg := model.NewEntrant("Ares")
		neg.SetEnergy(-10.0)
		negID, err := s.InsertOlympian(ctx, neg.Record())
		if err != nil {
			t.Fatalf("insert negative: %v", err)
		}

		got, err := s.GetOlympian(ctx, blankID)
		if err != nil {
			t.Fatalf("get blank: %v", err)
		}
		if got.Name != "" || got.Energy != 0 {
			t.Errorf("blank: want {\"\" 0}, got {%q %v}", got.Name, got.Energy)
		}
		got, err = s.GetOlympian(ctx, negID)
		if err != nil {
			t.Fatalf("get negative: %v", err)
		}
		if got.Energy != -10.0 {
			t.Errorf("Energy: want %v, got %v", -10.0, got.Energy)
		}
	})

	t.Run("NonFiniteEnergy", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)

		tests := []struct {
			name   string
			energy float64
		}{
			{name: "Nyx", energy: math.NaN()},
			{name: "Chaos", energy: math.Inf(1)},
			{name: "Tartarus", energy: math.Inf(-1)},
		}
		for _, tc := range tests {
			e := model.NewEntrant(tc.name)
			e.SetEnergy(tc.energy)
			id, err := s.InsertOlympian(ctx, e.Record())
			if err != nil {
				t.Fatalf("insert %s: %v", tc.name, err)
			}
			got, err := s.GetOlympian(ctx, id)
			if err != nil {
				t.Fatalf("get %s: %v", tc.name, err)
			}
			if !sameEnergy(got.Energy, tc.energy) {
				t.Errorf("%s: Energy: want %v, got %v", tc.name, tc.energy, got.Energy)
			}

			// update from a finite value back to the non-finite one
			r := got
			r.Energy = 1
			if err := s.UpdateOlympian(ctx, r); err != nil {
				t.Fatalf("update %s: %v", tc.name, err)
			}
			r.Energy = tc.energy
			if err := s.UpdateOlympian(ctx, r); err != nil {
				t.Fatalf("update %s: %v", tc.name, err)
			}
			got, err = s.GetOlympian(ctx, id)
			if err != nil {
				t.Fatalf("get %s: %v", tc.name, err)
			}
			if !sameEnergy(got.Energy, tc.energy) {
				t.Errorf("%s: Energy after update: want %v, got %v", tc.name, tc.energy, got.Energy)
			}
		}
	})

	t.Run("Update", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)

		id, err := s.InsertOlympian(ctx, model.NewEntrant("Zeus").Record())
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		r, err := s.GetOlympian(ctx, id)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		e := model.FromRecord(r)
		e.SetName("Hera")
		e.SetEnergy(42.5)
		if err := s.UpdateOlympian(ctx, e.Record()); err != nil {
			t.Fatalf("update: %v", err)
		}

		got, err := s.GetOlympian(ctx, id)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Name != "Hera" || got.Energy != 42.5 {
			t.Errorf("update: want {Hera 42.5}, got {%s %v}", got.Name, got.Energy)
		}
		if !got.CreatedAt.Equal(r.CreatedAt) {
			t.Errorf("CreatedAt: want %v, got %v", r.CreatedAt, got.CreatedAt)
		}
	})

	t.Run("List", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)

		names := []string{"Zeus", "Hera", "Poseidon"}
		for _, name := range names {
			if _, err := s.InsertOlympian(ctx, model.NewEntrant(name).Record()); err != nil {
				t.Fatalf("insert %s: %v", name, err)
			}
		}
		got, err := s.ListOlympians(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != len(names) {
			t.Fatalf("list: want %d records, got %d", len(names), len(got))
		}
		for i, r := range got {
			if r.Name != names[i] {
				t.Errorf("list[%d]: want %q, got %q", i, names[i], r.Name)
			}
			if i > 0 && r.ID <= got[i-1].ID {
				t.Errorf("list[%d]: ids not ascending: %d after %d", i, r.ID, got[i-1].ID)
			}
		}
	})

	t.Run("Delete", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)

		id, err := s.InsertOlympian(ctx, model.NewEntrant("Hades").Record())
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		if err := s.DeleteOlympian(ctx, id); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := s.GetOlympian(ctx, id); !errors.Is(err, model.ErrNotFound) {
			t.Errorf("get after delete: want ErrNotFound, got %v", err)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)

		if _, err := s.GetOlympian(ctx, 999); !errors.Is(err, model.ErrNotFound) {
			t.Errorf("get: want ErrNotFound, got %v", err)
		}
		r := model.NewEntrant("Nobody").Record()
		r.ID = 999
		if err := s.UpdateOlympian(ctx, r); !errors.Is(err, model.ErrNotFound) {
			t.Errorf("update: want ErrNotFound, got %v", err)
		}
		if err := s.DeleteOlympian(ctx, 999); !errors.Is(err, model.ErrNotFound) {
			t.Errorf("delete: want ErrNotFound, got %v", err)
		}
	})
}

// sameEnergy reports whether a and b are equal, treating NaN as equal to NaN.
func sameEnergy(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}

// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mdhender/olympians"
)

// ErrNotFound is returned when no Olympian has the requested ID.
var ErrNotFound = errors.New("olympian not found")

// Record is the persisted snapshot of an Olympian.
type Record struct {
	ID        int64     `json:"id"        db:"id"`
	Name      string    `json:"name"      db:"name"`
	Energy    float64   `json:"energy"    db:"energy"` // not range checked
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Entrant is the Olympian managed by the stores and the command line.
type Entrant struct {
	olympians.Base
	ID int64
}

var _ olympians.Olympian = (*Entrant)(nil)

// NewEntrant returns an Entrant with the given name and the default energy.
func NewEntrant(name string) *Entrant {
	return &Entrant{Base: olympians.NewBase(name)}
}

// DisplayInfo writes "id<TAB>name<TAB>energy" followed by a newline.
func (e *Entrant) DisplayInfo(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d\t%s\t%.1f\n", e.ID, e.Name(), e.Energy())
	return err
}

// Record returns a snapshot of the Entrant. Timestamps are left for the store to fill.
func (e *Entrant) Record() *Record {
	return &Record{
		ID:     e.ID,
		Name:   e.Name(),
		Energy: e.Energy(),
	}
}

// FromRecord restores an Entrant from a snapshot.
// The energy is copied as stored, even when it is zero.
func FromRecord(r *Record) *Entrant {
	e := &Entrant{ID: r.ID}
	e.SetName(r.Name)
	e.SetEnergy(r.Energy)
	return e
}

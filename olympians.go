// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package olympians defines the Olympian contract and the Base data holder
// that concrete Olympians embed.
package olympians

import "io"

// DefaultEnergy is the energy assigned by NewBase.
const DefaultEnergy = 100.0

// Olympian is a named actor with an energy level.
// Concrete types get the accessors by embedding Base and must supply DisplayInfo.
type Olympian interface {
	Name() string
	SetName(name string)
	Energy() float64
	SetEnergy(energy float64)

	// DisplayInfo writes a description of the Olympian to w.
	DisplayInfo(w io.Writer) error
}

// Base holds the name and energy shared by every Olympian.
// It does not implement DisplayInfo, so a Base on its own is never an Olympian.
//
// The zero value has an empty name and zero energy.
type Base struct {
	name   string
	energy float64
}

// NewBase returns a Base with the given name and DefaultEnergy.
// The name is not checked.
func NewBase(name string) Base {
	return Base{name: name, energy: DefaultEnergy}
}

// Name returns the name as last set.
func (b *Base) Name() string {
	return b.name
}

// SetName replaces the name. Empty names are allowed.
func (b *Base) SetName(name string) {
	b.name = name
}

// Energy returns the current energy.
func (b *Base) Energy() float64 {
	return b.energy
}

// SetEnergy accepts any value, including negative ones.
func (b *Base) SetEnergy(energy float64) {
	b.energy = energy
}

// Package cache implements the persistent data-acquisition cache fronting
// the 17Lands API.
//
// # Overview
//
// The Store holds one Cell per answered query: two singletons (filter
// metadata, play/draw advantage) and four keyed maps (color ratings, card
// ratings, card evaluation metagame, first days). Every accessor follows the
// same path: purge all expired cells, look the key up, and on a miss fetch,
// store, persist the whole Store to disk, and return.
//
// The purge is a deliberate full sweep over every map on every access. It
// costs O(total cells) per call but keeps a single code path and guarantees
// every stale entry is eventually removed, not just the ones being read.
//
// # First day search
//
// The provider does not expose the first date a format has data for, so the
// Store derives it with a halving-interval search over its own color ratings
// accessor (see finder.go). Found dates are effectively immutable once the
// provider has ingested history, so they cache for ~999 days; a "not found"
// means the format may simply not be released yet and is re-checked daily.
package cache

import "time"

// TTL presets for cells.
const (
	// DefaultTTL applies to every cell unless overridden.
	DefaultTTL = 24 * time.Hour
	// FoundFirstDayTTL applies to first-day cells holding a discovered date.
	FoundFirstDayTTL = 999 * 24 * time.Hour
	// MissingFirstDayTTL applies to first-day cells holding no date.
	MissingFirstDayTTL = 24 * time.Hour
)

// Cell holds one cached payload, the calendar day it was created on and its
// time-to-live. Cells are replaced wholesale on re-fetch, never mutated.
type Cell[T any] struct {
	Value   T             `json:"value"`
	Created time.Time     `json:"created"`
	TTL     time.Duration `json:"ttl"`
}

// NewCell wraps a value in a cell created on the given day with DefaultTTL.
func NewCell[T any](value T, today time.Time) *Cell[T] {
	return NewCellWithTTL(value, today, DefaultTTL)
}

// NewCellWithTTL wraps a value in a cell with an explicit time-to-live.
func NewCellWithTTL[T any](value T, today time.Time, ttl time.Duration) *Cell[T] {
	return &Cell[T]{Value: value, Created: today, TTL: ttl}
}

// Expired reports whether the cell has outlived its TTL as of today.
// Strictly greater: a cell created today with a one-day TTL is still valid
// tomorrow and expires the day after.
func (c *Cell[T]) Expired(today time.Time) bool {
	return today.Sub(c.Created) > c.TTL
}

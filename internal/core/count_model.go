package core

import "time"

// StockCount is the per-item count across the four bar locations.
// TotalCount is stored denormalized for query convenience; every write path
// recomputes it in the same statement as the counter update, and the restock
// engine re-derives the sum anyway rather than trusting the stored value.
type StockCount struct {
	ID          string
	ItemID      string
	MainBar     int
	BeerBar     int
	Lobby       int
	StorageRoom int
	TotalCount  int
	CountDate   time.Time
}

// LocationSum returns the sum of the four location counters.
func (c StockCount) LocationSum() int {
	return c.MainBar + c.BeerBar + c.Lobby + c.StorageRoom
}

// CountPatch updates a subset of location counters. Nil fields keep the
// currently stored value, so a bartender can count one room at a time.
type CountPatch struct {
	MainBar     *int
	BeerBar     *int
	Lobby       *int
	StorageRoom *int
}

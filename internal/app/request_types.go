package app

import (
	"barstock/internal/core"

	"github.com/shopspring/decimal"
)

// ItemRequest is the input for creating or updating a catalog item.
type ItemRequest struct {
	Name            string
	Category        core.Category
	UnitsPerCase    int
	MinStock        int
	MaxStock        int
	PrimarySupplier string
	CostPerUnit     decimal.Decimal
	CostPerCase     decimal.Decimal
}

// CountUpdateRequest patches an item's location counters. Nil fields keep
// their stored values.
type CountUpdateRequest struct {
	MainBar     *int
	BeerBar     *int
	Lobby       *int
	StorageRoom *int
}

// SessionRequest is the input for starting a counting session.
type SessionRequest struct {
	SessionName string
	SessionType core.SessionType
	Notes       string
}

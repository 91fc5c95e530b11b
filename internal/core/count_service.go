package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CountService manages per-item stock counts. The central invariant lives
// here: total_count always equals the sum of the four location counters,
// recomputed inside the same UPDATE that touches any counter.
type CountService interface {
	// GetStockCounts returns every count row.
	GetStockCounts(ctx context.Context) ([]StockCount, error)

	// GetStockCount returns the count for an item. An item that was never
	// counted gets a zero-valued count, not an error.
	GetStockCount(ctx context.Context, itemID string) (*StockCount, error)

	// UpdateStockCount applies a per-location patch, creating the row lazily
	// on first count. Nil patch fields keep their stored values.
	UpdateStockCount(ctx context.Context, itemID string, patch CountPatch) (*StockCount, error)

	// ReplaceStockCount overwrites all four counters at once, as a full
	// counting session does when a location sheet is submitted.
	ReplaceStockCount(ctx context.Context, itemID string, mainBar, beerBar, lobby, storageRoom int) (*StockCount, error)
}

type countService struct {
	pool *pgxpool.Pool
}

// NewCountService constructs a CountService backed by the stock_counts table.
func NewCountService(pool *pgxpool.Pool) CountService {
	return &countService{pool: pool}
}

const countColumns = `id, item_id, main_bar, beer_bar, lobby, storage_room, total_count, count_date`

func scanCount(row pgx.Row) (*StockCount, error) {
	var c StockCount
	err := row.Scan(&c.ID, &c.ItemID, &c.MainBar, &c.BeerBar, &c.Lobby,
		&c.StorageRoom, &c.TotalCount, &c.CountDate)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *countService) GetStockCounts(ctx context.Context) ([]StockCount, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+countColumns+`
		FROM stock_counts
		ORDER BY count_date, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock counts: %w", err)
	}
	defer rows.Close()

	var counts []StockCount
	for rows.Next() {
		var c StockCount
		if err := rows.Scan(&c.ID, &c.ItemID, &c.MainBar, &c.BeerBar, &c.Lobby,
			&c.StorageRoom, &c.TotalCount, &c.CountDate); err != nil {
			return nil, fmt.Errorf("failed to scan stock count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (s *countService) GetStockCount(ctx context.Context, itemID string) (*StockCount, error) {
	c, err := scanCount(s.pool.QueryRow(ctx, `
		SELECT `+countColumns+` FROM stock_counts WHERE item_id = $1
	`, itemID))
	if errors.Is(err, pgx.ErrNoRows) {
		// Never counted: all locations zero.
		return &StockCount{ItemID: itemID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stock count for item %s: %w", itemID, err)
	}
	return c, nil
}

func (s *countService) UpdateStockCount(ctx context.Context, itemID string, patch CountPatch) (*StockCount, error) {
	for _, v := range []*int{patch.MainBar, patch.BeerBar, patch.Lobby, patch.StorageRoom} {
		if v != nil && *v < 0 {
			return nil, fmt.Errorf("%w: location count cannot be negative, got %d", ErrInvalidInput, *v)
		}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM items WHERE id = $1)", itemID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check item %s: %w", itemID, err)
	}
	if !exists {
		return nil, ErrItemNotFound
	}

	// Create the row on first count, then lock it so concurrent patches to
	// different locations cannot interleave between read and write.
	var c StockCount
	err = tx.QueryRow(ctx, `
		INSERT INTO stock_counts (id, item_id, main_bar, beer_bar, lobby, storage_room, total_count)
		VALUES ($1, $2, 0, 0, 0, 0, 0)
		ON CONFLICT (item_id) DO UPDATE SET item_id = EXCLUDED.item_id
		RETURNING id
	`, uuid.NewString(), itemID).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert stock count for item %s: %w", itemID, err)
	}

	err = tx.QueryRow(ctx, `
		SELECT main_bar, beer_bar, lobby, storage_room
		FROM stock_counts WHERE id = $1 FOR UPDATE
	`, c.ID).Scan(&c.MainBar, &c.BeerBar, &c.Lobby, &c.StorageRoom)
	if err != nil {
		return nil, fmt.Errorf("failed to lock stock count for item %s: %w", itemID, err)
	}

	if patch.MainBar != nil {
		c.MainBar = *patch.MainBar
	}
	if patch.BeerBar != nil {
		c.BeerBar = *patch.BeerBar
	}
	if patch.Lobby != nil {
		c.Lobby = *patch.Lobby
	}
	if patch.StorageRoom != nil {
		c.StorageRoom = *patch.StorageRoom
	}

	// total_count is computed inside the statement from the same values
	// being written: the counters and their sum cannot go out of step.
	updated, err := scanCount(tx.QueryRow(ctx, `
		UPDATE stock_counts
		SET main_bar = $2, beer_bar = $3, lobby = $4, storage_room = $5,
		    total_count = $2 + $3 + $4 + $5, count_date = NOW()
		WHERE id = $1
		RETURNING `+countColumns,
		c.ID, c.MainBar, c.BeerBar, c.Lobby, c.StorageRoom))
	if err != nil {
		return nil, fmt.Errorf("failed to update stock count for item %s: %w", itemID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit stock count update: %w", err)
	}
	return updated, nil
}

func (s *countService) ReplaceStockCount(ctx context.Context, itemID string, mainBar, beerBar, lobby, storageRoom int) (*StockCount, error) {
	patch := CountPatch{
		MainBar:     &mainBar,
		BeerBar:     &beerBar,
		Lobby:       &lobby,
		StorageRoom: &storageRoom,
	}
	return s.UpdateStockCount(ctx, itemID, patch)
}

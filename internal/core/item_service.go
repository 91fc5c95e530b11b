package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrItemNotFound is returned when an item id does not exist in the catalog.
var ErrItemNotFound = errors.New("item not found")

// ErrInvalidInput wraps validation failures so adapters can distinguish bad
// requests from storage faults.
var ErrInvalidInput = errors.New("invalid input")

// ItemService manages the item catalog: names, categories, case packaging,
// min/max levels, suppliers, and costs. Input normalization (deriving the
// case price from the unit price) happens here at write time, never in the
// restock engine.
type ItemService interface {
	// CreateItem normalizes and validates the input and inserts a new item.
	CreateItem(ctx context.Context, in ItemInput) (*Item, error)

	// GetItems returns the full catalog in creation order.
	GetItems(ctx context.Context) ([]Item, error)

	// GetItem returns a single item by id.
	GetItem(ctx context.Context, id string) (*Item, error)

	// UpdateItem replaces an item's fields after normalization/validation.
	UpdateItem(ctx context.Context, id string, in ItemInput) (*Item, error)

	// DeleteItem removes the item and its stock counts in one transaction.
	// Future restock computations simply no longer see the item.
	DeleteItem(ctx context.Context, id string) error
}

type itemService struct {
	pool *pgxpool.Pool
}

// NewItemService constructs an ItemService backed by the items table.
func NewItemService(pool *pgxpool.Pool) ItemService {
	return &itemService{pool: pool}
}

const itemColumns = `id, name, category, units_per_case, min_stock, max_stock,
	primary_supplier, cost_per_unit, cost_per_case, created_at`

func scanItem(row pgx.Row) (*Item, error) {
	var it Item
	err := row.Scan(&it.ID, &it.Name, &it.Category, &it.UnitsPerCase,
		&it.MinStock, &it.MaxStock, &it.PrimarySupplier,
		&it.CostPerUnit, &it.CostPerCase, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *itemService) CreateItem(ctx context.Context, in ItemInput) (*Item, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	id := uuid.NewString()
	row := s.pool.QueryRow(ctx, `
		INSERT INTO items (id, name, category, units_per_case, min_stock, max_stock,
			primary_supplier, cost_per_unit, cost_per_case)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+itemColumns,
		id, in.Name, in.Category, in.UnitsPerCase, in.MinStock, in.MaxStock,
		in.PrimarySupplier, in.CostPerUnit, in.CostPerCase)

	it, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}
	return it, nil
}

func (s *itemService) GetItems(ctx context.Context) ([]Item, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM items
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.UnitsPerCase,
			&it.MinStock, &it.MaxStock, &it.PrimarySupplier,
			&it.CostPerUnit, &it.CostPerCase, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *itemService) GetItem(ctx context.Context, id string) (*Item, error) {
	it, err := scanItem(s.pool.QueryRow(ctx, `
		SELECT `+itemColumns+` FROM items WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch item %s: %w", id, err)
	}
	return it, nil
}

func (s *itemService) UpdateItem(ctx context.Context, id string, in ItemInput) (*Item, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	row := s.pool.QueryRow(ctx, `
		UPDATE items
		SET name = $2, category = $3, units_per_case = $4, min_stock = $5,
		    max_stock = $6, primary_supplier = $7, cost_per_unit = $8, cost_per_case = $9
		WHERE id = $1
		RETURNING `+itemColumns,
		id, in.Name, in.Category, in.UnitsPerCase, in.MinStock, in.MaxStock,
		in.PrimarySupplier, in.CostPerUnit, in.CostPerCase)

	it, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update item %s: %w", id, err)
	}
	return it, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Count rows never outlive their item.
	if _, err := tx.Exec(ctx, "DELETE FROM stock_counts WHERE item_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete stock counts for item %s: %w", id, err)
	}

	tag, err := tx.Exec(ctx, "DELETE FROM items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete item %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit item delete: %w", err)
	}
	return nil
}

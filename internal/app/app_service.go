package app

import (
	"context"
	"errors"

	"barstock/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNothingToOrder is returned by GetSupplierOrderText when the supplier
// has no items below their maximum level.
var ErrNothingToOrder = errors.New("nothing to order for supplier")

type appService struct {
	pool     *pgxpool.Pool
	items    core.ItemService
	counts   core.CountService
	sessions core.SessionService
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(
	pool *pgxpool.Pool,
	items core.ItemService,
	counts core.CountService,
	sessions core.SessionService,
) ApplicationService {
	return &appService{
		pool:     pool,
		items:    items,
		counts:   counts,
		sessions: sessions,
	}
}

// ── Catalog ───────────────────────────────────────────────────────────────────

func (s *appService) ListItems(ctx context.Context) (*ItemListResult, error) {
	items, err := s.items.GetItems(ctx)
	if err != nil {
		return nil, err
	}
	return &ItemListResult{Items: items}, nil
}

func (s *appService) GetItem(ctx context.Context, id string) (*ItemResult, error) {
	it, err := s.items.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ItemResult{Item: it}, nil
}

func (s *appService) CreateItem(ctx context.Context, req ItemRequest) (*ItemResult, error) {
	it, err := s.items.CreateItem(ctx, itemInput(req))
	if err != nil {
		return nil, err
	}
	return &ItemResult{Item: it}, nil
}

func (s *appService) UpdateItem(ctx context.Context, id string, req ItemRequest) (*ItemResult, error) {
	it, err := s.items.UpdateItem(ctx, id, itemInput(req))
	if err != nil {
		return nil, err
	}
	return &ItemResult{Item: it}, nil
}

func (s *appService) DeleteItem(ctx context.Context, id string) error {
	return s.items.DeleteItem(ctx, id)
}

func itemInput(req ItemRequest) core.ItemInput {
	return core.ItemInput{
		Name:            req.Name,
		Category:        req.Category,
		UnitsPerCase:    req.UnitsPerCase,
		MinStock:        req.MinStock,
		MaxStock:        req.MaxStock,
		PrimarySupplier: req.PrimarySupplier,
		CostPerUnit:     req.CostPerUnit,
		CostPerCase:     req.CostPerCase,
	}
}

// ── Counts ────────────────────────────────────────────────────────────────────

func (s *appService) ListStockCounts(ctx context.Context) (*CountListResult, error) {
	counts, err := s.counts.GetStockCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &CountListResult{Counts: counts}, nil
}

func (s *appService) GetStockCount(ctx context.Context, itemID string) (*CountResult, error) {
	c, err := s.counts.GetStockCount(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return &CountResult{Count: c}, nil
}

func (s *appService) UpdateStockCount(ctx context.Context, itemID string, req CountUpdateRequest) (*CountResult, error) {
	c, err := s.counts.UpdateStockCount(ctx, itemID, core.CountPatch{
		MainBar:     req.MainBar,
		BeerBar:     req.BeerBar,
		Lobby:       req.Lobby,
		StorageRoom: req.StorageRoom,
	})
	if err != nil {
		return nil, err
	}
	return &CountResult{Count: c}, nil
}

// ── Restock computations ──────────────────────────────────────────────────────

// snapshot loads the catalog and counts the engine needs. The engine takes
// both as immutable snapshots and holds no cache of its own.
func (s *appService) snapshot(ctx context.Context) ([]core.Item, []core.StockCount, error) {
	items, err := s.items.GetItems(ctx)
	if err != nil {
		return nil, nil, err
	}
	counts, err := s.counts.GetStockCounts(ctx)
	if err != nil {
		return nil, nil, err
	}
	return items, counts, nil
}

func (s *appService) GetShoppingList(ctx context.Context) (*ShoppingListResult, error) {
	items, counts, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]SupplierGroup)
	for supplier, lines := range core.BuildShoppingList(items, counts) {
		groups[supplier] = SupplierGroup{
			Supplier:  supplier,
			Items:     lines,
			TotalCost: core.TotalCost(lines),
		}
	}
	return &ShoppingListResult{Suppliers: groups}, nil
}

func (s *appService) GetLowStock(ctx context.Context) (*LowStockResult, error) {
	items, counts, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &LowStockResult{Alerts: core.ClassifyLowStock(items, counts)}, nil
}

func (s *appService) GetSupplierOrderText(ctx context.Context, supplier string) (*OrderTextResult, error) {
	items, counts, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	lines, ok := core.BuildShoppingList(items, counts)[supplier]
	if !ok {
		return nil, ErrNothingToOrder
	}
	return &OrderTextResult{
		Supplier: supplier,
		Text:     core.SupplierOrderText(supplier, lines),
	}, nil
}

// ── Sessions ──────────────────────────────────────────────────────────────────

func (s *appService) CreateSession(ctx context.Context, req SessionRequest) (*SessionResult, error) {
	sess, err := s.sessions.CreateSession(ctx, core.SessionInput{
		SessionName: req.SessionName,
		SessionType: req.SessionType,
		Notes:       req.Notes,
	})
	if err != nil {
		return nil, err
	}
	return &SessionResult{Session: sess}, nil
}

func (s *appService) ListSessions(ctx context.Context) (*SessionListResult, error) {
	sessions, err := s.sessions.GetSessions(ctx)
	if err != nil {
		return nil, err
	}
	return &SessionListResult{Sessions: sessions}, nil
}

func (s *appService) CurrentSession(ctx context.Context) (*SessionResult, error) {
	sess, err := s.sessions.GetCurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	return &SessionResult{Session: sess}, nil
}

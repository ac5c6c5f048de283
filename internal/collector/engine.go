package collector

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Olivier-cousineau/econo-econo/internal/metrics"
)

// Engine runs one complete collection: it iterates the selected stores
// sequentially, paginates each one, and assembles the final payload.
// A store's failure is logged and isolated; the other stores still
// contribute their items.
type Engine struct {
	cfg     Config
	fetcher PageFetcher
	clock   Clock
	sleep   func(ctx context.Context, d time.Duration) error
	logger  *zap.Logger
}

// NewEngine constructs an Engine.
func NewEngine(cfg Config, fetcher PageFetcher, clock Clock, logger *zap.Logger) *Engine {
	metrics.Init()
	return &Engine{
		cfg:     cfg,
		fetcher: fetcher,
		clock:   clock,
		sleep:   sleepWithContext,
		logger:  logger,
	}
}

// Run executes the collection across all selected stores and returns the
// assembled payload. It fails only on context cancellation; per-store
// fetch and parse errors are absorbed here.
func (e *Engine) Run(ctx context.Context) (Payload, error) {
	start := e.clock.Now()
	picked := FilterStores(e.cfg.StoreSlugs)

	items := make([]Item, 0)
	for _, store := range picked {
		collected, err := e.collectStore(ctx, store)
		if err != nil {
			if ctx.Err() != nil {
				return Payload{}, ctx.Err()
			}
			e.logger.Error("store collection failed",
				zap.String("store", store.Slug),
				zap.Error(err),
			)
			metrics.ObserveStoreFailure(store.Slug)
			continue
		}
		items = append(items, collected...)
	}

	metrics.ObserveRunDuration(e.clock.Now().Sub(start))

	return Payload{
		GeneratedAt: e.clock.Now().UTC().Format(time.RFC3339),
		Source:      BaseURL,
		Query:       e.cfg.Query,
		Stores:      picked,
		Items:       items,
	}, nil
}

// collectStore paginates one store, deduplicating by sku within the run.
// Pagination stops on an empty page, a short page, or the page limit.
// Fetch and parse errors bubble up and drop the store's partial results.
func (e *Engine) collectStore(ctx context.Context, store Store) ([]Item, error) {
	var results []Item
	seen := make(map[string]struct{})

	for page := 1; page <= e.cfg.MaxPages; page++ {
		pageData, err := e.fetcher.FetchPage(ctx, store, page, e.cfg.Query)
		if err != nil {
			return nil, err
		}
		metrics.ObservePage(store.Slug)

		if len(pageData.Items) == 0 {
			e.logger.Info("no data on page",
				zap.String("store", store.Slug),
				zap.Int("page", page),
			)
			break
		}

		kept, skipped := 0, 0
		for _, raw := range pageData.Items {
			item := Normalize(raw, store)
			if item.SKU == "" {
				skipped++
				continue
			}
			if _, dup := seen[item.SKU]; dup {
				skipped++
				continue
			}
			seen[item.SKU] = struct{}{}
			results = append(results, item)
			kept++
		}
		metrics.ObserveItems(store.Slug, kept, skipped)
		e.logger.Info("page collected",
			zap.String("store", store.Slug),
			zap.Int("page", page),
			zap.Int("items", len(pageData.Items)),
			zap.Int("kept", kept),
		)

		// A short page is the end-of-results signal.
		if len(pageData.Items) < PageSize {
			break
		}
		// Throttle between pages, but not after the final one.
		if page < e.cfg.MaxPages {
			if err := e.sleep(ctx, e.cfg.Delay); err != nil {
				return nil, err
			}
		}
	}
	return results, nil
}

// sleepWithContext pauses for d, returning early if ctx finishes first.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

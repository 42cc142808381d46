// Package store owns the recipe catalog and the kitchen set and keeps them
// mirrored in the key-value repository. Every mutation replaces a whole
// collection and rewrites its document.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/alexanderramin/larder/internal/db"
	"github.com/alexanderramin/larder/internal/domain"
	"github.com/alexanderramin/larder/internal/repository"
	"github.com/alexanderramin/larder/internal/seed"
)

// Storage keys. The names are part of the on-disk format.
const (
	KeyRecipes  = "recipes"
	KeyKitchen  = "kitchenRecipes"
	KeyWeekPlan = "weekPlan"
)

type recipesDoc struct {
	Recipes []domain.Recipe `json:"recipes"`
}

type kitchenDoc struct {
	KitchenRecipes []domain.Recipe `json:"kitchenRecipes"`
}

type weekPlanDoc struct {
	WeekPlan domain.WeekPlan `json:"weekPlan"`
}

// Store is the single in-process owner of the catalog and kitchen set.
// Accessors return deep copies; callers never hold a reference into Store.
type Store struct {
	kv     repository.KeyValueRepo
	uow    db.UnitOfWork
	txRepo func(db.DBTX) repository.KeyValueRepo
	seed   seed.Source
	logger *slog.Logger

	mu      sync.RWMutex
	catalog []domain.Recipe
	kitchen []domain.Recipe
}

// New wires a store. A nil src seeds from the bundled dataset; a nil logger
// uses slog.Default.
func New(kv repository.KeyValueRepo, uow db.UnitOfWork, src seed.Source, logger *slog.Logger) *Store {
	if src == nil {
		src = seed.Default
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		kv:     kv,
		uow:    uow,
		txRepo: func(tx db.DBTX) repository.KeyValueRepo { return repository.NewSQLiteKVRepo(tx) },
		seed:   src,
		logger: logger,
	}
}

// Initialize loads both collections, seeding any key that has never been
// written. It never fails: unreadable documents leave that collection empty
// and the problem is logged.
func (s *Store) Initialize(ctx context.Context) {
	var catalog, kitchen []domain.Recipe

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		kv := s.txRepo(tx)
		var (
			snap    *domain.Snapshot
			seedErr error
		)
		snapshot := func() (*domain.Snapshot, error) {
			if snap == nil && seedErr == nil {
				var got domain.Snapshot
				got, seedErr = s.seed()
				snap = &got
			}
			return snap, seedErr
		}

		var writeErr error
		catalog, writeErr = s.loadOrSeed(ctx, kv, KeyRecipes, decodeRecipes, func() ([]domain.Recipe, error) {
			sn, err := snapshot()
			if err != nil {
				return nil, err
			}
			return sn.Recipes, nil
		})
		if writeErr != nil {
			return writeErr
		}
		kitchen, writeErr = s.loadOrSeed(ctx, kv, KeyKitchen, decodeKitchen, func() ([]domain.Recipe, error) {
			sn, err := snapshot()
			if err != nil {
				return nil, err
			}
			return sn.KitchenRecipes, nil
		})
		return writeErr
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "seeding storage failed", "error", err)
	}

	s.mu.Lock()
	s.catalog = orEmpty(catalog)
	s.kitchen = orEmpty(kitchen)
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "store loaded", "recipes", len(catalog), "kitchen", len(kitchen))
}

// loadOrSeed returns the stored collection under key. An absent key is filled
// from seedFn and written back; only that write can produce an error, and the
// seeded recipes are still returned alongside it. A seed that cannot be read
// leaves the key absent so the next start tries again.
func (s *Store) loadOrSeed(
	ctx context.Context,
	kv repository.KeyValueRepo,
	key string,
	decode func([]byte) ([]domain.Recipe, error),
	seedFn func() ([]domain.Recipe, error),
) ([]domain.Recipe, error) {
	raw, err := kv.Get(ctx, key)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		seeded, seedErr := seedFn()
		if seedErr != nil {
			s.logger.ErrorContext(ctx, "seed dataset unavailable", "key", key, "error", seedErr)
			return nil, nil
		}
		recipes := domain.CloneRecipes(seeded)
		s.logger.InfoContext(ctx, "seeding collection", "key", key, "count", len(recipes))
		data, encErr := encodeCollection(key, recipes)
		if encErr != nil {
			return recipes, encErr
		}
		return recipes, kv.Set(ctx, key, data)
	case err != nil:
		s.logger.ErrorContext(ctx, "loading collection failed", "key", key, "error", err)
		return nil, nil
	}

	recipes, err := decode(raw)
	if err != nil {
		s.logger.ErrorContext(ctx, "stored collection is malformed", "key", key, "error", err)
		return nil, nil
	}
	return recipes, nil
}

// Catalog returns a copy of every recipe in insertion order.
func (s *Store) Catalog() []domain.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneRecipes(s.catalog)
}

// Kitchen returns a copy of the kitchen set in display order.
func (s *Store) Kitchen() []domain.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneRecipes(s.kitchen)
}

// ReplaceCatalog swaps in a new catalog and persists it. A failed write is
// logged; the in-memory catalog is updated regardless.
func (s *Store) ReplaceCatalog(ctx context.Context, recipes []domain.Recipe) {
	next := orEmpty(domain.CloneRecipes(recipes))
	s.mu.Lock()
	s.catalog = next
	s.mu.Unlock()
	s.persist(ctx, KeyRecipes, next)
}

// ReplaceKitchen swaps in a new kitchen set and persists it.
func (s *Store) ReplaceKitchen(ctx context.Context, recipes []domain.Recipe) {
	next := orEmpty(domain.CloneRecipes(recipes))
	s.mu.Lock()
	s.kitchen = next
	s.mu.Unlock()
	s.persist(ctx, KeyKitchen, next)
}

func (s *Store) persist(ctx context.Context, key string, recipes []domain.Recipe) {
	data, err := encodeCollection(key, recipes)
	if err == nil {
		err = s.kv.Set(ctx, key, data)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "saving collection failed", "key", key, "error", err)
	}
}

// SaveWeekPlan stores plan as the last saved week.
func (s *Store) SaveWeekPlan(ctx context.Context, plan domain.WeekPlan) error {
	data, err := json.Marshal(weekPlanDoc{WeekPlan: plan})
	if err != nil {
		return fmt.Errorf("encoding week plan: %w", err)
	}
	if err := s.kv.Set(ctx, KeyWeekPlan, data); err != nil {
		return fmt.Errorf("saving week plan: %w", err)
	}
	return nil
}

// LoadWeekPlan returns the last saved week, or repository.ErrNotFound.
func (s *Store) LoadWeekPlan(ctx context.Context) (domain.WeekPlan, error) {
	raw, err := s.kv.Get(ctx, KeyWeekPlan)
	if err != nil {
		return nil, err
	}
	var doc weekPlanDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding week plan: %w", err)
	}
	plan := domain.NewWeekPlan()
	for day, meals := range doc.WeekPlan {
		plan[day] = meals
	}
	return plan, nil
}

// Reset deletes every stored key and reseeds both collections in one
// transaction. On failure nothing changes, in storage or in memory.
func (s *Store) Reset(ctx context.Context) error {
	snap, err := s.seed()
	if err != nil {
		return fmt.Errorf("loading seed dataset: %w", err)
	}
	catalog := orEmpty(domain.CloneRecipes(snap.Recipes))
	kitchen := orEmpty(domain.CloneRecipes(snap.KitchenRecipes))

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		kv := s.txRepo(tx)
		keys, err := kv.Keys(ctx)
		if err != nil {
			return err
		}
		for _, k := range keys {
			if err := kv.Remove(ctx, k); err != nil {
				return err
			}
		}
		for _, c := range []struct {
			key     string
			recipes []domain.Recipe
		}{{KeyRecipes, catalog}, {KeyKitchen, kitchen}} {
			data, err := encodeCollection(c.key, c.recipes)
			if err != nil {
				return err
			}
			if err := kv.Set(ctx, c.key, data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("resetting storage: %w", err)
	}

	s.mu.Lock()
	s.catalog = catalog
	s.kitchen = kitchen
	s.mu.Unlock()
	s.logger.InfoContext(ctx, "storage reset", "recipes", len(catalog), "kitchen", len(kitchen))
	return nil
}

// Entries lists what is currently stored, for diagnostics.
func (s *Store) Entries(ctx context.Context) ([]repository.Entry, error) {
	return s.kv.Entries(ctx)
}

func encodeCollection(key string, recipes []domain.Recipe) ([]byte, error) {
	var doc any
	switch key {
	case KeyRecipes:
		doc = recipesDoc{Recipes: orEmpty(recipes)}
	case KeyKitchen:
		doc = kitchenDoc{KitchenRecipes: orEmpty(recipes)}
	default:
		return nil, fmt.Errorf("no collection stored under %q", key)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", key, err)
	}
	return data, nil
}

func decodeRecipes(raw []byte) ([]domain.Recipe, error) {
	var doc recipesDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc.Recipes, nil
}

func decodeKitchen(raw []byte) ([]domain.Recipe, error) {
	var doc kitchenDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc.KitchenRecipes, nil
}

func orEmpty(recipes []domain.Recipe) []domain.Recipe {
	if recipes == nil {
		return []domain.Recipe{}
	}
	return recipes
}

package service

import (
	"context"

	"github.com/alexanderramin/larder/internal/domain"
	"github.com/alexanderramin/larder/internal/kitchen"
)

type kitchenService struct {
	store    RecipeStore
	rng      Rand
	observer UseCaseObserver
}

// NewKitchenService uses the shared math/rand/v2 source when rng is nil.
func NewKitchenService(store RecipeStore, rng Rand, observers ...UseCaseObserver) KitchenService {
	return &kitchenService{store: store, rng: randOrGlobal(rng), observer: useCaseObserverOrNoop(observers)}
}

// List returns the kitchen as shown: unchecked recipes first.
func (s *kitchenService) List(context.Context) []domain.Recipe {
	return kitchen.PartitionChecked(s.store.Kitchen())
}

// Add copies a catalog recipe into the kitchen. Adding one already present
// changes nothing and reports false.
func (s *kitchenService) Add(ctx context.Context, recipeID string) (added bool, err error) {
	done := observe(ctx, s.observer, "kitchen-add", map[string]any{"id": recipeID})
	defer func() { done(err) }()

	catalog := s.store.Catalog()
	idx := domain.IndexOf(catalog, recipeID)
	if idx < 0 {
		return false, recipeNotFound(recipeID)
	}
	next, changed := kitchen.Add(s.store.Kitchen(), catalog[idx])
	if changed {
		s.store.ReplaceKitchen(ctx, next)
	}
	return changed, nil
}

// QuickAdd creates a recipe straight in the kitchen. Ingredients are optional
// and the catalog is not touched.
func (s *kitchenService) QuickAdd(ctx context.Context, draft domain.RecipeDraft) (recipe domain.Recipe, err error) {
	fields := map[string]any{"name": draft.Name}
	done := observe(ctx, s.observer, "kitchen-quick-add", fields)
	defer func() { done(err) }()

	recipe, err = buildRecipe(draft, domain.PolicyQuickAdd)
	if err != nil {
		return domain.Recipe{}, err
	}
	fields["id"] = recipe.ID

	next, _ := kitchen.Add(s.store.Kitchen(), recipe)
	s.store.ReplaceKitchen(ctx, next)
	return recipe.Clone(), nil
}

func (s *kitchenService) Remove(ctx context.Context, recipeID string) (removed bool, err error) {
	done := observe(ctx, s.observer, "kitchen-remove", map[string]any{"id": recipeID})
	defer func() { done(err) }()

	next, removed := kitchen.Remove(s.store.Kitchen(), recipeID)
	if removed {
		s.store.ReplaceKitchen(ctx, next)
	}
	return removed, nil
}

// ToggleChecked returns the entry after the flip.
func (s *kitchenService) ToggleChecked(ctx context.Context, recipeID string) (recipe domain.Recipe, err error) {
	done := observe(ctx, s.observer, "kitchen-toggle-checked", map[string]any{"id": recipeID})
	defer func() { done(err) }()

	next, ok := kitchen.ToggleChecked(s.store.Kitchen(), recipeID)
	if !ok {
		return domain.Recipe{}, recipeNotFound(recipeID)
	}
	s.store.ReplaceKitchen(ctx, next)
	return next[domain.IndexOf(next, recipeID)].Clone(), nil
}

// OpenSelection stages a copy of the current kitchen.
func (s *kitchenService) OpenSelection(capacity int) *kitchen.Selection {
	return kitchen.NewSelection(s.store.Kitchen(), capacity)
}

// SelectRandom fills staging from the whole catalog.
func (s *kitchenService) SelectRandom(sel *kitchen.Selection, count int) {
	sel.SelectRandom(s.store.Catalog(), count, s.rng)
}

func (s *kitchenService) Options(sel *kitchen.Selection, query string) []kitchen.Option {
	return sel.Options(s.store.Catalog(), query)
}

// CommitSelection replaces the kitchen with the staged recipes. The caller
// should drop sel afterwards.
func (s *kitchenService) CommitSelection(ctx context.Context, sel *kitchen.Selection) (err error) {
	fields := map[string]any{"count": sel.Len(), "over_capacity": sel.OverCapacity()}
	done := observe(ctx, s.observer, "kitchen-commit-selection", fields)
	defer func() { done(err) }()

	s.store.ReplaceKitchen(ctx, sel.Selected())
	return nil
}

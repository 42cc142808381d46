package service

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/larder/internal/domain"
	"github.com/alexanderramin/larder/internal/recipeimport"
)

type recipeService struct {
	store    RecipeStore
	observer UseCaseObserver
}

func NewRecipeService(store RecipeStore, observers ...UseCaseObserver) RecipeService {
	return &recipeService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *recipeService) List(_ context.Context, filter RecipeFilter) []domain.Recipe {
	out := []domain.Recipe{}
	for _, r := range s.store.Catalog() {
		if filter.MealType != "" && r.MealType != filter.MealType {
			continue
		}
		if !r.MatchesName(filter.Query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *recipeService) Get(_ context.Context, id string) (domain.Recipe, error) {
	catalog := s.store.Catalog()
	idx := domain.IndexOf(catalog, id)
	if idx < 0 {
		return domain.Recipe{}, recipeNotFound(id)
	}
	return catalog[idx], nil
}

// Add validates with the catalog policy. A rejected draft leaves the catalog
// untouched.
func (s *recipeService) Add(ctx context.Context, draft domain.RecipeDraft) (recipe domain.Recipe, err error) {
	fields := map[string]any{"name": draft.Name}
	done := observe(ctx, s.observer, "add-recipe", fields)
	defer func() { done(err) }()

	recipe, err = buildRecipe(draft, domain.PolicyCatalog)
	if err != nil {
		return domain.Recipe{}, err
	}
	fields["id"] = recipe.ID

	s.store.ReplaceCatalog(ctx, append(s.store.Catalog(), recipe))
	return recipe.Clone(), nil
}

// Remove drops a recipe from the catalog only; kitchen copies stay.
func (s *recipeService) Remove(ctx context.Context, id string) (removed bool, err error) {
	done := observe(ctx, s.observer, "remove-recipe", map[string]any{"id": id})
	defer func() { done(err) }()

	catalog := s.store.Catalog()
	idx := domain.IndexOf(catalog, id)
	if idx < 0 {
		return false, nil
	}
	s.store.ReplaceCatalog(ctx, append(catalog[:idx], catalog[idx+1:]...))
	return true, nil
}

func (s *recipeService) ImportHTML(ctx context.Context, r io.Reader) (domain.Recipe, error) {
	draft, err := recipeimport.Parse(r)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("importing recipe: %w", err)
	}
	return s.Add(ctx, draft)
}

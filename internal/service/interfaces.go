package service

import (
	"context"
	"io"

	"github.com/alexanderramin/larder/internal/domain"
	"github.com/alexanderramin/larder/internal/kitchen"
	"github.com/alexanderramin/larder/internal/repository"
	"github.com/alexanderramin/larder/internal/shopping"
)

// RecipeStore is the shared catalog and kitchen state. *store.Store
// implements it.
type RecipeStore interface {
	Catalog() []domain.Recipe
	Kitchen() []domain.Recipe
	ReplaceCatalog(ctx context.Context, recipes []domain.Recipe)
	ReplaceKitchen(ctx context.Context, recipes []domain.Recipe)
	SaveWeekPlan(ctx context.Context, plan domain.WeekPlan) error
	LoadWeekPlan(ctx context.Context) (domain.WeekPlan, error)
	Reset(ctx context.Context) error
	Entries(ctx context.Context) ([]repository.Entry, error)
}

// Rand is satisfied by *rand.Rand from math/rand/v2.
type Rand interface {
	IntN(n int) int
}

// RecipeFilter narrows List. A zero filter lists everything.
type RecipeFilter struct {
	MealType domain.MealType
	Query    string
}

type RecipeService interface {
	List(ctx context.Context, filter RecipeFilter) []domain.Recipe
	Get(ctx context.Context, id string) (domain.Recipe, error)
	Add(ctx context.Context, draft domain.RecipeDraft) (domain.Recipe, error)
	Remove(ctx context.Context, id string) (bool, error)
	ImportHTML(ctx context.Context, r io.Reader) (domain.Recipe, error)
}

type KitchenService interface {
	List(ctx context.Context) []domain.Recipe
	Add(ctx context.Context, recipeID string) (bool, error)
	QuickAdd(ctx context.Context, draft domain.RecipeDraft) (domain.Recipe, error)
	Remove(ctx context.Context, recipeID string) (bool, error)
	ToggleChecked(ctx context.Context, recipeID string) (domain.Recipe, error)

	OpenSelection(capacity int) *kitchen.Selection
	SelectRandom(sel *kitchen.Selection, count int)
	Options(sel *kitchen.Selection, query string) []kitchen.Option
	CommitSelection(ctx context.Context, sel *kitchen.Selection) error
}

type WeekService interface {
	Randomize(ctx context.Context) domain.WeekPlan
	Save(ctx context.Context, plan domain.WeekPlan) error
	Last(ctx context.Context) (domain.WeekPlan, error)
}

type ShoppingService interface {
	Build(ctx context.Context, opts shopping.Options) shopping.List
	Share(ctx context.Context, list shopping.List, sharer shopping.Sharer) error
}

type StorageService interface {
	Entries(ctx context.Context) ([]repository.Entry, error)
	Reset(ctx context.Context) error
}

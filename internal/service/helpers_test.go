package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/alexanderramin/larder/internal/domain"
	"github.com/alexanderramin/larder/internal/repository"
	"github.com/alexanderramin/larder/internal/seed"
	"github.com/alexanderramin/larder/internal/store"
	"github.com/alexanderramin/larder/internal/testutil"
)

// seededStore returns an initialized store over a fresh in-memory database.
func seededStore(t *testing.T, snap domain.Snapshot) *store.Store {
	t.Helper()
	database := testutil.NewTestDB(t)
	s := store.New(
		repository.NewSQLiteKVRepo(database),
		testutil.NewTestUoW(database),
		seed.Fixed(snap),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	s.Initialize(context.Background())
	return s
}

func sampleSnapshot() domain.Snapshot {
	oats := testutil.NewTestRecipe("Overnight Oats", testutil.WithID("oats"), testutil.WithMealType(domain.MealBreakfast),
		testutil.WithIngredients("oats", "milk"))
	soup := testutil.NewTestRecipe("Tomato Soup", testutil.WithID("soup"), testutil.WithMealType(domain.MealLunch),
		testutil.WithIngredients("tomatoes", "cream"))
	curry := testutil.NewTestRecipe("Vegetable Curry", testutil.WithID("curry"),
		testutil.WithIngredients("chickpeas", "rice"))
	nuts := testutil.NewTestRecipe("Trail Mix", testutil.WithID("nuts"), testutil.WithMealType(domain.MealSnack),
		testutil.WithIngredients("almonds"))
	return domain.Snapshot{
		Recipes:        []domain.Recipe{oats, soup, curry, nuts},
		KitchenRecipes: []domain.Recipe{soup.Clone(), curry.Clone()},
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func names(recipes []domain.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Name
	}
	return out
}

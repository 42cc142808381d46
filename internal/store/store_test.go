package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"

	"github.com/alexanderramin/larder/internal/db"
	"github.com/alexanderramin/larder/internal/domain"
	"github.com/alexanderramin/larder/internal/repository"
	"github.com/alexanderramin/larder/internal/seed"
	"github.com/alexanderramin/larder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeed() domain.Snapshot {
	oats := testutil.NewTestRecipe("Oats", testutil.WithID("s1"), testutil.WithMealType(domain.MealBreakfast))
	soup := testutil.NewTestRecipe("Soup", testutil.WithID("s2"), testutil.WithMealType(domain.MealLunch))
	return domain.Snapshot{
		Recipes:        []domain.Recipe{oats, soup},
		KitchenRecipes: []domain.Recipe{soup.Clone()},
	}
}

type storeFixture struct {
	db    *sql.DB
	store *Store
	logs  *bytes.Buffer
}

func newStore(t *testing.T, database *sql.DB, kv repository.KeyValueRepo, uow db.UnitOfWork) storeFixture {
	t.Helper()
	if database == nil {
		database = testutil.NewTestDB(t)
	}
	if kv == nil {
		kv = repository.NewSQLiteKVRepo(database)
	}
	if uow == nil {
		uow = testutil.NewTestUoW(database)
	}
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return storeFixture{db: database, store: New(kv, uow, seed.Fixed(testSeed()), logger), logs: logs}
}

func TestInitialize_FirstRunSeedsBothKeys(t *testing.T) {
	f := newStore(t, nil, nil, nil)
	ctx := context.Background()

	f.store.Initialize(ctx)

	assert.Equal(t, testSeed().Recipes, f.store.Catalog())
	assert.Equal(t, testSeed().KitchenRecipes, f.store.Kitchen())

	kv := repository.NewSQLiteKVRepo(f.db)
	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{KeyKitchen, KeyRecipes}, keys)

	raw, err := kv.Get(ctx, KeyRecipes)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"recipes":[`)
}

func TestInitialize_SecondRunLoadsVerbatim(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	first := newStore(t, database, nil, nil)
	first.store.Initialize(ctx)
	custom := testutil.NewTestRecipe("Custom", testutil.WithID("c1"))
	first.store.ReplaceCatalog(ctx, []domain.Recipe{custom})

	second := newStore(t, database, nil, nil)
	second.store.Initialize(ctx)

	assert.Equal(t, []domain.Recipe{custom}, second.store.Catalog())
	assert.Equal(t, testSeed().KitchenRecipes, second.store.Kitchen())
}

func TestInitialize_SeedsOnlyTheMissingKey(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	kv := repository.NewSQLiteKVRepo(database)
	require.NoError(t, kv.Set(ctx, KeyKitchen, []byte(`{"kitchenRecipes":[]}`)))

	f := newStore(t, database, kv, nil)
	f.store.Initialize(ctx)

	assert.Len(t, f.store.Catalog(), 2)
	assert.Empty(t, f.store.Kitchen())
}

func TestInitialize_MalformedDocumentFallsBackToEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	kv := repository.NewSQLiteKVRepo(database)
	require.NoError(t, kv.Set(ctx, KeyRecipes, []byte(`{"recipes": [not json`)))

	f := newStore(t, database, kv, nil)
	f.store.Initialize(ctx)

	assert.NotNil(t, f.store.Catalog())
	assert.Empty(t, f.store.Catalog())
	assert.Equal(t, testSeed().KitchenRecipes, f.store.Kitchen())
	assert.Contains(t, f.logs.String(), "stored collection is malformed")
	assert.Contains(t, f.logs.String(), "key=recipes")
}

func TestInitialize_SeedFailureLeavesKeyAbsent(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	logs := &bytes.Buffer{}
	kv := repository.NewSQLiteKVRepo(database)
	broken := func() (domain.Snapshot, error) { return domain.Snapshot{}, errors.New("corrupt bundle") }

	s := New(kv, testutil.NewTestUoW(database), broken, slog.New(slog.NewTextHandler(logs, nil)))
	s.Initialize(ctx)

	assert.Empty(t, s.Catalog())
	_, err := kv.Get(ctx, KeyRecipes)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Contains(t, logs.String(), "corrupt bundle")
}

func TestReplaceCatalog_FailedWriteKeepsMemoryState(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	failing := repository.NewSQLiteKVRepo(testutil.NewFailOnNthExec(database, 0, errors.New("disk full")))

	f := newStore(t, database, failing, nil)
	f.store.Initialize(ctx)

	next := append(f.store.Catalog(), testutil.NewTestRecipe("Extra", testutil.WithID("x1")))
	f.store.ReplaceCatalog(ctx, next)

	assert.Equal(t, next, f.store.Catalog())
	assert.Contains(t, f.logs.String(), "saving collection failed")
	assert.Contains(t, f.logs.String(), "disk full")

	stored, err := repository.NewSQLiteKVRepo(database).Get(ctx, KeyRecipes)
	require.NoError(t, err)
	assert.NotContains(t, string(stored), "Extra")
}

func TestAccessorsReturnCopies(t *testing.T) {
	f := newStore(t, nil, nil, nil)
	f.store.Initialize(context.Background())

	got := f.store.Kitchen()
	got[0].Checked = true
	got[0].Ingredients[0] = "mutated"

	fresh := f.store.Kitchen()
	assert.False(t, fresh[0].Checked)
	assert.NotEqual(t, "mutated", fresh[0].Ingredients[0])
}

func TestReplaceKitchen_EmptyPersistsAsEmptyArray(t *testing.T) {
	f := newStore(t, nil, nil, nil)
	ctx := context.Background()
	f.store.Initialize(ctx)

	f.store.ReplaceKitchen(ctx, nil)

	raw, err := repository.NewSQLiteKVRepo(f.db).Get(ctx, KeyKitchen)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kitchenRecipes":[]}`, string(raw))
}

func TestWeekPlan_SaveAndLoad(t *testing.T) {
	f := newStore(t, nil, nil, nil)
	ctx := context.Background()
	f.store.Initialize(ctx)

	_, err := f.store.LoadWeekPlan(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)

	plan := domain.NewWeekPlan()
	oats := testSeed().Recipes[0]
	day := plan[domain.Monday]
	day.SetSlot(domain.MealBreakfast, &oats)
	plan[domain.Monday] = day
	require.NoError(t, f.store.SaveWeekPlan(ctx, plan))

	loaded, err := f.store.LoadWeekPlan(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded[domain.Monday].Breakfast)
	assert.Equal(t, "Oats", loaded[domain.Monday].Breakfast.Name)
	assert.Nil(t, loaded[domain.Friday].Dinner)
	assert.Equal(t, 1, loaded.FilledSlots())
}

func TestReset_ReseedsAndDropsWeekPlan(t *testing.T) {
	f := newStore(t, nil, nil, nil)
	ctx := context.Background()
	f.store.Initialize(ctx)
	f.store.ReplaceCatalog(ctx, nil)
	require.NoError(t, f.store.SaveWeekPlan(ctx, domain.NewWeekPlan()))

	require.NoError(t, f.store.Reset(ctx))

	assert.Equal(t, testSeed().Recipes, f.store.Catalog())
	_, err := f.store.LoadWeekPlan(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReset_RollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	setup := newStore(t, database, nil, nil)
	setup.store.Initialize(ctx)
	custom := []domain.Recipe{testutil.NewTestRecipe("Keep Me", testutil.WithID("k1"))}
	setup.store.ReplaceCatalog(ctx, custom)

	// Two removes, then the recipes write, then the kitchen write fails.
	boom := errors.New("injected")
	failing := &testutil.FailOnNthExecUoW{DB: database, FailOn: 4, Err: boom}
	f := newStore(t, database, nil, failing)
	f.store.Initialize(ctx)

	err := f.store.Reset(ctx)
	require.ErrorIs(t, err, boom)

	assert.Equal(t, custom, f.store.Catalog())
	stored, err := repository.NewSQLiteKVRepo(database).Get(ctx, KeyRecipes)
	require.NoError(t, err)
	assert.Contains(t, string(stored), "Keep Me")
}

func TestEntries(t *testing.T) {
	f := newStore(t, nil, nil, nil)
	f.store.Initialize(context.Background())

	entries, err := f.store.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, KeyKitchen, entries[0].Key)
	assert.Positive(t, entries[0].SizeBytes)
}

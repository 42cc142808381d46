package service

import (
	"context"

	"github.com/alexanderramin/larder/internal/domain"
	"github.com/alexanderramin/larder/internal/planner"
)

type weekService struct {
	store    RecipeStore
	rng      Rand
	observer UseCaseObserver
}

func NewWeekService(store RecipeStore, rng Rand, observers ...UseCaseObserver) WeekService {
	return &weekService{store: store, rng: randOrGlobal(rng), observer: useCaseObserverOrNoop(observers)}
}

// Randomize plans from the current kitchen. Nothing is stored until Save.
func (s *weekService) Randomize(ctx context.Context) domain.WeekPlan {
	fields := map[string]any{}
	done := observe(ctx, s.observer, "randomize-week", fields)

	plan := planner.RandomizeWeek(s.store.Kitchen(), s.rng)
	fields["filled_slots"] = plan.FilledSlots()
	done(nil)
	return plan
}

func (s *weekService) Save(ctx context.Context, plan domain.WeekPlan) (err error) {
	done := observe(ctx, s.observer, "save-week", map[string]any{"filled_slots": plan.FilledSlots()})
	defer func() { done(err) }()

	return s.store.SaveWeekPlan(ctx, plan)
}

// Last returns the most recently saved plan or repository.ErrNotFound.
func (s *weekService) Last(ctx context.Context) (domain.WeekPlan, error) {
	return s.store.LoadWeekPlan(ctx)
}

package service

import (
	"context"

	"github.com/alexanderramin/larder/internal/repository"
)

type storageService struct {
	store    RecipeStore
	observer UseCaseObserver
}

func NewStorageService(store RecipeStore, observers ...UseCaseObserver) StorageService {
	return &storageService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *storageService) Entries(ctx context.Context) ([]repository.Entry, error) {
	return s.store.Entries(ctx)
}

// Reset wipes storage and reinstalls the bundled recipes.
func (s *storageService) Reset(ctx context.Context) (err error) {
	done := observe(ctx, s.observer, "reset-storage", nil)
	defer func() { done(err) }()

	return s.store.Reset(ctx)
}

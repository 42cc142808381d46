package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/larder/internal/kitchen"
	"github.com/alexanderramin/larder/internal/shopping"
)

type shoppingService struct {
	store    RecipeStore
	observer UseCaseObserver
}

func NewShoppingService(store RecipeStore, observers ...UseCaseObserver) ShoppingService {
	return &shoppingService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *shoppingService) Build(_ context.Context, opts shopping.Options) shopping.List {
	return shopping.Build(kitchen.PartitionChecked(s.store.Kitchen()), opts)
}

func (s *shoppingService) Share(ctx context.Context, list shopping.List, sharer shopping.Sharer) (err error) {
	done := observe(ctx, s.observer, "share-shopping-list", map[string]any{
		"items":  len(list.Items),
		"target": sharer.Name(),
	})
	defer func() { done(err) }()

	if err := sharer.Share(list.Format()); err != nil {
		return fmt.Errorf("sharing via %s: %w", sharer.Name(), err)
	}
	return nil
}

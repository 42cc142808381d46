// Package seed holds the recipe dataset installed on first run.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/larder/internal/domain"
)

//go:embed default.json
var defaultJSON []byte

// Default decodes a fresh copy of the bundled dataset.
func Default() (domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := json.Unmarshal(defaultJSON, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decoding bundled recipes: %w", err)
	}
	return snap, nil
}

// Source supplies the snapshot used to seed empty storage.
type Source func() (domain.Snapshot, error)

// Fixed returns a Source that always yields a copy of snap.
func Fixed(snap domain.Snapshot) Source {
	return func() (domain.Snapshot, error) {
		return domain.Snapshot{
			Recipes:        domain.CloneRecipes(snap.Recipes),
			KitchenRecipes: domain.CloneRecipes(snap.KitchenRecipes),
		}, nil
	}
}

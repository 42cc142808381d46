package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/alexanderramin/larder/internal/domain"
	"github.com/alexanderramin/larder/internal/repository"
	"github.com/google/uuid"
)

// newRecipeID returns a time-ordered UUIDv7 so ids sort by creation.
func newRecipeID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating recipe id: %w", err)
	}
	return id.String(), nil
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

func randOrGlobal(rng Rand) Rand {
	if rng == nil {
		return globalRand{}
	}
	return rng
}

func recipeNotFound(id string) error {
	return fmt.Errorf("recipe %q: %w", id, repository.ErrNotFound)
}

// buildRecipe normalizes and validates a draft under policy, then assigns an id.
func buildRecipe(draft domain.RecipeDraft, policy domain.DraftPolicy) (domain.Recipe, error) {
	norm := draft.Normalize()
	if err := norm.Validate(policy); err != nil {
		return domain.Recipe{}, err
	}
	id, err := newRecipeID()
	if err != nil {
		return domain.Recipe{}, err
	}
	return norm.Build(id), nil
}

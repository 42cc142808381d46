package testutil

import (
	"strconv"

	"github.com/alexanderramin/larder/internal/domain"
	"github.com/google/uuid"
)

// RecipeOption customises a fixture recipe.
type RecipeOption func(*domain.Recipe)

func WithID(id string) RecipeOption {
	return func(r *domain.Recipe) {
		r.ID = id
	}
}

func WithMealType(mt domain.MealType) RecipeOption {
	return func(r *domain.Recipe) {
		r.MealType = mt
	}
}

func WithIngredients(ingredients ...string) RecipeOption {
	return func(r *domain.Recipe) {
		r.Ingredients = ingredients
	}
}

func WithInstructions(s string) RecipeOption {
	return func(r *domain.Recipe) {
		r.Instructions = s
	}
}

func WithChecked(checked bool) RecipeOption {
	return func(r *domain.Recipe) {
		r.Checked = checked
	}
}

// NewTestRecipe builds a dinner recipe with one ingredient and a random id.
func NewTestRecipe(name string, opts ...RecipeOption) domain.Recipe {
	r := domain.Recipe{
		ID:           uuid.New().String(),
		Name:         name,
		Ingredients:  []string{name + " base"},
		Instructions: "Cook " + name + ".",
		MealType:     domain.MealDinner,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// NewTestRecipes builds n recipes of the given meal type named prefix-1..n.
func NewTestRecipes(prefix string, mt domain.MealType, n int) []domain.Recipe {
	out := make([]domain.Recipe, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, NewTestRecipe(prefix+"-"+strconv.Itoa(i), WithMealType(mt)))
	}
	return out
}

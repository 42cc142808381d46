package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftNormalize(t *testing.T) {
	d := RecipeDraft{
		Name:        "  Omelette ",
		Ingredients: []string{" egg", "", "   ", "butter "},
	}.Normalize()

	assert.Equal(t, "Omelette", d.Name)
	assert.Equal(t, []string{"egg", "butter"}, d.Ingredients)
	assert.Equal(t, MealDinner, d.MealType)
}

func TestDraftValidate_CatalogPolicy(t *testing.T) {
	ok := RecipeDraft{Name: "Toast", Ingredients: []string{"bread"}}.Normalize()
	require.NoError(t, ok.Validate(PolicyCatalog))

	noName := RecipeDraft{Name: "   ", Ingredients: []string{"bread"}}.Normalize()
	err := noName.Validate(PolicyCatalog)
	require.ErrorIs(t, err, ErrInvalidRecipe)
	assert.Contains(t, err.Error(), "name is required")

	noIngredients := RecipeDraft{Name: "Toast", Ingredients: []string{" "}}.Normalize()
	err = noIngredients.Validate(PolicyCatalog)
	require.ErrorIs(t, err, ErrInvalidRecipe)
	assert.Contains(t, err.Error(), "at least one ingredient")
}

func TestDraftValidate_QuickAddAllowsNoIngredients(t *testing.T) {
	d := RecipeDraft{Name: "Leftovers"}.Normalize()
	require.NoError(t, d.Validate(PolicyQuickAdd))

	err := RecipeDraft{}.Normalize().Validate(PolicyQuickAdd)
	assert.ErrorIs(t, err, ErrInvalidRecipe)
}

func TestDraftValidate_RejectsUnknownMealType(t *testing.T) {
	d := RecipeDraft{Name: "Tea", Ingredients: []string{"leaves"}, MealType: "elevenses"}.Normalize()

	err := d.Validate(PolicyCatalog)
	require.ErrorIs(t, err, ErrInvalidRecipe)
	assert.Contains(t, err.Error(), "elevenses")
}

func TestDraftBuild(t *testing.T) {
	d := RecipeDraft{Name: "Tea", Ingredients: []string{"leaves"}, MealType: MealSnack}.Normalize()

	r := d.Build("id-1")

	assert.Equal(t, "id-1", r.ID)
	assert.Equal(t, MealSnack, r.MealType)
	assert.False(t, r.Checked)
}

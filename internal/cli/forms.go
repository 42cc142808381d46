package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/larder/internal/cli/formatter"
	"github.com/alexanderramin/larder/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func larderHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// recipeFormInput collects raw form values; ingredients arrive one per line.
type recipeFormInput struct {
	Name         string
	Ingredients  string
	Instructions string
	MealType     domain.MealType
}

func (in recipeFormInput) draft() domain.RecipeDraft {
	return domain.RecipeDraft{
		Name:         in.Name,
		Ingredients:  strings.Split(in.Ingredients, "\n"),
		Instructions: in.Instructions,
		MealType:     in.MealType,
	}
}

func validateRecipeName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name is required")
	}
	return nil
}

func validateIngredientLines(s string) error {
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			return nil
		}
	}
	return errors.New("at least one ingredient is required")
}

// newRecipeForm builds the interactive add-recipe form. With requireIngredients
// false it serves the kitchen quick-add, which accepts a bare name.
func newRecipeForm(in *recipeFormInput, requireIngredients bool) *huh.Form {
	if in.MealType == "" {
		in.MealType = domain.DefaultMealType
	}
	mealOptions := make([]huh.Option[domain.MealType], 0, len(domain.MealTypes))
	for _, mt := range domain.MealTypes {
		mealOptions = append(mealOptions, huh.NewOption(mt.Label(), mt))
	}

	ingredients := huh.NewText().
		Title("Ingredients").
		Description("One per line").
		Value(&in.Ingredients)
	if requireIngredients {
		ingredients = ingredients.Validate(validateIngredientLines)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Recipe name").
				Value(&in.Name).
				Validate(validateRecipeName),
			huh.NewSelect[domain.MealType]().
				Title("Meal").
				Options(mealOptions...).
				Value(&in.MealType),
		),
		huh.NewGroup(
			ingredients,
			huh.NewText().
				Title("Instructions").
				Value(&in.Instructions),
		),
	).WithTheme(larderHuhTheme()).WithShowHelp(false)
}

func newConfirmForm(title, description string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(confirmed),
		),
	).WithTheme(larderHuhTheme()).WithShowHelp(false)
}

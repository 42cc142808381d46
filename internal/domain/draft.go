package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecipe wraps every draft validation failure.
var ErrInvalidRecipe = errors.New("invalid recipe")

// DraftPolicy selects how strictly a draft is validated. Recipes entering the
// catalog need ingredients; quick-adds straight into the kitchen do not.
type DraftPolicy int

const (
	PolicyCatalog DraftPolicy = iota
	PolicyQuickAdd
)

func (p DraftPolicy) String() string {
	if p == PolicyQuickAdd {
		return "quick-add"
	}
	return "catalog"
}

// RecipeDraft is user input before an id is assigned.
type RecipeDraft struct {
	Name         string
	Ingredients  []string
	Instructions string
	MealType     MealType
}

type catalogDraftRules struct {
	Name        string   `validate:"required"`
	Ingredients []string `validate:"min=1,dive,required"`
	MealType    MealType `validate:"oneof=breakfast lunch dinner snack"`
}

type quickAddDraftRules struct {
	Name        string   `validate:"required"`
	Ingredients []string `validate:"dive,required"`
	MealType    MealType `validate:"oneof=breakfast lunch dinner snack"`
}

var validate = validator.New()

// Normalize trims the name, instructions and every ingredient, drops blank
// ingredients and fills in the default meal type.
func (d RecipeDraft) Normalize() RecipeDraft {
	out := RecipeDraft{
		Name:         strings.TrimSpace(d.Name),
		Instructions: strings.TrimSpace(d.Instructions),
		MealType:     d.MealType,
		Ingredients:  []string{},
	}
	for _, ing := range d.Ingredients {
		if t := strings.TrimSpace(ing); t != "" {
			out.Ingredients = append(out.Ingredients, t)
		}
	}
	if out.MealType == "" {
		out.MealType = DefaultMealType
	}
	return out
}

// Validate checks an already normalized draft against the policy.
func (d RecipeDraft) Validate(policy DraftPolicy) error {
	var rules any
	switch policy {
	case PolicyQuickAdd:
		rules = quickAddDraftRules{Name: d.Name, Ingredients: d.Ingredients, MealType: d.MealType}
	default:
		rules = catalogDraftRules{Name: d.Name, Ingredients: d.Ingredients, MealType: d.MealType}
	}

	err := validate.Struct(rules)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRecipe, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRecipe, strings.Join(msgs, "; "))
}

// Build turns a validated draft into a recipe with the given id.
func (d RecipeDraft) Build(id string) Recipe {
	return Recipe{
		ID:           id,
		Name:         d.Name,
		Ingredients:  append([]string{}, d.Ingredients...),
		Instructions: d.Instructions,
		MealType:     d.MealType,
		Checked:      false,
	}
}

func describeFieldError(fe validator.FieldError) string {
	switch {
	case fe.Field() == "Name":
		return "name is required"
	case fe.Field() == "Ingredients" && fe.Tag() == "min":
		return "at least one ingredient is required"
	case fe.Field() == "MealType":
		return fmt.Sprintf("meal type %q is not one of breakfast, lunch, dinner, snack", fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag())
	}
}

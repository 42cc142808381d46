package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/larder/internal/domain"
)

// resolveRecipe finds a recipe by reference. The reference may be:
//   - a full id
//   - a recipe name (case-insensitive, must be unique)
//   - a unique id suffix (the short id shown in listings) or prefix
func resolveRecipe(recipes []domain.Recipe, input string) (domain.Recipe, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return domain.Recipe{}, fmt.Errorf("recipe reference is required")
	}

	if idx := domain.IndexOf(recipes, input); idx >= 0 {
		return recipes[idx], nil
	}

	var byName []domain.Recipe
	for _, r := range recipes {
		if strings.EqualFold(r.Name, input) {
			byName = append(byName, r)
		}
	}
	switch len(byName) {
	case 1:
		return byName[0], nil
	case 0:
	default:
		return domain.Recipe{}, fmt.Errorf("recipe name %q is ambiguous (%d matches); use the id", input, len(byName))
	}

	// The short id shown in listings is the tail of the id. A head prefix
	// only helps once it reaches past the shared UUIDv7 timestamp.
	var byID []domain.Recipe
	for _, r := range recipes {
		if strings.HasSuffix(r.ID, input) || strings.HasPrefix(r.ID, input) {
			byID = append(byID, r)
		}
	}

	switch len(byID) {
	case 0:
		return domain.Recipe{}, fmt.Errorf("recipe not found: %q", input)
	case 1:
		return byID[0], nil
	default:
		return domain.Recipe{}, fmt.Errorf("recipe id %q is ambiguous (%d matches)", input, len(byID))
	}
}

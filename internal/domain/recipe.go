package domain

import "strings"

// Recipe is a single catalog or kitchen entry. JSON field names match the
// persisted snapshot documents.
type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	MealType     MealType `json:"mealType"`
	Checked      bool     `json:"checked"`
}

// Clone returns a deep copy. Kitchen entries are always clones of catalog
// entries so that flipping Checked on one never leaks into the other.
func (r Recipe) Clone() Recipe {
	c := r
	if r.Ingredients != nil {
		c.Ingredients = append([]string(nil), r.Ingredients...)
	}
	return c
}

// MatchesName reports whether the recipe name contains query, ignoring case.
// An empty query matches everything.
func (r Recipe) MatchesName(query string) bool {
	return strings.Contains(strings.ToLower(r.Name), strings.ToLower(query))
}

// CloneRecipes deep-copies every recipe in the slice.
func CloneRecipes(recipes []Recipe) []Recipe {
	if recipes == nil {
		return nil
	}
	out := make([]Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = r.Clone()
	}
	return out
}

// IndexOf returns the position of the recipe with the given id, or -1.
func IndexOf(recipes []Recipe, id string) int {
	for i, r := range recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// ContainsID reports whether any recipe in the slice has the given id.
func ContainsID(recipes []Recipe, id string) bool {
	return IndexOf(recipes, id) >= 0
}

// Snapshot is the shape of the bundled default dataset.
type Snapshot struct {
	Recipes        []Recipe `json:"recipes"`
	KitchenRecipes []Recipe `json:"kitchenRecipes"`
}

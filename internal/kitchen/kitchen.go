// Package kitchen edits the kitchen set and stages selections for it. All
// functions work on value copies and return new slices.
package kitchen

import "github.com/alexanderramin/larder/internal/domain"

// Add appends a copy of r unless a recipe with the same id is already present.
// It reports whether the kitchen changed.
func Add(kitchen []domain.Recipe, r domain.Recipe) ([]domain.Recipe, bool) {
	if domain.ContainsID(kitchen, r.ID) {
		return domain.CloneRecipes(kitchen), false
	}
	out := make([]domain.Recipe, 0, len(kitchen)+1)
	out = append(out, domain.CloneRecipes(kitchen)...)
	return append(out, r.Clone()), true
}

// Remove drops the recipe with the given id. Unknown ids leave the set as is.
func Remove(kitchen []domain.Recipe, id string) ([]domain.Recipe, bool) {
	out := make([]domain.Recipe, 0, len(kitchen))
	removed := false
	for _, r := range kitchen {
		if r.ID == id {
			removed = true
			continue
		}
		out = append(out, r.Clone())
	}
	return out, removed
}

// ToggleChecked flips the checked flag of one entry. The kitchen set keeps
// insertion order; PartitionChecked derives the displayed order from it, so a
// recipe unchecked again returns to its old place among the unchecked ones.
func ToggleChecked(kitchen []domain.Recipe, id string) ([]domain.Recipe, bool) {
	idx := domain.IndexOf(kitchen, id)
	if idx < 0 {
		return domain.CloneRecipes(kitchen), false
	}
	out := domain.CloneRecipes(kitchen)
	out[idx].Checked = !out[idx].Checked
	return out, true
}

// PartitionChecked is a stable partition: unchecked first, checked last.
// Given the set in insertion order it yields the order shown to the user.
func PartitionChecked(recipes []domain.Recipe) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if !r.Checked {
			out = append(out, r.Clone())
		}
	}
	for _, r := range recipes {
		if r.Checked {
			out = append(out, r.Clone())
		}
	}
	return out
}

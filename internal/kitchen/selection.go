package kitchen

import (
	"sort"

	"github.com/alexanderramin/larder/internal/domain"
)

// DefaultCapacity is the staging limit when none is configured.
const DefaultCapacity = 3

// Rand is the subset of *rand.Rand the selector needs.
type Rand interface {
	IntN(n int) int
}

// Selection is a staging area for the next kitchen set. Manual toggles stop
// at the capacity; random picks may exceed it and only raise a warning.
type Selection struct {
	staged           []domain.Recipe
	capacity         int
	capacityExceeded bool
}

// NewSelection opens a staging area holding copies of the current kitchen.
func NewSelection(kitchen []domain.Recipe, capacity int) *Selection {
	staged := domain.CloneRecipes(kitchen)
	if staged == nil {
		staged = []domain.Recipe{}
	}
	return &Selection{staged: staged, capacity: clampCapacity(capacity)}
}

func clampCapacity(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Toggle deselects r when staged. Otherwise it stages an unchecked copy,
// unless staging is full, in which case the capacity flag is raised and
// false is returned.
func (s *Selection) Toggle(r domain.Recipe) bool {
	if idx := domain.IndexOf(s.staged, r.ID); idx >= 0 {
		s.staged = append(s.staged[:idx:idx], s.staged[idx+1:]...)
		s.capacityExceeded = false
		return true
	}
	if len(s.staged) >= s.capacity {
		s.capacityExceeded = true
		return false
	}
	c := r.Clone()
	c.Checked = false
	s.staged = append(s.staged, c)
	return true
}

// SelectRandom replaces staging with min(count, len(catalog)) distinct
// recipes drawn uniformly from catalog.
func (s *Selection) SelectRandom(catalog []domain.Recipe, count int, rng Rand) {
	n := min(max(count, 0), len(catalog))
	pool := domain.CloneRecipes(catalog)
	// Partial Fisher-Yates: the first n slots end up a uniform sample.
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	picked := make([]domain.Recipe, n)
	for i := range picked {
		picked[i] = pool[i]
		picked[i].Checked = false
	}
	s.staged = picked
	s.capacityExceeded = false
}

// SetCapacity changes the staging limit. Raising it clears the warning.
func (s *Selection) SetCapacity(n int) {
	n = clampCapacity(n)
	if n > s.capacity {
		s.capacityExceeded = false
	}
	s.capacity = n
}

func (s *Selection) Capacity() int { return s.capacity }

// Clear empties staging.
func (s *Selection) Clear() {
	s.staged = []domain.Recipe{}
	s.capacityExceeded = false
}

// Selected returns a copy of the staged recipes in staging order.
func (s *Selection) Selected() []domain.Recipe {
	return domain.CloneRecipes(s.staged)
}

func (s *Selection) Len() int { return len(s.staged) }

func (s *Selection) IsSelected(id string) bool {
	return domain.ContainsID(s.staged, id)
}

// CapacityExceeded reports whether the last toggle was refused.
func (s *Selection) CapacityExceeded() bool { return s.capacityExceeded }

// OverCapacity reports a staging area larger than the limit.
func (s *Selection) OverCapacity() bool { return len(s.staged) > s.capacity }

// Option is one row of the selector list.
type Option struct {
	Recipe   domain.Recipe
	Selected bool
}

// Options filters catalog by name and lists staged recipes first, keeping
// catalog order inside both groups.
func (s *Selection) Options(catalog []domain.Recipe, query string) []Option {
	opts := make([]Option, 0, len(catalog))
	for _, r := range catalog {
		if !r.MatchesName(query) {
			continue
		}
		opts = append(opts, Option{Recipe: r.Clone(), Selected: s.IsSelected(r.ID)})
	}
	sort.SliceStable(opts, func(i, j int) bool {
		return opts[i].Selected && !opts[j].Selected
	})
	return opts
}

// CapacityChoices lists the limits a picker offers for a catalog of size n.
func CapacityChoices(n int) []int {
	if n < 1 {
		return []int{1}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

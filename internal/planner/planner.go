// Package planner fills a Monday to Friday meal plan from the kitchen set.
package planner

import (
	"github.com/alexanderramin/larder/internal/domain"
)

// Rand is the subset of *rand.Rand the planner needs.
type Rand interface {
	IntN(n int) int
}

// RandomizeWeek builds a fresh plan. Slots are filled day by day in
// breakfast, lunch, dinner, snack order; a meal type with no recipes in the
// kitchen leaves its slots empty.
func RandomizeWeek(kitchen []domain.Recipe, rng Rand) domain.WeekPlan {
	pools := make(map[domain.MealType]*mealPool, len(domain.MealTypes))
	for _, mt := range domain.MealTypes {
		pools[mt] = newMealPool(filterByMeal(kitchen, mt))
	}

	plan := domain.NewWeekPlan()
	for _, day := range domain.Weekdays {
		meals := plan[day]
		for _, mt := range domain.MealTypes {
			meals.SetSlot(mt, pools[mt].draw(rng))
		}
		plan[day] = meals
	}
	return plan
}

func filterByMeal(recipes []domain.Recipe, mt domain.MealType) []domain.Recipe {
	var out []domain.Recipe
	for _, r := range recipes {
		if r.MealType == mt {
			out = append(out, r)
		}
	}
	return out
}

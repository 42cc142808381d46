package formatter

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/larder/internal/domain"
)

// FormatKitchen lists the kitchen set in its stored order, so cooked recipes
// appear last.
func FormatKitchen(recipes []domain.Recipe) string {
	if len(recipes) == 0 {
		return Dim("The kitchen is empty. Add recipes with `larder kitchen add` or `larder kitchen select`.") + "\n"
	}
	rows := make([][]string, 0, len(recipes))
	toCook := 0
	for i, r := range recipes {
		name := Bold(r.Name)
		if r.Checked {
			name = Dim(r.Name)
		} else {
			toCook++
		}
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			name,
			MealBadge(r.MealType),
			CheckMark(r.Checked),
			TruncID(r.ID),
		})
	}
	return Header("Kitchen") + "\n" +
		RenderTable([]string{"#", "NAME", "MEAL", "STATUS", "ID"}, rows) +
		Dim(fmt.Sprintf("%d of %s left to cook", toCook, Plural(len(recipes), "recipe", "recipes"))) + "\n"
}

// FormatCapacityCounter renders "2/3 selected", turning red when staging is
// over the limit and yellow when the last toggle was refused.
func FormatCapacityCounter(selected, capacity int, exceeded bool) string {
	text := fmt.Sprintf("%d/%d selected", selected, capacity)
	switch {
	case selected > capacity:
		return StyleRed.Render("▲ " + text + " (over the limit)")
	case exceeded:
		return StyleYellow.Render("● " + text + " (limit reached, deselect one first)")
	default:
		return StyleGreen.Render("● " + text)
	}
}

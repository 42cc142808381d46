package formatter

import (
	"strings"

	"github.com/alexanderramin/larder/internal/domain"
)

// FormatWeekPlan renders one row per weekday and one column per meal.
func FormatWeekPlan(plan domain.WeekPlan) string {
	headers := []string{"DAY"}
	for _, mt := range domain.MealTypes {
		headers = append(headers, strings.ToUpper(mt.Label()))
	}

	rows := make([][]string, 0, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		row := []string{Bold(day.Label())}
		meals := plan[day]
		for _, mt := range domain.MealTypes {
			if r := meals.Slot(mt); r != nil {
				row = append(row, MealStyle(mt).Render(r.Name))
			} else {
				row = append(row, Dim("--"))
			}
		}
		rows = append(rows, row)
	}

	out := Header("Week plan") + "\n" + RenderTable(headers, rows)
	if plan.FilledSlots() == 0 {
		out += Dim("Nothing planned. Add recipes for each meal type to the kitchen first.") + "\n"
	}
	return out
}

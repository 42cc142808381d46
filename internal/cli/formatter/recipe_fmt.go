package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/larder/internal/domain"
)

// FormatRecipeList renders the catalog as a table.
func FormatRecipeList(recipes []domain.Recipe) string {
	if len(recipes) == 0 {
		return Dim("No recipes found.") + "\n"
	}
	rows := make([][]string, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, []string{
			TruncID(r.ID),
			Bold(r.Name),
			MealBadge(r.MealType),
			Dim(Plural(len(r.Ingredients), "ingredient", "ingredients")),
		})
	}
	return RenderTable([]string{"ID", "NAME", "MEAL", "INGREDIENTS"}, rows) +
		Dim(Plural(len(recipes), "recipe", "recipes")) + "\n"
}

// FormatRecipeDetail renders one recipe in a box.
func FormatRecipeDetail(r domain.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", MealBadge(r.MealType), Dim(r.ID))

	b.WriteString("\n" + StyleHeader.Render("Ingredients") + "\n")
	if len(r.Ingredients) == 0 {
		b.WriteString(Dim("  none listed") + "\n")
	}
	for _, ing := range r.Ingredients {
		b.WriteString("  • " + ing + "\n")
	}

	b.WriteString("\n" + StyleHeader.Render("Instructions") + "\n")
	if strings.TrimSpace(r.Instructions) == "" {
		b.WriteString(Dim("  none"))
	} else {
		for i, line := range strings.Split(r.Instructions, "\n") {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("  " + line)
		}
	}
	return RenderBox(r.Name, b.String()) + "\n"
}

// FormatRecipeAdded confirms a newly created recipe.
func FormatRecipeAdded(r domain.Recipe, where string) string {
	return fmt.Sprintf("%s Added %s to the %s %s\n",
		StyleGreen.Render("✔"), Bold(r.Name), where, Dim("("+r.ID+")"))
}

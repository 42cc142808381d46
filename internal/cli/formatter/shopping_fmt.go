package formatter

import (
	"github.com/alexanderramin/larder/internal/shopping"
)

// FormatShoppingList renders the list for the terminal. The plain share text
// comes from shopping.List.Format instead.
func FormatShoppingList(list shopping.List) string {
	out := Header("Shopping list") + "\n"
	if list.Empty() {
		return out + StyleGreen.Render("Nothing needed.") + "\n"
	}
	for _, item := range list.Items {
		out += StyleDim.Render("• ") + item + "\n"
	}
	return out + Dim(Plural(len(list.Items), "item", "items")) + "\n"
}

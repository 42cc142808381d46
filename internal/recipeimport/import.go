// Package recipeimport extracts a recipe draft from a saved recipe web page.
// Structured data is preferred: schema.org JSON-LD first, then microdata,
// then a plain <h1> with ingredient and step lists.
package recipeimport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/alexanderramin/larder/internal/domain"
)

// ErrNoRecipe is returned when the page has no recognizable recipe.
var ErrNoRecipe = errors.New("no recipe found in page")

// Parse reads an HTML document and returns an unnormalized draft.
func Parse(r io.Reader) (domain.RecipeDraft, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return domain.RecipeDraft{}, fmt.Errorf("parsing html: %w", err)
	}

	for _, extract := range []func(*goquery.Document) (domain.RecipeDraft, bool){
		fromJSONLD,
		fromMicrodata,
		fromMarkup,
	} {
		if draft, ok := extract(doc); ok {
			return draft, nil
		}
	}
	return domain.RecipeDraft{}, ErrNoRecipe
}

func fromJSONLD(doc *goquery.Document) (domain.RecipeDraft, bool) {
	var (
		draft domain.RecipeDraft
		found bool
	)
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var payload any
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return true
		}
		node := findRecipeNode(payload)
		if node == nil {
			return true
		}
		draft = domain.RecipeDraft{
			Name:         cleanText(stringOf(node["name"])),
			Ingredients:  stringsOf(node["recipeIngredient"]),
			Instructions: strings.Join(instructionSteps(node["recipeInstructions"]), "\n"),
			MealType:     mealFromCategories(stringsOf(node["recipeCategory"])),
		}
		if len(draft.Ingredients) == 0 {
			draft.Ingredients = stringsOf(node["ingredients"])
		}
		found = draft.Name != ""
		return !found
	})
	return draft, found
}

// findRecipeNode walks arrays and @graph containers looking for an object
// whose @type is or includes "Recipe".
func findRecipeNode(v any) map[string]any {
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if n := findRecipeNode(item); n != nil {
				return n
			}
		}
	case map[string]any:
		for _, typ := range stringsOf(t["@type"]) {
			if typ == "Recipe" {
				return t
			}
		}
		if graph, ok := t["@graph"]; ok {
			return findRecipeNode(graph)
		}
	}
	return nil
}

// instructionSteps flattens the string, HowToStep and HowToSection forms.
func instructionSteps(v any) []string {
	switch t := v.(type) {
	case string:
		if s := cleanText(t); s != "" {
			return []string{s}
		}
	case []any:
		var out []string
		for _, item := range t {
			out = append(out, instructionSteps(item)...)
		}
		return out
	case map[string]any:
		if items, ok := t["itemListElement"]; ok {
			return instructionSteps(items)
		}
		return instructionSteps(t["text"])
	}
	return nil
}

func fromMicrodata(doc *goquery.Document) (domain.RecipeDraft, bool) {
	scope := doc.Find(`[itemtype*="schema.org/Recipe"]`).First()
	if scope.Length() == 0 {
		return domain.RecipeDraft{}, false
	}

	draft := domain.RecipeDraft{
		Name: cleanText(scope.Find(`[itemprop="name"]`).First().Text()),
	}
	scope.Find(`[itemprop="recipeIngredient"], [itemprop="ingredients"]`).Each(func(_ int, s *goquery.Selection) {
		draft.Ingredients = append(draft.Ingredients, cleanText(s.Text()))
	})
	var steps []string
	scope.Find(`[itemprop="recipeInstructions"]`).Each(func(_ int, s *goquery.Selection) {
		if items := s.Find("li"); items.Length() > 0 {
			items.Each(func(_ int, li *goquery.Selection) {
				steps = append(steps, cleanText(li.Text()))
			})
			return
		}
		steps = append(steps, cleanText(s.Text()))
	})
	draft.Instructions = strings.Join(steps, "\n")

	var categories []string
	scope.Find(`[itemprop="recipeCategory"]`).Each(func(_ int, s *goquery.Selection) {
		if c, ok := s.Attr("content"); ok {
			categories = append(categories, c)
			return
		}
		categories = append(categories, s.Text())
	})
	draft.MealType = mealFromCategories(categories)

	return draft, draft.Name != ""
}

func fromMarkup(doc *goquery.Document) (domain.RecipeDraft, bool) {
	draft := domain.RecipeDraft{
		Name: cleanText(doc.Find("h1").First().Text()),
	}
	if draft.Name == "" {
		return draft, false
	}
	doc.Find("ul").First().Find("li").Each(func(_ int, s *goquery.Selection) {
		draft.Ingredients = append(draft.Ingredients, cleanText(s.Text()))
	})
	var steps []string
	doc.Find("ol").First().Find("li").Each(func(_ int, s *goquery.Selection) {
		steps = append(steps, cleanText(s.Text()))
	})
	draft.Instructions = strings.Join(steps, "\n")
	return draft, true
}

// mealFromCategories maps free-form recipe categories onto meal types. No
// match returns "" so the draft falls back to the default meal type.
func mealFromCategories(categories []string) domain.MealType {
	for _, c := range categories {
		c = strings.ToLower(c)
		switch {
		case strings.Contains(c, "breakfast"), strings.Contains(c, "brunch"):
			return domain.MealBreakfast
		case strings.Contains(c, "lunch"):
			return domain.MealLunch
		case strings.Contains(c, "snack"), strings.Contains(c, "appetizer"):
			return domain.MealSnack
		case strings.Contains(c, "dinner"), strings.Contains(c, "main"):
			return domain.MealDinner
		}
	}
	return ""
}

func stringOf(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func stringsOf(v any) []string {
	switch t := v.(type) {
	case string:
		if s := cleanText(t); s != "" {
			return []string{s}
		}
	case []any:
		var out []string
		for _, item := range t {
			if s := cleanText(stringOf(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// cleanText collapses runs of whitespace, including newlines from markup.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

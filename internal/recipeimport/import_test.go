package recipeimport

import (
	"strings"
	"testing"

	"github.com/alexanderramin/larder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonLDPage = `<html><head>
<script type="application/ld+json">
{"@context":"https://schema.org","@graph":[
  {"@type":"WebPage","name":"Site"},
  {"@type":["Recipe","NewsArticle"],
   "name":"  Shakshuka ",
   "recipeCategory":["Brunch","Vegetarian"],
   "recipeIngredient":["4 eggs","1 can tomatoes","  "],
   "recipeInstructions":[
     {"@type":"HowToSection","name":"Sauce","itemListElement":[
       {"@type":"HowToStep","text":"Simmer the tomatoes."}
     ]},
     {"@type":"HowToStep","text":"Crack in the eggs."}
   ]}
]}
</script></head><body><h1>Ignored heading</h1></body></html>`

func TestParse_JSONLD(t *testing.T) {
	draft, err := Parse(strings.NewReader(jsonLDPage))
	require.NoError(t, err)

	assert.Equal(t, "Shakshuka", draft.Name)
	assert.Equal(t, []string{"4 eggs", "1 can tomatoes"}, draft.Ingredients)
	assert.Equal(t, "Simmer the tomatoes.\nCrack in the eggs.", draft.Instructions)
	assert.Equal(t, domain.MealBreakfast, draft.MealType)
}

func TestParse_JSONLDStringInstructions(t *testing.T) {
	page := `<script type="application/ld+json">[{"@type":"Recipe","name":"Toast","recipeIngredient":"bread","recipeInstructions":"Toast it."}]</script>`

	draft, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, []string{"bread"}, draft.Ingredients)
	assert.Equal(t, "Toast it.", draft.Instructions)
	assert.Empty(t, draft.MealType)
}

func TestParse_SkipsBrokenJSONLD(t *testing.T) {
	page := `<script type="application/ld+json">{broken</script>
<div itemscope itemtype="https://schema.org/Recipe">
  <h2 itemprop="name">Lentil
     Soup</h2>
  <meta itemprop="recipeCategory" content="Lunch">
  <ul>
    <li itemprop="recipeIngredient">red lentils</li>
    <li itemprop="recipeIngredient">carrot</li>
  </ul>
  <ol itemprop="recipeInstructions"><li>Chop.</li><li>Simmer.</li></ol>
</div>`

	draft, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, "Lentil Soup", draft.Name)
	assert.Equal(t, []string{"red lentils", "carrot"}, draft.Ingredients)
	assert.Equal(t, "Chop.\nSimmer.", draft.Instructions)
	assert.Equal(t, domain.MealLunch, draft.MealType)
}

func TestParse_PlainMarkup(t *testing.T) {
	page := `<h1>Popcorn</h1><ul><li>kernels</li><li>salt</li></ul><ol><li>Pop.</li></ol>`

	draft, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, "Popcorn", draft.Name)
	assert.Equal(t, []string{"kernels", "salt"}, draft.Ingredients)
	assert.Equal(t, "Pop.", draft.Instructions)
}

func TestParse_NoRecipe(t *testing.T) {
	_, err := Parse(strings.NewReader(`<p>just text</p>`))
	assert.ErrorIs(t, err, ErrNoRecipe)
}

func TestMealFromCategories(t *testing.T) {
	cases := map[string]domain.MealType{
		"Breakfast":   domain.MealBreakfast,
		"Main Course": domain.MealDinner,
		"Appetizer":   domain.MealSnack,
		"lunch box":   domain.MealLunch,
		"Dessert":     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, mealFromCategories([]string{in}), in)
	}
}

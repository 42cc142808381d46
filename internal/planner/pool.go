package planner

import "github.com/alexanderramin/larder/internal/domain"

// mealPool hands out recipes of one meal type. Each recipe is drawn at most
// once until every one has been used; after that draws repeat at random.
type mealPool struct {
	unused []domain.Recipe
	all    []domain.Recipe
}

func newMealPool(recipes []domain.Recipe) *mealPool {
	return &mealPool{
		unused: domain.CloneRecipes(recipes),
		all:    domain.CloneRecipes(recipes),
	}
}

// draw returns nil when the pool never had a recipe.
func (p *mealPool) draw(rng Rand) *domain.Recipe {
	if len(p.unused) > 0 {
		i := rng.IntN(len(p.unused))
		r := p.unused[i]
		p.unused = append(p.unused[:i], p.unused[i+1:]...)
		return &r
	}
	if len(p.all) == 0 {
		return nil
	}
	r := p.all[rng.IntN(len(p.all))].Clone()
	return &r
}

package planner

import (
	"fmt"

	"seasonal-meal-planner/internal/catalog"
	"seasonal-meal-planner/internal/sampler"
)

// flareFaces is the three-sided coin deciding whether a meal gets flare.
var flareFaces = [3]bool{true, true, false}

type draw struct {
	kind catalog.Kind
	n    int
}

// Composer draws single candidate meals from a catalog.
type Composer struct {
	catalog  *catalog.Catalog
	src      sampler.Source
	servings float64
}

// NewComposer creates a Composer. servings is the total number of portions a
// meal must cover (meals per batch times people per meal).
func NewComposer(c *catalog.Catalog, src sampler.Source, servings float64) *Composer {
	return &Composer{catalog: c, src: src, servings: servings}
}

// drawCount is how many groups a category contributes in a role. Nutrient
// categories always contribute one more than protein ones.
func drawCount(k catalog.Kind, extra bool) int {
	n := 1
	if extra {
		n = 2
	}
	if k == catalog.Nutrient {
		n++
	}
	return n
}

// ComposeMeal draws one candidate meal.
//
// Randomness is consumed in a fixed order: the extra/normal role coin, the
// flare coin, the weighted group draws (extra, normal, carb, flare), then one
// option draw per selection in the same order.
func (c *Composer) ComposeMeal() (Meal, error) {
	extra, normal := catalog.Protein, catalog.Nutrient
	if c.src.IntN(2) == 1 {
		extra, normal = normal, extra
	}
	addFlare := flareFaces[c.src.IntN(len(flareFaces))]

	plan := []draw{
		{extra, drawCount(extra, true)},
		{normal, drawCount(normal, false)},
		{catalog.Carb, 1},
	}
	if addFlare {
		plan = append(plan, draw{catalog.Flare, 1})
	}

	var selections []sampler.Selection
	for _, p := range plan {
		sel, err := sampler.Sample(c.src, c.catalog.Category(p.kind), p.n, c.servings)
		if err != nil {
			return Meal{}, fmt.Errorf("failed to draw %s: %w", p.kind, err)
		}
		selections = append(selections, sel...)
	}

	resolved := make([]catalog.Ingredient, 0, len(selections))
	for _, s := range selections {
		resolved = append(resolved, s.Resolve(c.src))
	}
	return NewMeal(resolved...), nil
}

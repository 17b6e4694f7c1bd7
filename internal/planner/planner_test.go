package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seasonal-meal-planner/internal/catalog"
	"seasonal-meal-planner/internal/sampler"
)

func singles(names ...string) []catalog.GroupSpec {
	groups := make([]catalog.GroupSpec, 0, len(names))
	for _, n := range names {
		groups = append(groups, catalog.GroupSpec{Options: []catalog.OptionSpec{{Name: n, Serving: 1, Unit: "cup"}}})
	}
	return groups
}

func buildCatalog(t *testing.T, proteins, nutrients, carbs, flare []string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Build(catalog.Spec{Categories: []catalog.CategorySpec{
		{Name: "protein", Groups: singles(proteins...)},
		{Name: "nutrient", Groups: singles(nutrients...)},
		{Name: "carb", Groups: singles(carbs...)},
		{Name: "flare", Groups: singles(flare...)},
	}}, 6)
	require.NoError(t, err)
	return c
}

func smallCatalog(t *testing.T) *catalog.Catalog {
	return buildCatalog(t,
		[]string{"Tofu", "Beans"},
		[]string{"Spinach", "Chard"},
		[]string{"Rice"},
		[]string{"Onions"},
	)
}

func TestComposeMeal(t *testing.T) {
	t.Run("FirstCandidateEverywhere", func(t *testing.T) {
		src := &sampler.Scripted{}
		meal, err := NewComposer(smallCatalog(t), src, 8).ComposeMeal()
		require.NoError(t, err)

		// Protein is extra (2), nutrient normal (2), one carb, flare on.
		assert.Equal(t, []string{"Beans", "Tofu", "Chard", "Spinach", "Rice", "Onions"}, meal.Names())
		tofu, ok := meal.Get("Tofu")
		require.True(t, ok)
		assert.Equal(t, 4.0, tofu.Serving)
		rice, _ := meal.Get("Rice")
		assert.Equal(t, 8.0, rice.Serving)

		assert.Equal(t, 6, src.FloatCalls, "one weighted draw per group")
		assert.Equal(t, 8, src.IntCalls, "two coins plus one option draw per group")
	})

	t.Run("NoFlare", func(t *testing.T) {
		src := &sampler.Scripted{Ints: []int{0, 2}}
		meal, err := NewComposer(smallCatalog(t), src, 8).ComposeMeal()
		require.NoError(t, err)
		assert.Equal(t, []string{"Beans", "Tofu", "Chard", "Spinach", "Rice"}, meal.Names())
		assert.False(t, meal.Contains("Onions"))
	})

	t.Run("NutrientExtraNeedsThree", func(t *testing.T) {
		src := &sampler.Scripted{Ints: []int{1}}
		_, err := NewComposer(smallCatalog(t), src, 8).ComposeMeal()
		require.Error(t, err)
		assert.True(t, errors.Is(err, sampler.ErrSamplingImpossible))
		assert.Contains(t, err.Error(), "nutrient")
	})

	t.Run("NutrientExtra", func(t *testing.T) {
		c := buildCatalog(t,
			[]string{"Tofu", "Beans"},
			[]string{"Spinach", "Chard", "Peas"},
			[]string{"Rice"},
			[]string{"Onions"},
		)
		src := &sampler.Scripted{Ints: []int{1, 2}}
		meal, err := NewComposer(c, src, 8).ComposeMeal()
		require.NoError(t, err)
		// Nutrient is extra (3), protein normal (1).
		assert.Equal(t, []string{"Tofu", "Chard", "Peas", "Spinach", "Rice"}, meal.Names())
		peas, _ := meal.Get("Peas")
		assert.InDelta(t, 8.0/3.0, peas.Serving, 1e-12)
	})

	t.Run("CollidingGroupsMerge", func(t *testing.T) {
		c, err := catalog.Build(catalog.Spec{Categories: []catalog.CategorySpec{
			{Name: "protein", Groups: []catalog.GroupSpec{
				{Options: []catalog.OptionSpec{{Name: "Beans", Serving: 1, Unit: "cup"}}},
				{Options: []catalog.OptionSpec{{Name: "Beans", Serving: 2, Unit: "cup"}, {Name: "Lentils", Serving: 1, Unit: "cup"}}},
			}},
			{Name: "nutrient", Groups: singles("Spinach", "Chard")},
			{Name: "carb", Groups: singles("Rice")},
			{Name: "flare", Groups: singles("Onions")},
		}}, 1)
		require.NoError(t, err)

		meal, err := NewComposer(c, &sampler.Scripted{}, 8).ComposeMeal()
		require.NoError(t, err)
		assert.Equal(t, 5, meal.Len())
		beans, _ := meal.Get("Beans")
		assert.Equal(t, 8.0, beans.Serving, "later resolution wins")
	})
}

func TestDrawCount(t *testing.T) {
	assert.Equal(t, 2, drawCount(catalog.Protein, true))
	assert.Equal(t, 1, drawCount(catalog.Protein, false))
	assert.Equal(t, 3, drawCount(catalog.Nutrient, true))
	assert.Equal(t, 2, drawCount(catalog.Nutrient, false))
}

func TestLedger(t *testing.T) {
	l := NewLedger()
	first := NewMeal(
		catalog.Ingredient{Name: "Tofu", Serving: 4},
		catalog.Ingredient{Name: "Rice", Serving: 8, Kind: catalog.Carb},
	)
	l.Record(first)

	assert.True(t, l.Admits(NewMeal(catalog.Ingredient{Name: "Tofu"}, catalog.Ingredient{Name: "Peas"})))
	assert.False(t, l.Admits(NewMeal(catalog.Ingredient{Name: "Tofu"}, catalog.Ingredient{Name: "Rice"})), "two reused ingredients")

	l.Record(NewMeal(catalog.Ingredient{Name: "Tofu", Serving: 2}))
	assert.Equal(t, 2, l.Count("Tofu"))
	assert.False(t, l.Admits(NewMeal(catalog.Ingredient{Name: "Tofu"})), "used twice already")
	assert.True(t, l.Admits(NewMeal(catalog.Ingredient{Name: "Rice"}, catalog.Ingredient{Name: "Peas"})))

	entries := l.Entries()
	require.Len(t, entries, 2)
	for _, e := range entries {
		if e.Ingredient.Name == "Tofu" {
			assert.Equal(t, 4.0, e.Ingredient.Serving, "first recorded serving is kept")
		}
	}
}

func TestPlanMeals(t *testing.T) {
	ctx := context.Background()

	t.Run("RetriesUntilAdmissible", func(t *testing.T) {
		c := buildCatalog(t,
			[]string{"Beans", "Lentils", "Tofu"},
			[]string{"Chard", "Kale", "Peas", "Spinach"},
			[]string{"Quinoa", "Rice"},
			[]string{"Onions"},
		)
		// Meal 1 and the first attempt at meal 2 take the first candidate
		// everywhere (8 int draws and 6 weighted draws each). The second
		// attempt skips flare and picks Tofu, Beans, Spinach, Peas, Rice.
		ints := make([]int, 16)
		ints = append(ints, 0, 2)
		floats := make([]float64, 12)
		floats = append(floats, 0.9, 0, 0.9, 0.9, 0.9)
		src := &sampler.Scripted{Ints: ints, Floats: floats}

		p, err := NewPlanner(c, src, DefaultOptions())
		require.NoError(t, err)
		plan, err := p.PlanMeals(ctx, 2)
		require.NoError(t, err)
		require.Len(t, plan.Meals, 2)

		assert.Equal(t, 1, plan.Meals[0].Tries)
		assert.Equal(t, []string{"Beans", "Lentils", "Chard", "Kale", "Quinoa", "Onions"}, plan.Meals[0].Meal.Names())
		assert.Equal(t, 2, plan.Meals[1].Tries)
		assert.Equal(t, []string{"Beans", "Tofu", "Peas", "Spinach", "Rice"}, plan.Meals[1].Meal.Names())

		assert.Equal(t, 2, plan.Ledger.Count("Beans"))
		assert.Equal(t, 1, plan.Ledger.Count("Onions"))
		assert.Equal(t, 6, plan.Month)
		assert.NotEmpty(t, plan.ID)
	})

	t.Run("ReuseBoundAcrossSeeds", func(t *testing.T) {
		c, err := catalog.Build(catalog.Default(), 10)
		require.NoError(t, err)

		for seed := uint64(1); seed <= 40; seed++ {
			p, err := NewPlanner(c, sampler.NewSeeded(seed), DefaultOptions())
			require.NoError(t, err)
			plan, err := p.PlanMeals(ctx, 4)
			require.NoError(t, err, "seed %d", seed)
			require.Len(t, plan.Meals, 4)

			replay := map[string]int{}
			for _, pm := range plan.Meals {
				reused := 0
				for _, name := range pm.Meal.Names() {
					switch replay[name] {
					case 0:
					case 1:
						reused++
					default:
						t.Errorf("seed %d meal %d reuses %s a third time", seed, pm.Number, name)
					}
				}
				assert.LessOrEqual(t, reused, 1, "seed %d meal %d", seed, pm.Number)
				assert.GreaterOrEqual(t, pm.Tries, 1)
				for _, name := range pm.Meal.Names() {
					replay[name]++
				}
			}
			for name, n := range replay {
				assert.Equal(t, n, plan.Ledger.Count(name), "seed %d %s", seed, name)
			}
		}
	})

	t.Run("SameSeedSamePlan", func(t *testing.T) {
		c, err := catalog.Build(catalog.Default(), 3)
		require.NoError(t, err)
		run := func() [][]string {
			p, err := NewPlanner(c, sampler.NewSeeded(42), DefaultOptions())
			require.NoError(t, err)
			plan, err := p.PlanMeals(ctx, 3)
			require.NoError(t, err)
			var out [][]string
			for _, pm := range plan.Meals {
				out = append(out, pm.Meal.Names())
			}
			return out
		}
		assert.Equal(t, run(), run())
	})

	t.Run("AttemptCap", func(t *testing.T) {
		opts := DefaultOptions()
		opts.MaxTries = 3
		p, err := NewPlanner(smallCatalog(t), &sampler.Scripted{}, opts)
		require.NoError(t, err)

		_, err = p.PlanMeals(ctx, 2)
		require.ErrorIs(t, err, ErrPlanningExhausted)
		var pErr *PlanningError
		require.ErrorAs(t, err, &pErr)
		assert.Equal(t, 2, pErr.Slot)
		assert.Equal(t, 3, pErr.Tries)
	})

	t.Run("InfeasibleWithoutCap", func(t *testing.T) {
		p, err := NewPlanner(smallCatalog(t), &sampler.Scripted{}, DefaultOptions())
		require.NoError(t, err)
		_, err = p.PlanMeals(ctx, 2)
		assert.ErrorIs(t, err, ErrInfeasible)
		_, err = p.PlanMeals(ctx, 3)
		assert.ErrorIs(t, err, ErrInfeasible)
	})

	t.Run("SingleMealFits", func(t *testing.T) {
		p, err := NewPlanner(smallCatalog(t), &sampler.Scripted{}, DefaultOptions())
		require.NoError(t, err)
		plan, err := p.PlanMeals(ctx, 1)
		require.NoError(t, err)
		require.Len(t, plan.Meals, 1)
		assert.Equal(t, 1, plan.Meals[0].Tries)
	})

	t.Run("Cancelled", func(t *testing.T) {
		c, err := catalog.Build(catalog.Default(), 3)
		require.NoError(t, err)
		p, err := NewPlanner(c, sampler.NewSeeded(1), DefaultOptions())
		require.NoError(t, err)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err = p.PlanMeals(cctx, 2)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("NegativeCount", func(t *testing.T) {
		p, err := NewPlanner(smallCatalog(t), &sampler.Scripted{}, DefaultOptions())
		require.NoError(t, err)
		_, err = p.PlanMeals(ctx, -1)
		assert.Error(t, err)
	})

	t.Run("ZeroMeals", func(t *testing.T) {
		p, err := NewPlanner(smallCatalog(t), &sampler.Scripted{}, DefaultOptions())
		require.NoError(t, err)
		plan, err := p.PlanMeals(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, plan.Meals)
		assert.Empty(t, plan.Ledger.Entries())
	})
}

func TestNewPlannerValidatesOptions(t *testing.T) {
	c := buildCatalog(t, []string{"Tofu"}, []string{"Peas"}, []string{"Rice"}, []string{"Leek"})
	_, err := NewPlanner(c, &sampler.Scripted{}, Options{MealsPerBatch: 0, PeoplePerMeal: 4})
	assert.Error(t, err)
	_, err = NewPlanner(c, &sampler.Scripted{}, Options{MealsPerBatch: 2, PeoplePerMeal: 4, MaxTries: -1})
	assert.Error(t, err)
}

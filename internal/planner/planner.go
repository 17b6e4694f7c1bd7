package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"seasonal-meal-planner/internal/catalog"
	"seasonal-meal-planner/internal/sampler"
)

var (
	// ErrPlanningExhausted means a slot used up its attempts without an admissible meal.
	ErrPlanningExhausted = errors.New("no admissible meal within the attempt limit")
	// ErrInfeasible means the catalog cannot host the requested number of meals
	// under the reuse rule, so an uncapped search would never finish.
	ErrInfeasible = errors.New("catalog too small for the requested meal count")
)

// PlanningError reports which slot gave up and after how many attempts.
type PlanningError struct {
	Slot  int
	Tries int
}

func (e *PlanningError) Error() string {
	return fmt.Sprintf("meal %d: %d attempts: %s", e.Slot, e.Tries, ErrPlanningExhausted)
}

func (e *PlanningError) Unwrap() error { return ErrPlanningExhausted }

// Options controls meal sizes and the retry bound.
type Options struct {
	MealsPerBatch int
	PeoplePerMeal int
	// MaxTries caps the attempts per meal. Zero means no cap.
	MaxTries int
}

// DefaultOptions mirrors the household the planner was written for.
func DefaultOptions() Options {
	return Options{MealsPerBatch: 2, PeoplePerMeal: 4}
}

// Servings is the number of portions each meal has to cover.
func (o Options) Servings() float64 {
	return float64(o.MealsPerBatch * o.PeoplePerMeal)
}

// PlannedMeal is an accepted meal and the attempts it took.
type PlannedMeal struct {
	Number int
	Meal   Meal
	Tries  int
}

// Plan is the outcome of one planning run.
type Plan struct {
	ID     string
	Month  int
	Meals  []PlannedMeal
	Ledger *Ledger
}

// Planner builds meal sets that respect the reuse rule.
type Planner struct {
	catalog  *catalog.Catalog
	composer *Composer
	opts     Options
}

// NewPlanner creates a Planner drawing from src.
func NewPlanner(c *catalog.Catalog, src sampler.Source, opts Options) (*Planner, error) {
	if opts.MealsPerBatch <= 0 || opts.PeoplePerMeal <= 0 {
		return nil, fmt.Errorf("meals per batch and people per meal must be positive, got %d and %d", opts.MealsPerBatch, opts.PeoplePerMeal)
	}
	if opts.MaxTries < 0 {
		return nil, fmt.Errorf("max tries must not be negative, got %d", opts.MaxTries)
	}
	return &Planner{
		catalog:  c,
		composer: NewComposer(c, src, opts.Servings()),
		opts:     opts,
	}, nil
}

// PlanMeals draws mealCount meals one slot at a time, retrying each slot until
// the candidate passes the ledger's reuse rule.
func (p *Planner) PlanMeals(ctx context.Context, mealCount int) (*Plan, error) {
	if mealCount < 0 {
		return nil, fmt.Errorf("meal count must not be negative, got %d", mealCount)
	}
	if p.opts.MaxTries == 0 {
		if err := checkFeasible(p.catalog, mealCount); err != nil {
			return nil, err
		}
	}

	plan := &Plan{
		ID:     uuid.NewString(),
		Month:  p.catalog.Month,
		Ledger: NewLedger(),
	}
	for slot := 1; slot <= mealCount; slot++ {
		meal, tries, err := p.fillSlot(ctx, plan.Ledger, slot)
		if err != nil {
			return nil, err
		}
		plan.Ledger.Record(meal)
		plan.Meals = append(plan.Meals, PlannedMeal{Number: slot, Meal: meal, Tries: tries})
	}
	return plan, nil
}

func (p *Planner) fillSlot(ctx context.Context, ledger *Ledger, slot int) (Meal, int, error) {
	for tries := 1; ; tries++ {
		if err := ctx.Err(); err != nil {
			return Meal{}, tries, fmt.Errorf("meal %d: %w", slot, err)
		}
		meal, err := p.composer.ComposeMeal()
		if err != nil {
			return Meal{}, tries, fmt.Errorf("meal %d: %w", slot, err)
		}
		if ledger.Admits(meal) {
			return meal, tries, nil
		}
		if p.opts.MaxTries > 0 && tries >= p.opts.MaxTries {
			return Meal{}, tries, &PlanningError{Slot: slot, Tries: tries}
		}
	}
}

// minMealSize is the fewest ingredients a meal can have when no two groups
// share an ingredient name: two of one role, at least one of the other
// (nutrients always bring two) and a carb.
const minMealSize = 5

// checkFeasible rejects meal counts that no sequence of draws could satisfy.
// Each ingredient can appear in at most two meals, every meal has a carb, and
// every meal after the first brings at most one reused ingredient.
func checkFeasible(c *catalog.Catalog, mealCount int) error {
	names := map[string]int{}
	carbs := map[string]bool{}
	for _, k := range catalog.Kinds {
		for _, g := range c.Category(k).Groups {
			if g.Weight <= 0 {
				continue
			}
			for _, o := range g.Options {
				names[o.Name]++
				if k == catalog.Carb {
					carbs[o.Name] = true
				}
			}
		}
	}

	if mealCount > 2*len(carbs) {
		return fmt.Errorf("%w: %d meals need a carb each but only %d carbs can be used twice", ErrInfeasible, mealCount, len(carbs))
	}

	for _, n := range names {
		if n > 1 {
			// Shared names can shrink a meal below minMealSize; the carb bound is all that holds.
			return nil
		}
	}
	if mealCount > 0 {
		need := minMealSize + (mealCount-1)*(minMealSize-1)
		if len(names) < need {
			return fmt.Errorf("%w: %d meals need at least %d distinct ingredients, catalog has %d", ErrInfeasible, mealCount, need, len(names))
		}
	}
	return nil
}

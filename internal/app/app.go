package app

import (
	"context"
	"fmt"
	"io"
	"log"

	"seasonal-meal-planner/internal/catalog"
	"seasonal-meal-planner/internal/config"
	"seasonal-meal-planner/internal/planner"
	"seasonal-meal-planner/internal/shopping"
)

// PlanNotifier delivers a finished plan somewhere besides stdout.
type PlanNotifier interface {
	SendPlan(plan *planner.Plan, list *shopping.ShoppingList) error
}

// App holds the application's dependencies.
type App struct {
	cfg         *config.Config
	catalog     *catalog.Catalog
	mealPlanner *planner.Planner
	notifier    PlanNotifier
	out         io.Writer
}

// NewApp creates and initializes a new App instance. notifier may be nil.
func NewApp(
	cfg *config.Config,
	cat *catalog.Catalog,
	mealPlanner *planner.Planner,
	notifier PlanNotifier,
	out io.Writer,
) *App {
	return &App{
		cfg:         cfg,
		catalog:     cat,
		mealPlanner: mealPlanner,
		notifier:    notifier,
		out:         out,
	}
}

// GenerateMealPlan plans the configured number of meals, prints the report
// and forwards it to the notifier when one is set.
func (a *App) GenerateMealPlan(ctx context.Context) error {
	log.Printf("Planning %d meals for month %d...", a.cfg.MealCount, a.catalog.Month)

	plan, err := a.mealPlanner.PlanMeals(ctx, a.cfg.MealCount)
	if err != nil {
		return fmt.Errorf("failed to generate plan: %w", err)
	}

	tries := 0
	for _, pm := range plan.Meals {
		tries += pm.Tries
	}
	log.Printf("Plan %s ready after %d attempts.", plan.ID, tries)

	list := shopping.FromPlan(plan)
	if err := WriteReport(a.out, plan, list); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if a.notifier != nil {
		if err := a.notifier.SendPlan(plan, list); err != nil {
			return fmt.Errorf("failed to deliver plan: %w", err)
		}
		log.Printf("Plan %s delivered.", plan.ID)
	}
	return nil
}

// PrintCatalog lists every group with its weight for the catalog's month.
func (a *App) PrintCatalog() error {
	return WriteCatalog(a.out, a.catalog)
}

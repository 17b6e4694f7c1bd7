package shopping

import (
	"slices"

	"seasonal-meal-planner/internal/catalog"
	"seasonal-meal-planner/internal/planner"
)

// BuildGroceryList scales each ledger entry's per-meal serving by the number
// of meals that used it and orders the result by category, then name.
func BuildGroceryList(ledger *planner.Ledger) []Item {
	entries := ledger.Entries()
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		total := e.Ingredient.Serving * float64(e.Count)
		items = append(items, Item{
			Ingredient: e.Ingredient.WithServing(total),
			Count:      e.Count,
		})
	}
	slices.SortFunc(items, func(a, b Item) int {
		switch {
		case catalog.Less(a.Ingredient, b.Ingredient):
			return -1
		case catalog.Less(b.Ingredient, a.Ingredient):
			return 1
		default:
			return 0
		}
	})
	return items
}

// FromPlan builds the shopping list for a finished plan.
func FromPlan(plan *planner.Plan) *ShoppingList {
	return &ShoppingList{
		PlanID: plan.ID,
		Items:  BuildGroceryList(plan.Ledger),
	}
}

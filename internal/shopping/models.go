package shopping

import "seasonal-meal-planner/internal/catalog"

// Item is one line of the grocery list. Ingredient.Serving holds the total
// quantity across every meal that uses it.
type Item struct {
	Ingredient catalog.Ingredient `json:"ingredient"`
	Count      int                `json:"meal_count"`
}

// ShoppingList is the consolidated grocery list for a plan.
type ShoppingList struct {
	PlanID string `json:"plan_id"`
	Items  []Item `json:"items"`
}

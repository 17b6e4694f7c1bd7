package planner

import (
	"slices"

	"seasonal-meal-planner/internal/catalog"
)

// Meal is a set of resolved ingredients keyed by name.
type Meal struct {
	items map[string]catalog.Ingredient
}

// NewMeal builds a meal from resolved ingredients. A later ingredient
// replaces an earlier one with the same name.
func NewMeal(items ...catalog.Ingredient) Meal {
	m := Meal{items: make(map[string]catalog.Ingredient, len(items))}
	for _, it := range items {
		m.items[it.Name] = it
	}
	return m
}

// Len returns the number of distinct ingredients.
func (m Meal) Len() int { return len(m.items) }

// Contains reports whether an ingredient with this name is in the meal.
func (m Meal) Contains(name string) bool {
	_, ok := m.items[name]
	return ok
}

// Get returns the resolved ingredient for name.
func (m Meal) Get(name string) (catalog.Ingredient, bool) {
	it, ok := m.items[name]
	return it, ok
}

// Names returns the ingredient names in display order.
func (m Meal) Names() []string {
	sorted := m.Sorted()
	names := make([]string, len(sorted))
	for i, it := range sorted {
		names[i] = it.Name
	}
	return names
}

// Sorted returns the ingredients ordered by category, then name.
func (m Meal) Sorted() []catalog.Ingredient {
	out := make([]catalog.Ingredient, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	slices.SortFunc(out, func(a, b catalog.Ingredient) int {
		switch {
		case catalog.Less(a, b):
			return -1
		case catalog.Less(b, a):
			return 1
		default:
			return 0
		}
	})
	return out
}

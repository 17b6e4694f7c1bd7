package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"seasonal-meal-planner/internal/catalog"
	"seasonal-meal-planner/internal/planner"
	"seasonal-meal-planner/internal/shopping"
)

// WriteReport prints every meal followed by the grocery list.
func WriteReport(w io.Writer, plan *planner.Plan, list *shopping.ShoppingList) error {
	bw := bufio.NewWriter(w)

	for _, pm := range plan.Meals {
		fmt.Fprintf(bw, "Meal %d (%d tries):\n", pm.Number, pm.Tries)
		for _, it := range pm.Meal.Sorted() {
			fmt.Fprintf(bw, "  %s: %s\n", it.Name, it.Quantity())
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "Grocery list:")
	for _, item := range list.Items {
		fmt.Fprintf(bw, "  %s %s", item.Ingredient.Quantity(), item.Ingredient.Name)
		if item.Count > 1 {
			fmt.Fprintf(bw, " (%d meals)", item.Count)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// WriteCatalog prints the season-adjusted weight of every group.
func WriteCatalog(w io.Writer, c *catalog.Catalog) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Catalog for month %d\n", c.Month)
	for _, k := range catalog.Kinds {
		cat := c.Category(k)
		fmt.Fprintf(bw, "\n%s (%d groups):\n", k, len(cat.Groups))
		for _, g := range cat.Groups {
			fmt.Fprintf(bw, "  %-32s %s\n", g.Label, strconv.FormatFloat(g.Weight, 'f', -1, 64))
		}
	}
	return bw.Flush()
}

package planner

import "seasonal-meal-planner/internal/catalog"

// LedgerEntry is the usage of one ingredient across accepted meals.
// Ingredient keeps the serving recorded the first time it was used.
type LedgerEntry struct {
	Ingredient catalog.Ingredient
	Count      int
}

// Ledger counts how many accepted meals used each ingredient. Counts only grow.
type Ledger struct {
	entries map[string]*LedgerEntry
	order   []string
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string]*LedgerEntry)}
}

// Record adds one use of every ingredient in the meal.
func (l *Ledger) Record(m Meal) {
	for _, it := range m.Sorted() {
		e, ok := l.entries[it.Name]
		if !ok {
			e = &LedgerEntry{Ingredient: it}
			l.entries[it.Name] = e
			l.order = append(l.order, it.Name)
		}
		e.Count++
	}
}

// Count returns how many meals used name.
func (l *Ledger) Count(name string) int {
	if e, ok := l.entries[name]; ok {
		return e.Count
	}
	return 0
}

// Entries returns a copy of every entry in first-use order.
func (l *Ledger) Entries() []LedgerEntry {
	out := make([]LedgerEntry, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, *l.entries[name])
	}
	return out
}

// Admits applies the reuse rule: at most one ingredient used by exactly one
// earlier meal, and nothing that has already been used twice.
func (l *Ledger) Admits(m Meal) bool {
	usedOnce := 0
	for name := range m.items {
		switch c := l.Count(name); {
		case c >= 2:
			return false
		case c == 1:
			usedOnce++
			if usedOnce > 1 {
				return false
			}
		}
	}
	return true
}

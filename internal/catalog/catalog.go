package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies one of the four ingredient roles. The numeric order is the
// display order: proteins first, flare last.
type Kind int

const (
	Protein Kind = iota
	Nutrient
	Carb
	Flare
)

// Kinds lists every category in display order.
var Kinds = []Kind{Protein, Nutrient, Carb, Flare}

func (k Kind) String() string {
	switch k {
	case Protein:
		return "protein"
	case Nutrient:
		return "nutrient"
	case Carb:
		return "carb"
	case Flare:
		return "flare"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a category name back to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// Ingredient is a concrete item that ends up on a plate and a shopping list.
// Two ingredients are the same ingredient when their names match.
type Ingredient struct {
	Name    string  `json:"name"`
	Serving float64 `json:"serving"`
	Unit    string  `json:"unit"`
	Kind    Kind    `json:"kind"`
}

// Equal reports whether both values name the same ingredient.
func (i Ingredient) Equal(other Ingredient) bool {
	return i.Name == other.Name
}

// WithServing returns a copy of the ingredient carrying a different quantity.
func (i Ingredient) WithServing(q float64) Ingredient {
	i.Serving = q
	return i
}

// Less orders ingredients by category, then by name.
func Less(a, b Ingredient) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.Name < b.Name
}

// Group is a set of interchangeable ingredients sharing one selection weight.
type Group struct {
	Label   string
	Options []Ingredient
	Weight  float64
}

// BelongsTo reports whether ing is one of the group's options.
func BelongsTo(ing Ingredient, g Group) bool {
	for _, opt := range g.Options {
		if opt.Equal(ing) {
			return true
		}
	}
	return false
}

// Category is the ordered list of groups for one Kind.
type Category struct {
	Kind   Kind
	Groups []Group
}

// Catalog holds the season-adjusted categories for one planning run.
// It is never modified after Build returns.
type Catalog struct {
	Month      int
	categories [4]Category
}

// Category returns the category for k.
func (c *Catalog) Category(k Kind) Category {
	return c.categories[k]
}

// KindOf finds the category an ingredient name is listed under.
func (c *Catalog) KindOf(name string) (Kind, bool) {
	for _, cat := range c.categories {
		for _, g := range cat.Groups {
			for _, opt := range g.Options {
				if opt.Name == name {
					return cat.Kind, true
				}
			}
		}
	}
	return 0, false
}

// ErrConfiguration is the error kind for a catalog that fails its integrity checks.
var ErrConfiguration = errors.New("invalid catalog configuration")

// ConfigurationError describes which part of the catalog is inconsistent.
type ConfigurationError struct {
	Category string
	Key      string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("catalog %s: %s", e.Category, e.Reason)
	}
	return fmt.Sprintf("catalog %s %q: %s", e.Category, e.Key, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// Build evaluates the preference tables for month and returns an immutable
// Catalog. Preference keys that do not name a group of the same category
// are rejected before anything else runs.
func Build(spec Spec, month int) (*Catalog, error) {
	if month < 1 || month > 12 {
		return nil, &ConfigurationError{Category: "month", Reason: fmt.Sprintf("month %d out of range 1-12", month)}
	}

	specs := map[Kind]CategorySpec{}
	for _, cs := range spec.Categories {
		kind, err := ParseKind(cs.Name)
		if err != nil {
			return nil, &ConfigurationError{Category: cs.Name, Reason: err.Error()}
		}
		if _, dup := specs[kind]; dup {
			return nil, &ConfigurationError{Category: cs.Name, Reason: "category declared twice"}
		}
		specs[kind] = cs
	}

	c := &Catalog{Month: month}
	for _, kind := range Kinds {
		cs, ok := specs[kind]
		if !ok {
			return nil, &ConfigurationError{Category: kind.String(), Reason: "category missing"}
		}
		cat, err := buildCategory(kind, cs, month)
		if err != nil {
			return nil, err
		}
		c.categories[kind] = cat
	}
	return c, nil
}

func buildCategory(kind Kind, cs CategorySpec, month int) (Category, error) {
	labels := make(map[string]bool, len(cs.Groups))
	for _, gs := range cs.Groups {
		label := gs.Label()
		if label == "" {
			return Category{}, &ConfigurationError{Category: kind.String(), Reason: "group without options"}
		}
		if labels[label] {
			return Category{}, &ConfigurationError{Category: kind.String(), Key: label, Reason: "group declared twice"}
		}
		labels[label] = true
	}

	for key := range cs.Preferences {
		if !labels[key] {
			return Category{}, &ConfigurationError{Category: kind.String(), Key: key, Reason: "preference does not match any group"}
		}
	}

	cat := Category{Kind: kind, Groups: make([]Group, 0, len(cs.Groups))}
	for _, gs := range cs.Groups {
		label := gs.Label()
		g := Group{Label: label, Weight: 1}
		if pref, ok := cs.Preferences[label]; ok {
			g.Weight = pref.At(month)
		}
		if g.Weight < 0 {
			return Category{}, &ConfigurationError{Category: kind.String(), Key: label, Reason: "negative weight"}
		}
		for _, opt := range gs.Options {
			if opt.Serving <= 0 {
				return Category{}, &ConfigurationError{Category: kind.String(), Key: opt.Name, Reason: "serving must be positive"}
			}
			g.Options = append(g.Options, Ingredient{
				Name:    opt.Name,
				Serving: opt.Serving,
				Unit:    opt.Unit,
				Kind:    kind,
			})
		}
		cat.Groups = append(cat.Groups, g)
	}
	return cat, nil
}

// Quantity renders the serving as "<amount> <unit>" with at most two decimals.
func (i Ingredient) Quantity() string {
	amount := strconv.FormatFloat(math.Round(i.Serving*100)/100, 'f', -1, 64)
	if i.Unit == "" {
		return amount
	}
	return amount + " " + i.Unit
}

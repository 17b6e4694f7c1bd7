package catalog

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Season month sets. Overlaps are intentional: March is both winter and
// spring, August and September are both summer and fall.
var (
	Winter = []int{12, 1, 2, 3}
	Spring = []int{3, 4, 5}
	Summer = []int{6, 7, 8, 9}
	Fall   = []int{8, 9, 10, 11}
)

// Union merges month sets.
func Union(sets ...[]int) []int {
	var out []int
	for _, s := range sets {
		for _, m := range s {
			if !slices.Contains(out, m) {
				out = append(out, m)
			}
		}
	}
	return out
}

// Intersect keeps the months present in every set.
func Intersect(first []int, rest ...[]int) []int {
	var out []int
	for _, m := range first {
		keep := true
		for _, s := range rest {
			if !slices.Contains(s, m) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, m)
		}
	}
	return out
}

// SeasonalWeight overrides a group's weight during the listed months.
type SeasonalWeight struct {
	Months []int   `yaml:"months"`
	Weight float64 `yaml:"weight"`
}

// Preference is the selection weight of a group, optionally varying by month.
type Preference struct {
	Default  float64          `yaml:"default"`
	Seasonal []SeasonalWeight `yaml:"seasonal,omitempty"`
}

// Fixed is a preference that does not change with the season.
func Fixed(w float64) Preference {
	return Preference{Default: w}
}

// InSeason is a preference of w during months and otherwise.
func InSeason(months []int, w, otherwise float64) Preference {
	return Preference{Default: otherwise, Seasonal: []SeasonalWeight{{Months: months, Weight: w}}}
}

// At evaluates the preference for month. The first matching seasonal rule
// wins; an unset default counts as 1.
func (p Preference) At(month int) float64 {
	for _, s := range p.Seasonal {
		if slices.Contains(s.Months, month) {
			return s.Weight
		}
	}
	if p.Default == 0 {
		return 1
	}
	return p.Default
}

// OptionSpec is one concrete ingredient as written in a catalog file.
// Serving is the per-person base quantity.
type OptionSpec struct {
	Name    string  `yaml:"name"`
	Serving float64 `yaml:"serving"`
	Unit    string  `yaml:"unit"`
}

// GroupSpec lists interchangeable options.
type GroupSpec struct {
	Options []OptionSpec `yaml:"options"`
}

// Label is the key preference tables use for the group, e.g. "Walnuts/Peanuts".
func (g GroupSpec) Label() string {
	names := make([]string, 0, len(g.Options))
	for _, o := range g.Options {
		names = append(names, o.Name)
	}
	return strings.Join(names, "/")
}

// CategorySpec is a category's groups plus its preference table.
type CategorySpec struct {
	Name        string                `yaml:"name"`
	Groups      []GroupSpec           `yaml:"groups"`
	Preferences map[string]Preference `yaml:"preferences,omitempty"`
}

// Spec is the static catalog configuration, before any month is applied.
type Spec struct {
	Categories []CategorySpec `yaml:"categories"`
}

// LoadSpec reads a catalog definition from a YAML file.
func LoadSpec(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return ParseSpec(data)
}

// ParseSpec decodes a YAML catalog definition.
func ParseSpec(data []byte) (Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(spec.Categories) == 0 {
		return Spec{}, &ConfigurationError{Category: "catalog", Reason: "no categories defined"}
	}
	return spec, nil
}

package sampler

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"seasonal-meal-planner/internal/catalog"
)

// Source is the randomness the sampler consumes. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// NewSeeded returns a reproducible Source.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// ErrSamplingImpossible is returned when a draw cannot be satisfied.
var ErrSamplingImpossible = errors.New("sampling impossible")

// SamplingError carries the category and counts of a failed draw.
type SamplingError struct {
	Category  string
	Requested int
	Available int
	Reason    string
}

func (e *SamplingError) Error() string {
	return fmt.Sprintf("cannot draw %d from %s (%d groups): %s", e.Requested, e.Category, e.Available, e.Reason)
}

func (e *SamplingError) Unwrap() error { return ErrSamplingImpossible }

// Selection is a drawn group with its share of the meal's servings.
type Selection struct {
	Group      catalog.Group
	Multiplier float64
}

// Resolve picks one of the group's options uniformly and scales its base
// serving by the selection's multiplier.
func (s Selection) Resolve(src Source) catalog.Ingredient {
	opt := s.Group.Options[src.IntN(len(s.Group.Options))]
	return opt.WithServing(opt.Serving * s.Multiplier)
}

// WeightedChoice returns an index with probability proportional to its
// weight. It returns -1 when the weights sum to zero or less.
func WeightedChoice(src Source, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}

	r := src.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return i
		}
	}
	// Float rounding can leave r == total; fall back to the last weighted entry.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}

// Sample draws n distinct groups from cat without replacement. Each pick is
// weighted by the remaining groups' weights, and each resulting Selection
// gets servings/n as its multiplier.
func Sample(src Source, cat catalog.Category, n int, servings float64) ([]Selection, error) {
	if n < 0 || n > len(cat.Groups) {
		return nil, &SamplingError{
			Category:  cat.Kind.String(),
			Requested: n,
			Available: len(cat.Groups),
			Reason:    "not enough distinct groups",
		}
	}
	if n == 0 {
		return nil, nil
	}

	pool := make([]catalog.Group, len(cat.Groups))
	copy(pool, cat.Groups)
	weights := make([]float64, len(pool))
	for i, g := range pool {
		weights[i] = g.Weight
	}

	multiplier := servings / float64(n)
	picks := make([]Selection, 0, n)
	for range n {
		idx := WeightedChoice(src, weights)
		if idx < 0 {
			return nil, &SamplingError{
				Category:  cat.Kind.String(),
				Requested: n,
				Available: len(cat.Groups),
				Reason:    "remaining weight is not positive",
			}
		}
		picks = append(picks, Selection{Group: pool[idx], Multiplier: multiplier})
		pool = append(pool[:idx], pool[idx+1:]...)
		weights = append(weights[:idx], weights[idx+1:]...)
	}
	return picks, nil
}

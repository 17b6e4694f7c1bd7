package sampler

// Scripted replays fixed values. Once a queue runs dry it keeps returning
// zero, which makes WeightedChoice pick the first weighted entry and IntN
// pick the first option.
type Scripted struct {
	Floats []float64
	Ints   []int

	FloatCalls int
	IntCalls   int
}

func (s *Scripted) Float64() float64 {
	s.FloatCalls++
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// IntN returns the next scripted value, clamped into [0, n).
func (s *Scripted) IntN(n int) int {
	s.IntCalls++
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

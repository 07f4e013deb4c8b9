package testutil

// ScriptedRNG — детерминированный источник случайности для тестов.
// Float64 returns Floats in order, then Fallback once the script runs out.
// IntN does the same with Ints (clamped into [0, n)).
type ScriptedRNG struct {
	Floats   []float64
	Ints     []int
	Fallback float64

	FloatCalls int
	IntCalls   int
}

// NeverRNG returns a source whose every percentage roll fails (0.999…).
func NeverRNG() *ScriptedRNG {
	return &ScriptedRNG{Fallback: 0.9999}
}

// AlwaysRNG returns a source whose every percentage roll succeeds (0.0).
func AlwaysRNG() *ScriptedRNG {
	return &ScriptedRNG{Fallback: 0}
}

// Float64 implements rng.Source.
func (s *ScriptedRNG) Float64() float64 {
	s.FloatCalls++
	if len(s.Floats) == 0 {
		return s.Fallback
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// IntN implements rng.Source.
func (s *ScriptedRNG) IntN(n int) int {
	s.IntCalls++
	if n <= 0 {
		return 0
	}
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

package engine

import "github.com/samber/lo"

// Selection is the bounded integer the user is currently adjusting.
type Selection struct {
	Value int
	Min   int
	Max   int
}

// Step moves the value by delta, clamped to [Min, Max].
func (s *Selection) Step(delta int) {
	s.Value = lo.Clamp(s.Value+delta, s.Min, s.Max)
}

// Contains reports whether v lies within the bounds.
func (s Selection) Contains(v int) bool {
	return v >= s.Min && v <= s.Max
}

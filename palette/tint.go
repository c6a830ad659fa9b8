package palette

import "fmt"

// Channel identifies one RGB channel of a tint.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Next rotates r -> g -> b -> r.
func (c Channel) Next() Channel {
	return (c + 1) % 3
}

// Prev rotates r -> b -> g -> r.
func (c Channel) Prev() Channel {
	return (c + 2) % 3
}

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// Tint holds a percentage-like bias for each RGB channel.
// Levels are not bounded here; the wizard caps increases at 255 and leaves decreases unbounded.
type Tint struct {
	R, G, B float64
}

// Level returns the level of a single channel.
func (t Tint) Level(c Channel) float64 {
	switch c {
	case Green:
		return t.G
	case Blue:
		return t.B
	default:
		return t.R
	}
}

// WithLevel returns a copy of the tint with one channel replaced.
func (t Tint) WithLevel(c Channel, level float64) Tint {
	switch c {
	case Green:
		t.G = level
	case Blue:
		t.B = level
	default:
		t.R = level
	}
	return t
}

// Ratio returns the channel level as a blend ratio (level / 100).
func (t Tint) Ratio(c Channel) float64 {
	return t.Level(c) / 100
}

// IsZero reports whether the tint leaves colors unchanged.
func (t Tint) IsZero() bool {
	return t == Tint{}
}

package palette

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// HueStyle selects how hues are spread around the color wheel.
type HueStyle int

const (
	// Linear spreads hues at equal distances.
	Linear HueStyle = iota
	// Radial follows a quarter unit circle, crowding hues near the start of the wheel.
	Radial
)

var hueStyleNames = map[HueStyle]string{
	Linear: "linear",
	Radial: "radial",
}

// HueStyles lists every hue style in selection order.
func HueStyles() []HueStyle {
	return []HueStyle{Linear, Radial}
}

func (s HueStyle) String() string {
	if name, ok := hueStyleNames[s]; ok {
		return name
	}
	return "hue-style(" + strconv.Itoa(int(s)) + ")"
}

// Label returns the upper-case display name.
func (s HueStyle) Label() string {
	return label(s.String())
}

// RenderStyle selects how the raw grid is finalized before export.
type RenderStyle int

const (
	// Basic leaves the raw colors untouched.
	Basic RenderStyle = iota
	// PairwiseGradient blends each swatch with the next hue column, favoring the swatch itself more on lighter rows.
	PairwiseGradient
	// InversePairwiseGradient mirrors PairwiseGradient, favoring the neighbor more on lighter rows.
	InversePairwiseGradient
)

var renderStyleNames = map[RenderStyle]string{
	Basic:                   "basic",
	PairwiseGradient:        "pairwise-gradient",
	InversePairwiseGradient: "inverse-pairwise-gradient",
}

// RenderStyles lists every render style in selection order.
func RenderStyles() []RenderStyle {
	return []RenderStyle{Basic, PairwiseGradient, InversePairwiseGradient}
}

func (s RenderStyle) String() string {
	if name, ok := renderStyleNames[s]; ok {
		return name
	}
	return "render-style(" + strconv.Itoa(int(s)) + ")"
}

// Label returns the upper-case display name.
func (s RenderStyle) Label() string {
	return label(s.String())
}

func label(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// ParseHueStyle resolves a hue style from its index, its name, or the closest fuzzy match of its name.
func ParseHueStyle(s string) (HueStyle, error) {
	return parseStyle(s, HueStyles(), "hue style")
}

// ParseRenderStyle resolves a render style from its index, its name, or the closest fuzzy match of its name.
func ParseRenderStyle(s string) (RenderStyle, error) {
	return parseStyle(s, RenderStyles(), "render style")
}

func parseStyle[T fmt.Stringer](s string, options []T, kind string) (T, error) {
	var zero T

	query := strings.TrimSpace(strings.ToLower(s))
	if query == "" {
		return zero, fmt.Errorf("empty %s", kind)
	}

	if idx, err := strconv.Atoi(query); err == nil {
		if idx < 0 || idx >= len(options) {
			return zero, fmt.Errorf("%s index %d out of range [0,%d]", kind, idx, len(options)-1)
		}
		return options[idx], nil
	}

	names := lo.Map(options, func(o T, _ int) string { return o.String() })
	query = strings.ReplaceAll(query, "_", "-")
	if i := lo.IndexOf(names, query); i >= 0 {
		return options[i], nil
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) == 0 {
		return zero, fmt.Errorf("unknown %s %q, available: %s", kind, s, strings.Join(names, ", "))
	}

	sort.Sort(ranks)
	return options[ranks[0].OriginalIndex], nil
}

package export

import (
	"encoding/json"
	"fmt"

	"github.com/swatch-cli/swatch/engine"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/util"
)

// Tint is the exported form of a palette.Tint.
type Tint struct {
	R float64 `json:"r" jsonschema:"description=Red tint level"`
	G float64 `json:"g" jsonschema:"description=Green tint level"`
	B float64 `json:"b" jsonschema:"description=Blue tint level"`
}

// Document describes a finished palette and the answers that produced it.
type Document struct {
	Image       string     `json:"image,omitempty" jsonschema:"description=Path of the exported PNG"`
	HueStyle    string     `json:"hue_style" jsonschema:"enum=linear,enum=radial"`
	HueOffset   float64    `json:"hue_offset" jsonschema:"description=Offset added to every hue"`
	Hues        []float64  `json:"hues" jsonschema:"description=Hues as fractions of the color wheel,minItems=1,maxItems=28"`
	ValueIDs    []float64  `json:"value_ids" jsonschema:"description=0 is black; 1 is the pure hue; 2 is white,minItems=3,maxItems=8"`
	Saturation  float64    `json:"saturation" jsonschema:"minimum=0.1,maximum=1"`
	Brightness  float64    `json:"brightness" jsonschema:"minimum=0.1,maximum=1"`
	Tint        Tint       `json:"tint"`
	RenderStyle string     `json:"render_style" jsonschema:"enum=basic,enum=pairwise-gradient,enum=inverse-pairwise-gradient"`
	Grid        [][]string `json:"grid" jsonschema:"description=#rrggbb colors indexed [value][hue]"`
}

// NewDocument describes a finished run.
func NewDocument(s engine.Snapshot) *Document {
	return &Document{
		HueStyle:    s.HueStyle.String(),
		HueOffset:   s.HueOffset,
		Hues:        s.Hues,
		ValueIDs:    s.ValueIDs,
		Saturation:  s.Saturation,
		Brightness:  s.Brightness,
		Tint:        Tint{R: s.Tint.R, G: s.Tint.G, B: s.Tint.B},
		RenderStyle: s.RenderStyle.String(),
		Grid:        s.Final.Hex(),
	}
}

// WriteJSON writes the document next to the image, swapping its extension for .json.
func (d *Document) WriteJSON(imagePath string) (string, error) {
	path := util.ReplaceExt(imagePath, ".json")

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", err
	}

	f, err := filesystem.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

package history

import (
	"fmt"
	"time"
)

// Record describes one exported palette file.
type Record struct {
	Path        string    `json:"path"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Hues        int       `json:"hues"`
	Values      int       `json:"values"`
	HueStyle    string    `json:"hue_style"`
	RenderStyle string    `json:"render_style"`
	Size        int64     `json:"size"`
	ExportedAt  time.Time `json:"exported_at"`
}

func (r *Record) String() string {
	return fmt.Sprintf("%s (%dx%d, %s, %s)", r.Path, r.Width, r.Height, r.HueStyle, r.RenderStyle)
}

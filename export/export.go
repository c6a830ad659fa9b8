package export

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/engine"
	"github.com/swatch-cli/swatch/history"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/log"
)

// ErrNotDone is returned when a run is exported before its final stage.
var ErrNotDone = errors.New("palette is not finished")

// Options control a single export.
type Options struct {
	Path       string
	Resolution int
	JSON       bool
}

// DefaultOptions reads the export settings from config.
func DefaultOptions() Options {
	resolution := viper.GetInt(key.ExportResolution)
	if resolution < 1 {
		resolution = DefaultResolution
	}

	return Options{
		Path:       Resolve(),
		Resolution: resolution,
		JSON:       viper.GetBool(key.ExportJSON),
	}
}

// Result reports what was written.
type Result struct {
	Path     string
	JSONPath string
	Width    int
	Height   int
	Size     int64
	Document *Document
}

// Run exports the final grid of a finished run and records it in the history.
func Run(s engine.Snapshot, options Options) (*Result, error) {
	if s.Stage != engine.Done || s.Final.Empty() {
		return nil, ErrNotDone
	}

	size, err := PNG(s.Final, options.Path, options.Resolution)
	if err != nil {
		log.Errorf("export failed: %v", err)
		return nil, err
	}

	result := &Result{
		Path:     options.Path,
		Width:    s.Final.Cols() * options.Resolution,
		Height:   s.Final.Rows() * options.Resolution,
		Size:     size,
		Document: NewDocument(s),
	}
	result.Document.Image = options.Path

	if options.JSON {
		jsonPath, err := result.Document.WriteJSON(options.Path)
		if err != nil {
			log.Errorf("export document failed: %v", err)
			return result, err
		}
		result.JSONPath = jsonPath
	}

	log.WithFields(log.Fields{
		"path":   result.Path,
		"width":  result.Width,
		"height": result.Height,
		"style":  s.RenderStyle.String(),
	}).Info("palette exported")

	if viper.GetBool(key.HistorySaveOnExport) {
		if err := history.Save(&history.Record{
			Path:        result.Path,
			Width:       result.Width,
			Height:      result.Height,
			Hues:        s.Final.Cols(),
			Values:      s.Final.Rows(),
			HueStyle:    s.HueStyle.String(),
			RenderStyle: s.RenderStyle.String(),
			Size:        size,
			ExportedAt:  time.Now(),
		}); err != nil {
			log.Warnf("history not saved: %v", err)
		}
	}

	return result, nil
}

// ExitCode is the process status for an export outcome: failures only count when export.strict is set.
func ExitCode(err error) int {
	if err != nil && viper.GetBool(key.ExportStrict) {
		return 1
	}
	return 0
}

// Describe renders a one-line summary of a result.
func (r *Result) Describe() string {
	if r.JSONPath != "" {
		return fmt.Sprintf("%s (%dx%d) and %s", r.Path, r.Width, r.Height, r.JSONPath)
	}
	return fmt.Sprintf("%s (%dx%d)", r.Path, r.Width, r.Height)
}

// Outcome is how an interactive run ended.
type Outcome struct {
	// Terminated is set when the user quit before the palette was finished.
	Terminated bool
	Result     *Result
	Err        error
}

// ExitCode applies the export.strict policy to the outcome.
func (o *Outcome) ExitCode() int {
	if o == nil || o.Terminated {
		return 0
	}
	return ExitCode(o.Err)
}

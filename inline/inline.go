// Package inline derives and exports a palette without prompting, for scripts.
package inline

import (
	"fmt"
	"io"
	"os"

	"github.com/swatch-cli/swatch/engine"
	"github.com/swatch-cli/swatch/export"
	"github.com/swatch-cli/swatch/log"
)

func Run(options *Options) (*export.Result, error) {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	m, err := engine.Run(options.Params, options.Engine...)
	if err != nil {
		return nil, fmt.Errorf("derive palette: %w", err)
	}

	log.Infof("inline: %s palette with %d hues and %d values", options.Params.HueStyle, options.Params.Hues, options.Params.Values)

	result, err := export.Run(m.Snapshot(), options.Export)
	if err != nil {
		return result, err
	}

	if options.Json {
		return result, writeJson(options.Out, result)
	}

	_, err = fmt.Fprintln(options.Out, result.Path)
	return result, err
}

func writeJson(out io.Writer, result *export.Result) error {
	data, err := asJson(result)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

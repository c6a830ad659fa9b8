package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/engine"
	"github.com/swatch-cli/swatch/export"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/palette"
)

func engineOptions() []engine.Option {
	if viper.GetBool(key.PalettePerChannelTint) {
		return []engine.Option{engine.WithBlend(palette.PerChannel)}
	}
	return nil
}

// exportOptions reads the export settings, letting --output and --json on cmd take precedence.
func exportOptions(cmd *cobra.Command) export.Options {
	options := export.DefaultOptions()

	if flag := cmd.Flags().Lookup("output"); flag != nil && flag.Changed {
		options.Path = flag.Value.String()
	}
	if flag := cmd.Flags().Lookup("json"); flag != nil && flag.Changed {
		options.JSON = flag.Value.String() == "true"
	}

	return options
}

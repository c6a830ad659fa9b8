package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/swatch-cli/swatch/engine"
	"github.com/swatch-cli/swatch/export"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/inline"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/palette"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	defaults := engine.DefaultParams()

	inlineCmd.Flags().String("hue-style", defaults.HueStyle.String(), "How hues are spread: linear or radial")
	inlineCmd.Flags().Int("hues", defaults.Hues, "Number of hues, 1 to 28")
	inlineCmd.Flags().Int("values", defaults.Values, "Number of values from black to white, 3 to 8")
	inlineCmd.Flags().Int("saturation", defaults.Saturation, "Saturation in tenths, 1 to 10")
	inlineCmd.Flags().Int("brightness", defaults.Brightness, "Brightness in tenths, 1 to 10")
	inlineCmd.Flags().String("tint", "0,0,0", "Red, green and blue tint levels, multiples of 5")
	inlineCmd.Flags().String("render-style", defaults.RenderStyle.String(), "basic, pairwise-gradient or inverse-pairwise-gradient")
	inlineCmd.Flags().Int("offset-steps", 0, "Shift every hue by this many 0.025 steps")
	inlineCmd.Flags().BoolP("json", "j", false, "Print the palette as JSON instead of the exported path")
	inlineCmd.Flags().StringP("output", "o", "", "Path of the exported PNG")

	styleCompletion := func(names []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return names, cobra.ShellCompDirectiveNoFileComp
		}
	}
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("hue-style", styleCompletion(
		lo.Map(palette.HueStyles(), func(s palette.HueStyle, _ int) string { return s.String() }),
	)))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("render-style", styleCompletion(
		lo.Map(palette.RenderStyles(), func(s palette.RenderStyle, _ int) string { return s.String() }),
	)))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Derive and export a palette without prompts",
	Long: `Answer every wizard stage with flags and export the result.

Style names may be abbreviated, e.g. "rad" for radial or "inv" for inverse-pairwise-gradient.
Styles can also be given by their index.`,
	Example: "  swatch inline --hue-style radial --hues 12 --values 5 --tint 10,0,-5 --render-style pairwise -o palette.png",
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		params, err := inline.ParseParams(
			lo.Must(flags.GetString("hue-style")),
			lo.Must(flags.GetInt("hues")),
			lo.Must(flags.GetInt("values")),
			lo.Must(flags.GetInt("saturation")),
			lo.Must(flags.GetInt("brightness")),
			lo.Must(flags.GetString("tint")),
			lo.Must(flags.GetString("render-style")),
			lo.Must(flags.GetInt("offset-steps")),
		)
		handleErr(err)

		exportOpts := export.DefaultOptions()
		if output := lo.Must(flags.GetString("output")); output != "" {
			exportOpts.Path = output
		}

		options := &inline.Options{
			Out:    os.Stdout,
			Params: params,
			Engine: engineOptions(),
			Export: exportOpts,
			Json:   lo.Must(flags.GetBool("json")),
		}

		result, err := inline.Run(options)
		if err != nil {
			log.Error(err)
			_, _ = fmt.Fprintf(os.Stderr, "%s Export failed: %s\n", icon.Get(icon.Fail), err)
		}
		finish(&export.Outcome{Result: result, Err: err}, false)
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().BoolP("document", "d", false, "Schema of the JSON file written next to the PNG")
	inlineSchemaCmd.Flags().StringP("output", "o", "", "Write the schema to a file")
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		var target any = &inline.Output{}
		if lo.Must(cmd.Flags().GetBool("document")) {
			target = &export.Document{}
		}

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			f, err := filesystem.Create(output)
			handleErr(err)
			defer f.Close()
			handleErr(json.NewEncoder(f).Encode(inline.Schema(target)))
			return
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(inline.Schema(target)))
	},
}

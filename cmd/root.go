// Package cmd implements the swatch command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/export"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/open"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/tui"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Remember exported palettes")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnExport, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.PersistentFlags().IntP("resolution", "r", export.DefaultResolution, "Side length in pixels of one exported swatch")
	lo.Must0(viper.BindPFlag(key.ExportResolution, rootCmd.PersistentFlags().Lookup("resolution")))

	rootCmd.PersistentFlags().Bool("per-channel-tint", false, "Weight each channel by its own tint ratio")
	lo.Must0(viper.BindPFlag(key.PalettePerChannelTint, rootCmd.PersistentFlags().Lookup("per-channel-tint")))

	rootCmd.Flags().StringP("output", "o", "", "Path of the exported PNG")
	lo.Must0(viper.BindPFlag(key.ExportPath, rootCmd.Flags().Lookup("output")))

	rootCmd.Flags().BoolP("json", "j", false, "Also write a JSON description next to the PNG")
	lo.Must0(viper.BindPFlag(key.ExportJSON, rootCmd.Flags().Lookup("json")))

	rootCmd.PersistentFlags().Bool("open", false, "Open the exported PNG with the system image viewer")
	lo.Must0(viper.BindPFlag(key.ExportOpen, rootCmd.PersistentFlags().Lookup("open")))
}

var rootCmd = &cobra.Command{
	Use:   constant.Swatch,
	Short: "Derive a color palette step by step and export it as a PNG",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Orange).Render("    - Derive a color palette step by step and export it as a PNG"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Export: export.DefaultOptions(),
			Engine: engineOptions(),
		}
		outcome, err := tui.Run(&options)
		handleErr(err)
		finish(outcome, true)
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// finish reports how a wizard ended and exits with the export.strict status.
// Front-ends that already printed the outcome pass report as false.
func finish(outcome *export.Outcome, report bool) {
	if report && !outcome.Terminated {
		switch {
		case outcome.Err != nil:
			_, _ = fmt.Fprintf(os.Stderr, "%s Export failed: %s\n", icon.Get(icon.Fail), outcome.Err)
		case outcome.Result != nil:
			fmt.Printf("%s Palette exported to %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), outcome.Result.Describe())
		}
	}

	if outcome.Result != nil && viper.GetBool(key.ExportOpen) {
		if err := open.Start(outcome.Result.Path); err != nil {
			log.Warnf("open %s: %v", outcome.Result.Path, err)
		}
	}

	if code := outcome.ExitCode(); code != 0 {
		os.Exit(code)
	}
}

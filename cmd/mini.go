package cmd

import (
	"github.com/spf13/cobra"
	"github.com/swatch-cli/swatch/mini"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().StringP("output", "o", "", "Path of the exported PNG")
	miniCmd.Flags().BoolP("json", "j", false, "Also write a JSON description next to the PNG")
}

var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Answer the wizard with line prompts",
	Long:  `Run the same wizard as a sequence of prompts, for terminals where the full screen interface is unavailable.`,
	Run: func(cmd *cobra.Command, args []string) {
		options := mini.Options{
			Export: exportOptions(cmd),
			Engine: engineOptions(),
		}

		outcome, err := mini.Run(&options)
		handleErr(err)
		finish(outcome, false)
	},
}

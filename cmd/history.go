package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/history"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/open"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/util"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("clear", "c", false, "Forget every exported palette")
	historyCmd.Flags().BoolP("prune", "p", false, "Forget palettes whose file no longer exists")
	historyCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	historyCmd.Flags().BoolP("open", "o", false, "Open the most recent matching palette")
	historyCmd.MarkFlagsMutuallyExclusive("clear", "prune", "json", "open")

	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history [filter]",
	Short: "List exported palettes",
	Long:  `List exported palettes, most recent first. The optional filter is fuzzily matched against the file path.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(history.Clear())
			cmd.Printf("%s History cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		var filter string
		if len(args) > 0 {
			filter = args[0]
		}

		records, err := history.Find(filter)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("prune")) {
			var pruned int
			for _, r := range records {
				if exists, _ := filesystem.API().Exists(r.Path); !exists {
					handleErr(history.Remove(r.Path))
					pruned++
				}
			}
			cmd.Printf("%s Forgot %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), util.Quantify(pruned, "palette", "palettes"))
			return
		}

		if lo.Must(cmd.Flags().GetBool("open")) {
			if len(records) == 0 {
				handleErr(fmt.Errorf("no palette matches %q", filter))
			}
			handleErr(open.Start(records[0].Path))
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Println(style.Faint("No palettes exported yet"))
			return
		}

		for _, r := range records {
			cmd.Printf("%s %s\n", icon.Get(icon.Palette), style.Bold(r.Path))
			cmd.Println(style.Faint(fmt.Sprintf(
				"  %dx%d, %s, %s hue style, %s render style, %s",
				r.Width,
				r.Height,
				humanize.Bytes(uint64(r.Size)),
				r.HueStyle,
				r.RenderStyle,
				humanize.Time(r.ExportedAt),
			)))
		}
	},
}

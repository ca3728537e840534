package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/killallgit/chatlist/pkg/config"
	"github.com/killallgit/chatlist/pkg/listlayout"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate FILE",
	Short: "Replay a layout script through the list layout",
	Long: `Run the batches of a YAML layout script through the incremental list
layout and print the row geometry and scroll position after each one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulate(cmd.OutOrStdout(), args[0], config.Get())
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(w io.Writer, path string, cfg *config.Config) error {
	script, err := listlayout.LoadScript(path, layoutConfig(cfg))
	if err != nil {
		return err
	}

	for _, snap := range script.Run() {
		fmt.Fprintf(w, "== %s: %s rows, content %s, offset %s\n",
			snap.Name,
			humanize.Comma(int64(len(snap.Items))),
			formatFloat(snap.ContentHeight),
			formatFloat(snap.Viewport.ContentOffset))

		states := transitionStates(snap.Result)
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"#", "ID", "Offset", "Height", "MaxY", "Transition"})
		for i, item := range snap.Items {
			table.Append([]string{
				strconv.Itoa(i),
				item.ID.String()[:8],
				formatFloat(item.Offset),
				formatFloat(item.Height),
				formatFloat(item.MaxY()),
				states[i],
			})
		}
		table.Render()

		for _, attr := range snap.Result.Disappearing {
			fmt.Fprintf(w, "removed row %d faded out at offset %s\n", attr.Index, formatFloat(attr.Offset))
		}
	}
	return nil
}

func transitionStates(result listlayout.BatchResult) map[int]string {
	states := make(map[int]string)
	for _, attr := range result.Appearing {
		states[attr.Index] = "appear"
	}
	for _, fade := range result.Crossfades {
		states[fade.To.Index] = "crossfade"
	}
	return states
}

func formatFloat(f float64) string {
	return humanize.Ftoa(f)
}

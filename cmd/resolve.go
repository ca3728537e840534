package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/killallgit/chatlist/pkg/chat"
	"github.com/killallgit/chatlist/pkg/config"
	"github.com/killallgit/chatlist/pkg/layoutopts"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve FILE",
	Short: "Print the layout options of every message in a transcript",
	Long: `Load a YAML transcript and print, newest message first, whether each
message closes its run and the template identifier of its layout options.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolve(cmd.OutOrStdout(), args[0], config.Get())
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(w io.Writer, path string, cfg *config.Config) error {
	transcript, err := chat.LoadTranscript(path)
	if err != nil {
		return err
	}

	resolver := layoutopts.NewResolver(resolverConfig(cfg))
	messages := transcript.Messages

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "ID", "Author", "Type", "Last", "Options"})
	table.SetAutoWrapText(false)
	for i := 0; i < messages.Len(); i++ {
		m := messages.At(i)
		options := resolver.OptionsForMessage(i, transcript.Channel, messages)
		table.Append([]string{
			strconv.Itoa(i),
			m.ID,
			m.AuthorName,
			string(m.Type),
			strconv.FormatBool(resolver.IsMessageLastInSequence(i, messages)),
			options.Identifier(),
		})
	}
	table.Render()

	fmt.Fprintf(w, "%d messages in %s\n", messages.Len(), transcript.Channel.ID)
	return nil
}

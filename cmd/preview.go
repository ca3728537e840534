package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/killallgit/chatlist/pkg/chat"
	"github.com/killallgit/chatlist/pkg/config"
	"github.com/killallgit/chatlist/pkg/layoutopts"
	"github.com/killallgit/chatlist/pkg/preview"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// PreviewOptions are the per-run settings of the preview command.
type PreviewOptions struct {
	// Scroll is how many lines to scroll back from the most recent message.
	Scroll int
	// Now fixes the reference time of relative timestamps.
	Now time.Time
}

var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Draw a transcript the way the message list shows it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := PreviewOptions{}
		opts.Scroll, _ = cmd.Flags().GetInt("scroll")
		if at, _ := cmd.Flags().GetString("now"); at != "" {
			now, err := time.Parse(time.RFC3339, at)
			if err != nil {
				return fmt.Errorf("invalid --now: %w", err)
			}
			opts.Now = now
		}
		return runPreview(cmd.OutOrStdout(), args[0], config.Get(), opts)
	},
}

func init() {
	previewCmd.Flags().IntP("width", "W", 80, "frame width in columns")
	viper.BindPFlag("preview.width", previewCmd.Flags().Lookup("width"))

	previewCmd.Flags().IntP("height", "H", 24, "frame height in lines")
	viper.BindPFlag("preview.height", previewCmd.Flags().Lookup("height"))

	previewCmd.Flags().IntP("scroll", "s", 0, "lines to scroll back from the most recent message")
	previewCmd.Flags().String("now", "", "reference time for timestamps (RFC 3339)")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(w io.Writer, path string, cfg *config.Config, opts PreviewOptions) error {
	transcript, err := chat.LoadTranscript(path)
	if err != nil {
		return err
	}

	pc := previewConfig(cfg)
	pc.Now = opts.Now
	timeline, err := preview.NewTimeline(pc, layoutopts.NewResolver(resolverConfig(cfg)))
	if err != nil {
		return err
	}

	timeline.Load(transcript.Channel, transcript.Messages)
	if opts.Scroll > 0 {
		timeline.ScrollBy(-opts.Scroll)
	}

	fmt.Fprintln(w, timeline.Frame())

	viewport := timeline.Host().Viewport
	content := timeline.Host().Engine.ContentHeight()
	fmt.Fprintf(w, "%s messages, lines %s-%s of %s\n",
		humanize.Comma(int64(transcript.Messages.Len())),
		formatFloat(viewport.ContentOffset),
		formatFloat(min(viewport.ContentOffset+viewport.Height, content)),
		formatFloat(content))
	return nil
}

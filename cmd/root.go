package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/chatlist/pkg/config"
	"github.com/killallgit/chatlist/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "chatlist",
	Short: "Message list layout toolkit",
	Long: `Resolve per-message layout options for chat transcripts, replay layout
scripts through the incremental list layout and preview the result in the
terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log: %v\n", err)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is .chatlist/settings.yaml)")

	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level")
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initApp() error {
	if _, err := config.Load(cfgFile); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Init(); err != nil {
		return err
	}
	if used := config.GetConfigFileUsed(); used != "" {
		logger.Debug("using config file %s", used)
	}
	return nil
}

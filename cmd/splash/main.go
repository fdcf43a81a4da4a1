package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/splashlog/splash/internal/app"
)

var (
	flagMode    string
	flagPath    string
	flagConfig  string
	flagPoll    int
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "splash",
	Short: "splash highlights log lines as they arrive",
	Long: `splash tails a growing log file (or reads standard input) and renders
each new line with visual emphasis. The clf mode extracts the fields of
web-access-log records; every other mode highlights salient tokens.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		err := app.Run(ctx, rootOptions())
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "override splash config path (optional)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.Flags().StringVarP(&flagMode, "mode", "m", "", "log parsing mode (clf, ad-hoc)")
	rootCmd.Flags().StringVarP(&flagPath, "path", "p", "", "path to the log file; omit to read standard input")
	rootCmd.Flags().IntVar(&flagPoll, "poll", 0, "tail poll interval in seconds (optional, defaults to 2s)")
}

func rootOptions() app.Options {
	return app.Options{
		Mode:       flagMode,
		Path:       flagPath,
		ConfigPath: flagConfig,
		PollEvery:  flagPoll,
		NoColor:    flagNoColor,
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "splash: %v\n", err)
		os.Exit(1)
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/findx-labs/findx/internal/branding"
	"github.com/findx-labs/findx/internal/buildinfo"
	"github.com/findx-labs/findx/internal/config"
	"github.com/spf13/cobra"
)

var (
	build   buildinfo.Info
	verbose bool
)

// errReported marks a failure whose details were already written to stderr.
var errReported = errors.New("errors reported")

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each evaluated entry")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` tests filesystem entries against find-style predicates.
The lname and ilname commands report which of the given paths are symbolic
links whose stored target matches a shell wildcard pattern.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		return setupLogging(cmd)
	},
}

func setupLogging(cmd *cobra.Command) error {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetPrefix(branding.CLIName())
	if verbose {
		log.SetLevel(log.DebugLevel)
		return nil
	}
	level, err := log.ParseLevel(config.LogLevel())
	if err != nil {
		return fmt.Errorf("config key %s: %w", config.KeyLogLevel, err)
	}
	log.SetLevel(level)
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	build = buildinfo.New(version, commit, date)

	// Interrupt stops evaluation between entries.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", branding.CLIName(), err)
	}
	return err
}

package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/findx-labs/findx/internal/config"
	"github.com/findx-labs/findx/internal/find"
	"github.com/findx-labs/findx/internal/matchers"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	lnameIgnoreCase bool
	lnamePrint0     bool
	ilnamePrint0    bool
	showSummary     bool
)

func init() {
	lnameCmd.Flags().BoolVarP(&lnameIgnoreCase, "ignore-case", "i", false, "Match the target caselessly (same as ilname)")
	lnameCmd.Flags().BoolVarP(&lnamePrint0, "print0", "0", false, "Terminate each result with NUL instead of newline")
	ilnameCmd.Flags().BoolVarP(&ilnamePrint0, "print0", "0", false, "Terminate each result with NUL instead of newline")
	rootCmd.PersistentFlags().BoolVar(&showSummary, "summary", false, "Print match counts to stderr when done")
	rootCmd.AddCommand(lnameCmd)
	rootCmd.AddCommand(ilnameCmd)
}

var lnameCmd = &cobra.Command{
	Use:   "lname <pattern> <path>...",
	Short: "Print paths that are symlinks whose target matches a pattern",
	Long: `Print each path that is a symbolic link whose stored target matches the
shell wildcard pattern. The target is compared as written in the link: it is
not resolved, need not exist, and "*" also matches "/". Paths are tested as
given; directories are not descended into.

Example:
  findx lname '*.so.[0-9]' /usr/lib/libc.so /usr/lib/libm.so
  findx lname --ignore-case '*/PYTHON*' /usr/bin/python3`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := find.Options{
			IgnoreCase: flagOrConfig(cmd, "ignore-case", lnameIgnoreCase, config.IgnoreCase()),
			Print0:     flagOrConfig(cmd, "print0", lnamePrint0, config.Print0()),
		}
		return runLinkName(cmd, args[0], args[1:], opts)
	},
}

var ilnameCmd = &cobra.Command{
	Use:   "ilname <pattern> <path>...",
	Short: "Like lname, but the match is case insensitive",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := find.Options{
			IgnoreCase: true,
			Print0:     flagOrConfig(cmd, "print0", ilnamePrint0, config.Print0()),
		}
		return runLinkName(cmd, args[0], args[1:], opts)
	},
}

// flagOrConfig prefers an explicitly set flag over the configured default.
func flagOrConfig(cmd *cobra.Command, name string, flagValue, configured bool) bool {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configured
}

func runLinkName(cmd *cobra.Command, pattern string, paths []string, opts find.Options) error {
	m, err := find.NewMatcher(pattern, opts)
	if err != nil {
		return err
	}
	log.Debug("compiled pattern", "pattern", pattern, "ignore_case", opts.IgnoreCase)

	diag := matchers.NewDiagnostics(cmd.ErrOrStderr())
	mio := matchers.NewMatcherIO(cmd.OutOrStdout(), diag)
	mio.Separator = opts.Separator()

	sum, err := find.Evaluate(cmd.Context(), m, afero.NewReadOnlyFs(afero.NewOsFs()), paths, mio)
	if err != nil {
		return err
	}
	if showSummary {
		fmt.Fprintln(cmd.ErrOrStderr(), sum)
	}
	if sum.Errors > 0 {
		return errReported
	}
	return nil
}

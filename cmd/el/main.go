package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	elerrors "github.com/vango-dev/el/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬
  ├┤ │
  └─┘┴─┘
`

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			elerrors.Print(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "el",
		Short: "Build and render HTML from Go values",
		Long: `el renders trees of HTML content to text.

Commands help inspect how content is rendered:

  • escape text the way the renderer does
  • check tag and attribute names before using them
  • render or serve a demo page`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				elerrors.DisableColors()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored diagnostics")

	rootCmd.AddCommand(
		escapeCmd(),
		checkCmd(),
		commentCmd(),
		explainCmd(),
		demoCmd(),
		serveCmd(),
		versionCmd(),
	)

	return rootCmd
}

// errReported is returned by commands that already printed their
// diagnostics and only need a non-zero exit status.
var errReported = errors.New("reported")

// success prints a success line.
func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// Package commands implements the CLI for the gutengrep sentence scanner.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gutengrep/internal/app"
	"gutengrep/internal/build"
)

// CLI represents the command line interface for gutengrep.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, pattern, inspec string, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "gutengrep REGEX [INSPEC]",
		Short:         "Find matching sentences in plain-text books",
		Long: "gutengrep scans Windows-1252 plain-text files, splits them into\n" +
			"sentences, and writes every sentence matching REGEX to a word-wrapped\n" +
			"report. INSPEC is a glob selecting the input files; it may be omitted\n" +
			"when --cache replays a previous scan.",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		inspec := ""
		if len(args) > 1 {
			inspec = args[1]
		}

		ignoreCase, _ := cmd.Flags().GetBool("ignore-case")
		sort, _ := cmd.Flags().GetBool("sort")
		useCache, _ := cmd.Flags().GetBool("cache")
		correct, _ := cmd.Flags().GetBool("correct")

		// Only forward the outfile when given on the command line, so a
		// value from gutengrep.yaml is not clobbered by the flag default.
		outfile := ""
		if cmd.Flags().Changed("outfile") {
			outfile, _ = cmd.Flags().GetString("outfile")
		}

		return c.app.Run(cmd.Context(), args[0], inspec, app.RunOptions{
			Outfile:    outfile,
			IgnoreCase: ignoreCase,
			Sort:       sort,
			Cache:      useCache,
			Correct:    correct,
		})
	}

	rootCmd.Flags().StringP("outfile", "o", "output.log", "Report file to write matching sentences to")
	rootCmd.Flags().BoolP("ignore-case", "i", false, "Match case-insensitively")
	rootCmd.Flags().BoolP("sort", "s", false, "Also write a second report sorted by sentence length")
	rootCmd.Flags().Bool("cache", false, "Reuse cached sentences instead of re-segmenting the input")
	rootCmd.Flags().Bool("correct", false, "Balance unmatched double quotes in matching sentences")

	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

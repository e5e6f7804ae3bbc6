package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bjaus/tabular"
	"github.com/bjaus/tabular/format"
	"github.com/bjaus/tabular/internal/logging"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Exit codes for the CLI.
const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

const notTabularMessage = "That data does not seem to be tabular, so I am giving up."

type rootOptions struct {
	skip   int
	format string
	debug  bool
}

func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "tabular [filename]",
		Short: "Parse whitespace-aligned command output into structured data",
		Long: `tabular reads the aligned tables printed by tools such as docker ps,
netstat or ps, infers where each column starts and ends, and writes the rows
as CSV, JSON, INI and other formats.

Read from standard input by default, or pass a file name ("-" for stdin).`,
		Args:    cobra.MaximumNArgs(1),
		Version: version,
		// Errors are printed by execute so the exit code stays in one place.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args)
		},
	}
	cmd.SetVersionTemplate(`{{printf "tabular version %s\n" .Version}}`)

	names := lo.Map(format.Formats(), func(f format.Format, _ int) string { return f.String() })
	flags := cmd.Flags()
	flags.IntVar(&opts.skip, "skip", 0, "lines to skip before the table header (0 detects a banner line)")
	flags.StringVar(&opts.format, "format", format.CSV.String(),
		"output format: "+strings.Join(names, ", ")+", or go-template=<tmpl>")
	flags.BoolVar(&opts.debug, "debug", false, "log inference details and show raw errors")
	return cmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions, args []string) error {
	logging.SetLogger(logging.NewTextLogger(cmd.ErrOrStderr(), opts.debug))

	f, err := format.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.skip < 0 {
		return fmt.Errorf("--skip must not be negative, got %d", opts.skip)
	}

	name := tabular.Stdin
	if len(args) == 1 {
		name = args[0]
	}
	records, err := tabular.ParseFile(name,
		tabular.WithSkip(opts.skip),
		tabular.WithStdin(cmd.InOrStdin()),
	)
	if err != nil {
		if errors.Is(err, tabular.ErrMalformedTable) && !opts.debug {
			_, werr := fmt.Fprintln(cmd.ErrOrStderr(), notTabularMessage)
			return werr
		}
		return err
	}
	logging.Logger().Debug("parsed input", "file", name, "records", len(records), "format", f.String())
	return format.Write(cmd.OutOrStdout(), f, records...)
}

// execute runs cmd with args and returns the process exit code.
func execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return ExitCodeError
	}
	return ExitCodeSuccess
}

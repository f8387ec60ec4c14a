package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
	format  string
	logger  zerolog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:          "lvseq",
		Short:        "Inspect live sequence views over a JSON or YAML array",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				opts.logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
					Level(zerolog.DebugLevel).
					With().Timestamp().Logger()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug events to stderr")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "input format: json or yaml (default: by file extension)")

	root.AddCommand(newViewCmd(opts), newAtCmd(opts))
	return root
}

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dbcgo/dbc"
	"github.com/dbcgo/dbc/parser"
)

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file.dbc>",
		Short: "Parse a DBC file and print every diagnostic raised",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			sink := logrusDiagnosticSink{}
			_, diags, err := parser.Parse(f, parser.WithDiagnosticSink(sink))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d diagnostics (%d errors, %d warnings)\n",
				len(diags), countErrors(diags), countWarnings(diags))
			if diags.HasErrors() {
				return fmt.Errorf("lint found %d error-level diagnostics", countErrors(diags))
			}
			return nil
		},
	}
}

type logrusDiagnosticSink struct{}

func (logrusDiagnosticSink) Handle(d dbc.Diagnostic) {
	entry := log.WithFields(logrus.Fields{
		"line": d.Line,
		"kind": d.Status.Kind().String(),
	})
	if d.Object != "" {
		entry = entry.WithField("object", d.Object)
	}
	if d.Status.IsError() {
		entry.Error(d.Message)
	} else {
		entry.Warn(d.Message)
	}
}

func countErrors(diags dbc.Diagnostics) int {
	n := 0
	for _, d := range diags {
		if d.Status.IsError() {
			n++
		}
	}
	return n
}

func countWarnings(diags dbc.Diagnostics) int {
	n := 0
	for _, d := range diags {
		if d.Status.IsWarning() {
			n++
		}
	}
	return n
}

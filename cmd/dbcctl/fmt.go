package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dbcgo/dbc/parser"
	"github.com/dbcgo/dbc/serializer"
)

func newFmtCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "fmt <file.dbc>",
		Short: "Parse a DBC file and re-emit it in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			net, _, err := parser.Parse(f)
			f.Close()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				w, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer w.Close()
				out = w
			}
			_, err = serializer.Emit(out, net)
			return err
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

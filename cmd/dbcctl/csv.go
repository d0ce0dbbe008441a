package main

import (
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/dbcgo/dbc"
	"github.com/dbcgo/dbc/parser"
)

// signalRow flattens one Message x Signal pair, the unit gocsv marshals.
type signalRow struct {
	MessageID   uint32  `csv:"message_id"`
	MessageName string  `csv:"message_name"`
	SignalName  string  `csv:"signal_name"`
	StartBit    uint16  `csv:"start_bit"`
	BitSize     uint16  `csv:"bit_size"`
	ByteOrder   string  `csv:"byte_order"`
	Factor      float64 `csv:"factor"`
	Offset      float64 `csv:"offset"`
	Minimum     float64 `csv:"minimum"`
	Maximum     float64 `csv:"maximum"`
	Unit        string  `csv:"unit"`
}

func newCSVCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "csv <file.dbc>",
		Short: "Parse a DBC file and write one CSV row per message/signal pair",
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

			rows := flattenSignals(net)

			out := cmd.OutOrStdout()
			if outPath != "" {
				w, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer w.Close()
				out = w
			}
			return gocsv.Marshal(rows, out)
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func flattenSignals(net *dbc.Network) []signalRow {
	var rows []signalRow
	for _, msg := range net.MessagesSortedByID() {
		for _, sig := range msg.Signals.Values() {
			rows = append(rows, signalRow{
				MessageID:   msg.ID,
				MessageName: msg.Name,
				SignalName:  sig.Name,
				StartBit:    sig.StartBit,
				BitSize:     sig.BitSize,
				ByteOrder:   sig.ByteOrder.String(),
				Factor:      sig.Factor,
				Offset:      sig.Offset,
				Minimum:     sig.Minimum,
				Maximum:     sig.Maximum,
				Unit:        sig.Unit,
			})
		}
	}
	return rows
}

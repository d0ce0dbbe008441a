// Command dbcctl is a thin CLI wrapper around the dbc/parser/serializer
// packages: it exercises the library end to end without adding any
// parsing or serialization logic of its own.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	_ = godotenv.Load()

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "dbcctl",
		Short:         "Inspect and reformat CAN database (.dbc) files",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if v := os.Getenv("DBCCTL_LOG_LEVEL"); v != "" && logLevel == "info" {
				logLevel = v
			}
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(lvl)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newLintCmd())
	root.AddCommand(newFmtCmd())
	root.AddCommand(newCSVCmd())
	return root
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seetoh/jobscout/internal/connectors"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the job sites this build can search",
	RunE:  runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(_ *cobra.Command, _ []string) error {
	registry := connectors.DefaultRegistry(connectors.NewRecorder(), zap.NewNop(), false)
	for _, name := range registry.Names() {
		fmt.Fprintln(os.Stdout, name)
	}
	return nil
}

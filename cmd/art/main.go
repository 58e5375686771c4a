package main

import (
	"os"

	"github.com/spf13/cobra"

	"art/internal/interfaces/cli/data"
	"art/internal/interfaces/cli/migrate"
	"art/internal/interfaces/cli/server"
	"art/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "art",
		Short: "ART - Asset Resource Tracker",
		Long:  `ART tracks hardware assets across centres, departments and workspaces: the catalog, status and allocation history, conditions and incidents.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		data.NewImportCommand(),
		data.NewExportCommand(),
		data.NewSeedCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

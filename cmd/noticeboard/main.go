package main

import (
	"os"

	"github.com/spf13/cobra"

	"noticeboard/internal/interfaces/cli/migrate"
	"noticeboard/internal/interfaces/cli/seed"
	"noticeboard/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "noticeboard",
		Short: "Noticeboard - announcements over GraphQL",
		Long:  `Noticeboard serves announcements and categories over a GraphQL API, with migration and seed tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

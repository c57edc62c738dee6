package main

import (
	"os"

	"github.com/spf13/cobra"

	"recruitscore/internal/interfaces/cli/migrate"
	"recruitscore/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "recruitscore",
		Short: "RecruitScore - recruiting agency review platform",
		Long:  `RecruitScore is a company review platform for the recruiting industry, with an HTTP API server and database migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

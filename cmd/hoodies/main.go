package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register migrations and seeders via their init() funcs.
	_ "github.com/devansh742005/under-the-hoodies/database/migrations"
	_ "github.com/devansh742005/under-the-hoodies/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hoodies",
	Short: "Under the Hoodies — storefront server and tooling",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "edshop",
	Short: "EDS boutique - demo storefront",
	Long: `EDS boutique is a small demo storefront: product catalog with search
and category pages, browser-local cart, checkout, a rule-based chatbot
and an admin dashboard, backed by an embedded SQLite store.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"edshop/internal/config"
	"edshop/internal/repos"
	"edshop/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the catalog with freshly generated demo products",
	RunE:  runSeed,
}

var seedCount int

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 0, "number of products to generate (default from config)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	n := seedCount
	if n <= 0 {
		n = cfg.SeedCount
	}

	db, err := repos.OpenDB(cfg.DBDSN, 0)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repos.NewProductRepo(db).ReplaceAll(seed.Generate(n, seed.NewRand())); err != nil {
		return fmt.Errorf("reseed: %w", err)
	}
	fmt.Printf("%d produits générés\n", n)
	return nil
}

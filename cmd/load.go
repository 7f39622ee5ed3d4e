package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/foodline-labs/foodline/internal/config"
	"github.com/foodline-labs/foodline/internal/database"
	"github.com/foodline-labs/foodline/internal/etl"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Bulk-load the generated CSVs into the analytics store",
	Long: `Drop and recreate the analytics tables, then stream every generated
CSV into the configured database in chunked multi-row inserts. The load is
always a full refresh; it fails before touching the store if any upstream
file is missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		store, err := database.Connect(ctx, cfg.Database.Provider, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer store.Close()

		color.Cyan("📥 Loading dataset into %s store\n", cfg.Database.Provider)

		results, err := etl.NewLoader(store).LoadAll(ctx, etl.Sources(cfg))
		if err != nil {
			return err
		}

		var total int64
		for _, r := range results {
			fmt.Printf("  ✅ %-15s %10d rows\n", r.Table, r.Rows)
			total += r.Rows
		}
		color.Green("✅ Load complete: %d rows across %d tables", total, len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

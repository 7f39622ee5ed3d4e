package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/foodline-labs/foodline/internal/config"
	"github.com/foodline-labs/foodline/internal/database"
	"github.com/foodline-labs/foodline/internal/kpi"
)

var kpiOutputDir string

var kpiCmd = &cobra.Command{
	Use:   "kpi",
	Short: "Compute dashboard KPI views and export them as JSON",
	Long: `Run the KPI views (executive summary, YoY growth, distributor
scorecards, rep rankings, territory summary, pipeline health, monthly
trends, activity correlation) against the analytics store and export each
as a JSON records file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if kpiOutputDir != "" {
			cfg.KPI.OutputDir = kpiOutputDir
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

		color.Cyan("📊 Computing KPI views\n")

		exports, err := kpi.New(store, cfg.KPI.OutputDir).ExportAll(ctx)
		if err != nil {
			return err
		}

		for _, e := range exports {
			fmt.Printf("  ✅ %s → %s (%d rows)\n", e.Name, e.File, e.Rows)
		}
		color.Green("✅ Exported %d KPI views to %s", len(exports), cfg.KPI.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kpiCmd)
	kpiCmd.Flags().StringVar(&kpiOutputDir, "output", "", "Override the KPI output directory")
}

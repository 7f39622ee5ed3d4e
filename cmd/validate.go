package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/foodline-labs/foodline/internal/config"
	"github.com/foodline-labs/foodline/internal/database"
	"github.com/foodline-labs/foodline/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the data integrity report against the analytics store",
	Long: `Check the loaded dataset: table row counts, required-column nulls,
foreign key orphans, date ranges and business-logic sanity bands. Issues
are reported, never repaired; the command exits non-zero if any are found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		start, err := cfg.HorizonStart()
		if err != nil {
			return err
		}
		end, err := cfg.HorizonEnd()
		if err != nil {
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

		color.Cyan("🔍 Validating dataset\n")

		report, err := validate.New(store, start, end).Run(ctx)
		if err != nil {
			return err
		}

		for _, section := range report.Sections {
			color.White("%s", section.Title)
			for _, line := range section.Lines {
				fmt.Printf("  %s\n", line)
			}
			for _, issue := range section.Issues {
				color.Red("  ❌ %s", issue)
			}
			fmt.Println()
		}

		if issues := report.Issues(); len(issues) > 0 {
			return fmt.Errorf("validation found %d issue(s)", len(issues))
		}
		color.Green("✅ All validation checks passed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

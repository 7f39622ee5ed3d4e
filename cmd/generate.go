package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/foodline-labs/foodline/internal/assign"
	"github.com/foodline-labs/foodline/internal/config"
	"github.com/foodline-labs/foodline/internal/crm"
	"github.com/foodline-labs/foodline/internal/csvio"
	"github.com/foodline-labs/foodline/internal/master"
	"github.com/foodline-labs/foodline/internal/model"
	"github.com/foodline-labs/foodline/internal/sample"
	"github.com/foodline-labs/foodline/internal/shipment"
	"github.com/foodline-labs/foodline/internal/trend"
)

var (
	generateSeed      int64
	generateOperators int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the raw CSV dataset",
	Long: `Run the full generation pass: master entities, CRM pipeline and the
weekly shipment history, written as flat CSV files plus a run manifest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if generateSeed != 0 {
			cfg.Seed = generateSeed
		}
		if generateOperators != 0 {
			cfg.Counts.Operators = generateOperators
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.EnsureDirectories(); err != nil {
			return err
		}

		return runGenerate(cfg)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Override the configured random seed")
	generateCmd.Flags().IntVar(&generateOperators, "operators", 0, "Override the configured operator count")
}

// manifest records one generation run.
type manifest struct {
	RunID       string            `json:"run_id"`
	GeneratedAt string            `json:"generated_at"`
	Seed        int64             `json:"seed"`
	Horizon     map[string]string `json:"horizon"`
	Files       []manifestFile    `json:"files"`
}

type manifestFile struct {
	Path string `json:"path"`
	Rows int    `json:"rows"`
}

func runGenerate(cfg *config.Config) error {
	start, err := cfg.HorizonStart()
	if err != nil {
		return err
	}
	end, err := cfg.HorizonEnd()
	if err != nil {
		return err
	}

	trendModel, err := trend.NewModel(start.Year(), end.Year())
	if err != nil {
		return err
	}

	stream := sample.NewStream(cfg.Seed)
	files := []manifestFile{}
	record := func(path string, rows int) {
		files = append(files, manifestFile{Path: path, Rows: rows})
		fmt.Printf("  ✅ %s (%d rows)\n", path, rows)
	}

	color.Cyan("🌱 Generating dataset (seed %d, horizon %s → %s)\n",
		cfg.Seed, cfg.Horizon.Start, cfg.Horizon.End)

	// Master entities
	color.White("📦 Master data")
	masterData, err := master.New(stream, end).GenerateAll(cfg.Counts.Operators, cfg.Counts.Reps)
	if err != nil {
		return fmt.Errorf("failed to generate master data: %w", err)
	}

	masterTables := []struct {
		name  string
		write func(path string) (int, error)
	}{
		{"territories.csv", func(p string) (int, error) {
			return csvio.WriteTable(p, model.TerritoryHeader, masterData.Territories)
		}},
		{"distributors.csv", func(p string) (int, error) {
			return csvio.WriteTable(p, model.DistributorHeader, masterData.Distributors)
		}},
		{"products.csv", func(p string) (int, error) {
			return csvio.WriteTable(p, model.ProductHeader, masterData.Products)
		}},
		{"sales_reps.csv", func(p string) (int, error) {
			return csvio.WriteTable(p, model.SalesRepHeader, masterData.SalesReps)
		}},
		{"operators.csv", func(p string) (int, error) {
			return csvio.WriteTable(p, model.OperatorHeader, masterData.Operators)
		}},
	}
	for _, t := range masterTables {
		path := filepath.Join(cfg.OutputDir, t.name)
		rows, err := t.write(path)
		if err != nil {
			return err
		}
		record(path, rows)
	}

	// Frozen relationships
	assignments, err := assign.Build(stream, masterData.Operators, masterData.Distributors)
	if err != nil {
		return err
	}

	// CRM pipeline
	color.White("📇 CRM pipeline")
	crmSim, err := crm.New(stream, masterData.SalesReps, start, end)
	if err != nil {
		return err
	}
	crmData, err := crmSim.GenerateAll(masterData.Operators)
	if err != nil {
		return fmt.Errorf("failed to generate CRM data: %w", err)
	}

	accountsPath := filepath.Join(cfg.CRMDir(), "accounts.csv")
	rows, err := csvio.WriteTable(accountsPath, model.AccountHeader, crmData.Accounts)
	if err != nil {
		return err
	}
	record(accountsPath, rows)

	oppsPath := filepath.Join(cfg.CRMDir(), "opportunities.csv")
	rows, err = csvio.WriteTable(oppsPath, model.OpportunityHeader, crmData.Opportunities)
	if err != nil {
		return err
	}
	record(oppsPath, rows)

	activitiesPath := filepath.Join(cfg.CRMDir(), "activities.csv")
	rows, err = csvio.WriteTable(activitiesPath, model.ActivityHeader, crmData.Activities)
	if err != nil {
		return err
	}
	record(activitiesPath, rows)

	// Weekly shipments, streamed into one file per calendar year
	color.White("🚚 Shipments")
	sim, err := shipment.New(stream, trendModel, masterData.Operators, masterData.Products,
		assignments, start, end)
	if err != nil {
		return err
	}

	yearWriters := map[int]*csvio.Writer{}
	yearPath := func(year int) string {
		return filepath.Join(cfg.ShipmentsDir(), fmt.Sprintf("shipments_%d.csv", year))
	}
	closeAll := func() {
		for _, w := range yearWriters {
			w.Close()
		}
	}

	result, err := sim.Run(func(s model.Shipment) error {
		year := s.WeekEnding.Year()
		w, ok := yearWriters[year]
		if !ok {
			var err error
			w, err = csvio.NewWriter(yearPath(year), model.ShipmentHeader)
			if err != nil {
				return err
			}
			yearWriters[year] = w
		}
		return w.Write(s.Row())
	})
	if err != nil {
		closeAll()
		return fmt.Errorf("failed to generate shipments: %w", err)
	}

	years := make([]int, 0, len(yearWriters))
	for year, w := range yearWriters {
		if err := w.Close(); err != nil {
			closeAll()
			return err
		}
		years = append(years, year)
	}
	sort.Ints(years)

	sources := make([]string, 0, len(years))
	for _, year := range years {
		path := yearPath(year)
		sources = append(sources, path)
		record(path, yearWriters[year].Rows())
	}

	combinedPath := filepath.Join(cfg.ShipmentsDir(), "shipments_all.csv")
	rows, err = csvio.Concat(combinedPath, model.ShipmentHeader, sources)
	if err != nil {
		return err
	}
	record(combinedPath, rows)

	summaryPath := filepath.Join(cfg.OutputDir, "monthly_summary.csv")
	rows, err = csvio.WriteTable(summaryPath, model.MonthlySummaryHeader, result.MonthlySummaries)
	if err != nil {
		return err
	}
	record(summaryPath, rows)

	if err := writeManifest(cfg, files); err != nil {
		return err
	}

	color.Green("✅ Generation complete: %d shipments across %d weeks, net sales $%.2f",
		result.TotalShipments, result.Weeks, result.TotalNetSales)
	return nil
}

func writeManifest(cfg *config.Config, files []manifestFile) error {
	m := manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Seed:        cfg.Seed,
		Horizon:     map[string]string{"start": cfg.Horizon.Start, "end": cfg.Horizon.End},
		Files:       files,
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	fmt.Printf("  ✅ %s\n", path)
	return nil
}

// Package etl bulk-loads the generated flat files into the analytics store.
// Every load is a full refresh: tables are dropped and recreated, then each
// CSV streams in as chunked multi-row inserts inside one transaction per
// table.
package etl

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/foodline-labs/foodline/internal/config"
	"github.com/foodline-labs/foodline/internal/csvio"
	"github.com/foodline-labs/foodline/internal/database"
)

const (
	chunkSize = 5000
	// maxParams stays under the bind-variable ceilings of all three
	// providers (SQLite 32766, Postgres 65535).
	maxParams = 30000
)

// Source binds one analytics table to its upstream flat file.
type Source struct {
	Table string
	Path  string
}

// Sources lists every table with its expected file, in load order.
func Sources(cfg *config.Config) []Source {
	return []Source{
		{"territories", filepath.Join(cfg.OutputDir, "territories.csv")},
		{"distributors", filepath.Join(cfg.OutputDir, "distributors.csv")},
		{"products", filepath.Join(cfg.OutputDir, "products.csv")},
		{"sales_reps", filepath.Join(cfg.OutputDir, "sales_reps.csv")},
		{"operators", filepath.Join(cfg.OutputDir, "operators.csv")},
		{"accounts", filepath.Join(cfg.CRMDir(), "accounts.csv")},
		{"opportunities", filepath.Join(cfg.CRMDir(), "opportunities.csv")},
		{"activities", filepath.Join(cfg.CRMDir(), "activities.csv")},
		{"shipments", filepath.Join(cfg.ShipmentsDir(), "shipments_all.csv")},
	}
}

// CheckSources verifies every upstream file exists and is non-empty before
// any table is touched. A missing generation output fails the whole load.
func CheckSources(sources []Source) error {
	for _, src := range sources {
		info, err := os.Stat(src.Path)
		if err != nil {
			return fmt.Errorf("missing source for table %s: %s", src.Table, src.Path)
		}
		if info.Size() == 0 {
			return fmt.Errorf("source for table %s is empty: %s", src.Table, src.Path)
		}
	}
	return nil
}

// TableLoad reports one loaded table.
type TableLoad struct {
	Table string
	Rows  int64
}

// Loader streams flat files into the store.
type Loader struct {
	store *database.Store
}

func NewLoader(store *database.Store) *Loader {
	return &Loader{store: store}
}

// LoadAll recreates the schema and loads every source in order. Parents
// load before children, so foreign keys resolve as rows arrive.
func (l *Loader) LoadAll(ctx context.Context, sources []Source) ([]TableLoad, error) {
	if err := CheckSources(sources); err != nil {
		return nil, err
	}
	if err := l.store.CreateTables(ctx); err != nil {
		return nil, err
	}

	results := make([]TableLoad, 0, len(sources))
	for _, src := range sources {
		table, ok := database.TableByName(src.Table)
		if !ok {
			return nil, fmt.Errorf("unknown table %s", src.Table)
		}

		rows, err := l.loadTable(ctx, table, src.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load table %s: %w", src.Table, err)
		}
		results = append(results, TableLoad{Table: src.Table, Rows: rows})
	}
	return results, nil
}

func (l *Loader) loadTable(ctx context.Context, table database.Table, path string) (int64, error) {
	reader, err := csvio.OpenReader(path)
	if err != nil {
		return 0, err
	}
	defer reader.Close()

	if got, want := len(reader.Header()), len(table.Columns); got != want {
		return 0, fmt.Errorf("%s: header has %d columns, schema expects %d", path, got, want)
	}

	tx, err := l.store.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rowsPerChunk := chunkSize
	if limit := maxParams / len(table.Columns); limit < rowsPerChunk {
		rowsPerChunk = limit
	}

	var total int64
	chunk := make([][]any, 0, rowsPerChunk)

	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}

		insert := l.store.Builder().Insert(table.Name).Columns(table.ColumnNames()...)
		for _, row := range chunk {
			insert = insert.Values(row...)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert chunk: %w", err)
		}

		total += int64(len(chunk))
		chunk = chunk[:0]
		return nil
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", path, err)
		}

		args, err := table.BindRow(row)
		if err != nil {
			return 0, err
		}

		chunk = append(chunk, args)
		if len(chunk) == rowsPerChunk {
			if err := flush(); err != nil {
				return 0, err
			}
		}
	}

	if err := flush(); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return total, nil
}

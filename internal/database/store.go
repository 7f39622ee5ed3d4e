// Package database manages the analytics store connection. Provider names
// map onto the pgx, mysql and sqlite drivers; SQL built against the store
// goes through squirrel with the provider's placeholder format.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Store is an open connection to the analytics database.
type Store struct {
	DB       *sql.DB
	Provider string
}

func driverName(provider string) (string, error) {
	switch provider {
	case "postgresql", "postgres":
		return "pgx", nil
	case "mysql":
		return "mysql", nil
	case "sqlite", "sqlite3":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database provider: %s", provider)
	}
}

// Connect opens and pings the store. For SQLite the URL is a file path and
// its parent directory is created on demand.
func Connect(ctx context.Context, provider, url string) (*Store, error) {
	driver, err := driverName(provider)
	if err != nil {
		return nil, err
	}

	if driver == "sqlite3" {
		if dir := filepath.Dir(url); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{DB: db, Provider: provider}, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.DB.Close()
}

// Builder returns a squirrel statement builder using the provider's
// placeholder format: $N for Postgres, ? everywhere else.
func (s *Store) Builder() sq.StatementBuilderType {
	if s.Provider == "postgresql" || s.Provider == "postgres" {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// YearExpr returns the provider's SQL for extracting the year of a date
// column as an integer.
func (s *Store) YearExpr(col string) string {
	switch s.Provider {
	case "postgresql", "postgres":
		return fmt.Sprintf("CAST(EXTRACT(YEAR FROM %s) AS INT)", col)
	case "mysql":
		return fmt.Sprintf("YEAR(%s)", col)
	default:
		return fmt.Sprintf("CAST(strftime('%%Y', %s) AS INTEGER)", col)
	}
}

// MonthExpr returns the provider's SQL for extracting the month of a date
// column as an integer.
func (s *Store) MonthExpr(col string) string {
	switch s.Provider {
	case "postgresql", "postgres":
		return fmt.Sprintf("CAST(EXTRACT(MONTH FROM %s) AS INT)", col)
	case "mysql":
		return fmt.Sprintf("MONTH(%s)", col)
	default:
		return fmt.Sprintf("CAST(strftime('%%m', %s) AS INTEGER)", col)
	}
}

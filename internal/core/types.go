package core

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// DBTX is the interface for executing statements.
// Satisfied by *pgx.Conn, *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
}

// Beginner starts a transaction. Satisfied by *pgx.Conn and *pgxpool.Pool.
type Beginner interface {
	Begin(context.Context) (pgx.Tx, error)
}

// Record is one archived monthly figure, the unit written to the store.
// Amount is always a real value; cells without one never become a Record.
type Record struct {
	Year        int
	Month       int // 1-12
	Category    string
	Subcategory pgtype.Text // Valid=false when the category has no subcategory
	Amount      decimal.Decimal
}

// ImportConfig is the per-run configuration handed to the Importer.
type ImportConfig struct {
	Year          int    // Stamped on every record
	Table         string // Destination table
	MissingMarker string // Cell literal meaning "no data" (compared case-insensitively)
}

// ImportResult contains the final result of an import run.
type ImportResult struct {
	ImportID string
	FileName string
	Rows     int // Data rows read (excluding header and blank rows)
	Cells    int // Month cells examined
	Inserted int
	Skipped  int // Cells dropped as empty, missing or unparseable
	Duration time.Duration
}

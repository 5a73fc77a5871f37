package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JonMunkholm/archimport/internal/logging"
	"github.com/google/uuid"
)

// Importer turns an archive sheet into Records and writes them in a single
// transaction.
type Importer struct {
	db  Beginner
	cfg ImportConfig
}

// NewImporter creates an Importer. An empty Table or MissingMarker falls back
// to DefaultTable and DefaultMissingMarker.
func NewImporter(db Beginner, cfg ImportConfig) *Importer {
	if cfg.Table == "" {
		cfg.Table = DefaultTable
	}
	if cfg.MissingMarker == "" {
		cfg.MissingMarker = DefaultMissingMarker
	}
	return &Importer{db: db, cfg: cfg}
}

// Config returns the effective import configuration.
func (im *Importer) Config() ImportConfig {
	return im.cfg
}

// BuildStats counts what BuildRecords saw.
type BuildStats struct {
	Rows    int // Data rows with a label
	Cells   int // Month cells examined
	Skipped int // Cells without an amount

	Ignored []string // Non-blank header cells that are not months
}

// BuildRecords converts a parsed sheet into records.
//
// Each data row yields at most one record per month column of the header.
// Rows without a label are ignored, as are cells past the header width and
// cells under a column that is not a month. Cells without a usable amount
// are skipped and counted. Labels are only trimmed, never unquoted.
func (im *Importer) BuildRecords(sheet *Sheet) ([]Record, BuildStats, error) {
	var stats BuildStats

	months, err := ResolveMonths(sheet.Header)
	if err != nil {
		return nil, stats, err
	}
	for i, month := range months {
		if month == 0 && strings.TrimSpace(sheet.Header[i+1]) != "" {
			stats.Ignored = append(stats.Ignored, sheet.Header[i+1])
		}
	}

	records := make([]Record, 0, len(sheet.Rows)*len(months))
	for _, row := range sheet.Rows {
		if len(row) == 0 {
			continue
		}
		label := strings.TrimSpace(row[0])
		if label == "" {
			continue
		}
		stats.Rows++

		class := Classify(label)
		for i, month := range months {
			col := i + 1
			if col >= len(row) {
				break
			}
			if month == 0 {
				continue
			}
			stats.Cells++

			amount, ok := ParseAmountWithMarker(row[col], im.cfg.MissingMarker)
			if !ok {
				stats.Skipped++
				continue
			}

			records = append(records, Record{
				Year:        im.cfg.Year,
				Month:       month,
				Category:    class.Category,
				Subcategory: class.PgSubcategory(),
				Amount:      amount,
			})
		}
	}

	return records, stats, nil
}

// Write inserts records one statement at a time inside a single transaction
// and commits once. On any failure the transaction is rolled back and nothing
// is written.
func (im *Importer) Write(ctx context.Context, records []Record) (int, error) {
	tx, err := im.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for i, r := range records {
		if err := InsertRecord(ctx, tx, im.cfg.Table, r); err != nil {
			return 0, fmt.Errorf("insert record %d (%d-%02d %s): %w", i+1, r.Year, r.Month, r.Category, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return len(records), nil
}

// Import reads an archive sheet from r and writes its records.
// fileName is only used for reporting.
func (im *Importer) Import(ctx context.Context, r io.Reader, fileName string) (*ImportResult, error) {
	startTime := time.Now()

	importID := logging.ImportIDFromContext(ctx)
	if importID == "" {
		importID = uuid.New().String()
		ctx = logging.WithImportID(ctx, importID)
	}
	log := logging.WithFields(ctx, "file", fileName, "table", im.cfg.Table, "year", im.cfg.Year)

	sheet, err := ReadSheet(r)
	if err != nil {
		return nil, err
	}
	log.Debug("sheet read", "rows", len(sheet.Rows), "columns", len(sheet.Header))

	records, stats, err := im.BuildRecords(sheet)
	if err != nil {
		return nil, err
	}
	if len(stats.Ignored) > 0 {
		log.Warn("ignoring columns that are not months", "columns", stats.Ignored)
	}
	log.Info("records prepared",
		"rows", stats.Rows,
		"cells", stats.Cells,
		"records", len(records),
		"skipped", stats.Skipped,
	)

	inserted, err := im.Write(ctx, records)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		ImportID: importID,
		FileName: fileName,
		Rows:     stats.Rows,
		Cells:    stats.Cells,
		Inserted: inserted,
		Skipped:  stats.Skipped,
		Duration: time.Since(startTime),
	}
	log.Info("import committed", "inserted", result.Inserted, "duration", result.Duration)
	return result, nil
}

// ImportFile opens path and imports it.
func (im *Importer) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return im.Import(ctx, f, filepath.Base(path))
}

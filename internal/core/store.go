package core

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// DefaultTable is the table archived statistics are written to.
const DefaultTable = "archived_statistics"

// recordColumns lists the destination columns in insert order.
var recordColumns = []string{
	"year",
	"month",
	"category",
	"subcategory",
	"amount",
}

// buildRecordInsert builds the INSERT statement for a single record.
func buildRecordInsert(table string, r Record) (string, []any, error) {
	return squirrel.
		Insert(table).
		Columns(recordColumns...).
		Values(
			r.Year,
			r.Month,
			r.Category,
			r.Subcategory,
			ToPgNumeric(r.Amount),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// InsertRecord writes one record to table.
func InsertRecord(ctx context.Context, db DBTX, table string, r Record) error {
	sql, args, err := buildRecordInsert(table, r)
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return err
	}
	return nil
}

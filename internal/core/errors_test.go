package core

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "undefined table",
			err:         fmt.Errorf("insert record 1: %w", &pgconn.PgError{Code: pgerrcode.UndefinedTable}),
			wantCode:    "DB001",
			wantMessage: "Destination table does not exist",
		},
		{
			name:        "undefined column",
			err:         &pgconn.PgError{Code: pgerrcode.UndefinedColumn},
			wantCode:    "DB002",
			wantMessage: "Destination table is missing a column",
		},
		{
			name:        "bad password",
			err:         &pgconn.PgError{Code: pgerrcode.InvalidPassword},
			wantCode:    "DB003",
			wantMessage: "Database authentication failed",
		},
		{
			name:        "unknown database",
			err:         &pgconn.PgError{Code: pgerrcode.InvalidCatalogName},
			wantCode:    "DB004",
			wantMessage: "Database does not exist",
		},
		{
			name:        "numeric overflow",
			err:         &pgconn.PgError{Code: pgerrcode.NumericValueOutOfRange},
			wantCode:    "DB005",
			wantMessage: "An amount does not fit the amount column",
		},
		{
			name:        "connection refused",
			err:         errors.New("dial tcp 127.0.0.1:1906: connect: connection refused"),
			wantCode:    "DB007",
			wantMessage: "Unable to connect to database",
		},
		{
			name:        "missing input file",
			err:         fmt.Errorf("open input: %w", os.ErrNotExist),
			wantCode:    "FILE001",
			wantMessage: "Input file not found",
		},
		{
			name:        "malformed csv",
			err:         fmt.Errorf("parse CSV: %w", &csv.ParseError{Line: 3, Err: csv.ErrQuote}),
			wantCode:    "FILE002",
			wantMessage: "Input file is not valid CSV",
		},
		{
			name:        "empty file",
			err:         ErrEmptyFile,
			wantCode:    "FILE003",
			wantMessage: "Input file is empty",
		},
		{
			name:        "no month columns",
			err:         ErrNoMonthColumns,
			wantCode:    "FILE004",
			wantMessage: "Header has no month columns",
		},
		{
			name:        "too many months",
			err:         fmt.Errorf("%w: column 14", ErrTooManyMonths),
			wantCode:    "FILE005",
			wantMessage: "Header has more than twelve month columns",
		},
		{
			name:        "duplicate month",
			err:         fmt.Errorf("%w: columns 2 and 3 are both month 3", ErrDuplicateMonth),
			wantCode:    "FILE006",
			wantMessage: "Header names the same month twice",
		},
		{
			name:        "cancelled",
			err:         fmt.Errorf("insert record 9: %w", context.Canceled),
			wantCode:    "IMP001",
			wantMessage: "Import was cancelled",
		},
		{
			name:        "timed out",
			err:         fmt.Errorf("commit transaction: %w", context.DeadlineExceeded),
			wantCode:    "IMP002",
			wantMessage: "Import timed out",
		},
		{
			name:        "unmapped postgres code falls back",
			err:         &pgconn.PgError{Code: pgerrcode.DiskFull, Message: "disk full"},
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "unknown error",
			err:         errors.New("something strange"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestUserError_Hint(t *testing.T) {
	got := NewUserError(fmt.Errorf("read sheet: %w", ErrEmptyFile)).Hint()
	want := "Input file is empty (Code: FILE003). Export the sheet with its header row"
	if got != want {
		t.Errorf("Hint() = %q, want %q", got, want)
	}
}

func TestUserError(t *testing.T) {
	if NewUserError(nil) != nil {
		t.Error("NewUserError(nil) should return nil")
	}

	technical := fmt.Errorf("begin transaction: %w", &pgconn.PgError{Code: pgerrcode.InvalidPassword})
	ue := NewUserError(technical)

	if ue.Error() != "Database authentication failed" {
		t.Errorf("Error() = %q", ue.Error())
	}
	if !errors.Is(ue, technical) {
		t.Error("UserError should unwrap to the technical error")
	}

	var pgErr *pgconn.PgError
	if !errors.As(ue, &pgErr) {
		t.Error("errors.As should reach the wrapped PgError")
	}
}

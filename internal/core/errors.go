package core

// errors.go maps technical errors to user-friendly messages with codes for
// support reference. PostgreSQL errors are matched on their SQLSTATE code
// first; everything else falls back to case-insensitive substring patterns,
// first match wins.
//
//	DB001 - Destination table does not exist (42P01)
//	DB002 - Destination table is missing a column (42703)
//	DB003 - Authentication failed (28P01, 28000)
//	DB004 - Database does not exist (3D000)
//	DB005 - Amount does not fit the column (22003)
//	DB006 - Required column empty (23502)
//	DB007 - Unable to connect ("connection refused", "no such host")
//	FILE001 - Input file not found
//	FILE002 - Input file is not valid CSV
//	FILE003 - Input file is empty
//	FILE004 - Header has no month columns
//	FILE005 - Header has more than twelve month columns
//	FILE006 - Header names the same month twice
//	IMP001 - Import cancelled
//	IMP002 - Import timed out
//	ERR000 - Unknown error

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for malformed input.
var (
	ErrEmptyFile      = errors.New("empty file: no header row found")
	ErrNoMonthColumns = errors.New("header has no month columns")
	ErrTooManyMonths  = errors.New("header has more than 12 month columns")
	ErrDuplicateMonth = errors.New("header names the same month twice")
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// pgCodeMessages maps PostgreSQL SQLSTATE codes to user messages.
var pgCodeMessages = map[string]UserMessage{
	pgerrcode.UndefinedTable: {
		Message: "Destination table does not exist",
		Action:  "Create the archived statistics table or set IMPORT_TABLE",
		Code:    "DB001",
	},
	pgerrcode.UndefinedColumn: {
		Message: "Destination table is missing a column",
		Action:  "The table needs year, month, category, subcategory and amount columns",
		Code:    "DB002",
	},
	pgerrcode.InvalidPassword: {
		Message: "Database authentication failed",
		Action:  "Check PG_PASSWORD and DB_USER",
		Code:    "DB003",
	},
	pgerrcode.InvalidAuthorizationSpecification: {
		Message: "Database authentication failed",
		Action:  "Check PG_PASSWORD and DB_USER",
		Code:    "DB003",
	},
	pgerrcode.InvalidCatalogName: {
		Message: "Database does not exist",
		Action:  "Check DB_NAME",
		Code:    "DB004",
	},
	pgerrcode.NumericValueOutOfRange: {
		Message: "An amount does not fit the amount column",
		Action:  "Check the sheet for misplaced separators",
		Code:    "DB005",
	},
	pgerrcode.NotNullViolation: {
		Message: "A required column was left empty",
		Action:  "Check that every row has a category label",
		Code:    "DB006",
	},
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns is consulted when no typed match applies.
var errorPatterns = []errorPattern{
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Check that PostgreSQL is running on DB_HOST:DB_PORT",
			Code:    "DB007",
		},
	},
	{
		pattern: "no such host",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Check DB_HOST",
			Code:    "DB007",
		},
	},
}

var (
	msgFileNotFound = UserMessage{
		Message: "Input file not found",
		Action:  "Check IMPORT_FILE",
		Code:    "FILE001",
	}
	msgInvalidCSV = UserMessage{
		Message: "Input file is not valid CSV",
		Action:  "Export the sheet again as comma-separated values",
		Code:    "FILE002",
	}
	msgEmptyFile = UserMessage{
		Message: "Input file is empty",
		Action:  "Export the sheet with its header row",
		Code:    "FILE003",
	}
	msgNoMonths = UserMessage{
		Message: "Header has no month columns",
		Action:  "The first column is the category; months follow it",
		Code:    "FILE004",
	}
	msgTooManyMonths = UserMessage{
		Message: "Header has more than twelve month columns",
		Action:  "Name the month columns or import one year per file",
		Code:    "FILE005",
	}
	msgDuplicateMonth = UserMessage{
		Message: "Header names the same month twice",
		Action:  "Rename or remove the repeated month column",
		Code:    "FILE006",
	}
	msgCancelled = UserMessage{
		Message: "Import was cancelled",
		Action:  "Nothing was committed; run the import again",
		Code:    "IMP001",
	}
	msgTimeout = UserMessage{
		Message: "Import timed out",
		Action:  "Nothing was committed; raise IMPORT_TIMEOUT or retry",
		Code:    "IMP002",
	}
	defaultMessage = UserMessage{
		Message: "An unexpected error occurred",
		Action:  "Check the log for the technical error",
		Code:    "ERR000",
	}
)

// MapError converts a technical error to a user-friendly message.
// Returns an empty UserMessage for nil.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if msg, ok := pgCodeMessages[pgErr.Code]; ok {
			return msg
		}
	}

	var parseErr *csv.ParseError
	switch {
	case errors.Is(err, ErrEmptyFile):
		return msgEmptyFile
	case errors.Is(err, ErrNoMonthColumns):
		return msgNoMonths
	case errors.Is(err, ErrTooManyMonths):
		return msgTooManyMonths
	case errors.Is(err, ErrDuplicateMonth):
		return msgDuplicateMonth
	case errors.Is(err, fs.ErrNotExist):
		return msgFileNotFound
	case errors.As(err, &parseErr):
		return msgInvalidCSV
	case errors.Is(err, context.Canceled):
		return msgCancelled
	case errors.Is(err, context.DeadlineExceeded):
		return msgTimeout
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// UserError wraps a technical error with its user-facing message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// Hint returns the message with its code and action.
// Format: "Message (Code: XXX). Action"
func (e *UserError) Hint() string {
	return fmt.Sprintf("%s (Code: %s). %s", e.User.Message, e.User.Code, e.User.Action)
}

// NewUserError creates a UserError from a technical error.
// Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}

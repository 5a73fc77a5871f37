package core

// amount.go converts spreadsheet amount cells to decimals.
//
// The archive sheet uses Polish number formatting: a comma as the decimal
// separator and spaces (often non-breaking) as thousands separators. Cells
// exported from the sheet may also keep stray quote characters around or
// inside the number.

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// DefaultMissingMarker is the literal the sheet uses for months without data.
const DefaultMissingMarker = "brak"

// numericRegex validates that a string is a plain decimal after cleanup.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseAmount parses a Polish-formatted amount using DefaultMissingMarker.
// See ParseAmountWithMarker.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	return ParseAmountWithMarker(raw, DefaultMissingMarker)
}

// ParseAmountWithMarker parses a Polish-formatted amount such as "1 234,50".
//
// The second return value is false when the cell holds no value: it is blank,
// equals marker (case-insensitive), or is not a number once whitespace and
// quotes are removed and the decimal comma is replaced by a period.
func ParseAmountWithMarker(raw, marker string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Decimal{}, false
	}
	if marker != "" && strings.EqualFold(s, strings.TrimSpace(marker)) {
		return decimal.Decimal{}, false
	}

	s = strings.Map(func(r rune) rune {
		// unicode.IsSpace covers NBSP and narrow NBSP used as thousands separators
		if unicode.IsSpace(r) || r == '"' {
			return -1
		}
		return r
	}, s)
	s = strings.ReplaceAll(s, ",", ".")

	if !numericRegex.MatchString(s) {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// ToPgNumeric converts a decimal to pgtype.Numeric without going through float64.
func ToPgNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   d.Coefficient(),
		Exp:   d.Exponent(),
		Valid: true,
	}
}

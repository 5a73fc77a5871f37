package core

import (
	"fmt"
	"strconv"
	"strings"
)

// polishMonths maps lowercase Polish month names to month numbers.
// Spellings without diacritics are accepted as well.
var polishMonths = map[string]int{
	"styczeń":     1,
	"styczen":     1,
	"luty":        2,
	"marzec":      3,
	"kwiecień":    4,
	"kwiecien":    4,
	"maj":         5,
	"czerwiec":    6,
	"lipiec":      7,
	"sierpień":    8,
	"sierpien":    8,
	"wrzesień":    9,
	"wrzesien":    9,
	"październik": 10,
	"pazdziernik": 10,
	"listopad":    11,
	"grudzień":    12,
	"grudzien":    12,
}

// ResolveMonths maps the columns of a header row to month numbers.
//
// header[0] is the category label column and is ignored, so the result has
// len(header)-1 entries. A header cell naming a Polish month ("styczeń",
// "Luty 2025") or holding a month number ("3") resolves to that month.
//
// Once any cell resolves that way, columns that do not (totals, notes,
// blanks) get 0 and are not imported. When none does, every column up to
// the last non-blank header cell takes its position as its month. Two
// columns resolving to the same month are an error.
func ResolveMonths(header []string) ([]int, error) {
	if len(header) < 2 {
		return nil, ErrNoMonthColumns
	}

	cols := header[1:]
	months := make([]int, len(cols))
	named := false
	for i, cell := range cols {
		if m, ok := monthFromHeader(cell); ok {
			months[i] = m
			named = true
		}
	}

	if !named {
		last := -1
		for i, cell := range cols {
			if CleanCell(cell) != "" {
				last = i
			}
		}
		if last < 0 {
			return nil, ErrNoMonthColumns
		}
		if last+1 > 12 {
			return nil, fmt.Errorf("%w: column %d (%q)", ErrTooManyMonths, 14, cols[12])
		}
		for i := 0; i <= last; i++ {
			months[i] = i + 1
		}
	}

	seen := make(map[int]int, 12)
	for i, m := range months {
		if m == 0 {
			continue
		}
		if prev, ok := seen[m]; ok {
			return nil, fmt.Errorf("%w: columns %d (%q) and %d (%q) are both month %d",
				ErrDuplicateMonth, prev+2, cols[prev], i+2, cols[i], m)
		}
		seen[m] = i
	}
	return months, nil
}

// monthFromHeader recognizes a month name or number in a header cell.
// Only the first word is considered, so "styczeń 2025" resolves to January.
func monthFromHeader(cell string) (int, bool) {
	fields := strings.Fields(foldLabel(CleanCell(cell)))
	if len(fields) == 0 {
		return 0, false
	}
	word := strings.TrimRight(fields[0], ".,:")

	if m, ok := polishMonths[word]; ok {
		return m, true
	}
	if n, err := strconv.Atoi(word); err == nil && n >= 1 && n <= 12 {
		return n, true
	}
	return 0, false
}

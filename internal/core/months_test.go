package core

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolveMonths(t *testing.T) {
	tests := []struct {
		name    string
		header  []string
		want    []int
		wantErr error
	}{
		{
			name:   "polish month names",
			header: []string{"Kategoria", "styczeń", "luty", "marzec"},
			want:   []int{1, 2, 3},
		},
		{
			name:   "capitalized names with year",
			header: []string{"", "Lipiec 2025", "Sierpień 2025"},
			want:   []int{7, 8},
		},
		{
			name:   "names without diacritics",
			header: []string{"Kategoria", "pazdziernik", "grudzien"},
			want:   []int{10, 12},
		},
		{
			name:   "month numbers",
			header: []string{"Kategoria", "4", "5"},
			want:   []int{4, 5},
		},
		{
			name:   "unrecognized headers use position",
			header: []string{"Kategoria", "Kolumna A", "Kolumna B"},
			want:   []int{1, 2},
		},
		{
			name:   "unrecognized columns are skipped once a month is named",
			header: []string{"Kategoria", "?", "marzec", ""},
			want:   []int{0, 3, 0},
		},
		{
			name:   "trailing totals column is skipped",
			header: []string{"Kategoria", "styczeń", "marzec", "Suma"},
			want:   []int{1, 3, 0},
		},
		{
			name:   "trailing blank columns are not positional months",
			header: []string{"Kategoria", "Kolumna A", "Kolumna B", "", ""},
			want:   []int{1, 2, 0, 0},
		},
		{
			name:   "blank columns inside the positional range keep their position",
			header: []string{"Kategoria", "A", "", "C"},
			want:   []int{1, 2, 3},
		},
		{
			name:   "quoted header cells",
			header: []string{"Kategoria", `"styczeń"`, " luty "},
			want:   []int{1, 2},
		},
		{
			name:    "label column only",
			header:  []string{"Kategoria"},
			wantErr: ErrNoMonthColumns,
		},
		{
			name:    "only blank month headers",
			header:  []string{"Kategoria", "", " "},
			wantErr: ErrNoMonthColumns,
		},
		{
			name:    "same month named twice",
			header:  []string{"Kategoria", "marzec", "Marzec 2025"},
			wantErr: ErrDuplicateMonth,
		},
		{
			name:    "same month by name and number",
			header:  []string{"Kategoria", "3", "marzec"},
			wantErr: ErrDuplicateMonth,
		},
		{
			name:    "empty header",
			header:  nil,
			wantErr: ErrNoMonthColumns,
		},
		{
			name:    "thirteen positional columns",
			header:  []string{"Kategoria", "a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m"},
			wantErr: ErrTooManyMonths,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveMonths(tt.header)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveMonths() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveMonths() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveMonths() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveMonths_FullYearWithTotals(t *testing.T) {
	header := []string{"Kategoria",
		"styczeń", "luty", "marzec", "kwiecień", "maj", "czerwiec",
		"lipiec", "sierpień", "wrzesień", "październik", "listopad", "grudzień",
		"Suma"}

	got, err := ResolveMonths(header)
	if err != nil {
		t.Fatalf("ResolveMonths() unexpected error: %v", err)
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveMonths() = %v, want %v", got, want)
	}
}

func TestResolveMonths_DuplicateNamesColumns(t *testing.T) {
	_, err := ResolveMonths([]string{"Kategoria", "styczeń", "grudzień", "Grudzień"})
	if err == nil {
		t.Fatal("ResolveMonths() expected error")
	}
	want := `header names the same month twice: columns 3 ("grudzień") and 4 ("Grudzień") are both month 12`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

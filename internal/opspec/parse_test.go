// internal/opspec/parse_test.go
package opspec

import (
	"errors"
	"testing"

	"seqedit/core/edit"
)

func mustParse(t *testing.T, line string) edit.Operation {
	t.Helper()
	op, err := ParseLine(line)
	if err != nil {
		t.Fatalf("parse %q: %v", line, err)
	}
	return op
}

func TestParseOK(t *testing.T) {
	tests := []struct {
		line string
		want edit.Operation
	}{
		{"delete 10 20", edit.Delete{Start: 10, End: 20}},
		{"DELETE 5 5", edit.Delete{Start: 5, End: 5}},
		{"insert 15 atcg", edit.Insert{Position: 15, Bases: "ATCG"}},
		{"invert 25 35", edit.Invert{Start: 25, End: 35}},
		{"invert --complement 25 35", edit.Invert{Start: 25, End: 35, Complement: true}},
		{"invert 25 --complement 35", edit.Invert{Start: 25, End: 35, Complement: true}},
		{"duplicate 10 20 50", edit.Duplicate{Start: 10, End: 20, Position: 50}},
		{"duplicate -td 10 20", edit.TandemDuplicate{Start: 10, End: 20}},
		{"duplicate 10 20 --tandem", edit.TandemDuplicate{Start: 10, End: 20}},
		{"copyback 5 50 20", edit.Copyback{End: edit.FivePrime, Breakpoint: 50, Backstart: 20}},
		{"copyback 3 50 20", edit.Copyback{End: edit.ThreePrime, Breakpoint: 50, Backstart: 20}},
		{"copyback -sb 5 50", edit.Copyback{End: edit.FivePrime, Breakpoint: 50, Backstart: 50}},
		{"copyback --snapback 3' 7", edit.Copyback{End: edit.ThreePrime, Breakpoint: 7, Backstart: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := mustParse(t, tt.line); got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line string
		is   error // optional sentinel
	}{
		{"", ErrNoOperation},
		{"splice 1 2", ErrUnknownOperation},
		{"delete 1", nil},
		{"delete a 2", nil},
		{"delete 0 2", nil},
		{"delete -1 2", nil},
		{"delete 5 2", edit.ErrCoordinateOrder},
		{"insert 3", nil},
		{"insert 0 ACGT", nil},
		{"insert 3 ACGU", edit.ErrInvalidBases},
		{"invert --complement 5", nil},
		{"invert 9 4", edit.ErrCoordinateOrder},
		{"duplicate 1 2", nil},
		{"duplicate -td 1 2 3", nil},
		{"duplicate 1 2 0", nil},
		{"copyback 5 50", nil},
		{"copyback 4 50 20", edit.ErrInvalidGenomeEnd},
		{"copyback 5 20 20", edit.ErrCoordinateOrder},
		{"copyback 3 20 30", edit.ErrCoordinateOrder},
		{"copyback -sb 5", nil},
		{"copyback -sb 5 0", nil},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseLine(tt.line)
			if err == nil {
				t.Fatalf("expected error for %q", tt.line)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("error %v does not wrap %v", err, tt.is)
			}
		})
	}
}

func TestParseRoundTripsString(t *testing.T) {
	for _, line := range []string{
		"delete 3 5",
		"insert 15 ATCG",
		"invert --complement 25 35",
		"duplicate 10 20 50",
		"duplicate -td 10 20",
		"copyback 3 50 20",
		"copyback -sb 5 50",
	} {
		if got := mustParse(t, line).String(); got != line {
			t.Errorf("String() = %q, want %q", got, line)
		}
	}
}

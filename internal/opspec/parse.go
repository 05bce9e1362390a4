// internal/opspec/parse.go
package opspec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"seqedit/core/dna"
	"seqedit/core/edit"
)

// Operation names accepted as the first argument.
const (
	OpDelete    = "delete"
	OpInsert    = "insert"
	OpInvert    = "invert"
	OpDuplicate = "duplicate"
	OpCopyback  = "copyback"
)

// Flags recognised among operation arguments.
const (
	FlagComplement = "--complement"
	FlagTandem     = "-td"
	FlagSnapback   = "-sb"
)

var (
	// ErrNoOperation is returned for an empty argument list.
	ErrNoOperation = errors.New("no operation specified")

	// ErrUnknownOperation is returned for an unrecognised operation name.
	ErrUnknownOperation = errors.New("unknown operation")

	errOneBased = errors.New("positions must be 1-based (starting from 1)")
	errOrder    = fmt.Errorf("start position must be <= end position: %w", edit.ErrCoordinateOrder)
)

// ParseLine splits s on whitespace and parses it, e.g. "invert --complement 25 35".
func ParseLine(s string) (edit.Operation, error) {
	return Parse(strings.Fields(s))
}

// Parse turns an operation argument vector (operation name first) into a
// validated edit.Operation.
func Parse(args []string) (edit.Operation, error) {
	if len(args) == 0 {
		return nil, ErrNoOperation
	}
	switch strings.ToLower(args[0]) {
	case OpDelete:
		return parseDelete(args[1:])
	case OpInsert:
		return parseInsert(args[1:])
	case OpInvert:
		return parseInvert(args[1:])
	case OpDuplicate:
		return parseDuplicate(args[1:])
	case OpCopyback:
		return parseCopyback(args[1:])
	}
	return nil, fmt.Errorf("%w %q (use delete, insert, invert, duplicate or copyback)", ErrUnknownOperation, args[0])
}

func parseDelete(args []string) (edit.Operation, error) {
	if len(args) != 2 {
		return nil, errors.New("delete operation requires start and end positions")
	}
	start, end, err := parseRange(args[0], args[1])
	if err != nil {
		return nil, err
	}
	return edit.Delete{Start: start, End: end}, nil
}

func parseInsert(args []string) (edit.Operation, error) {
	if len(args) != 2 {
		return nil, errors.New("insert operation requires position and sequence")
	}
	pos, err := parsePos(args[0], "position")
	if err != nil {
		return nil, err
	}
	bases, err := dna.ValidateBases(dna.Normalize(args[1]))
	if err != nil {
		return nil, err
	}
	return edit.Insert{Position: pos, Bases: bases}, nil
}

func parseInvert(args []string) (edit.Operation, error) {
	flags, pos := splitFlags(args, FlagComplement)
	if len(pos) != 2 {
		return nil, errors.New("invert operation requires start and end positions")
	}
	start, end, err := parseRange(pos[0], pos[1])
	if err != nil {
		return nil, err
	}
	return edit.Invert{Start: start, End: end, Complement: flags[FlagComplement]}, nil
}

func parseDuplicate(args []string) (edit.Operation, error) {
	flags, pos := splitFlags(args, FlagTandem)
	if flags[FlagTandem] {
		if len(pos) != 2 {
			return nil, errors.New("tandem duplicate operation requires start and end positions")
		}
		start, end, err := parseRange(pos[0], pos[1])
		if err != nil {
			return nil, err
		}
		return edit.TandemDuplicate{Start: start, End: end}, nil
	}

	if len(pos) != 3 {
		return nil, errors.New("duplicate operation requires start, end, and insert positions")
	}
	start, end, err := parseRange(pos[0], pos[1])
	if err != nil {
		return nil, err
	}
	at, err := parsePos(pos[2], "insert position")
	if err != nil {
		return nil, err
	}
	return edit.Duplicate{Start: start, End: end, Position: at}, nil
}

func parseCopyback(args []string) (edit.Operation, error) {
	flags, pos := splitFlags(args, FlagSnapback)
	if flags[FlagSnapback] {
		if len(pos) != 2 {
			return nil, errors.New("copyback with -sb flag requires gend and breakpoint")
		}
		gend, err := parseGenomeEnd(pos[0])
		if err != nil {
			return nil, err
		}
		bp, err := parsePos(pos[1], "breakpoint")
		if err != nil {
			return nil, err
		}
		return edit.Copyback{End: gend, Breakpoint: bp, Backstart: bp}, nil
	}

	if len(pos) != 3 {
		return nil, errors.New("copyback operation requires gend, breakpoint, and backstart")
	}
	gend, err := parseGenomeEnd(pos[0])
	if err != nil {
		return nil, err
	}
	bp, err := parsePos(pos[1], "breakpoint")
	if err != nil {
		return nil, err
	}
	bs, err := parsePos(pos[2], "backstart")
	if err != nil {
		return nil, err
	}
	// Same rule for both ends; a snapback is requested with -sb instead.
	if bs >= bp {
		return nil, fmt.Errorf("for %v end, backstart must be less than breakpoint: %w", gend, edit.ErrCoordinateOrder)
	}
	return edit.Copyback{End: gend, Breakpoint: bp, Backstart: bs}, nil
}

/* ---------------- small helpers ---------------- */

// longFlags maps accepted long spellings onto the short flags.
var longFlags = map[string]string{
	"--tandem":   FlagTandem,
	"--snapback": FlagSnapback,
}

// splitFlags separates the named flags (anywhere in args) from positionals.
func splitFlags(args []string, names ...string) (map[string]bool, []string) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	set := make(map[string]bool, len(names))
	pos := make([]string, 0, len(args))
	for _, a := range args {
		name := a
		if alias, ok := longFlags[a]; ok {
			name = alias
		}
		if want[name] {
			set[name] = true
			continue
		}
		pos = append(pos, a)
	}
	return set, pos
}

func parsePos(s, what string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a number, got %q", what, s)
	}
	if v == 0 {
		return 0, errOneBased
	}
	return v, nil
}

func parseRange(a, b string) (int, int, error) {
	start, err := parsePos(a, "start position")
	if err != nil {
		return 0, 0, err
	}
	end, err := parsePos(b, "end position")
	if err != nil {
		return 0, 0, err
	}
	if start > end {
		return 0, 0, errOrder
	}
	return start, end, nil
}

func parseGenomeEnd(s string) (edit.GenomeEnd, error) {
	switch strings.TrimSuffix(s, "'") {
	case "5":
		return edit.FivePrime, nil
	case "3":
		return edit.ThreePrime, nil
	}
	return 0, edit.ErrInvalidGenomeEnd
}


// core/edit/operation.go
package edit

import "fmt"

// Kind names an operation variant.
type Kind string

const (
	KindDelete          Kind = "delete"
	KindInsert          Kind = "insert"
	KindInvert          Kind = "invert"
	KindDuplicate       Kind = "duplicate"
	KindTandemDuplicate Kind = "tandem-duplicate"
	KindCopyback        Kind = "copyback"
)

// Operation is one edit request. The set of variants is closed: Delete, Insert,
// Invert, Duplicate, TandemDuplicate and Copyback.
type Operation interface {
	Kind() Kind
	// String renders the operation in command-line form, e.g. "delete 3 5".
	String() string
	apply(seq string) (string, string, error)
}

// Delete removes bases Start..End.
type Delete struct {
	Start, End int
}

// Insert places Bases before Position. Position len+1 appends.
type Insert struct {
	Position int
	Bases    string
}

// Invert reverses Start..End, or reverse-complements it when Complement is set.
type Invert struct {
	Start, End int
	Complement bool
}

// Duplicate copies Start..End and inserts the copy before Position of the
// original sequence.
type Duplicate struct {
	Start, End int
	Position   int
}

// TandemDuplicate copies Start..End directly after itself.
type TandemDuplicate struct {
	Start, End int
}

// GenomeEnd selects the strand end a copyback is modelled on.
type GenomeEnd int

const (
	FivePrime  GenomeEnd = 5
	ThreePrime GenomeEnd = 3
)

func (g GenomeEnd) String() string {
	switch g {
	case FivePrime:
		return "5'"
	case ThreePrime:
		return "3'"
	}
	return fmt.Sprintf("GenomeEnd(%d)", int(g))
}

// Copyback keeps the first Breakpoint bases and appends the reverse complement
// of the first Backstart bases. For ThreePrime the whole sequence is reverse
// complemented first. Backstart == Breakpoint is a snapback.
type Copyback struct {
	End        GenomeEnd
	Breakpoint int
	Backstart  int
}

// Snapback reports whether the copyback folds back at its own breakpoint.
func (c Copyback) Snapback() bool { return c.Backstart == c.Breakpoint }

func (Delete) Kind() Kind          { return KindDelete }
func (Insert) Kind() Kind          { return KindInsert }
func (Invert) Kind() Kind          { return KindInvert }
func (Duplicate) Kind() Kind       { return KindDuplicate }
func (TandemDuplicate) Kind() Kind { return KindTandemDuplicate }
func (Copyback) Kind() Kind        { return KindCopyback }

func (o Delete) String() string { return fmt.Sprintf("delete %d %d", o.Start, o.End) }
func (o Insert) String() string { return fmt.Sprintf("insert %d %s", o.Position, o.Bases) }

func (o Invert) String() string {
	if o.Complement {
		return fmt.Sprintf("invert --complement %d %d", o.Start, o.End)
	}
	return fmt.Sprintf("invert %d %d", o.Start, o.End)
}

func (o Duplicate) String() string {
	return fmt.Sprintf("duplicate %d %d %d", o.Start, o.End, o.Position)
}

func (o TandemDuplicate) String() string {
	return fmt.Sprintf("duplicate -td %d %d", o.Start, o.End)
}

func (o Copyback) String() string {
	if o.Snapback() {
		return fmt.Sprintf("copyback -sb %d %d", int(o.End), o.Breakpoint)
	}
	return fmt.Sprintf("copyback %d %d %d", int(o.End), o.Breakpoint, o.Backstart)
}

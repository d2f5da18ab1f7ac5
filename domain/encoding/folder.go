package encoding

import "strings"

// FoldState is the state of a Folder.
type FoldState int

const (
	// Uninitialized means no row has been seen and the carry is undefined.
	Uninitialized FoldState = iota
	// Rolling means the column width is fixed and the carry holds the
	// previous row's resolved values.
	Rolling
)

func (s FoldState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Rolling:
		return "rolling"
	default:
		return "unknown"
	}
}

// Folder accumulates rendered rows in input order while carrying each
// column's last resolved value forward. The zero value is ready to use.
type Folder struct {
	state FoldState
	carry []int
	rows  []string
}

// State returns the folder's current state.
func (f *Folder) State() FoldState {
	return f.state
}

// Carry returns a copy of the carry state.
func (f *Folder) Carry() []int {
	out := make([]int, len(f.carry))
	copy(out, f.carry)
	return out
}

// Push renders row against the current carry, then replaces the carry with
// the row resolved against that same pre-update carry. On error the folder is
// unchanged.
func (f *Folder) Push(row []string) error {
	carry := f.carry
	if f.state == Uninitialized {
		carry = make([]int, len(row))
	}

	index := len(f.rows)
	rendered, err := RenderRow(index, row, carry)
	if err != nil {
		return err
	}
	next, err := ResolveRow(index, row, carry)
	if err != nil {
		return err
	}

	f.state = Rolling
	f.rows = append(f.rows, rendered)
	f.carry = next
	return nil
}

// Literal returns the folded rows joined with ",\n" inside an outer brace pair.
func (f *Folder) Literal() string {
	return "{" + strings.Join(f.rows, ",\n") + "}"
}

// EncodeTable folds all rows and returns the table literal. No partial
// literal is returned on error.
func EncodeTable(rows [][]string) (string, error) {
	var f Folder
	for _, row := range rows {
		if err := f.Push(row); err != nil {
			return "", err
		}
	}
	return f.Literal(), nil
}

// Package encoding turns rows of symbolic table cells into a C array-of-structs
// initializer. Cells are resolved to integers column by column, and an empty
// cell repeats the value its column resolved to in the previous row.
package encoding

import (
	"strconv"
	"strings"

	"tripgen/internal/errors"
)

// Cell symbols with a fixed meaning.
const (
	SymbolNotApplicable = "N/A"
	SymbolPlus          = "+"
	SymbolMinus         = "-"
)

// Resolve maps one trimmed cell token to its integer value. carry is the value
// the same column resolved to in the previous row, or 0 for the first row.
//
// Only the exact token "-" is the minus symbol; "-7" parses as -7.
func Resolve(token string, carry int) (int, error) {
	switch token {
	case SymbolNotApplicable:
		return 0, nil
	case SymbolPlus:
		return 1, nil
	case SymbolMinus:
		return -1, nil
	case "":
		return carry, nil
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.ParseError(token, err)
	}
	return v, nil
}

// ResolveRow resolves every cell of row against carry, trimming each cell
// first. carry is not modified. rowIndex is 0-based and only used to label
// errors.
func ResolveRow(rowIndex int, row []string, carry []int) ([]int, error) {
	if len(row) != len(carry) {
		return nil, errors.ShapeError(rowIndex+1, len(row), len(carry))
	}
	out := make([]int, len(row))
	for i, cell := range row {
		v, err := Resolve(strings.TrimSpace(cell), carry[i])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d, column %d", rowIndex+1, i+1)
		}
		out[i] = v
	}
	return out, nil
}

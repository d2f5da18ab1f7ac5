package encoding

import (
	"strconv"
	"strings"
)

// FormatValues renders values as a brace-wrapped initializer list: {1, -1, 0}.
func FormatValues(values []int) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('}')
	return b.String()
}

// RenderRow resolves row against carry and renders the result. carry is
// left untouched.
func RenderRow(rowIndex int, row []string, carry []int) (string, error) {
	values, err := ResolveRow(rowIndex, row, carry)
	if err != nil {
		return "", err
	}
	return FormatValues(values), nil
}

// Declare wraps a literal as the initializer of a C declarator, e.g.
// "struct TripletEncoding tripletEncodings[]". An empty declarator returns
// the literal unchanged.
func Declare(declarator, literal string) string {
	declarator = strings.TrimSpace(declarator)
	if declarator == "" {
		return literal
	}
	return declarator + " = " + literal + ";"
}

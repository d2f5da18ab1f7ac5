package ports

import "context"

// RowSource yields the raw cell text of a table, every row in input order.
// Implementations release whatever they opened before returning.
type RowSource interface {
	ReadRows(ctx context.Context) ([][]string, error)
}

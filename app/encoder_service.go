package app

import (
	"context"
	"io"

	"tripgen/domain/encoding"
	"tripgen/internal"
	"tripgen/internal/errors"
	"tripgen/ports"
)

// EncoderService reads a table from a RowSource and writes its struct-array literal
type EncoderService struct {
	source      ports.RowSource
	declaration string
	logger      *internal.Logger
}

// NewEncoderService creates an encoder service. declaration may be empty.
func NewEncoderService(source ports.RowSource, declaration string, logger *internal.Logger) *EncoderService {
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &EncoderService{
		source:      source,
		declaration: declaration,
		logger:      logger,
	}
}

// Encode reads every row and returns the finished output text, newline included.
func (s *EncoderService) Encode(ctx context.Context) (string, error) {
	rows, err := s.source.ReadRows(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to read table")
	}
	s.logger.Info("read %d rows", len(rows))

	literal, err := encoding.EncodeTable(rows)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode table")
	}
	s.logger.Debug("encoded %d rows", len(rows))

	return encoding.Declare(s.declaration, literal) + "\n", nil
}

// Run encodes the table and writes it to w in a single write. Nothing is
// written when encoding fails.
func (s *EncoderService) Run(ctx context.Context, w io.Writer) error {
	out, err := s.Encode(ctx)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}

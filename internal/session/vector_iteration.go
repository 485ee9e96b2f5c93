package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/numex/internal/prompt"
	"github.com/katalvlaran/numex/internal/report"
	"github.com/katalvlaran/numex/matrix"
)

// VectorIteration is the u⁽ⁿ⁾ = Aⁿ·u⁰ session over a Dim×Dim matrix.
type VectorIteration struct {
	In  *prompt.Reader
	Out *report.Printer
	Log zerolog.Logger
	Dim int
}

// Run reads A once, then loops over (u⁰, n) queries. The loop ends on n ≤ 0
// or at end of input; a malformed token ends it with an error.
func (s *VectorIteration) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.Out.Printf("Enter matrix A (%dx%d) row by row:\n", s.Dim, s.Dim)
	a, err := s.In.Matrix("A", s.Dim)
	if err != nil {
		return fmt.Errorf("session: read matrix: %w", err)
	}
	s.Log.Debug().Int("dim", s.Dim).Msg("matrix read")

	for queries := 0; ; queries++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, u0, err := s.query()
		if errors.Is(err, io.EOF) {
			s.Log.Debug().Int("queries", queries).Msg("end of input")
			break
		}
		if err != nil {
			return err
		}
		if n <= 0 {
			break
		}

		u, err := matrix.Iterate(a, u0, n)
		if err != nil {
			return fmt.Errorf("session: iterate n=%d: %w", n, err)
		}
		if !u.Finite() {
			s.Log.Warn().Int("n", n).Msg("result overflowed float32")
		}
		s.Out.Printf("\nResult u^[n] for n = %d:\n", n)
		s.Out.Vector(u)
		if err := s.Out.Err(); err != nil {
			return err
		}
	}
	s.Out.Printf("Done.\n")

	return s.Out.Err()
}

// query reads one start vector and exponent. io.EOF before the first token of
// the query is passed through; a query cut short is io.ErrUnexpectedEOF.
func (s *VectorIteration) query() (int, matrix.Vector, error) {
	s.Out.Printf("\nEnter start vector u0 (%d values):\n", s.Dim)
	u0, err := s.In.Vector("u0", s.Dim)
	if errors.Is(err, io.EOF) {
		return 0, nil, err
	}
	if err != nil {
		return 0, nil, fmt.Errorf("session: read u0: %w", err)
	}
	n, err := s.In.Int("Enter n (iterations, <= 0 to stop): ")
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return 0, nil, fmt.Errorf("session: read n: %w", err)
	}

	return n, u0, nil
}

// Package prompt reads whitespace-separated numeric tokens for the interactive
// sessions, optionally writing a prompt before each read.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/numex/matrix"
)

// ErrSyntax is wrapped when a token cannot be parsed as the requested type.
var ErrSyntax = errors.New("prompt: invalid number")

// Reader scans tokens from an io.Reader. End of input surfaces as io.EOF
// (or io.ErrUnexpectedEOF in the middle of a vector or matrix).
type Reader struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewReader returns a Reader over in. Prompts go to out; a nil out disables them.
func NewReader(in io.Reader, out io.Writer) *Reader {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	if out == nil {
		out = io.Discard
	}

	return &Reader{sc: sc, out: out}
}

func (r *Reader) token(label string) (string, error) {
	if label != "" {
		fmt.Fprint(r.out, label)
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return r.sc.Text(), nil
}

// Float64 reads one float64 token.
func (r *Reader) Float64(label string) (float64, error) {
	tok, err := r.token(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrSyntax, tok, err)
	}

	return v, nil
}

// Int reads one base-10 integer token.
func (r *Reader) Int(label string) (int, error) {
	tok, err := r.token(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrSyntax, tok, err)
	}

	return v, nil
}

// float32Token reads one token parsed at float32 precision.
func (r *Reader) float32Token(label string) (float32, error) {
	tok, err := r.token(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrSyntax, tok, err)
	}

	return float32(v), nil
}

// Vector reads d float32 values, prompting "name[i] = " for each.
func (r *Reader) Vector(name string, d int) (matrix.Vector, error) {
	u, err := matrix.NewVector(d)
	if err != nil {
		return nil, err
	}
	for i := range u {
		if u[i], err = r.float32Token(fmt.Sprintf("%s[%d] = ", name, i)); err != nil {
			return nil, midRead(err, i)
		}
	}

	return u, nil
}

// Matrix reads a d×d matrix row by row, prompting "name[i][j] = " for each entry.
func (r *Reader) Matrix(name string, d int) (*matrix.Dense, error) {
	if d < 1 {
		return nil, matrix.ErrInvalidDimensions
	}
	vals := make([]float32, d*d)
	for k := range vals {
		v, err := r.float32Token(fmt.Sprintf("%s[%d][%d] = ", name, k/d, k%d))
		if err != nil {
			return nil, midRead(err, k)
		}
		vals[k] = v
	}

	return matrix.NewDenseFrom(d, d, vals)
}

// midRead turns io.EOF after the first element into io.ErrUnexpectedEOF.
func midRead(err error, read int) error {
	if read > 0 && errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}

	return err
}

package gfa

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// Reader streams records from GFA text, one line at a time.
type Reader struct {
	r    *bufio.Reader
	line int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int { return r.line }

// Read returns the next record. At end of input it returns io.EOF.
//
// A malformed segment or link line returns a [*RecordError]; the reader has
// already advanced past that line, so the caller may keep reading. Any other
// error comes from the underlying reader and is terminal.
func (r *Reader) Read() (Record, error) {
	text, err := r.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read line %d: %w", r.line+1, err)
		}
		if text == "" {
			return nil, io.EOF
		}
	}
	r.line++
	return ParseLine(text, r.line)
}

// Policy decides what [Scan] does with a malformed record.
type Policy int

const (
	// PolicyStrict aborts on the first malformed record.
	PolicyStrict Policy = iota
	// PolicySkip reports malformed records and continues.
	PolicySkip
)

// String returns "strict" or "skip".
func (p Policy) String() string {
	if p == PolicySkip {
		return "skip"
	}
	return "strict"
}

// ScanOptions configures [Scan].
type ScanOptions struct {
	Policy Policy
	// OnSkip is called for every record dropped under PolicySkip. May be nil.
	OnSkip func(*RecordError)
}

// Scan reads every record from r and calls fn for each one in input order.
//
// Under PolicyStrict the first malformed record is returned as the error
// (it matches [ErrMalformedRecord]). Under PolicySkip it is passed to
// opts.OnSkip and the scan continues. Scan stops early if fn returns an
// error or ctx is cancelled.
func Scan(ctx context.Context, r io.Reader, opts ScanOptions, fn func(Record) error) error {
	rd := NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		var recErr *RecordError
		if errors.As(err, &recErr) {
			if opts.Policy != PolicySkip {
				return recErr
			}
			if opts.OnSkip != nil {
				opts.OnSkip(recErr)
			}
			continue
		}
		if err != nil {
			return err
		}

		if err := fn(rec); err != nil {
			return err
		}
	}
}

// Package exectime sums alignment timings reported in tool logs.
//
// A timing line looks like
//
//	Local alignment took 1834.2 us
//
// The value is the first space-separated word after the prefix and is in
// microseconds.
// [Sum] adds every such value and reports the total in seconds. Lines
// whose value cannot be parsed are collected in [Result.Invalid] and left
// out of the total; they never stop the scan.
package exectime

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	seqerrors "github.com/theseus-aligner/seqtools/pkg/errors"
)

// DefaultPrefix selects the lines that carry a timing.
const DefaultPrefix = "Local alignment took "

// MicrosPerSecond converts the logged unit to seconds.
const MicrosPerSecond = 1e6

// InvalidLine is a matching line whose value could not be parsed.
type InvalidLine struct {
	Line int
	Text string
	Err  error
}

func (l InvalidLine) String() string {
	return fmt.Sprintf("Invalid time value in line: %s", l.Text)
}

// Result is the outcome of [Sum].
type Result struct {
	TotalMicros float64
	Matched     int // lines counted in the total
	Invalid     []InvalidLine
}

// Seconds returns the total in seconds.
func (r *Result) Seconds() float64 {
	return r.TotalMicros / MicrosPerSecond
}

// String formats the total the way the summary line is printed.
func (r *Result) String() string {
	return fmt.Sprintf("Execution Time: %s seconds", FormatSeconds(r.Seconds()))
}

// FormatSeconds prints v with the shortest exact representation, keeping
// a fractional part so whole numbers read as "3.0".
func FormatSeconds(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// Sum scans r for lines starting with prefix and adds their timings.
// An empty prefix means DefaultPrefix.
func Sum(ctx context.Context, r io.Reader, prefix string) (*Result, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	res := &Result{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || !strings.HasPrefix(line, prefix) {
			continue
		}

		v, err := parseValue(strings.TrimPrefix(line, prefix))
		if err != nil {
			res.Invalid = append(res.Invalid, InvalidLine{Line: lineNo, Text: line, Err: err})
			continue
		}
		res.TotalMicros += v
		res.Matched++
	}
	if err := sc.Err(); err != nil {
		return nil, seqerrors.WrapIO(err, "read log at line %d", lineNo+1)
	}
	return res, nil
}

// parseValue reads the first word of rest, the text following the prefix.
// A single space separates words, so a doubled space yields an empty word.
func parseValue(rest string) (float64, error) {
	word, _, _ := strings.Cut(rest, " ")
	if strings.TrimSpace(word) == "" {
		return 0, seqerrors.New(seqerrors.ErrCodeInvalidValue, "no value after prefix")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(word), 64)
	if err != nil {
		return 0, seqerrors.Wrap(seqerrors.ErrCodeInvalidValue, err, "parse %q", word)
	}
	return v, nil
}

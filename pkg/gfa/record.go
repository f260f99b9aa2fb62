package gfa

import (
	"errors"
	"fmt"
	"strings"
)

// Record tags recognised by [ParseLine].
const (
	TagSegment = 'S'
	TagLink    = 'L'
)

// ErrMalformedRecord is matched by every [*RecordError].
var ErrMalformedRecord = errors.New("malformed record")

// Orientation is the strand marker of a link endpoint, normally "+" or "-".
type Orientation string

const (
	Forward Orientation = "+"
	Reverse Orientation = "-"
)

// Record is a parsed GFA line: a [Segment], a [Link] or an [Other].
type Record interface {
	// LineNumber returns the 1-based input line the record came from.
	LineNumber() int
	isRecord()
}

// Segment declares a node. Sequence is "*" when the file omits it.
type Segment struct {
	Name     string
	Sequence string
	Line     int
}

// Link declares a directed edge From -> To.
type Link struct {
	From       string
	FromOrient Orientation
	To         string
	ToOrient   Orientation
	Overlap    string // CIGAR string, e.g. "0M"; empty if absent
	Line       int
}

// Other is any line that is neither a segment nor a link.
type Other struct {
	Tag  byte // first byte of the line, 0 for blank lines
	Text string
	Line int
}

func (s Segment) LineNumber() int { return s.Line }
func (l Link) LineNumber() int    { return l.Line }
func (o Other) LineNumber() int   { return o.Line }

func (Segment) isRecord() {}
func (Link) isRecord()    {}
func (Other) isRecord()   {}

// RecordError reports a segment or link line with fewer fields than
// the record type requires.
type RecordError struct {
	Line  int
	Tag   byte
	Want  int    // fields required, including the tag
	Got   int    // fields present, including the tag
	Field string // name of the first missing field
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %s record missing %s (need %d fields, got %d)",
		e.Line, recordKind(e.Tag), e.Field, e.Want, e.Got)
}

// Unwrap lets errors.Is(err, ErrMalformedRecord) match.
func (e *RecordError) Unwrap() error { return ErrMalformedRecord }

func recordKind(tag byte) string {
	switch tag {
	case TagSegment:
		return "segment"
	case TagLink:
		return "link"
	}
	return fmt.Sprintf("%q", tag)
}

var (
	segmentFields = []string{"tag", "name", "sequence"}
	linkFields    = []string{"tag", "source", "source orientation", "target"}
)

// ParseLine classifies a single line. lineNo is only used for reporting.
// The trailing newline, if any, is ignored.
func ParseLine(line string, lineNo int) (Record, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return Other{Line: lineNo}, nil
	}

	switch line[0] {
	case TagSegment:
		f := splitFields(line)
		if len(f) < len(segmentFields) {
			return nil, missing(TagSegment, lineNo, segmentFields, len(f))
		}
		return Segment{Name: f[1], Sequence: f[2], Line: lineNo}, nil

	case TagLink:
		f := splitFields(line)
		if len(f) < len(linkFields) {
			return nil, missing(TagLink, lineNo, linkFields, len(f))
		}
		l := Link{
			From:       f[1],
			FromOrient: Orientation(f[2]),
			To:         f[3],
			Line:       lineNo,
		}
		if len(f) > 4 {
			l.ToOrient = Orientation(f[4])
		}
		if len(f) > 5 {
			l.Overlap = f[5]
		}
		return l, nil
	}

	return Other{Tag: line[0], Text: line, Line: lineNo}, nil
}

func missing(tag byte, lineNo int, fields []string, got int) *RecordError {
	return &RecordError{
		Line:  lineNo,
		Tag:   tag,
		Want:  len(fields),
		Got:   got,
		Field: fields[got],
	}
}

// splitFields trims the line and splits it on runs of spaces and tabs.
func splitFields(line string) []string {
	return strings.FieldsFunc(strings.TrimSpace(line), func(r rune) bool {
		return r == ' ' || r == '\t'
	})
}

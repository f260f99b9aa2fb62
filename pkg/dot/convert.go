package dot

import (
	"context"
	"fmt"
	"io"
	"strings"

	seqerrors "github.com/theseus-aligner/seqtools/pkg/errors"
	"github.com/theseus-aligner/seqtools/pkg/gfa"
)

// ConvertOptions configures [Convert].
type ConvertOptions struct {
	Options

	// LinkLabels labels each edge with its orientations and overlap,
	// e.g. "+- 0M".
	LinkLabels bool

	// Policy and OnSkip decide what happens to malformed records.
	Policy gfa.Policy
	OnSkip func(*gfa.RecordError)
}

// Summary counts what a conversion produced.
type Summary struct {
	Nodes   int // node statements written (one per segment)
	Edges   int // edge statements written (one per link)
	Ignored int // lines that were neither segments nor links
	Skipped int // malformed records dropped under gfa.PolicySkip
}

// Convert reads GFA from r and writes the equivalent DOT digraph to w.
//
// The opening line is written before the first record and the closing line
// after the last, so an empty input still yields a complete document. On a
// malformed record under gfa.PolicyStrict, Convert returns an error wrapping
// the [*gfa.RecordError]; the output written so far is incomplete and the
// caller must discard it.
func Convert(ctx context.Context, r io.Reader, w io.Writer, opts ConvertOptions) (Summary, error) {
	var sum Summary
	dw := NewWriter(w, opts.Options)

	if err := dw.Begin(); err != nil {
		return sum, fmt.Errorf("write: %w", err)
	}

	onSkip := func(e *gfa.RecordError) {
		sum.Skipped++
		if opts.OnSkip != nil {
			opts.OnSkip(e)
		}
	}
	scan := gfa.ScanOptions{Policy: opts.Policy, OnSkip: onSkip}

	err := gfa.Scan(ctx, r, scan, func(rec gfa.Record) error {
		switch rec := rec.(type) {
		case gfa.Segment:
			return dw.Node(rec.Name, rec.Sequence)
		case gfa.Link:
			label := ""
			if opts.LinkLabels {
				label = linkLabel(rec)
			}
			return dw.Edge(rec.From, rec.To, label)
		case gfa.Other:
			sum.Ignored++
			return nil
		default:
			return seqerrors.New(seqerrors.ErrCodeInternal, "unexpected record type %T on line %d", rec, rec.LineNumber())
		}
	})
	sum.Nodes, sum.Edges = dw.Nodes(), dw.Edges()
	if err != nil {
		return sum, err
	}

	if err := dw.End(); err != nil {
		return sum, fmt.Errorf("write: %w", err)
	}
	return sum, nil
}

func linkLabel(l gfa.Link) string {
	orient := string(l.FromOrient) + string(l.ToOrient)
	return strings.TrimSpace(orient + " " + l.Overlap)
}

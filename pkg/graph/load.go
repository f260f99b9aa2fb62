package graph

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/theseus-aligner/seqtools/pkg/gfa"
)

// Load builds a Graph from GFA text.
//
// Malformed records are handled according to opts. A segment that redeclares
// an existing name does not fail the load: the first declaration wins and
// the name is listed in [Stats.Duplicates].
func Load(ctx context.Context, r io.Reader, opts gfa.ScanOptions) (*Graph, error) {
	g := New()
	err := gfa.Scan(ctx, r, opts, func(rec gfa.Record) error {
		switch rec := rec.(type) {
		case gfa.Segment:
			err := g.AddNode(Node{ID: rec.Name, Sequence: rec.Sequence})
			if errors.Is(err, ErrDuplicateNodeID) {
				g.duplicates = append(g.duplicates, rec.Name)
				return nil
			}
			if err != nil {
				return fmt.Errorf("line %d: %w", rec.Line, err)
			}
		case gfa.Link:
			if err := g.AddEdge(Edge{From: rec.From, To: rec.To, Overlap: rec.Overlap}); err != nil {
				return fmt.Errorf("line %d: %w", rec.Line, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

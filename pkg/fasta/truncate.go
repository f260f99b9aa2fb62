package fasta

import (
	"context"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	seqerrors "github.com/theseus-aligner/seqtools/pkg/errors"
)

// DefaultWidth is the line width used when writing FASTA.
const DefaultWidth = 60

var alphabets = map[string]alphabet.Alphabet{
	"dna":     alphabet.DNAredundant,
	"rna":     alphabet.RNAredundant,
	"protein": alphabet.Protein,
}

// AlphabetFor returns the biogo alphabet for "dna", "rna" or "protein".
func AlphabetFor(name string) (alphabet.Alphabet, error) {
	a, ok := alphabets[strings.ToLower(name)]
	if !ok {
		return nil, seqerrors.New(seqerrors.ErrCodeInvalidInput, "unknown alphabet %q (must be 'dna', 'rna' or 'protein')", name)
	}
	return a, nil
}

// TruncateOptions configures [Truncate].
type TruncateOptions struct {
	Length   int               // residues to keep per record
	Width    int               // output line width; DefaultWidth if zero
	Alphabet alphabet.Alphabet // DNA if nil
}

// TruncateResult counts the records processed by [Truncate].
type TruncateResult struct {
	Records   int // records written
	Shortened int // records that were longer than Length
}

// Truncate copies FASTA records from r to w, keeping only the first
// opts.Length residues of each sequence. Records already at or below that
// length are written unchanged. IDs and descriptions are preserved.
func Truncate(ctx context.Context, r io.Reader, w io.Writer, opts TruncateOptions) (TruncateResult, error) {
	var res TruncateResult
	if opts.Length < 0 {
		return res, seqerrors.New(seqerrors.ErrCodeInvalidInput, "length must be >= 0, got %d", opts.Length)
	}
	width := opts.Width
	if width == 0 {
		width = DefaultWidth
	}
	if width < 0 {
		return res, seqerrors.New(seqerrors.ErrCodeInvalidInput, "width must be >= 1, got %d", width)
	}
	alpha := opts.Alphabet
	if alpha == nil {
		alpha = alphabet.DNAredundant
	}

	fw := fasta.NewWriter(w, width)
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alpha)))
	for sc.Next() {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		s := sc.Seq().(*linear.Seq)
		if len(s.Seq) > opts.Length {
			s.Seq = s.Seq[:opts.Length]
			res.Shortened++
		}
		if _, err := fw.Write(s); err != nil {
			return res, seqerrors.WrapIO(err, "write sequence %q", s.Name())
		}
		res.Records++
	}
	if err := sc.Error(); err != nil {
		return res, seqerrors.Wrap(seqerrors.ErrCodeInvalidFormat, err, "read FASTA after %d records", res.Records)
	}
	return res, nil
}

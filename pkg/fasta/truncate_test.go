package fasta

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	seqerrors "github.com/theseus-aligner/seqtools/pkg/errors"
)

const truncateInput = `>s1 first record
ACGTACGTAC
GTACGT
>s2
ACG
>s3 exact
ACGTA
`

type record struct {
	id, desc, seq string
}

func readRecords(t *testing.T, data string) []record {
	t.Helper()
	r := fasta.NewReader(strings.NewReader(data), linear.NewSeq("", nil, alphabet.DNAredundant))
	var out []record
	for {
		s, err := r.Read()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("re-read output: %v", err)
		}
		ls := s.(*linear.Seq)
		out = append(out, record{ls.Name(), ls.Description(), alphabet.Letters(ls.Seq).String()})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		want      []record
		shortened int
	}{
		{
			name:   "cuts longer records",
			length: 5,
			want: []record{
				{"s1", "first record", "ACGTA"},
				{"s2", "", "ACG"},
				{"s3", "exact", "ACGTA"},
			},
			shortened: 1,
		},
		{
			name:   "longer than every record",
			length: 100,
			want: []record{
				{"s1", "first record", "ACGTACGTACGTACGT"},
				{"s2", "", "ACG"},
				{"s3", "exact", "ACGTA"},
			},
		},
		{
			name:   "one residue",
			length: 1,
			want: []record{
				{"s1", "first record", "A"},
				{"s2", "", "A"},
				{"s3", "exact", "A"},
			},
			shortened: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			res, err := Truncate(context.Background(), strings.NewReader(truncateInput), &buf, TruncateOptions{Length: tt.length})
			if err != nil {
				t.Fatalf("Truncate() error: %v", err)
			}
			if res.Records != 3 || res.Shortened != tt.shortened {
				t.Errorf("result = %+v, want 3 records, %d shortened", res, tt.shortened)
			}
			got := readRecords(t, buf.String())
			if len(got) != len(tt.want) {
				t.Fatalf("got %d records, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("record %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	var buf bytes.Buffer
	_, err := Truncate(context.Background(), strings.NewReader(truncateInput), &buf, TruncateOptions{Length: 10, Width: 4})
	if err != nil {
		t.Fatalf("Truncate() error: %v", err)
	}
	if !strings.Contains(buf.String(), ">s1 first record\nACGT\nACGT\nAC\n") {
		t.Errorf("output not wrapped at 4 columns:\n%s", buf.String())
	}
}

func TestTruncateEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	res, err := Truncate(context.Background(), strings.NewReader(""), &buf, TruncateOptions{Length: 3})
	if err != nil {
		t.Fatalf("Truncate() error: %v", err)
	}
	if res.Records != 0 || buf.Len() != 0 {
		t.Errorf("result = %+v, output = %q", res, buf.String())
	}
}

func TestTruncateInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts TruncateOptions
	}{
		{"negative length", TruncateOptions{Length: -1}},
		{"negative width", TruncateOptions{Length: 3, Width: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Truncate(context.Background(), strings.NewReader(truncateInput), io.Discard, tt.opts)
			if !seqerrors.Is(err, seqerrors.ErrCodeInvalidInput) {
				t.Errorf("Truncate() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestTruncateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Truncate(ctx, strings.NewReader(truncateInput), io.Discard, TruncateOptions{Length: 3}); err == nil {
		t.Error("Truncate() should fail when cancelled")
	}
}

func TestAlphabetFor(t *testing.T) {
	tests := []struct {
		name string
		want alphabet.Alphabet
		ok   bool
	}{
		{"dna", alphabet.DNAredundant, true},
		{"RNA", alphabet.RNAredundant, true},
		{"protein", alphabet.Protein, true},
		{"codon", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AlphabetFor(tt.name)
			if (err == nil) != tt.ok {
				t.Fatalf("AlphabetFor(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("AlphabetFor(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

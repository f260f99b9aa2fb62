package gfa

import (
	"errors"
	"testing"
)

func TestParseLineSegment(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Segment
	}{
		{"tab separated", "S\t1\tACGT\n", Segment{Name: "1", Sequence: "ACGT", Line: 7}},
		{"space separated", "S 2 TTTT", Segment{Name: "2", Sequence: "TTTT", Line: 7}},
		{"mixed runs", "S \t 3\t\t  GG  \r\n", Segment{Name: "3", Sequence: "GG", Line: 7}},
		{"optional tags", "S\ts1\tACGT\tLN:i:4", Segment{Name: "s1", Sequence: "ACGT", Line: 7}},
		{"unknown sequence", "S\ts1\t*", Segment{Name: "s1", Sequence: "*", Line: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseLine(tt.line, 7)
			if err != nil {
				t.Fatalf("ParseLine() error: %v", err)
			}
			got, ok := rec.(Segment)
			if !ok {
				t.Fatalf("ParseLine() = %T, want Segment", rec)
			}
			if got != tt.want {
				t.Errorf("ParseLine() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseLineLink(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Link
	}{
		{
			name: "full link",
			line: "L\t1\t+\t2\t-\t0M",
			want: Link{From: "1", FromOrient: Forward, To: "2", ToOrient: Reverse, Overlap: "0M", Line: 1},
		},
		{
			name: "space separated",
			line: "L 1 + 2 + 0M",
			want: Link{From: "1", FromOrient: Forward, To: "2", ToOrient: Forward, Overlap: "0M", Line: 1},
		},
		{
			name: "target only",
			line: "L a + b",
			want: Link{From: "a", FromOrient: Forward, To: "b", Line: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseLine(tt.line, 1)
			if err != nil {
				t.Fatalf("ParseLine() error: %v", err)
			}
			got, ok := rec.(Link)
			if !ok {
				t.Fatalf("ParseLine() = %T, want Link", rec)
			}
			if got != tt.want {
				t.Errorf("ParseLine() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseLineOther(t *testing.T) {
	tests := []struct {
		name string
		line string
		tag  byte
	}{
		{"header", "H\tVN:Z:1.0", 'H'},
		{"path", "P\tp1\t1+,2+\t*", 'P'},
		{"comment", "# header", '#'},
		{"blank", "", 0},
		{"newline only", "\n", 0},
		{"leading space", " S 1 ACGT", ' '},
		{"lowercase s", "s 1 ACGT", 's'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseLine(tt.line, 3)
			if err != nil {
				t.Fatalf("ParseLine() error: %v", err)
			}
			got, ok := rec.(Other)
			if !ok {
				t.Fatalf("ParseLine() = %T, want Other", rec)
			}
			if got.Tag != tt.tag {
				t.Errorf("Tag = %q, want %q", got.Tag, tt.tag)
			}
			if got.LineNumber() != 3 {
				t.Errorf("LineNumber() = %d, want 3", got.LineNumber())
			}
		})
	}
}

func TestParseLineMalformed(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		tag   byte
		got   int
		field string
	}{
		{"segment without label", "S\t1", TagSegment, 2, "sequence"},
		{"segment tag only", "S", TagSegment, 1, "name"},
		{"segment trailing tab", "S\t1\t\n", TagSegment, 2, "sequence"},
		{"link without target", "L\t1\t+", TagLink, 3, "target"},
		{"link source only", "L 1", TagLink, 2, "source orientation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseLine(tt.line, 12)
			if err == nil {
				t.Fatalf("ParseLine() = %+v, want error", rec)
			}
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("errors.Is(err, ErrMalformedRecord) = false for %v", err)
			}
			var re *RecordError
			if !errors.As(err, &re) {
				t.Fatalf("error %T is not *RecordError", err)
			}
			if re.Line != 12 || re.Tag != tt.tag || re.Got != tt.got || re.Field != tt.field {
				t.Errorf("RecordError = %+v, want line 12 tag %q got %d field %q", re, tt.tag, tt.got, tt.field)
			}
		})
	}
}

func TestRecordErrorMessage(t *testing.T) {
	_, err := ParseLine("S\t1", 4)
	want := "line 4: segment record missing sequence (need 3 fields, got 2)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

package errors

import (
	"testing"
)

func TestValidateArchivePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple file", "genome.fna", false},
		{"nested", "sample/chr1.fna", false},
		{"dots in name", "a..b.fna", false},

		{"empty", "", true},
		{"absolute", "/etc/passwd", true},
		{"parent traversal", "../escape.fna", true},
		{"nested traversal", "a/../../b.fna", true},
		{"backslash", "a\\b.fna", true},
		{"null byte", "a\x00b", true},
		{"newline", "a\nb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArchivePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateArchivePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateArchivePath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"fna", ".fna", false},
		{"fasta", ".fasta", false},

		{"empty", "", true},
		{"dot only", ".", true},
		{"missing dot", "fna", true},
		{"separator", "./x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtension(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExtension(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

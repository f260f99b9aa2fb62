package dot

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	var doc bytes.Buffer
	_, err := Convert(context.Background(), strings.NewReader("S 1 ACGT\nS 2 TTTT\nL 1 + 2 + 0M\n"), &doc, ConvertOptions{})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	svg, err := RenderSVG(context.Background(), doc.Bytes())
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
	if !strings.Contains(string(svg), "ACGT") {
		t.Error("RenderSVG() output missing node label")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	_, err := RenderSVG(context.Background(), []byte(`not valid DOT {{{`))
	if err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	_, err := Render(context.Background(), []byte(`digraph G { a -> b; }`), "pdf")
	if err == nil {
		t.Error("Render() should reject pdf")
	}
}

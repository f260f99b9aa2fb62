package dot

import (
	"bufio"
	"io"
	"strings"
)

// Options controls how statements are written.
type Options struct {
	// RawLabels embeds labels verbatim, without escaping.
	RawLabels bool
	// QuoteIDs writes node identifiers as quoted, escaped strings.
	QuoteIDs bool
}

// Writer emits a DOT digraph one statement at a time.
// The first write error is kept and returned by every later call.
type Writer struct {
	w     *bufio.Writer
	opts  Options
	nodes int
	edges int
	err   error
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer, opts Options) *Writer {
	return &Writer{w: bufio.NewWriter(w), opts: opts}
}

// Begin writes the graph-opening line.
func (w *Writer) Begin() error {
	return w.write("digraph G {\n")
}

// Node writes `<id> [label="<label>"]`.
func (w *Writer) Node(id, label string) error {
	if err := w.write(w.id(id), ` [label="`, w.label(label), "\"]\n"); err != nil {
		return err
	}
	w.nodes++
	return nil
}

// Edge writes `<from> -> <to>;`, with a label attribute when label is non-empty.
func (w *Writer) Edge(from, to, label string) error {
	var err error
	if label == "" {
		err = w.write(w.id(from), " -> ", w.id(to), ";\n")
	} else {
		err = w.write(w.id(from), " -> ", w.id(to), ` [label="`, w.label(label), "\"];\n")
	}
	if err != nil {
		return err
	}
	w.edges++
	return nil
}

// End writes the closing brace and flushes.
func (w *Writer) End() error {
	if err := w.write("}\n"); err != nil {
		return err
	}
	if err := w.w.Flush(); err != nil {
		w.err = err
	}
	return w.err
}

// Nodes returns the number of node statements written.
func (w *Writer) Nodes() int { return w.nodes }

// Edges returns the number of edge statements written.
func (w *Writer) Edges() int { return w.edges }

func (w *Writer) write(parts ...string) error {
	if w.err != nil {
		return w.err
	}
	for _, p := range parts {
		if _, err := w.w.WriteString(p); err != nil {
			w.err = err
			return err
		}
	}
	return nil
}

func (w *Writer) id(s string) string {
	if w.opts.QuoteIDs {
		return `"` + Escape(s) + `"`
	}
	return s
}

func (w *Writer) label(s string) string {
	if w.opts.RawLabels {
		return s
	}
	return Escape(s)
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", "")

// Escape makes s safe inside a double-quoted DOT string.
func Escape(s string) string {
	if !strings.ContainsAny(s, "\\\"\n\r") {
		return s
	}
	return escaper.Replace(s)
}

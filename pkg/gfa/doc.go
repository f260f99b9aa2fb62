// Package gfa reads the segment and link records of a GFA graph file.
//
// GFA is a line-oriented, tab-separated format. This package understands the
// two record types needed to recover a graph's nodes and edges:
//
//	S  <name>  <sequence>  [tags...]
//	L  <from>  <orient>  <to>  <orient>  <overlap>  [tags...]
//
// Every other line (headers, paths, comments, blank lines) is returned as an
// [Other] record so callers can ignore it without special-casing.
//
// # Records
//
// [ParseLine] is the single classification step. It returns one of
// [Segment], [Link] or [Other], and callers type-switch on the result:
//
//	switch rec := rec.(type) {
//	case gfa.Segment:
//	    // rec.Name, rec.Sequence
//	case gfa.Link:
//	    // rec.From -> rec.To
//	case gfa.Other:
//	    // ignored
//	}
//
// A line is classified by its first character only. Fields are separated by
// runs of spaces or tabs. A segment needs a name and a sequence; a link needs
// a source, an orientation and a target. Orientations and overlaps are kept
// when present but are not validated.
//
// # Malformed records
//
// A segment or link line with too few fields yields a [*RecordError] that
// matches [ErrMalformedRecord] via errors.Is. [Scan] applies a [Policy]:
// [PolicyStrict] stops at the first malformed record, [PolicySkip] reports it
// through a callback and continues.
//
// # Streaming
//
// [Reader] never holds more than one line in memory. Lines of any length are
// supported, which matters for segments that carry whole chromosomes.
package gfa

// Package fasta merges and trims FASTA files.
//
// [Combine] concatenates every sequence file found under a directory, or
// inside a .zip or .gz archive, into a single FASTA file. [Truncate] cuts
// every record of a FASTA stream down to a fixed number of residues.
//
// Archives are decompressed with github.com/klauspost/compress into a
// uniquely named sibling directory that is always removed afterwards.
// FASTA records are read and written with github.com/biogo/biogo.
package fasta

package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	seqerrors "github.com/theseus-aligner/seqtools/pkg/errors"
)

// stdioPath selects stdin or stdout in place of a file name.
const stdioPath = "-"

// output is a destination that only becomes visible once committed.
type output interface {
	io.Writer
	// Commit publishes everything written so far.
	Commit() error
	// Abort discards the output. It is a no-op after Commit.
	Abort()
	// Name is the path shown to the user.
	Name() string
}

// openOutput returns stdout for "-" and an atomic file otherwise.
func openOutput(cmd *cobra.Command, path string) (output, error) {
	if path == stdioPath {
		return stdoutOutput{cmd.OutOrStdout()}, nil
	}
	return createAtomic(path)
}

type stdoutOutput struct{ io.Writer }

func (stdoutOutput) Commit() error { return nil }
func (stdoutOutput) Abort()        {}
func (stdoutOutput) Name() string  { return "<stdout>" }

// atomicFile writes to a hidden temporary file next to path and renames it
// into place on Commit, so path is never left half written.
type atomicFile struct {
	*os.File
	path string
	done bool
}

func createAtomic(path string) (*atomicFile, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, seqerrors.WrapIO(err, "create output directory %s", dir)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, seqerrors.WrapIO(err, "create %s", path)
	}
	return &atomicFile{File: f, path: path}, nil
}

func (f *atomicFile) Name() string { return f.path }

func (f *atomicFile) Commit() error {
	if f.done {
		return nil
	}
	f.done = true
	tmp := f.File.Name()
	if err := f.File.Close(); err != nil {
		os.Remove(tmp)
		return seqerrors.WrapIO(err, "write %s", f.path)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return seqerrors.WrapIO(err, "write %s", f.path)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return seqerrors.WrapIO(err, "write %s", f.path)
	}
	return nil
}

func (f *atomicFile) Abort() {
	if f.done {
		return
	}
	f.done = true
	f.File.Close()
	os.Remove(f.File.Name())
}

// openInput returns stdin for "-" and the named file otherwise.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == stdioPath {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, seqerrors.WrapIO(err, "open %s", path)
	}
	return f, nil
}

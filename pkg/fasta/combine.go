package fasta

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"

	seqerrors "github.com/theseus-aligner/seqtools/pkg/errors"
)

// DefaultExtension is the sequence-file extension [Combine] looks for.
const DefaultExtension = ".fna"

// CombineOptions configures [Combine].
type CombineOptions struct {
	// Extension selects files to merge, compared case-insensitively.
	// Defaults to DefaultExtension.
	Extension string
}

// CombineResult describes a completed merge.
type CombineResult struct {
	Files        []string // merged files, in the order they were written
	Output       string
	Decompressed string // temporary directory that was created and removed, if any
}

// Combine concatenates every file with the configured extension under input
// into output.
//
// input may be a directory, a .zip archive, or a .gz file (a gzipped .tar is
// unpacked as well). Archives are extracted into a fresh sibling directory
// that is removed before Combine returns, whether or not it succeeds. Files
// are merged in lexical path order and a newline is inserted after any file
// that does not end with one. The output's parent directories are created
// as needed; on failure the partial output is removed.
func Combine(ctx context.Context, input, output string, opts CombineOptions) (*CombineResult, error) {
	ext := opts.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	if err := seqerrors.ValidateExtension(ext); err != nil {
		return nil, err
	}

	res := &CombineResult{Output: output}
	dir, cleanup, err := resolveInput(input)
	if err != nil {
		return nil, err
	}
	if cleanup {
		res.Decompressed = dir
		defer os.RemoveAll(dir)
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, seqerrors.New(seqerrors.ErrCodeInvalidPath, "the input path '%s' is not a valid directory", input)
	}

	files, err := findFiles(dir, ext, output)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return nil, seqerrors.WrapIO(err, "create output directory for %s", output)
	}
	if err := concatenate(ctx, files, output); err != nil {
		return nil, err
	}

	res.Files = files
	return res, nil
}

// resolveInput returns the directory to scan. For archives it is a new
// temporary directory and cleanup is true.
func resolveInput(input string) (dir string, cleanup bool, err error) {
	switch strings.ToLower(filepath.Ext(input)) {
	case ".zip":
		dir = tempSibling(input)
		if err := extractZip(input, dir); err != nil {
			os.RemoveAll(dir)
			return "", false, err
		}
		return dir, true, nil
	case ".gz":
		dir = tempSibling(input)
		if err := extractGzip(input, dir); err != nil {
			os.RemoveAll(dir)
			return "", false, err
		}
		return dir, true, nil
	}
	return input, false, nil
}

func tempSibling(input string) string {
	return input + "_decompressed_" + uuid.NewString()[:8]
}

func extractZip(path, dir string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return seqerrors.WrapIO(err, "open archive %s", path)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if err := seqerrors.ValidateArchivePath(f.Name); err != nil {
			return seqerrors.Wrap(seqerrors.ErrCodeInvalidFormat, err, "unsafe entry %q in %s", f.Name, path)
		}
		rc, err := f.Open()
		if err != nil {
			return seqerrors.Wrap(seqerrors.ErrCodeInvalidFormat, err, "read %s in %s", f.Name, path)
		}
		err = writeFile(filepath.Join(dir, filepath.FromSlash(f.Name)), rc)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func extractGzip(path, dir string) error {
	f, err := os.Open(path)
	if err != nil {
		return seqerrors.WrapIO(err, "open archive %s", path)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return seqerrors.Wrap(seqerrors.ErrCodeInvalidFormat, err, "read gzip header of %s", path)
	}
	defer zr.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if strings.EqualFold(filepath.Ext(name), ".tar") {
		return extractTar(zr, path, dir)
	}
	return writeFile(filepath.Join(dir, name), zr)
}

func extractTar(r io.Reader, path, dir string) error {
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return seqerrors.Wrap(seqerrors.ErrCodeInvalidFormat, err, "read tar entry in %s", path)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		name := strings.TrimPrefix(hdr.Name, "./")
		if err := seqerrors.ValidateArchivePath(name); err != nil {
			return seqerrors.Wrap(seqerrors.ErrCodeInvalidFormat, err, "unsafe entry %q in %s", hdr.Name, path)
		}
		if err := writeFile(filepath.Join(dir, filepath.FromSlash(name)), tr); err != nil {
			return err
		}
	}
}

func writeFile(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return seqerrors.WrapIO(err, "create %s", filepath.Dir(path))
	}
	out, err := os.Create(path)
	if err != nil {
		return seqerrors.WrapIO(err, "create %s", path)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return seqerrors.Wrap(seqerrors.ErrCodeInvalidFormat, err, "decompress into %s", path)
	}
	if err := out.Close(); err != nil {
		return seqerrors.WrapIO(err, "close %s", path)
	}
	return nil
}

// findFiles walks dir in lexical order, skipping output itself.
func findFiles(dir, ext, output string) ([]string, error) {
	outAbs, _ := filepath.Abs(output)

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}
		if abs, _ := filepath.Abs(path); abs == outAbs {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, seqerrors.WrapIO(err, "scan %s", dir)
	}
	return files, nil
}

func concatenate(ctx context.Context, files []string, output string) (err error) {
	out, err := os.Create(output)
	if err != nil {
		return seqerrors.WrapIO(err, "create %s", output)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = seqerrors.WrapIO(cerr, "close %s", output)
		}
		if err != nil {
			os.Remove(output)
		}
	}()

	tw := &tailWriter{w: out}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := appendFile(tw, path); err != nil {
			return err
		}
		if tw.n > 0 && tw.last != '\n' {
			if _, err := tw.Write([]byte{'\n'}); err != nil {
				return seqerrors.WrapIO(err, "write %s", output)
			}
		}
	}
	return nil
}

func appendFile(tw *tailWriter, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return seqerrors.WrapIO(err, "open %s", path)
	}
	defer in.Close()

	tw.n = 0
	if _, err := io.Copy(tw, in); err != nil {
		return seqerrors.WrapIO(err, "copy %s", path)
	}
	return nil
}

// tailWriter remembers the last byte written and how many bytes were
// written since n was last reset.
type tailWriter struct {
	w    io.Writer
	last byte
	n    int64
}

func (t *tailWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if n > 0 {
		t.last = p[n-1]
		t.n += int64(n)
	}
	return n, err
}

func (r *CombineResult) String() string {
	return fmt.Sprintf("Concatenated %d FASTA files into '%s'.", len(r.Files), r.Output)
}

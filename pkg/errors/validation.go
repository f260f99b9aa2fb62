package errors

import (
	"strings"
	"unicode"
)

// ValidateArchivePath validates a file name read from an archive before it is
// joined onto an extraction directory. It rejects names that would escape
// that directory.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateArchivePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateExtension checks that ext looks like a file extension (".fna").
func ValidateExtension(ext string) error {
	if len(ext) < 2 || ext[0] != '.' {
		return New(ErrCodeInvalidInput, "extension must start with '.' and be non-empty: %q", ext)
	}
	if strings.ContainsAny(ext, "/\\") {
		return New(ErrCodeInvalidInput, "extension cannot contain path separators: %q", ext)
	}
	return nil
}

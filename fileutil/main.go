// Package fileutil carries the simple pass-through I/O helpers of the tool:
// whole-file reads and writes, newline normalization, extension formatting
// and the default editor lookup. Nothing here has interesting failure
// semantics; the heavy lifting lives in pkg.
package fileutil

import (
	"os"
	"runtime"
	"strings"

	"github.com/jamesbehr/shipshape/filesystem"
	"github.com/jamesbehr/shipshape/pkg"
)

// ReadAll returns the entire contents of the file at path.
func ReadAll(path filesystem.Path) ([]byte, error) {
	return path.ReadFile()
}

// WriteAll writes data to path, creating any missing parent directories
// first.
func WriteAll(path filesystem.Path, data []byte) error {
	if err := pkg.EnsureDirsForFile(path); err != nil {
		return err
	}

	return path.WriteFile(data, 0644)
}

// Exists reports whether anything occupies path, links included.
func Exists(path filesystem.Path) (bool, error) {
	return path.Exists()
}

// NormalizeNewlines rewrites CRLF and bare CR line endings to LF.
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// NativeNewlines rewrites line endings to the host platform's convention:
// CRLF on windows, LF everywhere else.
func NativeNewlines(s string) string {
	s = NormalizeNewlines(s)

	if runtime.GOOS != "windows" {
		return s
	}

	return strings.ReplaceAll(s, "\n", "\r\n")
}

// EnsureExtension appends ext to name unless name already carries it. The
// extension may be given with or without its leading dot.
func EnsureExtension(name, ext string) string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	if strings.HasSuffix(name, ext) {
		return name
	}

	return name + ext
}

// DefaultEditor resolves the editor to launch: $VISUAL wins over $EDITOR,
// with a per-platform fallback when neither is set.
func DefaultEditor() string {
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if runtime.GOOS == "windows" {
		return "notepad"
	}

	return "vi"
}

package filesystem

import "os"

// Kind classifies a filesystem entry as reported by a link-aware probe. A
// symbolic link is reported as a link, never as whatever it points at, so
// callers can tell a link apart from its target.
type Kind int

const (
	KindMissing Kind = iota
	KindDirectory
	KindRegular
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindRegular:
		return "file"
	case KindSymlink:
		return "symlink"
	}

	return "missing"
}

// Entry is the capability surface the core operations need from a filesystem
// entry. It mirrors the host OS file API rather than FS in io/fs: entries are
// addressed by absolute paths and mutations happen in place. Implementors
// must probe with Kind without following a final symlink, and Mkdir must be
// non-recursive (it fails when the parent is missing).
type Entry interface {
	// Kind reports what occupies the path, without following a final
	// symlink.
	Kind() (Kind, error)

	// IsDir reports whether the path resolves to a directory, following
	// symlinks. Use Kind when link identity matters.
	IsDir() (bool, error)

	// Mkdir creates a single directory. The parent must already exist.
	Mkdir(perm os.FileMode) error

	// Remove deletes a file, symlink or empty directory. It fails on a
	// non-empty directory.
	Remove() error

	// ReadDir lists the immediate children of a directory.
	ReadDir() ([]os.DirEntry, error)

	// Symlink makes the entry a symbolic link pointing at target.
	Symlink(target Path) error

	// Exists reports whether anything occupies the path, without following
	// a final symlink.
	Exists() (bool, error)
}

var _ Entry = Path("")

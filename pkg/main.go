package pkg

import (
	"errors"
	"fmt"

	"github.com/jamesbehr/shipshape/filesystem"
)

// ErrNotSymlink reports that a link operation found something other than a
// symbolic link occupying its path. The entry is left untouched; overwriting
// a real file or directory would lose data silently.
var ErrNotSymlink = errors.New("pkg: not a symbolic link")

// EnsureDirs creates path and every missing ancestor directory, parents
// first. The path is resolved against the current working directory before
// anything is created. Running it again over an existing tree is a no-op.
//
// A creation failure aborts the cascade at that segment. Ancestors created
// before the failure are kept; they are ordinary directories and safe to
// retain.
func EnsureDirs(path filesystem.Path) error {
	canonical, err := path.Resolve()
	if err != nil {
		return fmt.Errorf("ensure dirs %s: %w", path, err)
	}

	// Parents lists ancestors nearest-first; walk them root-first so a
	// parent always exists before its child, finishing with the path
	// itself.
	parents := canonical.Parents()

	prefixes := make([]filesystem.Path, 0, len(parents)+1)
	for i := len(parents) - 1; i >= 0; i-- {
		prefixes = append(prefixes, parents[i])
	}
	prefixes = append(prefixes, canonical)

	for _, prefix := range prefixes {
		exists, err := prefix.Exists()
		if err != nil {
			return fmt.Errorf("ensure dirs %s: %w", canonical, err)
		}

		if exists {
			// An existing prefix must be traversable. A symlink resolving
			// to a directory is fine; anything else blocks the cascade.
			isDir, err := prefix.IsDir()
			if err != nil {
				return fmt.Errorf("ensure dirs %s: %w", canonical, err)
			}

			if !isDir {
				return fmt.Errorf("ensure dirs %s: %s is not a directory", canonical, prefix)
			}

			continue
		}

		if err := prefix.Mkdir(0755); err != nil {
			return fmt.Errorf("ensure dirs %s: %w", canonical, err)
		}

		logger.Debug().Str("dir", prefix.String()).Msg("created directory")
	}

	return nil
}

// EnsureDirsForFile creates the directories containing filePath. The final
// segment is taken to be a file name and is never created.
func EnsureDirsForFile(filePath filesystem.Path) error {
	return EnsureDirs(filePath.Parent())
}

// LinkDirectory makes link a symbolic link pointing at target. An existing
// symlink at the path is replaced: link targets cannot be altered in place
// on every platform, so the old link is removed and a fresh one created.
// Anything else occupying the path makes the operation fail with
// ErrNotSymlink.
func LinkDirectory(link, target filesystem.Path) error {
	kind, err := link.Kind()
	if err != nil {
		return fmt.Errorf("link %s -> %s: %w", link, target, err)
	}

	switch kind {
	case filesystem.KindMissing:
	case filesystem.KindSymlink:
		if err := link.Remove(); err != nil {
			return fmt.Errorf("link %s -> %s: %w", link, target, err)
		}

		logger.Debug().Str("link", link.String()).Msg("removed stale link")
	default:
		return fmt.Errorf("link %s is a %s: %w", link, kind, ErrNotSymlink)
	}

	if err := link.Symlink(target); err != nil {
		return fmt.Errorf("link %s -> %s: %w", link, target, err)
	}

	logger.Debug().Str("link", link.String()).Str("target", target.String()).Msg("created link")
	return nil
}

// UnlinkDirectory removes the symbolic link at link. A missing entry is a
// no-op; anything other than a symlink makes the operation fail with
// ErrNotSymlink.
func UnlinkDirectory(link filesystem.Path) error {
	kind, err := link.Kind()
	if err != nil {
		return fmt.Errorf("unlink %s: %w", link, err)
	}

	switch kind {
	case filesystem.KindMissing:
		return nil
	case filesystem.KindSymlink:
		if err := link.Remove(); err != nil {
			return fmt.Errorf("unlink %s: %w", link, err)
		}

		logger.Debug().Str("link", link.String()).Msg("removed link")
		return nil
	}

	return fmt.Errorf("unlink %s is a %s: %w", link, kind, ErrNotSymlink)
}

// DeleteTree removes root and, if it is a directory, everything beneath it.
// Symbolic links anywhere in the tree are removed as links and never
// followed, so a link pointing outside the tree (or back into it) cannot
// drag its target into the deletion. A missing root is a no-op.
//
// The first failure aborts the whole operation; whatever the recursion
// already removed stays removed.
func DeleteTree(root filesystem.Path) error {
	canonical, err := root.Resolve()
	if err != nil {
		return fmt.Errorf("delete tree %s: %w", root, err)
	}

	if err := deleteTree(canonical); err != nil {
		return fmt.Errorf("delete tree %s: %w", root, err)
	}

	return nil
}

func deleteTree(path filesystem.Path) error {
	kind, err := path.Kind()
	if err != nil {
		return err
	}

	switch kind {
	case filesystem.KindMissing:
		return nil
	case filesystem.KindDirectory:
	default:
		// Files and symlinks unlink in one step. A link is deleted as a
		// link, never expanded.
		return path.Remove()
	}

	entries, err := path.ReadDir()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := deleteTree(path.Join(entry.Name())); err != nil {
			return err
		}
	}

	logger.Debug().Str("dir", path.String()).Msg("removing emptied directory")
	return path.Remove()
}

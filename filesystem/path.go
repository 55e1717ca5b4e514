package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

type Path string

func MakePath(names ...string) Path {
	p := filepath.Join(names...)

	if !filepath.IsAbs(p) {
		panic("MakePath requires absolute path")
	}

	return Path(p)
}

// Resolve canonicalizes the path against the current working directory and
// normalizes its separators. Absolute paths are cleaned but otherwise left
// alone.
func (p Path) Resolve() (Path, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return Path(""), err
	}

	return Path(abs), nil
}

func (p Path) Join(names ...string) Path {
	args := []string{string(p)}
	args = append(args, names...)
	return MakePath(args...)
}

func (p Path) Parent() Path {
	return Path(filepath.Dir(string(p)))
}

func (p Path) Parents() []Path {
	parents := []Path{}

	for {
		parent := p.Parent()
		if string(parent) == string(p) {
			break
		}

		parents = append(parents, parent)
		p = parent
	}

	return parents
}

func (p Path) Basename() string {
	return filepath.Base(string(p))
}

// Kind probes the entry without following a final symlink, so a link is
// reported as itself rather than as its target.
func (p Path) Kind() (Kind, error) {
	info, err := os.Lstat(string(p))
	if err != nil {
		if os.IsNotExist(err) {
			return KindMissing, nil
		}

		return KindMissing, err
	}

	mode := info.Mode()
	switch {
	case mode&fs.ModeSymlink != 0:
		return KindSymlink, nil
	case mode.IsDir():
		return KindDirectory, nil
	}

	return KindRegular, nil
}

// IsDir follows symlinks. A missing entry is not an error; it is simply not
// a directory.
func (p Path) IsDir() (bool, error) {
	info, err := os.Stat(string(p))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return info.IsDir(), nil
}

// Mkdir creates a single directory level. Unlike os.MkdirAll it fails when
// the parent is missing, which lets callers control the creation order.
func (p Path) Mkdir(perm os.FileMode) error {
	return os.Mkdir(string(p), perm)
}

func (p Path) Remove() error {
	return os.Remove(string(p))
}

func (p Path) ReadDir() ([]os.DirEntry, error) {
	return os.ReadDir(string(p))
}

func (p Path) WriteFile(data []byte, perm os.FileMode) error {
	return os.WriteFile(string(p), data, perm)
}

func (p Path) ReadFile() ([]byte, error) {
	return os.ReadFile(string(p))
}

func (p Path) Open() (*os.File, error) {
	return os.Open(string(p))
}

func (p Path) Readlink() (Path, error) {
	target, err := os.Readlink(string(p))
	if err != nil {
		return Path(""), err
	}

	return Path(target), nil
}

func (p Path) Symlink(target Path) error {
	return os.Symlink(string(target), string(p))
}

func (p Path) Exists() (bool, error) {
	_, err := os.Lstat(string(p))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (p Path) Empty() (bool, error) {
	file, err := os.Open(string(p))
	if err != nil {
		return false, err
	}

	defer file.Close()

	_, err = file.Readdirnames(1)
	if err == io.EOF {
		return true, nil
	}

	return false, err
}

func (p Path) String() string {
	return string(p)
}

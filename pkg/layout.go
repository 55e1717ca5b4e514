package pkg

import (
	"fmt"

	"github.com/jamesbehr/shipshape/filesystem"
	"github.com/pelletier/go-toml/v2"
)

// Link is a single symlink declaration in a layout manifest. Both paths are
// interpreted relative to the layout root.
type Link struct {
	Path   string `toml:"path"`
	Target string `toml:"target"`
}

// Layout is a declarative description of a directory skeleton, decoded from
// a TOML manifest. Dirs are created as-is; Files name files whose containing
// directories are created without touching the files themselves; Links are
// created or replaced last, once everything they sit in exists.
type Layout struct {
	Dirs  []string `toml:"dirs,omitempty"`
	Files []string `toml:"files,omitempty"`
	Links []Link   `toml:"links,omitempty"`
}

// LoadLayout decodes a layout manifest from the file at path.
func LoadLayout(path filesystem.Path) (*Layout, error) {
	f, err := path.Open()
	if err != nil {
		return nil, err
	}

	defer f.Close()

	var layout Layout
	if err := toml.NewDecoder(f).Decode(&layout); err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}

	return &layout, nil
}

// Apply realizes the layout under root: directories first, then file
// parents, then links.
func (l *Layout) Apply(root filesystem.Path) error {
	for _, dir := range l.Dirs {
		if err := EnsureDirs(root.Join(dir)); err != nil {
			return err
		}
	}

	for _, file := range l.Files {
		if err := EnsureDirsForFile(root.Join(file)); err != nil {
			return err
		}
	}

	for _, link := range l.Links {
		if err := EnsureDirsForFile(root.Join(link.Path)); err != nil {
			return err
		}

		if err := LinkDirectory(root.Join(link.Path), root.Join(link.Target)); err != nil {
			return err
		}
	}

	return nil
}

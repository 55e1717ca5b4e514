package pkg

import (
	"bytes"
	"testing"

	"github.com/jamesbehr/shipshape/filesystem"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"
)

func writeLayout(t *testing.T, root filesystem.Path, name string, layout *Layout) {
	w := bytes.NewBuffer([]byte{})
	err := toml.NewEncoder(w).Encode(layout)
	if err != nil {
		t.Fatalf("toml.Encode %s: %s", name, err)
	}

	err = root.Join(name).WriteFile(w.Bytes(), 0644)
	if err != nil {
		t.Fatalf("WriteFile %s: %s", name, err)
	}
}

func TestLoadLayout(t *testing.T) {
	tmp := tmpDir(t, "layout_load", nil)

	writeLayout(t, tmp, "layout.toml", &Layout{
		Dirs:  []string{"a/b"},
		Files: []string{"notes/todo.txt"},
		Links: []Link{{Path: "current", Target: "a/b"}},
	})

	layout, err := LoadLayout(tmp.Join("layout.toml"))
	require.NoError(t, err)
	require.Equal(t, []string{"a/b"}, layout.Dirs)
	require.Equal(t, []string{"notes/todo.txt"}, layout.Files)
	require.Equal(t, []Link{{Path: "current", Target: "a/b"}}, layout.Links)
}

func TestLoadLayoutMissing(t *testing.T) {
	tmp := tmpDir(t, "layout_missing", nil)

	_, err := LoadLayout(tmp.Join("layout.toml"))
	require.Error(t, err)
}

func TestLayoutApply(t *testing.T) {
	tmp := tmpDir(t, "layout_apply", nil)

	layout := Layout{
		Dirs:  []string{"releases/v1", "releases/v2"},
		Files: []string{"notes/todo.txt"},
		Links: []Link{{Path: "current", Target: "releases/v2"}},
	}

	require.NoError(t, layout.Apply(tmp))

	assertDir(t, tmp, []string{"releases/v1", "releases/v2", "notes"})
	assertMissing(t, tmp, []string{"notes/todo.txt"})
	assertLink(t, tmp.Join("current").String(), tmp.Join("releases/v2").String())

	// Applying twice is as idempotent as its parts: directories are kept
	// and the link is replaced in place.
	require.NoError(t, layout.Apply(tmp))
	assertLink(t, tmp.Join("current").String(), tmp.Join("releases/v2").String())
}

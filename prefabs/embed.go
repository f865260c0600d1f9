package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Dir is the on-disk prefab directory. Files there shadow the embedded ones,
// which is what hot reload edits.
const Dir = "prefabs"

//go:embed *.yaml scripts/*.tengo
var files embed.FS

// Load reads a prefab spec by file name.
func Load(name string) ([]byte, error) {
	return read(specPath(name))
}

// LoadScript reads a director script. "director.tengo",
// "scripts/director.tengo" and "prefabs/scripts/director.tengo" all name the
// same file.
func LoadScript(name string) ([]byte, error) {
	return read(path.Join("scripts", BaseName(name)))
}

func read(clean string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return files.ReadFile(clean)
}

func specPath(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}

// IsScript reports whether a changed file name refers to a director script.
func IsScript(name string) bool {
	return isScriptFile(name)
}

// BaseName strips directories so watcher events can be matched against
// prefab file names.
func BaseName(name string) string {
	return path.Base(filepath.ToSlash(name))
}

package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var FS embed.FS

// Dir is where on-disk overrides of the embedded prefabs are looked up.
var Dir = "prefabs"

// Load reads a YAML prefab. A copy under Dir wins over the embedded one.
func Load(name string) ([]byte, error) {
	return read(specPath(name))
}

// LoadScript reads a script by bare name or by a path under prefabs/ or
// scripts/. A copy under Dir wins over the embedded one.
func LoadScript(name string) ([]byte, error) {
	return read(scriptPath(name))
}

func read(rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return FS.ReadFile(rel)
}

func specPath(name string) string {
	s := filepath.ToSlash(name)
	s, _ = strings.CutPrefix(s, "prefabs/")
	return s
}

func scriptPath(name string) string {
	s := filepath.ToSlash(name)
	s, _ = strings.CutPrefix(s, "prefabs/")
	s, _ = strings.CutPrefix(s, "scripts/")
	return path.Join("scripts", s)
}

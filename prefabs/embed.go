package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Specs and scenes are embedded at build time. A file with the same relative
// path under ./prefabs on disk shadows the embedded copy.
var (
	//go:embed *.yaml scenes/*.yaml
	PrefabsFS embed.FS

	//go:embed scripts/*.tengo
	ScriptsFS embed.FS
)

const diskRoot = "prefabs"

// Load reads a spec or scene such as "tank.yaml" or "scenes/drop.yaml".
func Load(name string) ([]byte, error) {
	return readShadowed(PrefabsFS, cleanPrefabPath(name))
}

// LoadScript reads a tengo script by file name.
func LoadScript(name string) ([]byte, error) {
	return readShadowed(ScriptsFS, cleanScriptPath(name))
}

func readShadowed(fsys embed.FS, rel string) ([]byte, error) {
	if data, err := os.ReadFile(diskPrefabPath(rel)); err == nil {
		return data, nil
	}
	return fsys.ReadFile(rel)
}

// cleanPrefabPath turns a name into a slash path relative to the prefabs root.
func cleanPrefabPath(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimPrefix(filepath.ToSlash(name), diskRoot+"/")
}

// cleanScriptPath always yields "scripts/<base>".
func cleanScriptPath(name string) string {
	if name == "" {
		return ""
	}
	rel := strings.TrimPrefix(cleanPrefabPath(name), "scripts/")
	return path.Join("scripts", rel)
}

func diskPrefabPath(rel string) string {
	return filepath.Join(diskRoot, filepath.FromSlash(rel))
}

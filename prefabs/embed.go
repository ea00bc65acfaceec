package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// DiskDir holds spec files that override the embedded copies. It is
// relative to the working directory.
const DiskDir = "prefabs"

// Load reads a spec from DiskDir, falling back to the embedded copy.
func Load(name string) ([]byte, error) {
	return LoadFrom(os.DirFS(DiskDir), name)
}

// LoadFrom reads name from disk and falls back to the embedded copy when
// disk is nil or lacks the file.
func LoadFrom(disk fs.FS, name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if disk != nil {
		if data, err := fs.ReadFile(disk, clean); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if i := strings.LastIndex(s, "/prefabs/"); i >= 0 {
		return s[i+len("/prefabs/"):]
	}
	return strings.TrimPrefix(s, "prefabs/")
}

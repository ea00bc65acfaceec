// Package assets reads sprites and sounds from a file system. The default
// set is embedded; a directory on disk can replace it.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed sprites sounds
var embedded embed.FS

// Loader resolves asset-relative paths such as "sprites/enemy.png".
type Loader struct {
	fsys fs.FS
	name string
}

func NewLoader(fsys fs.FS, name string) *Loader {
	return &Loader{fsys: fsys, name: name}
}

// Embedded returns a loader over the assets compiled into the binary.
func Embedded() *Loader {
	return NewLoader(embedded, "embedded")
}

// Dir returns a loader rooted at dir, or the embedded loader when dir is
// empty.
func Dir(dir string) *Loader {
	if dir == "" {
		return Embedded()
	}
	return NewLoader(os.DirFS(dir), dir)
}

func (l *Loader) String() string {
	return l.name
}

// File returns the raw bytes of path.
func (l *Loader) File(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if !fs.ValidPath(clean) || clean == "." {
		return nil, fmt.Errorf("assets: read %q: %w", path, fs.ErrInvalid)
	}
	b, err := fs.ReadFile(l.fsys, clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", clean, err)
	}
	return b, nil
}

// Image decodes path. The result lives in main memory only; binding it to a
// device is the caller's job.
func (l *Loader) Image(path string) (image.Image, error) {
	b, err := l.File(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	return strings.TrimPrefix(s, "assets/")
}

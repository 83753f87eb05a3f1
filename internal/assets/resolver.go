package assets

import (
	"fmt"
	"io/fs"
	"slices"
	"sync/atomic"

	"github.com/3-lines-studio/lumastay/internal/core"
)

const StylesheetName = "styles/site.css"

type Manifest struct {
	fingerprints map[string]string
}

func BuildManifest(fsys fs.FS) (*Manifest, error) {
	m := &Manifest{fingerprints: map[string]string{}}
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", path, err)
		}
		m.fingerprints[path] = core.HashContent(data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) Fingerprint(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	fp, ok := m.fingerprints[name]
	return fp, ok
}

func (m *Manifest) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.fingerprints))
	for name := range m.fingerprints {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// URL falls back to the unversioned path for names outside the manifest.
func (m *Manifest) URL(name string) string {
	fp, _ := m.Fingerprint(name)
	return core.AssetURL(name, fp)
}

// Resolver serves asset URLs from a manifest that can be rebuilt while the
// server runs. Readers never block.
type Resolver struct {
	fsys    fs.FS
	current atomic.Pointer[Manifest]
}

func NewResolver(fsys fs.FS) (*Resolver, error) {
	r := &Resolver{fsys: fsys}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Resolver) Reload() error {
	m, err := BuildManifest(r.fsys)
	if err != nil {
		return fmt.Errorf("build asset manifest: %w", err)
	}
	if _, ok := m.Fingerprint(StylesheetName); !ok {
		return fmt.Errorf("build asset manifest: missing %s", StylesheetName)
	}
	r.current.Store(m)
	return nil
}

func (r *Resolver) FS() fs.FS {
	return r.fsys
}

func (r *Resolver) Manifest() *Manifest {
	return r.current.Load()
}

func (r *Resolver) URL(name string) string {
	return r.Manifest().URL(name)
}

func (r *Resolver) ImageURL(name string) string {
	return r.URL(name)
}

func (r *Resolver) StylesheetURL() string {
	return r.URL(StylesheetName)
}

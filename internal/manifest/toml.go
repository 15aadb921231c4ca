package manifest

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// DefaultPath is the conventional location for a manifest override.
const DefaultPath = "sourcecheck.toml"

// Load reads a manifest from the given path on fs. Fields the file leaves
// empty keep their compiled-in defaults; a non-empty entries list replaces the
// default table entirely. If the file does not exist, Load returns Default()
// and no error. Entries without a name are named after their path's base.
func Load(fs afero.Fs, p string) (*Manifest, error) {
	m := Default()
	if p == "" {
		return m, nil
	}

	data, err := afero.ReadFile(fs, p)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, fmt.Errorf("reading manifest %s: %w", p, err)
	}

	var file Manifest
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", p, err)
	}

	if file.BaseDir != "" {
		m.BaseDir = file.BaseDir
	}
	if file.Project != "" {
		m.Project = file.Project
	}
	if len(file.Entries) > 0 {
		m.Entries = file.Entries
		for i := range m.Entries {
			if m.Entries[i].Name == "" && m.Entries[i].Path != "" {
				m.Entries[i].Name = path.Base(cleanRel(m.Entries[i].Path))
			}
		}
	}
	return m, nil
}

// Save writes m to the given path on fs, creating parent directories as needed.
func Save(fs afero.Fs, p string, m *Manifest) error {
	if dir := filepath.Dir(p); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	if err := afero.WriteFile(fs, p, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", p, err)
	}
	return nil
}

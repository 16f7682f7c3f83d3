package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Load reads a level document by name. A copy on disk under levels/ wins
// over the embedded one so edited levels can be reloaded without a rebuild.
func Load(name string) (*Description, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(diskLevelPath(clean)); err == nil {
		return Parse(clean, data)
	}
	return LoadFromFS(LevelsFS, clean)
}

// LoadFromFS reads and decodes a level document from fsys.
func LoadFromFS(fsys fs.FS, name string) (*Description, error) {
	clean := cleanLevelPath(name)
	data, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	return Parse(clean, data)
}

// Parse decodes a level document. JSON documents are accepted as well since
// they are valid YAML.
func Parse(name string, data []byte) (*Description, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, &MalformedLevelError{Level: name, Reason: "decode", Err: err}
	}
	if desc.Name == "" {
		desc.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	return &desc, nil
}

func cleanLevelPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}

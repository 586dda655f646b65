// Package claims provides human-readable descriptions for token claims
package claims

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/jrschumacher/jwtinspect/internal/issuer"
)

//go:embed descriptions.json
var builtinDescriptions []byte

// Descriptions is an immutable claim description table. Keys are either a bare
// claim name or "<provider>_<claim>" for provider-specific text.
type Descriptions struct {
	entries map[string]string
}

var (
	defaultOnce         sync.Once
	defaultDescriptions *Descriptions
)

// Default returns the built-in table. It is loaded once per process.
func Default() *Descriptions {
	defaultOnce.Do(func() {
		entries := map[string]string{}
		if err := json.Unmarshal(builtinDescriptions, &entries); err != nil {
			panic("claims: invalid embedded descriptions: " + err.Error())
		}
		defaultDescriptions = &Descriptions{entries: entries}
	})
	return defaultDescriptions
}

// New builds a table from entries. The map is copied.
func New(entries map[string]string) *Descriptions {
	d := &Descriptions{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		d.entries[k] = v
	}
	return d
}

// Merge returns a new table with overrides layered on top of d.
func (d *Descriptions) Merge(overrides map[string]string) *Descriptions {
	merged := New(d.entries)
	for k, v := range overrides {
		merged.entries[k] = v
	}
	return merged
}

// Len returns the number of entries.
func (d *Descriptions) Len() int {
	return len(d.entries)
}

// Describe returns the description of claim for tokens issued by p. A
// provider-specific entry wins over the generic one; "" means no entry.
func (d *Descriptions) Describe(claim string, p issuer.Provider) string {
	if d == nil {
		return ""
	}
	if desc, ok := d.entries[p.String()+"_"+claim]; ok && desc != "" {
		return desc
	}
	return d.entries[claim]
}

// LoadFile reads description overrides from a YAML or JSON file. The format
// is chosen by extension; anything other than .json is read as YAML.
func LoadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptions file: %w", err)
	}

	entries := map[string]string{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &entries)
	default:
		err = yaml.Unmarshal(data, &entries)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse descriptions file %s: %w", path, err)
	}
	return entries, nil
}

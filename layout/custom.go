package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/KEYDEC/keycode"
)

// Custom is a user-defined layout: a named base layout with a table of
// per-key overrides loaded from a YAML or TOML file. It composes the same
// way UK105 composes over US104.
type Custom struct {
	name      string
	base      Layout
	overrides map[keycode.KeyCode]override
}

type override struct {
	normal  string
	shifted string
	altGr   string
	raw     keycode.KeyCode
	isRaw   bool
}

// customFile is the on-disk override format.
type customFile struct {
	Name string                 `yaml:"name" toml:"name"`
	Base string                 `yaml:"base" toml:"base"`
	Keys map[string]customEntry `yaml:"keys" toml:"keys"`
}

type customEntry struct {
	Normal  string `yaml:"normal" toml:"normal"`
	Shifted string `yaml:"shifted" toml:"shifted"`
	AltGr   string `yaml:"altgr" toml:"altgr"`
	// Raw redirects the key to another key identity instead of text,
	// by key name (e.g. "Home").
	Raw string `yaml:"raw" toml:"raw"`
}

// LoadCustom reads a custom layout file, picking the codec by extension
// (.yaml/.yml or .toml).
func LoadCustom(path string) (*Custom, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	return ParseCustom(data, format)
}

// ParseCustom builds a custom layout from serialized override data.
// Supported formats: "yaml", "yml", "toml".
func ParseCustom(data []byte, format string) (*Custom, error) {
	var file customFile
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse yaml layout: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse toml layout: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported layout format: %s", format)
	}

	if file.Name == "" {
		return nil, fmt.Errorf("layout file missing name")
	}
	baseName := file.Base
	if baseName == "" {
		baseName = "us"
	}
	base, ok := ByName(baseName)
	if !ok {
		return nil, fmt.Errorf("unknown base layout: %s", baseName)
	}

	c := &Custom{
		name:      file.Name,
		base:      base,
		overrides: make(map[keycode.KeyCode]override, len(file.Keys)),
	}
	for name, entry := range file.Keys {
		code, ok := keycode.ParseKey(name)
		if !ok {
			return nil, fmt.Errorf("unknown key name: %s", name)
		}
		o := override{
			normal:  entry.Normal,
			shifted: entry.Shifted,
			altGr:   entry.AltGr,
		}
		if entry.Raw != "" {
			raw, ok := keycode.ParseKey(entry.Raw)
			if !ok {
				return nil, fmt.Errorf("unknown raw key name: %s", entry.Raw)
			}
			o.raw = raw
			o.isRaw = true
		}
		c.overrides[code] = o
	}
	return c, nil
}

// Name implements Layout.
func (c *Custom) Name() string { return c.name }

// MapKeycode implements Layout. Keys without an override delegate to the
// base layout; within an override, missing tiers fall back to the normal
// glyph, then to the base layout.
func (c *Custom) MapKeycode(code keycode.KeyCode, m Modifiers, ctrl ControlHandling) keycode.DecodedKey {
	o, ok := c.overrides[code]
	if !ok {
		return c.base.MapKeycode(code, m, ctrl)
	}
	if o.isRaw {
		return keycode.Raw(o.raw)
	}
	switch {
	case m.AltGr && o.altGr != "":
		return keycode.Text(o.altGr)
	case m.Shift && o.shifted != "":
		return keycode.Text(o.shifted)
	case o.normal != "":
		return keycode.Text(o.normal)
	}
	return c.base.MapKeycode(code, m, ctrl)
}

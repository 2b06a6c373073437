package cmd

import (
	"fmt"
	"strings"

	"github.com/Alia5/KEYDEC/keycode"
	"github.com/Alia5/KEYDEC/layout"
	"github.com/Alia5/KEYDEC/scancode"
)

// Keys prints every key code with its make sequences in both scancode sets
// and its translation under a chosen layout.
type Keys struct {
	Layout     string `help:"Keyboard layout" default:"us" env:"KEYDEC_LAYOUT"`
	LayoutFile string `help:"Custom layout override file (YAML or TOML)" env:"KEYDEC_LAYOUT_FILE"`
}

// Run is called by kong when the keys command is executed.
func (c *Keys) Run() error {
	cfg := DecoderConfig{Layout: c.Layout, LayoutFile: c.LayoutFile}
	lay, err := cfg.ResolveLayout()
	if err != nil {
		return err
	}

	fmt.Printf("%-16s %-12s %-12s %-10s %-10s\n", "KEY", "SET1", "SET2", "NORMAL", "SHIFTED")
	for _, code := range keycode.All() {
		normal := lay.MapKeycode(code, layout.Modifiers{NumLock: true}, layout.ControlIgnored)
		shifted := lay.MapKeycode(code, layout.Modifiers{Shift: true, NumLock: true}, layout.ControlIgnored)
		fmt.Printf("%-16s %-12s %-12s %-10s %-10s\n",
			code,
			makeHex(1, code),
			makeHex(2, code),
			glyph(normal),
			glyph(shifted))
	}
	return nil
}

func makeHex(set int, code keycode.KeyCode) string {
	data, err := scancode.AppendStroke(nil, set, code)
	if err != nil {
		return "-"
	}
	// Show the make sequence only; the break tail is derivable.
	var hex []string
	for _, b := range data {
		hex = append(hex, fmt.Sprintf("%02x", b))
	}
	n := len(hex) / 2
	return strings.Join(hex[:n], " ")
}

func glyph(key keycode.DecodedKey) string {
	if key.IsRaw() {
		return key.String()
	}
	return fmt.Sprintf("%q", key.Text)
}

// Package cmd implements the keydec CLI commands.
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Alia5/KEYDEC/layout"
	"github.com/Alia5/KEYDEC/scancode"
)

// LogConfig holds the logging flags shared by every command.
type LogConfig struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"KEYDEC_LOG_LEVEL"`
	File    string `help:"Log file path; empty logs to stdout/stderr" env:"KEYDEC_LOG_FILE"`
	RawFile string `help:"Raw scancode byte log file" env:"KEYDEC_LOG_RAW_FILE"`
}

// CLI is the root command structure parsed by kong.
type CLI struct {
	Config string    `help:"Path to config file (JSON, YAML or TOML)" env:"KEYDEC_CONFIG"`
	Log    LogConfig `embed:"" prefix:"log."`

	Decode    Decode        `cmd:"" help:"Decode hex scancode bytes into key events and text"`
	Follow    Follow        `cmd:"" help:"Follow a file or FIFO of raw scancode bytes and decode live"`
	Gen       Gen           `cmd:"" help:"Generate the scancode bytes for a typed string"`
	Keys      Keys          `cmd:"" help:"List key codes, scancodes and layout translations"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
}

// DecoderConfig holds the flags selecting a scancode set and layout,
// embedded by every command that builds a decode pipeline.
type DecoderConfig struct {
	Set        int    `help:"Scancode set (1 or 2)" default:"1" enum:"1,2" env:"KEYDEC_SET"`
	Layout     string `help:"Keyboard layout" default:"us" env:"KEYDEC_LAYOUT"`
	LayoutFile string `help:"Custom layout override file (YAML or TOML)" env:"KEYDEC_LAYOUT_FILE"`
	MapCtrl    bool   `help:"Map Ctrl+letter to C0 control codes" env:"KEYDEC_MAP_CTRL"`
}

// NewDecoder builds the decoder for the configured set.
func (c DecoderConfig) NewDecoder() scancode.Decoder {
	if c.Set == 2 {
		return &scancode.Set2Decoder{}
	}
	return &scancode.Set1Decoder{}
}

// ResolveLayout picks the layout: the override file when given, else the
// named built-in.
func (c DecoderConfig) ResolveLayout() (layout.Layout, error) {
	if c.LayoutFile != "" {
		return layout.LoadCustom(c.LayoutFile)
	}
	l, ok := layout.ByName(c.Layout)
	if !ok {
		return nil, fmt.Errorf("unknown layout %q (have: %s)", c.Layout, strings.Join(layout.Names(), ", "))
	}
	return l, nil
}

// ControlHandling maps the --map-ctrl flag onto the layout option.
func (c DecoderConfig) ControlHandling() layout.ControlHandling {
	if c.MapCtrl {
		return layout.ControlMapsLetters
	}
	return layout.ControlIgnored
}

// parseHexBytes parses scancode bytes given as hex tokens ("1e", "0x9E",
// "e0,48"). Commas inside tokens are treated as separators.
func parseHexBytes(args []string) ([]byte, error) {
	var out []byte
	for _, arg := range args {
		for _, tok := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			tok = strings.TrimPrefix(strings.ToLower(tok), "0x")
			v, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("bad scancode byte %q: %w", tok, err)
			}
			out = append(out, byte(v))
		}
	}
	return out, nil
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Alia5/KEYDEC/internal/log"
	"github.com/Alia5/KEYDEC/layout"
	"github.com/Alia5/KEYDEC/scancode"
)

// Gen converts a typed string into the scancode byte sequence a keyboard
// would emit for it, shift strokes included. The inverse of decode; the two
// commands round-trip.
type Gen struct {
	Set    int    `help:"Scancode set (1 or 2)" default:"1" enum:"1,2" env:"KEYDEC_SET"`
	Output string `help:"Write raw bytes to a file instead of printing hex"`
	Text   string `arg:"" help:"Text to type"`
}

// Run is called by kong when the gen command is executed.
func (c *Gen) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	events, err := layout.Keystrokes(c.Text)
	if err != nil {
		return err
	}

	appendEvent := scancode.AppendSet1Event
	if c.Set == 2 {
		appendEvent = scancode.AppendSet2Event
	}

	var data []byte
	for _, ev := range events {
		data, err = appendEvent(data, ev)
		if err != nil {
			return err
		}
	}
	rawLogger.Log("gen", data)
	logger.Debug("generated scancodes", "set", c.Set, "events", len(events), "bytes", len(data))

	if c.Output != "" {
		if err := os.WriteFile(c.Output, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", c.Output, err)
		}
		return nil
	}

	hex := make([]string, len(data))
	for i, b := range data {
		hex[i] = fmt.Sprintf("%02x", b)
	}
	fmt.Println(strings.Join(hex, " "))
	return nil
}

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Alia5/KEYDEC/internal/log"
	"github.com/Alia5/KEYDEC/pipeline"
)

// Decode decodes a finite scancode byte sequence given on the command line
// or read from a file.
type Decode struct {
	DecoderConfig `embed:""`

	File string   `help:"Read raw bytes from a file instead of hex arguments ('-' for stdin)"`
	Hex  []string `arg:"" optional:"" name:"bytes" help:"Hex scancode bytes (e.g. 1e 9e e0 48)"`
}

// Run is called by kong when the decode command is executed.
func (c *Decode) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	data, err := c.inputBytes()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return errors.New("no scancode bytes given; pass hex bytes or --file")
	}
	rawLogger.Log("in", data)

	lay, err := c.ResolveLayout()
	if err != nil {
		return err
	}
	logger.Debug("decoding", "set", c.Set, "layout", lay.Name(), "bytes", len(data))

	pretty := term.IsTerminal(int(os.Stdout.Fd()))
	p := pipeline.New(c.NewDecoder(), lay, nil, c.ControlHandling())

	var text strings.Builder
	for _, b := range data {
		ev, ok, err := p.AddByte(b)
		if err != nil {
			logger.Warn("unknown scancode", "error", err)
			continue
		}
		if !ok {
			continue
		}
		key, translated := p.ProcessEvent(ev)
		if translated && !key.IsRaw() {
			text.WriteString(key.Text)
		}
		if pretty {
			if translated {
				fmt.Printf("%-24s -> %q\n", ev, key.String())
			} else {
				fmt.Printf("%s\n", ev)
			}
		}
	}

	if pretty {
		fmt.Printf("text: %q\n", text.String())
	} else {
		fmt.Print(text.String())
	}
	return nil
}

func (c *Decode) inputBytes() ([]byte, error) {
	if c.File == "" {
		return parseHexBytes(c.Hex)
	}
	if len(c.Hex) > 0 {
		return nil, errors.New("--file and hex arguments are mutually exclusive")
	}
	if c.File == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(c.File)
	if err != nil {
		return nil, fmt.Errorf("read scancode file: %w", err)
	}
	return data, nil
}

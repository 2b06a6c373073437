package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/term"

	"github.com/Alia5/KEYDEC/internal/log"
	"github.com/Alia5/KEYDEC/pipeline"
)

// Follow tails a growing file or FIFO of raw scancode bytes and decodes
// live, the way an interrupt handler would drain the controller's data port.
type Follow struct {
	DecoderConfig `embed:""`

	Path      string `arg:"" help:"File or FIFO to follow"`
	FromStart bool   `help:"Decode existing content before following"`
}

// Run is called by kong when the follow command is executed.
func (c *Follow) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lay, err := c.ResolveLayout()
	if err != nil {
		return err
	}

	f, err := os.Open(c.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", c.Path, err)
	}
	defer f.Close()
	if !c.FromStart {
		if _, err := f.Seek(0, io.SeekEnd); err != nil {
			return fmt.Errorf("seek %s: %w", c.Path, err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(c.Path); err != nil {
		return fmt.Errorf("watch %s: %w", c.Path, err)
	}

	logger.Info("following scancode stream", "path", c.Path, "set", c.Set, "layout", lay.Name())

	pretty := term.IsTerminal(int(os.Stdout.Fd()))
	p := pipeline.New(c.NewDecoder(), lay, nil, c.ControlHandling())

	// Drain whatever is already readable before waiting on events.
	if err := c.drain(f, p, rawLogger, logger, pretty); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("stopped")
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Write == 0 {
				continue
			}
			if err := c.drain(f, p, rawLogger, logger, pretty); err != nil {
				return err
			}
		}
	}
}

func (c *Follow) drain(f *os.File, p *pipeline.Pipeline, rawLogger log.RawLogger, logger *slog.Logger, pretty bool) error {
	buf := make([]byte, 512)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			rawLogger.Log("in", buf[:n])
			c.emit(p, buf[:n], logger, pretty)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", c.Path, err)
		}
	}
}

func (c *Follow) emit(p *pipeline.Pipeline, data []byte, logger *slog.Logger, pretty bool) {
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
		switch {
		case pretty && translated:
			fmt.Printf("%-24s -> %q\n", ev, key.String())
		case pretty:
			fmt.Printf("%s\n", ev)
		case translated && !key.IsRaw():
			fmt.Print(key.Text)
		}
	}
}

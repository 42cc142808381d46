package shopping

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// ErrShareUnavailable means the sink cannot be used on this machine.
var ErrShareUnavailable = errors.New("share target unavailable")

// Sharer hands formatted list text to something outside the program.
type Sharer interface {
	Share(text string) error
	Name() string
}

// ClipboardSharer copies the text to the system clipboard.
type ClipboardSharer struct{}

func (ClipboardSharer) Name() string { return "clipboard" }

func (ClipboardSharer) Share(text string) error {
	if clipboard.Unsupported {
		return ErrShareUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// WriterSharer prints the text, e.g. to stdout.
type WriterSharer struct {
	W io.Writer
}

func (s WriterSharer) Name() string { return "stdout" }

func (s WriterSharer) Share(text string) error {
	if s.W == nil {
		return ErrShareUnavailable
	}
	_, err := fmt.Fprintln(s.W, text)
	return err
}

// NewSharer maps a configured target name to a Sharer.
func NewSharer(target string, w io.Writer) (Sharer, error) {
	switch target {
	case "", "clipboard":
		return ClipboardSharer{}, nil
	case "stdout":
		return WriterSharer{W: w}, nil
	}
	return nil, fmt.Errorf("unknown share target %q (want clipboard or stdout)", target)
}

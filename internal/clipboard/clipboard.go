// Package clipboard copies code block text to the user's clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"

	atotto "github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/codeblock/internal/log"
)

// ErrUnavailable is returned when no clipboard mechanism exists on this system.
var ErrUnavailable = errors.New("clipboard not available")

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
}

// System implements Clipboard using the OS clipboard utilities.
type System struct{}

// Copy copies text to the system clipboard.
func (System) Copy(text string) error {
	if atotto.Unsupported {
		return ErrUnavailable
	}
	if err := atotto.WriteAll(text); err != nil {
		log.ErrorErr(log.CatClipboard, "system clipboard write failed", err)
		return fmt.Errorf("writing system clipboard: %w", err)
	}
	log.Debug(log.CatClipboard, "copied to system clipboard", "bytes", len(text))
	return nil
}

// OSC52 copies by writing an OSC 52 escape sequence, which most terminals
// forward to the local clipboard even over SSH.
type OSC52 struct {
	W io.Writer
}

// Copy writes the escape sequence for text.
func (o OSC52) Copy(text string) error {
	if o.W == nil {
		return ErrUnavailable
	}
	if _, err := io.WriteString(o.W, ansi.SetSystemClipboard(text)); err != nil {
		return fmt.Errorf("writing osc52 sequence: %w", err)
	}
	log.Debug(log.CatClipboard, "copied via osc52", "bytes", len(text))
	return nil
}

// Fallback tries each clipboard in order and stops at the first success.
type Fallback []Clipboard

// Copy returns the last error when every clipboard fails.
func (f Fallback) Copy(text string) error {
	err := ErrUnavailable
	for _, c := range f {
		if err = c.Copy(text); err == nil {
			return nil
		}
	}
	return err
}

// Default returns the system clipboard with an OSC 52 fallback on w.
func Default(w io.Writer) Clipboard {
	return Fallback{System{}, OSC52{W: w}}
}

// Mock is a no-op clipboard that always succeeds.
type Mock struct{}

// Copy is a no-op.
func (Mock) Copy(string) error { return nil }

// Package clipboard adapts the system clipboard to ports.Clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/jsamuelsen11/oktaorginfo/internal/ports"
)

// Compile-time interface check.
var _ ports.Clipboard = System{}

// ErrUnsupported is returned when no clipboard utility is available, e.g. on
// a headless Linux host without xclip, xsel or wl-copy.
var ErrUnsupported = errors.New("clipboard: no clipboard utility available")

// System writes to the operating system clipboard.
type System struct{}

// WriteAll replaces the clipboard contents with text.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

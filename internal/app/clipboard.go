package app

import (
	"errors"
	"log/slog"

	"github.com/atotto/clipboard"

	"github.com/iw2rmb/rheia/editor"
)

var errNoClipboard = errors.New("no system clipboard available")

// systemClipboard implements editor.Clipboard over the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", errNoClipboard
	}
	return clipboard.ReadAll()
}

func (systemClipboard) WriteText(s string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(s)
}

// loggedClipboard logs failures the editor treats as no-ops.
type loggedClipboard struct {
	editor.Clipboard
	log *slog.Logger
}

func (c loggedClipboard) ReadText() (string, error) {
	s, err := c.Clipboard.ReadText()
	if err != nil {
		c.log.Warn("clipboard read failed", "err", err)
	}
	return s, err
}

func (c loggedClipboard) WriteText(s string) error {
	err := c.Clipboard.WriteText(s)
	if err != nil {
		c.log.Warn("clipboard write failed", "err", err)
	}
	return err
}

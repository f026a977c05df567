// Package native shows the operating system's file dialogs.
package native

import (
	"context"
	"errors"

	"github.com/sqweek/dialog"
)

// Dialogs implements fileservice.Dialogs with sqweek/dialog. The native
// dialog cannot be interrupted once shown; ctx is only checked before.
type Dialogs struct {
	StartDir string
}

func (d Dialogs) OpenDialog(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	return result(d.builder("Open file").Load())
}

func (d Dialogs) SaveDialog(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	return result(d.builder("Save file").Save())
}

func (d Dialogs) builder(title string) *dialog.FileBuilder {
	b := dialog.File().Title(title)
	if d.StartDir != "" {
		b = b.SetStartDir(d.StartDir)
	}
	return b
}

func result(path string, err error) (string, bool, error) {
	if errors.Is(err, dialog.ErrCancelled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if path == "" {
		return "", false, nil
	}
	return path, true, nil
}

package fileservice

import (
	"context"
	"os"
	"unicode/utf8"
)

// Disk implements Files on the local filesystem.
type Disk struct {
	// Perm is used when a file is created. Zero means 0o644.
	Perm os.FileMode
}

func (d Disk) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", Classify(OpRead, path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", Classify(OpRead, path, err)
	}
	if !utf8.Valid(data) {
		return "", &Error{Op: OpRead, Path: path, Kind: KindInvalidData, Err: ErrInvalidUTF8}
	}
	return string(data), nil
}

// Write replaces the file with exactly text.
func (d Disk) Write(ctx context.Context, path, text string) error {
	if err := ctx.Err(); err != nil {
		return Classify(OpWrite, path, err)
	}
	perm := d.Perm
	if perm == 0 {
		perm = 0o644
	}
	if err := os.WriteFile(path, []byte(text), perm); err != nil {
		return Classify(OpWrite, path, err)
	}
	return nil
}

// Package artifact persists generated source to local storage.
package artifact

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/doeshing/appgen/internal/domain"
	"github.com/doeshing/appgen/internal/ports"
)

// FileWriter writes source files, truncating whatever was there before.
type FileWriter struct {
	perm os.FileMode
}

// NewFileWriter builds a writer creating files with domain.ArtifactPermissions.
func NewFileWriter() *FileWriter {
	return &FileWriter{perm: domain.ArtifactPermissions}
}

// Write implements ports.ArtifactWriter. Go strings are UTF-8, so the bytes
// are written as-is.
func (w *FileWriter) Write(ctx context.Context, path string, source domain.ExtractedSource) (domain.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return domain.Artifact{}, err
	}
	if path == "" {
		return domain.Artifact{}, fmt.Errorf("artifact path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
			return domain.Artifact{}, fmt.Errorf("create artifact dir: %w", err)
		}
	}

	n, err := writeFile(path, source.Text, w.perm)
	if err != nil {
		return domain.Artifact{}, err
	}
	return domain.Artifact{Path: path, Size: n}, nil
}

func writeFile(path, text string, perm os.FileMode) (n int, err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return 0, fmt.Errorf("open artifact: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close artifact: %w", cerr)
		}
	}()

	n, err = io.WriteString(file, text)
	if err != nil {
		return n, fmt.Errorf("write artifact: %w", err)
	}
	return n, nil
}

var _ ports.ArtifactWriter = (*FileWriter)(nil)

package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// ErrOutsideRoot is returned for references escaping the media directory.
var ErrOutsideRoot = errors.New("media reference escapes media directory")

type fileLoader struct {
	root   string
	logger zerolog.Logger
}

// NewFileLoader creates a loader reading images below root.
func NewFileLoader(root string, logger zerolog.Logger) Loader {
	return &fileLoader{
		root:   root,
		logger: logger.With().Str("component", "media-file-loader").Logger(),
	}
}

func (l *fileLoader) Load(ctx context.Context, ref string) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ref = strings.TrimPrefix(ref, "/")
	if !filepath.IsLocal(ref) {
		return nil, ErrOutsideRoot
	}
	fullPath := filepath.Join(l.root, ref)

	file, err := os.Open(fullPath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", fullPath).Msg("failed to open image")
		return nil, fmt.Errorf("failed to open image %s: %w", ref, err)
	}
	defer file.Close()

	img, err := Read(ref, file)
	if err != nil {
		return nil, err
	}

	l.logger.Debug().
		Str("file", fullPath).
		Str("content_type", img.ContentType).
		Int("bytes", len(img.Data)).
		Msg("image loaded")

	return img, nil
}

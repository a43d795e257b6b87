// Package media resolves image references (organization logos, menu item pictures) to bytes
// ready for upload to the platform.
package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"platra/internal/model"
)

// MaxImageSize is the largest image accepted for upload.
const MaxImageSize = 5 << 20

// Image is a validated image file.
type Image struct {
	Name        string
	ContentType string
	Data        []byte
}

// Loader fetches an image by reference.
type Loader interface {
	// Load returns the image named by ref. Implementations validate it with Read.
	Load(ctx context.Context, ref string) (*Image, error)
}

// Read consumes r and validates it as an image no larger than MaxImageSize. The content type
// is sniffed from the data, not taken from the file name.
func Read(name string, r io.Reader) (*Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", name, err)
	}
	if len(data) > MaxImageSize {
		return nil, model.ErrImageTooLarge
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, model.ErrInvalidImage
	}

	return &Image{
		Name:        path.Base(name),
		ContentType: contentType,
		Data:        bytes.Clone(data),
	}, nil
}

package storage

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// LocalImageFetcher implements ImageFetcher over the local filesystem. The
// source reference is a file path, typically a previously saved capture.
type LocalImageFetcher struct{}

// NewLocalImageFetcher creates a filesystem-backed image fetcher
func NewLocalImageFetcher() ImageFetcher {
	return &LocalImageFetcher{}
}

// FetchImage opens and decodes one image file
func (l *LocalImageFetcher) FetchImage(ctx context.Context, source string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image file %q: %w", source, err)
	}
	return img, nil
}

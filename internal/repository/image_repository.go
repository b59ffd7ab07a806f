package repository

import (
	"context"
	"image"
	"net/http"
	"net/url"
	"strings"

	"go-match-checker/internal/storage"
)

// FetcherImageRepository implements ImageRepository over any storage fetcher
type FetcherImageRepository struct {
	fetcher storage.ImageFetcher
}

// NewImageRepository creates a repository over the given fetcher
func NewImageRepository(fetcher storage.ImageFetcher) ImageRepository {
	return &FetcherImageRepository{fetcher: fetcher}
}

// FetchImage retrieves an image from a source reference
func (r *FetcherImageRepository) FetchImage(ctx context.Context, source string) (image.Image, error) {
	return r.fetcher.FetchImage(ctx, source)
}

// ValidateImageSource checks the source reference. URLs must carry a host;
// anything without a scheme is treated as a local file path and only needs
// to be non-empty.
func (r *FetcherImageRepository) ValidateImageSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return ErrInvalidImageSource
	}
	if strings.Contains(source, "://") {
		parsed, err := url.Parse(source)
		if err != nil || parsed.Host == "" {
			return ErrInvalidImageSource
		}
	}
	return nil
}

// GetImageMetadata probes content type and length with a HEAD request. For
// non-URL sources metadata is not available and zero values are returned.
func (r *FetcherImageRepository) GetImageMetadata(ctx context.Context, source string) (*ImageMetadata, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return &ImageMetadata{}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, source, nil)
	if err != nil {
		return nil, ErrInvalidImageSource
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrImageNotFound
	}

	return &ImageMetadata{
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
	}, nil
}

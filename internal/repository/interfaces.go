package repository

import (
	"context"
	"image"
)

// ImageRepository defines the interface for image data access
type ImageRepository interface {
	// FetchImage retrieves an image from a source reference
	FetchImage(ctx context.Context, source string) (image.Image, error)

	// ValidateImageSource checks whether the source reference is acceptable
	ValidateImageSource(source string) error

	// GetImageMetadata probes metadata about an image without downloading it
	GetImageMetadata(ctx context.Context, source string) (*ImageMetadata, error)
}

// ImageMetadata contains metadata about an image
type ImageMetadata struct {
	ContentType   string
	ContentLength int64
}

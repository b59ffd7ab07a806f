package extractor

import (
	"context"
	"image"
)

// TextExtractor locates and reads human-readable text in a raster image.
// An empty slice means the engine ran and found nothing; a non-nil error
// means the engine itself failed. Both leave the caller with zero fragments,
// but the two conditions must stay distinguishable in logs and diagnostics.
type TextExtractor interface {
	ExtractText(ctx context.Context, img image.Image) ([]TextFragment, error)
	Close() error
}

// CodeExtractor locates and decodes 2D machine-readable symbols in a raster
// image. Same empty-versus-error contract as TextExtractor.
type CodeExtractor interface {
	ExtractCodes(ctx context.Context, img image.Image) ([]CodePayload, error)
}

package extractor

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"

	apperrors "go-match-checker/internal/errors"
)

// TesseractExtractor implements TextExtractor on top of the Tesseract engine.
// The underlying client is stateful, so calls are serialized with a mutex.
type TesseractExtractor struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// NewTesseractExtractor creates a Tesseract-backed text extractor for the
// given language code (e.g. "eng").
func NewTesseractExtractor(language string) (*TesseractExtractor, error) {
	client := gosseract.NewClient()
	if language != "" {
		if err := client.SetLanguage(language); err != nil {
			client.Close()
			return nil, apperrors.NewExtractionError("unsupported OCR language", err)
		}
	}
	return &TesseractExtractor{client: client}, nil
}

// ExtractText runs a line-level recognition pass and returns one fragment per
// recognized text line. Tesseract reports confidence on a 0-100 scale; it is
// normalized to [0,1] here.
func (t *TesseractExtractor) ExtractText(ctx context.Context, img image.Image) ([]TextFragment, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewExtractionError("text extraction aborted", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, apperrors.NewExtractionError("failed to encode image for OCR", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, apperrors.NewExtractionError("tesseract rejected image", err)
	}

	boxes, err := t.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, apperrors.NewExtractionError("tesseract recognition failed", err)
	}

	fragments := make([]TextFragment, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}
		fragments = append(fragments, TextFragment{
			Text:       text,
			Confidence: box.Confidence / 100,
		})
	}
	return fragments, nil
}

// Close releases the Tesseract client.
func (t *TesseractExtractor) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.client.Close()
}

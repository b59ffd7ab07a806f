package extractor

import (
	"context"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/datamatrix"
	"github.com/makiuchi-d/gozxing/qrcode"

	apperrors "go-match-checker/internal/errors"
)

// CodeReader is one symbology decode pass over a binarized image.
type CodeReader struct {
	Format string
	Reader gozxing.Reader
}

// DataMatrixReader returns a Data Matrix decode pass. Serial labels carry
// Data Matrix symbols, so this is normally the first pass.
func DataMatrixReader() CodeReader {
	return CodeReader{Format: "data_matrix", Reader: datamatrix.NewDataMatrixReader()}
}

// QRReader returns a QR Code decode pass.
func QRReader() CodeReader {
	return CodeReader{Format: "qr_code", Reader: qrcode.NewQRCodeReader()}
}

// ZXingExtractor implements CodeExtractor by running each configured reader
// over the image in order. A reader yields at most one payload, so payload
// order follows reader order and the preferred symbology decides payloads[0].
type ZXingExtractor struct {
	readers []CodeReader
}

// NewZXingExtractor creates a code extractor running the given decode passes.
func NewZXingExtractor(readers ...CodeReader) *ZXingExtractor {
	return &ZXingExtractor{readers: readers}
}

// ExtractCodes decodes 2D symbols from the image. A symbology that is simply
// absent from the frame is a normal empty outcome; only binarization
// failures and decoder faults on every pass surface as errors.
func (z *ZXingExtractor) ExtractCodes(ctx context.Context, img image.Image) ([]CodePayload, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewDecodeError("code extraction aborted", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, apperrors.NewDecodeError("failed to binarize image", err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}

	var payloads []CodePayload
	var lastFault error
	for _, reader := range z.readers {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.NewDecodeError("code extraction aborted", err)
		}

		result, err := reader.Reader.Decode(bmp, hints)
		if err != nil {
			// A not-found outcome means this symbology is not in the frame.
			// Checksum and format faults mean a symbol was seen but could
			// not be decoded cleanly; keep scanning, but remember the fault.
			if _, notFound := err.(gozxing.NotFoundException); !notFound {
				lastFault = err
			}
			continue
		}

		payloads = append(payloads, CodePayload{
			Raw:     result.GetRawBytes(),
			Decoded: result.GetText(),
			Format:  reader.Format,
		})
	}

	if len(payloads) == 0 && lastFault != nil {
		return nil, apperrors.NewDecodeError("symbol detected but could not be decoded", lastFault)
	}
	return payloads, nil
}

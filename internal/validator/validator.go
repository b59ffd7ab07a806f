package validator

import (
	"fmt"
	"strings"

	apperrors "go-match-checker/internal/errors"
	"go-match-checker/internal/extractor"
)

// The serial number sits at a fixed offset inside the code payload. The
// surrounding header/trailer layout is an external labeling convention; the
// offsets are a fixed contract, not something to generalize or configure.
const (
	serialOffset  = 7
	serialLength  = 6
	minPayloadLen = serialOffset + serialLength
)

// Result is the outcome of a single validation run. It is a pure function of
// the fragment and payload sequences handed in; nothing is carried across
// runs.
type Result struct {
	Verdict      Verdict `json:"verdict"`
	SerialNumber string  `json:"serial_number,omitempty"`
	CombinedText string  `json:"combined_text,omitempty"`
	DetectedSide Side    `json:"detected_side,omitempty"`
	Reason       string  `json:"reason"`
}

// CombineFragments joins fragment texts with single spaces, preserving
// extractor order. Confidence values are ignored on purpose: low-confidence
// fragments count the same as high-confidence ones.
func CombineFragments(fragments []extractor.TextFragment) string {
	parts := make([]string, len(fragments))
	for i, f := range fragments {
		parts[i] = f.Text
	}
	return strings.Join(parts, " ")
}

// SerialFromPayload slices the serial number out of a decoded payload. A
// payload shorter than the serial end offset is malformed and is never
// padded or truncated into shape.
func SerialFromPayload(decoded string) (string, error) {
	runes := []rune(decoded)
	if len(runes) < minPayloadLen {
		return "", apperrors.NewMalformedPayloadError(
			fmt.Sprintf("payload has %d characters, need at least %d to hold a serial number",
				len(runes), minPayloadLen), nil)
	}
	return string(runes[serialOffset : serialOffset+serialLength]), nil
}

// Validate cross-checks the recognized text fragments against the first code
// payload and produces the verdict for one captured image.
//
// Empty inputs are normal outcomes, never errors: missing detections yield
// the incomplete verdicts. The only error condition is a malformed payload
// (too short for the serial offset), in which case no match/mismatch verdict
// is produced.
func Validate(fragments []extractor.TextFragment, payloads []extractor.CodePayload) (Result, error) {
	textDetected := len(fragments) > 0
	codeDetected := len(payloads) > 0

	switch {
	case !textDetected && !codeDetected:
		return Result{
			Verdict: VerdictIncompleteNoDetection,
			Reason:  "neither text nor a machine-readable code was found",
		}, nil
	case textDetected && !codeDetected:
		return Result{
			Verdict:      VerdictIncompletePartial,
			DetectedSide: SideText,
			CombinedText: CombineFragments(fragments),
			Reason:       "text was found but no machine-readable code",
		}, nil
	case !textDetected && codeDetected:
		return Result{
			Verdict:      VerdictIncompletePartial,
			DetectedSide: SideCode,
			Reason:       "a machine-readable code was found but no text",
		}, nil
	}

	// One item per photo: only the first payload carries the serial, any
	// further payloads are ignored.
	serial, err := SerialFromPayload(payloads[0].Decoded)
	if err != nil {
		return Result{}, err
	}

	combined := CombineFragments(fragments)

	// Exact, case-sensitive substring containment. No fuzzy matching, no
	// trimming of surrounding punctuation.
	if strings.Contains(combined, serial) {
		return Result{
			Verdict:      VerdictMatch,
			SerialNumber: serial,
			CombinedText: combined,
			Reason:       fmt.Sprintf("serial number %q found in recognized text", serial),
		}, nil
	}
	return Result{
		Verdict:      VerdictMismatch,
		SerialNumber: serial,
		CombinedText: combined,
		Reason:       fmt.Sprintf("serial number %q not found in recognized text", serial),
	}, nil
}

package models

// TextFragment is one recognized text fragment as exposed in API responses
type TextFragment struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// CodePayload is one decoded 2D symbol as exposed in API responses
type CodePayload struct {
	Decoded string `json:"decoded"`
	Format  string `json:"format,omitempty"`
	Raw     []byte `json:"raw,omitempty"`
}

// CaptureQuality summarizes how usable the captured frame looked. Advisory
// only; it explains empty detections but never gates them.
type CaptureQuality struct {
	Blurry        bool `json:"blurry"`
	TooDark       bool `json:"too_dark"`
	TooBright     bool `json:"too_bright"`
	Overexposed   bool `json:"overexposed"`
	Oversaturated bool `json:"oversaturated"`
	IncorrectWB   bool `json:"incorrect_white_balance"`

	LaplacianVar float64 `json:"laplacian_variance"`
	Brightness   float64 `json:"brightness"`

	Issues []string `json:"issues,omitempty"`
}

// Diagnostics carries information that accompanies a verdict without being
// part of it. Extractor faults land here so they stay distinguishable from
// genuine empty detection even though the verdict path is the same.
type Diagnostics struct {
	TextExtractionError string `json:"text_extraction_error,omitempty"`
	CodeExtractionError string `json:"code_extraction_error,omitempty"`

	// SerialEditDistance is the smallest edit distance between the serial
	// and any same-length window of the combined text. Reported on
	// mismatches to help operators judge whether OCR misread a character.
	// Never used in the matching rule itself.
	SerialEditDistance *int `json:"serial_edit_distance,omitempty"`

	// Source metadata from the pre-fetch HEAD probe, when the backend
	// supports one
	SourceContentType   string `json:"source_content_type,omitempty"`
	SourceContentLength int64  `json:"source_content_length,omitempty"`

	CaptureQuality *CaptureQuality `json:"capture_quality,omitempty"`
}

// ValidationResponse is the full result of validating one captured image
type ValidationResponse struct {
	ImageSource       string  `json:"image_source"`
	Timestamp         string  `json:"timestamp"`
	ProcessingTimeSec float64 `json:"processing_time_sec"`

	Verdict      string `json:"verdict"`
	SerialNumber string `json:"serial_number,omitempty"`
	CombinedText string `json:"combined_text,omitempty"`
	DetectedSide string `json:"detected_side,omitempty"`
	Reason       string `json:"reason"`

	Fragments []TextFragment `json:"fragments"`
	Payloads  []CodePayload  `json:"payloads"`

	Diagnostics Diagnostics `json:"diagnostics"`
}

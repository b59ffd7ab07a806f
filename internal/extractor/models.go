package extractor

// TextFragment is one piece of human-readable text located by the
// recognition engine. Confidence is normalized to [0,1] and is reported as-is:
// fragments are never filtered by confidence. Fragment order is whatever the
// engine returned; callers must not assume spatial ordering.
type TextFragment struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// CodePayload is the content of one decoded machine-readable symbol.
type CodePayload struct {
	Raw     []byte `json:"raw,omitempty"`
	Decoded string `json:"decoded"`
	Format  string `json:"format,omitempty"`
}

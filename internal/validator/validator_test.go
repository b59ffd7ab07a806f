package validator

import (
	"reflect"
	"testing"

	apperrors "go-match-checker/internal/errors"
	"go-match-checker/internal/extractor"
)

func fragments(texts ...string) []extractor.TextFragment {
	out := make([]extractor.TextFragment, len(texts))
	for i, text := range texts {
		out[i] = extractor.TextFragment{Text: text, Confidence: 0.9}
	}
	return out
}

func payloads(decoded ...string) []extractor.CodePayload {
	out := make([]extractor.CodePayload, len(decoded))
	for i, d := range decoded {
		out[i] = extractor.CodePayload{Decoded: d, Raw: []byte(d)}
	}
	return out
}

func TestValidate_Match(t *testing.T) {
	result, err := Validate(
		fragments("ABC SN123456 XYZ"),
		payloads("HDR0001123456CHK"),
	)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if result.Verdict != VerdictMatch {
		t.Errorf("Verdict = %q, want %q", result.Verdict, VerdictMatch)
	}
	if result.SerialNumber != "123456" {
		t.Errorf("SerialNumber = %q, want %q", result.SerialNumber, "123456")
	}
	if result.CombinedText != "ABC SN123456 XYZ" {
		t.Errorf("CombinedText = %q, want %q", result.CombinedText, "ABC SN123456 XYZ")
	}
}

func TestValidate_Mismatch(t *testing.T) {
	result, err := Validate(
		fragments("ABC XYZ"),
		payloads("HDR0001999999CHK"),
	)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if result.Verdict != VerdictMismatch {
		t.Errorf("Verdict = %q, want %q", result.Verdict, VerdictMismatch)
	}
	if result.SerialNumber != "999999" {
		t.Errorf("SerialNumber = %q, want %q", result.SerialNumber, "999999")
	}
	// Mismatch details must still carry the combined text for auditing
	if result.CombinedText != "ABC XYZ" {
		t.Errorf("CombinedText = %q, want %q", result.CombinedText, "ABC XYZ")
	}
}

func TestValidate_NoDetection(t *testing.T) {
	result, err := Validate(nil, nil)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if result.Verdict != VerdictIncompleteNoDetection {
		t.Errorf("Verdict = %q, want %q", result.Verdict, VerdictIncompleteNoDetection)
	}
}

func TestValidate_PartialDetection(t *testing.T) {
	tests := []struct {
		name      string
		fragments []extractor.TextFragment
		payloads  []extractor.CodePayload
		wantSide  Side
	}{
		{
			name:      "text only",
			fragments: fragments("text"),
			wantSide:  SideText,
		},
		{
			name:     "code only",
			payloads: payloads("HDR0001123456CHK"),
			wantSide: SideCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate(tt.fragments, tt.payloads)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if result.Verdict != VerdictIncompletePartial {
				t.Errorf("Verdict = %q, want %q", result.Verdict, VerdictIncompletePartial)
			}
			if result.DetectedSide != tt.wantSide {
				t.Errorf("DetectedSide = %q, want %q", result.DetectedSide, tt.wantSide)
			}
		})
	}
}

func TestValidate_MalformedPayload(t *testing.T) {
	result, err := Validate(fragments("text"), payloads("short"))
	if err == nil {
		t.Fatal("Expected malformed payload error, got nil")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeMalformedPayload) {
		t.Errorf("error type = %v, want malformed_payload", err)
	}
	// No match/mismatch verdict may leak out alongside the error
	if result.Verdict == VerdictMatch || result.Verdict == VerdictMismatch {
		t.Errorf("unexpected verdict %q for malformed payload", result.Verdict)
	}
}

func TestSerialFromPayload_Boundary(t *testing.T) {
	// Exactly 13 characters: serial is defined and covers offsets 7-12
	serial, err := SerialFromPayload("HDR0001123456")
	if err != nil {
		t.Fatalf("SerialFromPayload(len 13) error = %v", err)
	}
	if serial != "123456" {
		t.Errorf("serial = %q, want %q", serial, "123456")
	}

	// 12 characters is malformed, never truncated
	if _, err := SerialFromPayload("HDR000112345"); err == nil {
		t.Error("Expected error for 12-character payload")
	}
}

func TestValidate_Deterministic(t *testing.T) {
	frags := fragments("ABC SN123456 XYZ", "second line")
	pays := payloads("HDR0001123456CHK")

	first, err := Validate(frags, pays)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Validate(frags, pays)
		if err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d: result %+v differs from first %+v", i, again, first)
		}
	}
}

func TestCombineFragments(t *testing.T) {
	frags := fragments("ABC", "SN123456", "XYZ")

	combined := CombineFragments(frags)
	if combined != "ABC SN123456 XYZ" {
		t.Errorf("CombineFragments() = %q, want %q", combined, "ABC SN123456 XYZ")
	}
	// Recomputing from the same sequence yields an identical string
	if again := CombineFragments(frags); again != combined {
		t.Errorf("CombineFragments() not idempotent: %q vs %q", again, combined)
	}
	if CombineFragments(nil) != "" {
		t.Error("CombineFragments(nil) should be empty")
	}
}

func TestValidate_TrailingPayloadOrderIrrelevant(t *testing.T) {
	frags := fragments("label SN123456")
	base, err := Validate(frags, payloads("HDR0001123456CHK", "AAAA", "BBBB"))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	// Permuting payloads[1:] must not change the outcome
	permuted, err := Validate(frags, payloads("HDR0001123456CHK", "BBBB", "AAAA"))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !reflect.DeepEqual(base, permuted) {
		t.Errorf("permuting trailing payloads changed result: %+v vs %+v", permuted, base)
	}
}

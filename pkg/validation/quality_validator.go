package validation

import "math"

// QualityThresholds defines configurable thresholds for capture quality
// validation
type QualityThresholds struct {
	// Sharpness
	MinLaplacianVariance float64

	// Brightness (0-255 grayscale)
	MinBrightness float64
	MaxBrightness float64

	// Luminance / saturation (normalized 0-1)
	MaxLuminance  float64
	MaxSaturation float64

	// Channel balance
	MaxChannelImbalance float64
}

// DefaultQualityThresholds returns thresholds tuned for handheld label
// photos, where both a text line and a small 2D symbol must stay legible
func DefaultQualityThresholds() QualityThresholds {
	return QualityThresholds{
		MinLaplacianVariance: 100.0,
		MinBrightness:        80.0,
		MaxBrightness:        220.0,
		MaxLuminance:         0.95,
		MaxSaturation:        0.9,
		MaxChannelImbalance:  0.1,
	}
}

// CaptureMetrics carries the raw measurements the validator judges
type CaptureMetrics struct {
	LaplacianVar   float64
	Brightness     float64
	AvgLuminance   float64
	AvgSaturation  float64
	ChannelBalance [3]float64
}

// QualityIssue represents a single capture quality finding
type QualityIssue struct {
	Type        string  `json:"type"`
	Message     string  `json:"message"`
	Severity    string  `json:"severity"` // "error", "warning"
	ActualValue float64 `json:"actual_value,omitempty"`
	Threshold   float64 `json:"threshold,omitempty"`
}

// QualityValidator judges capture metrics against thresholds
type QualityValidator struct {
	thresholds QualityThresholds
}

// NewQualityValidator creates a quality validator with default thresholds
func NewQualityValidator() *QualityValidator {
	return &QualityValidator{thresholds: DefaultQualityThresholds()}
}

// NewQualityValidatorWithThresholds creates a quality validator with custom
// thresholds
func NewQualityValidatorWithThresholds(thresholds QualityThresholds) *QualityValidator {
	return &QualityValidator{thresholds: thresholds}
}

// Validate reports every threshold the capture fails. An empty slice means
// the capture looks usable for recognition.
func (v *QualityValidator) Validate(m CaptureMetrics) []QualityIssue {
	var issues []QualityIssue

	if m.LaplacianVar < v.thresholds.MinLaplacianVariance {
		issues = append(issues, QualityIssue{
			Type:        "blur",
			Message:     "image is too blurry for reliable recognition",
			Severity:    "error",
			ActualValue: m.LaplacianVar,
			Threshold:   v.thresholds.MinLaplacianVariance,
		})
	}

	if m.Brightness < v.thresholds.MinBrightness {
		issues = append(issues, QualityIssue{
			Type:        "too_dark",
			Message:     "image is too dark; improve the lighting",
			Severity:    "error",
			ActualValue: m.Brightness,
			Threshold:   v.thresholds.MinBrightness,
		})
	} else if m.Brightness > v.thresholds.MaxBrightness {
		issues = append(issues, QualityIssue{
			Type:        "too_bright",
			Message:     "image is too bright; reduce the lighting or avoid glare",
			Severity:    "error",
			ActualValue: m.Brightness,
			Threshold:   v.thresholds.MaxBrightness,
		})
	}

	if m.AvgLuminance > v.thresholds.MaxLuminance {
		issues = append(issues, QualityIssue{
			Type:        "overexposed",
			Message:     "image is overexposed",
			Severity:    "warning",
			ActualValue: m.AvgLuminance,
			Threshold:   v.thresholds.MaxLuminance,
		})
	}

	if m.AvgSaturation > v.thresholds.MaxSaturation {
		issues = append(issues, QualityIssue{
			Type:        "oversaturated",
			Message:     "image is oversaturated",
			Severity:    "warning",
			ActualValue: m.AvgSaturation,
			Threshold:   v.thresholds.MaxSaturation,
		})
	}

	if v.hasChannelImbalance(m.ChannelBalance) {
		issues = append(issues, QualityIssue{
			Type:      "incorrect_white_balance",
			Message:   "white balance looks off",
			Severity:  "warning",
			Threshold: v.thresholds.MaxChannelImbalance,
		})
	}

	return issues
}

func (v *QualityValidator) hasChannelImbalance(balance [3]float64) bool {
	r, g, b := balance[0], balance[1], balance[2]
	maxDiff := math.Max(math.Abs(r-g), math.Max(math.Abs(r-b), math.Abs(g-b)))
	return maxDiff > v.thresholds.MaxChannelImbalance
}

// ConvertIssuesToMessages flattens issues into human-readable strings
func (v *QualityValidator) ConvertIssuesToMessages(issues []QualityIssue) []string {
	if len(issues) == 0 {
		return nil
	}
	messages := make([]string, len(issues))
	for i, issue := range issues {
		messages[i] = issue.Message
	}
	return messages
}

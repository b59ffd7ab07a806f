package analyzer

import "image"

// CaptureAnalyzer assesses whether a captured frame is usable for
// recognition. The report is purely advisory: extraction always runs
// regardless of what it says, the findings only explain empty detections.
type CaptureAnalyzer interface {
	Assess(img image.Image) CaptureReport
}

// MetricsCalculator handles raw image metrics computation
type MetricsCalculator interface {
	CalculateBasicMetrics(img image.Image) Metrics
	CalculateLaplacianVariance(gray *image.Gray) float64
	CalculateBrightness(gray *image.Gray) float64
}

// Metrics holds raw per-channel measurement results. Luminance, saturation
// and channel averages are normalized to [0,1].
type Metrics struct {
	AvgLuminance  float64
	AvgSaturation float64
	AvgR          float64
	AvgG          float64
	AvgB          float64
}

// CaptureReport summarizes capture quality for one frame.
type CaptureReport struct {
	Blurry        bool
	TooDark       bool
	TooBright     bool
	Overexposed   bool
	Oversaturated bool
	IncorrectWB   bool

	LaplacianVar float64
	Brightness   float64
	Metrics      Metrics

	Issues []string
}

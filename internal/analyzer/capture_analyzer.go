package analyzer

import (
	"image"
	"image/draw"

	"go-match-checker/pkg/validation"
)

// captureAnalyzer implements CaptureAnalyzer using the metrics calculator
// and the shared quality validator
type captureAnalyzer struct {
	metricsCalculator MetricsCalculator
	qualityValidator  *validation.QualityValidator
	thresholds        validation.QualityThresholds
}

// NewCaptureAnalyzer creates a capture analyzer with default thresholds
func NewCaptureAnalyzer() CaptureAnalyzer {
	thresholds := validation.DefaultQualityThresholds()
	return &captureAnalyzer{
		metricsCalculator: NewMetricsCalculator(),
		qualityValidator:  validation.NewQualityValidatorWithThresholds(thresholds),
		thresholds:        thresholds,
	}
}

// Assess measures the frame and reports every quality finding. The report
// never blocks extraction; it exists to explain empty detections.
func (ca *captureAnalyzer) Assess(img image.Image) CaptureReport {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)

	metrics := ca.metricsCalculator.CalculateBasicMetrics(img)
	laplacianVar := ca.metricsCalculator.CalculateLaplacianVariance(gray)
	brightness := ca.metricsCalculator.CalculateBrightness(gray)

	captureMetrics := validation.CaptureMetrics{
		LaplacianVar:   laplacianVar,
		Brightness:     brightness,
		AvgLuminance:   metrics.AvgLuminance,
		AvgSaturation:  metrics.AvgSaturation,
		ChannelBalance: [3]float64{metrics.AvgR, metrics.AvgG, metrics.AvgB},
	}
	issues := ca.qualityValidator.Validate(captureMetrics)

	return CaptureReport{
		Blurry:        laplacianVar < ca.thresholds.MinLaplacianVariance,
		TooDark:       brightness < ca.thresholds.MinBrightness,
		TooBright:     brightness > ca.thresholds.MaxBrightness,
		Overexposed:   metrics.AvgLuminance > ca.thresholds.MaxLuminance,
		Oversaturated: metrics.AvgSaturation > ca.thresholds.MaxSaturation,
		IncorrectWB:   hasIssueType(issues, "incorrect_white_balance"),
		LaplacianVar:  laplacianVar,
		Brightness:    brightness,
		Metrics:       metrics,
		Issues:        ca.qualityValidator.ConvertIssuesToMessages(issues),
	}
}

func hasIssueType(issues []validation.QualityIssue, issueType string) bool {
	for _, issue := range issues {
		if issue.Type == issueType {
			return true
		}
	}
	return false
}

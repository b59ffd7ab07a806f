package analyzer

import (
	"image/color"
	"testing"
)

func TestAssess_UniformWhiteFrame(t *testing.T) {
	ca := NewCaptureAnalyzer()
	report := ca.Assess(uniformImage(100, 100, color.White))

	if !report.Blurry {
		t.Error("a uniform frame has no edges and should read as blurry")
	}
	if !report.TooBright {
		t.Error("a pure white frame should read as too bright")
	}
	if !report.Overexposed {
		t.Error("a pure white frame should read as overexposed")
	}
	if len(report.Issues) == 0 {
		t.Error("Expected quality issues for a white frame")
	}
}

func TestAssess_UniformDarkFrame(t *testing.T) {
	ca := NewCaptureAnalyzer()
	report := ca.Assess(uniformImage(100, 100, color.Black))

	if !report.TooDark {
		t.Error("a black frame should read as too dark")
	}
	if report.TooBright {
		t.Error("a black frame must not read as too bright")
	}
}

func TestAssess_SharpContrastFrame(t *testing.T) {
	ca := NewCaptureAnalyzer()
	report := ca.Assess(checkerboard(100, 100, 5))

	if report.Blurry {
		t.Errorf("checkerboard should not read as blurry (variance %f)", report.LaplacianVar)
	}
	// Half black half white averages to mid brightness
	if report.TooDark || report.TooBright {
		t.Errorf("checkerboard brightness %f flagged dark=%v bright=%v",
			report.Brightness, report.TooDark, report.TooBright)
	}
}

package analyzer

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"
)

func uniformImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func checkerboard(w, h, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func toGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}

func TestCalculateBasicMetrics_White(t *testing.T) {
	mc := NewMetricsCalculator()
	metrics := mc.CalculateBasicMetrics(uniformImage(100, 100, color.White))

	if math.Abs(metrics.AvgLuminance-1.0) > 0.01 {
		t.Errorf("AvgLuminance = %f, want ~1.0", metrics.AvgLuminance)
	}
	if metrics.AvgSaturation > 0.01 {
		t.Errorf("AvgSaturation = %f, want ~0", metrics.AvgSaturation)
	}
	for i, channel := range []float64{metrics.AvgR, metrics.AvgG, metrics.AvgB} {
		if math.Abs(channel-1.0) > 0.01 {
			t.Errorf("channel %d = %f, want ~1.0", i, channel)
		}
	}
}

func TestCalculateBasicMetrics_Black(t *testing.T) {
	mc := NewMetricsCalculator()
	metrics := mc.CalculateBasicMetrics(uniformImage(100, 100, color.Black))

	if metrics.AvgLuminance > 0.01 {
		t.Errorf("AvgLuminance = %f, want ~0", metrics.AvgLuminance)
	}
}

func TestCalculateBasicMetrics_EmptyImage(t *testing.T) {
	mc := NewMetricsCalculator()
	metrics := mc.CalculateBasicMetrics(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if metrics != (Metrics{}) {
		t.Errorf("empty image metrics = %+v, want zero value", metrics)
	}
}

func TestCalculateLaplacianVariance(t *testing.T) {
	mc := NewMetricsCalculator()

	// A uniform frame has no edges at all
	flat := mc.CalculateLaplacianVariance(toGray(uniformImage(100, 100, color.White)))
	if flat != 0 {
		t.Errorf("uniform image variance = %f, want 0", flat)
	}

	// A hard checkerboard is full of edges
	sharp := mc.CalculateLaplacianVariance(toGray(checkerboard(100, 100, 5)))
	if sharp <= flat {
		t.Errorf("checkerboard variance %f should exceed uniform variance %f", sharp, flat)
	}
	if sharp < 100 {
		t.Errorf("checkerboard variance = %f, expected a clearly sharp value", sharp)
	}
}

func TestCalculateBrightness(t *testing.T) {
	mc := NewMetricsCalculator()

	bright := mc.CalculateBrightness(toGray(uniformImage(50, 50, color.White)))
	if math.Abs(bright-255) > 1 {
		t.Errorf("white brightness = %f, want ~255", bright)
	}

	dark := mc.CalculateBrightness(toGray(uniformImage(50, 50, color.Black)))
	if dark > 1 {
		t.Errorf("black brightness = %f, want ~0", dark)
	}
}

package analyzer

import (
	"image"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/stat"
)

// metricsCalculator implements MetricsCalculator with per-strip parallelism
type metricsCalculator struct {
	slicePool sync.Pool
}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() MetricsCalculator {
	return &metricsCalculator{
		slicePool: sync.Pool{
			New: func() interface{} {
				return make([]float64, 0, 1024)
			},
		},
	}
}

// CalculateBasicMetrics computes average luminance, saturation and channel
// balance over the frame, processing horizontal strips in parallel
func (mc *metricsCalculator) CalculateBasicMetrics(img image.Image) Metrics {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return Metrics{}
	}

	numWorkers := runtime.NumCPU()
	if height < numWorkers {
		numWorkers = height
	}
	rowsPerWorker := (height + numWorkers - 1) / numWorkers

	type stripResult struct {
		lum, sat, r, g, b float64
		pixels            int
	}

	results := make(chan stripResult, numWorkers)
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		startY := bounds.Min.Y + i*rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > bounds.Max.Y {
			endY = bounds.Max.Y
		}
		wg.Add(1)
		go func(startY, endY int) {
			defer wg.Done()

			var lum, sat, r, g, b float64
			pixels := 0
			for y := startY; y < endY; y++ {
				for x := bounds.Min.X; x < bounds.Max.X; x++ {
					rVal, gVal, bVal, _ := img.At(x, y).RGBA()
					rf := float64(rVal) / 65535.0
					gf := float64(gVal) / 65535.0
					bf := float64(bVal) / 65535.0

					s, v := saturationValue(rf, gf, bf)
					sat += s
					lum += v
					r += rf
					g += gf
					b += bf
					pixels++
				}
			}
			results <- stripResult{lum, sat, r, g, b, pixels}
		}(startY, endY)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var totalLum, totalSat, totalR, totalG, totalB float64
	totalPixels := 0
	for res := range results {
		totalLum += res.lum
		totalSat += res.sat
		totalR += res.r
		totalG += res.g
		totalB += res.b
		totalPixels += res.pixels
	}
	if totalPixels == 0 {
		return Metrics{}
	}

	n := float64(totalPixels)
	return Metrics{
		AvgLuminance:  totalLum / n,
		AvgSaturation: totalSat / n,
		AvgR:          totalR / n,
		AvgG:          totalG / n,
		AvgB:          totalB / n,
	}
}

// saturationValue returns the HSV saturation and value components
func saturationValue(r, g, b float64) (s, v float64) {
	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)

	v = max
	if max > 0 {
		s = (max - min) / max
	}
	return s, v
}

// CalculateLaplacianVariance measures sharpness: the variance of the
// Laplacian response over the grayscale frame. Low variance means blur.
func (mc *metricsCalculator) CalculateLaplacianVariance(gray *image.Gray) float64 {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < 3 || height < 3 {
		return 0
	}

	data := mc.slicePool.Get().([]float64)
	defer mc.slicePool.Put(data[:0])

	if cap(data) < (width-2)*(height-2) {
		data = make([]float64, 0, (width-2)*(height-2))
	}

	// Laplacian kernel: [0, 1, 0; 1, -4, 1; 0, 1, 0]
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			center := float64(gray.GrayAt(x, y).Y)
			top := float64(gray.GrayAt(x, y-1).Y)
			bottom := float64(gray.GrayAt(x, y+1).Y)
			left := float64(gray.GrayAt(x-1, y).Y)
			right := float64(gray.GrayAt(x+1, y).Y)

			data = append(data, -4*center+top+bottom+left+right)
		}
	}

	if len(data) == 0 {
		return 0
	}
	return stat.Variance(data, nil)
}

// CalculateBrightness computes average grayscale brightness (0-255)
func (mc *metricsCalculator) CalculateBrightness(gray *image.Gray) float64 {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			total += float64(gray.GrayAt(x, y).Y)
		}
	}
	return total / float64(width*height)
}

package strategy

import (
	"fmt"

	"go-match-checker/internal/config"
	"go-match-checker/internal/extractor"
)

// DecodeStrategy selects which symbology passes run and in what order. The
// first pass that decodes supplies payloads[0], the payload the serial number
// is taken from.
type DecodeStrategy interface {
	Readers() []extractor.CodeReader
	GetStrategyName() string
}

// AutoStrategy tries Data Matrix first (the symbology printed on serial
// labels), then falls back to QR.
type AutoStrategy struct{}

// NewAutoStrategy creates the default decode strategy
func NewAutoStrategy() DecodeStrategy {
	return &AutoStrategy{}
}

// Readers returns the decode passes in preference order
func (s *AutoStrategy) Readers() []extractor.CodeReader {
	return []extractor.CodeReader{extractor.DataMatrixReader(), extractor.QRReader()}
}

// GetStrategyName returns the strategy name
func (s *AutoStrategy) GetStrategyName() string {
	return "auto"
}

// DataMatrixStrategy decodes Data Matrix symbols only.
type DataMatrixStrategy struct{}

// NewDataMatrixStrategy creates a Data Matrix-only decode strategy
func NewDataMatrixStrategy() DecodeStrategy {
	return &DataMatrixStrategy{}
}

// Readers returns the single Data Matrix decode pass
func (s *DataMatrixStrategy) Readers() []extractor.CodeReader {
	return []extractor.CodeReader{extractor.DataMatrixReader()}
}

// GetStrategyName returns the strategy name
func (s *DataMatrixStrategy) GetStrategyName() string {
	return "datamatrix"
}

// QRStrategy decodes QR symbols only.
type QRStrategy struct{}

// NewQRStrategy creates a QR-only decode strategy
func NewQRStrategy() DecodeStrategy {
	return &QRStrategy{}
}

// Readers returns the single QR decode pass
func (s *QRStrategy) Readers() []extractor.CodeReader {
	return []extractor.CodeReader{extractor.QRReader()}
}

// GetStrategyName returns the strategy name
func (s *QRStrategy) GetStrategyName() string {
	return "qr"
}

// ForSymbology maps a configured symbology name to its decode strategy
func ForSymbology(name string) (DecodeStrategy, error) {
	switch name {
	case config.SymbologyAuto:
		return NewAutoStrategy(), nil
	case config.SymbologyDataMatrix:
		return NewDataMatrixStrategy(), nil
	case config.SymbologyQR:
		return NewQRStrategy(), nil
	default:
		return nil, fmt.Errorf("unsupported symbology: %s", name)
	}
}

package factory

import (
	"fmt"

	"go-match-checker/internal/config"
	"go-match-checker/internal/extractor"
	"go-match-checker/internal/storage"
	"go-match-checker/internal/strategy"
)

// StorageFactory creates image fetchers for the configured backend
type StorageFactory interface {
	CreateFetcher(cfg *config.Config) (storage.ImageFetcher, error)
}

// ExtractorFactory creates the recognition engines
type ExtractorFactory interface {
	CreateTextExtractor(cfg *config.Config) (extractor.TextExtractor, error)
	CreateCodeExtractor(cfg *config.Config) (extractor.CodeExtractor, error)
}

type storageFactory struct{}

// NewStorageFactory creates a new storage factory
func NewStorageFactory() StorageFactory {
	return &storageFactory{}
}

// CreateFetcher creates a fetcher for the configured storage backend
func (f *storageFactory) CreateFetcher(cfg *config.Config) (storage.ImageFetcher, error) {
	switch cfg.StorageBackend {
	case config.StorageHTTP:
		return storage.NewHTTPImageFetcher(), nil
	case config.StorageAzure:
		return storage.NewAzureImageFetcher(cfg.AzureStorageAccount, cfg.AzureStorageKey)
	case config.StorageLocal:
		return storage.NewLocalImageFetcher(), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.StorageBackend)
	}
}

type extractorFactory struct{}

// NewExtractorFactory creates a new extractor factory
func NewExtractorFactory() ExtractorFactory {
	return &extractorFactory{}
}

// CreateTextExtractor creates the Tesseract-backed text extractor
func (f *extractorFactory) CreateTextExtractor(cfg *config.Config) (extractor.TextExtractor, error) {
	return extractor.NewTesseractExtractor(cfg.OCRLanguage)
}

// CreateCodeExtractor creates the code extractor for the configured
// symbology strategy
func (f *extractorFactory) CreateCodeExtractor(cfg *config.Config) (extractor.CodeExtractor, error) {
	decodeStrategy, err := strategy.ForSymbology(cfg.CodeSymbology)
	if err != nil {
		return nil, err
	}
	return extractor.NewZXingExtractor(decodeStrategy.Readers()...), nil
}

// ComponentFactory combines all factories
type ComponentFactory struct {
	StorageFactory   StorageFactory
	ExtractorFactory ExtractorFactory
}

// NewComponentFactory creates a new component factory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{
		StorageFactory:   NewStorageFactory(),
		ExtractorFactory: NewExtractorFactory(),
	}
}

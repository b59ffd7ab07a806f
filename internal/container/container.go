package container

import (
	"fmt"
	"net/http"

	"go-match-checker/internal/analyzer"
	"go-match-checker/internal/config"
	"go-match-checker/internal/extractor"
	"go-match-checker/internal/factory"
	"go-match-checker/internal/logger"
	"go-match-checker/internal/observer"
	"go-match-checker/internal/repository"
	"go-match-checker/internal/service"
	"go-match-checker/internal/transport"
)

// Container holds all application dependencies
type Container struct {
	config          *config.Config
	textExtractor   extractor.TextExtractor
	codeExtractor   extractor.CodeExtractor
	captureAnalyzer analyzer.CaptureAnalyzer
	imageRepository repository.ImageRepository
	publisher       *observer.EventPublisher
	metricsObserver *observer.MetricsObserver
	matchService    service.MatchService
	handler         http.Handler
}

// NewContainer builds the dependency graph for the configured backends
func NewContainer(cfg *config.Config) (*Container, error) {
	factories := factory.NewComponentFactory()

	fetcher, err := factories.StorageFactory.CreateFetcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage fetcher: %w", err)
	}

	textExtractor, err := factories.ExtractorFactory.CreateTextExtractor(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create text extractor: %w", err)
	}

	codeExtractor, err := factories.ExtractorFactory.CreateCodeExtractor(cfg)
	if err != nil {
		textExtractor.Close()
		return nil, fmt.Errorf("failed to create code extractor: %w", err)
	}

	publisher := observer.NewEventPublisher()
	metricsObserver := observer.NewMetricsObserver()
	publisher.Subscribe(observer.NewLoggingObserver(logger.Logger))
	publisher.Subscribe(metricsObserver)

	imageRepository := repository.NewImageRepository(fetcher)
	captureAnalyzer := analyzer.NewCaptureAnalyzer()
	matchService := service.NewMatchService(
		imageRepository,
		textExtractor,
		codeExtractor,
		captureAnalyzer,
		publisher,
		cfg,
	)
	handler := transport.NewHandler(matchService, metricsObserver, cfg)

	return &Container{
		config:          cfg,
		textExtractor:   textExtractor,
		codeExtractor:   codeExtractor,
		captureAnalyzer: captureAnalyzer,
		imageRepository: imageRepository,
		publisher:       publisher,
		metricsObserver: metricsObserver,
		matchService:    matchService,
		handler:         handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Service returns the match service
func (c *Container) Service() service.MatchService {
	return c.matchService
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Metrics returns a snapshot of the validation counters
func (c *Container) Metrics() map[string]interface{} {
	return c.metricsObserver.GetMetrics()
}

// Close shuts down the service worker pool and releases engine resources
func (c *Container) Close() error {
	serviceErr := c.matchService.Close()
	extractorErr := c.textExtractor.Close()
	if serviceErr != nil {
		return serviceErr
	}
	return extractorErr
}

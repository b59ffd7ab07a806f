package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	StorageHTTP  = "http"
	StorageAzure = "azure"
	StorageLocal = "local"
)

// Symbology names accepted in CODE_SYMBOLOGY.
const (
	SymbologyAuto       = "auto"
	SymbologyDataMatrix = "datamatrix"
	SymbologyQR         = "qr"
)

type Config struct {
	Host               string
	Port               string
	RequestTimeout     time.Duration
	ImageFetchTimeout  time.Duration
	ExtractionTimeout  time.Duration
	MaxRequestBodySize int64

	StorageBackend      string
	AzureStorageAccount string
	AzureStorageKey     string

	OCRLanguage   string
	CodeSymbology string
}

func (c *Config) ServerAddress() string {
	// Trim any whitespace from host and port
	host := strings.TrimSpace(c.Host)
	port := strings.TrimSpace(c.Port)
	return net.JoinHostPort(host, port)
}

func LoadFromEnv() (*Config, error) {
	// Set defaults
	cfg := &Config{
		Host:               getEnvOrDefault("HOST", "0.0.0.0"),
		Port:               getEnvOrDefault("PORT", "8080"),
		RequestTimeout:     parseDurationOrDefault("REQUEST_TIMEOUT", 30*time.Second),
		ImageFetchTimeout:  parseDurationOrDefault("IMAGE_FETCH_TIMEOUT", 15*time.Second),
		ExtractionTimeout:  parseDurationOrDefault("EXTRACTION_TIMEOUT", 20*time.Second),
		MaxRequestBodySize: parseIntOrDefault("MAX_REQUEST_BODY_SIZE", 10*1024*1024), // 10MB

		StorageBackend:      getEnvOrDefault("STORAGE_BACKEND", StorageHTTP),
		AzureStorageAccount: os.Getenv("AZURE_STORAGE_ACCOUNT"),
		AzureStorageKey:     os.Getenv("AZURE_STORAGE_KEY"),

		OCRLanguage:   getEnvOrDefault("OCR_LANGUAGE", "eng"),
		CodeSymbology: getEnvOrDefault("CODE_SYMBOLOGY", SymbologyAuto),
	}

	// Validate port is numeric and in range
	p, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}
	if cfg.MaxRequestBodySize <= 0 {
		return nil, fmt.Errorf("MAX_REQUEST_BODY_SIZE must be > 0 (got %d)", cfg.MaxRequestBodySize)
	}
	if cfg.RequestTimeout <= 0 || cfg.ImageFetchTimeout <= 0 || cfg.ExtractionTimeout <= 0 {
		return nil, fmt.Errorf("timeouts must be > 0 (got request=%s, fetch=%s, extraction=%s)",
			cfg.RequestTimeout, cfg.ImageFetchTimeout, cfg.ExtractionTimeout)
	}

	switch cfg.StorageBackend {
	case StorageHTTP, StorageLocal:
	case StorageAzure:
		if cfg.AzureStorageAccount == "" || cfg.AzureStorageKey == "" {
			return nil, fmt.Errorf("STORAGE_BACKEND=azure requires AZURE_STORAGE_ACCOUNT and AZURE_STORAGE_KEY")
		}
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND: %q", cfg.StorageBackend)
	}

	switch cfg.CodeSymbology {
	case SymbologyAuto, SymbologyDataMatrix, SymbologyQR:
	default:
		return nil, fmt.Errorf("invalid CODE_SYMBOLOGY: %q", cfg.CodeSymbology)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

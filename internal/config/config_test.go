package config

import (
	"testing"
	"time"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.RequestTimeout)
	}
	if cfg.StorageBackend != StorageHTTP {
		t.Errorf("StorageBackend = %q, want http", cfg.StorageBackend)
	}
	if cfg.OCRLanguage != "eng" {
		t.Errorf("OCRLanguage = %q, want eng", cfg.OCRLanguage)
	}
	if cfg.CodeSymbology != SymbologyAuto {
		t.Errorf("CodeSymbology = %q, want auto", cfg.CodeSymbology)
	}
}

func TestLoadFromEnv_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	if _, err := LoadFromEnv(); err == nil {
		t.Error("Expected error for invalid PORT")
	}
}

func TestLoadFromEnv_AzureRequiresCredentials(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "azure")
	if _, err := LoadFromEnv(); err == nil {
		t.Error("Expected error for azure backend without credentials")
	}

	t.Setenv("AZURE_STORAGE_ACCOUNT", "account")
	t.Setenv("AZURE_STORAGE_KEY", "key")
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.StorageBackend != StorageAzure {
		t.Errorf("StorageBackend = %q, want azure", cfg.StorageBackend)
	}
}

func TestLoadFromEnv_InvalidSymbology(t *testing.T) {
	t.Setenv("CODE_SYMBOLOGY", "pdf417")
	if _, err := LoadFromEnv(); err == nil {
		t.Error("Expected error for unsupported symbology")
	}
}

func TestServerAddress(t *testing.T) {
	cfg := &Config{Host: " 127.0.0.1 ", Port: " 9000 "}
	if addr := cfg.ServerAddress(); addr != "127.0.0.1:9000" {
		t.Errorf("ServerAddress() = %q, want 127.0.0.1:9000", addr)
	}
}

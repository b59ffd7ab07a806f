// Command checker validates a single captured image: it reads the photo,
// runs text and code extraction, and reports whether the printed serial
// number matches the one encoded in the 2D symbol. Exit status 0 means
// MATCH; everything else (mismatch, incomplete detection, errors) is 1.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go-match-checker/internal/config"
	"go-match-checker/internal/container"
	"go-match-checker/internal/validator"
	"go-match-checker/pkg/models"
)

func main() {
	var (
		source   = flag.String("image", "", "file path or URL of the captured image (required)")
		backend  = flag.String("storage", "", "override storage backend: http, azure or local")
		jsonOut  = flag.Bool("json", false, "print the full validation response as JSON")
		showDiag = flag.Bool("diagnostics", false, "print capture quality and extraction diagnostics")
	)
	flag.Parse()

	if *source == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *backend != "" {
		cfg.StorageBackend = *backend
	} else if !strings.Contains(*source, "://") {
		// A bare path means a saved capture on disk
		cfg.StorageBackend = config.StorageLocal
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialization failed: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	response, err := c.Service().ValidateImageSource(ctx, *source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation failed: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode response: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Printf("verdict: %s\n", response.Verdict)
		fmt.Printf("reason:  %s\n", response.Reason)
		if response.SerialNumber != "" {
			fmt.Printf("serial:  %s\n", response.SerialNumber)
		}
		if response.CombinedText != "" {
			fmt.Printf("text:    %s\n", response.CombinedText)
		}
		if *showDiag {
			printDiagnostics(response)
		}
	}

	if response.Verdict == string(validator.VerdictMatch) {
		os.Exit(0)
	}
	os.Exit(1)
}

func printDiagnostics(response *models.ValidationResponse) {
	diag := response.Diagnostics
	if diag.TextExtractionError != "" {
		fmt.Printf("text extraction error: %s\n", diag.TextExtractionError)
	}
	if diag.CodeExtractionError != "" {
		fmt.Printf("code extraction error: %s\n", diag.CodeExtractionError)
	}
	if diag.SerialEditDistance != nil {
		fmt.Printf("closest edit distance: %d\n", *diag.SerialEditDistance)
	}
	if quality := diag.CaptureQuality; quality != nil && len(quality.Issues) > 0 {
		fmt.Println("capture quality issues:")
		for _, issue := range quality.Issues {
			fmt.Printf("  - %s\n", issue)
		}
	}
}

package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func pngFixture(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{10, 20, 30, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return buf.Bytes()
}

func TestHTTPImageFetcher_RetryLogic(t *testing.T) {
	tests := []struct {
		name          string
		responses     []int // Status codes to return in sequence
		expectRetries int32 // Expected number of requests
		expectError   bool
		errorContains string
	}{
		{
			name:          "Success on first attempt",
			responses:     []int{200},
			expectRetries: 1,
			expectError:   false,
		},
		{
			name:          "Success on second attempt after 5xx",
			responses:     []int{500, 200},
			expectRetries: 2,
			expectError:   false,
		},
		{
			name:          "4xx client error - no retry",
			responses:     []int{404},
			expectRetries: 1,
			expectError:   true,
			errorContains: "client error: status code 404",
		},
		{
			name:          "4xx after 5xx - retry until 4xx then stop",
			responses:     []int{500, 404},
			expectRetries: 2,
			expectError:   true,
			errorContains: "client error: status code 404",
		},
		{
			name:          "All 5xx errors - retry all attempts",
			responses:     []int{500, 502, 503},
			expectRetries: 3,
			expectError:   true,
			errorContains: "server error: status code 503",
		},
	}

	body := pngFixture(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := atomic.AddInt32(&requests, 1)
				status := tt.responses[len(tt.responses)-1]
				if int(n) <= len(tt.responses) {
					status = tt.responses[n-1]
				}
				if status == http.StatusOK {
					w.Header().Set("Content-Type", "image/png")
					w.WriteHeader(status)
					w.Write(body)
					return
				}
				w.WriteHeader(status)
			}))
			defer server.Close()

			fetcher := NewHTTPImageFetcher()
			img, err := fetcher.FetchImage(context.Background(), server.URL)

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if tt.errorContains != "" && !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errorContains)
				}
			} else {
				if err != nil {
					t.Fatalf("FetchImage() error = %v", err)
				}
				if img == nil || img.Bounds().Dx() != 4 {
					t.Error("decoded image does not match fixture")
				}
			}

			if got := atomic.LoadInt32(&requests); got != tt.expectRetries {
				t.Errorf("requests = %d, want %d", got, tt.expectRetries)
			}
		})
	}
}

func TestHTTPImageFetcher_BadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not an image"))
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher()
	if _, err := fetcher.FetchImage(context.Background(), server.URL); err == nil {
		t.Error("Expected decode error for non-image payload")
	}
}

func TestHTTPImageFetcher_InvalidURL(t *testing.T) {
	fetcher := NewHTTPImageFetcher()
	if _, err := fetcher.FetchImage(context.Background(), "http://\x7f"); err == nil {
		t.Error("Expected error for invalid URL")
	}
}

package service

import (
	"context"
	"errors"
	"image"
	"sync"
	"time"

	"github.com/arbovm/levenshtein"
	"github.com/sirupsen/logrus"

	"go-match-checker/internal/analyzer"
	"go-match-checker/internal/config"
	apperrors "go-match-checker/internal/errors"
	"go-match-checker/internal/extractor"
	"go-match-checker/internal/logger"
	"go-match-checker/internal/observer"
	"go-match-checker/internal/repository"
	"go-match-checker/internal/validator"
	"go-match-checker/pkg/models"
)

// MatchService runs the full validation pipeline for one captured image:
// obtain the image, run both extraction passes, cross-check text against the
// code payload and report the verdict with diagnostics.
type MatchService interface {
	// ValidateImageSource fetches the image behind a source reference and
	// validates it
	ValidateImageSource(ctx context.Context, source string) (*models.ValidationResponse, error)

	// ValidateImage validates an already obtained image
	ValidateImage(ctx context.Context, img image.Image, source string) (*models.ValidationResponse, error)

	// ValidateSourceName checks whether the source reference is acceptable
	ValidateSourceName(source string) error

	// Close releases the worker pool
	Close() error
}

type matchService struct {
	imageRepo         repository.ImageRepository
	textExtractor     extractor.TextExtractor
	codeExtractor     extractor.CodeExtractor
	capture           analyzer.CaptureAnalyzer
	pool              *WorkerPool
	publisher         observer.Subject
	fetchTimeout      time.Duration
	extractionTimeout time.Duration
}

// NewMatchService wires the validation pipeline. The pool runs the two
// extraction passes concurrently; publisher may be nil when nobody listens.
func NewMatchService(
	imageRepo repository.ImageRepository,
	textExtractor extractor.TextExtractor,
	codeExtractor extractor.CodeExtractor,
	capture analyzer.CaptureAnalyzer,
	publisher observer.Subject,
	cfg *config.Config,
) MatchService {
	pool := NewWorkerPool(2)
	pool.Start()

	return &matchService{
		imageRepo:         imageRepo,
		textExtractor:     textExtractor,
		codeExtractor:     codeExtractor,
		capture:           capture,
		pool:              pool,
		publisher:         publisher,
		fetchTimeout:      cfg.ImageFetchTimeout,
		extractionTimeout: cfg.ExtractionTimeout,
	}
}

// Close drains and shuts down the worker pool; safe to call more than once
func (s *matchService) Close() error {
	s.pool.Close()
	return nil
}

// ValidateSourceName checks whether the source reference is acceptable
func (s *matchService) ValidateSourceName(source string) error {
	return s.imageRepo.ValidateImageSource(source)
}

// ValidateImageSource fetches the image and validates it
func (s *matchService) ValidateImageSource(ctx context.Context, source string) (*models.ValidationResponse, error) {
	if err := s.ValidateSourceName(source); err != nil {
		return nil, apperrors.NewValidationError("invalid image source", err)
	}

	s.notify(ctx, observer.ValidationEvent{
		EventType:   observer.ValidationStarted,
		Timestamp:   time.Now(),
		ImageSource: source,
	})

	// Metadata is advisory; a failed probe never blocks the fetch
	metadata, metaErr := s.imageRepo.GetImageMetadata(ctx, source)
	if metaErr != nil {
		logger.WithError(metaErr).WithFields(logrus.Fields{
			"image_source": source,
		}).Debug("Image metadata probe failed")
		metadata = nil
	} else if metadata != nil && metadata.ContentType != "" {
		logger.WithFields(logrus.Fields{
			"image_source":   source,
			"content_type":   metadata.ContentType,
			"content_length": metadata.ContentLength,
		}).Debug("Image metadata probed")
	}

	fetchCtx, cancelFetch := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancelFetch()

	img, err := s.imageRepo.FetchImage(fetchCtx, source)
	if err != nil {
		s.notify(ctx, observer.ValidationEvent{
			EventType:    observer.ImageFetchFailed,
			Timestamp:    time.Now(),
			ImageSource:  source,
			ErrorMessage: err.Error(),
		})
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewTimeoutError("image fetch timeout", err)
		}
		return nil, apperrors.NewNetworkError("failed to fetch image", err)
	}

	s.notify(ctx, observer.ValidationEvent{
		EventType:   observer.ImageFetched,
		Timestamp:   time.Now(),
		ImageSource: source,
		Success:     true,
	})

	response, err := s.ValidateImage(ctx, img, source)
	if err != nil {
		return nil, err
	}
	if metadata != nil {
		response.Diagnostics.SourceContentType = metadata.ContentType
		response.Diagnostics.SourceContentLength = metadata.ContentLength
	}
	return response, nil
}

// ValidateImage runs quality assessment, both extraction passes and the
// verdict computation over one image.
func (s *matchService) ValidateImage(ctx context.Context, img image.Image, source string) (*models.ValidationResponse, error) {
	start := time.Now()

	report := s.capture.Assess(img)

	// The two passes are independent: neither reads the other's output, so
	// they run concurrently. The verdict only ever sees completed sequences.
	var (
		wg        sync.WaitGroup
		fragments []extractor.TextFragment
		payloads  []extractor.CodePayload
		textErr   error
		codeErr   error
	)
	extractCtx, cancelExtract := context.WithTimeout(ctx, s.extractionTimeout)
	defer cancelExtract()

	wg.Add(2)
	s.pool.Submit(func() {
		defer wg.Done()
		fragments, textErr = s.textExtractor.ExtractText(extractCtx, img)
	})
	s.pool.Submit(func() {
		defer wg.Done()
		payloads, codeErr = s.codeExtractor.ExtractCodes(extractCtx, img)
	})
	wg.Wait()

	diagnostics := models.Diagnostics{
		CaptureQuality: convertCaptureReport(report),
	}

	// An engine fault yields the same verdict path as finding nothing, but
	// it must never be reported as if the engine simply found nothing.
	if textErr != nil {
		logger.WithError(textErr).WithFields(logrus.Fields{
			"image_source": source,
		}).Error("Text extraction failed; proceeding with zero fragments")
		diagnostics.TextExtractionError = textErr.Error()
		fragments = nil
	}
	if codeErr != nil {
		logger.WithError(codeErr).WithFields(logrus.Fields{
			"image_source": source,
		}).Error("Code extraction failed; proceeding with zero payloads")
		diagnostics.CodeExtractionError = codeErr.Error()
		payloads = nil
	}

	result, err := validator.Validate(fragments, payloads)
	if err != nil {
		s.notify(ctx, observer.ValidationEvent{
			EventType:      observer.ValidationFailed,
			Timestamp:      time.Now(),
			ImageSource:    source,
			ProcessingTime: time.Since(start),
			ErrorMessage:   err.Error(),
		})
		return nil, err
	}

	if result.Verdict == validator.VerdictMismatch {
		distance := closestSerialDistance(result.SerialNumber, result.CombinedText)
		diagnostics.SerialEditDistance = &distance
	}

	response := &models.ValidationResponse{
		ImageSource:       source,
		Timestamp:         start.Format("2006-01-02T15:04:05Z07:00"),
		ProcessingTimeSec: time.Since(start).Seconds(),
		Verdict:           string(result.Verdict),
		SerialNumber:      result.SerialNumber,
		CombinedText:      result.CombinedText,
		DetectedSide:      string(result.DetectedSide),
		Reason:            result.Reason,
		Fragments:         convertFragments(fragments),
		Payloads:          convertPayloads(payloads),
		Diagnostics:       diagnostics,
	}

	s.notify(ctx, observer.ValidationEvent{
		EventType:      observer.ValidationCompleted,
		Timestamp:      time.Now(),
		ImageSource:    source,
		ProcessingTime: time.Since(start),
		Verdict:        response.Verdict,
		Success:        true,
	})

	return response, nil
}

func (s *matchService) notify(ctx context.Context, event observer.ValidationEvent) {
	if s.publisher != nil {
		s.publisher.NotifyObservers(ctx, event)
	}
}

// closestSerialDistance returns the smallest edit distance between the
// serial and any window of the same length in the combined text. Diagnostic
// only; the matching rule stays exact containment.
func closestSerialDistance(serial, combined string) int {
	serialRunes := []rune(serial)
	combinedRunes := []rune(combined)

	if len(combinedRunes) <= len(serialRunes) {
		return levenshtein.Distance(serial, combined)
	}

	best := len(serialRunes)
	for i := 0; i+len(serialRunes) <= len(combinedRunes); i++ {
		window := string(combinedRunes[i : i+len(serialRunes)])
		if d := levenshtein.Distance(serial, window); d < best {
			best = d
		}
		if best == 0 {
			break
		}
	}
	return best
}

func convertFragments(fragments []extractor.TextFragment) []models.TextFragment {
	out := make([]models.TextFragment, len(fragments))
	for i, f := range fragments {
		out[i] = models.TextFragment{Text: f.Text, Confidence: f.Confidence}
	}
	return out
}

func convertPayloads(payloads []extractor.CodePayload) []models.CodePayload {
	out := make([]models.CodePayload, len(payloads))
	for i, p := range payloads {
		out[i] = models.CodePayload{Decoded: p.Decoded, Format: p.Format, Raw: p.Raw}
	}
	return out
}

func convertCaptureReport(report analyzer.CaptureReport) *models.CaptureQuality {
	return &models.CaptureQuality{
		Blurry:        report.Blurry,
		TooDark:       report.TooDark,
		TooBright:     report.TooBright,
		Overexposed:   report.Overexposed,
		Oversaturated: report.Oversaturated,
		IncorrectWB:   report.IncorrectWB,
		LaplacianVar:  report.LaplacianVar,
		Brightness:    report.Brightness,
		Issues:        report.Issues,
	}
}

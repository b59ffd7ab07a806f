package observer

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// EventType represents the type of validation event
type EventType string

const (
	// ValidationStarted when a validation run begins
	ValidationStarted EventType = "validation_started"
	// ValidationCompleted when a run produced a verdict
	ValidationCompleted EventType = "validation_completed"
	// ValidationFailed when a run ended in an error instead of a verdict
	ValidationFailed EventType = "validation_failed"
	// ImageFetched when the source image was obtained
	ImageFetched EventType = "image_fetched"
	// ImageFetchFailed when the source image could not be obtained
	ImageFetchFailed EventType = "image_fetch_failed"
)

// ValidationEvent represents one lifecycle event of a validation run
type ValidationEvent struct {
	EventType      EventType     `json:"event_type"`
	Timestamp      time.Time     `json:"timestamp"`
	ImageSource    string        `json:"image_source"`
	ProcessingTime time.Duration `json:"processing_time"`
	Verdict        string        `json:"verdict,omitempty"`
	Success        bool          `json:"success"`
	ErrorMessage   string        `json:"error_message,omitempty"`
}

// Observer defines the interface for event observers
type Observer interface {
	OnEvent(ctx context.Context, event ValidationEvent)
	GetObserverName() string
}

// Subject defines the interface for event publishers
type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	NotifyObservers(ctx context.Context, event ValidationEvent)
}

// EventPublisher is a thread-safe Subject implementation
type EventPublisher struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewEventPublisher creates an empty publisher
func NewEventPublisher() *EventPublisher {
	return &EventPublisher{}
}

// Subscribe registers an observer
func (p *EventPublisher) Subscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, observer)
}

// Unsubscribe removes an observer by name
func (p *EventPublisher) Unsubscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, existing := range p.observers {
		if existing.GetObserverName() == observer.GetObserverName() {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			return
		}
	}
}

// NotifyObservers delivers the event to every subscriber
func (p *EventPublisher) NotifyObservers(ctx context.Context, event ValidationEvent) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, observer := range p.observers {
		observer.OnEvent(ctx, event)
	}
}

// LoggingObserver logs validation events
type LoggingObserver struct {
	logger *logrus.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver(logger *logrus.Logger) Observer {
	return &LoggingObserver{logger: logger}
}

// OnEvent handles validation events by logging them
func (o *LoggingObserver) OnEvent(ctx context.Context, event ValidationEvent) {
	fields := logrus.Fields{
		"event_type":      event.EventType,
		"image_source":    event.ImageSource,
		"processing_time": event.ProcessingTime,
		"success":         event.Success,
	}
	if event.Verdict != "" {
		fields["verdict"] = event.Verdict
	}
	if event.ErrorMessage != "" {
		fields["error"] = event.ErrorMessage
	}

	switch event.EventType {
	case ValidationStarted:
		o.logger.WithFields(fields).Info("Validation started")
	case ValidationCompleted:
		o.logger.WithFields(fields).Info("Validation completed")
	case ValidationFailed:
		o.logger.WithFields(fields).Error("Validation failed")
	case ImageFetched:
		o.logger.WithFields(fields).Debug("Image fetched")
	case ImageFetchFailed:
		o.logger.WithFields(fields).Error("Image fetch failed")
	default:
		o.logger.WithFields(fields).Info("Validation event occurred")
	}
}

// GetObserverName returns the observer name
func (o *LoggingObserver) GetObserverName() string {
	return "logging_observer"
}

// MetricsObserver counts validation runs per verdict
type MetricsObserver struct {
	mu                  sync.RWMutex
	totalRuns           int64
	failedRuns          int64
	verdictCounts       map[string]int64
	totalProcessingTime time.Duration
}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{
		verdictCounts: make(map[string]int64),
	}
}

// OnEvent handles validation events by updating counters
func (o *MetricsObserver) OnEvent(ctx context.Context, event ValidationEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch event.EventType {
	case ValidationStarted:
		o.totalRuns++
	case ValidationCompleted:
		o.verdictCounts[event.Verdict]++
		o.totalProcessingTime += event.ProcessingTime
	case ValidationFailed:
		o.failedRuns++
	}
}

// GetObserverName returns the observer name
func (o *MetricsObserver) GetObserverName() string {
	return "metrics_observer"
}

// GetMetrics returns a snapshot of the counters
func (o *MetricsObserver) GetMetrics() map[string]interface{} {
	o.mu.RLock()
	defer o.mu.RUnlock()

	verdicts := make(map[string]int64, len(o.verdictCounts))
	for verdict, count := range o.verdictCounts {
		verdicts[verdict] = count
	}
	return map[string]interface{}{
		"total_runs":            o.totalRuns,
		"failed_runs":           o.failedRuns,
		"verdicts":              verdicts,
		"total_processing_time": o.totalProcessingTime.String(),
	}
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"flight-time-overlay/internal/domain/entity"
	"flight-time-overlay/internal/domain/repository"
	"flight-time-overlay/pkg/logger"
	"flight-time-overlay/pkg/metrics"
	"flight-time-overlay/pkg/timeconv"
	"flight-time-overlay/pkg/utils"
)

// ErrRecordsDisabled is returned when no conversion record store is configured
var ErrRecordsDisabled = errors.New("conversion records are not configured")

const (
	defaultRecordLimit int64 = 50
	maxRecordLimit     int64 = 500
)

// OverlaySettings are the popup toggles the service honours
type OverlaySettings struct {
	Enabled bool
	Debug   bool
}

// OverlayService turns scraped legs into annotations for the page scanner
type OverlayService struct {
	table      timeconv.OffsetLookup
	base       timeconv.Settings
	recordRepo repository.ConversionRecordRepository
	metrics    *metrics.Metrics
	logger     logger.Logger

	mu        sync.RWMutex
	settings  OverlaySettings
	converter *timeconv.Converter

	convertedCount atomic.Int64
}

// NewOverlayService creates a new overlay service. recordRepo and m may be nil.
func NewOverlayService(
	table timeconv.OffsetLookup,
	conv timeconv.Settings,
	settings OverlaySettings,
	recordRepo repository.ConversionRecordRepository,
	m *metrics.Metrics,
	log logger.Logger,
) *OverlayService {
	conv.Debug = settings.Debug
	if ls, ok := log.(logger.LevelSetter); ok {
		ls.SetDebug(settings.Debug)
	}

	return &OverlayService{
		table:      table,
		base:       conv,
		recordRepo: recordRepo,
		metrics:    m,
		logger:     log,
		settings:   settings,
		converter:  timeconv.NewConverter(table, conv, log),
	}
}

// Lookup exposes the offset table to callers that only need the raw offset
func (s *OverlayService) Lookup(code string) (int, bool) {
	return s.table.Lookup(code)
}

// Convert runs a single conversion with the current settings. It is a raw
// passthrough: it ignores Enabled and does not count toward ConvertedCount,
// which only tracks annotations injected into pages.
func (s *OverlayService) Convert(timeText, code string) timeconv.ConversionResult {
	s.mu.RLock()
	converter := s.converter
	s.mu.RUnlock()

	result := converter.Convert(timeText, code)
	s.observe(result)
	return result
}

// AnnotateLegs converts every leg of a page scan and decides what to inject
func (s *OverlayService) AnnotateLegs(ctx context.Context, pageURL string, legs []entity.Leg) (*entity.AnnotationBatch, error) {
	start := time.Now()
	if s.metrics != nil {
		defer func() {
			s.metrics.AnnotationTime.Observe(time.Since(start).Seconds())
		}()
	}

	s.mu.RLock()
	settings := s.settings
	converter := s.converter
	s.mu.RUnlock()

	batch := &entity.AnnotationBatch{
		Enabled:     settings.Enabled,
		Annotations: make([]entity.Annotation, 0, len(legs)),
	}

	if route, ok := utils.ExtractRouteFromURL(pageURL); ok {
		batch.Route = &entity.Route{Departure: route.Departure, Arrival: route.Arrival}
		s.debug(settings, "Detected route", "departure", route.Departure, "arrival", route.Arrival)
	}

	if !settings.Enabled {
		s.debug(settings, "Overlay disabled, skipping legs", "legs", len(legs))
		return batch, nil
	}

	for _, leg := range legs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		leg.TimeText = strings.TrimSpace(leg.TimeText)
		leg.AirportCode = strings.TrimSpace(leg.AirportCode)
		if leg.AirportCode == "" {
			if code, ok := utils.ExtractAirportCode(leg.TimeText); ok {
				leg.AirportCode = code
				s.debug(settings, "Airport code taken from time text", "time", leg.TimeText, "airport", code)
			}
		}

		result := s.convertLeg(converter, leg)
		s.observe(result)

		annotation := entity.Annotation{
			Leg:    leg,
			Result: result.Kind.String(),
			Text:   result.Text,
			Inject: result.HasText(),
		}
		if result.Reason != nil {
			annotation.Reason = result.Reason.Error()
		}
		batch.Annotations = append(batch.Annotations, annotation)

		if !annotation.Inject {
			continue
		}

		batch.ConvertedCount++
		s.debug(settings, "Converted "+string(leg.Direction),
			"time", leg.TimeText, "text", result.Text, "airport", leg.AirportCode)
		s.saveRecord(ctx, pageURL, batch.Route, annotation, result.OffsetMinutes)
	}

	s.convertedCount.Add(int64(batch.ConvertedCount))
	s.debug(settings, "Annotation batch done", "legs", len(legs), "converted", batch.ConvertedCount)

	return batch, nil
}

// Status reports the toggles and how many times were converted since the last refresh
func (s *OverlayService) Status() entity.OverlayStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return entity.OverlayStatus{
		Enabled:        s.settings.Enabled,
		Debug:          s.settings.Debug,
		ConvertedCount: s.convertedCount.Load(),
	}
}

// UpdateSettings applies whichever toggles are set and keeps the rest
func (s *OverlayService) UpdateSettings(enabled, debug *bool) entity.OverlayStatus {
	s.mu.Lock()
	if enabled != nil {
		s.settings.Enabled = *enabled
	}
	if debug != nil && *debug != s.settings.Debug {
		s.settings.Debug = *debug
		conv := s.base
		conv.Debug = *debug
		s.converter = timeconv.NewConverter(s.table, conv, s.logger)
	}
	settings := s.settings
	s.mu.Unlock()

	if debug != nil {
		if ls, ok := s.logger.(logger.LevelSetter); ok {
			ls.SetDebug(*debug)
		}
	}

	s.logger.Info("Overlay settings updated", "enabled", settings.Enabled, "debug", settings.Debug)
	if !settings.Enabled {
		s.convertedCount.Store(0)
	}

	return s.Status()
}

// Refresh clears the converted count before the scanner re-annotates a page
func (s *OverlayService) Refresh() {
	s.convertedCount.Store(0)
	s.logger.Info("Overlay refreshed")
}

// Records returns the latest audit records for a route key such as TYOA-CEB
func (s *OverlayService) Records(ctx context.Context, routeKey string, limit int64) ([]*entity.ConversionRecord, error) {
	if s.recordRepo == nil {
		return nil, ErrRecordsDisabled
	}
	if limit <= 0 {
		limit = defaultRecordLimit
	}
	if limit > maxRecordLimit {
		limit = maxRecordLimit
	}

	records, err := s.recordRepo.FindByRouteKey(ctx, strings.ToUpper(strings.TrimSpace(routeKey)), limit)
	if err != nil {
		if s.metrics != nil {
			s.metrics.ErrorsCount.WithLabelValues("find_conversion_records").Inc()
		}
		return nil, err
	}
	return records, nil
}

// convertLeg skips the parser for text with no clock reading. An unknown code
// still wins over unparseable text.
func (s *OverlayService) convertLeg(converter *timeconv.Converter, leg entity.Leg) timeconv.ConversionResult {
	if !utils.HasClockTime(leg.TimeText) {
		if offset, ok := s.table.Lookup(leg.AirportCode); ok {
			return timeconv.ConversionResult{Kind: timeconv.Unresolvable, Reason: timeconv.ErrUnparseableTime, OffsetMinutes: offset}
		}
	}
	return converter.Convert(leg.TimeText, leg.AirportCode)
}

func (s *OverlayService) observe(result timeconv.ConversionResult) {
	if s.metrics == nil {
		return
	}

	s.metrics.ConversionsTotal.WithLabelValues(result.Kind.String()).Inc()
	if result.Kind != timeconv.Unresolvable {
		return
	}

	reason := "unknown"
	switch {
	case errors.Is(result.Reason, timeconv.ErrUnknownAirportCode):
		reason = "unknown_airport_code"
	case errors.Is(result.Reason, timeconv.ErrUnparseableTime):
		reason = "unparseable_time"
	}
	s.metrics.UnresolvedTotal.WithLabelValues(reason).Inc()
}

func (s *OverlayService) saveRecord(ctx context.Context, pageURL string, route *entity.Route, annotation entity.Annotation, offset int) {
	if s.recordRepo == nil {
		return
	}

	record := &entity.ConversionRecord{
		PageURL:       pageURL,
		Direction:     string(annotation.Leg.Direction),
		AirportCode:   annotation.Leg.AirportCode,
		OriginalText:  annotation.Leg.TimeText,
		Result:        annotation.Result,
		InjectedText:  annotation.Text,
		OffsetMinutes: offset,
	}
	if route != nil {
		record.RouteKey = utils.RouteCodes{Departure: route.Departure, Arrival: route.Arrival}.Key()
	}

	if err := s.recordRepo.Save(ctx, record); err != nil {
		s.logger.Error("Failed to save conversion record", "airport", record.AirportCode, "error", err)
		if s.metrics != nil {
			s.metrics.ErrorsCount.WithLabelValues("save_conversion_record").Inc()
		}
	}
}

func (s *OverlayService) debug(settings OverlaySettings, msg string, keysAndValues ...interface{}) {
	if settings.Debug {
		s.logger.Debug(msg, keysAndValues...)
	}
}

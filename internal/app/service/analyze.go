package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/francois-poidevin/flightsun/internal/app"
	"github.com/francois-poidevin/flightsun/internal/app/airports"
	"github.com/francois-poidevin/flightsun/internal/app/apperr"
	"github.com/francois-poidevin/flightsun/internal/app/metrics"
	"github.com/francois-poidevin/flightsun/internal/app/path"
	"github.com/francois-poidevin/flightsun/internal/app/report"
	"github.com/francois-poidevin/flightsun/internal/app/seat"
	"github.com/francois-poidevin/flightsun/internal/app/solar"
	"github.com/francois-poidevin/flightsun/internal/app/sun"
	"github.com/francois-poidevin/flightsun/internal/app/tools"
)

const (
	DefaultBatchLimit = 4
	MaxBatchSize      = 50
)

// Options tunes the pipeline. Zero fields take the reference behaviour.
type Options struct {
	Sampler    path.Sampler
	Engine     solar.Engine
	Classifier sun.Classifier
	// CacheSize bounds the result cache, 0 disables it.
	CacheSize  int
	BatchLimit int
}

// Service runs the flight sun pipeline. Safe for concurrent use.
type Service struct {
	Log      *logrus.Logger
	opts     Options
	validate *validator.Validate
	cache    *lru.Cache
}

func New(log *logrus.Logger, opts Options) (*Service, error) {
	if opts.Sampler == (path.Sampler{}) {
		opts.Sampler = path.NewSampler()
	}
	if opts.Engine == nil {
		opts.Engine = solar.Meeus{}
	}
	if opts.Classifier == nil {
		opts.Classifier = sun.ClockClassifier{}
	}
	if opts.BatchLimit <= 0 {
		opts.BatchLimit = DefaultBatchLimit
	}

	s := &Service{Log: log, opts: opts, validate: validator.New()}
	if opts.CacheSize > 0 {
		cache, err := lru.New(opts.CacheSize)
		if err != nil {
			return nil, err
		}
		s.cache = cache
	}
	return s, nil
}

// Analyze answers one query. The returned Analysis may be shared with other
// callers through the cache and must not be modified.
func (s *Service) Analyze(ctx context.Context, q app.Query) (*app.Analysis, error) {
	start := time.Now()

	analysis, cached, err := s.analyze(ctx, q)
	switch {
	case err != nil:
		metrics.ObserveAnalysis(metrics.OutcomeFailure, start)
		s.Log.WithContext(ctx).WithFields(logrus.Fields{
			"from":  q.From,
			"to":    q.To,
			"code":  apperr.CodeOf(err),
			"Error": err,
		}).Warn("Analysis rejected")
		return nil, err
	case cached:
		metrics.ObserveAnalysis(metrics.OutcomeCached, start)
	default:
		metrics.ObserveAnalysis(metrics.OutcomeSuccess, start)
	}

	s.Log.WithContext(ctx).WithFields(logrus.Fields{
		"from":           analysis.From.Code,
		"to":             analysis.To.Code,
		"departure":      analysis.Departure,
		"recommendation": analysis.Recommendation,
		"cached":         cached,
		"elapsed":        time.Since(start),
	}).Debug("Analysis done")
	return analysis, nil
}

func (s *Service) analyze(ctx context.Context, q app.Query) (*app.Analysis, bool, error) {
	if err := s.validate.StructCtx(ctx, q); err != nil {
		return nil, false, validationError(err)
	}
	departure, err := tools.ParseDeparture(q.Departure)
	if err != nil {
		return nil, false, err
	}

	key := cacheKey(q, departure)
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			return v.(*app.Analysis), true, nil
		}
	}

	route, err := path.ResolveRoute(q.From, q.To)
	if err != nil {
		return nil, false, err
	}

	points := s.opts.Sampler.SampleByDistance(route, departure)
	samples := sun.Observe(s.opts.Engine, sun.ElevationClassifier{}, points)
	rec, err := seat.RecommendSeat(path.Coordinates(points), samples)
	if err != nil {
		return nil, false, err
	}

	enhanced := report.Fallback()
	if q.DurationMinutes != nil {
		enhanced, err = s.enhance(route, departure, time.Duration(*q.DurationMinutes)*time.Minute)
		if err != nil {
			return nil, false, err
		}
	}

	analysis := &app.Analysis{
		From:             route.From,
		To:               route.To,
		Departure:        departure.Format(path.TimeLayout),
		DistanceKm:       route.DistanceKm(),
		Path:             points,
		SunPositions:     samples,
		Recommendation:   rec.String(),
		Seat:             rec,
		EnhancedAnalysis: enhanced,
	}
	if s.cache != nil {
		s.cache.Add(key, analysis)
	}
	return analysis, false, nil
}

// enhance builds the report on the clock-driven timeline.
func (s *Service) enhance(route path.Route, departure time.Time, duration time.Duration) (*report.Report, error) {
	timeline, err := s.opts.Sampler.SampleByCadence(route, departure, duration)
	if err != nil {
		return nil, err
	}
	samples := sun.Observe(s.opts.Engine, s.opts.Classifier, timeline)

	return report.Build(report.Input{
		From:       route.From.Coordinate,
		To:         route.To.Coordinate,
		Duration:   duration,
		Samples:    samples,
		Events:     sun.DetectEvents(samples),
		Classifier: s.opts.Classifier.Name(),
	})
}

// AnalyzeBatch answers every query concurrently, keeping the input order.
// The first failure cancels the rest and fails the whole batch.
func (s *Service) AnalyzeBatch(ctx context.Context, queries []app.Query) ([]*app.Analysis, error) {
	if len(queries) == 0 {
		return nil, apperr.InvalidInput("batch must hold at least one query")
	}
	if len(queries) > MaxBatchSize {
		return nil, apperr.InvalidInput("batch holds %d queries, the limit is %d", len(queries), MaxBatchSize)
	}

	results := make([]*app.Analysis, len(queries))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.BatchLimit)

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			a, err := s.Analyze(gCtx, q)
			if err != nil {
				var appErr *apperr.Error
				if errors.As(err, &appErr) {
					if appErr.Details == nil {
						appErr.Details = map[string]any{}
					}
					appErr.Details["index"] = i
				}
				return err
			}
			results[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func cacheKey(q app.Query, departure time.Time) string {
	duration := -1
	if q.DurationMinutes != nil {
		duration = *q.DurationMinutes
	}
	return fmt.Sprintf("%s|%s|%s|%d",
		airports.Normalize(q.From), airports.Normalize(q.To), departure.Format(path.TimeLayout), duration)
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperr.WrapInvalidInput(err, "invalid query")
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return apperr.WrapInvalidInput(err, "invalid query: %s", strings.Join(msgs, ", "))
}

package stdout

import (
	"context"
	"encoding/json"
	"time"

	"github.com/francois-poidevin/flightsun/internal/app"
	"github.com/sirupsen/logrus"
)

type StdOutSinker struct {
	Log *logrus.Logger
}

func New(log *logrus.Logger) app.Sinker {
	return &StdOutSinker{Log: log}
}

func (s *StdOutSinker) Init(ctx context.Context) error {
	//Nothing to do here
	return nil
}

func (s *StdOutSinker) Sink(ctx context.Context, t time.Time, analysis *app.Analysis) error {
	if analysis == nil {
		s.Log.WithContext(ctx).Info("No analysis")
		return nil
	}

	fields := logrus.Fields{
		"from":           analysis.From.Code,
		"to":             analysis.To.Code,
		"departure":      analysis.Departure,
		"distanceKm":     int(analysis.DistanceKm),
		"waypoints":      len(analysis.Path),
		"recommendation": analysis.Recommendation,
	}
	if r := analysis.EnhancedAnalysis; r != nil && !r.Fallback {
		fields["seatSuggestion"] = r.SeatSuggestion
		fields["willSeeSunrise"] = r.WillSeeSunrise
		fields["willSeeSunset"] = r.WillSeeSunset
		fields["willSeeNight"] = r.WillSeeNight
		fields["nightMinutes"] = r.NightMinutes
	}
	s.Log.WithContext(ctx).WithFields(fields).Info("========Flight sun analysis=============")

	if r := analysis.EnhancedAnalysis; r != nil {
		s.Log.WithContext(ctx).Info(r.Summary)
		for _, h := range r.Highlights {
			s.Log.WithContext(ctx).Info(" - " + h)
		}
	}

	if s.Log.IsLevelEnabled(logrus.DebugLevel) {
		raw, err := json.Marshal(analysis)
		if err != nil {
			return err
		}
		s.Log.WithContext(ctx).WithFields(logrus.Fields{
			"sunkAt": t.UTC().Format(time.RFC3339),
		}).Debug(" Raw Datas " + string(raw))
	}
	return nil
}

func (s *StdOutSinker) Close() error {
	return nil
}

package file

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/francois-poidevin/flightsun/internal/app"
	"github.com/francois-poidevin/flightsun/internal/app/seat"
	"github.com/sirupsen/logrus"
)

type FileSinker struct {
	Log     *logrus.Logger
	conf    Configuration
	fRaw    *os.File
	fReport *os.File
}

// reportLine is the compact record appended to the report file.
type reportLine struct {
	SunkAt         string    `json:"sunkAt"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	Departure      string    `json:"departure"`
	Recommendation string    `json:"recommendation"`
	SeatSuggestion seat.Side `json:"seatSuggestion,omitempty"`
	WillSeeSunrise bool      `json:"willSeeSunrise"`
	WillSeeSunset  bool      `json:"willSeeSunset"`
	WillSeeNight   bool      `json:"willSeeNight"`
	Summary        string    `json:"summary,omitempty"`
	Highlights     []string  `json:"highlights,omitempty"`
}

func New(log *logrus.Logger, conf Configuration) app.Sinker {
	return &FileSinker{Log: log, conf: conf}
}

func (s *FileSinker) Init(ctx context.Context) error {
	if err := os.MkdirAll(s.conf.Dir, os.ModePerm); err != nil {
		s.Log.WithContext(ctx).WithFields(logrus.Fields{
			"Error": err,
		}).Error("Unable to create folder '" + s.conf.Dir + "'")
		return err
	}

	fRaw, err := s.open(ctx, s.conf.Outputraw)
	if err != nil {
		return err
	}
	s.fRaw = fRaw

	fReport, err := s.open(ctx, s.conf.Outputreport)
	if err != nil {
		return err
	}
	s.fReport = fReport

	return nil
}

func (s *FileSinker) open(ctx context.Context, name string) (*os.File, error) {
	f, err := os.OpenFile(filepath.Join(s.conf.Dir, name),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		s.Log.WithContext(ctx).WithFields(logrus.Fields{
			"Error": err,
			"file":  name,
		}).Error("Unable to Open file")
		return nil, err
	}
	return f, nil
}

func (s *FileSinker) Sink(ctx context.Context, t time.Time, analysis *app.Analysis) error {
	if s.fRaw == nil || s.fReport == nil {
		return errors.New("file sinker is not initialized")
	}
	if analysis == nil {
		return nil
	}

	if err := s.writeLine(ctx, s.fRaw, analysis); err != nil {
		return err
	}
	return s.writeLine(ctx, s.fReport, toReportLine(t, analysis))
}

func toReportLine(t time.Time, a *app.Analysis) reportLine {
	line := reportLine{
		SunkAt:         t.UTC().Format(time.RFC3339),
		From:           a.From.Code,
		To:             a.To.Code,
		Departure:      a.Departure,
		Recommendation: a.Recommendation,
	}
	if r := a.EnhancedAnalysis; r != nil {
		line.SeatSuggestion = r.SeatSuggestion
		line.WillSeeSunrise = r.WillSeeSunrise
		line.WillSeeSunset = r.WillSeeSunset
		line.WillSeeNight = r.WillSeeNight
		line.Summary = r.Summary
		line.Highlights = r.Highlights
	}
	return line
}

func (s *FileSinker) writeLine(ctx context.Context, f *os.File, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	n, err := w.Write(append(raw, '\n'))
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	s.Log.WithContext(ctx).WithFields(logrus.Fields{
		"file":   filepath.Base(f.Name()),
		"length": n,
	}).Debug("Wrote")
	return nil
}

func (s *FileSinker) Close() error {
	var errs []error
	for _, f := range []*os.File{s.fRaw, s.fReport} {
		if f != nil {
			errs = append(errs, f.Close())
		}
	}
	s.fRaw, s.fReport = nil, nil
	return errors.Join(errs...)
}

package app

import (
	"context"
	"time"

	"github.com/francois-poidevin/flightsun/internal/app/airports"
	"github.com/francois-poidevin/flightsun/internal/app/path"
	"github.com/francois-poidevin/flightsun/internal/app/report"
	"github.com/francois-poidevin/flightsun/internal/app/seat"
	"github.com/francois-poidevin/flightsun/internal/app/sun"
)

// Query - one flight to analyse
type Query struct {
	From      string `json:"from" validate:"required,len=3,alpha"`
	To        string `json:"to" validate:"required,len=3,alpha"`
	Departure string `json:"departure" validate:"required"`
	// DurationMinutes absent means no enhanced analysis.
	DurationMinutes *int `json:"durationMinutes,omitempty" validate:"omitempty,min=1,max=1440"`
}

// Analysis - the answer to a Query
type Analysis struct {
	From             airports.Airport    `json:"from"`
	To               airports.Airport    `json:"to"`
	Departure        string              `json:"departure"`
	DistanceKm       float64             `json:"distanceKm"`
	Path             []path.Waypoint     `json:"path"`
	SunPositions     []sun.Sample        `json:"sunPositions"`
	Recommendation   string              `json:"recommendation"`
	Seat             seat.Recommendation `json:"seat"`
	EnhancedAnalysis *report.Report      `json:"enhancedAnalysis"`
}

// Analyzer runs the pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, q Query) (*Analysis, error)
	AnalyzeBatch(ctx context.Context, queries []Query) ([]*Analysis, error)
}

// Sinker receives finished analyses.
type Sinker interface {
	Init(ctx context.Context) error
	Sink(ctx context.Context, t time.Time, analysis *Analysis) error
	Close() error
}

package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/francois-poidevin/flightsun/internal/app/path"
)

// SamplingConfiguration settings for path sampling
type SamplingConfiguration struct {
	SpacingKm      float64 `toml:"spacingKm" default:"50" comment:"distance between two path waypoints (km)" validate:"gte=0"`
	MinWaypoints   int     `toml:"minWaypoints" default:"5" comment:"minimum number of path waypoints, at least 2" validate:"omitempty,min=2"`
	GroundSpeedKmh float64 `toml:"groundSpeedKmh" default:"800" comment:"assumed ground speed for path timing (km/h)" validate:"gte=0"`
	CadenceMinutes int     `toml:"cadenceMinutes" default:"15" comment:"timeline sampling cadence (minutes)" validate:"gte=0"`
}

// Validate rejects settings the sampler cannot work with. Zero keeps the
// reference value.
func (c SamplingConfiguration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid sampling configuration: %w", err)
	}
	return nil
}

// Sampler converts the settings, falling back to the reference value for
// every non positive field.
func (c SamplingConfiguration) Sampler() path.Sampler {
	s := path.NewSampler()
	if c.SpacingKm > 0 {
		s.SpacingKm = c.SpacingKm
	}
	if c.MinWaypoints > 0 {
		s.MinWaypoints = c.MinWaypoints
	}
	if c.GroundSpeedKmh > 0 {
		s.GroundSpeedKmh = c.GroundSpeedKmh
	}
	if c.CadenceMinutes > 0 {
		s.Cadence = time.Duration(c.CadenceMinutes) * time.Minute
	}
	return s
}

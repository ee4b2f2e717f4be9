package tools

import (
	"fmt"
	"strings"
	"time"

	"github.com/francois-poidevin/flightsun/internal/app/apperr"
	"github.com/francois-poidevin/flightsun/internal/app/geo"
)

// Accepted departure layouts, tried in order. A timestamp without zone is UTC.
var departureLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDeparture reads an ISO-8601 departure time and returns it in UTC.
func ParseDeparture(data string) (time.Time, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return time.Time{}, apperr.InvalidInput("departure time is required")
	}

	var lastErr error
	for _, layout := range departureLayouts {
		t, err := time.Parse(layout, data)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, apperr.WrapInvalidInput(lastErr, "departure time %q is not an ISO-8601 UTC timestamp", data)
}

// PathToWKT renders an ordered path as a WKT linestring, lon first. PostGIS rejects
// linestrings with fewer than two points.
func PathToWKT(points []geo.Coordinate) (string, error) {
	if len(points) < 2 {
		return "", apperr.InsufficientPath(len(points))
	}
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%f %f", p.Lon, p.Lat)
	}
	return fmt.Sprintf("LINESTRING(%s)", strings.Join(parts, ", ")), nil
}

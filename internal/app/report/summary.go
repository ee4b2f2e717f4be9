package report

import (
	"fmt"
	"math"

	"github.com/francois-poidevin/flightsun/internal/app/seat"
	"github.com/francois-poidevin/flightsun/internal/app/sun"
)

func summarize(r *Report) (string, []string) {
	highlights := []string{}

	if r.Sunrise != nil {
		highlights = append(highlights, eventLine("Sunrise", r.Sunrise))
	}
	if r.Sunset != nil {
		highlights = append(highlights, eventLine("Sunset", r.Sunset))
	}
	if r.WillSeeNight {
		highlights = append(highlights, fmt.Sprintf("About %s of night sky", formatMinutes(r.NightMinutes)))
	}
	if r.WillSeeGoldenHour {
		highlights = append(highlights, fmt.Sprintf("About %s of golden hour light", formatMinutes(r.GoldenHourMinutes)))
	}
	if r.DayMinutes > 0 {
		highlights = append(highlights, fmt.Sprintf("About %s in daylight", formatMinutes(r.DayMinutes)))
	}

	return headline(r), highlights
}

func headline(r *Report) string {
	switch {
	case r.SeatReason == string(sun.SunriseEvent) || r.SeatReason == string(sun.SunsetEvent):
		if r.SeatSuggestion == seat.Either {
			return fmt.Sprintf("The %s is straight ahead or behind: either window works.", r.SeatReason)
		}
		return fmt.Sprintf("Sit on the %s side to watch the %s.", r.SeatSuggestion, r.SeatReason)
	case r.SeatSuggestion == seat.Left || r.SeatSuggestion == seat.Right:
		return fmt.Sprintf("No sunrise or sunset on this flight, the sun stays on the %s side.", r.SeatSuggestion)
	case r.WillSeeNight:
		return "No sunrise or sunset on this flight, either window shows the night sky."
	default:
		return seat.NoOptimalSeat + "."
	}
}

func eventLine(label string, e *sun.Event) string {
	return fmt.Sprintf("%s around %s UTC, %.0f%% into the flight",
		label, e.At.Time.UTC().Format("15:04"), e.At.Progress*100)
}

func formatMinutes(m float64) string {
	total := int(math.Round(m))
	h, min := total/60, total%60
	switch {
	case h == 0:
		return fmt.Sprintf("%d min", min)
	case min == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02d", h, min)
	}
}

package availability

import (
	"context"
	"time"

	"fulfillment/internal/entities"
)

type Suggester struct {
	detector *Detector
}

func NewSuggester(detector *Detector) *Suggester {
	return &Suggester{detector: detector}
}

// Suggest scans forward from the day after the rejected date and returns up
// to maxSuggestions dates that clear the detector, in increasing order.
// Days whose calendar record cannot be read are skipped. The only error is
// the caller's context ending.
func (s *Suggester) Suggest(
	ctx context.Context,
	rejected Request,
	existing []entities.DeliverySchedule,
	lookup CalendarLookup,
	capacityLimit int,
	maxSuggestions int,
	searchWindowDays int,
) ([]time.Time, error) {
	suggestions := make([]time.Time, 0, maxSuggestions)
	start := entities.Day(rejected.Date)

	for offset := 1; offset <= searchWindowDays && len(suggestions) < maxSuggestions; offset++ {
		if err := ctx.Err(); err != nil {
			return suggestions, err
		}

		candidate := start.AddDate(0, 0, offset)
		day, err := lookup.Get(ctx, candidate)
		if err != nil {
			continue
		}

		req := rejected
		req.Date = candidate
		if len(s.detector.Detect(req, existing, day, capacityLimit)) == 0 {
			suggestions = append(suggestions, candidate)
		}
	}

	return suggestions, nil
}

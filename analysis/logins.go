package analysis

import (
	"fmt"
	"time"

	"github.com/calegan/instalens/archive"
)

// CountLoginsByMonth groups login events by calendar year-month and counts
// them. Login timestamps are ISO-8601 strings with their own offset, so they
// are bucketed in the zone they were recorded in. Map iteration order is
// undefined; callers wanting chronology sort the keys (lexical order of
// PeriodKey is chronological).
func (a *Analyzer) CountLoginsByMonth() (map[PeriodKey]int, error) {
	logins, err := a.src.LoginHistory()
	if err != nil {
		return nil, err
	}

	counts := make(map[PeriodKey]int)
	for _, rec := range logins {
		t, err := time.Parse(time.RFC3339, rec.Time)
		if err != nil {
			return nil, &archive.MalformedDataError{
				Path: "login_activity.json",
				Err:  fmt.Errorf("parse login time %q: %w", rec.Time, err),
			}
		}
		key, err := PeriodOf(t, Month)
		if err != nil {
			return nil, err
		}
		counts[key]++
	}
	return counts, nil
}

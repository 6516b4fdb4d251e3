package analysis

import "time"

// Granularity selects how coarsely timestamps are bucketed into periods.
type Granularity int

const (
	Year Granularity = iota
	Month
	Day
	Hour
	Minute
)

// PeriodKey is a bucket identifier: a timestamp formatted at the bucket's
// granularity. Keys are pure values; lexical order is chronological order.
type PeriodKey string

// periodLayouts maps each granularity to the Go time layout whose output is
// the period key. Each layout extends the previous one, so two timestamps
// share a key iff they agree on the formatted prefix.
var periodLayouts = map[Granularity]string{
	Year:   "2006",
	Month:  "2006-01",
	Day:    "2006-01-02",
	Hour:   "2006-01-02-15",
	Minute: "2006-01-02-15:04",
}

func (g Granularity) String() string {
	switch g {
	case Year:
		return "year"
	case Month:
		return "month"
	case Day:
		return "day"
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	default:
		return "invalid"
	}
}

// Validate fails fast on granularities outside the defined range.
func (g Granularity) Validate() error {
	if _, ok := periodLayouts[g]; !ok {
		return &InvalidArgumentError{
			Name:  "granularity",
			Value: int(g),
			Valid: "0 (year), 1 (month), 2 (day), 3 (hour), 4 (minute)",
		}
	}
	return nil
}

// ParseGranularity converts an integer mode (as the CLI surface uses) into a
// validated Granularity.
func ParseGranularity(v int) (Granularity, error) {
	g := Granularity(v)
	if err := g.Validate(); err != nil {
		return 0, err
	}
	return g, nil
}

// PeriodOf buckets t at granularity g.
func PeriodOf(t time.Time, g Granularity) (PeriodKey, error) {
	if err := g.Validate(); err != nil {
		return "", err
	}
	return PeriodKey(t.Format(periodLayouts[g])), nil
}

package analysis

import "github.com/calegan/instalens/archive"

// MessagesPerPeriod buckets every message in the corpus by period and splits
// the counts into sent (sender equals owner) and received (everyone else).
// Media-only messages count too; this is a structural aggregation.
//
// An owner that matches nothing is almost always a misspelled name, so that
// case logs a warning and still returns the (empty) sent result.
func (a *Analyzer) MessagesPerPeriod(owner string, g Granularity) (sent, received map[PeriodKey]int, err error) {
	if err := g.Validate(); err != nil {
		return nil, nil, err
	}

	sent = make(map[PeriodKey]int)
	received = make(map[PeriodKey]int)
	err = a.ForEachMessage(func(m archive.Message, _ string) error {
		key, err := PeriodOf(a.timeOfMillis(m.TimestampMS), g)
		if err != nil {
			return err
		}
		if m.SenderName == owner {
			sent[key]++
		} else {
			received[key]++
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if owner != "" && len(sent) == 0 {
		a.log.Warn().
			Str("owner", owner).
			Msg("no sent messages matched the owner name; it may be misspelled (exports sometimes use the display name instead of the handle)")
	}
	return sent, received, nil
}

// ActiveConversationsPerPeriod returns, for each period bucket, the set of
// conversation folder names with at least one message in that bucket. Callers
// derive per-period cardinality from the set sizes.
func (a *Analyzer) ActiveConversationsPerPeriod(g Granularity) (map[PeriodKey]map[string]struct{}, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	active := make(map[PeriodKey]map[string]struct{})
	err := a.ForEachMessage(func(m archive.Message, conversation string) error {
		key, err := PeriodOf(a.timeOfMillis(m.TimestampMS), g)
		if err != nil {
			return err
		}
		set, ok := active[key]
		if !ok {
			set = make(map[string]struct{})
			active[key] = set
		}
		set[conversation] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return active, nil
}

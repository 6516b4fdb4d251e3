package analysis

import (
	"sort"
	"unicode/utf8"

	"github.com/calegan/instalens/archive"
)

// RankMethod selects what a friendship ranking scores.
type RankMethod int

const (
	ByMessageCount RankMethod = iota
	ByCharCount
)

// Validate fails fast on methods outside the defined range.
func (m RankMethod) Validate() error {
	if m < ByMessageCount || m > ByCharCount {
		return &InvalidArgumentError{
			Name:  "method",
			Value: int(m),
			Valid: "0 (received message count), 1 (received character count)",
		}
	}
	return nil
}

// ParseRankMethod converts an integer mode into a validated RankMethod.
func ParseRankMethod(v int) (RankMethod, error) {
	m := RankMethod(v)
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return m, nil
}

// RankConversationsByIncomingActivity ranks conversations by how much the
// other side wrote: received message count or received character count,
// excluding everything the owner sent. It returns the folder names in
// descending score order plus the underlying scores. The sort is stable, so
// equal scores keep first-seen scan order.
func (a *Analyzer) RankConversationsByIncomingActivity(owner string, method RankMethod) ([]string, map[string]int, error) {
	if err := method.Validate(); err != nil {
		return nil, nil, err
	}

	scores := make(map[string]int)
	var order []string
	err := a.ForEachMessage(func(m archive.Message, conversation string) error {
		if _, ok := scores[conversation]; !ok {
			scores[conversation] = 0
			order = append(order, conversation)
		}
		if m.SenderName == owner {
			return nil
		}
		switch method {
		case ByMessageCount:
			scores[conversation]++
		case ByCharCount:
			if m.HasContent {
				scores[conversation] += utf8.RuneCountInString(m.Content)
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	ranked := append([]string(nil), order...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked, scores, nil
}

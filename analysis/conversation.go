package analysis

import (
	"strings"
	"unicode/utf8"
)

// reactionNotice is how heart-reaction notifications read in the export after
// its mangled encoding (the files escape UTF-8 bytes individually). Messages
// containing it are skipped by the word count so reactions don't pollute it.
const reactionNotice = "reacted â¤ï¸ to your message"

// LengthSeries holds parallel per-message series for one sender: character
// counts and the epoch-millisecond timestamps they occurred at, in
// chronological order.
type LengthSeries struct {
	Lengths    []int   `json:"lengths"`
	Timestamps []int64 `json:"timestamps"`
}

// MessageLengthSeries builds per-sender message-length series for one
// conversation. The source file stores messages newest-first, so the scan
// runs backwards to accumulate chronologically. Messages with no text content
// are skipped.
func (a *Analyzer) MessageLengthSeries(chat string) (map[string]LengthSeries, error) {
	msgs, err := a.src.Messages(chat)
	if err != nil {
		return nil, err
	}

	series := make(map[string]LengthSeries)
	for i := len(msgs) - 1; i >= 0; i-- {
		m := msgs[i]
		if !m.HasContent {
			continue
		}
		s := series[m.SenderName]
		s.Lengths = append(s.Lengths, utf8.RuneCountInString(m.Content))
		s.Timestamps = append(s.Timestamps, m.TimestampMS)
		series[m.SenderName] = s
	}
	return series, nil
}

// WordFrequency counts token occurrences in one conversation. Content is
// lower-cased, commas are stripped, and tokens are split on single spaces;
// empty tokens and reaction-notice messages are discarded.
func (a *Analyzer) WordFrequency(chat string) (map[string]int, error) {
	msgs, err := a.src.Messages(chat)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for i := len(msgs) - 1; i >= 0; i-- {
		m := msgs[i]
		if !m.HasContent {
			continue
		}
		content := strings.ReplaceAll(strings.ToLower(m.Content), ",", "")
		if strings.Contains(content, reactionNotice) {
			continue
		}
		for _, word := range strings.Split(content, " ") {
			if word == "" {
				continue
			}
			counts[word]++
		}
	}
	return counts, nil
}

package analysis_test

import (
	"errors"
	"testing"
	"time"

	"github.com/calegan/instalens/analysis"
	"github.com/calegan/instalens/archive"
)

func cycleSource() *fakeSource {
	// 2022-01-10 is a Monday (ISO weekday 0); 2022-01-11 a Tuesday.
	return &fakeSource{
		conversations: []string{"chat"},
		messages: map[string][]archive.Message{
			"chat": {
				text("Bob", day2Noon, "yo"),
				media("Alice", day2Noon),
				text("Alice", day1Noon+1000, "hello there"),
				text("Alice", day1Noon, "hi"),
			},
		},
	}
}

func TestMessageCycle_WeekdayBreakdown(t *testing.T) {
	t.Parallel()

	a := analysis.New(cycleSource(), analysis.WithLocation(time.UTC))

	b, err := a.MessageCycle("Bob", analysis.AxisWeekday)
	if err != nil {
		t.Fatalf("MessageCycle: %v", err)
	}

	// Monday: two received texts from Alice, 2+11 chars.
	if b.ReceivedMessages[0] != 2 || b.ReceivedChars[0] != 13 {
		t.Fatalf("monday received=%d msgs %d chars, want 2/13",
			b.ReceivedMessages[0], b.ReceivedChars[0])
	}
	// Tuesday: one sent text from Bob plus one received media message.
	if b.SentMessages[1] != 1 || b.SentChars[1] != 2 {
		t.Fatalf("tuesday sent=%d msgs %d chars, want 1/2", b.SentMessages[1], b.SentChars[1])
	}
	if b.ReceivedMessages[1] != 1 {
		t.Fatalf("tuesday received=%d msgs, want media message counted", b.ReceivedMessages[1])
	}
	if b.ReceivedChars[1] != 0 {
		t.Fatalf("tuesday received chars=%d, want 0 for media", b.ReceivedChars[1])
	}
}

func TestMessageCycle_OtherAxes(t *testing.T) {
	t.Parallel()

	a := analysis.New(cycleSource(), analysis.WithLocation(time.UTC))

	year, err := a.MessageCycle("Bob", analysis.AxisYear)
	if err != nil {
		t.Fatalf("MessageCycle(year): %v", err)
	}
	if year.ReceivedMessages[2022] != 3 || year.SentMessages[2022] != 1 {
		t.Fatalf("year breakdown=%+v, want all activity under 2022", year)
	}

	month, err := a.MessageCycle("Bob", analysis.AxisMonth)
	if err != nil {
		t.Fatalf("MessageCycle(month): %v", err)
	}
	if month.ReceivedMessages[1] != 3 {
		t.Fatalf("month breakdown=%+v, want January keyed as 1", month)
	}

	hour, err := a.MessageCycle("Bob", analysis.AxisHour)
	if err != nil {
		t.Fatalf("MessageCycle(hour): %v", err)
	}
	if hour.SentMessages[12] != 1 {
		t.Fatalf("hour breakdown=%+v, want noon keyed as 12", hour)
	}
}

func TestMessageCycle_Memoized(t *testing.T) {
	t.Parallel()

	src := cycleSource()
	a := analysis.New(src, analysis.WithLocation(time.UTC))

	first, err := a.MessageCycle("Bob", analysis.AxisWeekday)
	if err != nil {
		t.Fatalf("MessageCycle: %v", err)
	}
	callsAfterFirst := src.messagesCalls

	second, err := a.MessageCycle("Bob", analysis.AxisWeekday)
	if err != nil {
		t.Fatalf("MessageCycle (cached): %v", err)
	}
	if second != first {
		t.Fatalf("second call returned a different breakdown, want cached result")
	}
	if src.messagesCalls != callsAfterFirst {
		t.Fatalf("messagesCalls=%d after cached call, want %d (no rescan)",
			src.messagesCalls, callsAfterFirst)
	}

	// A different key triggers its own scan.
	if _, err := a.MessageCycle("Alice", analysis.AxisWeekday); err != nil {
		t.Fatalf("MessageCycle(other owner): %v", err)
	}
	if src.messagesCalls == callsAfterFirst {
		t.Fatalf("distinct key should rescan the corpus")
	}

	// Clearing the cache forces a rescan for the original key.
	a.ClearCycleCache()
	callsBefore := src.messagesCalls
	if _, err := a.MessageCycle("Bob", analysis.AxisWeekday); err != nil {
		t.Fatalf("MessageCycle after clear: %v", err)
	}
	if src.messagesCalls == callsBefore {
		t.Fatalf("ClearCycleCache did not drop the memoized result")
	}
}

func TestMessageCycle_InvalidAxis(t *testing.T) {
	t.Parallel()

	a := analysis.New(&fakeSource{})
	_, err := a.MessageCycle("Bob", analysis.CycleAxis(7))
	var invalid *analysis.InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("err=%v, want InvalidArgumentError", err)
	}
}

package analysis_test

import (
	"errors"
	"testing"

	"github.com/calegan/instalens/analysis"
	"github.com/calegan/instalens/archive"
)

func TestCountLoginsByMonth(t *testing.T) {
	t.Parallel()

	src := &fakeSource{logins: []archive.LoginRecord{
		{Time: "2022-01-10T05:47:01+00:00"},
		{Time: "2022-01-28T23:59:59+00:00"},
		{Time: "2021-11-02T18:00:00+00:00"},
	}}
	a := analysis.New(src)

	counts, err := a.CountLoginsByMonth()
	if err != nil {
		t.Fatalf("CountLoginsByMonth: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("counts=%v, want 2 buckets", counts)
	}
	if counts["2022-01"] != 2 || counts["2021-11"] != 1 {
		t.Fatalf("counts=%v, want 2022-01:2 2021-11:1", counts)
	}
}

func TestCountLoginsByMonth_BadTimestamp(t *testing.T) {
	t.Parallel()

	src := &fakeSource{logins: []archive.LoginRecord{{Time: "not-a-time"}}}
	a := analysis.New(src)

	_, err := a.CountLoginsByMonth()
	var malformed *archive.MalformedDataError
	if !errors.As(err, &malformed) {
		t.Fatalf("err=%v, want MalformedDataError", err)
	}
}

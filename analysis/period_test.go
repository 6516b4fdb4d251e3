package analysis_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/calegan/instalens/analysis"
)

func TestPeriodOf_Layouts(t *testing.T) {
	t.Parallel()

	ts := time.Date(2022, time.January, 10, 5, 47, 1, 0, time.UTC)
	cases := []struct {
		g    analysis.Granularity
		want analysis.PeriodKey
	}{
		{analysis.Year, "2022"},
		{analysis.Month, "2022-01"},
		{analysis.Day, "2022-01-10"},
		{analysis.Hour, "2022-01-10-05"},
		{analysis.Minute, "2022-01-10-05:47"},
	}
	for _, tc := range cases {
		got, err := analysis.PeriodOf(ts, tc.g)
		if err != nil {
			t.Fatalf("PeriodOf(%v): %v", tc.g, err)
		}
		if got != tc.want {
			t.Fatalf("PeriodOf(%v)=%q, want %q", tc.g, got, tc.want)
		}
	}
}

func TestPeriodOf_BucketEquality(t *testing.T) {
	t.Parallel()

	// Same hour, different minute: equal up to Hour, distinct at Minute.
	t1 := time.Date(2022, time.March, 5, 14, 3, 59, 0, time.UTC)
	t2 := time.Date(2022, time.March, 5, 14, 41, 0, 0, time.UTC)

	for g := analysis.Year; g <= analysis.Hour; g++ {
		k1, err := analysis.PeriodOf(t1, g)
		if err != nil {
			t.Fatalf("PeriodOf: %v", err)
		}
		k2, err := analysis.PeriodOf(t2, g)
		if err != nil {
			t.Fatalf("PeriodOf: %v", err)
		}
		if k1 != k2 {
			t.Fatalf("granularity %v: keys %q vs %q, want equal", g, k1, k2)
		}
	}

	k1, _ := analysis.PeriodOf(t1, analysis.Minute)
	k2, _ := analysis.PeriodOf(t2, analysis.Minute)
	if k1 == k2 {
		t.Fatalf("minute keys both %q, want distinct", k1)
	}
}

func TestGranularity_Invalid(t *testing.T) {
	t.Parallel()

	for _, v := range []int{-1, 5, 42} {
		_, err := analysis.ParseGranularity(v)
		var invalid *analysis.InvalidArgumentError
		if !errors.As(err, &invalid) {
			t.Fatalf("ParseGranularity(%d) err=%v, want InvalidArgumentError", v, err)
		}
		if !strings.Contains(invalid.Error(), "minute") {
			t.Fatalf("error %q should enumerate the valid range", invalid.Error())
		}
	}
}

package archive_test

import (
	"testing"

	"github.com/calegan/instalens/archive"
)

func TestNormalizeUsername(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		// Length >= 11: the last 11 characters go, unconditionally.
		{"suffixed handle", "emre.cenk99_oj23hl42ab", "emre.cenk99"},
		{"exactly eleven", "a_bcdefghij", ""},
		{"long name without suffix still truncated", "plainlongname", "pl"},
		// Length < 11: truncate at the last underscore.
		{"short with underscore", "ab_cd_ef", "ab_cd"},
		{"short without underscore", "plain", "plain"},
		{"empty", "", ""},
		// Characters, not bytes.
		{"multibyte short name", "héllo", "héllo"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := archive.NormalizeUsername(tc.in); got != tc.want {
				t.Fatalf("NormalizeUsername(%q)=%q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

package trainlog

import (
	"errors"
	"strings"
	"testing"
)

func TestSplitActivitiesPreservesPieceCount(t *testing.T) {
	t.Parallel()

	cases := []string{
		"6.2 miles r.; 2.7 miles w.",
		"13.29 b.; 2.3 w.",
		"1.0 r.",
		"; ;",
		"",
	}
	for _, text := range cases {
		pieces := SplitActivities(text)
		if rejoined := strings.Join(pieces, ";"); rejoined != text {
			t.Errorf("rejoin of %q = %q", text, rejoined)
		}
		if want := strings.Count(text, ";") + 1; len(pieces) != want {
			t.Errorf("SplitActivities(%q) gave %d pieces, want %d", text, len(pieces), want)
		}
	}
}

func TestTokenizeActivity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		piece string
		want  Activity
	}{
		{"units and type", "6.2 miles r.", Activity{6.2, "miles", "r"}},
		{"type only", "13.29 b.", Activity{13.29, "", "b"}},
		{"type only no dot", "2.3 w", Activity{2.3, "", "w"}},
		{"minutes", "45 min r", Activity{45, "min", "r"}},
		{"uppercase type folded", "6.2 miles R.", Activity{6.2, "miles", "r"}},
		{"units keep case", "1000 Yards s", Activity{1000, "Yards", "s"}},
		{"quantity glued to type", "6.2r", Activity{6.2, "", "r"}},
		{"multi word type", "30 min core work", Activity{30, "min", "core work"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := TokenizeActivity(tc.piece)
			if err != nil {
				t.Fatalf("TokenizeActivity(%q) error = %v", tc.piece, err)
			}
			if got != tc.want {
				t.Fatalf("TokenizeActivity(%q) = %+v, want %+v", tc.piece, got, tc.want)
			}
		})
	}
}

func TestTokenizeActivityNoQuantity(t *testing.T) {
	t.Parallel()

	for _, piece := range []string{"miles r.", "r", ".."} {
		if _, err := TokenizeActivity(piece); !errors.Is(err, ErrNoQuantity) {
			t.Errorf("TokenizeActivity(%q) error = %v, want ErrNoQuantity", piece, err)
		}
	}
}

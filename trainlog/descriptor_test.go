package trainlog

import (
	"errors"
	"testing"
)

func TestExtractDescriptor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		year int
		want Descriptor
	}{
		{
			name: "two digit month with annotation",
			text: "03/05  [130.5] 6.2 miles r.; 2.7 miles w.",
			year: 2006,
			want: Descriptor{
				DateToken:  "2006-03-05",
				Annotation: "130.5",
				Activities: "6.2 miles r.; 2.7 miles w.",
			},
		},
		{
			name: "single digit month",
			text: "9/09 [124.8T] 13.29 b.; 2.3 w.",
			year: 2006,
			want: Descriptor{
				DateToken:  "2006-09-09",
				Annotation: "124.8T",
				Activities: "13.29 b.; 2.3 w.",
			},
		},
		{
			name: "no annotation",
			text: "07/23  0.6 miles sr",
			year: 2010,
			want: Descriptor{
				DateToken:  "2010-07-23",
				Activities: "0.6 miles sr",
			},
		},
		{
			name: "unclosed bracket kept in activities",
			text: "07/23 [130 1.0 r.",
			year: 2010,
			want: Descriptor{
				DateToken:  "2010-07-23",
				Activities: "[130 1.0 r.",
			},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ExtractDescriptor(tc.text, tc.year)
			if err != nil {
				t.Fatalf("ExtractDescriptor() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestExtractDescriptorFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		year int
		want error
	}{
		{"empty", "", 2006, ErrNoLeadingDigit},
		{"no leading digit", "ran 6.2 miles", 2006, ErrNoLeadingDigit},
		{"no separator", "0305 6.2 r.", 2006, ErrNoDateSeparator},
		{"three digit month", "123/05 r.", 2006, ErrNoDateSeparator},
		{"no day digits", "03/ 6.2 r.", 2006, ErrTruncatedDate},
		{"no year context", "03/05 6.2 r.", 0, ErrTruncatedDate},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ExtractDescriptor(tc.text, tc.year)
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestScanYearMarker(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text   string
		year   int
		wantOK bool
	}{
		{"*** 1998", 1998, true},
		{"some text *** 2006 more", 2006, true},
		{"***  2006", 2006, true},
		{"*** 98", 0, false},
		{"** 1998", 0, false},
		{"no marker here", 0, false},
	}
	for _, tc := range cases {
		year, ok := ScanYearMarker(tc.text)
		if ok != tc.wantOK || year != tc.year {
			t.Errorf("ScanYearMarker(%q) = (%d, %v), want (%d, %v)", tc.text, year, ok, tc.year, tc.wantOK)
		}
	}
}

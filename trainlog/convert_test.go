package trainlog

import "testing"

func TestConvertUnits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		typ      string
		unit     string
		q        float64
		wantQ    float64
		wantUnit string
		wantOK   bool
	}{
		{"run miles identity", TypeRun, "miles", 6.2, 6.2, "miles", true},
		{"run mile identity", TypeRun, "mile", 1, 1, "miles", true},
		{"run bare quantity", TypeRun, "", 6.2, 6.2, "miles", true},
		{"run km", TypeRun, "k", 10, 6.21371, "miles", true},
		{"run minutes", TypeRun, "min", 40, 5, "miles", true},
		{"swim yards", TypeSwim, "yards", 1760, 1, "miles", true},
		{"swim meters", TypeSwim, "meters", 1609, 1, "miles", true},
		{"swim minutes", TypeSwim, "minutes", 25, 1, "miles", true},
		{"bike minutes", TypeBike, "min", 60, 9, "miles", true},
		{"bike hours", TypeBike, "hours", 2, 18, "miles", true},
		{"bike km", TypeBike, "k", 10, 6.21371, "miles", true},
		{"walk minutes", TypeWalk, "min", 60, 3, "miles", true},
		// Unrecognized units pass the quantity through but still
		// label it miles.
		{"run furlongs", TypeRun, "furlongs", 8, 8, "miles", false},
		{"walk km unsupported", TypeWalk, "k", 5, 5, "miles", false},
		// Non-distance canonical types are untouched.
		{"core minutes", TypeCore, "min", 30, 30, "min", true},
		{"unknown type", "yoga", "min", 45, 45, "min", true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			q, unit, ok := ConvertUnits(tc.typ, tc.unit, tc.q)
			if !almostEqual(q, tc.wantQ) || unit != tc.wantUnit || ok != tc.wantOK {
				t.Fatalf("ConvertUnits(%s, %q, %g) = (%g, %q, %v), want (%g, %q, %v)",
					tc.typ, tc.unit, tc.q, q, unit, ok, tc.wantQ, tc.wantUnit, tc.wantOK)
			}
		})
	}
}

func TestImplausibleDistance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		typ   string
		miles float64
		want  bool
	}{
		{TypeRun, 12, false},
		{TypeRun, 12.1, true},
		{TypeWalk, 13, true},
		{TypeBike, 40, false},
		{TypeBike, 41, true},
		{TypeSwim, 100, false},
		{TypeCore, 100, false},
	}
	for _, tc := range cases {
		if got := ImplausibleDistance(tc.typ, tc.miles); got != tc.want {
			t.Errorf("ImplausibleDistance(%s, %g) = %v, want %v", tc.typ, tc.miles, got, tc.want)
		}
	}
}

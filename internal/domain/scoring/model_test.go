package scoring

import "testing"

func TestPoints_DefaultTableVectors(t *testing.T) {
	table := DefaultTable()

	cases := []struct {
		name string
		line StatLine
		want float64
	}{
		{name: "passing only", line: StatLine{PassYards: 300, PassTDs: 3}, want: 27.0},
		{name: "rushing only", line: StatLine{RushYards: 100, RushTDs: 1}, want: 16.0},
		{name: "receiving only", line: StatLine{RecYards: 120, RecTDs: 2}, want: 24.0},
		{name: "rush and rec combine", line: StatLine{RushYards: 50, RecYards: 75, RushTDs: 1}, want: 18.5},
		{name: "turnovers only", line: StatLine{Interceptions: 3, FumblesLost: 2}, want: -10.0},
		{name: "all zero", line: StatLine{}, want: 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Points(tc.line, table)
			if got != tc.want {
				t.Fatalf("points mismatch: got %v want %v", got, tc.want)
			}
		})
	}
}

func TestPoints_NegativeTotalsNotClamped(t *testing.T) {
	got := Points(StatLine{RushYards: 12, Interceptions: 2}, DefaultTable())
	if got != -2.8 {
		t.Fatalf("expected -2.8, got %v", got)
	}
}

func TestPoints_RoundsOnceAtTheEnd(t *testing.T) {
	table := DefaultTable()

	// 33/25 + 7/10 + 9/10 = 1.32 + 0.7 + 0.9 = 2.92 exactly. Per-term
	// rounding of 1.32 to 1.3 would yield 2.9 instead.
	got := Points(StatLine{PassYards: 33, RushYards: 7, RecYards: 9}, table)
	if got != 2.92 {
		t.Fatalf("expected 2.92, got %v", got)
	}
}

func TestPoints_TwoPointConversions(t *testing.T) {
	got := Points(StatLine{TwoPointConversions: 2, RecYards: 10}, DefaultTable())
	if got != 5.0 {
		t.Fatalf("expected 5.0, got %v", got)
	}
}

func TestRoundHalfAway(t *testing.T) {
	if got := roundHalfAway(0.125, 2); got != 0.13 {
		t.Fatalf("expected half to round away from zero, got %v", got)
	}
	if got := roundHalfAway(-0.125, 2); got != -0.13 {
		t.Fatalf("expected negative half to round away from zero, got %v", got)
	}
}

package scoring

import "math"

// StatLine is one player's raw statistical line for one week. Zero values
// mean the stat is absent.
type StatLine struct {
	PassYards           int
	PassTDs             int
	RushYards           int
	RushTDs             int
	RecYards            int
	RecTDs              int
	Interceptions       int
	FumblesLost         int
	TwoPointConversions int
}

// Table is a configurable scoring table: yards-per-point divisors,
// per-touchdown values, turnover penalties and the two-point value.
type Table struct {
	ID                 string
	PassYardsPerPoint  float64
	PassTDPoints       float64
	RushYardsPerPoint  float64
	RushTDPoints       float64
	RecYardsPerPoint   float64
	RecTDPoints        float64
	InterceptionPoints float64
	FumbleLostPoints   float64
	TwoPointConvPoints float64
}

func DefaultTable() Table {
	return Table{
		ID:                 "standard",
		PassYardsPerPoint:  25,
		PassTDPoints:       5,
		RushYardsPerPoint:  10,
		RushTDPoints:       6,
		RecYardsPerPoint:   10,
		RecTDPoints:        6,
		InterceptionPoints: -2,
		FumbleLostPoints:   -2,
		TwoPointConvPoints: 2,
	}
}

// Points maps a stat line to fantasy points under the table. Rushing and
// receiving production combine additively. Negative totals are valid and
// are not clamped. Rounding to two decimals happens exactly once, at the
// end; per-term rounding would accumulate error.
func Points(line StatLine, table Table) float64 {
	total := 0.0
	if table.PassYardsPerPoint > 0 {
		total += float64(line.PassYards) / table.PassYardsPerPoint
	}
	if table.RushYardsPerPoint > 0 {
		total += float64(line.RushYards) / table.RushYardsPerPoint
	}
	if table.RecYardsPerPoint > 0 {
		total += float64(line.RecYards) / table.RecYardsPerPoint
	}
	total += float64(line.PassTDs) * table.PassTDPoints
	total += float64(line.RushTDs) * table.RushTDPoints
	total += float64(line.RecTDs) * table.RecTDPoints
	total += float64(line.Interceptions) * table.InterceptionPoints
	total += float64(line.FumblesLost) * table.FumbleLostPoints
	total += float64(line.TwoPointConversions) * table.TwoPointConvPoints

	return roundHalfAway(total, 2)
}

// roundHalfAway rounds half away from zero at the given decimal count.
func roundHalfAway(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

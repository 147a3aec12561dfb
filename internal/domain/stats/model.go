package stats

import (
	"fmt"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/scoring"
)

// Line is one realized stat line: what a player actually did in one week.
// A pick without a realized line belongs to a future week and contributes
// nothing to current totals.
type Line struct {
	PlayerID string
	Week     int
	Line     scoring.StatLine
}

func (l Line) Validate() error {
	if l.PlayerID == "" {
		return fmt.Errorf("stat line player id is required")
	}
	if l.Week <= 0 {
		return fmt.Errorf("stat line week must be greater than zero")
	}

	return nil
}

// Key identifies a line by (player, week).
func (l Line) Key() string {
	return fmt.Sprintf("%s::%d", l.PlayerID, l.Week)
}

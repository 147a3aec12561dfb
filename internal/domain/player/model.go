package player

import "fmt"

// Position represents the playoff pick-pool position categories.
type Position string

const (
	PositionQuarterback  Position = "QB"
	PositionRunningBack  Position = "RB"
	PositionWideReceiver Position = "WR"
	PositionTightEnd     Position = "TE"
)

var AllPositions = map[Position]struct{}{
	PositionQuarterback:  {},
	PositionRunningBack:  {},
	PositionWideReceiver: {},
	PositionTightEnd:     {},
}

// FlexEligible reports whether a position may fill the FLEX slot.
func FlexEligible(p Position) bool {
	return p == PositionWideReceiver || p == PositionTightEnd
}

// Player is a rosterable athlete in the playoff pick pool.
type Player struct {
	ID       string
	TeamID   string
	Name     string
	Position Position
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}

	return nil
}

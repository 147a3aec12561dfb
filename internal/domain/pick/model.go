package pick

import (
	"fmt"
	"time"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/player"
)

// Slot is one of the three position requirements a member fills each week.
type Slot string

const (
	SlotQuarterback Slot = "QB"
	SlotRunningBack Slot = "RB"
	SlotFlex        Slot = "FLEX"
)

var AllSlots = map[Slot]struct{}{
	SlotQuarterback: {},
	SlotRunningBack: {},
	SlotFlex:        {},
}

// Accepts reports whether a player position may fill the slot. FLEX accepts
// wide receivers and tight ends only.
func (s Slot) Accepts(pos player.Position) bool {
	switch s {
	case SlotQuarterback:
		return pos == player.PositionQuarterback
	case SlotRunningBack:
		return pos == player.PositionRunningBack
	case SlotFlex:
		return player.FlexEligible(pos)
	default:
		return false
	}
}

// Pick is one committed slot selection. Picks are append-only and never
// mutated after submission; this is a game-integrity invariant.
type Pick struct {
	ID          string
	LeagueID    string
	MemberID    string
	Week        int
	Slot        Slot
	PlayerID    string
	SubmittedAt time.Time
}

func (p Pick) Validate() error {
	if p.LeagueID == "" {
		return fmt.Errorf("pick league id is required")
	}
	if p.MemberID == "" {
		return fmt.Errorf("pick member id is required")
	}
	if p.Week <= 0 {
		return fmt.Errorf("pick week must be greater than zero")
	}
	if _, ok := AllSlots[p.Slot]; !ok {
		return fmt.Errorf("invalid pick slot: %s", p.Slot)
	}
	if p.PlayerID == "" {
		return fmt.Errorf("pick player id is required")
	}

	return nil
}

// UsedPlayers derives the season-wide exclusion set from a member's picks.
func UsedPlayers(picks []Pick) map[string]struct{} {
	out := make(map[string]struct{}, len(picks))
	for _, p := range picks {
		out[p.PlayerID] = struct{}{}
	}

	return out
}

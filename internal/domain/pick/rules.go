package pick

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/player"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/schedule"
)

var (
	ErrAlreadySubmitted  = errors.New("week already submitted")
	ErrPlayerAlreadyUsed = errors.New("player already used")
	ErrDeadlinePassed    = errors.New("submission window is closed")
	ErrSlotMismatch      = errors.New("player position does not fit slot")
	ErrDuplicateInWeek   = errors.New("duplicate player in week submission")
	ErrPlayerNotInPool   = errors.New("player not in eligible pool")
)

// Submission is one member's full week: all three slots filed together.
// A week with any recorded pick is SUBMITTED, so slots cannot be dribbled
// in one at a time; submission is atomic by construction.
type Submission struct {
	QuarterbackID string
	RunningBackID string
	FlexID        string
}

func (s Submission) slots() []struct {
	Slot     Slot
	PlayerID string
} {
	return []struct {
		Slot     Slot
		PlayerID string
	}{
		{Slot: SlotQuarterback, PlayerID: s.QuarterbackID},
		{Slot: SlotRunningBack, PlayerID: s.RunningBackID},
		{Slot: SlotFlex, PlayerID: s.FlexID},
	}
}

// ValidateSubmission applies the ledger rules in contract order: the week
// must not already hold picks, no player may repeat from any prior week
// (use-once spans the whole season), the window must be OPEN, and every
// player must exist in the pool with a position that fits its slot.
func ValidateSubmission(
	week schedule.Week,
	existing []Pick,
	sub Submission,
	used map[string]struct{},
	positionByPlayer map[string]player.Position,
	now time.Time,
) error {
	if len(existing) > 0 {
		return fmt.Errorf("%w: week %d", ErrAlreadySubmitted, week.Index)
	}

	for _, item := range sub.slots() {
		if item.PlayerID == "" {
			return fmt.Errorf("player id is required for slot %s", item.Slot)
		}
		if _, ok := used[item.PlayerID]; ok {
			return fmt.Errorf("%w: %s", ErrPlayerAlreadyUsed, item.PlayerID)
		}
	}

	if schedule.Status(week, false, now) != schedule.StateOpenNotSubmitted {
		return fmt.Errorf("%w: week %d", ErrDeadlinePassed, week.Index)
	}

	seen := make(map[string]struct{}, 3)
	for _, item := range sub.slots() {
		if _, dup := seen[item.PlayerID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateInWeek, item.PlayerID)
		}
		seen[item.PlayerID] = struct{}{}

		pos, ok := positionByPlayer[item.PlayerID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrPlayerNotInPool, item.PlayerID)
		}
		if !item.Slot.Accepts(pos) {
			return fmt.Errorf("%w: slot=%s player=%s position=%s", ErrSlotMismatch, item.Slot, item.PlayerID, pos)
		}
	}

	return nil
}

package schedule

import (
	"fmt"
	"time"
)

// Week is one playoff round's submission window. Immutable once scheduled;
// an external schedule-sync collaborator may correct it before openAt.
type Week struct {
	Index      int
	OpenAt     time.Time
	DeadlineAt time.Time
}

func (w Week) Validate() error {
	if w.Index <= 0 {
		return fmt.Errorf("week index must be greater than zero")
	}
	if w.OpenAt.IsZero() || w.DeadlineAt.IsZero() {
		return fmt.Errorf("week %d open and deadline instants are required", w.Index)
	}
	if w.DeadlineAt.Before(w.OpenAt) {
		return fmt.Errorf("week %d deadline precedes open", w.Index)
	}

	return nil
}

// WindowState is the submission state of one week for one member.
type WindowState string

const (
	StateFutureLocked     WindowState = "FUTURE_LOCKED"
	StateOpenNotSubmitted WindowState = "OPEN_NOT_SUBMITTED"
	StateSubmitted        WindowState = "SUBMITTED"
	StatePastNoPicks      WindowState = "PAST_NO_PICKS"
)

// Status evaluates the window state machine. It is pure: the clock value is
// injected, never read inside. Evaluation order is load-bearing: any
// recorded pick resolves the week permanently, even past the deadline, and
// both window endpoints are inclusive.
func Status(week Week, hasPicks bool, now time.Time) WindowState {
	if hasPicks {
		return StateSubmitted
	}
	if !now.Before(week.OpenAt) && !now.After(week.DeadlineAt) {
		return StateOpenNotSubmitted
	}
	if now.Before(week.OpenAt) {
		return StateFutureLocked
	}

	return StatePastNoPicks
}

// CurrentOpenWeek returns the first week, in schedule order, whose window
// contains now. The second return is false when no week is open.
func CurrentOpenWeek(weeks []Week, now time.Time) (Week, bool) {
	for _, week := range weeks {
		if !now.Before(week.OpenAt) && !now.After(week.DeadlineAt) {
			return week, true
		}
	}

	return Week{}, false
}

// WeeksRemaining counts weeks whose deadline has not yet passed. These are
// the weeks the simulator still has to play out.
func WeeksRemaining(weeks []Week, now time.Time) int {
	remaining := 0
	for _, week := range weeks {
		if !now.After(week.DeadlineAt) {
			remaining++
		}
	}

	return remaining
}

// CurrentWeekIndex resolves the index shown to members: the open week when
// one exists, otherwise the latest week already opened, otherwise the first
// scheduled week.
func CurrentWeekIndex(weeks []Week, now time.Time) int {
	if len(weeks) == 0 {
		return 0
	}
	if open, ok := CurrentOpenWeek(weeks, now); ok {
		return open.Index
	}

	current := 0
	for _, week := range weeks {
		if now.Before(week.OpenAt) {
			continue
		}
		if week.Index > current {
			current = week.Index
		}
	}
	if current == 0 {
		current = weeks[0].Index
	}

	return current
}

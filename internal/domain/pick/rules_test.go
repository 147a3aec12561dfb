package pick

import (
	"errors"
	"testing"
	"time"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/player"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/schedule"
)

var testPool = map[string]player.Position{
	"qb-1": player.PositionQuarterback,
	"qb-2": player.PositionQuarterback,
	"rb-1": player.PositionRunningBack,
	"rb-2": player.PositionRunningBack,
	"wr-1": player.PositionWideReceiver,
	"te-1": player.PositionTightEnd,
}

func openTestWeek() (schedule.Week, time.Time) {
	open := time.Date(2027, 1, 9, 12, 0, 0, 0, time.UTC)
	week := schedule.Week{Index: 1, OpenAt: open, DeadlineAt: open.Add(6 * 24 * time.Hour)}

	return week, open.Add(time.Hour)
}

func validSubmission() Submission {
	return Submission{QuarterbackID: "qb-1", RunningBackID: "rb-1", FlexID: "wr-1"}
}

func TestValidateSubmission_Accepts(t *testing.T) {
	week, now := openTestWeek()

	if err := ValidateSubmission(week, nil, validSubmission(), nil, testPool, now); err != nil {
		t.Fatalf("valid submission rejected: %v", err)
	}

	tightEnd := Submission{QuarterbackID: "qb-1", RunningBackID: "rb-1", FlexID: "te-1"}
	if err := ValidateSubmission(week, nil, tightEnd, nil, testPool, now); err != nil {
		t.Fatalf("tight end should satisfy the flex slot: %v", err)
	}
}

func TestValidateSubmission_AlreadySubmittedWinsOverEverything(t *testing.T) {
	week, now := openTestWeek()
	existing := []Pick{{ID: "p1", LeagueID: "l1", MemberID: "m1", Week: 1, Slot: SlotQuarterback, PlayerID: "qb-2"}}

	// Deliberately broken submission: the existing picks must short-circuit
	// before any other rule fires.
	sub := Submission{QuarterbackID: "rb-1", RunningBackID: "rb-1", FlexID: "qb-1"}
	err := ValidateSubmission(week, existing, sub, map[string]struct{}{"rb-1": {}}, testPool, now)
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}
}

func TestValidateSubmission_UseOnceSpansSeason(t *testing.T) {
	week, now := openTestWeek()
	used := map[string]struct{}{"rb-1": {}}

	err := ValidateSubmission(week, nil, validSubmission(), used, testPool, now)
	if !errors.Is(err, ErrPlayerAlreadyUsed) {
		t.Fatalf("expected ErrPlayerAlreadyUsed, got %v", err)
	}
}

func TestValidateSubmission_UsedCheckedBeforeWindow(t *testing.T) {
	week, _ := openTestWeek()
	afterDeadline := week.DeadlineAt.Add(time.Hour)
	used := map[string]struct{}{"qb-1": {}}

	err := ValidateSubmission(week, nil, validSubmission(), used, testPool, afterDeadline)
	if !errors.Is(err, ErrPlayerAlreadyUsed) {
		t.Fatalf("expected reuse to report before the closed window, got %v", err)
	}
}

func TestValidateSubmission_WindowClosed(t *testing.T) {
	week, _ := openTestWeek()

	for name, now := range map[string]time.Time{
		"before open":    week.OpenAt.Add(-time.Minute),
		"after deadline": week.DeadlineAt.Add(time.Minute),
	} {
		err := ValidateSubmission(week, nil, validSubmission(), nil, testPool, now)
		if !errors.Is(err, ErrDeadlinePassed) {
			t.Fatalf("%s: expected ErrDeadlinePassed, got %v", name, err)
		}
	}

	if err := ValidateSubmission(week, nil, validSubmission(), nil, testPool, week.DeadlineAt); err != nil {
		t.Fatalf("deadline instant should still accept: %v", err)
	}
}

func TestValidateSubmission_SlotMismatch(t *testing.T) {
	week, now := openTestWeek()

	cases := map[string]Submission{
		"rb in qb slot":   {QuarterbackID: "rb-2", RunningBackID: "rb-1", FlexID: "wr-1"},
		"wr in rb slot":   {QuarterbackID: "qb-1", RunningBackID: "wr-1", FlexID: "te-1"},
		"qb in flex slot": {QuarterbackID: "qb-1", RunningBackID: "rb-1", FlexID: "qb-2"},
		"rb in flex slot": {QuarterbackID: "qb-1", RunningBackID: "rb-1", FlexID: "rb-2"},
	}
	for name, sub := range cases {
		err := ValidateSubmission(week, nil, sub, nil, testPool, now)
		if !errors.Is(err, ErrSlotMismatch) {
			t.Fatalf("%s: expected ErrSlotMismatch, got %v", name, err)
		}
	}
}

func TestValidateSubmission_DuplicateInWeek(t *testing.T) {
	week, now := openTestWeek()

	sub := Submission{QuarterbackID: "qb-1", RunningBackID: "rb-1", FlexID: "rb-1"}
	err := ValidateSubmission(week, nil, sub, nil, testPool, now)
	if !errors.Is(err, ErrDuplicateInWeek) {
		t.Fatalf("expected ErrDuplicateInWeek, got %v", err)
	}
}

func TestValidateSubmission_PlayerNotInPool(t *testing.T) {
	week, now := openTestWeek()

	sub := Submission{QuarterbackID: "qb-1", RunningBackID: "rb-1", FlexID: "wr-unknown"}
	err := ValidateSubmission(week, nil, sub, nil, testPool, now)
	if !errors.Is(err, ErrPlayerNotInPool) {
		t.Fatalf("expected ErrPlayerNotInPool, got %v", err)
	}
}

func TestValidateSubmission_MissingPlayerID(t *testing.T) {
	week, now := openTestWeek()

	sub := Submission{QuarterbackID: "qb-1", RunningBackID: "", FlexID: "wr-1"}
	if err := ValidateSubmission(week, nil, sub, nil, testPool, now); err == nil {
		t.Fatal("expected empty player id to be rejected")
	}
}

func TestUsedPlayers(t *testing.T) {
	picks := []Pick{
		{PlayerID: "qb-1"},
		{PlayerID: "rb-1"},
		{PlayerID: "qb-1"},
	}

	used := UsedPlayers(picks)
	if len(used) != 2 {
		t.Fatalf("expected 2 distinct players, got %d", len(used))
	}
	if _, ok := used["rb-1"]; !ok {
		t.Fatal("expected rb-1 in the used set")
	}
}

package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/pick"
	"github.com/sirbenjaminG88/playoff-picks/internal/infrastructure/repository/memory"
	"github.com/sirbenjaminG88/playoff-picks/internal/platform/id"
)

// week 2 of the seeded schedule is open at this instant.
var week2Open = time.Date(2027, 1, 12, 9, 0, 0, 0, time.UTC)

func newPickService() (*PickService, *memory.PickRepository) {
	pickRepo := memory.NewPickRepository()
	svc := NewPickService(
		memory.NewMemberRepository(memory.SeedMembers()),
		memory.NewWeekRepository(memory.SeedWeeks()),
		pickRepo,
		memory.NewProjectionRepository(memory.SeedProjections()),
		id.NewRandomGenerator(),
	)
	svc.now = func() time.Time { return week2Open }
	return svc, pickRepo
}

func TestPickService_Submit(t *testing.T) {
	svc, _ := newPickService()

	picks, err := svc.Submit(t.Context(), SubmitPicksInput{
		LeagueID:      memory.LeagueIDDemoPlayoffs,
		MemberID:      "mem-alice",
		Week:          2,
		QuarterbackID: "kc-qb-01",
		RunningBackID: "sf-rb-01",
		FlexID:        "buf-wr-01",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if len(picks) != 3 {
		t.Fatalf("expected 3 picks, got %d", len(picks))
	}
	for _, p := range picks {
		if p.ID == "" {
			t.Fatal("pick id was not generated")
		}
		if p.Week != 2 {
			t.Fatalf("unexpected pick week: %d", p.Week)
		}
	}
}

func TestPickService_Submit_SecondSubmissionRejected(t *testing.T) {
	svc, _ := newPickService()

	input := SubmitPicksInput{
		LeagueID:      memory.LeagueIDDemoPlayoffs,
		MemberID:      "mem-alice",
		Week:          2,
		QuarterbackID: "kc-qb-01",
		RunningBackID: "sf-rb-01",
		FlexID:        "buf-wr-01",
	}
	if _, err := svc.Submit(t.Context(), input); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	input.QuarterbackID = "buf-qb-01"
	input.RunningBackID = "phi-rb-01"
	input.FlexID = "det-wr-01"
	_, err := svc.Submit(t.Context(), input)
	if !errors.Is(err, pick.ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}
}

func TestPickService_Submit_PlayerUsedInEarlierWeek(t *testing.T) {
	svc, pickRepo := newPickService()

	prior := []pick.Pick{
		{ID: "p1", LeagueID: memory.LeagueIDDemoPlayoffs, MemberID: "mem-alice", Week: 1, Slot: pick.SlotQuarterback, PlayerID: "kc-qb-01", SubmittedAt: week2Open.Add(-5 * 24 * time.Hour)},
		{ID: "p2", LeagueID: memory.LeagueIDDemoPlayoffs, MemberID: "mem-alice", Week: 1, Slot: pick.SlotRunningBack, PlayerID: "sf-rb-01", SubmittedAt: week2Open.Add(-5 * 24 * time.Hour)},
		{ID: "p3", LeagueID: memory.LeagueIDDemoPlayoffs, MemberID: "mem-alice", Week: 1, Slot: pick.SlotFlex, PlayerID: "buf-wr-01", SubmittedAt: week2Open.Add(-5 * 24 * time.Hour)},
	}
	if err := pickRepo.SubmitWeek(t.Context(), prior); err != nil {
		t.Fatalf("seed prior week failed: %v", err)
	}

	_, err := svc.Submit(t.Context(), SubmitPicksInput{
		LeagueID:      memory.LeagueIDDemoPlayoffs,
		MemberID:      "mem-alice",
		Week:          2,
		QuarterbackID: "kc-qb-01",
		RunningBackID: "phi-rb-01",
		FlexID:        "det-wr-01",
	})
	if !errors.Is(err, pick.ErrPlayerAlreadyUsed) {
		t.Fatalf("expected ErrPlayerAlreadyUsed, got %v", err)
	}
}

func TestPickService_Submit_ClosedWindow(t *testing.T) {
	svc, _ := newPickService()
	svc.now = func() time.Time { return time.Date(2027, 1, 17, 9, 0, 0, 0, time.UTC) }

	_, err := svc.Submit(t.Context(), SubmitPicksInput{
		LeagueID:      memory.LeagueIDDemoPlayoffs,
		MemberID:      "mem-alice",
		Week:          2,
		QuarterbackID: "kc-qb-01",
		RunningBackID: "sf-rb-01",
		FlexID:        "buf-wr-01",
	})
	if !errors.Is(err, pick.ErrDeadlinePassed) {
		t.Fatalf("expected ErrDeadlinePassed, got %v", err)
	}
}

func TestPickService_Submit_EliminatedPlayerNotInPool(t *testing.T) {
	svc, _ := newPickService()

	_, err := svc.Submit(t.Context(), SubmitPicksInput{
		LeagueID:      memory.LeagueIDDemoPlayoffs,
		MemberID:      "mem-alice",
		Week:          2,
		QuarterbackID: "hou-qb-01",
		RunningBackID: "sf-rb-01",
		FlexID:        "buf-wr-01",
	})
	if !errors.Is(err, pick.ErrPlayerNotInPool) {
		t.Fatalf("expected ErrPlayerNotInPool for eliminated player, got %v", err)
	}
}

func TestPickService_Submit_UnknownMember(t *testing.T) {
	svc, _ := newPickService()

	_, err := svc.Submit(t.Context(), SubmitPicksInput{
		LeagueID:      memory.LeagueIDDemoPlayoffs,
		MemberID:      "mem-nobody",
		Week:          2,
		QuarterbackID: "kc-qb-01",
		RunningBackID: "sf-rb-01",
		FlexID:        "buf-wr-01",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPickService_Submit_UnknownWeek(t *testing.T) {
	svc, _ := newPickService()

	_, err := svc.Submit(t.Context(), SubmitPicksInput{
		LeagueID:      memory.LeagueIDDemoPlayoffs,
		MemberID:      "mem-alice",
		Week:          9,
		QuarterbackID: "kc-qb-01",
		RunningBackID: "sf-rb-01",
		FlexID:        "buf-wr-01",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPickService_ListByMember(t *testing.T) {
	svc, _ := newPickService()

	if _, err := svc.Submit(t.Context(), SubmitPicksInput{
		LeagueID:      memory.LeagueIDDemoPlayoffs,
		MemberID:      "mem-alice",
		Week:          2,
		QuarterbackID: "kc-qb-01",
		RunningBackID: "sf-rb-01",
		FlexID:        "buf-wr-01",
	}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	picks, err := svc.ListByMember(t.Context(), memory.LeagueIDDemoPlayoffs, "mem-alice")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(picks) != 3 {
		t.Fatalf("expected 3 picks, got %d", len(picks))
	}
}

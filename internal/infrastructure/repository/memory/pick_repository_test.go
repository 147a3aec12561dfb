package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/pick"
)

func weekPicks(memberID string, week int, qb, rb, flex string) []pick.Pick {
	at := time.Date(2027, 1, 8, 9, 0, 0, 0, time.UTC)
	return []pick.Pick{
		{ID: memberID + "-qb", LeagueID: LeagueIDDemoPlayoffs, MemberID: memberID, Week: week, Slot: pick.SlotQuarterback, PlayerID: qb, SubmittedAt: at},
		{ID: memberID + "-rb", LeagueID: LeagueIDDemoPlayoffs, MemberID: memberID, Week: week, Slot: pick.SlotRunningBack, PlayerID: rb, SubmittedAt: at},
		{ID: memberID + "-flex", LeagueID: LeagueIDDemoPlayoffs, MemberID: memberID, Week: week, Slot: pick.SlotFlex, PlayerID: flex, SubmittedAt: at},
	}
}

func TestPickRepository_SubmitAndListByMember(t *testing.T) {
	ctx := context.Background()
	repo := NewPickRepository()

	if err := repo.SubmitWeek(ctx, weekPicks("mem-alice", 1, "kc-qb-01", "sf-rb-01", "buf-wr-01")); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if err := repo.SubmitWeek(ctx, weekPicks("mem-alice", 2, "buf-qb-01", "phi-rb-01", "det-wr-01")); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	picks, err := repo.ListByMember(ctx, LeagueIDDemoPlayoffs, "mem-alice")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(picks) != 6 {
		t.Fatalf("expected 6 picks, got %d", len(picks))
	}
	for i := 1; i < len(picks); i++ {
		if picks[i].Week < picks[i-1].Week {
			t.Fatal("picks not ordered by week")
		}
	}
}

func TestPickRepository_ListByMemberWeek(t *testing.T) {
	ctx := context.Background()
	repo := NewPickRepository()

	if err := repo.SubmitWeek(ctx, weekPicks("mem-ben", 1, "bal-qb-01", "det-rb-01", "kc-te-01")); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	picks, err := repo.ListByMemberWeek(ctx, LeagueIDDemoPlayoffs, "mem-ben", 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(picks) != 3 {
		t.Fatalf("expected 3 picks in week 1, got %d", len(picks))
	}

	picks, err = repo.ListByMemberWeek(ctx, LeagueIDDemoPlayoffs, "mem-ben", 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(picks) != 0 {
		t.Fatalf("expected no picks in week 2, got %d", len(picks))
	}
}

func TestPickRepository_RejectsDuplicateWeekSubmission(t *testing.T) {
	ctx := context.Background()
	repo := NewPickRepository()

	if err := repo.SubmitWeek(ctx, weekPicks("mem-alice", 1, "kc-qb-01", "sf-rb-01", "buf-wr-01")); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	err := repo.SubmitWeek(ctx, weekPicks("mem-alice", 1, "buf-qb-01", "phi-rb-01", "det-wr-01"))
	if !errors.Is(err, pick.ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}

	picks, err := repo.ListByMember(ctx, LeagueIDDemoPlayoffs, "mem-alice")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(picks) != 3 {
		t.Fatalf("rejected batch must not store rows: got %d picks", len(picks))
	}
}

func TestPickRepository_RejectsReusedPlayerAcrossWeeks(t *testing.T) {
	ctx := context.Background()
	repo := NewPickRepository()

	if err := repo.SubmitWeek(ctx, weekPicks("mem-alice", 1, "kc-qb-01", "sf-rb-01", "buf-wr-01")); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	err := repo.SubmitWeek(ctx, weekPicks("mem-alice", 2, "buf-qb-01", "sf-rb-01", "det-wr-01"))
	if !errors.Is(err, pick.ErrPlayerAlreadyUsed) {
		t.Fatalf("expected ErrPlayerAlreadyUsed, got %v", err)
	}

	picks, err := repo.ListByMember(ctx, LeagueIDDemoPlayoffs, "mem-alice")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(picks) != 3 {
		t.Fatalf("rejected batch must not store rows: got %d picks", len(picks))
	}
}

func TestPickRepository_RejectsDuplicatePlayerWithinBatch(t *testing.T) {
	ctx := context.Background()
	repo := NewPickRepository()

	err := repo.SubmitWeek(ctx, weekPicks("mem-alice", 1, "kc-qb-01", "sf-rb-01", "sf-rb-01"))
	if !errors.Is(err, pick.ErrPlayerAlreadyUsed) {
		t.Fatalf("expected ErrPlayerAlreadyUsed, got %v", err)
	}
}

func TestPickRepository_ListByLeagueIsolatesMembers(t *testing.T) {
	ctx := context.Background()
	repo := NewPickRepository()

	if err := repo.SubmitWeek(ctx, weekPicks("mem-alice", 1, "kc-qb-01", "sf-rb-01", "buf-wr-01")); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if err := repo.SubmitWeek(ctx, weekPicks("mem-ben", 1, "bal-qb-01", "det-rb-01", "kc-te-01")); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	all, err := repo.ListByLeague(ctx, LeagueIDDemoPlayoffs)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("expected 6 league picks, got %d", len(all))
	}

	alice, err := repo.ListByMember(ctx, LeagueIDDemoPlayoffs, "mem-alice")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, p := range alice {
		if p.MemberID != "mem-alice" {
			t.Fatalf("foreign member pick leaked: %s", p.MemberID)
		}
	}
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/pick"
)

type PickRepository struct {
	db *sqlx.DB
}

func NewPickRepository(db *sqlx.DB) *PickRepository {
	return &PickRepository{db: db}
}

const pickSelectColumns = `id, public_id, league_public_id, member_public_id, week_index, slot, player_public_id, submitted_at, created_at`

// SubmitWeek writes all slots in one transaction. The unique constraints on
// (league, member, week, slot) and (league, member, player) back the
// already-submitted and use-once rules against concurrent submitters.
func (r *PickRepository) SubmitWeek(ctx context.Context, picks []pick.Pick) error {
	if len(picks) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin submit week: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO picks (public_id, league_public_id, member_public_id, week_index, slot, player_public_id, submitted_at)
VALUES (:public_id, :league_public_id, :member_public_id, :week_index, :slot, :player_public_id, :submitted_at)`

	for _, p := range picks {
		insertModel := pickInsertModel{
			PublicID:    p.ID,
			LeagueID:    p.LeagueID,
			MemberID:    p.MemberID,
			WeekIndex:   p.Week,
			Slot:        string(p.Slot),
			PlayerID:    p.PlayerID,
			SubmittedAt: p.SubmittedAt,
		}
		if _, err := tx.NamedExecContext(ctx, query, insertModel); err != nil {
			if isUniqueViolation(err, "picks_member_week_slot_key") {
				return fmt.Errorf("%w: week %d", pick.ErrAlreadySubmitted, p.Week)
			}
			if isUniqueViolation(err, "picks_member_player_key") {
				return fmt.Errorf("%w: %s", pick.ErrPlayerAlreadyUsed, p.PlayerID)
			}
			return fmt.Errorf("insert pick %s/%s week %d: %w", p.MemberID, p.Slot, p.Week, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit submit week: %w", err)
	}
	return nil
}

func (r *PickRepository) ListByMember(ctx context.Context, leagueID, memberID string) ([]pick.Pick, error) {
	query := `SELECT ` + pickSelectColumns + ` FROM picks
WHERE league_public_id = $1 AND member_public_id = $2
ORDER BY week_index, slot`

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, leagueID, memberID); err != nil {
		return nil, fmt.Errorf("list picks by member: %w", err)
	}

	return picksFromRows(rows), nil
}

func (r *PickRepository) ListByMemberWeek(ctx context.Context, leagueID, memberID string, week int) ([]pick.Pick, error) {
	query := `SELECT ` + pickSelectColumns + ` FROM picks
WHERE league_public_id = $1 AND member_public_id = $2 AND week_index = $3
ORDER BY slot`

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, leagueID, memberID, week); err != nil {
		return nil, fmt.Errorf("list picks by member week: %w", err)
	}

	return picksFromRows(rows), nil
}

func (r *PickRepository) ListByLeague(ctx context.Context, leagueID string) ([]pick.Pick, error) {
	query := `SELECT ` + pickSelectColumns + ` FROM picks
WHERE league_public_id = $1
ORDER BY member_public_id, week_index, slot`

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, leagueID); err != nil {
		return nil, fmt.Errorf("list picks by league: %w", err)
	}

	return picksFromRows(rows), nil
}

func picksFromRows(rows []pickTableModel) []pick.Pick {
	out := make([]pick.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pick.Pick{
			ID:          row.PublicID,
			LeagueID:    row.LeagueID,
			MemberID:    row.MemberID,
			Week:        row.WeekIndex,
			Slot:        pick.Slot(row.Slot),
			PlayerID:    row.PlayerID,
			SubmittedAt: row.SubmittedAt,
		})
	}
	return out
}

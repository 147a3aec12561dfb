package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/member"
)

type MemberRepository struct {
	db *sqlx.DB
}

func NewMemberRepository(db *sqlx.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

const memberSelectColumns = `id, public_id, league_public_id, display_name, avatar_url, created_at, updated_at, deleted_at`

func (r *MemberRepository) GetByID(ctx context.Context, memberID string) (member.Member, bool, error) {
	query := `SELECT ` + memberSelectColumns + ` FROM members WHERE public_id = $1 AND deleted_at IS NULL`

	var row memberTableModel
	if err := r.db.GetContext(ctx, &row, query, memberID); err != nil {
		if isNotFound(err) {
			return member.Member{}, false, nil
		}
		return member.Member{}, false, fmt.Errorf("get member: %w", err)
	}

	return memberFromRow(row), true, nil
}

func (r *MemberRepository) ListByLeague(ctx context.Context, leagueID string) ([]member.Member, error) {
	query := `SELECT ` + memberSelectColumns + ` FROM members WHERE league_public_id = $1 AND deleted_at IS NULL ORDER BY id`

	var rows []memberTableModel
	if err := r.db.SelectContext(ctx, &rows, query, leagueID); err != nil {
		return nil, fmt.Errorf("list members by league: %w", err)
	}

	out := make([]member.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, memberFromRow(row))
	}
	return out, nil
}

func (r *MemberRepository) Upsert(ctx context.Context, item member.Member) error {
	insertModel := memberInsertModel{
		PublicID:    item.ID,
		LeagueID:    item.LeagueID,
		DisplayName: item.DisplayName,
		AvatarURL:   item.AvatarURL,
	}

	query := `INSERT INTO members (public_id, league_public_id, display_name, avatar_url)
VALUES (:public_id, :league_public_id, :display_name, :avatar_url)
ON CONFLICT (public_id)
DO UPDATE SET
    league_public_id = EXCLUDED.league_public_id,
    display_name = EXCLUDED.display_name,
    avatar_url = EXCLUDED.avatar_url,
    deleted_at = NULL`

	if _, err := r.db.NamedExecContext(ctx, query, insertModel); err != nil {
		return fmt.Errorf("upsert member: %w", err)
	}
	return nil
}

func memberFromRow(row memberTableModel) member.Member {
	return member.Member{
		ID:          row.PublicID,
		LeagueID:    row.LeagueID,
		DisplayName: row.DisplayName,
		AvatarURL:   row.AvatarURL,
	}
}

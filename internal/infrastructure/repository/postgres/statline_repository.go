package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/scoring"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/stats"
)

type StatLineRepository struct {
	db *sqlx.DB
}

func NewStatLineRepository(db *sqlx.DB) *StatLineRepository {
	return &StatLineRepository{db: db}
}

const statLineSelectColumns = `id, player_public_id, week_index, pass_yards, pass_tds, rush_yards, rush_tds, rec_yards, rec_tds, interceptions, fumbles_lost, two_point_conversions, created_at, updated_at`

func (r *StatLineRepository) GetByPlayerWeek(ctx context.Context, playerID string, week int) (stats.Line, bool, error) {
	query := `SELECT ` + statLineSelectColumns + ` FROM stat_lines WHERE player_public_id = $1 AND week_index = $2`

	var row statLineTableModel
	if err := r.db.GetContext(ctx, &row, query, playerID, week); err != nil {
		if isNotFound(err) {
			return stats.Line{}, false, nil
		}
		return stats.Line{}, false, fmt.Errorf("get stat line: %w", err)
	}

	return statLineFromRow(row), true, nil
}

func (r *StatLineRepository) List(ctx context.Context) ([]stats.Line, error) {
	query := `SELECT ` + statLineSelectColumns + ` FROM stat_lines ORDER BY week_index, player_public_id`

	var rows []statLineTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list stat lines: %w", err)
	}

	out := make([]stats.Line, 0, len(rows))
	for _, row := range rows {
		out = append(out, statLineFromRow(row))
	}
	return out, nil
}

func (r *StatLineRepository) UpsertLines(ctx context.Context, lines []stats.Line) error {
	if len(lines) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin stat line upsert: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO stat_lines (player_public_id, week_index, pass_yards, pass_tds, rush_yards, rush_tds, rec_yards, rec_tds, interceptions, fumbles_lost, two_point_conversions)
VALUES (:player_public_id, :week_index, :pass_yards, :pass_tds, :rush_yards, :rush_tds, :rec_yards, :rec_tds, :interceptions, :fumbles_lost, :two_point_conversions)
ON CONFLICT (player_public_id, week_index)
DO UPDATE SET
    pass_yards = EXCLUDED.pass_yards,
    pass_tds = EXCLUDED.pass_tds,
    rush_yards = EXCLUDED.rush_yards,
    rush_tds = EXCLUDED.rush_tds,
    rec_yards = EXCLUDED.rec_yards,
    rec_tds = EXCLUDED.rec_tds,
    interceptions = EXCLUDED.interceptions,
    fumbles_lost = EXCLUDED.fumbles_lost,
    two_point_conversions = EXCLUDED.two_point_conversions,
    updated_at = now()`

	for _, l := range lines {
		insertModel := statLineInsertModel{
			PlayerID:            l.PlayerID,
			WeekIndex:           l.Week,
			PassYards:           l.Line.PassYards,
			PassTDs:             l.Line.PassTDs,
			RushYards:           l.Line.RushYards,
			RushTDs:             l.Line.RushTDs,
			RecYards:            l.Line.RecYards,
			RecTDs:              l.Line.RecTDs,
			Interceptions:       l.Line.Interceptions,
			FumblesLost:         l.Line.FumblesLost,
			TwoPointConversions: l.Line.TwoPointConversions,
		}
		if _, err := tx.NamedExecContext(ctx, query, insertModel); err != nil {
			return fmt.Errorf("upsert stat line %s week %d: %w", l.PlayerID, l.Week, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit stat line upsert: %w", err)
	}
	return nil
}

func statLineFromRow(row statLineTableModel) stats.Line {
	return stats.Line{
		PlayerID: row.PlayerID,
		Week:     row.WeekIndex,
		Line: scoring.StatLine{
			PassYards:           row.PassYards,
			PassTDs:             row.PassTDs,
			RushYards:           row.RushYards,
			RushTDs:             row.RushTDs,
			RecYards:            row.RecYards,
			RecTDs:              row.RecTDs,
			Interceptions:       row.Interceptions,
			FumblesLost:         row.FumblesLost,
			TwoPointConversions: row.TwoPointConversions,
		},
	}
}

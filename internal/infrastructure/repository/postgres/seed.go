package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirbenjaminG88/playoff-picks/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo league into an empty database. A database
// with any member rows is left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM members WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count members for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, m := range memory.SeedMembers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO members (public_id, league_public_id, display_name, avatar_url)
VALUES (:public_id, :league_public_id, :display_name, :avatar_url)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":        m.ID,
			"league_public_id": m.LeagueID,
			"display_name":     m.DisplayName,
			"avatar_url":       m.AvatarURL,
		})
		if err != nil {
			return fmt.Errorf("bind seed member %s query: %w", m.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed member %s: %w", m.ID, err)
		}
	}

	for _, w := range memory.SeedWeeks() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO weeks (week_index, open_at, deadline_at)
VALUES (:week_index, :open_at, :deadline_at)
ON CONFLICT (week_index) DO NOTHING`, map[string]any{
			"week_index":  w.Index,
			"open_at":     w.OpenAt,
			"deadline_at": w.DeadlineAt,
		})
		if err != nil {
			return fmt.Errorf("bind seed week %d query: %w", w.Index, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed week %d: %w", w.Index, err)
		}
	}

	snapshot := memory.SeedProjections()
	for _, p := range snapshot.Players {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO projections (player_public_id, player_name, team_public_id, position, projected_points, is_eliminated, taken_at)
VALUES (:player_public_id, :player_name, :team_public_id, :position, :projected_points, :is_eliminated, :taken_at)
ON CONFLICT (player_public_id) DO NOTHING`, map[string]any{
			"player_public_id": p.PlayerID,
			"player_name":      p.Name,
			"team_public_id":   p.TeamID,
			"position":         string(p.Position),
			"projected_points": p.ProjectedPoints,
			"is_eliminated":    p.IsEliminated,
			"taken_at":         snapshot.TakenAt,
		})
		if err != nil {
			return fmt.Errorf("bind seed projection %s query: %w", p.PlayerID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed projection %s: %w", p.PlayerID, err)
		}
	}

	for _, l := range memory.SeedStatLines() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO stat_lines (player_public_id, week_index, pass_yards, pass_tds, rush_yards, rush_tds, rec_yards, rec_tds, interceptions, fumbles_lost, two_point_conversions)
VALUES (:player_public_id, :week_index, :pass_yards, :pass_tds, :rush_yards, :rush_tds, :rec_yards, :rec_tds, :interceptions, :fumbles_lost, :two_point_conversions)
ON CONFLICT (player_public_id, week_index) DO NOTHING`, map[string]any{
			"player_public_id":      l.PlayerID,
			"week_index":            l.Week,
			"pass_yards":            l.Line.PassYards,
			"pass_tds":              l.Line.PassTDs,
			"rush_yards":            l.Line.RushYards,
			"rush_tds":              l.Line.RushTDs,
			"rec_yards":             l.Line.RecYards,
			"rec_tds":               l.Line.RecTDs,
			"interceptions":         l.Line.Interceptions,
			"fumbles_lost":          l.Line.FumblesLost,
			"two_point_conversions": l.Line.TwoPointConversions,
		})
		if err != nil {
			return fmt.Errorf("bind seed stat line %s query: %w", l.Key(), err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed stat line %s: %w", l.Key(), err)
		}
	}

	table := memory.SeedScoringTable()
	sqlQuery, args, err := sqlx.Named(`
INSERT INTO scoring_tables (public_id, pass_yards_per_point, pass_td_points, rush_yards_per_point, rush_td_points, rec_yards_per_point, rec_td_points, interception_points, fumble_lost_points, two_point_conv_points, is_active)
VALUES (:public_id, :pass_yards_per_point, :pass_td_points, :rush_yards_per_point, :rush_td_points, :rec_yards_per_point, :rec_td_points, :interception_points, :fumble_lost_points, :two_point_conv_points, TRUE)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
		"public_id":             table.ID,
		"pass_yards_per_point":  table.PassYardsPerPoint,
		"pass_td_points":        table.PassTDPoints,
		"rush_yards_per_point":  table.RushYardsPerPoint,
		"rush_td_points":        table.RushTDPoints,
		"rec_yards_per_point":   table.RecYardsPerPoint,
		"rec_td_points":         table.RecTDPoints,
		"interception_points":   table.InterceptionPoints,
		"fumble_lost_points":    table.FumbleLostPoints,
		"two_point_conv_points": table.TwoPointConvPoints,
	})
	if err != nil {
		return fmt.Errorf("bind seed scoring table query: %w", err)
	}
	sqlQuery = tx.Rebind(sqlQuery)
	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("seed scoring table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

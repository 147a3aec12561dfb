package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/scoring"
)

type ScoringRepository struct {
	db *sqlx.DB
}

func NewScoringRepository(db *sqlx.DB) *ScoringRepository {
	return &ScoringRepository{db: db}
}

func (r *ScoringRepository) ActiveTable(ctx context.Context) (scoring.Table, bool, error) {
	query := `SELECT id, public_id, pass_yards_per_point, pass_td_points, rush_yards_per_point, rush_td_points, rec_yards_per_point, rec_td_points, interception_points, fumble_lost_points, two_point_conv_points, is_active, created_at, updated_at
FROM scoring_tables
WHERE is_active
ORDER BY updated_at DESC
LIMIT 1`

	var row scoringTableModel
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		if isNotFound(err) {
			return scoring.Table{}, false, nil
		}
		return scoring.Table{}, false, fmt.Errorf("get active scoring table: %w", err)
	}

	return scoring.Table{
		ID:                 row.PublicID,
		PassYardsPerPoint:  row.PassYardsPerPoint,
		PassTDPoints:       row.PassTDPoints,
		RushYardsPerPoint:  row.RushYardsPerPoint,
		RushTDPoints:       row.RushTDPoints,
		RecYardsPerPoint:   row.RecYardsPerPoint,
		RecTDPoints:        row.RecTDPoints,
		InterceptionPoints: row.InterceptionPoints,
		FumbleLostPoints:   row.FumbleLostPoints,
		TwoPointConvPoints: row.TwoPointConvPoints,
	}, true, nil
}

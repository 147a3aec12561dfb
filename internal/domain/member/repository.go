package member

import "context"

// Repository exposes league membership reads.
type Repository interface {
	GetByID(ctx context.Context, memberID string) (Member, bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Member, error)
}

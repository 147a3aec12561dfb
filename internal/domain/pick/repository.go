package pick

import "context"

// Repository exposes the append-only pick ledger. There is no update or
// delete operation in the contract.
type Repository interface {
	SubmitWeek(ctx context.Context, picks []Pick) error
	ListByMember(ctx context.Context, leagueID, memberID string) ([]Pick, error)
	ListByMemberWeek(ctx context.Context, leagueID, memberID string, week int) ([]Pick, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Pick, error)
}

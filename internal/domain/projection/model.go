package projection

import (
	"time"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/player"
)

// Projection is one player's estimated future fantasy-point value, used
// only for simulation, never for realized scoring.
type Projection struct {
	PlayerID        string
	Name            string
	TeamID          string
	Position        player.Position
	ProjectedPoints float64
	IsEliminated    bool
}

// Snapshot is a read-consistent view of the whole pool. The simulator reads
// one snapshot before its trial loop and must never observe values changing
// mid-run; refreshes swap the snapshot wholesale.
type Snapshot struct {
	TakenAt time.Time
	Players []Projection
}

// EliminatedTeams lists team ids with the elimination flag set, ordered by
// first appearance in the pool.
func (s Snapshot) EliminatedTeams() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range s.Players {
		if !p.IsEliminated {
			continue
		}
		if _, ok := seen[p.TeamID]; ok {
			continue
		}
		seen[p.TeamID] = struct{}{}
		out = append(out, p.TeamID)
	}

	return out
}

// PositionByPlayer indexes the snapshot for slot validation.
func (s Snapshot) PositionByPlayer() map[string]player.Position {
	out := make(map[string]player.Position, len(s.Players))
	for _, p := range s.Players {
		out[p.PlayerID] = p.Position
	}

	return out
}

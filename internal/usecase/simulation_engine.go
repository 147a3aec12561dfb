package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/pick"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/player"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/projection"
	"github.com/sirbenjaminG88/playoff-picks/internal/platform/logging"
)

const (
	defaultTrials         = 10000
	defaultWorkers        = 4
	defaultVarianceFactor = 0.35

	// Weyl increment; spreads shard seeds across the 64-bit space so
	// adjacent shards never produce overlapping streams.
	shardSeedStride uint64 = 0x9E3779B97F4A7C15
)

type EngineConfig struct {
	Trials         int
	Workers        int
	VarianceFactor float64
	// Seed fixes the random stream. Zero means derive from the clock.
	Seed int64
}

func (c EngineConfig) normalized() EngineConfig {
	if c.Trials <= 0 {
		c.Trials = defaultTrials
	}
	if c.Workers <= 0 {
		c.Workers = defaultWorkers
	}
	if c.VarianceFactor <= 0 {
		c.VarianceFactor = defaultVarianceFactor
	}
	return c
}

// MemberState is one member entering the simulation: realized points so far
// and the players they can no longer pick.
type MemberState struct {
	MemberID      string
	CurrentPoints float64
	UsedPlayers   map[string]struct{}
}

type SimulationResult struct {
	Trials        int
	Wins          map[string]int
	Probabilities map[string]float64
	AnomalyCount  int
}

type simPlayer struct {
	id   string
	mean float64
	sd   float64
}

// simPools holds per-slot candidate lists sorted by descending projection.
// Index values address the shared players slice; per-trial used sets are
// []bool over the same indexing.
type simPools struct {
	players []simPlayer
	byID    map[string]int
	qb      []int
	rb      []int
	flex    []int
}

type SimulationEngine struct {
	cfg    EngineConfig
	logger *logging.Logger
}

func NewSimulationEngine(cfg EngineConfig, logger *logging.Logger) *SimulationEngine {
	if logger == nil {
		logger = logging.Default()
	}
	return &SimulationEngine{cfg: cfg.normalized(), logger: logger}
}

// Run estimates each member's win probability over the remaining weeks.
// Every trial plays out weeksRemaining rounds: each member greedily fills
// QB, RB and FLEX from the highest-projected eligible players, scores are
// drawn from a normal around each projection, and the highest season total
// wins the trial. Ties split by a uniform draw. The result is deterministic
// for a fixed seed and worker count.
func (e *SimulationEngine) Run(
	ctx context.Context,
	snapshot projection.Snapshot,
	members []MemberState,
	weeksRemaining int,
) (SimulationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SimulationEngine.Run")
	defer span.End()

	if len(members) == 0 {
		return SimulationResult{}, fmt.Errorf("%w: at least one member is required", ErrInvalidInput)
	}
	if weeksRemaining < 0 {
		return SimulationResult{}, fmt.Errorf("%w: weeks remaining cannot be negative", ErrInvalidInput)
	}

	pools, anomalies := e.buildPools(ctx, snapshot)

	seed := e.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Degenerate season: nothing left to simulate, the leader wins with
	// certainty and exact ties split evenly.
	if weeksRemaining == 0 {
		return settledResult(members, e.cfg.Trials, anomalies), nil
	}

	shards := e.cfg.Workers
	if shards > e.cfg.Trials {
		shards = e.cfg.Trials
	}

	perShard := e.cfg.Trials / shards
	remainder := e.cfg.Trials % shards

	type shardResult struct {
		idx  int
		wins []int64
		err  error
	}

	results := make(chan shardResult, shards)

	pool, err := ants.NewPool(shards)
	if err != nil {
		return SimulationResult{}, fmt.Errorf("create simulation worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for shardIdx := 0; shardIdx < shards; shardIdx++ {
		shardIdx := shardIdx
		trials := perShard
		if shardIdx < remainder {
			trials++
		}

		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			rng := rand.New(rand.NewSource(int64(uint64(seed) + uint64(shardIdx)*shardSeedStride)))
			wins, shardErr := e.runShard(ctx, rng, pools, members, weeksRemaining, trials)
			results <- shardResult{idx: shardIdx, wins: wins, err: shardErr}
		}); err != nil {
			workers.Done()
			return SimulationResult{}, fmt.Errorf("submit simulation shard: %w", err)
		}
	}

	workers.Wait()
	close(results)

	merged := make([]int64, len(members))
	for row := range results {
		if row.err != nil {
			return SimulationResult{}, fmt.Errorf("simulation shard %d: %w", row.idx, row.err)
		}
		for i, w := range row.wins {
			merged[i] += w
		}
	}

	result := SimulationResult{
		Trials:        e.cfg.Trials,
		Wins:          make(map[string]int, len(members)),
		Probabilities: make(map[string]float64, len(members)),
		AnomalyCount:  anomalies,
	}
	for i, m := range members {
		result.Wins[m.MemberID] = int(merged[i])
		result.Probabilities[m.MemberID] = float64(merged[i]) / float64(e.cfg.Trials)
	}

	return result, nil
}

func (e *SimulationEngine) runShard(
	ctx context.Context,
	rng *rand.Rand,
	pools simPools,
	members []MemberState,
	weeksRemaining int,
	trials int,
) ([]int64, error) {
	wins := make([]int64, len(members))

	baseUsed := make([][]bool, len(members))
	for i, m := range members {
		used := make([]bool, len(pools.players))
		for playerID := range m.UsedPlayers {
			if idx, ok := pools.byID[playerID]; ok {
				used[idx] = true
			}
		}
		baseUsed[i] = used
	}

	trialUsed := make([]bool, len(pools.players))
	totals := make([]float64, len(members))
	leaders := make([]int, 0, len(members))

	for trial := 0; trial < trials; trial++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for i := range members {
			copy(trialUsed, baseUsed[i])
			total := members[i].CurrentPoints
			for week := 0; week < weeksRemaining; week++ {
				total += e.drawSlot(rng, pools.qb, pools.players, trialUsed)
				total += e.drawSlot(rng, pools.rb, pools.players, trialUsed)
				total += e.drawSlot(rng, pools.flex, pools.players, trialUsed)
			}
			totals[i] = total
		}

		best := math.Inf(-1)
		leaders = leaders[:0]
		for i, total := range totals {
			switch {
			case total > best:
				best = total
				leaders = leaders[:0]
				leaders = append(leaders, i)
			case total == best:
				leaders = append(leaders, i)
			}
		}

		winner := leaders[0]
		if len(leaders) > 1 {
			winner = leaders[rng.Intn(len(leaders))]
		}
		wins[winner]++
	}

	return wins, nil
}

// drawSlot claims the highest-projected eligible player in the slot pool
// and samples their score. An exhausted pool scores zero for the slot.
func (e *SimulationEngine) drawSlot(rng *rand.Rand, slotPool []int, players []simPlayer, used []bool) float64 {
	for _, idx := range slotPool {
		if used[idx] {
			continue
		}
		used[idx] = true

		p := players[idx]
		score := rng.NormFloat64()*p.sd + p.mean
		if score < 0 {
			score = 0
		}
		return score
	}

	return 0
}

func (e *SimulationEngine) buildPools(ctx context.Context, snapshot projection.Snapshot) (simPools, int) {
	pools := simPools{
		players: make([]simPlayer, 0, len(snapshot.Players)),
		byID:    make(map[string]int, len(snapshot.Players)),
	}

	anomalies := 0
	for _, p := range snapshot.Players {
		if p.IsEliminated {
			continue
		}

		mean := p.ProjectedPoints
		if math.IsNaN(mean) || math.IsInf(mean, 0) || mean < 0 {
			anomalies++
			e.logger.WarnContext(ctx, "clamped anomalous projection",
				"player_id", p.PlayerID,
				"projected_points", p.ProjectedPoints,
			)
			mean = 0
		}

		idx := len(pools.players)
		pools.players = append(pools.players, simPlayer{
			id:   p.PlayerID,
			mean: mean,
			sd:   mean * e.cfg.VarianceFactor,
		})
		pools.byID[p.PlayerID] = idx

		switch p.Position {
		case player.PositionQuarterback:
			pools.qb = append(pools.qb, idx)
		case player.PositionRunningBack:
			pools.rb = append(pools.rb, idx)
		}
		if pick.SlotFlex.Accepts(p.Position) {
			pools.flex = append(pools.flex, idx)
		}
	}

	byProjectionDesc := func(indices []int) {
		sort.SliceStable(indices, func(a, b int) bool {
			return pools.players[indices[a]].mean > pools.players[indices[b]].mean
		})
	}
	byProjectionDesc(pools.qb)
	byProjectionDesc(pools.rb)
	byProjectionDesc(pools.flex)

	return pools, anomalies
}

// settledResult resolves a finished season without sampling: the points
// leader takes every trial, exact co-leaders split them.
func settledResult(members []MemberState, trials, anomalies int) SimulationResult {
	best := math.Inf(-1)
	leaders := make([]int, 0, len(members))
	for i, m := range members {
		switch {
		case m.CurrentPoints > best:
			best = m.CurrentPoints
			leaders = leaders[:0]
			leaders = append(leaders, i)
		case m.CurrentPoints == best:
			leaders = append(leaders, i)
		}
	}

	result := SimulationResult{
		Trials:        trials,
		Wins:          make(map[string]int, len(members)),
		Probabilities: make(map[string]float64, len(members)),
		AnomalyCount:  anomalies,
	}
	share := trials / len(leaders)
	for _, m := range members {
		result.Wins[m.MemberID] = 0
		result.Probabilities[m.MemberID] = 0
	}
	for _, idx := range leaders {
		result.Wins[members[idx].MemberID] = share
		result.Probabilities[members[idx].MemberID] = 1 / float64(len(leaders))
	}

	return result
}

package memory

import (
	"time"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/member"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/player"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/projection"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/schedule"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/scoring"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/stats"
)

const LeagueIDDemoPlayoffs = "nfl-playoffs-2027"

func SeedMembers() []member.Member {
	return []member.Member{
		{ID: "mem-alice", LeagueID: LeagueIDDemoPlayoffs, DisplayName: "Alice", AvatarURL: "https://cdn.example.com/avatars/alice.png"},
		{ID: "mem-ben", LeagueID: LeagueIDDemoPlayoffs, DisplayName: "Ben", AvatarURL: "https://cdn.example.com/avatars/ben.png"},
		{ID: "mem-carla", LeagueID: LeagueIDDemoPlayoffs, DisplayName: "Carla", AvatarURL: "https://cdn.example.com/avatars/carla.png"},
		{ID: "mem-dmitri", LeagueID: LeagueIDDemoPlayoffs, DisplayName: "Dmitri", AvatarURL: "https://cdn.example.com/avatars/dmitri.png"},
	}
}

func SeedWeeks() []schedule.Week {
	return []schedule.Week{
		{Index: 1, OpenAt: time.Date(2027, 1, 5, 12, 0, 0, 0, time.UTC), DeadlineAt: time.Date(2027, 1, 9, 18, 0, 0, 0, time.UTC)},
		{Index: 2, OpenAt: time.Date(2027, 1, 11, 12, 0, 0, 0, time.UTC), DeadlineAt: time.Date(2027, 1, 16, 18, 0, 0, 0, time.UTC)},
		{Index: 3, OpenAt: time.Date(2027, 1, 18, 12, 0, 0, 0, time.UTC), DeadlineAt: time.Date(2027, 1, 23, 20, 0, 0, 0, time.UTC)},
		{Index: 4, OpenAt: time.Date(2027, 1, 25, 12, 0, 0, 0, time.UTC), DeadlineAt: time.Date(2027, 2, 6, 23, 0, 0, 0, time.UTC)},
	}
}

func SeedProjections() projection.Snapshot {
	return projection.Snapshot{
		TakenAt: time.Date(2027, 1, 10, 6, 0, 0, 0, time.UTC),
		Players: []projection.Projection{
			{PlayerID: "kc-qb-01", Name: "Marcus Hale", TeamID: "KC", Position: player.PositionQuarterback, ProjectedPoints: 21.4},
			{PlayerID: "kc-rb-01", Name: "Devon Carter", TeamID: "KC", Position: player.PositionRunningBack, ProjectedPoints: 13.8},
			{PlayerID: "kc-wr-01", Name: "Tre Watkins", TeamID: "KC", Position: player.PositionWideReceiver, ProjectedPoints: 15.2},
			{PlayerID: "kc-te-01", Name: "Joel Mercer", TeamID: "KC", Position: player.PositionTightEnd, ProjectedPoints: 12.6},
			{PlayerID: "buf-qb-01", Name: "Cole Brennan", TeamID: "BUF", Position: player.PositionQuarterback, ProjectedPoints: 22.1},
			{PlayerID: "buf-rb-01", Name: "Isaiah Monk", TeamID: "BUF", Position: player.PositionRunningBack, ProjectedPoints: 14.5},
			{PlayerID: "buf-wr-01", Name: "Rashad Kimble", TeamID: "BUF", Position: player.PositionWideReceiver, ProjectedPoints: 16.3},
			{PlayerID: "buf-te-01", Name: "Grant Ostrowski", TeamID: "BUF", Position: player.PositionTightEnd, ProjectedPoints: 9.8},
			{PlayerID: "bal-qb-01", Name: "Jalen Pryor", TeamID: "BAL", Position: player.PositionQuarterback, ProjectedPoints: 23.0},
			{PlayerID: "bal-rb-01", Name: "Omar Whitfield", TeamID: "BAL", Position: player.PositionRunningBack, ProjectedPoints: 12.9},
			{PlayerID: "bal-wr-01", Name: "Caleb Dunmore", TeamID: "BAL", Position: player.PositionWideReceiver, ProjectedPoints: 13.7},
			{PlayerID: "bal-te-01", Name: "Austin Rourke", TeamID: "BAL", Position: player.PositionTightEnd, ProjectedPoints: 11.4},
			{PlayerID: "sf-qb-01", Name: "Dante Reyes", TeamID: "SF", Position: player.PositionQuarterback, ProjectedPoints: 19.6},
			{PlayerID: "sf-rb-01", Name: "Malik Sessoms", TeamID: "SF", Position: player.PositionRunningBack, ProjectedPoints: 16.1},
			{PlayerID: "sf-wr-01", Name: "Elias Thorne", TeamID: "SF", Position: player.PositionWideReceiver, ProjectedPoints: 14.9},
			{PlayerID: "sf-te-01", Name: "Bruno Castellanos", TeamID: "SF", Position: player.PositionTightEnd, ProjectedPoints: 13.3},
			{PlayerID: "det-qb-01", Name: "Wyatt Lund", TeamID: "DET", Position: player.PositionQuarterback, ProjectedPoints: 20.8},
			{PlayerID: "det-rb-01", Name: "Andre Bellamy", TeamID: "DET", Position: player.PositionRunningBack, ProjectedPoints: 15.4},
			{PlayerID: "det-wr-01", Name: "Quincy Sharp", TeamID: "DET", Position: player.PositionWideReceiver, ProjectedPoints: 17.0},
			{PlayerID: "det-te-01", Name: "Noah Pittman", TeamID: "DET", Position: player.PositionTightEnd, ProjectedPoints: 10.7},
			{PlayerID: "phi-qb-01", Name: "Victor Ashford", TeamID: "PHI", Position: player.PositionQuarterback, ProjectedPoints: 21.9},
			{PlayerID: "phi-rb-01", Name: "Silas Crowder", TeamID: "PHI", Position: player.PositionRunningBack, ProjectedPoints: 17.2},
			{PlayerID: "phi-wr-01", Name: "Donte Lacey", TeamID: "PHI", Position: player.PositionWideReceiver, ProjectedPoints: 15.8},
			{PlayerID: "phi-te-01", Name: "Ezra Holliday", TeamID: "PHI", Position: player.PositionTightEnd, ProjectedPoints: 12.1},
			{PlayerID: "hou-qb-01", Name: "Reggie Calloway", TeamID: "HOU", Position: player.PositionQuarterback, ProjectedPoints: 18.3, IsEliminated: true},
			{PlayerID: "hou-rb-01", Name: "Terrell Boone", TeamID: "HOU", Position: player.PositionRunningBack, ProjectedPoints: 11.6, IsEliminated: true},
			{PlayerID: "gb-wr-01", Name: "Felix Marchand", TeamID: "GB", Position: player.PositionWideReceiver, ProjectedPoints: 14.1, IsEliminated: true},
			{PlayerID: "gb-te-01", Name: "Henrik Olsson", TeamID: "GB", Position: player.PositionTightEnd, ProjectedPoints: 9.2, IsEliminated: true},
		},
	}
}

func SeedStatLines() []stats.Line {
	return []stats.Line{
		{PlayerID: "kc-qb-01", Week: 1, Line: scoring.StatLine{PassYards: 278, PassTDs: 2, RushYards: 14, Interceptions: 1}},
		{PlayerID: "buf-qb-01", Week: 1, Line: scoring.StatLine{PassYards: 312, PassTDs: 3, RushYards: 22}},
		{PlayerID: "bal-qb-01", Week: 1, Line: scoring.StatLine{PassYards: 245, PassTDs: 1, RushYards: 64, RushTDs: 1}},
		{PlayerID: "sf-rb-01", Week: 1, Line: scoring.StatLine{RushYards: 118, RushTDs: 1, RecYards: 34}},
		{PlayerID: "phi-rb-01", Week: 1, Line: scoring.StatLine{RushYards: 96, RushTDs: 2, RecYards: 12, FumblesLost: 1}},
		{PlayerID: "det-rb-01", Week: 1, Line: scoring.StatLine{RushYards: 74, RecYards: 41, RecTDs: 1}},
		{PlayerID: "buf-wr-01", Week: 1, Line: scoring.StatLine{RecYards: 131, RecTDs: 1, TwoPointConversions: 1}},
		{PlayerID: "det-wr-01", Week: 1, Line: scoring.StatLine{RecYards: 104, RecTDs: 2}},
		{PlayerID: "kc-te-01", Week: 1, Line: scoring.StatLine{RecYards: 67, RecTDs: 1}},
		{PlayerID: "sf-te-01", Week: 1, Line: scoring.StatLine{RecYards: 52}},
		{PlayerID: "hou-qb-01", Week: 1, Line: scoring.StatLine{PassYards: 201, PassTDs: 1, Interceptions: 2}},
		{PlayerID: "gb-wr-01", Week: 1, Line: scoring.StatLine{RecYards: 88, RecTDs: 1}},
	}
}

func SeedScoringTable() scoring.Table {
	return scoring.DefaultTable()
}

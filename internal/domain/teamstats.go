package domain

// TeamStats is the per-team aggregate within one group of a single
// championship year. It is derived from the game list on every call and
// never persisted.
type TeamStats struct {
	Name         string
	Group        string
	GamesPlayed  int
	Wins         int
	OTWins       int
	SOWins       int
	Losses       int
	OTLosses     int
	SOLosses     int
	GoalsFor     int
	GoalsAgainst int
	Points       int
	RankInGroup  int
}

func (ts TeamStats) GoalDifference() int {
	return ts.GoalsFor - ts.GoalsAgainst
}

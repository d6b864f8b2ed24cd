// Package standings computes preliminary round group standings with the
// IIHF point system and head-to-head tiebreaking.
package standings

import (
	"sort"

	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

// DefaultMaxPrelimGames is the number of preliminary games every team
// plays in the regular 16-team world championship format.
const DefaultMaxPrelimGames = 7

// Calculate computes standings from the given games. Only concluded
// preliminary games between two identified teams count, everything else
// is ignored. Ranks within each group are assigned 1..N after sorting
// by points, goal difference and goals for, with head-to-head results
// breaking point ties.
func Calculate(games []domain.Game, maxPrelimGames int) map[string]domain.TeamStats {
	table := make(map[string]*domain.TeamStats)
	counted := make([]domain.Game, 0, len(games))
	for _, g := range games {
		if !Qualifies(g) {
			continue
		}
		counted = append(counted, g)
		apply(table, g)
	}

	groups := make(map[string][]*domain.TeamStats)
	for _, ts := range table {
		groups[ts.Group] = append(groups[ts.Group], ts)
	}
	for name, list := range groups {
		sort.SliceStable(list, func(i, j int) bool {
			return lessOverall(list[j], list[i])
		})
		list = applyHeadToHead(list, counted, maxPrelimGames)
		for i, ts := range list {
			ts.RankInGroup = i + 1
		}
		groups[name] = list
	}

	out := make(map[string]domain.TeamStats, len(table))
	for code, ts := range table {
		out[code] = *ts
	}
	return out
}

// Grouped arranges calculated standings by group, each list sorted by
// rank. The input is what Calculate returns.
func Grouped(stats map[string]domain.TeamStats) map[string][]domain.TeamStats {
	groups := make(map[string][]domain.TeamStats)
	for _, ts := range stats {
		groups[ts.Group] = append(groups[ts.Group], ts)
	}
	for _, list := range groups {
		sort.Slice(list, func(i, j int) bool {
			return list[i].RankInGroup < list[j].RankInGroup
		})
	}
	return groups
}

// Qualifies reports whether a game counts towards preliminary standings:
// a preliminary round game between two identified teams with a result.
func Qualifies(g domain.Game) bool {
	return g.IsPreliminary() &&
		domain.IsFinalCode(g.Team1Code) &&
		domain.IsFinalCode(g.Team2Code) &&
		g.HasResult()
}

func apply(table map[string]*domain.TeamStats, g domain.Game) {
	t1 := teamEntry(table, g.Team1Code, g.Group)
	t2 := teamEntry(table, g.Team2Code, g.Group)

	t1.GamesPlayed++
	t2.GamesPlayed++
	t1.GoalsFor += *g.Team1Score
	t1.GoalsAgainst += *g.Team2Score
	t2.GoalsFor += *g.Team2Score
	t2.GoalsAgainst += *g.Team1Score

	winner, loser := t1, t2
	if *g.Team2Score > *g.Team1Score {
		winner, loser = t2, t1
	}
	switch g.Result {
	case domain.ResultRegulation:
		winner.Points += 3
		winner.Wins++
		loser.Losses++
	case domain.ResultOvertime:
		winner.Points += 2
		winner.OTWins++
		loser.Points++
		loser.OTLosses++
	case domain.ResultShootout:
		winner.Points += 2
		winner.SOWins++
		loser.Points++
		loser.SOLosses++
	}
}

func teamEntry(table map[string]*domain.TeamStats, code, group string) *domain.TeamStats {
	ts, ok := table[code]
	if !ok {
		ts = &domain.TeamStats{Name: code, Group: group}
		table[code] = ts
	}
	if ts.Group == "" && group != "" {
		ts.Group = group
	}
	return ts
}

func lessOverall(a, b *domain.TeamStats) bool {
	if a.Points != b.Points {
		return a.Points < b.Points
	}
	if a.GoalDifference() != b.GoalDifference() {
		return a.GoalDifference() < b.GoalDifference()
	}
	return a.GoalsFor < b.GoalsFor
}

package standings

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

// miniRecord is a team's record restricted to the games among a tied
// cluster, with the 3/2/1/0 IIHF point scheme.
type miniRecord struct {
	team   *domain.TeamStats
	points int
	gf     int
	ga     int
}

// applyHeadToHead reorders a group list (already sorted by points, goal
// difference, goals for) so that clusters of teams tied on points are
// ordered by their direct results. The IIHF rule uses head-to-head for
// a cluster of three or more only once the whole cluster has played all
// preliminary games, because an unplayed direct game could still change
// the mini table.
func applyHeadToHead(list []*domain.TeamStats, games []domain.Game, maxPrelimGames int) []*domain.TeamStats {
	out := make([]*domain.TeamStats, 0, len(list))
	for i := 0; i < len(list); {
		j := i + 1
		for j < len(list) && list[j].Points == list[i].Points {
			j++
		}
		cluster := list[i:j]
		switch {
		case len(cluster) == 2:
			out = append(out, sortTwoTied(cluster, games)...)
		case len(cluster) > 2:
			out = append(out, sortMultiTied(cluster, games, maxPrelimGames)...)
		default:
			out = append(out, cluster...)
		}
		i = j
	}
	return out
}

// sortTwoTied orders two tied teams by the game between them if it has
// been played, falling back to overall goal difference and goals for.
func sortTwoTied(cluster []*domain.TeamStats, games []domain.Game) []*domain.TeamStats {
	records := directRecords(cluster, games)
	if records == nil {
		return sortByOverall(cluster)
	}
	sortRecords(records)
	return teamsOf(records)
}

// sortMultiTied orders three or more tied teams by a mini round-robin
// table of the games among them, but only when every tied team has
// completed its preliminary schedule. Otherwise overall goal difference
// and goals for decide.
func sortMultiTied(cluster []*domain.TeamStats, games []domain.Game, maxPrelimGames int) []*domain.TeamStats {
	for _, ts := range cluster {
		if ts.GamesPlayed < maxPrelimGames {
			return sortByOverall(cluster)
		}
	}
	records := directRecords(cluster, games)
	if records == nil {
		return sortByOverall(cluster)
	}
	sortRecords(records)
	return teamsOf(records)
}

// directRecords builds the mini table of the games played among the
// cluster. Returns nil when no direct game has been played yet.
func directRecords(cluster []*domain.TeamStats, games []domain.Game) []*miniRecord {
	names := mapset.NewSet[string]()
	records := make(map[string]*miniRecord, len(cluster))
	for _, ts := range cluster {
		names.Add(ts.Name)
		records[ts.Name] = &miniRecord{team: ts}
	}

	played := false
	for _, g := range games {
		if !names.Contains(g.Team1Code) || !names.Contains(g.Team2Code) {
			continue
		}
		played = true
		r1 := records[g.Team1Code]
		r2 := records[g.Team2Code]
		r1.gf += *g.Team1Score
		r1.ga += *g.Team2Score
		r2.gf += *g.Team2Score
		r2.ga += *g.Team1Score

		win, lose := r1, r2
		if *g.Team2Score > *g.Team1Score {
			win, lose = r2, r1
		}
		switch g.Result {
		case domain.ResultRegulation:
			win.points += 3
		case domain.ResultOvertime, domain.ResultShootout:
			win.points += 2
			lose.points++
		}
	}
	if !played {
		return nil
	}

	list := make([]*miniRecord, 0, len(cluster))
	for _, ts := range cluster {
		list = append(list, records[ts.Name])
	}
	return list
}

func sortRecords(records []*miniRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.points != b.points {
			return a.points > b.points
		}
		if a.gf-a.ga != b.gf-b.ga {
			return a.gf-a.ga > b.gf-b.ga
		}
		if a.gf != b.gf {
			return a.gf > b.gf
		}
		if a.team.GoalDifference() != b.team.GoalDifference() {
			return a.team.GoalDifference() > b.team.GoalDifference()
		}
		return a.team.GoalsFor > b.team.GoalsFor
	})
}

func teamsOf(records []*miniRecord) []*domain.TeamStats {
	teams := make([]*domain.TeamStats, len(records))
	for i, r := range records {
		teams[i] = r.team
	}
	return teams
}

func sortByOverall(cluster []*domain.TeamStats) []*domain.TeamStats {
	sorted := make([]*domain.TeamStats, len(cluster))
	copy(sorted, cluster)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		return a.GoalsFor > b.GoalsFor
	})
	return sorted
}

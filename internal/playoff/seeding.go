package playoff

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"

	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

// PairingPolicy decides the semifinal pairings once the four reseeded
// quarterfinal winners are known. seeds holds the winners ordered best
// to worst by their preliminary record.
type PairingPolicy interface {
	Pair(seeds [4]string, hosts []string) (sf1, sf2 [2]string)
}

// HostPairing is the standard rule: best plays worst (R1 v R4), the two
// middle seeds meet (R2 v R3), and the pairings are swapped if needed so
// that the highest-priority host team plays in semifinal 1.
type HostPairing struct{}

func (HostPairing) Pair(seeds [4]string, hosts []string) ([2]string, [2]string) {
	matchup1 := [2]string{seeds[0], seeds[3]}
	matchup2 := [2]string{seeds[1], seeds[2]}
	for _, host := range hosts {
		for _, seed := range seeds {
			if seed != host {
				continue
			}
			if host == matchup1[0] || host == matchup1[1] {
				return matchup1, matchup2
			}
			return matchup2, matchup1
		}
	}
	return matchup1, matchup2
}

// reseedSemifinals re-derives the semifinal pairings once all four
// quarterfinal winners are known: winners are ranked by their
// preliminary record, custom seed1..seed4 overrides are applied when
// they name actual quarterfinal winners, and the pairing policy places
// them into the two semifinal slots. The map entries behind the
// semifinal games' placeholder codes and the Q1..Q4/seed1..seed4 slots
// are updated accordingly.
func reseedSemifinals(
	teamMap map[string]string,
	groups map[string][]domain.TeamStats,
	bracket Bracket,
	overrides map[string]string,
	pairing PairingPolicy,
	resolver *Resolver,
	byNumber map[int]domain.Game,
	log *logrus.Entry,
) {
	if len(bracket.QuarterfinalGames) != 4 || len(bracket.SemifinalGames) != 2 {
		fallbackQuarterfinalSlots(teamMap, bracket, resolver)
		return
	}

	statsByName := make(map[string]domain.TeamStats)
	for _, list := range groups {
		for _, ts := range list {
			statsByName[ts.Name] = ts
		}
	}

	winners := make([]domain.TeamStats, 0, 4)
	for _, n := range bracket.QuarterfinalGames {
		code := resolver.Resolve(outcomeCode(OutcomeWin, n))
		ts, ok := statsByName[code]
		if !domain.IsFinalCode(code) || !ok {
			fallbackQuarterfinalSlots(teamMap, bracket, resolver)
			return
		}
		winners = append(winners, ts)
	}

	sort.SliceStable(winners, func(i, j int) bool {
		a, b := winners[i], winners[j]
		if a.RankInGroup != b.RankInGroup {
			return a.RankInGroup < b.RankInGroup
		}
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		return a.GoalsFor > b.GoalsFor
	})

	var seeds [4]string
	for i, ts := range winners {
		seeds[i] = ts.Name
	}
	seeds = applySeedOverrides(seeds, overrides, log)

	sf1, sf2 := pairing.Pair(seeds, bracket.Hosts)

	sfGame1, ok1 := byNumber[bracket.SemifinalGames[0]]
	sfGame2, ok2 := byNumber[bracket.SemifinalGames[1]]
	if ok1 && ok2 {
		setSlot(teamMap, sfGame1.Team1Code, sf1[0])
		setSlot(teamMap, sfGame1.Team2Code, sf1[1])
		setSlot(teamMap, sfGame2.Team1Code, sf2[0])
		setSlot(teamMap, sfGame2.Team2Code, sf2[1])
	}

	teamMap["Q1"] = sf1[0]
	teamMap["Q2"] = sf1[1]
	teamMap["Q3"] = sf2[0]
	teamMap["Q4"] = sf2[1]
	teamMap["seed1"] = seeds[0]
	teamMap["seed2"] = seeds[1]
	teamMap["seed3"] = seeds[2]
	teamMap["seed4"] = seeds[3]
}

// candidatePool collects every team name present in the standings, the
// set of legal targets for a seeding override.
func candidatePool(groups map[string][]domain.TeamStats) mapset.Set[string] {
	pool := mapset.NewSet[string]()
	for _, list := range groups {
		for _, ts := range list {
			pool.Add(ts.Name)
		}
	}
	return pool
}

// applySeedOverrides replaces the computed seed order with a configured
// seed1..seed4 override, but only when the override is a permutation of
// the actual quarterfinal winners. Anything else silently keeps the
// standard seeding.
func applySeedOverrides(seeds [4]string, overrides map[string]string, log *logrus.Entry) [4]string {
	if len(overrides) == 0 {
		return seeds
	}
	pool := mapset.NewSet(seeds[0], seeds[1], seeds[2], seeds[3])
	var custom [4]string
	for i := range custom {
		team, ok := overrides[fmt.Sprintf("seed%d", i+1)]
		if !ok {
			return seeds
		}
		if !pool.Contains(team) {
			log.WithField("team", team).Warn("custom semifinal seeding names a team that did not win a quarterfinal, using standard seeding")
			return seeds
		}
		custom[i] = team
	}
	return custom
}

// fallbackQuarterfinalSlots maps Q1..Q4 to whatever quarterfinal
// winners are already known when the full reseeding pass cannot run.
func fallbackQuarterfinalSlots(teamMap map[string]string, bracket Bracket, resolver *Resolver) {
	if _, ok := teamMap["Q1"]; ok {
		return
	}
	for i, n := range bracket.QuarterfinalGames {
		code := resolver.Resolve(outcomeCode(OutcomeWin, n))
		if domain.IsFinalCode(code) {
			teamMap[fmt.Sprintf("Q%d", i+1)] = code
		}
	}
}

// setSlot records a semifinal participant under the placeholder the
// game actually uses. Codes that are already final identify the team
// directly and need no map entry.
func setSlot(teamMap map[string]string, slot, team string) {
	if slot == "" || domain.IsFinalCode(slot) {
		return
	}
	teamMap[slot] = team
}

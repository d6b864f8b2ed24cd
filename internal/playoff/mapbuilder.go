package playoff

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

// Bracket is the per-year playoff metadata: which game numbers make up
// each playoff stage, the host teams and the length of the preliminary
// schedule.
type Bracket struct {
	QuarterfinalGames []int
	SemifinalGames    []int
	BronzeGame        int
	GoldGame          int
	Hosts             []string
	MaxPrelimGames    int
}

// DefaultBracket is the regular world championship layout: games 57-60
// are the quarterfinals, 61-62 the semifinals, 63 the bronze medal game
// and 64 the final.
func DefaultBracket() Bracket {
	return Bracket{
		QuarterfinalGames: []int{57, 58, 59, 60},
		SemifinalGames:    []int{61, 62},
		BronzeGame:        63,
		GoldGame:          64,
		MaxPrelimGames:    7,
	}
}

const (
	maxBuildPasses = 10
	cleanupPasses  = 3
)

// BuildTeamMap builds the placeholder map for one championship year: a
// best-effort mapping from every known symbolic code to the most
// resolved value currently derivable. The result is a fixed point,
// running another pass over it would change nothing. Entries that are
// not final codes depend on games without a result yet.
func BuildTeamMap(
	groups map[string][]domain.TeamStats,
	games []domain.Game,
	bracket Bracket,
	overrides map[string]string,
	pairing PairingPolicy,
	log *logrus.Entry,
) map[string]string {
	if pairing == nil {
		pairing = HostPairing{}
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}

	teamMap := make(map[string]string)
	byNumber := GamesByNumber(games)
	resolver := NewResolver(teamMap, byNumber)

	seedFromStandings(teamMap, groups, bracket.Hosts)
	applyOverrides(teamMap, overrides, groups, log)

	// Resolve W(n)/L(n) entries to a fixed point. Each pass first
	// re-resolves stale entries, then derives winner and loser of every
	// decided playoff game.
	changed := true
	for pass := 0; changed && pass < maxBuildPasses; pass++ {
		changed = resolvePass(teamMap, resolver)
		if deriveOutcomes(teamMap, games, resolver) {
			changed = true
		}
	}

	// Medal games reference the semifinals through the SF1/SF2 aliases.
	// The alias resolves to the game number, which the resolver then
	// rewrites to W(n)/L(n).
	if len(bracket.SemifinalGames) >= 2 {
		teamMap["SF1"] = strconv.Itoa(bracket.SemifinalGames[0])
		teamMap["SF2"] = strconv.Itoa(bracket.SemifinalGames[1])
	}

	reseedSemifinals(teamMap, groups, bracket, overrides, pairing, resolver, byNumber, log)

	// The aliases and the reseeding introduce new entries, so the
	// cleanup runs the outcome derivation again: a decided medal game
	// referencing W(SF1) yields its W(n)/L(n) entries here.
	for i := 0; i < cleanupPasses; i++ {
		progress := resolvePass(teamMap, resolver)
		if deriveOutcomes(teamMap, games, resolver) {
			progress = true
		}
		if !progress {
			break
		}
	}
	return teamMap
}

// deriveOutcomes records winner and loser of every decided playoff game
// whose participants resolve to final codes, reporting whether any map
// entry changed.
func deriveOutcomes(teamMap map[string]string, games []domain.Game, resolver *Resolver) bool {
	changed := false
	for _, g := range games {
		if !g.IsPlayoff() || g.Number == 0 || !g.HasResult() {
			continue
		}
		t1 := resolver.Resolve(g.Team1Code)
		t2 := resolver.Resolve(g.Team2Code)
		if !domain.IsFinalCode(t1) || !domain.IsFinalCode(t2) {
			continue
		}
		winner, loser := t1, t2
		if *g.Team2Score > *g.Team1Score {
			winner, loser = t2, t1
		}
		if set(teamMap, outcomeCode(OutcomeWin, g.Number), winner) {
			changed = true
		}
		if set(teamMap, outcomeCode(OutcomeLoss, g.Number), loser) {
			changed = true
		}
	}
	return changed
}

// resolvePass re-resolves every non-final entry once, reporting whether
// any entry changed.
func resolvePass(teamMap map[string]string, resolver *Resolver) bool {
	keys := make([]string, 0, len(teamMap))
	for key := range teamMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	changed := false
	for _, key := range keys {
		val := teamMap[key]
		if domain.IsFinalCode(val) {
			continue
		}
		resolved := resolver.Resolve(val)
		if resolved != val && domain.IsFinalCode(resolved) {
			teamMap[key] = resolved
			changed = true
		}
	}
	return changed
}

// seedFromStandings inserts "A1".."D4" style entries per group rank,
// plus "H{rank}" entries for host teams.
func seedFromStandings(teamMap map[string]string, groups map[string][]domain.TeamStats, hosts []string) {
	for groupName, list := range groups {
		letter := strings.TrimPrefix(groupName, "Group ")
		for _, ts := range list {
			teamMap[fmt.Sprintf("%s%d", letter, ts.RankInGroup)] = ts.Name
			for _, host := range hosts {
				if ts.Name == host {
					teamMap[fmt.Sprintf("H%d", ts.RankInGroup)] = ts.Name
				}
			}
		}
	}
}

// applyOverrides lays configured seeding overrides over the
// standings-derived entries. An override set naming a team that is not
// in the standings at all is discarded as a whole, the standard seeding
// stays in place.
func applyOverrides(teamMap map[string]string, overrides map[string]string, groups map[string][]domain.TeamStats, log *logrus.Entry) {
	if len(overrides) == 0 {
		return
	}
	pool := candidatePool(groups)
	for _, team := range overrides {
		if !pool.Contains(team) {
			log.WithField("team", team).Warn("custom seeding names unknown team, using standard seeding")
			return
		}
	}
	for slot, team := range overrides {
		teamMap[slot] = team
	}
}

func set(teamMap map[string]string, key, value string) bool {
	if teamMap[key] == value {
		return false
	}
	teamMap[key] = value
	return true
}

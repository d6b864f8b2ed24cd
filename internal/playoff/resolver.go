package playoff

import (
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

// Resolution is bounded so that even a pathological placeholder
// configuration terminates. Ten steps cover the longest legitimate
// chain (group rank -> QF -> SF -> medal game) with room to spare.
const (
	maxResolveSteps = 10
	maxResolveDepth = 10
)

// Resolver resolves one symbolic code against an immutable placeholder
// map and a game-number lookup. It never mutates the map; an
// unresolvable code is returned unchanged so that callers can render it
// as "to be determined".
type Resolver struct {
	teamMap map[string]string
	games   map[int]domain.Game
}

func NewResolver(teamMap map[string]string, gamesByNumber map[int]domain.Game) *Resolver {
	return &Resolver{teamMap: teamMap, games: gamesByNumber}
}

// GamesByNumber builds the game-number lookup used by the resolver.
func GamesByNumber(games []domain.Game) map[int]domain.Game {
	byNumber := make(map[int]domain.Game, len(games))
	for _, g := range games {
		if g.Number > 0 {
			byNumber[g.Number] = g
		}
	}
	return byNumber
}

// Resolve follows the chain of indirection behind a code until it
// reaches a final 3-letter team code. The result is either such a final
// code or exactly the input, never a different placeholder.
func (r *Resolver) Resolve(code string) string {
	return r.resolve(code, 0)
}

func (r *Resolver) resolve(code string, depth int) string {
	if code == "" {
		return ""
	}
	if domain.IsFinalCode(code) {
		return code
	}
	if depth > maxResolveDepth {
		return code
	}

	current := code
	visited := mapset.NewThreadUnsafeSet(current)

	for step := 0; step < maxResolveSteps; step++ {
		if domain.IsFinalCode(current) {
			return current
		}

		if mapped, ok := r.teamMap[current]; ok {
			if domain.IsFinalCode(mapped) {
				return mapped
			}
			parsed := ParseCode(current)
			if mapped == current && !(parsed.Kind == KindGameOutcome && parsed.GameNumber > 0) {
				// The map cannot make progress on a plain placeholder
				// that points at itself.
				break
			}
			current = mapped
		} else {
			next, ok := r.stepOutcome(current, depth)
			if !ok {
				break
			}
			current = next
		}

		if visited.Contains(current) {
			// Cyclic configuration, report the original input rather
			// than an arbitrary element of the cycle.
			return code
		}
		visited.Add(current)
	}

	if domain.IsFinalCode(current) {
		return current
	}
	return code
}

// stepOutcome advances a W(...)/L(...) code by one step: aliases are
// rewritten to their game number, and decided games are replaced by
// their winner or loser.
func (r *Resolver) stepOutcome(current string, depth int) (string, bool) {
	parsed := ParseCode(current)
	if parsed.Kind != KindGameOutcome {
		return "", false
	}

	if parsed.GameNumber == 0 {
		inner, ok := r.teamMap[parsed.Alias]
		if !ok {
			return "", false
		}
		n, err := strconv.Atoi(inner)
		if err != nil || n <= 0 {
			return "", false
		}
		return outcomeCode(parsed.Outcome, n), true
	}

	g, ok := r.games[parsed.GameNumber]
	if !ok || !g.HasResult() {
		return "", false
	}
	// A game listing its own outcome code as a participant cannot
	// decide that code.
	if g.Team1Code == current || g.Team2Code == current {
		return "", false
	}

	t1 := r.resolve(g.Team1Code, depth+1)
	t2 := r.resolve(g.Team2Code, depth+1)
	if !domain.IsFinalCode(t1) || !domain.IsFinalCode(t2) {
		return "", false
	}

	winner, loser := t1, t2
	if *g.Team2Score > *g.Team1Score {
		winner, loser = t2, t1
	}
	if parsed.Outcome == OutcomeWin {
		return winner, true
	}
	return loser, true
}

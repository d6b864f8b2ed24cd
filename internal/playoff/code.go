// Package playoff resolves symbolic bracket placeholders such as "A1",
// "W(57)" or "L(SF1)" to final team codes, based on preliminary round
// standings and playoff results known so far.
package playoff

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

type CodeKind int

const (
	// KindFinal is a definitive 3-letter team code.
	KindFinal CodeKind = iota
	// KindGroupRank is a group position such as "A1" or a host position
	// such as "H2".
	KindGroupRank
	// KindGameOutcome is the winner or loser of a game, either by game
	// number ("W(57)") or through an alias ("L(SF1)").
	KindGameOutcome
	// KindUnknown is any other placeholder. It can still be resolved
	// through a direct map entry.
	KindUnknown
)

type OutcomeKind int

const (
	OutcomeWin OutcomeKind = iota
	OutcomeLoss
)

// Code is the parsed form of a team code string. Codes are parsed once
// and resolution dispatches on the variant instead of re-matching the
// raw string.
type Code struct {
	Raw  string
	Kind CodeKind

	// KindGroupRank
	GroupLetter string
	Rank        int

	// KindGameOutcome
	Outcome    OutcomeKind
	GameNumber int    // 0 when the inner reference is an alias
	Alias      string // e.g. "SF1", empty when numeric
}

var (
	outcomeRe   = regexp.MustCompile(`^([WL])\((.+)\)$`)
	groupRankRe = regexp.MustCompile(`^([A-Z])([0-9]+)$`)
)

func ParseCode(raw string) Code {
	if domain.IsFinalCode(raw) {
		return Code{Raw: raw, Kind: KindFinal}
	}
	if m := outcomeRe.FindStringSubmatch(raw); m != nil {
		c := Code{Raw: raw, Kind: KindGameOutcome}
		if m[1] == "L" {
			c.Outcome = OutcomeLoss
		}
		if n, err := strconv.Atoi(m[2]); err == nil && n > 0 {
			c.GameNumber = n
		} else {
			c.Alias = m[2]
		}
		return c
	}
	if m := groupRankRe.FindStringSubmatch(raw); m != nil {
		rank, _ := strconv.Atoi(m[2])
		return Code{Raw: raw, Kind: KindGroupRank, GroupLetter: m[1], Rank: rank}
	}
	return Code{Raw: raw, Kind: KindUnknown}
}

// outcomeCode rebuilds the string form of a game outcome reference,
// used when an alias like SF1 has been resolved to a game number.
func outcomeCode(kind OutcomeKind, gameNumber int) string {
	prefix := "W"
	if kind == OutcomeLoss {
		prefix = "L"
	}
	return fmt.Sprintf("%s(%d)", prefix, gameNumber)
}

// WinnerCode is the placeholder naming the winner of a game.
func WinnerCode(gameNumber int) string {
	return outcomeCode(OutcomeWin, gameNumber)
}

// LoserCode is the placeholder naming the loser of a game.
func LoserCode(gameNumber int) string {
	return outcomeCode(OutcomeLoss, gameNumber)
}

package playoff

import (
	"testing"

	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

func game(num int, round, t1, t2 string, s1, s2 int, result domain.ResultType) domain.Game {
	return domain.Game{
		Number:     num,
		Round:      round,
		Team1Code:  t1,
		Team2Code:  t2,
		Team1Score: &s1,
		Team2Score: &s2,
		Result:     result,
	}
}

func scheduled(num int, round, t1, t2 string) domain.Game {
	return domain.Game{Number: num, Round: round, Team1Code: t1, Team2Code: t2}
}

func TestResolve(t *testing.T) {
	games := GamesByNumber([]domain.Game{
		game(57, "Quarterfinals", "A1", "B2", 3, 1, domain.ResultRegulation),
		scheduled(58, "Quarterfinals", "B1", "A2"),
		game(61, "Semifinals", "W(57)", "W(59)", 3, 4, domain.ResultOvertime),
	})
	teamMap := map[string]string{
		"A1":    "CAN",
		"A2":    "USA",
		"B2":    "FIN",
		"W(59)": "SWE",
		"SF1":   "61",
	}

	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "empty means no team scheduled", code: "", want: ""},
		{name: "final code passes through", code: "GER", want: "GER"},
		{name: "group rank from map", code: "A1", want: "CAN"},
		{name: "winner from decided game", code: "W(57)", want: "CAN"},
		{name: "loser from decided game", code: "L(57)", want: "FIN"},
		{name: "no false resolution without result", code: "W(58)", want: "W(58)"},
		{name: "missing game stays put", code: "W(99)", want: "W(99)"},
		{name: "alias chain to winner", code: "W(SF1)", want: "SWE"},
		{name: "alias chain to loser", code: "L(SF1)", want: "CAN"},
		{name: "unknown alias stays put", code: "W(SF9)", want: "W(SF9)"},
		{name: "unknown placeholder stays put", code: "A9", want: "A9"},
	}
	r := NewResolver(teamMap, games)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.code); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

// The result is always either a final code or exactly the input, never
// some other placeholder along the chain.
func TestResolveFinality(t *testing.T) {
	teamMap := map[string]string{"A1": "B3", "B3": "C2"}
	r := NewResolver(teamMap, nil)
	if got := r.Resolve("A1"); got != "A1" {
		t.Errorf("Resolve(A1) = %q, want the original placeholder back", got)
	}
}

func TestResolveCycleSafety(t *testing.T) {
	teamMap := map[string]string{"A1": "B1", "B1": "A1"}
	r := NewResolver(teamMap, map[int]domain.Game{})
	if got := r.Resolve("A1"); got != "A1" {
		t.Errorf("Resolve(A1) = %q, want A1", got)
	}
	if got := r.Resolve("B1"); got != "B1" {
		t.Errorf("Resolve(B1) = %q, want B1", got)
	}
}

// A game that names its own outcome code as a participant cannot be
// used to decide that code.
func TestResolveDegenerateSelfReference(t *testing.T) {
	games := GamesByNumber([]domain.Game{
		game(57, "Quarterfinals", "W(57)", "FIN", 3, 1, domain.ResultRegulation),
	})
	r := NewResolver(map[string]string{}, games)
	if got := r.Resolve("W(57)"); got != "W(57)" {
		t.Errorf("Resolve(W(57)) = %q, want W(57)", got)
	}
}

// Two games that reference each other's outcome must not recurse
// forever.
func TestResolveMutualGameReference(t *testing.T) {
	games := GamesByNumber([]domain.Game{
		game(61, "Semifinals", "W(62)", "FIN", 3, 1, domain.ResultRegulation),
		game(62, "Semifinals", "W(61)", "SWE", 2, 1, domain.ResultRegulation),
	})
	r := NewResolver(map[string]string{}, games)
	if got := r.Resolve("W(61)"); got != "W(61)" {
		t.Errorf("Resolve(W(61)) = %q, want W(61)", got)
	}
}

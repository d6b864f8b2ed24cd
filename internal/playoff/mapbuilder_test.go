package playoff

import (
	"testing"

	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

// tournamentGroups mirrors a finished preliminary round: two groups of
// four, ranked.
func tournamentGroups() map[string][]domain.TeamStats {
	return map[string][]domain.TeamStats{
		"Group A": {
			{Name: "CAN", Group: "Group A", RankInGroup: 1, Points: 21, GoalsFor: 40, GoalsAgainst: 10, GamesPlayed: 7},
			{Name: "USA", Group: "Group A", RankInGroup: 2, Points: 18, GoalsFor: 30, GoalsAgainst: 15, GamesPlayed: 7},
			{Name: "GER", Group: "Group A", RankInGroup: 3, Points: 15, GoalsFor: 25, GoalsAgainst: 18, GamesPlayed: 7},
			{Name: "LAT", Group: "Group A", RankInGroup: 4, Points: 12, GoalsFor: 20, GoalsAgainst: 20, GamesPlayed: 7},
		},
		"Group B": {
			{Name: "SWE", Group: "Group B", RankInGroup: 1, Points: 20, GoalsFor: 35, GoalsAgainst: 12, GamesPlayed: 7},
			{Name: "FIN", Group: "Group B", RankInGroup: 2, Points: 17, GoalsFor: 28, GoalsAgainst: 14, GamesPlayed: 7},
			{Name: "CZE", Group: "Group B", RankInGroup: 3, Points: 14, GoalsFor: 24, GoalsAgainst: 19, GamesPlayed: 7},
			{Name: "SUI", Group: "Group B", RankInGroup: 4, Points: 11, GoalsFor: 18, GoalsAgainst: 22, GamesPlayed: 7},
		},
	}
}

func bracketGames(withQF, withSF bool) []domain.Game {
	games := []domain.Game{
		scheduled(57, "Quarterfinals", "A1", "B2"),
		scheduled(58, "Quarterfinals", "B1", "A2"),
		scheduled(59, "Quarterfinals", "A3", "B4"),
		scheduled(60, "Quarterfinals", "B3", "A4"),
		scheduled(61, "Semifinals", "W(57)", "W(60)"),
		scheduled(62, "Semifinals", "W(58)", "W(59)"),
		scheduled(63, "Bronze Medal Game", "L(SF1)", "L(SF2)"),
		scheduled(64, "Gold Medal Game", "W(SF1)", "W(SF2)"),
	}
	if withQF {
		games[0] = game(57, "Quarterfinals", "A1", "B2", 5, 1, domain.ResultRegulation) // CAN
		games[1] = game(58, "Quarterfinals", "B1", "A2", 3, 2, domain.ResultRegulation) // SWE
		games[2] = game(59, "Quarterfinals", "A3", "B4", 4, 2, domain.ResultRegulation) // GER
		games[3] = game(60, "Quarterfinals", "B3", "A4", 2, 1, domain.ResultOvertime)   // CZE
	}
	if withSF {
		games[4] = game(61, "Semifinals", "W(57)", "W(60)", 4, 2, domain.ResultRegulation) // CAN over CZE
		games[5] = game(62, "Semifinals", "W(58)", "W(59)", 2, 1, domain.ResultOvertime)   // SWE over GER
	}
	return games
}

func buildTestMap(t *testing.T, games []domain.Game, bracket Bracket, overrides map[string]string) map[string]string {
	t.Helper()
	return BuildTeamMap(tournamentGroups(), games, bracket, overrides, nil, nil)
}

func TestBuildTeamMapPreliminaryOnly(t *testing.T) {
	games := bracketGames(false, false)
	teamMap := buildTestMap(t, games, DefaultBracket(), nil)
	r := NewResolver(teamMap, GamesByNumber(games))

	if got := r.Resolve("A1"); got != "CAN" {
		t.Errorf("Resolve(A1) = %q, want CAN", got)
	}
	if got := r.Resolve("B4"); got != "SUI" {
		t.Errorf("Resolve(B4) = %q, want SUI", got)
	}
	// No playoff game has a result yet: outcome codes stay symbolic.
	if got := r.Resolve("W(57)"); got != "W(57)" {
		t.Errorf("Resolve(W(57)) = %q, want W(57)", got)
	}
	if got := r.Resolve("W(SF1)"); got != "W(SF1)" {
		t.Errorf("Resolve(W(SF1)) = %q, want W(SF1)", got)
	}
}

func TestBuildTeamMapFullBracket(t *testing.T) {
	games := bracketGames(true, true)
	teamMap := buildTestMap(t, games, DefaultBracket(), nil)
	r := NewResolver(teamMap, GamesByNumber(games))

	tests := []struct {
		code string
		want string
	}{
		{code: "W(57)", want: "CAN"},
		{code: "L(57)", want: "FIN"},
		{code: "W(60)", want: "CZE"},
		{code: "W(SF1)", want: "CAN"},
		{code: "L(SF1)", want: "CZE"},
		{code: "W(SF2)", want: "SWE"},
		{code: "L(SF2)", want: "GER"},
		// Reseeded slots: QF winners ranked CAN, SWE, GER, CZE.
		{code: "seed1", want: "CAN"},
		{code: "seed4", want: "CZE"},
		{code: "Q1", want: "CAN"},
		{code: "Q2", want: "CZE"},
		{code: "Q3", want: "SWE"},
		{code: "Q4", want: "GER"},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.code); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}

	// Medal game participants.
	byNumber := GamesByNumber(games)
	gold := byNumber[64]
	if t1, t2 := r.Resolve(gold.Team1Code), r.Resolve(gold.Team2Code); t1 != "CAN" || t2 != "SWE" {
		t.Errorf("gold medal game = %s v %s, want CAN v SWE", t1, t2)
	}
	bronze := byNumber[63]
	if t1, t2 := r.Resolve(bronze.Team1Code), r.Resolve(bronze.Team2Code); t1 != "CZE" || t2 != "GER" {
		t.Errorf("bronze medal game = %s v %s, want CZE v GER", t1, t2)
	}
}

// Building the map twice over the same snapshot yields the same map,
// and re-running a resolution pass over the result changes nothing.
func TestBuildTeamMapFixedPoint(t *testing.T) {
	games := bracketGames(true, false)
	first := buildTestMap(t, games, DefaultBracket(), nil)
	second := buildTestMap(t, games, DefaultBracket(), nil)
	if len(first) != len(second) {
		t.Fatalf("map sizes differ: %d vs %d", len(first), len(second))
	}
	for key, val := range first {
		if second[key] != val {
			t.Errorf("entry %q differs: %q vs %q", key, val, second[key])
		}
	}
	resolver := NewResolver(first, GamesByNumber(games))
	if resolvePass(first, resolver) {
		t.Error("resolution pass over a built map still made progress")
	}
	if deriveOutcomes(first, games, resolver) {
		t.Error("outcome derivation over a built map still made progress")
	}
}

// Decided medal games reference the semifinals only through the SF1/SF2
// aliases, their winner and loser entries must still end up in the map.
func TestBuildTeamMapDerivesMedalOutcomes(t *testing.T) {
	games := bracketGames(true, true)
	games[6] = game(63, "Bronze Medal Game", "L(SF1)", "L(SF2)", 4, 2, domain.ResultRegulation)
	games[7] = game(64, "Gold Medal Game", "W(SF1)", "W(SF2)", 3, 2, domain.ResultOvertime)

	teamMap := buildTestMap(t, games, DefaultBracket(), nil)

	tests := []struct {
		code string
		want string
	}{
		{code: "W(63)", want: "CZE"},
		{code: "L(63)", want: "GER"},
		{code: "W(64)", want: "CAN"},
		{code: "L(64)", want: "SWE"},
	}
	for _, tt := range tests {
		if got := teamMap[tt.code]; got != tt.want {
			t.Errorf("teamMap[%q] = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestBuildTeamMapHostPairing(t *testing.T) {
	bracket := DefaultBracket()
	// GER won its quarterfinal and hosts the tournament: it must play
	// in semifinal 1 even though the standard pairing puts it in SF2.
	bracket.Hosts = []string{"GER"}

	games := bracketGames(true, false)
	teamMap := buildTestMap(t, games, bracket, nil)

	if teamMap["Q1"] != "SWE" || teamMap["Q2"] != "GER" {
		t.Errorf("SF1 slots = %s v %s, want SWE v GER", teamMap["Q1"], teamMap["Q2"])
	}
	if teamMap["Q3"] != "CAN" || teamMap["Q4"] != "CZE" {
		t.Errorf("SF2 slots = %s v %s, want CAN v CZE", teamMap["Q3"], teamMap["Q4"])
	}
	// Host rank entries come from the standings seed.
	if teamMap["H3"] != "GER" {
		t.Errorf("H3 = %q, want GER", teamMap["H3"])
	}
}

func TestBuildTeamMapSeedOverrides(t *testing.T) {
	games := bracketGames(true, false)

	valid := map[string]string{"seed1": "CZE", "seed2": "GER", "seed3": "SWE", "seed4": "CAN"}
	teamMap := buildTestMap(t, games, DefaultBracket(), valid)
	if teamMap["seed1"] != "CZE" || teamMap["Q2"] != "CAN" {
		t.Errorf("override not applied: seed1=%q Q2=%q", teamMap["seed1"], teamMap["Q2"])
	}

	// USA lost its quarterfinal, the override is not a permutation of
	// the winners: standard seeding stays.
	invalid := map[string]string{"seed1": "USA", "seed2": "SWE", "seed3": "GER", "seed4": "CZE"}
	teamMap = buildTestMap(t, games, DefaultBracket(), invalid)
	if teamMap["seed1"] != "CAN" {
		t.Errorf("seed1 = %q, want standard CAN", teamMap["seed1"])
	}
}

func TestBuildTeamMapGroupRankOverride(t *testing.T) {
	games := bracketGames(false, false)

	teamMap := buildTestMap(t, games, DefaultBracket(), map[string]string{"A1": "USA"})
	if teamMap["A1"] != "USA" {
		t.Errorf("A1 = %q, want USA after override", teamMap["A1"])
	}

	// A team outside the standings discards the whole override set.
	teamMap = buildTestMap(t, games, DefaultBracket(), map[string]string{"A1": "FRA"})
	if teamMap["A1"] != "CAN" {
		t.Errorf("A1 = %q, want CAN after invalid override", teamMap["A1"])
	}
}

func TestCycleReport(t *testing.T) {
	teamMap := map[string]string{
		"A1": "B1",
		"B1": "A1",
		"C1": "C1",
		"D1": "CAN",
	}
	cycles := CycleReport(teamMap)
	if len(cycles) != 2 {
		t.Fatalf("cycles = %v, want a pair cycle and a self loop", cycles)
	}
	if cycles[0][0] != "A1" || len(cycles[0]) != 2 {
		t.Errorf("first cycle = %v, want [A1 B1]", cycles[0])
	}
	if cycles[1][0] != "C1" || len(cycles[1]) != 1 {
		t.Errorf("second cycle = %v, want [C1]", cycles[1])
	}
}

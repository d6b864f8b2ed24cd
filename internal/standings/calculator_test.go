package standings

import (
	"testing"

	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

func played(num int, group, t1, t2 string, s1, s2 int, result domain.ResultType) domain.Game {
	return domain.Game{
		Number:     num,
		Round:      "Preliminary Round",
		Group:      group,
		Team1Code:  t1,
		Team2Code:  t2,
		Team1Score: &s1,
		Team2Score: &s2,
		Result:     result,
	}
}

func TestCalculatePoints(t *testing.T) {
	games := []domain.Game{
		played(1, "Group A", "CAN", "FIN", 4, 2, domain.ResultRegulation),
		played(2, "Group A", "SWE", "CZE", 2, 1, domain.ResultOvertime),
		played(3, "Group A", "USA", "GER", 3, 2, domain.ResultShootout),
	}
	stats := Calculate(games, DefaultMaxPrelimGames)

	tests := []struct {
		team   string
		points int
		wins   int
		otWins int
		soWins int
		losses int
	}{
		{team: "CAN", points: 3, wins: 1},
		{team: "FIN", points: 0, losses: 1},
		{team: "SWE", points: 2, otWins: 1},
		{team: "CZE", points: 1},
		{team: "USA", points: 2, soWins: 1},
		{team: "GER", points: 1},
	}
	for _, tt := range tests {
		t.Run(tt.team, func(t *testing.T) {
			ts, ok := stats[tt.team]
			if !ok {
				t.Fatalf("team %s missing from standings", tt.team)
			}
			if ts.Points != tt.points {
				t.Errorf("points = %d, want %d", ts.Points, tt.points)
			}
			if ts.Wins != tt.wins || ts.OTWins != tt.otWins || ts.SOWins != tt.soWins {
				t.Errorf("wins = %d/%d/%d, want %d/%d/%d", ts.Wins, ts.OTWins, ts.SOWins, tt.wins, tt.otWins, tt.soWins)
			}
			if ts.GamesPlayed != 1 {
				t.Errorf("games played = %d, want 1", ts.GamesPlayed)
			}
		})
	}
}

func TestCalculateIgnoresUnfinishedAndPlayoffGames(t *testing.T) {
	unfinished := domain.Game{Number: 4, Round: "Preliminary Round", Group: "Group A", Team1Code: "CAN", Team2Code: "FIN"}
	playoff := played(57, "", "CAN", "SWE", 3, 1, domain.ResultRegulation)
	playoff.Round = "Quarterfinals"
	placeholder := played(5, "Group A", "A1", "FIN", 2, 0, domain.ResultRegulation)

	stats := Calculate([]domain.Game{unfinished, playoff, placeholder}, DefaultMaxPrelimGames)
	if len(stats) != 0 {
		t.Fatalf("standings = %v, want empty", stats)
	}
}

// A team that lost the direct game ranks below its opponent even with
// the better overall goal difference.
func TestTwoTeamHeadToHead(t *testing.T) {
	games := []domain.Game{
		played(1, "Group A", "CAN", "FIN", 4, 2, domain.ResultRegulation),
		played(2, "Group A", "CAN", "GER", 1, 2, domain.ResultRegulation),
		played(3, "Group A", "FIN", "LAT", 4, 0, domain.ResultRegulation),
		played(4, "Group A", "GER", "LAT", 2, 0, domain.ResultRegulation),
	}
	stats := Calculate(games, DefaultMaxPrelimGames)

	wantRanks := map[string]int{"GER": 1, "CAN": 2, "FIN": 3, "LAT": 4}
	for team, want := range wantRanks {
		if got := stats[team].RankInGroup; got != want {
			t.Errorf("%s rank = %d, want %d", team, got, want)
		}
	}
}

// A three-way tie uses the mini table of direct games only once every
// tied team has completed its schedule; before that, overall goal
// difference decides.
func TestMultiTeamHeadToHeadGate(t *testing.T) {
	games := []domain.Game{
		played(1, "Group A", "CAN", "FIN", 5, 0, domain.ResultRegulation),
		played(2, "Group A", "FIN", "SWE", 1, 0, domain.ResultRegulation),
		played(3, "Group A", "SWE", "CAN", 1, 0, domain.ResultRegulation),
		played(4, "Group A", "CAN", "LAT", 1, 0, domain.ResultRegulation),
		played(5, "Group A", "FIN", "LAT", 8, 0, domain.ResultRegulation),
		played(6, "Group A", "SWE", "LAT", 2, 0, domain.ResultRegulation),
	}

	// Schedule incomplete (3 of 7 games): overall goal difference
	// decides (CAN +5, FIN +4, SWE +2).
	stats := Calculate(games, DefaultMaxPrelimGames)
	for team, want := range map[string]int{"CAN": 1, "FIN": 2, "SWE": 3, "LAT": 4} {
		if got := stats[team].RankInGroup; got != want {
			t.Errorf("%s rank with open schedule = %d, want %d", team, got, want)
		}
	}

	// Schedule complete: the mini table among CAN, FIN and SWE applies.
	// All three won one direct game, so the mini goal difference
	// decides: CAN +4, SWE 0, FIN -4.
	stats = Calculate(games, 3)
	for team, want := range map[string]int{"CAN": 1, "SWE": 2, "FIN": 3, "LAT": 4} {
		if got := stats[team].RankInGroup; got != want {
			t.Errorf("%s rank with complete schedule = %d, want %d", team, got, want)
		}
	}
}

func TestGrouped(t *testing.T) {
	games := []domain.Game{
		played(1, "Group A", "CAN", "FIN", 4, 2, domain.ResultRegulation),
		played(2, "Group B", "SWE", "CZE", 3, 1, domain.ResultRegulation),
	}
	groups := Grouped(Calculate(games, DefaultMaxPrelimGames))
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups["Group A"][0].Name != "CAN" || groups["Group A"][1].Name != "FIN" {
		t.Errorf("group A order = %v", groups["Group A"])
	}
	if groups["Group B"][0].Name != "SWE" {
		t.Errorf("group B leader = %s, want SWE", groups["Group B"][0].Name)
	}
}

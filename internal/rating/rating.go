package rating

import (
	"sort"

	glicko "github.com/zelenin/go-glicko2"

	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

const (
	baseRating    = 1500
	baseDeviation = 350
	baseSigma     = 0.06
)

// TeamRating is a national team's Glicko-2 strength estimate across
// championship years.
type TeamRating struct {
	Team        string
	Rating      float64
	Interval    Interval
	GamesPlayed int
	Rank        int
}

// Interval is the 95% confidence band of the rating.
type Interval struct {
	Min float64
	Max float64
}

// Calculate runs one rating period per championship year, in order.
// Only games with a result and two identified teams contribute; games
// still carrying a placeholder are skipped.
func Calculate(years [][]domain.GameView) []TeamRating {
	players := make(map[string]*glicko.Player)
	gamesPlayed := make(map[string]int)

	player := func(team string) *glicko.Player {
		p, ok := players[team]
		if !ok {
			p = glicko.NewPlayer(glicko.NewRating(baseRating, baseDeviation, baseSigma))
			players[team] = p
		}
		return p
	}

	for _, games := range years {
		period := glicko.NewRatingPeriod()
		played := false
		for _, g := range games {
			if !g.HasResult() {
				continue
			}
			t1, t2 := g.Team1Resolved, g.Team2Resolved
			if !domain.IsFinalCode(t1) || !domain.IsFinalCode(t2) {
				continue
			}
			result := glicko.MATCH_RESULT_WIN
			if *g.Team2Score > *g.Team1Score {
				result = glicko.MATCH_RESULT_LOSS
			}
			period.AddMatch(player(t1), player(t2), result)
			gamesPlayed[t1]++
			gamesPlayed[t2]++
			played = true
		}
		if played {
			period.Calculate()
		}
	}

	ratings := make([]TeamRating, 0, len(players))
	for team, p := range players {
		r := p.Rating()
		ratings = append(ratings, TeamRating{
			Team:   team,
			Rating: r.R(),
			Interval: Interval{
				Min: r.R() - 2*r.Rd(),
				Max: r.R() + 2*r.Rd(),
			},
			GamesPlayed: gamesPlayed[team],
		})
	}
	sort.SliceStable(ratings, func(i, j int) bool {
		if ratings[i].Rating != ratings[j].Rating {
			return ratings[i].Rating > ratings[j].Rating
		}
		return ratings[i].Team < ratings[j].Team
	})
	for i := range ratings {
		ratings[i].Rank = i + 1
	}
	return ratings
}

package service

import (
	"errors"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/milchgeldkassierer/iihf-stats/internal/cache/mem"
	"github.com/milchgeldkassierer/iihf-stats/internal/config"
	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
	"github.com/milchgeldkassierer/iihf-stats/internal/playoff"
	"github.com/milchgeldkassierer/iihf-stats/internal/rating"
	"github.com/milchgeldkassierer/iihf-stats/internal/standings"
	"github.com/milchgeldkassierer/iihf-stats/internal/storage"
)

var ErrGameNotFound = errors.New("game not found")

type TournamentService struct {
	years     storage.YearStorage
	games     storage.GameStorage
	overrides storage.OverrideStorage
	cache     *mem.Cache
	cfg       config.Tournaments
	log       *logrus.Entry
}

func New(
	years storage.YearStorage,
	games storage.GameStorage,
	overrides storage.OverrideStorage,
	cache *mem.Cache,
	cfg config.Tournaments,
	log *logrus.Logger,
) *TournamentService {
	return &TournamentService{
		years:     years,
		games:     games,
		overrides: overrides,
		cache:     cache,
		cfg:       cfg,
		log:       log.WithField("name", "tournament_service"),
	}
}

func (s *TournamentService) ListYears() ([]domain.ChampionshipYear, error) {
	return s.years.ListYears()
}

func (s *TournamentService) GetYear(id int) (domain.ChampionshipYear, error) {
	return s.years.GetYear(id)
}

// bracketFor looks up the configured playoff layout of a year. Missing
// or incomplete entries fall back to the standard bracket.
func (s *TournamentService) bracketFor(year domain.ChampionshipYear) playoff.Bracket {
	cfg, ok := s.cfg.ForYear(year.Year)
	if !ok {
		return playoff.DefaultBracket()
	}
	bracket := playoff.DefaultBracket()
	bracket.Hosts = cfg.Hosts
	if len(cfg.Quarterfinals) == 4 && len(cfg.Semifinals) == 2 && cfg.Bronze != 0 && cfg.Gold != 0 {
		bracket.QuarterfinalGames = cfg.Quarterfinals
		bracket.SemifinalGames = cfg.Semifinals
		bracket.BronzeGame = cfg.Bronze
		bracket.GoldGame = cfg.Gold
	} else if len(cfg.Quarterfinals) != 0 || len(cfg.Semifinals) != 0 {
		s.log.WithField("year", year.Year).Warn("incomplete bracket configuration, using standard bracket")
	}
	if cfg.MaxPrelimGames > 0 {
		bracket.MaxPrelimGames = cfg.MaxPrelimGames
	}
	return bracket
}

// teamMap returns the placeholder map of a year together with the game
// snapshot it was built from. Maps are cached per year and rebuilt
// whenever the underlying games change.
func (s *TournamentService) teamMap(yearID int) (map[string]string, []domain.Game, error) {
	games, err := s.games.ListGames(yearID)
	if err != nil {
		return nil, nil, err
	}
	version := mem.Version(games)
	if teamMap, ok := s.cache.Get(yearID, version); ok {
		return teamMap, games, nil
	}

	year, err := s.years.GetYear(yearID)
	if err != nil {
		return nil, nil, err
	}
	overrides, err := s.overrides.ListOverrides(yearID)
	if err != nil {
		return nil, nil, err
	}
	bracket := s.bracketFor(year)
	groups := standings.Grouped(standings.Calculate(games, bracket.MaxPrelimGames))
	teamMap := playoff.BuildTeamMap(groups, games, bracket, overrides, nil, s.log)

	if cycles := playoff.CycleReport(teamMap); len(cycles) != 0 {
		s.log.WithFields(logrus.Fields{
			"year":   year.Year,
			"cycles": cycles,
		}).Warn("placeholder map contains reference cycles")
	}

	s.cache.Put(yearID, version, teamMap)
	return teamMap, games, nil
}

// ResolveParticipants returns one game with both participants resolved
// as far as the current results allow.
func (s *TournamentService) ResolveParticipants(yearID, gameNumber int) (domain.GameView, error) {
	teamMap, games, err := s.teamMap(yearID)
	if err != nil {
		return domain.GameView{}, err
	}
	byNumber := playoff.GamesByNumber(games)
	game, ok := byNumber[gameNumber]
	if !ok {
		return domain.GameView{}, ErrGameNotFound
	}
	resolver := playoff.NewResolver(teamMap, byNumber)
	return domain.GameView{
		Game:          game,
		Team1Resolved: resolver.Resolve(game.Team1Code),
		Team2Resolved: resolver.Resolve(game.Team2Code),
	}, nil
}

// GamesWithResolvedTeams returns the full schedule of a year, every
// participant resolved as far as possible.
func (s *TournamentService) GamesWithResolvedTeams(yearID int) ([]domain.GameView, error) {
	teamMap, games, err := s.teamMap(yearID)
	if err != nil {
		return nil, err
	}
	resolver := playoff.NewResolver(teamMap, playoff.GamesByNumber(games))
	views := make([]domain.GameView, 0, len(games))
	for _, game := range games {
		views = append(views, domain.GameView{
			Game:          game,
			Team1Resolved: resolver.Resolve(game.Team1Code),
			Team2Resolved: resolver.Resolve(game.Team2Code),
		})
	}
	return views, nil
}

// Standings returns the preliminary round tables of a year by group.
func (s *TournamentService) Standings(yearID int) (map[string][]domain.TeamStats, error) {
	year, err := s.years.GetYear(yearID)
	if err != nil {
		return nil, err
	}
	games, err := s.games.ListGames(yearID)
	if err != nil {
		return nil, err
	}
	bracket := s.bracketFor(year)
	return standings.Grouped(standings.Calculate(games, bracket.MaxPrelimGames)), nil
}

// UpdateScore stores a game result and drops the year's cached
// placeholder map.
func (s *TournamentService) UpdateScore(yearID, gameNumber, team1Score, team2Score int, result domain.ResultType) error {
	game, err := s.games.GetGameByNumber(yearID, gameNumber)
	if err != nil {
		return err
	}
	err = s.games.UpdateScore(game.ID, team1Score, team2Score, result)
	if err != nil {
		return err
	}
	s.cache.Invalidate(yearID)
	return nil
}

func (s *TournamentService) AddGame(game domain.Game) (domain.Game, error) {
	created, err := s.games.AddGame(game)
	if err != nil {
		return domain.Game{}, err
	}
	s.cache.Invalidate(game.YearID)
	return created, nil
}

func (s *TournamentService) AddYear(year domain.ChampionshipYear) (domain.ChampionshipYear, error) {
	return s.years.AddYear(year)
}

// SetSeedingOverride stores a manual placeholder assignment and drops
// the year's cached map so the next build picks it up.
func (s *TournamentService) SetSeedingOverride(yearID int, code, teamCode string) error {
	err := s.overrides.SetOverride(yearID, code, teamCode)
	if err != nil {
		return err
	}
	s.cache.Invalidate(yearID)
	return nil
}

// Medalists are the podium teams of a finished tournament. Fields stay
// empty while the deciding games are open.
type Medalists struct {
	Gold   string
	Silver string
	Bronze string
}

func (s *TournamentService) Medalists(yearID int) (Medalists, error) {
	year, err := s.years.GetYear(yearID)
	if err != nil {
		return Medalists{}, err
	}
	teamMap, games, err := s.teamMap(yearID)
	if err != nil {
		return Medalists{}, err
	}
	bracket := s.bracketFor(year)
	resolver := playoff.NewResolver(teamMap, playoff.GamesByNumber(games))

	var m Medalists
	if gold := resolver.Resolve(playoff.WinnerCode(bracket.GoldGame)); domain.IsFinalCode(gold) {
		m.Gold = gold
	}
	if silver := resolver.Resolve(playoff.LoserCode(bracket.GoldGame)); domain.IsFinalCode(silver) {
		m.Silver = silver
	}
	if bronze := resolver.Resolve(playoff.WinnerCode(bracket.BronzeGame)); domain.IsFinalCode(bronze) {
		m.Bronze = bronze
	}
	return m, nil
}

// HeadToHeadStats summarizes all decided games between two teams across
// every championship year.
type HeadToHeadStats struct {
	TeamA  string
	TeamB  string
	Games  int
	WinsA  int
	WinsB  int
	GoalsA int
	GoalsB int
}

func (s *TournamentService) HeadToHead(teamA, teamB string) (HeadToHeadStats, error) {
	years, err := s.years.ListYears()
	if err != nil {
		return HeadToHeadStats{}, err
	}
	h2h := HeadToHeadStats{TeamA: teamA, TeamB: teamB}
	for _, year := range years {
		views, err := s.GamesWithResolvedTeams(year.ID)
		if err != nil {
			return HeadToHeadStats{}, err
		}
		for _, v := range views {
			if !v.HasResult() {
				continue
			}
			var scoreA, scoreB int
			switch {
			case v.Team1Resolved == teamA && v.Team2Resolved == teamB:
				scoreA, scoreB = *v.Team1Score, *v.Team2Score
			case v.Team1Resolved == teamB && v.Team2Resolved == teamA:
				scoreA, scoreB = *v.Team2Score, *v.Team1Score
			default:
				continue
			}
			h2h.Games++
			h2h.GoalsA += scoreA
			h2h.GoalsB += scoreB
			if scoreA > scoreB {
				h2h.WinsA++
			} else {
				h2h.WinsB++
			}
		}
	}
	return h2h, nil
}

// GetRatings computes Glicko-2 team ratings over all championship
// years, one rating period per year.
func (s *TournamentService) GetRatings() ([]rating.TeamRating, error) {
	years, err := s.years.ListYears()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(years, func(i, j int) bool {
		return years[i].Year < years[j].Year
	})
	periods := make([][]domain.GameView, 0, len(years))
	for _, year := range years {
		views, err := s.GamesWithResolvedTeams(year.ID)
		if err != nil {
			return nil, err
		}
		periods = append(periods, views)
	}
	return rating.Calculate(periods), nil
}

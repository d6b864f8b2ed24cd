package web

import (
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/sirupsen/logrus"

	embedded "github.com/milchgeldkassierer/iihf-stats"
	"github.com/milchgeldkassierer/iihf-stats/internal/config"
	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
	"github.com/milchgeldkassierer/iihf-stats/internal/normalize"
	"github.com/milchgeldkassierer/iihf-stats/internal/service"
	"github.com/milchgeldkassierer/iihf-stats/internal/web/webpath"
)

type Server struct {
	tournaments *service.TournamentService
	app         *fiber.App
	cfg         config.Server
	log         *logrus.Entry
}

func New(ts *service.TournamentService, cfg config.Server, log *logrus.Logger) (*Server, error) {
	server := Server{
		tournaments: ts,
		cfg:         cfg,
		log:         log.WithField("name", "web"),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)

	app := fiber.New(fiber.Config{
		Views: engine,
	})

	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Years)
	})
	app.Get(webpath.Years, server.handleYears)
	app.Get(webpath.YearStandings, server.handleStandings)
	app.Get(webpath.YearGames, server.handleGames)
	app.Get(webpath.YearBracket, server.handleBracket)
	app.Get(webpath.Ratings, server.handleRatings)

	app.Get(webpath.ApiGame, server.handleGetGame)
	app.Post(webpath.ApiScore, server.handlePostScore)
	app.Get(webpath.ApiStandings, server.handleGetStandings)
	app.Get(webpath.ApiMedalists, server.handleGetMedalists)
	app.Post(webpath.ApiOverrides, server.handlePostOverride)
	app.Get(webpath.ApiHeadToHead, server.handleHeadToHead)
	app.Get(webpath.ApiExport, server.handleExport)
	app.Post(webpath.ApiImport, server.handleImport)

	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) handleYears(ctx *fiber.Ctx) error {
	years, err := s.tournaments.ListYears()
	if err != nil {
		return err
	}
	return ctx.Render("index", fiber.Map{
		"Button": "years",
		"Title":  "Championships",
		"Years":  years,
		"Path":   webpath.Path(),
	}, "layouts/main")
}

func (s *Server) handleStandings(ctx *fiber.Ctx) error {
	yearID, err := ctx.ParamsInt("id")
	if err != nil {
		return err
	}
	year, err := s.tournaments.GetYear(yearID)
	if err != nil {
		return err
	}
	groups, err := s.tournaments.Standings(yearID)
	if err != nil {
		return err
	}
	return ctx.Render("standings", fiber.Map{
		"Button": "standings",
		"Title":  year.Name + " standings",
		"Year":   year,
		"Groups": groupTables(groups),
		"Path":   webpath.Path(),
	}, "layouts/main")
}

func (s *Server) handleGames(ctx *fiber.Ctx) error {
	yearID, err := ctx.ParamsInt("id")
	if err != nil {
		return err
	}
	year, err := s.tournaments.GetYear(yearID)
	if err != nil {
		return err
	}
	views, err := s.tournaments.GamesWithResolvedTeams(yearID)
	if err != nil {
		return err
	}
	return ctx.Render("games", fiber.Map{
		"Button": "games",
		"Title":  year.Name + " schedule",
		"Year":   year,
		"Games":  views,
		"Path":   webpath.Path(),
	}, "layouts/main")
}

func (s *Server) handleBracket(ctx *fiber.Ctx) error {
	yearID, err := ctx.ParamsInt("id")
	if err != nil {
		return err
	}
	year, err := s.tournaments.GetYear(yearID)
	if err != nil {
		return err
	}
	views, err := s.tournaments.GamesWithResolvedTeams(yearID)
	if err != nil {
		return err
	}
	playoffGames := make([]domain.GameView, 0, len(views))
	for _, v := range views {
		if v.IsPlayoff() {
			playoffGames = append(playoffGames, v)
		}
	}
	medals, err := s.tournaments.Medalists(yearID)
	if err != nil {
		return err
	}
	return ctx.Render("bracket", fiber.Map{
		"Button":    "bracket",
		"Title":     year.Name + " playoffs",
		"Year":      year,
		"Games":     playoffGames,
		"Medalists": medals,
		"Path":      webpath.Path(),
	}, "layouts/main")
}

func (s *Server) handleRatings(ctx *fiber.Ctx) error {
	ratings, err := s.tournaments.GetRatings()
	if err != nil {
		return err
	}
	return ctx.Render("ratings", fiber.Map{
		"Button":  "ratings",
		"Title":   "Team ratings",
		"Ratings": ratings,
		"Path":    webpath.Path(),
	}, "layouts/main")
}

func (s *Server) handleGetGame(ctx *fiber.Ctx) error {
	yearID, err := ctx.ParamsInt("id")
	if err != nil {
		return err
	}
	number, err := ctx.ParamsInt("number")
	if err != nil {
		return err
	}
	view, err := s.tournaments.ResolveParticipants(yearID, number)
	if err != nil {
		return err
	}
	return ctx.JSON(convertGameView(view))
}

func (s *Server) handlePostScore(ctx *fiber.Ctx) error {
	yearID, err := ctx.ParamsInt("id")
	if err != nil {
		return err
	}
	number, err := ctx.ParamsInt("number")
	if err != nil {
		return err
	}
	var body updateScore
	if err := ctx.BodyParser(&body); err != nil {
		return err
	}
	if err := body.Validate(); err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.JSON(fiber.Map{"error": err.Error()})
	}
	err = s.tournaments.UpdateScore(yearID, number, body.Team1Score, body.Team2Score, domain.ResultType(body.Result))
	if err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleGetStandings(ctx *fiber.Ctx) error {
	yearID, err := ctx.ParamsInt("id")
	if err != nil {
		return err
	}
	groups, err := s.tournaments.Standings(yearID)
	if err != nil {
		return err
	}
	return ctx.JSON(groupTables(groups))
}

func (s *Server) handleGetMedalists(ctx *fiber.Ctx) error {
	yearID, err := ctx.ParamsInt("id")
	if err != nil {
		return err
	}
	medals, err := s.tournaments.Medalists(yearID)
	if err != nil {
		return err
	}
	return ctx.JSON(medals)
}

func (s *Server) handlePostOverride(ctx *fiber.Ctx) error {
	yearID, err := ctx.ParamsInt("id")
	if err != nil {
		return err
	}
	var body setOverride
	if err := ctx.BodyParser(&body); err != nil {
		return err
	}
	if err := body.Validate(); err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.JSON(fiber.Map{"error": err.Error()})
	}
	err = s.tournaments.SetSeedingOverride(yearID, normalize.Code(body.Code), normalize.Code(body.TeamCode))
	if err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleHeadToHead(ctx *fiber.Ctx) error {
	teamA := normalize.Code(ctx.Query("a"))
	teamB := normalize.Code(ctx.Query("b"))
	if !domain.IsFinalCode(teamA) || !domain.IsFinalCode(teamB) {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.JSON(fiber.Map{"error": ErrBadTeamCode.Error()})
	}
	h2h, err := s.tournaments.HeadToHead(teamA, teamB)
	if err != nil {
		return err
	}
	return ctx.JSON(h2h)
}

func (s *Server) handleExport(ctx *fiber.Ctx) error {
	data, err := s.tournaments.Export()
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(data)
}

func (s *Server) handleImport(ctx *fiber.Ctx) error {
	err := s.tournaments.Import(ctx.Body())
	if err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return ctx.JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}

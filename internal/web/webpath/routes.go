package webpath

const (
	Home = "/"

	Years         = "/years"
	YearStandings = Years + "/:id/standings"
	YearGames     = Years + "/:id/games"
	YearBracket   = Years + "/:id/bracket"
	Ratings       = "/ratings"

	Api           = "/api"
	ApiGame       = Api + "/years/:id/games/:number"
	ApiScore      = Api + "/years/:id/games/:number/score"
	ApiStandings  = Api + "/years/:id/standings"
	ApiMedalists  = Api + "/years/:id/medalists"
	ApiOverrides  = Api + "/years/:id/overrides"
	ApiHeadToHead = Api + "/h2h"
	ApiExport     = Api + "/export"
	ApiImport     = Api + "/import"
)

func Path() map[string]string {
	return map[string]string{
		"Home":      Home,
		"Years":     Years,
		"Standings": YearStandings,
		"Games":     YearGames,
		"Bracket":   YearBracket,
		"Ratings":   Ratings,
	}
}

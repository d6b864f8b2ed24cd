package web

import (
	"sort"

	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

type groupTable struct {
	Name string            `json:"name"`
	Rows []domain.TeamStats `json:"rows"`
}

// groupTables orders the standings by group name so templates and API
// clients see a stable order.
func groupTables(groups map[string][]domain.TeamStats) []groupTable {
	tables := make([]groupTable, 0, len(groups))
	for name, rows := range groups {
		tables = append(tables, groupTable{Name: name, Rows: rows})
	}
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].Name < tables[j].Name
	})
	return tables
}

type gameResponse struct {
	Number        int    `json:"number"`
	Round         string `json:"round"`
	Team1Code     string `json:"team1Code"`
	Team2Code     string `json:"team2Code"`
	Team1Resolved string `json:"team1Resolved"`
	Team2Resolved string `json:"team2Resolved"`
	Team1Score    *int   `json:"team1Score"`
	Team2Score    *int   `json:"team2Score"`
	Result        string `json:"result"`
}

func convertGameView(v domain.GameView) gameResponse {
	return gameResponse{
		Number:        v.Number,
		Round:         v.Round,
		Team1Code:     v.Team1Code,
		Team2Code:     v.Team2Code,
		Team1Resolved: v.Team1Resolved,
		Team2Resolved: v.Team2Resolved,
		Team1Score:    v.Team1Score,
		Team2Score:    v.Team2Score,
		Result:        string(v.Result),
	}
}

package service

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

const exportVersion = 1

var ErrBadExportVersion = errors.New("invalid export file version")

type export struct {
	SnapshotID uuid.UUID
	CreatedAt  time.Time
	Version    int
	Years      []domain.ChampionshipYear
	Games      []domain.Game
}

// Export serializes every championship year and its schedule into one
// JSON snapshot, tagged with a fresh snapshot id.
func (s *TournamentService) Export() ([]byte, error) {
	years, err := s.years.ListYears()
	if err != nil {
		return nil, err
	}
	var games []domain.Game
	for _, year := range years {
		yearGames, err := s.games.ListGames(year.ID)
		if err != nil {
			return nil, err
		}
		games = append(games, yearGames...)
	}
	exportData := export{
		SnapshotID: uuid.New(),
		CreatedAt:  time.Now().UTC(),
		Version:    exportVersion,
		Years:      years,
		Games:      games,
	}
	return json.Marshal(exportData)
}

// Import loads a snapshot produced by Export.
func (s *TournamentService) Import(data []byte) error {
	var importData export
	err := json.Unmarshal(data, &importData)
	if err != nil {
		return err
	}
	if importData.Version != exportVersion {
		return ErrBadExportVersion
	}
	err = s.years.ImportYears(importData.Years)
	if err != nil {
		return err
	}
	err = s.games.ImportGames(importData.Games)
	if err != nil {
		return err
	}
	for _, year := range importData.Years {
		s.cache.Invalidate(year.ID)
	}
	s.log.WithField("snapshot", importData.SnapshotID).Info("snapshot imported")
	return nil
}

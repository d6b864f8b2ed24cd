package web

import (
	"errors"

	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
	"github.com/milchgeldkassierer/iihf-stats/internal/normalize"
)

var (
	ErrNegativeScore = errors.New("scores must not be negative")
	ErrTiedScore     = errors.New("games must have a winner")
	ErrBadResult     = errors.New("result must be REG, OT or SO")
	ErrBadTeamCode   = errors.New("team must be a 3-letter code")
	ErrEmptyCode     = errors.New("placeholder code must not be empty")
)

type updateScore struct {
	Team1Score int    `json:"team1Score"`
	Team2Score int    `json:"team2Score"`
	Result     string `json:"result"`
}

func (u updateScore) Validate() error {
	if u.Team1Score < 0 || u.Team2Score < 0 {
		return ErrNegativeScore
	}
	if u.Team1Score == u.Team2Score {
		return ErrTiedScore
	}
	switch domain.ResultType(u.Result) {
	case domain.ResultRegulation, domain.ResultOvertime, domain.ResultShootout:
		return nil
	}
	return ErrBadResult
}

type setOverride struct {
	Code     string `json:"code"`
	TeamCode string `json:"teamCode"`
}

func (o setOverride) Validate() error {
	if normalize.Code(o.Code) == "" {
		return ErrEmptyCode
	}
	if !domain.IsFinalCode(normalize.Code(o.TeamCode)) {
		return ErrBadTeamCode
	}
	return nil
}

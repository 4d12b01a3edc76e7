package web

import "github.com/HFC06Atyrau/HFC/model"

type teamRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Color string `json:"color" validate:"omitempty,oneof=red blue green black"`
}

type teamPatchRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Color *string `json:"color" validate:"omitempty,oneof=red blue green black"`
}

type playerRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	TeamID string `json:"team_id" validate:"omitempty,max=64"`
}

// A team_id of "" turns the player into a legionnaire, a missing one keeps
// the current team.
type playerPatchRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=100"`
	TeamID *string `json:"team_id" validate:"omitempty,max=64"`
}

type seasonRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type tourPatchRequest struct {
	MVPPlayerID *string `json:"mvp_player_id" validate:"omitempty,max=64"`
	VideoURL    *string `json:"video_url" validate:"omitempty,max=500"`
}

type tourTeamRequest struct {
	TeamID string `json:"team_id" validate:"required,max=64"`
	Color  string `json:"color" validate:"omitempty,oneof=red blue green black"`
}

type tourTeamPatchRequest struct {
	Color string `json:"color" validate:"required,oneof=red blue green black"`
}

type matchRequest struct {
	HomeTeamID string `json:"home_team_id" validate:"required,max=64"`
	AwayTeamID string `json:"away_team_id" validate:"required,max=64,nefield=HomeTeamID"`
}

type statRequest struct {
	PlayerID    string `json:"player_id" validate:"required,max=64"`
	Goals       int    `json:"goals" validate:"min=0,max=2"`
	OwnGoals    int    `json:"own_goals" validate:"min=0,max=2"`
	Assists     int    `json:"assists" validate:"min=0"`
	YellowCards int    `json:"yellow_cards" validate:"min=0,max=2"`
	RedCards    int    `json:"red_cards" validate:"min=0,max=1"`
}

func (s *statRequest) toModel(matchID string) *model.PlayerStat {
	return &model.PlayerStat{
		MatchID:     matchID,
		PlayerID:    s.PlayerID,
		Goals:       s.Goals,
		OwnGoals:    s.OwnGoals,
		Assists:     s.Assists,
		YellowCards: s.YellowCards,
		RedCards:    s.RedCards,
	}
}

type statUpdateRequest struct {
	Goals       int `json:"goals" validate:"min=0,max=2"`
	OwnGoals    int `json:"own_goals" validate:"min=0,max=2"`
	Assists     int `json:"assists" validate:"min=0"`
	YellowCards int `json:"yellow_cards" validate:"min=0,max=2"`
	RedCards    int `json:"red_cards" validate:"min=0,max=1"`
}

type substitutionRequest struct {
	OriginalPlayerID   string `json:"original_player_id" validate:"required,max=64"`
	SubstitutePlayerID string `json:"substitute_player_id" validate:"required,max=64,nefield=OriginalPlayerID"`
}

type dreamTeamRequest struct {
	PlayerIDs []string `json:"player_ids" validate:"max=5,unique,dive,required,max=64"`
}

type roleRequest struct {
	UserID string `json:"user_id" validate:"required,max=128"`
}

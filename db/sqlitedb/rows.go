package sqlitedb

import (
	"time"

	"github.com/HFC06Atyrau/HFC/model"
)

type teamRow struct {
	ID      string `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Color   string `gorm:"not null;default:black"`
	Created time.Time
}

func (teamRow) TableName() string { return "teams" }

func (r *teamRow) toModel() model.Team {
	return model.Team{
		ID:      r.ID,
		Name:    r.Name,
		Color:   model.ParseTeamColor(r.Color),
		Created: r.Created,
	}
}

type playerRow struct {
	ID       string `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	PhotoURL *string
	TeamID   *string  `gorm:"index"`
	Team     *teamRow `gorm:"constraint:OnDelete:SET NULL"`
	Created  time.Time
}

func (playerRow) TableName() string { return "players" }

func (r *playerRow) toModel() model.Player {
	return model.Player{
		ID:       r.ID,
		Name:     r.Name,
		PhotoURL: deref(r.PhotoURL),
		TeamID:   deref(r.TeamID),
		Created:  r.Created,
	}
}

type seasonRow struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	IsCurrent bool   `gorm:"not null;default:false;uniqueIndex:idx_seasons_single_current,where:is_current"`
	Created   time.Time
}

func (seasonRow) TableName() string { return "seasons" }

func (r *seasonRow) toModel() model.Season {
	return model.Season{
		ID:        r.ID,
		Name:      r.Name,
		IsCurrent: r.IsCurrent,
		Created:   r.Created,
	}
}

type tourRow struct {
	ID          string     `gorm:"primaryKey"`
	SeasonID    string     `gorm:"not null;uniqueIndex:idx_tours_season_number"`
	Season      *seasonRow `gorm:"constraint:OnDelete:CASCADE"`
	Number      int        `gorm:"not null;uniqueIndex:idx_tours_season_number"`
	VideoURL    *string
	MVPPlayerID *string
	MVPPlayer   *playerRow `gorm:"foreignKey:MVPPlayerID;constraint:OnDelete:SET NULL"`
	Created     time.Time
}

func (tourRow) TableName() string { return "tours" }

func (r *tourRow) toModel() model.Tour {
	return model.Tour{
		ID:          r.ID,
		SeasonID:    r.SeasonID,
		Number:      r.Number,
		VideoURL:    deref(r.VideoURL),
		MVPPlayerID: deref(r.MVPPlayerID),
		Created:     r.Created,
	}
}

type tourTeamRow struct {
	ID     string   `gorm:"primaryKey"`
	TourID string   `gorm:"not null;uniqueIndex:idx_tour_teams_tour_team"`
	Tour   *tourRow `gorm:"constraint:OnDelete:CASCADE"`
	TeamID string   `gorm:"not null;uniqueIndex:idx_tour_teams_tour_team"`
	Team   *teamRow `gorm:"constraint:OnDelete:CASCADE"`
	Color  string   `gorm:"not null;default:black"`
}

func (tourTeamRow) TableName() string { return "tour_teams" }

type matchRow struct {
	ID         string   `gorm:"primaryKey"`
	TourID     string   `gorm:"not null;index"`
	Tour       *tourRow `gorm:"constraint:OnDelete:CASCADE"`
	HomeTeamID string   `gorm:"not null"`
	HomeTeam   *teamRow `gorm:"foreignKey:HomeTeamID;constraint:OnDelete:CASCADE"`
	AwayTeamID string   `gorm:"not null"`
	AwayTeam   *teamRow `gorm:"foreignKey:AwayTeamID;constraint:OnDelete:CASCADE"`
	HomeScore  int      `gorm:"not null;default:0"`
	AwayScore  int      `gorm:"not null;default:0"`
	Created    time.Time
}

func (matchRow) TableName() string { return "matches" }

func (r *matchRow) toModel() model.Match {
	return model.Match{
		ID:         r.ID,
		TourID:     r.TourID,
		HomeTeamID: r.HomeTeamID,
		AwayTeamID: r.AwayTeamID,
		HomeScore:  r.HomeScore,
		AwayScore:  r.AwayScore,
		Created:    r.Created,
	}
}

type playerStatRow struct {
	ID          string     `gorm:"primaryKey"`
	MatchID     string     `gorm:"not null;index"`
	Match       *matchRow  `gorm:"constraint:OnDelete:CASCADE"`
	PlayerID    string     `gorm:"not null;index"`
	Player      *playerRow `gorm:"constraint:OnDelete:CASCADE"`
	Goals       int        `gorm:"not null;default:0"`
	OwnGoals    int        `gorm:"not null;default:0"`
	Assists     int        `gorm:"not null;default:0"`
	YellowCards int        `gorm:"not null;default:0"`
	RedCards    int        `gorm:"not null;default:0"`
	Created     time.Time
}

func (playerStatRow) TableName() string { return "player_stats" }

// statView is a player stat joined with its tour and player.
type statView struct {
	ID           string
	MatchID      string
	PlayerID     string
	Goals        int
	OwnGoals     int
	Assists      int
	YellowCards  int
	RedCards     int
	Created      time.Time
	TourID       string
	PlayerName   string
	PlayerTeamID *string
}

func (v *statView) toModel() model.PlayerStat {
	return model.PlayerStat{
		ID:           v.ID,
		MatchID:      v.MatchID,
		PlayerID:     v.PlayerID,
		Goals:        v.Goals,
		OwnGoals:     v.OwnGoals,
		Assists:      v.Assists,
		YellowCards:  v.YellowCards,
		RedCards:     v.RedCards,
		Created:      v.Created,
		TourID:       v.TourID,
		PlayerName:   v.PlayerName,
		PlayerTeamID: deref(v.PlayerTeamID),
	}
}

type substitutionRow struct {
	ID                 string     `gorm:"primaryKey"`
	TourID             string     `gorm:"not null;uniqueIndex:idx_substitutions_tour_original"`
	Tour               *tourRow   `gorm:"constraint:OnDelete:CASCADE"`
	OriginalPlayerID   string     `gorm:"not null;uniqueIndex:idx_substitutions_tour_original"`
	OriginalPlayer     *playerRow `gorm:"foreignKey:OriginalPlayerID;constraint:OnDelete:CASCADE"`
	SubstitutePlayerID string     `gorm:"not null"`
	SubstitutePlayer   *playerRow `gorm:"foreignKey:SubstitutePlayerID;constraint:OnDelete:CASCADE"`
	Created            time.Time
}

func (substitutionRow) TableName() string { return "tour_substitutions" }

type substitutionView struct {
	ID                 string
	TourID             string
	OriginalPlayerID   string
	SubstitutePlayerID string
	Created            time.Time
	OriginalTeamID     *string
}

func (v *substitutionView) toModel() model.TourSubstitution {
	return model.TourSubstitution{
		ID:                 v.ID,
		TourID:             v.TourID,
		OriginalPlayerID:   v.OriginalPlayerID,
		SubstitutePlayerID: v.SubstitutePlayerID,
		Created:            v.Created,
		OriginalTeamID:     deref(v.OriginalTeamID),
	}
}

type dreamTeamRow struct {
	ID       string     `gorm:"primaryKey"`
	Scope    string     `gorm:"not null;uniqueIndex:idx_dream_team_position"`
	ScopeID  string     `gorm:"not null;uniqueIndex:idx_dream_team_position"`
	TeamType string     `gorm:"not null;uniqueIndex:idx_dream_team_position"`
	Position int        `gorm:"not null;uniqueIndex:idx_dream_team_position"`
	PlayerID string     `gorm:"not null"`
	Player   *playerRow `gorm:"constraint:OnDelete:CASCADE"`
	Created  time.Time
}

func (dreamTeamRow) TableName() string { return "dream_team_entries" }

func (r *dreamTeamRow) toModel() model.DreamTeamEntry {
	return model.DreamTeamEntry{
		ID:       r.ID,
		Scope:    model.ParseDreamTeamScope(r.Scope),
		ScopeID:  r.ScopeID,
		PlayerID: r.PlayerID,
		TeamType: model.ParseDreamTeamType(r.TeamType),
		Position: model.Position(r.Position),
		Created:  r.Created,
	}
}

type roleRow struct {
	ID      string `gorm:"primaryKey"`
	UserID  string `gorm:"not null;uniqueIndex:idx_user_roles_user_role"`
	Role    string `gorm:"not null;uniqueIndex:idx_user_roles_user_role"`
	Created time.Time
}

func (roleRow) TableName() string { return "user_roles" }

func colorOrDefault(c model.TeamColor) string {
	if c == model.COLOR_UNKNOWN {
		return string(model.COLOR_BLACK)
	}
	return string(c)
}

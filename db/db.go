package db

import (
	"context"
	"errors"

	"github.com/HFC06Atyrau/HFC/model"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// MatchFilter narrows ListMatches. Empty fields are ignored, so the zero value
// lists every match.
type MatchFilter struct {
	TourID   string
	SeasonID string
}

// StatFilter narrows ListPlayerStats. Empty fields are ignored.
type StatFilter struct {
	MatchID  string
	TourID   string
	SeasonID string
	PlayerID string
}

type DB interface {
	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id string) (*model.Team, error)
	// Adds the team, setting its ID and Created fields.
	AddTeam(ctx context.Context, t *model.Team) error
	UpdateTeam(ctx context.Context, t *model.Team) error
	DeleteTeam(ctx context.Context, id string) error

	ListPlayers(ctx context.Context) ([]model.Player, error)
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	AddPlayer(ctx context.Context, p *model.Player) error
	// Saves the name, team and photo of the player.
	UpdatePlayer(ctx context.Context, p *model.Player) error
	DeletePlayer(ctx context.Context, id string) error

	// Lists all seasons, newest first.
	ListSeasons(ctx context.Context) ([]model.Season, error)
	GetSeason(ctx context.Context, id string) (*model.Season, error)
	// Returns ErrNotFound if no season is current.
	GetCurrentSeason(ctx context.Context) (*model.Season, error)
	// Adds the season. If s.IsCurrent is set the previous current season is
	// cleared in the same transaction.
	AddSeason(ctx context.Context, s *model.Season) error
	RenameSeason(ctx context.Context, id, name string) error
	// Atomically moves the current flag to the season with the given id.
	SetCurrentSeason(ctx context.Context, id string) error
	DeleteSeason(ctx context.Context, id string) error

	// Lists the tours of a season, or all tours if seasonID is empty. The
	// highest numbered tour is returned first.
	ListTours(ctx context.Context, seasonID string) ([]model.Tour, error)
	GetTour(ctx context.Context, id string) (*model.Tour, error)
	// Creates the next tour in the season, numbered one past the highest
	// existing number.
	AddTour(ctx context.Context, seasonID string) (*model.Tour, error)
	// Saves the video and MVP of the tour.
	UpdateTour(ctx context.Context, t *model.Tour) error
	DeleteTour(ctx context.Context, id string) error

	ListTourTeams(ctx context.Context, tourID string) ([]model.TourTeam, error)
	AddTourTeam(ctx context.Context, tt *model.TourTeam) error
	UpdateTourTeamColor(ctx context.Context, id string, color model.TeamColor) error
	DeleteTourTeam(ctx context.Context, id string) error

	ListMatches(ctx context.Context, f MatchFilter) ([]model.Match, error)
	GetMatch(ctx context.Context, id string) (*model.Match, error)
	AddMatch(ctx context.Context, m *model.Match) error
	UpdateMatchScore(ctx context.Context, id string, home, away int) error
	DeleteMatch(ctx context.Context, id string) error

	// Stats are always returned with the tour id, player name and player team
	// filled in.
	ListPlayerStats(ctx context.Context, f StatFilter) ([]model.PlayerStat, error)
	GetPlayerStat(ctx context.Context, id string) (*model.PlayerStat, error)
	AddPlayerStat(ctx context.Context, s *model.PlayerStat) error
	UpdatePlayerStat(ctx context.Context, s *model.PlayerStat) error
	DeletePlayerStat(ctx context.Context, id string) error

	// Lists substitutions for a tour, or all of them if tourID is empty, with
	// the original player's team filled in. Returns ErrDuplicate when adding a
	// second substitution for the same original player in a tour.
	ListSubstitutions(ctx context.Context, tourID string) ([]model.TourSubstitution, error)
	GetSubstitution(ctx context.Context, id string) (*model.TourSubstitution, error)
	AddSubstitution(ctx context.Context, s *model.TourSubstitution) error
	DeleteSubstitution(ctx context.Context, id string) error

	// Lists the lineup ordered by position.
	ListDreamTeam(ctx context.Context, scope model.DreamTeamScope, scopeID string, teamType model.DreamTeamType) ([]model.DreamTeamEntry, error)
	// Lists every tour scoped entry for tours in the season, or for all tours
	// if seasonID is empty.
	ListTourDreamTeams(ctx context.Context, seasonID string) ([]model.DreamTeamEntry, error)
	// Replaces the lineup. Positions are assigned in playerIDs order starting at 1.
	SetDreamTeam(ctx context.Context, scope model.DreamTeamScope, scopeID string, teamType model.DreamTeamType, playerIDs []string) error

	ListRoles(ctx context.Context) ([]model.UserRole, error)
	GetUserRoles(ctx context.Context, userID string) ([]model.Role, error)
	AddRole(ctx context.Context, userID string, role model.Role) error
	DeleteRole(ctx context.Context, userID string, role model.Role) error
}

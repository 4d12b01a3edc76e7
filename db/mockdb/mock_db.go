package mockdb

import (
	"context"

	"github.com/HFC06Atyrau/HFC/db"
	"github.com/HFC06Atyrau/HFC/model"
	"github.com/stretchr/testify/mock"
)

var _ db.DB = (*DB)(nil)

type DB struct {
	mock.Mock
}

func (db *DB) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := db.Called(ctx)
	return slice[model.Team](args), args.Error(1)
}

func (db *DB) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	args := db.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) AddTeam(ctx context.Context, t *model.Team) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) UpdateTeam(ctx context.Context, t *model.Team) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) DeleteTeam(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := db.Called(ctx)
	return slice[model.Player](args), args.Error(1)
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) AddPlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) UpdatePlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) DeletePlayer(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListSeasons(ctx context.Context) ([]model.Season, error) {
	args := db.Called(ctx)
	return slice[model.Season](args), args.Error(1)
}

func (db *DB) GetSeason(ctx context.Context, id string) (*model.Season, error) {
	args := db.Called(ctx, id)

	var s *model.Season
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Season)
	}
	return s, args.Error(1)
}

func (db *DB) GetCurrentSeason(ctx context.Context) (*model.Season, error) {
	args := db.Called(ctx)

	var s *model.Season
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Season)
	}
	return s, args.Error(1)
}

func (db *DB) AddSeason(ctx context.Context, s *model.Season) error {
	args := db.Called(ctx, s)
	return args.Error(0)
}

func (db *DB) RenameSeason(ctx context.Context, id, name string) error {
	args := db.Called(ctx, id, name)
	return args.Error(0)
}

func (db *DB) SetCurrentSeason(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) DeleteSeason(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListTours(ctx context.Context, seasonID string) ([]model.Tour, error) {
	args := db.Called(ctx, seasonID)
	return slice[model.Tour](args), args.Error(1)
}

func (db *DB) GetTour(ctx context.Context, id string) (*model.Tour, error) {
	args := db.Called(ctx, id)

	var t *model.Tour
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Tour)
	}
	return t, args.Error(1)
}

func (db *DB) AddTour(ctx context.Context, seasonID string) (*model.Tour, error) {
	args := db.Called(ctx, seasonID)

	var t *model.Tour
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Tour)
	}
	return t, args.Error(1)
}

func (db *DB) UpdateTour(ctx context.Context, t *model.Tour) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) DeleteTour(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListTourTeams(ctx context.Context, tourID string) ([]model.TourTeam, error) {
	args := db.Called(ctx, tourID)
	return slice[model.TourTeam](args), args.Error(1)
}

func (db *DB) AddTourTeam(ctx context.Context, tt *model.TourTeam) error {
	args := db.Called(ctx, tt)
	return args.Error(0)
}

func (db *DB) UpdateTourTeamColor(ctx context.Context, id string, color model.TeamColor) error {
	args := db.Called(ctx, id, color)
	return args.Error(0)
}

func (db *DB) DeleteTourTeam(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListMatches(ctx context.Context, f db.MatchFilter) ([]model.Match, error) {
	args := db.Called(ctx, f)
	return slice[model.Match](args), args.Error(1)
}

func (db *DB) GetMatch(ctx context.Context, id string) (*model.Match, error) {
	args := db.Called(ctx, id)

	var m *model.Match
	if args.Get(0) != nil {
		m = args.Get(0).(*model.Match)
	}
	return m, args.Error(1)
}

func (db *DB) AddMatch(ctx context.Context, m *model.Match) error {
	args := db.Called(ctx, m)
	return args.Error(0)
}

func (db *DB) UpdateMatchScore(ctx context.Context, id string, home, away int) error {
	args := db.Called(ctx, id, home, away)
	return args.Error(0)
}

func (db *DB) DeleteMatch(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListPlayerStats(ctx context.Context, f db.StatFilter) ([]model.PlayerStat, error) {
	args := db.Called(ctx, f)
	return slice[model.PlayerStat](args), args.Error(1)
}

func (db *DB) GetPlayerStat(ctx context.Context, id string) (*model.PlayerStat, error) {
	args := db.Called(ctx, id)

	var s *model.PlayerStat
	if args.Get(0) != nil {
		s = args.Get(0).(*model.PlayerStat)
	}
	return s, args.Error(1)
}

func (db *DB) AddPlayerStat(ctx context.Context, s *model.PlayerStat) error {
	args := db.Called(ctx, s)
	return args.Error(0)
}

func (db *DB) UpdatePlayerStat(ctx context.Context, s *model.PlayerStat) error {
	args := db.Called(ctx, s)
	return args.Error(0)
}

func (db *DB) DeletePlayerStat(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListSubstitutions(ctx context.Context, tourID string) ([]model.TourSubstitution, error) {
	args := db.Called(ctx, tourID)
	return slice[model.TourSubstitution](args), args.Error(1)
}

func (db *DB) GetSubstitution(ctx context.Context, id string) (*model.TourSubstitution, error) {
	args := db.Called(ctx, id)

	var s *model.TourSubstitution
	if args.Get(0) != nil {
		s = args.Get(0).(*model.TourSubstitution)
	}
	return s, args.Error(1)
}

func (db *DB) AddSubstitution(ctx context.Context, s *model.TourSubstitution) error {
	args := db.Called(ctx, s)
	return args.Error(0)
}

func (db *DB) DeleteSubstitution(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListDreamTeam(ctx context.Context, scope model.DreamTeamScope, scopeID string, teamType model.DreamTeamType) ([]model.DreamTeamEntry, error) {
	args := db.Called(ctx, scope, scopeID, teamType)
	return slice[model.DreamTeamEntry](args), args.Error(1)
}

func (db *DB) ListTourDreamTeams(ctx context.Context, seasonID string) ([]model.DreamTeamEntry, error) {
	args := db.Called(ctx, seasonID)
	return slice[model.DreamTeamEntry](args), args.Error(1)
}

func (db *DB) SetDreamTeam(ctx context.Context, scope model.DreamTeamScope, scopeID string, teamType model.DreamTeamType, playerIDs []string) error {
	args := db.Called(ctx, scope, scopeID, teamType, playerIDs)
	return args.Error(0)
}

func (db *DB) ListRoles(ctx context.Context) ([]model.UserRole, error) {
	args := db.Called(ctx)
	return slice[model.UserRole](args), args.Error(1)
}

func (db *DB) GetUserRoles(ctx context.Context, userID string) ([]model.Role, error) {
	args := db.Called(ctx, userID)
	return slice[model.Role](args), args.Error(1)
}

func (db *DB) AddRole(ctx context.Context, userID string, role model.Role) error {
	args := db.Called(ctx, userID, role)
	return args.Error(0)
}

func (db *DB) DeleteRole(ctx context.Context, userID string, role model.Role) error {
	args := db.Called(ctx, userID, role)
	return args.Error(0)
}

func slice[T any](args mock.Arguments) []T {
	var r []T
	if args.Get(0) != nil {
		r = args.Get(0).([]T)
	}
	return r
}

package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/HFC06Atyrau/HFC/controller"
	"github.com/HFC06Atyrau/HFC/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

var _ controller.C = (*C)(nil)

func ptr[T any](args mock.Arguments) *T {
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*T)
}

func slice[T any](args mock.Arguments) []T {
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]T)
}

func (c *C) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := c.Called(ctx)
	return slice[model.Team](args), args.Error(1)
}

func (c *C) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	args := c.Called(ctx, id)
	return ptr[model.Team](args), args.Error(1)
}

func (c *C) CreateTeam(ctx context.Context, name string, color model.TeamColor) (*model.Team, error) {
	args := c.Called(ctx, name, color)
	return ptr[model.Team](args), args.Error(1)
}

func (c *C) UpdateTeam(ctx context.Context, t *model.Team) error {
	args := c.Called(ctx, t)
	return args.Error(0)
}

func (c *C) DeleteTeam(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := c.Called(ctx)
	return slice[model.Player](args), args.Error(1)
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)
	return ptr[model.Player](args), args.Error(1)
}

func (c *C) CreatePlayer(ctx context.Context, name, teamID string) (*model.Player, error) {
	args := c.Called(ctx, name, teamID)
	return ptr[model.Player](args), args.Error(1)
}

func (c *C) UpdatePlayer(ctx context.Context, p *model.Player) error {
	args := c.Called(ctx, p)
	return args.Error(0)
}

func (c *C) DeletePlayer(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) UploadPlayerPhoto(ctx context.Context, playerID, contentType string, data []byte) (*model.Player, error) {
	args := c.Called(ctx, playerID, contentType, data)
	return ptr[model.Player](args), args.Error(1)
}

func (c *C) DeletePlayerPhoto(ctx context.Context, playerID string) error {
	args := c.Called(ctx, playerID)
	return args.Error(0)
}

func (c *C) ListSeasons(ctx context.Context) ([]model.Season, error) {
	args := c.Called(ctx)
	return slice[model.Season](args), args.Error(1)
}

func (c *C) GetSeason(ctx context.Context, id string) (*model.Season, error) {
	args := c.Called(ctx, id)
	return ptr[model.Season](args), args.Error(1)
}

func (c *C) CurrentSeason(ctx context.Context) (*model.Season, error) {
	args := c.Called(ctx)
	return ptr[model.Season](args), args.Error(1)
}

func (c *C) CreateSeason(ctx context.Context, name string) (*model.Season, error) {
	args := c.Called(ctx, name)
	return ptr[model.Season](args), args.Error(1)
}

func (c *C) RenameSeason(ctx context.Context, id, name string) error {
	args := c.Called(ctx, id, name)
	return args.Error(0)
}

func (c *C) SetCurrentSeason(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) DeleteSeason(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ListTours(ctx context.Context, seasonID string) ([]model.Tour, error) {
	args := c.Called(ctx, seasonID)
	return slice[model.Tour](args), args.Error(1)
}

func (c *C) GetTour(ctx context.Context, id string) (*model.Tour, error) {
	args := c.Called(ctx, id)
	return ptr[model.Tour](args), args.Error(1)
}

func (c *C) CurrentTour(ctx context.Context) (*model.Tour, error) {
	args := c.Called(ctx)
	return ptr[model.Tour](args), args.Error(1)
}

func (c *C) CreateTour(ctx context.Context, seasonID string) (*model.Tour, error) {
	args := c.Called(ctx, seasonID)
	return ptr[model.Tour](args), args.Error(1)
}

func (c *C) SetTourMVP(ctx context.Context, tourID, playerID string) error {
	args := c.Called(ctx, tourID, playerID)
	return args.Error(0)
}

func (c *C) SetTourVideo(ctx context.Context, tourID, videoURL string) error {
	args := c.Called(ctx, tourID, videoURL)
	return args.Error(0)
}

func (c *C) DeleteTour(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ListTourTeams(ctx context.Context, tourID string) ([]model.TourTeam, error) {
	args := c.Called(ctx, tourID)
	return slice[model.TourTeam](args), args.Error(1)
}

func (c *C) AddTourTeam(ctx context.Context, tourID, teamID string, color model.TeamColor) (*model.TourTeam, error) {
	args := c.Called(ctx, tourID, teamID, color)
	return ptr[model.TourTeam](args), args.Error(1)
}

func (c *C) SetTourTeamColor(ctx context.Context, id string, color model.TeamColor) error {
	args := c.Called(ctx, id, color)
	return args.Error(0)
}

func (c *C) RemoveTourTeam(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ListMatches(ctx context.Context, tourID, seasonID string) ([]model.Match, error) {
	args := c.Called(ctx, tourID, seasonID)
	return slice[model.Match](args), args.Error(1)
}

func (c *C) GetMatch(ctx context.Context, id string) (*model.Match, error) {
	args := c.Called(ctx, id)
	return ptr[model.Match](args), args.Error(1)
}

func (c *C) CreateMatch(ctx context.Context, tourID, homeTeamID, awayTeamID string) (*model.Match, error) {
	args := c.Called(ctx, tourID, homeTeamID, awayTeamID)
	return ptr[model.Match](args), args.Error(1)
}

func (c *C) DeleteMatch(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ListMatchStats(ctx context.Context, matchID string) ([]model.PlayerStat, error) {
	args := c.Called(ctx, matchID)
	return slice[model.PlayerStat](args), args.Error(1)
}

func (c *C) AddPlayerStat(ctx context.Context, s *model.PlayerStat) error {
	args := c.Called(ctx, s)
	return args.Error(0)
}

func (c *C) UpdatePlayerStat(ctx context.Context, s *model.PlayerStat) error {
	args := c.Called(ctx, s)
	return args.Error(0)
}

func (c *C) DeletePlayerStat(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ListSubstitutions(ctx context.Context, tourID string) ([]model.TourSubstitution, error) {
	args := c.Called(ctx, tourID)
	return slice[model.TourSubstitution](args), args.Error(1)
}

func (c *C) AddSubstitution(ctx context.Context, tourID, originalPlayerID, substitutePlayerID string) (*model.TourSubstitution, error) {
	args := c.Called(ctx, tourID, originalPlayerID, substitutePlayerID)
	return ptr[model.TourSubstitution](args), args.Error(1)
}

func (c *C) DeleteSubstitution(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) GetDreamTeam(ctx context.Context, scope model.DreamTeamScope, scopeID string, teamType model.DreamTeamType) ([]model.DreamTeamEntry, error) {
	args := c.Called(ctx, scope, scopeID, teamType)
	return slice[model.DreamTeamEntry](args), args.Error(1)
}

func (c *C) SetDreamTeam(ctx context.Context, scope model.DreamTeamScope, scopeID string, teamType model.DreamTeamType, playerIDs []string) error {
	args := c.Called(ctx, scope, scopeID, teamType, playerIDs)
	return args.Error(0)
}

func (c *C) TourStandings(ctx context.Context, tourID string) ([]model.TeamStanding, error) {
	args := c.Called(ctx, tourID)
	return slice[model.TeamStanding](args), args.Error(1)
}

func (c *C) SeasonStandings(ctx context.Context, seasonID string) ([]model.TeamStanding, error) {
	args := c.Called(ctx, seasonID)
	return slice[model.TeamStanding](args), args.Error(1)
}

func (c *C) Leaderboard(ctx context.Context, seasonID string, sortBy model.SortColumn) ([]model.PlayerTotals, error) {
	args := c.Called(ctx, seasonID, sortBy)
	return slice[model.PlayerTotals](args), args.Error(1)
}

func (c *C) TourPlayerStats(ctx context.Context, tourID string) ([]model.PlayerStat, error) {
	args := c.Called(ctx, tourID)
	return slice[model.PlayerStat](args), args.Error(1)
}

func (c *C) PlayerProfile(ctx context.Context, playerID string) (*model.PlayerProfile, error) {
	args := c.Called(ctx, playerID)
	return ptr[model.PlayerProfile](args), args.Error(1)
}

func (c *C) RecomputeMatchScore(ctx context.Context, matchID string) (*model.Match, error) {
	args := c.Called(ctx, matchID)
	return ptr[model.Match](args), args.Error(1)
}

func (c *C) RecomputeSeasonScores(ctx context.Context, seasonID string) (int, error) {
	args := c.Called(ctx, seasonID)
	return args.Int(0), args.Error(1)
}

func (c *C) RunPeriodicScoreRecompute(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) ListRoles(ctx context.Context) ([]model.UserRole, error) {
	args := c.Called(ctx)
	return slice[model.UserRole](args), args.Error(1)
}

func (c *C) IsAdmin(ctx context.Context, userID string) (bool, error) {
	args := c.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (c *C) IsOwner(ctx context.Context, userID string) (bool, error) {
	args := c.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (c *C) AssignAdmin(ctx context.Context, userID string) error {
	args := c.Called(ctx, userID)
	return args.Error(0)
}

func (c *C) RevokeAdmin(ctx context.Context, userID string) error {
	args := c.Called(ctx, userID)
	return args.Error(0)
}

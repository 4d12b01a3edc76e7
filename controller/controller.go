package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/HFC06Atyrau/HFC/db"
	"github.com/HFC06Atyrau/HFC/model"
	"github.com/HFC06Atyrau/HFC/storage"
	"github.com/itbasis/go-clock"
)

var (
	// ErrInvalid is returned when a request breaks a league rule. Errors
	// wrapping it carry the reason.
	ErrInvalid         = errors.New("invalid request")
	ErrStorageDisabled = errors.New("photo storage is not configured")
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id string) (*model.Team, error)
	CreateTeam(ctx context.Context, name string, color model.TeamColor) (*model.Team, error)
	UpdateTeam(ctx context.Context, t *model.Team) error
	// Deletes the team with its matches. Its players become legionnaires.
	DeleteTeam(ctx context.Context, id string) error

	ListPlayers(ctx context.Context) ([]model.Player, error)
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	// Creates a player, teamID may be empty for a legionnaire.
	CreatePlayer(ctx context.Context, name, teamID string) (*model.Player, error)
	// Saves the name and team of the player. Scores of matches the player
	// has stats in are recomputed if the team changed.
	UpdatePlayer(ctx context.Context, p *model.Player) error
	DeletePlayer(ctx context.Context, id string) error
	// Stores the photo and points the player at it, removing the old photo.
	UploadPlayerPhoto(ctx context.Context, playerID, contentType string, data []byte) (*model.Player, error)
	DeletePlayerPhoto(ctx context.Context, playerID string) error

	ListSeasons(ctx context.Context) ([]model.Season, error)
	GetSeason(ctx context.Context, id string) (*model.Season, error)
	CurrentSeason(ctx context.Context) (*model.Season, error)
	// New seasons always become the current season.
	CreateSeason(ctx context.Context, name string) (*model.Season, error)
	RenameSeason(ctx context.Context, id, name string) error
	SetCurrentSeason(ctx context.Context, id string) error
	DeleteSeason(ctx context.Context, id string) error

	ListTours(ctx context.Context, seasonID string) ([]model.Tour, error)
	GetTour(ctx context.Context, id string) (*model.Tour, error)
	// The highest numbered tour of the current season.
	CurrentTour(ctx context.Context) (*model.Tour, error)
	CreateTour(ctx context.Context, seasonID string) (*model.Tour, error)
	// Sets the MVP of the tour, an empty playerID clears it.
	SetTourMVP(ctx context.Context, tourID, playerID string) error
	SetTourVideo(ctx context.Context, tourID, videoURL string) error
	DeleteTour(ctx context.Context, id string) error

	ListTourTeams(ctx context.Context, tourID string) ([]model.TourTeam, error)
	AddTourTeam(ctx context.Context, tourID, teamID string, color model.TeamColor) (*model.TourTeam, error)
	SetTourTeamColor(ctx context.Context, id string, color model.TeamColor) error
	RemoveTourTeam(ctx context.Context, id string) error

	// Lists matches of a tour or a season. Both empty lists every match.
	ListMatches(ctx context.Context, tourID, seasonID string) ([]model.Match, error)
	GetMatch(ctx context.Context, id string) (*model.Match, error)
	CreateMatch(ctx context.Context, tourID, homeTeamID, awayTeamID string) (*model.Match, error)
	DeleteMatch(ctx context.Context, id string) error

	ListMatchStats(ctx context.Context, matchID string) ([]model.PlayerStat, error)
	// Stat mutations recompute the match score before returning.
	AddPlayerStat(ctx context.Context, s *model.PlayerStat) error
	UpdatePlayerStat(ctx context.Context, s *model.PlayerStat) error
	DeletePlayerStat(ctx context.Context, id string) error

	ListSubstitutions(ctx context.Context, tourID string) ([]model.TourSubstitution, error)
	AddSubstitution(ctx context.Context, tourID, originalPlayerID, substitutePlayerID string) (*model.TourSubstitution, error)
	DeleteSubstitution(ctx context.Context, id string) error

	GetDreamTeam(ctx context.Context, scope model.DreamTeamScope, scopeID string, teamType model.DreamTeamType) ([]model.DreamTeamEntry, error)
	// Replaces the lineup, players are assigned positions in the given order.
	SetDreamTeam(ctx context.Context, scope model.DreamTeamScope, scopeID string, teamType model.DreamTeamType, playerIDs []string) error

	TourStandings(ctx context.Context, tourID string) ([]model.TeamStanding, error)
	SeasonStandings(ctx context.Context, seasonID string) ([]model.TeamStanding, error)
	// Player totals for the season, or for every season if seasonID is empty.
	Leaderboard(ctx context.Context, seasonID string, sortBy model.SortColumn) ([]model.PlayerTotals, error)
	TourPlayerStats(ctx context.Context, tourID string) ([]model.PlayerStat, error)
	PlayerProfile(ctx context.Context, playerID string) (*model.PlayerProfile, error)

	// Derives the score of the match from its stat rows and saves it.
	RecomputeMatchScore(ctx context.Context, matchID string) (*model.Match, error)
	// Recomputes every match of the season and returns how many scores changed.
	RecomputeSeasonScores(ctx context.Context, seasonID string) (int, error)
	RunPeriodicScoreRecompute(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	ListRoles(ctx context.Context) ([]model.UserRole, error)
	// Owners are admins too.
	IsAdmin(ctx context.Context, userID string) (bool, error)
	IsOwner(ctx context.Context, userID string) (bool, error)
	AssignAdmin(ctx context.Context, userID string) error
	RevokeAdmin(ctx context.Context, userID string) error
}

type controller struct {
	clock   clock.Clock
	db      db.DB
	storage storage.Client

	matchLocks *keyedMutex
}

// New creates the controller. storage may be nil, in which case photo
// uploads fail with ErrStorageDisabled.
func New(clock clock.Clock, db db.DB, storage storage.Client) (C, error) {
	c := &controller{
		clock:      clock,
		db:         db,
		storage:    storage,
		matchLocks: newKeyedMutex(),
	}
	return c, nil
}

// keyedMutex hands out one lock per key and forgets keys nobody holds.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refLock)}
}

// Lock blocks until key is free and returns the function that releases it.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l, found := k.locks[key]
	if !found {
		l = &refLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}

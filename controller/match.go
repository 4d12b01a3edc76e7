package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HFC06Atyrau/HFC/db"
	"github.com/HFC06Atyrau/HFC/model"
	"github.com/HFC06Atyrau/HFC/stats"
	"github.com/panjf2000/ants/v2"
)

const recomputeWorkers = 4

func (c *controller) ListMatches(ctx context.Context, tourID, seasonID string) ([]model.Match, error) {
	return c.db.ListMatches(ctx, db.MatchFilter{TourID: tourID, SeasonID: seasonID})
}

func (c *controller) GetMatch(ctx context.Context, id string) (*model.Match, error) {
	return c.db.GetMatch(ctx, id)
}

func (c *controller) CreateMatch(ctx context.Context, tourID, homeTeamID, awayTeamID string) (*model.Match, error) {
	if homeTeamID == "" || awayTeamID == "" {
		return nil, fmt.Errorf("%w: both teams are required", ErrInvalid)
	}
	if homeTeamID == awayTeamID {
		return nil, fmt.Errorf("%w: a team can't play itself", ErrInvalid)
	}

	m := &model.Match{TourID: tourID, HomeTeamID: homeTeamID, AwayTeamID: awayTeamID}
	if err := c.db.AddMatch(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *controller) DeleteMatch(ctx context.Context, id string) error {
	unlock := c.matchLocks.Lock(id)
	defer unlock()
	return c.db.DeleteMatch(ctx, id)
}

func (c *controller) ListMatchStats(ctx context.Context, matchID string) ([]model.PlayerStat, error) {
	return c.db.ListPlayerStats(ctx, db.StatFilter{MatchID: matchID})
}

func (c *controller) AddPlayerStat(ctx context.Context, s *model.PlayerStat) error {
	if err := validateStat(s); err != nil {
		return err
	}

	unlock := c.matchLocks.Lock(s.MatchID)
	defer unlock()

	if err := c.db.AddPlayerStat(ctx, s); err != nil {
		return err
	}
	_, err := c.recomputeLocked(ctx, s.MatchID)
	return err
}

func (c *controller) UpdatePlayerStat(ctx context.Context, s *model.PlayerStat) error {
	if err := validateStat(s); err != nil {
		return err
	}

	existing, err := c.db.GetPlayerStat(ctx, s.ID)
	if err != nil {
		return err
	}

	unlock := c.matchLocks.Lock(existing.MatchID)
	defer unlock()

	if err := c.db.UpdatePlayerStat(ctx, s); err != nil {
		return err
	}
	s.MatchID = existing.MatchID
	s.PlayerID = existing.PlayerID
	_, err = c.recomputeLocked(ctx, existing.MatchID)
	return err
}

func (c *controller) DeletePlayerStat(ctx context.Context, id string) error {
	existing, err := c.db.GetPlayerStat(ctx, id)
	if err != nil {
		return err
	}

	unlock := c.matchLocks.Lock(existing.MatchID)
	defer unlock()

	if err := c.db.DeletePlayerStat(ctx, id); err != nil {
		return err
	}
	_, err = c.recomputeLocked(ctx, existing.MatchID)
	return err
}

func validateStat(s *model.PlayerStat) error {
	switch {
	case s.Goals < 0 || s.Goals > model.MaxGoals:
		return fmt.Errorf("%w: goals must be between 0 and %d", ErrInvalid, model.MaxGoals)
	case s.OwnGoals < 0 || s.OwnGoals > model.MaxOwnGoals:
		return fmt.Errorf("%w: own goals must be between 0 and %d", ErrInvalid, model.MaxOwnGoals)
	case s.Assists < 0:
		return fmt.Errorf("%w: assists can't be negative", ErrInvalid)
	case s.YellowCards < 0 || s.YellowCards > model.MaxYellowCards:
		return fmt.Errorf("%w: yellow cards must be between 0 and %d", ErrInvalid, model.MaxYellowCards)
	case s.RedCards < 0 || s.RedCards > model.MaxRedCards:
		return fmt.Errorf("%w: red cards must be between 0 and %d", ErrInvalid, model.MaxRedCards)
	}
	return nil
}

func (c *controller) ListSubstitutions(ctx context.Context, tourID string) ([]model.TourSubstitution, error) {
	return c.db.ListSubstitutions(ctx, tourID)
}

func (c *controller) AddSubstitution(ctx context.Context, tourID, originalPlayerID, substitutePlayerID string) (*model.TourSubstitution, error) {
	if originalPlayerID == "" || substitutePlayerID == "" {
		return nil, fmt.Errorf("%w: both players are required", ErrInvalid)
	}
	if originalPlayerID == substitutePlayerID {
		return nil, fmt.Errorf("%w: a player can't substitute themselves", ErrInvalid)
	}

	s := &model.TourSubstitution{
		TourID:             tourID,
		OriginalPlayerID:   originalPlayerID,
		SubstitutePlayerID: substitutePlayerID,
	}
	if err := c.db.AddSubstitution(ctx, s); err != nil {
		return nil, err
	}

	if original, err := c.db.GetPlayer(ctx, originalPlayerID); err == nil {
		s.OriginalTeamID = original.TeamID
	}
	if err := c.recomputeTour(ctx, tourID); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *controller) DeleteSubstitution(ctx context.Context, id string) error {
	s, err := c.db.GetSubstitution(ctx, id)
	if err != nil {
		return err
	}
	if err := c.db.DeleteSubstitution(ctx, id); err != nil {
		return err
	}
	return c.recomputeTour(ctx, s.TourID)
}

func (c *controller) RecomputeMatchScore(ctx context.Context, matchID string) (*model.Match, error) {
	unlock := c.matchLocks.Lock(matchID)
	defer unlock()
	return c.recomputeLocked(ctx, matchID)
}

// recomputeLocked derives the score from the stat rows and saves it when it
// differs. The caller must hold the lock for matchID.
func (c *controller) recomputeLocked(ctx context.Context, matchID string) (*model.Match, error) {
	m, err := c.db.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if _, err := c.db.GetTeam(ctx, m.HomeTeamID); err != nil {
		return nil, fmt.Errorf("error resolving home team of match %s: %w", m.ID, err)
	}
	if _, err := c.db.GetTeam(ctx, m.AwayTeamID); err != nil {
		return nil, fmt.Errorf("error resolving away team of match %s: %w", m.ID, err)
	}
	rows, err := c.db.ListPlayerStats(ctx, db.StatFilter{MatchID: matchID})
	if err != nil {
		return nil, err
	}
	subs, err := c.db.ListSubstitutions(ctx, m.TourID)
	if err != nil {
		return nil, err
	}

	score := stats.CalculateScore(m, rows, stats.NewResolver(nil, subs))
	for _, r := range score.Rows {
		if !r.Counted() {
			log.Printf("match %s: stat %s of player %s could not be attributed to a team", m.ID, r.StatID, r.PlayerID)
		}
	}

	if score.Home == m.HomeScore && score.Away == m.AwayScore {
		return m, nil
	}
	if err := c.db.UpdateMatchScore(ctx, m.ID, score.Home, score.Away); err != nil {
		return nil, fmt.Errorf("error saving score of match %s: %w", m.ID, err)
	}
	m.HomeScore = score.Home
	m.AwayScore = score.Away
	return m, nil
}

func (c *controller) recomputeTour(ctx context.Context, tourID string) error {
	matches, err := c.db.ListMatches(ctx, db.MatchFilter{TourID: tourID})
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	return c.recomputeMatches(ctx, ids)
}

// recomputeMatches recomputes each match, skipping ones deleted meanwhile.
func (c *controller) recomputeMatches(ctx context.Context, matchIDs []string) error {
	for _, id := range matchIDs {
		if _, err := c.RecomputeMatchScore(ctx, id); err != nil && !errors.Is(err, db.ErrNotFound) {
			return err
		}
	}
	return nil
}

// RecomputeSeasonScores spreads the matches over a small worker pool. Each
// match still takes its own lock, so this is safe alongside stat edits.
func (c *controller) RecomputeSeasonScores(ctx context.Context, seasonID string) (int, error) {
	matches, err := c.db.ListMatches(ctx, db.MatchFilter{SeasonID: seasonID})
	if err != nil {
		return 0, err
	}

	pool, err := ants.NewPool(recomputeWorkers)
	if err != nil {
		return 0, fmt.Errorf("error creating worker pool: %w", err)
	}
	defer pool.Release()

	var (
		changed atomic.Int32
		mu      sync.Mutex
		errs    []error
		workers sync.WaitGroup
	)
	for _, before := range matches {
		before := before
		workers.Add(1)
		err := pool.Submit(func() {
			defer workers.Done()

			after, err := c.RecomputeMatchScore(ctx, before.ID)
			if errors.Is(err, db.ErrNotFound) {
				return
			}
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return
			}
			if after.HomeScore != before.HomeScore || after.AwayScore != before.AwayScore {
				changed.Add(1)
			}
		})
		if err != nil {
			workers.Done()
			workers.Wait()
			return int(changed.Load()), fmt.Errorf("error submitting recompute of match %s: %w", before.ID, err)
		}
	}

	workers.Wait()
	return int(changed.Load()), errors.Join(errs...)
}

func (c *controller) recomputeCurrentSeason(ctx context.Context) error {
	start := c.clock.Now()
	season, err := c.db.GetCurrentSeason(ctx)
	if errors.Is(err, db.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	log.Printf("score recompute for season %s starting", season.Name)
	changed, err := c.RecomputeSeasonScores(ctx, season.ID)
	log.Printf("score recompute finished, %d scores changed, took %v", changed, c.clock.Now().Sub(start))
	return err
}

func (c *controller) RunPeriodicScoreRecompute(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer ticker.Stop()
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			if err := c.recomputeCurrentSeason(ctx); err != nil {
				log.Printf("%v", err)
			}
			cancel()
		}
	}
}

package model

import "strings"

// SortColumn selects the primary key of a leaderboard ordering.
type SortColumn string

const (
	SORT_POINTS       SortColumn = "points" // goals + assists
	SORT_GOALS        SortColumn = "goals"
	SORT_ASSISTS      SortColumn = "assists"
	SORT_OWN_GOALS    SortColumn = "own_goals"
	SORT_YELLOW_CARDS SortColumn = "yellow_cards"
	SORT_RED_CARDS    SortColumn = "red_cards"
	SORT_GAMES        SortColumn = "games"
	SORT_DREAM_TEAM   SortColumn = "dream_team"
	SORT_MVP          SortColumn = "mvp"
)

// ParseSortColumn falls back to SORT_POINTS for empty or unknown input.
func ParseSortColumn(s string) SortColumn {
	s = strings.ToLower(strings.TrimSpace(s))
	switch SortColumn(s) {
	case SORT_GOALS, SORT_ASSISTS, SORT_OWN_GOALS, SORT_YELLOW_CARDS,
		SORT_RED_CARDS, SORT_GAMES, SORT_DREAM_TEAM, SORT_MVP:
		return SortColumn(s)
	}
	// The web client uses camelCase names.
	switch s {
	case "owngoals":
		return SORT_OWN_GOALS
	case "yellowcards":
		return SORT_YELLOW_CARDS
	case "redcards":
		return SORT_RED_CARDS
	}
	return SORT_POINTS
}

// Value returns the column's value for a leaderboard row.
func (c SortColumn) Value(p *PlayerTotals) int {
	switch c {
	case SORT_GOALS:
		return p.Goals
	case SORT_ASSISTS:
		return p.Assists
	case SORT_OWN_GOALS:
		return p.OwnGoals
	case SORT_YELLOW_CARDS:
		return p.YellowCards
	case SORT_RED_CARDS:
		return p.RedCards
	case SORT_GAMES:
		return p.Games
	case SORT_DREAM_TEAM:
		return p.DreamTeamCount
	case SORT_MVP:
		return p.MVPCount
	default:
		return p.GoalsAndAssists()
	}
}

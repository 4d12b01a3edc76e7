// Package mcpserver exposes read-only league views as Model Context Protocol
// tools so assistants can answer questions about tables and players.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/HFC06Atyrau/HFC/controller"
	"github.com/HFC06Atyrau/HFC/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "hfc-league"
	serverVersion = "1.0.0"
)

type SeasonArgs struct {
	SeasonID string `json:"season_id,omitempty" jsonschema:"Season id (empty = current season)"`
}

type TourArgs struct {
	TourID string `json:"tour_id,omitempty" jsonschema:"Tour id (empty = current tour)"`
}

type LeaderboardArgs struct {
	SeasonID string `json:"season_id,omitempty" jsonschema:"Season id (empty = all seasons)"`
	Sort     string `json:"sort,omitempty" jsonschema:"points|goals|assists|own_goals|yellow_cards|red_cards|games|dream_team|mvp (default points)"`
}

type PlayerArgs struct {
	PlayerID string `json:"player_id" jsonschema:"Player id (required)"`
}

type CurrentTourArgs struct{}

// CurrentTour is the result of the current_tour tool.
type CurrentTour struct {
	Tour      *model.Tour          `json:"tour"`
	Matches   []model.Match        `json:"matches"`
	Standings []model.TeamStanding `json:"standings"`
}

// NewServer registers every tool against ctrl.
func NewServer(ctrl controller.C) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "season_standings",
		Description: "League table of a season: played, wins, draws, losses, goals and points per team",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args SeasonArgs) (*mcp.CallToolResult, any, error) {
		seasonID := args.SeasonID
		if seasonID == "" {
			s, err := ctrl.CurrentSeason(ctx)
			if err != nil {
				return toolError(fmt.Errorf("no current season: %w", err)), nil, nil
			}
			seasonID = s.ID
		}
		return toolJSON(ctrl.SeasonStandings(ctx, seasonID))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tour_standings",
		Description: "Table of a single tour (match day), ordered by points then goal difference",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TourArgs) (*mcp.CallToolResult, any, error) {
		tourID := args.TourID
		if tourID == "" {
			t, err := ctrl.CurrentTour(ctx)
			if err != nil {
				return toolError(fmt.Errorf("no current tour: %w", err)), nil, nil
			}
			tourID = t.ID
		}
		return toolJSON(ctrl.TourStandings(ctx, tourID))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "player_leaderboard",
		Description: "Player totals (games, goals, assists, cards, dream team and MVP counts) sorted by the chosen column",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LeaderboardArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(ctrl.Leaderboard(ctx, args.SeasonID, model.ParseSortColumn(args.Sort)))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "player_profile",
		Description: "A player's team, all-time totals and the tours they were MVP of",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PlayerArgs) (*mcp.CallToolResult, any, error) {
		if args.PlayerID == "" {
			return toolError(fmt.Errorf("player_id is required")), nil, nil
		}
		return toolJSON(ctrl.PlayerProfile(ctx, args.PlayerID))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "current_tour",
		Description: "The latest tour of the current season with its matches and table",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args CurrentTourArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(currentTour(ctx, ctrl))
	})

	return server
}

func currentTour(ctx context.Context, ctrl controller.C) (*CurrentTour, error) {
	tour, err := ctrl.CurrentTour(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := ctrl.ListMatches(ctx, tour.ID, "")
	if err != nil {
		return nil, err
	}
	standings, err := ctrl.TourStandings(ctx, tour.ID)
	if err != nil {
		return nil, err
	}
	return &CurrentTour{Tour: tour, Matches: matches, Standings: standings}, nil
}

// Handler serves the tools over streamable HTTP.
func Handler(ctrl controller.C) http.Handler {
	server := NewServer(ctrl)
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

func toolJSON(v any, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}

package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jardellitieri/placar-magico/model"
)

func (c *controller) ListGames(ctx context.Context) ([]model.Game, error) {
	return c.db.ListGames(ctx)
}

func (c *controller) RecordGame(ctx context.Context, date time.Time, homeTeam, awayTeam string, events []model.GameEvent) (*model.Game, error) {
	if err := c.prepareGameInput(ctx, homeTeam, awayTeam, events); err != nil {
		return nil, err
	}

	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing teams for score derivation: %w", err)
	}
	homeGoals, awayGoals := deriveScore(events, teams, homeTeam, awayTeam)

	g := &model.Game{
		ID:        uuid.NewString(),
		Date:      date,
		HomeTeam:  homeTeam,
		AwayTeam:  awayTeam,
		HomeGoals: homeGoals,
		AwayGoals: awayGoals,
		Events:    events,
	}

	if err := c.db.InsertGame(ctx, g, gameDeltas(g)); err != nil {
		return nil, fmt.Errorf("error saving game: %w", err)
	}
	return g, nil
}

func (c *controller) UpdateGame(ctx context.Context, id string, date time.Time, homeTeam, awayTeam string, events []model.GameEvent) (*model.Game, error) {
	if err := c.prepareGameInput(ctx, homeTeam, awayTeam, events); err != nil {
		return nil, err
	}

	old, err := c.db.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing teams for score derivation: %w", err)
	}
	homeGoals, awayGoals := deriveScore(events, teams, homeTeam, awayTeam)

	g := &model.Game{
		ID:        old.ID,
		Date:      date,
		HomeTeam:  homeTeam,
		AwayTeam:  awayTeam,
		HomeGoals: homeGoals,
		AwayGoals: awayGoals,
		Events:    events,
		Created:   old.Created,
	}

	// An edit invalidates the incremental counters, so rebuild every
	// player's totals from a replay of all games with this one substituted.
	games, err := c.db.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing games for counter rebuild: %w", err)
	}
	for i := range games {
		if games[i].ID == g.ID {
			games[i] = *g
		}
	}

	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing players for counter rebuild: %w", err)
	}

	stats := statsFromGames(players, games)
	totals := make([]model.StatTotal, 0, len(stats))
	for _, s := range stats {
		totals = append(totals, model.StatTotal{
			PlayerID:    s.PlayerID,
			Goals:       s.Goals,
			Assists:     s.Assists,
			GamesPlayed: s.GamesPlayed,
		})
	}

	if err := c.db.UpdateGame(ctx, g, totals); err != nil {
		return nil, fmt.Errorf("error saving game update: %w", err)
	}
	return g, nil
}

// prepareGameInput validates the basic shape of a game submission and fills
// each event's denormalized name snapshot from the roster.
func (c *controller) prepareGameInput(ctx context.Context, homeTeam, awayTeam string, events []model.GameEvent) error {
	if homeTeam == "" || awayTeam == "" {
		return fmt.Errorf("both team names are required")
	}
	if homeTeam == awayTeam {
		return fmt.Errorf("a team cannot play itself")
	}

	for i := range events {
		if _, ok := model.ParseEventKind(string(events[i].Kind)); !ok {
			return fmt.Errorf("unknown event kind: %s", events[i].Kind)
		}
		if events[i].PlayerName == "" {
			p, err := c.db.GetPlayer(ctx, events[i].PlayerID)
			if err != nil {
				return fmt.Errorf("error resolving event player %s: %w", events[i].PlayerID, err)
			}
			events[i].PlayerName = p.Name
		}
	}
	return nil
}

// deriveScore computes the authoritative score from the event list. A goal
// counts for the scorer's drafted side, an own goal for the opposing side.
// goal_conceded events are goalkeeper bookkeeping and never touch the score.
// Events by players who belong to neither side contribute nothing.
func deriveScore(events []model.GameEvent, teams []model.Team, homeTeam, awayTeam string) (homeGoals, awayGoals int) {
	memberOf := make(map[string]string)
	for _, t := range teams {
		for _, p := range t.Players {
			memberOf[p.ID] = t.Name
		}
	}

	for _, e := range events {
		side := memberOf[e.PlayerID]
		switch e.Kind {
		case model.EventGoal:
			if side == homeTeam {
				homeGoals++
			} else if side == awayTeam {
				awayGoals++
			}
		case model.EventOwnGoal:
			if side == homeTeam {
				awayGoals++
			} else if side == awayTeam {
				homeGoals++
			}
		}
	}
	return homeGoals, awayGoals
}

// gameDeltas turns one game's events into per-player counter increments:
// +1 goals per goal, +1 assists per assist, and +1 games played for every
// distinct participant regardless of event kind.
func gameDeltas(g *model.Game) []model.StatDelta {
	byPlayer := make(map[string]*model.StatDelta)
	var order []string
	for _, e := range g.Events {
		d, ok := byPlayer[e.PlayerID]
		if !ok {
			d = &model.StatDelta{PlayerID: e.PlayerID, GamesPlayed: 1}
			byPlayer[e.PlayerID] = d
			order = append(order, e.PlayerID)
		}
		switch e.Kind {
		case model.EventGoal:
			d.Goals++
		case model.EventAssist:
			d.Assists++
		}
	}

	deltas := make([]model.StatDelta, 0, len(order))
	for _, id := range order {
		deltas = append(deltas, *byPlayer[id])
	}
	return deltas
}

package mockcontroller

import (
	"context"
	"time"

	"github.com/jardellitieri/placar-magico/controller"
	"github.com/jardellitieri/placar-magico/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := c.Called(ctx)

	var players []model.Player
	if args.Get(0) != nil {
		players = args.Get(0).([]model.Player)
	}
	return players, args.Error(1)
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) AddPlayer(ctx context.Context, name, role string, level int) (*model.Player, error) {
	args := c.Called(ctx, name, role, level)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) UpdatePlayer(ctx context.Context, id string, upd controller.PlayerUpdate) (*model.Player, error) {
	args := c.Called(ctx, id, upd)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) DeletePlayer(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ResetAllStatistics(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) GenerateDraft(ctx context.Context) ([]model.Team, error) {
	args := c.Called(ctx)

	var teams []model.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]model.Team)
	}
	return teams, args.Error(1)
}

func (c *C) GetDraft(ctx context.Context) ([]model.Team, *model.Reserves, error) {
	args := c.Called(ctx)

	var teams []model.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]model.Team)
	}
	var reserves *model.Reserves
	if args.Get(1) != nil {
		reserves = args.Get(1).(*model.Reserves)
	}
	return teams, reserves, args.Error(2)
}

func (c *C) ClearDraft(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) SwapPlayers(ctx context.Context, a, b controller.Selection) ([]model.Team, error) {
	args := c.Called(ctx, a, b)

	var teams []model.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]model.Team)
	}
	return teams, args.Error(1)
}

func (c *C) ListGames(ctx context.Context) ([]model.Game, error) {
	args := c.Called(ctx)

	var games []model.Game
	if args.Get(0) != nil {
		games = args.Get(0).([]model.Game)
	}
	return games, args.Error(1)
}

func (c *C) RecordGame(ctx context.Context, date time.Time, homeTeam, awayTeam string, events []model.GameEvent) (*model.Game, error) {
	args := c.Called(ctx, date, homeTeam, awayTeam, events)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (c *C) UpdateGame(ctx context.Context, id string, date time.Time, homeTeam, awayTeam string, events []model.GameEvent) (*model.Game, error) {
	args := c.Called(ctx, id, date, homeTeam, awayTeam, events)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (c *C) GetPlayerStats(ctx context.Context) ([]model.PlayerStats, error) {
	args := c.Called(ctx)

	var stats []model.PlayerStats
	if args.Get(0) != nil {
		stats = args.Get(0).([]model.PlayerStats)
	}
	return stats, args.Error(1)
}

func (c *C) GetPlayerStatsForDate(ctx context.Context, date time.Time) ([]model.PlayerStats, error) {
	args := c.Called(ctx, date)

	var stats []model.PlayerStats
	if args.Get(0) != nil {
		stats = args.Get(0).([]model.PlayerStats)
	}
	return stats, args.Error(1)
}

func (c *C) TopScorers(ctx context.Context, n int) ([]model.PlayerStats, error) {
	args := c.Called(ctx, n)

	var stats []model.PlayerStats
	if args.Get(0) != nil {
		stats = args.Get(0).([]model.PlayerStats)
	}
	return stats, args.Error(1)
}

func (c *C) TopAssists(ctx context.Context, n int) ([]model.PlayerStats, error) {
	args := c.Called(ctx, n)

	var stats []model.PlayerStats
	if args.Get(0) != nil {
		stats = args.Get(0).([]model.PlayerStats)
	}
	return stats, args.Error(1)
}

func (c *C) GetGoalkeeperStats(ctx context.Context) ([]model.GoalkeeperStats, error) {
	args := c.Called(ctx)

	var stats []model.GoalkeeperStats
	if args.Get(0) != nil {
		stats = args.Get(0).([]model.GoalkeeperStats)
	}
	return stats, args.Error(1)
}

func (c *C) ExportStats(ctx context.Context) ([]byte, error) {
	args := c.Called(ctx)

	var b []byte
	if args.Get(0) != nil {
		b = args.Get(0).([]byte)
	}
	return b, args.Error(1)
}

func (c *C) ParseVoiceCommand(ctx context.Context, text string) (*controller.VoiceCommand, error) {
	args := c.Called(ctx, text)

	var cmd *controller.VoiceCommand
	if args.Get(0) != nil {
		cmd = args.Get(0).(*controller.VoiceCommand)
	}
	return cmd, args.Error(1)
}

func (c *C) AuthConfigured() bool {
	args := c.Called()
	return args.Bool(0)
}

func (c *C) AuthStart() (string, error) {
	args := c.Called()
	return args.String(0), args.Error(1)
}

func (c *C) AuthExchange(ctx context.Context, state, code string) (string, error) {
	args := c.Called(ctx, state, code)
	return args.String(0), args.Error(1)
}

func (c *C) ValidSession(token string) bool {
	args := c.Called(token)
	return args.Bool(0)
}

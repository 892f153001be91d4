package mockdb

import (
	"context"

	"github.com/jardellitieri/placar-magico/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := db.Called(ctx)

	var players []model.Player
	if args.Get(0) != nil {
		players = args.Get(0).([]model.Player)
	}
	return players, args.Error(1)
}

func (db *DB) InsertPlayer(ctx context.Context, p *model.Player) error {
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

func (db *DB) ListGames(ctx context.Context) ([]model.Game, error) {
	args := db.Called(ctx)

	var games []model.Game
	if args.Get(0) != nil {
		games = args.Get(0).([]model.Game)
	}
	return games, args.Error(1)
}

func (db *DB) GetGame(ctx context.Context, id string) (*model.Game, error) {
	args := db.Called(ctx, id)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (db *DB) InsertGame(ctx context.Context, g *model.Game, deltas []model.StatDelta) error {
	args := db.Called(ctx, g, deltas)
	return args.Error(0)
}

func (db *DB) UpdateGame(ctx context.Context, g *model.Game, totals []model.StatTotal) error {
	args := db.Called(ctx, g, totals)
	return args.Error(0)
}

func (db *DB) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := db.Called(ctx)

	var teams []model.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]model.Team)
	}
	return teams, args.Error(1)
}

func (db *DB) ReplaceTeams(ctx context.Context, teams []model.Team) error {
	args := db.Called(ctx, teams)
	return args.Error(0)
}

func (db *DB) ClearTeams(ctx context.Context) error {
	args := db.Called(ctx)
	return args.Error(0)
}

func (db *DB) ResetAllStatistics(ctx context.Context) error {
	args := db.Called(ctx)
	return args.Error(0)
}

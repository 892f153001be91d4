package db

import (
	"context"

	"github.com/jardellitieri/placar-magico/model"
)

type DB interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	// ListPlayers returns every roster player ordered by name.
	ListPlayers(ctx context.Context) ([]model.Player, error)
	InsertPlayer(ctx context.Context, p *model.Player) error
	UpdatePlayer(ctx context.Context, p *model.Player) error
	DeletePlayer(ctx context.Context, id string) error

	// ListGames returns every recorded game, newest first, with its events
	// in recorded order.
	ListGames(ctx context.Context) ([]model.Game, error)
	GetGame(ctx context.Context, id string) (*model.Game, error)
	// InsertGame stores the game with its events and applies the per-player
	// counter deltas in the same transaction, so the game row and the
	// cumulative counters can never drift apart.
	InsertGame(ctx context.Context, g *model.Game, deltas []model.StatDelta) error
	// UpdateGame replaces the game's fields and events and sets every
	// player's counters to the given absolute totals, all in one transaction.
	UpdateGame(ctx context.Context, g *model.Game, totals []model.StatTotal) error

	ListTeams(ctx context.Context) ([]model.Team, error)
	// ReplaceTeams atomically swaps the whole drafted batch: the previous
	// teams are deleted and the new ones inserted in a single transaction,
	// so a concurrent reader never sees a mix of old and new.
	ReplaceTeams(ctx context.Context, teams []model.Team) error
	ClearTeams(ctx context.Context) error

	// ResetAllStatistics zeroes every player's counters and deletes all games
	// and drafted teams.
	ResetAllStatistics(ctx context.Context) error
}

package controller

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jardellitieri/placar-magico/db"
	"github.com/jardellitieri/placar-magico/model"
	"golang.org/x/oauth2"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	ListPlayers(ctx context.Context) ([]model.Player, error)
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	// AddPlayer validates the role label against the canonical list and the
	// level against {1, 2} before creating the player with zeroed counters.
	AddPlayer(ctx context.Context, name, role string, level int) (*model.Player, error)
	UpdatePlayer(ctx context.Context, id string, upd PlayerUpdate) (*model.Player, error)
	DeletePlayer(ctx context.Context, id string) error
	// ResetAllStatistics zeroes every counter and deletes all games and
	// drafted teams. There is no undo.
	ResetAllStatistics(ctx context.Context) error

	// GenerateDraft drafts as many complete 7-player teams as the available
	// roster allows, balancing levels per bucket, and replaces any prior
	// batch wholesale.
	GenerateDraft(ctx context.Context) ([]model.Team, error)
	GetDraft(ctx context.Context) ([]model.Team, *model.Reserves, error)
	ClearDraft(ctx context.Context) error
	// SwapPlayers exchanges two same-bucket selections between teams, or
	// between a team and the reserve pool, and persists the whole batch
	// atomically.
	SwapPlayers(ctx context.Context, a, b Selection) ([]model.Team, error)

	ListGames(ctx context.Context) ([]model.Game, error)
	// RecordGame derives the score from the event list, snapshots player
	// names into the events, and updates cumulative player counters in the
	// same transaction as the game insert.
	RecordGame(ctx context.Context, date time.Time, homeTeam, awayTeam string, events []model.GameEvent) (*model.Game, error)
	// UpdateGame replaces an existing game's fields and events, re-derives
	// the score, and rebuilds every player's counters from a full replay.
	UpdateGame(ctx context.Context, id string, date time.Time, homeTeam, awayTeam string, events []model.GameEvent) (*model.Game, error)

	GetPlayerStats(ctx context.Context) ([]model.PlayerStats, error)
	// GetPlayerStatsForDate recomputes the rollup from the events of the
	// games played on the given date, ignoring cumulative counters.
	GetPlayerStatsForDate(ctx context.Context, date time.Time) ([]model.PlayerStats, error)
	TopScorers(ctx context.Context, n int) ([]model.PlayerStats, error)
	TopAssists(ctx context.Context, n int) ([]model.PlayerStats, error)
	GetGoalkeeperStats(ctx context.Context) ([]model.GoalkeeperStats, error)

	// ExportStats builds the six-sheet xlsx workbook with the current
	// statistics, rankings, game history and drafted teams.
	ExportStats(ctx context.Context) ([]byte, error)

	// ParseVoiceCommand matches a transcribed phrase against the known
	// command patterns and resolves the spoken player name to a roster
	// player.
	ParseVoiceCommand(ctx context.Context, text string) (*VoiceCommand, error)

	AuthConfigured() bool
	AuthStart() (string, error)
	AuthExchange(ctx context.Context, state, code string) (string, error)
	ValidSession(token string) bool
}

type controller struct {
	clock      clock.Clock
	db         db.DB
	authConfig *oauth2.Config

	// draftMu serializes draft generation and swaps so two mutations never
	// race against the same team batch.
	draftMu sync.Mutex
	rng     *rand.Rand

	sessionMu  sync.Mutex
	authStates map[string]time.Time
	sessions   map[string]time.Time
}

func New(clock clock.Clock, db db.DB, authConfig *oauth2.Config) (C, error) {
	c := &controller{
		clock:      clock,
		db:         db,
		authConfig: authConfig,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		authStates: make(map[string]time.Time),
		sessions:   make(map[string]time.Time),
	}
	return c, nil
}

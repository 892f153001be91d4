package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jardellitieri/placar-magico/model"
)

func (db *postgresDB) ListGames(ctx context.Context) ([]model.Game, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, game_date, home_team, away_team, home_goals, away_goals, created
			FROM games ORDER BY game_date DESC, created DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}
	defer rows.Close()

	games := make([]model.Game, 0, 16)
	index := make(map[string]int)
	for rows.Next() {
		var g model.Game
		if err := rows.Scan(&g.ID, &g.Date, &g.HomeTeam, &g.AwayTeam, &g.HomeGoals, &g.AwayGoals, &g.Created); err != nil {
			return nil, fmt.Errorf("error scanning game row: %w", err)
		}
		index[g.ID] = len(games)
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	evRows, err := db.pool.Query(ctx,
		`SELECT game_id, player_id, player_name, kind, minute FROM game_events ORDER BY game_id, ord`)
	if err != nil {
		return nil, fmt.Errorf("error listing game events: %w", err)
	}
	defer evRows.Close()

	for evRows.Next() {
		var gameID, kind string
		var e model.GameEvent
		if err := evRows.Scan(&gameID, &e.PlayerID, &e.PlayerName, &kind, &e.Minute); err != nil {
			return nil, fmt.Errorf("error scanning game event row: %w", err)
		}
		k, ok := model.ParseEventKind(kind)
		if !ok {
			return nil, fmt.Errorf("unknown event kind in database: %s", kind)
		}
		e.Kind = k
		if i, found := index[gameID]; found {
			games[i].Events = append(games[i].Events, e)
		}
	}
	return games, evRows.Err()
}

func (db *postgresDB) GetGame(ctx context.Context, id string) (*model.Game, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, game_date, home_team, away_team, home_goals, away_goals, created
			FROM games WHERE id=@id`, pgx.NamedArgs{"id": id})

	var g model.Game
	err := row.Scan(&g.ID, &g.Date, &g.HomeTeam, &g.AwayTeam, &g.HomeGoals, &g.AwayGoals, &g.Created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error reading game: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT player_id, player_name, kind, minute FROM game_events WHERE game_id=@id ORDER BY ord`,
		pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("error reading game events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var e model.GameEvent
		if err := rows.Scan(&e.PlayerID, &e.PlayerName, &kind, &e.Minute); err != nil {
			return nil, fmt.Errorf("error scanning game event row: %w", err)
		}
		k, ok := model.ParseEventKind(kind)
		if !ok {
			return nil, fmt.Errorf("unknown event kind in database: %s", kind)
		}
		e.Kind = k
		g.Events = append(g.Events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &g, nil
}

func (db *postgresDB) InsertGame(ctx context.Context, g *model.Game, deltas []model.StatDelta) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{
		"id":        g.ID,
		"date":      g.Date,
		"homeTeam":  g.HomeTeam,
		"awayTeam":  g.AwayTeam,
		"homeGoals": g.HomeGoals,
		"awayGoals": g.AwayGoals,
		"created":   db.clock.Now().UTC(),
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO games (id, game_date, home_team, away_team, home_goals, away_goals, created)
			VALUES (@id, @date, @homeTeam, @awayTeam, @homeGoals, @awayGoals, @created)`, args)
	if err != nil {
		return fmt.Errorf("error inserting game: %w", err)
	}

	if err := insertGameEvents(ctx, tx, g); err != nil {
		return err
	}

	for _, d := range deltas {
		_, err := tx.Exec(ctx,
			`UPDATE players SET goals=goals+@goals, assists=assists+@assists, games_played=games_played+@games
				WHERE id=@id`,
			pgx.NamedArgs{"id": d.PlayerID, "goals": d.Goals, "assists": d.Assists, "games": d.GamesPlayed})
		if err != nil {
			return fmt.Errorf("error applying stat delta for player %s: %w", d.PlayerID, err)
		}
	}

	return tx.Commit(ctx)
}

func (db *postgresDB) UpdateGame(ctx context.Context, g *model.Game, totals []model.StatTotal) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{
		"id":        g.ID,
		"date":      g.Date,
		"homeTeam":  g.HomeTeam,
		"awayTeam":  g.AwayTeam,
		"homeGoals": g.HomeGoals,
		"awayGoals": g.AwayGoals,
	}
	tag, err := tx.Exec(ctx,
		`UPDATE games SET game_date=@date, home_team=@homeTeam, away_team=@awayTeam,
			home_goals=@homeGoals, away_goals=@awayGoals WHERE id=@id`, args)
	if err != nil {
		return fmt.Errorf("error updating game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGameNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM game_events WHERE game_id=@id`, pgx.NamedArgs{"id": g.ID}); err != nil {
		return fmt.Errorf("error clearing game events: %w", err)
	}
	if err := insertGameEvents(ctx, tx, g); err != nil {
		return err
	}

	for _, t := range totals {
		_, err := tx.Exec(ctx,
			`UPDATE players SET goals=@goals, assists=@assists, games_played=@games WHERE id=@id`,
			pgx.NamedArgs{"id": t.PlayerID, "goals": t.Goals, "assists": t.Assists, "games": t.GamesPlayed})
		if err != nil {
			return fmt.Errorf("error setting stat totals for player %s: %w", t.PlayerID, err)
		}
	}

	return tx.Commit(ctx)
}

func insertGameEvents(ctx context.Context, tx pgx.Tx, g *model.Game) error {
	for i, e := range g.Events {
		args := pgx.NamedArgs{
			"gameID":     g.ID,
			"playerID":   e.PlayerID,
			"playerName": e.PlayerName,
			"kind":       string(e.Kind),
			"minute":     e.Minute,
			"ord":        i,
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO game_events (game_id, player_id, player_name, kind, minute, ord)
				VALUES (@gameID, @playerID, @playerName, @kind, @minute, @ord)`, args)
		if err != nil {
			return fmt.Errorf("error inserting game event: %w", err)
		}
	}
	return nil
}

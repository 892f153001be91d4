package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jardellitieri/placar-magico/model"
)

const playerColumns = `id, name, role, level, goals, assists, games_played, available, created, updated`

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players WHERE id=@id`, playerColumns)
	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})

	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return p, nil
}

func (db *postgresDB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players ORDER BY name`, playerColumns)
	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}
	defer rows.Close()

	players := make([]model.Player, 0, 32)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

func (db *postgresDB) InsertPlayer(ctx context.Context, p *model.Player) error {
	const query = `INSERT INTO players (id, name, role, level, goals, assists, games_played, available, created)
			VALUES (@id, @name, @role, @level, @goals, @assists, @gamesPlayed, @available, @created)`

	args := pgx.NamedArgs{
		"id":          p.ID,
		"name":        p.Name,
		"role":        p.Role,
		"level":       p.Level,
		"goals":       p.Goals,
		"assists":     p.Assists,
		"gamesPlayed": p.GamesPlayed,
		"available":   p.AvailableForDraft,
		"created":     db.clock.Now().UTC(),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting player: %w", err)
	}
	return nil
}

func (db *postgresDB) UpdatePlayer(ctx context.Context, p *model.Player) error {
	const query = `UPDATE players
			SET name=@name, role=@role, level=@level, goals=@goals, assists=@assists,
				games_played=@gamesPlayed, available=@available, updated=@updated
			WHERE id=@id`

	args := pgx.NamedArgs{
		"id":          p.ID,
		"name":        p.Name,
		"role":        p.Role,
		"level":       p.Level,
		"goals":       p.Goals,
		"assists":     p.Assists,
		"gamesPlayed": p.GamesPlayed,
		"available":   p.AvailableForDraft,
		"updated":     db.clock.Now().UTC(),
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (db *postgresDB) DeletePlayer(ctx context.Context, id string) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM players WHERE id=@id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (db *postgresDB) ResetAllStatistics(ctx context.Context) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE players SET goals=0, assists=0, games_played=0, updated=@updated`,
		pgx.NamedArgs{"updated": db.clock.Now().UTC()}); err != nil {
		return fmt.Errorf("error resetting player counters: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM games`); err != nil {
		return fmt.Errorf("error deleting games: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM drafted_teams`); err != nil {
		return fmt.Errorf("error deleting drafted teams: %w", err)
	}

	return tx.Commit(ctx)
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var p model.Player
	var level int16
	var updated pgtype.Timestamptz

	err := row.Scan(&p.ID, &p.Name, &p.Role, &level, &p.Goals, &p.Assists,
		&p.GamesPlayed, &p.AvailableForDraft, &p.Created, &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("error scanning player row: %w", err)
	}

	p.Level = int(level)
	if updated.Valid {
		p.Updated = updated.Time
	}
	return &p, nil
}

package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jardellitieri/placar-magico/model"
)

func (db *postgresDB) ListTeams(ctx context.Context) ([]model.Team, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT team_idx, name, level1_count, level2_count FROM drafted_teams ORDER BY team_idx`)
	if err != nil {
		return nil, fmt.Errorf("error listing drafted teams: %w", err)
	}
	defer rows.Close()

	teams := make([]model.Team, 0, 4)
	index := make(map[int]int)
	for rows.Next() {
		var idx int
		var t model.Team
		if err := rows.Scan(&idx, &t.Name, &t.Level1Count, &t.Level2Count); err != nil {
			return nil, fmt.Errorf("error scanning drafted team row: %w", err)
		}
		index[idx] = len(teams)
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Join membership against the roster so teams carry full player records.
	memberRows, err := db.pool.Query(ctx,
		fmt.Sprintf(`SELECT m.team_idx, m.position, %s
			FROM drafted_team_players m JOIN players p ON p.id = m.player_id
			ORDER BY m.team_idx, m.position, m.slot`, prefixedPlayerColumns("p")))
	if err != nil {
		return nil, fmt.Errorf("error listing drafted team players: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var teamIdx int
		var position string
		p, err := scanTeamMember(memberRows, &teamIdx, &position)
		if err != nil {
			return nil, err
		}
		i, found := index[teamIdx]
		if !found {
			return nil, fmt.Errorf("drafted team player references missing team %d", teamIdx)
		}
		teams[i].AddPlayer(model.ParsePosition(position), *p)
	}
	return teams, memberRows.Err()
}

func (db *postgresDB) ReplaceTeams(ctx context.Context, teams []model.Team) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM drafted_teams`); err != nil {
		return fmt.Errorf("error clearing previous draft: %w", err)
	}

	for idx, t := range teams {
		args := pgx.NamedArgs{
			"idx":    idx,
			"name":   t.Name,
			"level1": t.Level1Count,
			"level2": t.Level2Count,
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO drafted_teams (team_idx, name, level1_count, level2_count)
				VALUES (@idx, @name, @level1, @level2)`, args)
		if err != nil {
			return fmt.Errorf("error inserting drafted team %s: %w", t.Name, err)
		}

		for _, pos := range model.DraftBuckets {
			for slot, p := range t.BucketPlayers(pos) {
				args := pgx.NamedArgs{
					"idx":      idx,
					"playerID": p.ID,
					"position": string(pos),
					"slot":     slot,
				}
				_, err := tx.Exec(ctx,
					`INSERT INTO drafted_team_players (team_idx, player_id, position, slot)
						VALUES (@idx, @playerID, @position, @slot)`, args)
				if err != nil {
					return fmt.Errorf("error inserting member %s of team %s: %w", p.Name, t.Name, err)
				}
			}
		}
	}

	return tx.Commit(ctx)
}

func (db *postgresDB) ClearTeams(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM drafted_teams`); err != nil {
		return fmt.Errorf("error clearing drafted teams: %w", err)
	}
	return nil
}

func prefixedPlayerColumns(alias string) string {
	return fmt.Sprintf(`%[1]s.id, %[1]s.name, %[1]s.role, %[1]s.level, %[1]s.goals, %[1]s.assists,
		%[1]s.games_played, %[1]s.available, %[1]s.created, %[1]s.updated`, alias)
}

func scanTeamMember(rows pgx.Rows, teamIdx *int, position *string) (*model.Player, error) {
	var p model.Player
	var level int16
	var updated pgtype.Timestamptz

	err := rows.Scan(teamIdx, position, &p.ID, &p.Name, &p.Role, &level, &p.Goals, &p.Assists,
		&p.GamesPlayed, &p.AvailableForDraft, &p.Created, &updated)
	if err != nil {
		return nil, fmt.Errorf("error scanning drafted team player row: %w", err)
	}
	p.Level = int(level)
	if updated.Valid {
		p.Updated = updated.Time
	}
	return &p, nil
}

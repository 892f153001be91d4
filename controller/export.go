package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const topListSize = 10

// ExportStats builds the club's spreadsheet: general stats, top scorers, top
// assists, goalkeeper ranking, game history and the current drafted teams,
// one sheet each.
func (c *controller) ExportStats(ctx context.Context) ([]byte, error) {
	stats, err := c.GetPlayerStats(ctx)
	if err != nil {
		return nil, err
	}
	scorers, err := c.TopScorers(ctx, topListSize)
	if err != nil {
		return nil, err
	}
	assists, err := c.TopAssists(ctx, topListSize)
	if err != nil {
		return nil, err
	}
	goalkeepers, err := c.GetGoalkeeperStats(ctx)
	if err != nil {
		return nil, err
	}
	games, err := c.db.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}
	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}

	memberOf := make(map[string]string)
	for _, t := range teams {
		for _, p := range t.Players {
			memberOf[p.ID] = t.Name
		}
	}
	teamOf := func(playerID string) string {
		if name, ok := memberOf[playerID]; ok {
			return name
		}
		return "Sem time"
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheet(f, "Estatísticas Gerais",
		[]any{"Posição", "Jogador", "Time", "Jogos", "Gols", "Assistências", "Total de Pontos"},
		len(stats), func(i int) []any {
			s := stats[i]
			return []any{s.Rank, s.Name, teamOf(s.PlayerID), s.GamesPlayed, s.Goals, s.Assists, s.TotalPoints}
		}); err != nil {
		return nil, err
	}

	if err := writeSheet(f, "Top Artilheiros",
		[]any{"Posição", "Jogador", "Gols"},
		len(scorers), func(i int) []any {
			s := scorers[i]
			return []any{s.Rank, s.Name, s.Goals}
		}); err != nil {
		return nil, err
	}

	if err := writeSheet(f, "Top Assistências",
		[]any{"Posição", "Jogador", "Assistências"},
		len(assists), func(i int) []any {
			s := assists[i]
			return []any{s.Rank, s.Name, s.Assists}
		}); err != nil {
		return nil, err
	}

	if err := writeSheet(f, "Ranking Goleiros",
		[]any{"Goleiro", "Jogos", "Gols Sofridos", "Média por Jogo"},
		len(goalkeepers), func(i int) []any {
			g := goalkeepers[i]
			return []any{g.Name, g.GamesPlayed, g.GoalsConceded, g.Average()}
		}); err != nil {
		return nil, err
	}

	if err := writeSheet(f, "Histórico de Jogos",
		[]any{"Data", "Time da Casa", "Time Visitante", "Resultado", "Total de Eventos"},
		len(games), func(i int) []any {
			g := games[i]
			return []any{g.FormattedDate(), g.HomeTeam, g.AwayTeam,
				fmt.Sprintf("%d x %d", g.HomeGoals, g.AwayGoals), len(g.Events)}
		}); err != nil {
		return nil, err
	}

	if err := writeSheet(f, "Times e Jogadores",
		[]any{"Time", "Número de Jogadores", "Jogadores"},
		len(teams), func(i int) []any {
			t := teams[i]
			names := make([]string, 0, len(t.Players))
			for _, p := range t.Players {
				names = append(names, p.Name)
			}
			return []any{t.Name, len(t.Players), strings.Join(names, ", ")}
		}); err != nil {
		return nil, err
	}

	// The default sheet excelize creates is replaced by the first data sheet.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("error removing default sheet: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportFileName names the download after the export date.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("estatisticas_futebol_%s.xlsx", now.Format(time.DateOnly))
}

func writeSheet(f *excelize.File, name string, header []any, rows int, row func(i int) []any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("error creating sheet %s: %w", name, err)
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("error writing header of sheet %s: %w", name, err)
	}
	for i := 0; i < rows; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row(i)
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return fmt.Errorf("error writing row %d of sheet %s: %w", i, name, err)
		}
	}
	return nil
}

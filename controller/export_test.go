package controller

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jardellitieri/placar-magico/db/mockdb"
	"github.com/jardellitieri/placar-magico/model"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"
)

func TestExportStats(t *testing.T) {
	players := []model.Player{
		{ID: "p1", Name: "Adriano", Role: "Pivo", Goals: 2, Assists: 1, GamesPlayed: 2},
		{ID: "gk1", Name: "Rogério", Role: "Goleiro", GamesPlayed: 2},
	}
	team := model.Team{Name: "Time A"}
	team.AddPlayer(model.POS_PIV, players[0])
	team.RecountLevels()

	games := []model.Game{{
		ID:       "g1",
		Date:     time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		HomeTeam: "Time A", AwayTeam: "Time B",
		HomeGoals: 2, AwayGoals: 0,
		Events: []model.GameEvent{
			{PlayerID: "p1", PlayerName: "Adriano", Kind: model.EventGoal},
			{PlayerID: "p1", PlayerName: "Adriano", Kind: model.EventGoal},
			{PlayerID: "gk1", PlayerName: "Rogério", Kind: model.EventGoalConceded},
		},
	}}

	mockDB := &mockdb.DB{}
	mockDB.On("ListPlayers", mock.Anything).Return(players, nil)
	mockDB.On("ListGames", mock.Anything).Return(games, nil)
	mockDB.On("ListTeams", mock.Anything).Return([]model.Team{team}, nil)

	ctrl := &controller{db: mockDB}
	data, err := ctrl.ExportStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("error opening exported workbook: %v", err)
	}
	defer f.Close()

	expected := []string{
		"Estatísticas Gerais",
		"Top Artilheiros",
		"Top Assistências",
		"Ranking Goleiros",
		"Histórico de Jogos",
		"Times e Jogadores",
	}
	sheets := f.GetSheetList()
	if len(sheets) != len(expected) {
		t.Fatalf("expected %d sheets, got %d: %v", len(expected), len(sheets), sheets)
	}
	for _, name := range expected {
		if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
			t.Errorf("missing sheet '%s'", name)
		}
	}

	// The leaderboard puts Adriano first with his team name resolved.
	rows, err := f.GetRows("Estatísticas Gerais")
	if err != nil {
		t.Fatalf("error reading general stats sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(rows))
	}
	if rows[1][1] != "Adriano" || rows[1][2] != "Time A" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][1] != "Rogério" || rows[2][2] != "Sem time" {
		t.Errorf("unexpected second row: %v", rows[2])
	}

	// The game history holds the derived score.
	rows, err = f.GetRows("Histórico de Jogos")
	if err != nil {
		t.Fatalf("error reading game history sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header and 1 row, got %d", len(rows))
	}
	if rows[1][0] != "2026-05-10" || rows[1][3] != "2 x 0" {
		t.Errorf("unexpected game row: %v", rows[1])
	}
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	expected := "estatisticas_futebol_2026-08-31.xlsx"
	if name := ExportFileName(now); name != expected {
		t.Errorf("expected '%s', got '%s'", expected, name)
	}
}

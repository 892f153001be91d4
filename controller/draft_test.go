package controller

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/jardellitieri/placar-magico/db/mockdb"
	"github.com/jardellitieri/placar-magico/model"
	"github.com/stretchr/testify/mock"
)

// testRoster builds a draft-available roster with the given number of players
// per role label, alternating levels so both levels are always represented.
func testRoster(counts map[string]int) []model.Player {
	var players []model.Player
	n := 0
	for _, label := range model.RoleLabels {
		for i := 0; i < counts[label]; i++ {
			n++
			level := model.LevelBeginner
			if i%2 == 0 {
				level = model.LevelAdvanced
			}
			players = append(players, model.Player{
				ID:                fmt.Sprintf("p%d", n),
				Name:              fmt.Sprintf("Jogador %d", n),
				Role:              label,
				Level:             level,
				AvailableForDraft: true,
			})
		}
	}
	return players
}

func draftController(db *mockdb.DB) *controller {
	return &controller{db: db, rng: rand.New(rand.NewSource(7))}
}

func TestGenerateDraft(t *testing.T) {
	roster := testRoster(map[string]int{
		"Goleiro":         2,
		"Zagueiro":        3,
		"Lateral Direito": 2,
		"Volante":         3,
		"Meia-atacante":   4,
		"Pivo":            2,
	})

	mockDB := &mockdb.DB{}
	mockDB.On("ListPlayers", mock.Anything).Return(roster, nil)
	mockDB.On("ReplaceTeams", mock.Anything, mock.Anything).Return(nil)

	ctrl := draftController(mockDB)
	teams, err := ctrl.GenerateDraft(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2 goalkeepers and 2 pivots cap the draft at two full teams.
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	if teams[0].Name != "Time A" || teams[1].Name != "Time B" {
		t.Errorf("unexpected team names: %s, %s", teams[0].Name, teams[1].Name)
	}

	for _, team := range teams {
		if err := team.Validate(); err != nil {
			t.Errorf("invalid team: %v", err)
		}
		if len(team.Players) != model.FormationSize {
			t.Errorf("%s has %d players, expected %d", team.Name, len(team.Players), model.FormationSize)
		}
		for _, pos := range model.DraftBuckets {
			if got := len(team.BucketPlayers(pos)); got != model.Formation[pos] {
				t.Errorf("%s has %d %s, expected %d", team.Name, got, pos, model.Formation[pos])
			}
		}
	}

	// No player may appear on two teams.
	seen := make(map[string]string)
	for _, team := range teams {
		for _, p := range team.Players {
			if other, ok := seen[p.ID]; ok {
				t.Errorf("player %s drafted to both %s and %s", p.ID, other, team.Name)
			}
			seen[p.ID] = team.Name
		}
	}

	mockDB.AssertCalled(t, "ReplaceTeams", mock.Anything, teams)
}

func TestGenerateDraft_levelBalance(t *testing.T) {
	// 4 of each level per bucket-heavy roster, drafted into 2 teams. Within
	// every bucket, no team may hold more than one extra player of a level
	// compared to any other team.
	roster := testRoster(map[string]int{
		"Goleiro":       2,
		"Zagueiro":      4,
		"Volante":       2,
		"Meia-atacante": 4,
		"Pivo":          2,
	})

	mockDB := &mockdb.DB{}
	mockDB.On("ListPlayers", mock.Anything).Return(roster, nil)
	mockDB.On("ReplaceTeams", mock.Anything, mock.Anything).Return(nil)

	for seed := int64(0); seed < 20; seed++ {
		ctrl := &controller{db: mockDB, rng: rand.New(rand.NewSource(seed))}
		teams, err := ctrl.GenerateDraft(context.Background())
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		for _, pos := range model.DraftBuckets {
			for _, level := range []int{model.LevelBeginner, model.LevelAdvanced} {
				min, max := -1, -1
				for _, team := range teams {
					n := 0
					for _, p := range team.BucketPlayers(pos) {
						if p.Level == level {
							n++
						}
					}
					if min == -1 || n < min {
						min = n
					}
					if n > max {
						max = n
					}
				}
				if max-min > 1 {
					t.Errorf("seed %d: level-%d spread in %s is %d", seed, level, pos, max-min)
				}
			}
		}

		for _, team := range teams {
			diff := team.Level1Count - team.Level2Count
			if diff < 0 {
				diff = -diff
			}
			// A bucket with an odd supply can tip each team by one.
			if diff > len(model.DraftBuckets) {
				t.Errorf("seed %d: %s levels are unbalanced: %d/%d", seed, team.Name, team.Level1Count, team.Level2Count)
			}
		}
	}
}

func TestGenerateDraft_insufficientPlayers(t *testing.T) {
	// No goalkeepers at all.
	roster := testRoster(map[string]int{
		"Zagueiro":      4,
		"Volante":       2,
		"Meia-atacante": 4,
		"Pivo":          2,
	})

	mockDB := &mockdb.DB{}
	mockDB.On("ListPlayers", mock.Anything).Return(roster, nil)

	ctrl := draftController(mockDB)
	_, err := ctrl.GenerateDraft(context.Background())
	if !errors.Is(err, ErrInsufficientPlayers) {
		t.Fatalf("expected ErrInsufficientPlayers, got %v", err)
	}

	// A failed draft must leave any previously drafted batch untouched.
	mockDB.AssertNotCalled(t, "ReplaceTeams", mock.Anything, mock.Anything)
}

func TestGenerateDraft_ignoresUnavailablePlayers(t *testing.T) {
	roster := testRoster(map[string]int{
		"Goleiro":       1,
		"Zagueiro":      2,
		"Volante":       1,
		"Meia-atacante": 2,
		"Pivo":          1,
	})
	benched := model.Player{ID: "benched", Name: "Lesionado", Role: "Goleiro", Level: model.LevelAdvanced, AvailableForDraft: false}
	roster = append(roster, benched)

	mockDB := &mockdb.DB{}
	mockDB.On("ListPlayers", mock.Anything).Return(roster, nil)
	mockDB.On("ReplaceTeams", mock.Anything, mock.Anything).Return(nil)

	ctrl := draftController(mockDB)
	teams, err := ctrl.GenerateDraft(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("expected 1 team, got %d", len(teams))
	}
	if teams[0].HasPlayer("benched") {
		t.Error("an unavailable player was drafted")
	}
}

func TestBalanceByLevel(t *testing.T) {
	var players []model.Player
	for i := 0; i < 4; i++ {
		players = append(players, model.Player{ID: fmt.Sprintf("b%d", i), Level: model.LevelBeginner})
	}
	for i := 0; i < 4; i++ {
		players = append(players, model.Player{ID: fmt.Sprintf("a%d", i), Level: model.LevelAdvanced})
	}

	rng := rand.New(rand.NewSource(42))
	parts := balanceByLevel(players, 4, 2, rng)

	if len(parts) != 4 {
		t.Fatalf("expected 4 partitions, got %d", len(parts))
	}
	for i, part := range parts {
		if len(part) != 2 {
			t.Fatalf("partition %d has %d players, expected 2", i, len(part))
		}
		// With an equal supply of both levels each pair has one of each.
		if part[0].Level == part[1].Level {
			t.Errorf("partition %d has two level-%d players", i, part[0].Level)
		}
	}
}

func TestBalanceByLevel_spread(t *testing.T) {
	// Over random level supplies and team shapes, each level's count differs
	// by at most one between any two partitions, and every slot gets filled
	// while supply lasts.
	cfg := rand.New(rand.NewSource(99))
	for i := 0; i < 500; i++ {
		teamsCount := 1 + cfg.Intn(4)
		perTeam := 1 + cfg.Intn(2)
		need := teamsCount * perTeam
		total := need + cfg.Intn(4)
		n1 := cfg.Intn(total + 1)

		var players []model.Player
		for j := 0; j < total; j++ {
			level := model.LevelAdvanced
			if j < n1 {
				level = model.LevelBeginner
			}
			players = append(players, model.Player{ID: fmt.Sprintf("p%d", j), Level: level})
		}

		parts := balanceByLevel(players, teamsCount, perTeam, rand.New(rand.NewSource(int64(i))))

		if len(parts) != teamsCount {
			t.Fatalf("case %d: expected %d partitions, got %d", i, teamsCount, len(parts))
		}
		for _, level := range []int{model.LevelBeginner, model.LevelAdvanced} {
			min, max := -1, -1
			for p, part := range parts {
				if len(part) != perTeam {
					t.Fatalf("case %d: partition %d has %d players, expected %d", i, p, len(part), perTeam)
				}
				n := 0
				for _, pl := range part {
					if pl.Level == level {
						n++
					}
				}
				if min == -1 || n < min {
					min = n
				}
				if n > max {
					max = n
				}
			}
			if max-min > 1 {
				t.Errorf("case %d (teams=%d perTeam=%d level1=%d level2=%d): level-%d spread is %d",
					i, teamsCount, perTeam, n1, total-n1, level, max-min)
			}
		}
	}
}

func TestBalanceByLevel_shortSupply(t *testing.T) {
	players := []model.Player{
		{ID: "b0", Level: model.LevelBeginner},
		{ID: "a0", Level: model.LevelAdvanced},
		{ID: "a1", Level: model.LevelAdvanced},
	}

	rng := rand.New(rand.NewSource(1))
	parts := balanceByLevel(players, 2, 2, rng)

	total := 0
	for _, part := range parts {
		total += len(part)
	}
	if total != 3 {
		t.Errorf("expected all 3 players distributed, got %d", total)
	}
	// The last slot stays unfilled rather than failing.
	if len(parts[1]) > 2 {
		t.Errorf("partition overfilled: %d", len(parts[1]))
	}
}

func TestGetDraft_reserves(t *testing.T) {
	drafted := model.Player{ID: "d1", Name: "Cafu", Role: "Lateral Direito", Level: model.LevelAdvanced, AvailableForDraft: true}
	reserve := model.Player{ID: "r1", Name: "Belletti", Role: "Lateral Direito", Level: model.LevelBeginner, AvailableForDraft: true}
	benched := model.Player{ID: "x1", Name: "Lesionado", Role: "Zagueiro", Level: model.LevelBeginner, AvailableForDraft: false}

	team := model.Team{Name: "Time A"}
	team.AddPlayer(model.POS_DEF, drafted)
	team.RecountLevels()

	mockDB := &mockdb.DB{}
	mockDB.On("ListTeams", mock.Anything).Return([]model.Team{team}, nil)
	mockDB.On("ListPlayers", mock.Anything).Return([]model.Player{drafted, reserve, benched}, nil)

	ctrl := draftController(mockDB)
	teams, reserves, err := ctrl.GetDraft(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("expected 1 team, got %d", len(teams))
	}

	all := reserves.All()
	if len(all) != 1 || all[0].ID != "r1" {
		t.Errorf("expected only r1 in reserves, got %v", all)
	}
}

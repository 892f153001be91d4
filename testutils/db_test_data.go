package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jardellitieri/placar-magico/containers"
	"github.com/jardellitieri/placar-magico/db"
	"github.com/jardellitieri/placar-magico/model"
)

var (
	Rogerio = &model.Player{
		ID:                "7f5c1056-2a8b-4d6e-9f6f-2a1f4c2da101",
		Name:              "Rogério",
		Role:              "Goleiro",
		Level:             model.LevelAdvanced,
		AvailableForDraft: true,
	}
	Marcos = &model.Player{
		ID:                "0b32a5df-95cb-40b4-8a51-8d9f05a3a102",
		Name:              "Marcos",
		Role:              "Goleiro",
		Level:             model.LevelBeginner,
		AvailableForDraft: true,
	}
	Edmilson = &model.Player{
		ID:                "f37da0c3-8c18-4e30-bd2e-67c3be2fa103",
		Name:              "Edmílson",
		Role:              "Zagueiro",
		Level:             model.LevelAdvanced,
		AvailableForDraft: true,
	}
	Cafu = &model.Player{
		ID:                "9f12c8e4-40f1-45e0-9f0a-89a01776a104",
		Name:              "Cafu",
		Role:              "Lateral Direito",
		Level:             model.LevelAdvanced,
		AvailableForDraft: true,
	}
	Gilberto = &model.Player{
		ID:                "4a9b90cd-0f7e-4ad2-baf0-d9f4c119a105",
		Name:              "Gilberto",
		Role:              "Volante",
		Level:             model.LevelBeginner,
		AvailableForDraft: true,
	}
	Rivaldo = &model.Player{
		ID:                "c4d80e9b-7e46-4c1f-a2d4-5be4f881a106",
		Name:              "Rivaldo",
		Role:              "Meia-atacante",
		Level:             model.LevelAdvanced,
		AvailableForDraft: true,
	}
	Ronaldinho = &model.Player{
		ID:                "5eb3f6a7-1d25-49cf-8a0e-0c7f2693a107",
		Name:              "Ronaldinho",
		Role:              "Meia-atacante",
		Level:             model.LevelBeginner,
		AvailableForDraft: true,
	}
	Ronaldo = &model.Player{
		ID:                "e81c2b55-34aa-4f7d-930c-bd2a8f37a108",
		Name:              "Ronaldo",
		Role:              "Pivo",
		Level:             model.LevelAdvanced,
		AvailableForDraft: true,
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	ctx := context.Background()
	container, err := containers.Start(ctx, "../schema")
	if err != nil {
		log.Fatalf("error starting db container: %v", err)
	}
	clock := clock.New()

	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("error getting connection string: %v", err)
	}
	db, err := db.New(ctx, connStr, clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestPlayers(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	if err := db.container.Shutdown(context.Background()); err != nil {
		log.Printf("error terminating db container: %v", err)
	}
}

func InsertTestPlayers(db db.DB) error {
	players := []*model.Player{
		Rogerio,
		Marcos,
		Edmilson,
		Cafu,
		Gilberto,
		Rivaldo,
		Ronaldinho,
		Ronaldo,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, p := range players {
		err := db.InsertPlayer(ctx, p)
		if err != nil {
			return err
		}
	}

	return nil
}

package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jardellitieri/placar-magico/model"
)

// PlayerUpdate carries the editable roster fields. Nil pointers leave the
// field unchanged; counters are not editable here, they belong to the stats
// aggregation.
type PlayerUpdate struct {
	Name              *string
	Role              *string
	Level             *int
	AvailableForDraft *bool
}

func (c *controller) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return c.db.ListPlayers(ctx)
}

func (c *controller) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	return c.db.GetPlayer(ctx, id)
}

func (c *controller) AddPlayer(ctx context.Context, name, role string, level int) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("player name must not be empty")
	}
	if _, err := model.ClassifyRole(role); err != nil {
		return nil, fmt.Errorf("role %q: %w", role, err)
	}
	if level != model.LevelBeginner && level != model.LevelAdvanced {
		return nil, fmt.Errorf("level must be 1 or 2, got %d", level)
	}

	p := &model.Player{
		ID:                uuid.NewString(),
		Name:              name,
		Role:              role,
		Level:             level,
		AvailableForDraft: true,
	}
	if err := c.db.InsertPlayer(ctx, p); err != nil {
		return nil, fmt.Errorf("error saving new player: %w", err)
	}
	return p, nil
}

func (c *controller) UpdatePlayer(ctx context.Context, id string, upd PlayerUpdate) (*model.Player, error) {
	p, err := c.db.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, fmt.Errorf("player name must not be empty")
		}
		p.Name = name
	}
	if upd.Role != nil {
		if _, err := model.ClassifyRole(*upd.Role); err != nil {
			return nil, fmt.Errorf("role %q: %w", *upd.Role, err)
		}
		p.Role = *upd.Role
	}
	if upd.Level != nil {
		if *upd.Level != model.LevelBeginner && *upd.Level != model.LevelAdvanced {
			return nil, fmt.Errorf("level must be 1 or 2, got %d", *upd.Level)
		}
		p.Level = *upd.Level
	}
	if upd.AvailableForDraft != nil {
		p.AvailableForDraft = *upd.AvailableForDraft
	}

	if err := c.db.UpdatePlayer(ctx, p); err != nil {
		return nil, fmt.Errorf("error updating player: %w", err)
	}
	return p, nil
}

func (c *controller) DeletePlayer(ctx context.Context, id string) error {
	// Game events keep their denormalized name snapshot, so history is not
	// affected. The player simply disappears from future draft pools.
	return c.db.DeletePlayer(ctx, id)
}

func (c *controller) ResetAllStatistics(ctx context.Context) error {
	return c.db.ResetAllStatistics(ctx)
}

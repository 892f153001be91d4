package controller

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/jardellitieri/placar-magico/model"
)

var (
	// ErrInsufficientPlayers means some role bucket has fewer available
	// players than one team's formation requires.
	ErrInsufficientPlayers = errors.New("not enough available players to form a team")
	// ErrNoTeamsFormable means the per-bucket floors allow zero teams even
	// though every bucket meets the single-team minimum.
	ErrNoTeamsFormable = errors.New("no complete team can be formed from the available players")
)

func (c *controller) GenerateDraft(ctx context.Context) ([]model.Team, error) {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()

	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing players for draft: %w", err)
	}

	buckets := bucketAvailable(players)
	for _, pos := range model.DraftBuckets {
		if len(buckets[pos]) < model.Formation[pos] {
			return nil, fmt.Errorf("%w: need %d %s, have %d available",
				ErrInsufficientPlayers, model.Formation[pos], pos, len(buckets[pos]))
		}
	}

	maxTeams := -1
	for _, pos := range model.DraftBuckets {
		n := len(buckets[pos]) / model.Formation[pos]
		if maxTeams == -1 || n < maxTeams {
			maxTeams = n
		}
	}
	if maxTeams == 0 {
		return nil, ErrNoTeamsFormable
	}

	partitions := make(map[model.Position][][]model.Player, len(model.DraftBuckets))
	for _, pos := range model.DraftBuckets {
		partitions[pos] = balanceByLevel(buckets[pos], maxTeams, model.Formation[pos], c.rng)
	}

	teams := make([]model.Team, 0, maxTeams)
	for i := 0; i < maxTeams; i++ {
		t := model.Team{Name: model.TeamName(i)}
		for _, pos := range model.DraftBuckets {
			for _, p := range partitions[pos][i] {
				t.AddPlayer(pos, p)
			}
		}
		// Level counts come from the assembled flat list, not from the
		// partitioner's bookkeeping.
		t.RecountLevels()
		teams = append(teams, t)
	}

	if err := c.db.ReplaceTeams(ctx, teams); err != nil {
		return nil, fmt.Errorf("error persisting drafted teams: %w", err)
	}
	return teams, nil
}

func (c *controller) GetDraft(ctx context.Context) ([]model.Team, *model.Reserves, error) {
	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing drafted teams: %w", err)
	}

	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing players: %w", err)
	}

	return teams, reservePool(players, teams), nil
}

func (c *controller) ClearDraft(ctx context.Context) error {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()
	return c.db.ClearTeams(ctx)
}

// bucketAvailable classifies the draft-available players into their role
// buckets.
func bucketAvailable(players []model.Player) map[model.Position][]model.Player {
	buckets := make(map[model.Position][]model.Player, len(model.DraftBuckets))
	for _, p := range players {
		if !p.AvailableForDraft {
			continue
		}
		if pos := p.Bucket(); pos != model.POS_UNKNOWN {
			buckets[pos] = append(buckets[pos], p)
		}
	}
	return buckets
}

// balanceByLevel partitions one bucket's players into teamsCount lists of at
// most perTeam players, spreading level-1 and level-2 players as evenly as
// possible. Both level sublists are shuffled independently, then each slot
// draws from whichever level is under-represented in that team so far; on a
// tie, from the level with more remaining supply. Slots stay unfilled when
// supply runs out - absence of players is not an error at this layer.
func balanceByLevel(players []model.Player, teamsCount, perTeam int, rng *rand.Rand) [][]model.Player {
	var level1, level2 []model.Player
	for _, p := range players {
		if p.Level == model.LevelBeginner {
			level1 = append(level1, p)
		} else {
			level2 = append(level2, p)
		}
	}
	shuffle(level1, rng)
	shuffle(level2, rng)

	teams := make([][]model.Player, teamsCount)
	i1, i2 := 0, 0
	for t := 0; t < teamsCount; t++ {
		team := make([]model.Player, 0, perTeam)
		for s := 0; s < perTeam; s++ {
			in1, in2 := 0, 0
			for _, p := range team {
				if p.Level == model.LevelBeginner {
					in1++
				} else {
					in2++
				}
			}
			rem1 := len(level1) - i1
			rem2 := len(level2) - i2

			var prefer1 bool
			switch {
			case rem1 > 0 && rem2 > 0:
				if in1 != in2 {
					prefer1 = in1 < in2
				} else {
					prefer1 = rem1 >= rem2
				}
			default:
				prefer1 = rem1 > 0
			}

			if prefer1 && i1 < len(level1) {
				team = append(team, level1[i1])
				i1++
			} else if i2 < len(level2) {
				team = append(team, level2[i2])
				i2++
			} else if i1 < len(level1) {
				team = append(team, level1[i1])
				i1++
			}
			// both exhausted: leave the slot unfilled
		}
		teams[t] = team
	}
	return teams
}

func shuffle(players []model.Player, rng *rand.Rand) {
	rng.Shuffle(len(players), func(i, j int) {
		players[i], players[j] = players[j], players[i]
	})
}

// reservePool collects the available players left out of every drafted team,
// bucketed by role.
func reservePool(players []model.Player, teams []model.Team) *model.Reserves {
	drafted := make(map[string]bool)
	for _, t := range teams {
		for _, p := range t.Players {
			drafted[p.ID] = true
		}
	}

	reserves := &model.Reserves{}
	for _, p := range players {
		if p.AvailableForDraft && !drafted[p.ID] {
			reserves.Add(p)
		}
	}
	return reserves
}

package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/jardellitieri/placar-magico/model"
)

// ReserveOrigin marks a selection taken from the reserve pool rather than
// from a drafted team.
const ReserveOrigin = -1

// Selection identifies one side of a swap: a player and where they were
// picked from, either a team index or the reserve pool.
type Selection struct {
	PlayerID  string
	TeamIndex int
}

func (s Selection) fromReserve() bool {
	return s.TeamIndex == ReserveOrigin
}

var (
	// ErrNoOpSwap means both selections reference the same player. The UI
	// treats reselecting a player as a deselect, so this is non-fatal.
	ErrNoOpSwap = errors.New("cannot swap a player with themselves")
	// ErrRoleMismatch means the selections have different role buckets. Only
	// same-bucket swaps preserve each team's formation shape.
	ErrRoleMismatch = errors.New("players must share the same role to be swapped")
	// ErrBothReserve means both selections came from the reserve pool, which
	// would be a no-op dressed up as a swap.
	ErrBothReserve = errors.New("cannot swap two reserve players")
)

func (c *controller) SwapPlayers(ctx context.Context, a, b Selection) ([]model.Team, error) {
	c.draftMu.Lock()
	defer c.draftMu.Unlock()

	if a.PlayerID == b.PlayerID {
		return nil, ErrNoOpSwap
	}
	if a.fromReserve() && b.fromReserve() {
		return nil, ErrBothReserve
	}

	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing drafted teams: %w", err)
	}

	playerA, err := c.resolveSelection(ctx, teams, a)
	if err != nil {
		return nil, err
	}
	playerB, err := c.resolveSelection(ctx, teams, b)
	if err != nil {
		return nil, err
	}

	if playerA.Bucket() != playerB.Bucket() {
		return nil, ErrRoleMismatch
	}
	pos := playerA.Bucket()

	// Remove both players from their teams first, then cross-insert each
	// into the other's origin. Reserve origins contribute nothing on the
	// team side: a displaced player becomes a reserve simply by being absent
	// from every team.
	if !a.fromReserve() {
		teams[a.TeamIndex].RemovePlayer(pos, playerA.ID)
	}
	if !b.fromReserve() {
		teams[b.TeamIndex].RemovePlayer(pos, playerB.ID)
	}
	if !b.fromReserve() {
		teams[b.TeamIndex].AddPlayer(pos, *playerA)
	}
	if !a.fromReserve() {
		teams[a.TeamIndex].AddPlayer(pos, *playerB)
	}

	if !a.fromReserve() {
		teams[a.TeamIndex].RecountLevels()
	}
	if !b.fromReserve() {
		teams[b.TeamIndex].RecountLevels()
	}

	if err := c.db.ReplaceTeams(ctx, teams); err != nil {
		return nil, fmt.Errorf("error persisting swap: %w", err)
	}
	return teams, nil
}

// resolveSelection finds the selection's full player record: in the named
// team for team origins, or in the roster for reserve origins. A reserve
// selection must not already be drafted.
func (c *controller) resolveSelection(ctx context.Context, teams []model.Team, sel Selection) (*model.Player, error) {
	if sel.fromReserve() {
		for _, t := range teams {
			if t.HasPlayer(sel.PlayerID) {
				return nil, fmt.Errorf("player %s is drafted to %s, not a reserve", sel.PlayerID, t.Name)
			}
		}
		p, err := c.db.GetPlayer(ctx, sel.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("error resolving reserve player: %w", err)
		}
		return p, nil
	}

	if sel.TeamIndex < 0 || sel.TeamIndex >= len(teams) {
		return nil, fmt.Errorf("team index %d is out of range", sel.TeamIndex)
	}
	for _, p := range teams[sel.TeamIndex].Players {
		if p.ID == sel.PlayerID {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("player %s is not in %s", sel.PlayerID, teams[sel.TeamIndex].Name)
}

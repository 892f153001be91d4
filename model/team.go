package model

import "fmt"

// Team is one drafted side. Players holds the full membership and the five
// bucket slices partition it; Level1Count/Level2Count are always recomputed
// from Players after any membership change, never edited independently.
type Team struct {
	Name                 string
	Players              []Player
	Goalkeepers          []Player
	Defenders            []Player
	Midfielders          []Player
	AttackingMidfielders []Player
	Pivots               []Player
	Level1Count          int
	Level2Count          int
}

// TeamName returns the sequential draft name for a team index: "Time A" for
// 0, "Time B" for 1 and so on.
func TeamName(idx int) string {
	return fmt.Sprintf("Time %c", rune('A'+idx))
}

// BucketPlayers returns the sub-list for one role bucket.
func (t *Team) BucketPlayers(pos Position) []Player {
	switch pos {
	case POS_GK:
		return t.Goalkeepers
	case POS_DEF:
		return t.Defenders
	case POS_MID:
		return t.Midfielders
	case POS_AM:
		return t.AttackingMidfielders
	case POS_PIV:
		return t.Pivots
	}
	return nil
}

func (t *Team) setBucket(pos Position, players []Player) {
	switch pos {
	case POS_GK:
		t.Goalkeepers = players
	case POS_DEF:
		t.Defenders = players
	case POS_MID:
		t.Midfielders = players
	case POS_AM:
		t.AttackingMidfielders = players
	case POS_PIV:
		t.Pivots = players
	}
}

// RemovePlayer drops a player from the given bucket sub-list and from the
// flat membership list.
func (t *Team) RemovePlayer(pos Position, playerID string) {
	t.setBucket(pos, removeByID(t.BucketPlayers(pos), playerID))
	t.Players = removeByID(t.Players, playerID)
}

// AddPlayer appends a player to the given bucket sub-list and to the flat
// membership list.
func (t *Team) AddPlayer(pos Position, p Player) {
	t.setBucket(pos, append(t.BucketPlayers(pos), p))
	t.Players = append(t.Players, p)
}

// RecountLevels recomputes Level1Count/Level2Count from the flat membership
// list. Call after any structural change.
func (t *Team) RecountLevels() {
	t.Level1Count = 0
	t.Level2Count = 0
	for _, p := range t.Players {
		switch p.Level {
		case LevelBeginner:
			t.Level1Count++
		case LevelAdvanced:
			t.Level2Count++
		}
	}
}

// HasPlayer reports whether the player id appears in the flat membership list.
func (t *Team) HasPlayer(playerID string) bool {
	for _, p := range t.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants: the flat list has no duplicate
// ids, its size equals the sum of the bucket sub-lists, every bucketed player
// classifies into its bucket, and the level counts match a recount. A
// violation is a defect, so this is used by tests rather than handled at
// runtime.
func (t *Team) Validate() error {
	seen := make(map[string]bool, len(t.Players))
	for _, p := range t.Players {
		if seen[p.ID] {
			return fmt.Errorf("team %s: duplicate player id %s", t.Name, p.ID)
		}
		seen[p.ID] = true
	}

	bucketed := 0
	for _, pos := range DraftBuckets {
		for _, p := range t.BucketPlayers(pos) {
			bucketed++
			if p.Bucket() != pos {
				return fmt.Errorf("team %s: player %s has bucket %s but is listed under %s", t.Name, p.Name, p.Bucket(), pos)
			}
			if !seen[p.ID] {
				return fmt.Errorf("team %s: player %s is bucketed but not in the flat list", t.Name, p.Name)
			}
		}
	}
	if bucketed != len(t.Players) {
		return fmt.Errorf("team %s: %d bucketed players but %d in the flat list", t.Name, bucketed, len(t.Players))
	}

	l1, l2 := 0, 0
	for _, p := range t.Players {
		switch p.Level {
		case LevelBeginner:
			l1++
		case LevelAdvanced:
			l2++
		}
	}
	if l1 != t.Level1Count || l2 != t.Level2Count {
		return fmt.Errorf("team %s: level counts %d/%d do not match recount %d/%d", t.Name, t.Level1Count, t.Level2Count, l1, l2)
	}
	return nil
}

// Reserves groups the available players that were left out of every drafted
// team, bucketed by role. Derived from the team batch, never persisted.
type Reserves struct {
	Goalkeepers          []Player
	Defenders            []Player
	Midfielders          []Player
	AttackingMidfielders []Player
	Pivots               []Player
}

func (r *Reserves) Add(p Player) {
	switch p.Bucket() {
	case POS_GK:
		r.Goalkeepers = append(r.Goalkeepers, p)
	case POS_DEF:
		r.Defenders = append(r.Defenders, p)
	case POS_MID:
		r.Midfielders = append(r.Midfielders, p)
	case POS_AM:
		r.AttackingMidfielders = append(r.AttackingMidfielders, p)
	case POS_PIV:
		r.Pivots = append(r.Pivots, p)
	}
}

// All returns the reserves as a single slice, in bucket order.
func (r *Reserves) All() []Player {
	out := make([]Player, 0, len(r.Goalkeepers)+len(r.Defenders)+len(r.Midfielders)+len(r.AttackingMidfielders)+len(r.Pivots))
	out = append(out, r.Goalkeepers...)
	out = append(out, r.Defenders...)
	out = append(out, r.Midfielders...)
	out = append(out, r.AttackingMidfielders...)
	out = append(out, r.Pivots...)
	return out
}

func removeByID(players []Player, id string) []Player {
	out := players[:0]
	for _, p := range players {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

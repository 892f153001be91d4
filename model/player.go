package model

import (
	"fmt"
	"time"
)

const (
	LevelBeginner = 1
	LevelAdvanced = 2
)

type Player struct {
	ID                string
	Name              string
	Role              string // one of RoleLabels
	Level             int    // 1 = beginner, 2 = advanced
	Goals             int
	Assists           int
	GamesPlayed       int
	AvailableForDraft bool
	Created           time.Time
	Updated           time.Time
}

// Bucket returns the canonical role bucket for the player's role label.
// Roster writes validate the label, so stored players always classify.
func (p *Player) Bucket() Position {
	pos, err := ClassifyRole(p.Role)
	if err != nil {
		return POS_UNKNOWN
	}
	return pos
}

func (p *Player) FormattedCreatedTime() string {
	if p.Created.IsZero() {
		return "unknown"
	}
	return p.Created.Format(time.DateTime)
}

// PlayerStats is a derived, never persisted rollup of a player's counters.
type PlayerStats struct {
	PlayerID    string
	Name        string
	Goals       int
	Assists     int
	GamesPlayed int
	TotalPoints int // goals + assists
	Rank        int // dense rank within the list it was produced for
}

// GoalkeeperStats tracks conceded goals for one goalkeeper across every game
// they appeared in.
type GoalkeeperStats struct {
	PlayerID      string
	Name          string
	GamesPlayed   int
	GoalsConceded int
	Rank          int
}

// Average is the conceded-per-game mean, formatted to two decimal places.
// Goalkeepers with no games display as 0.00.
func (g *GoalkeeperStats) Average() string {
	if g.GamesPlayed == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(g.GoalsConceded)/float64(g.GamesPlayed))
}

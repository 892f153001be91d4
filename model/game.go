package model

import "time"

// EventKind is the type of a single game event.
type EventKind string

const (
	EventGoal         EventKind = "goal"
	EventAssist       EventKind = "assist"
	EventOwnGoal      EventKind = "own_goal"
	EventGoalConceded EventKind = "goal_conceded"
)

// ParseEventKind returns the kind for its stored string form, or false when
// the string is not a known kind.
func ParseEventKind(s string) (EventKind, bool) {
	switch EventKind(s) {
	case EventGoal, EventAssist, EventOwnGoal, EventGoalConceded:
		return EventKind(s), true
	}
	return "", false
}

// GameEvent is one recorded event inside a game. PlayerName is a snapshot of
// the player's name at recording time so history survives roster deletions.
// Events are immutable once attached to a game.
type GameEvent struct {
	PlayerID   string
	PlayerName string
	Kind       EventKind
	Minute     int
}

// Game is one recorded match. HomeGoals and AwayGoals are derived from the
// event list - goals by a side's members plus own goals by the opposing
// side's members - and are never user-entered.
type Game struct {
	ID        string
	Date      time.Time
	HomeTeam  string
	AwayTeam  string
	HomeGoals int
	AwayGoals int
	Events    []GameEvent
	Created   time.Time
}

func (g *Game) FormattedDate() string {
	if g.Date.IsZero() {
		return "unknown"
	}
	return g.Date.Format(time.DateOnly)
}

// Participants returns the distinct player ids appearing in the event list,
// in first-appearance order. A player participates once per game no matter
// how many events they have.
func (g *Game) Participants() []string {
	seen := make(map[string]bool, len(g.Events))
	var ids []string
	for _, e := range g.Events {
		if !seen[e.PlayerID] {
			seen[e.PlayerID] = true
			ids = append(ids, e.PlayerID)
		}
	}
	return ids
}

// StatDelta is the change to one player's cumulative counters produced by
// recording a single game.
type StatDelta struct {
	PlayerID    string
	Goals       int
	Assists     int
	GamesPlayed int
}

// StatTotal is an absolute counter value for one player, used when counters
// are rebuilt from a full replay after a game edit.
type StatTotal struct {
	PlayerID    string
	Goals       int
	Assists     int
	GamesPlayed int
}

package controller

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jardellitieri/placar-magico/model"
)

// GetPlayerStats derives the leaderboard from the cumulative player
// counters, sorted by total points.
func (c *controller) GetPlayerStats(ctx context.Context) ([]model.PlayerStats, error) {
	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}

	stats := make([]model.PlayerStats, 0, len(players))
	for _, p := range players {
		stats = append(stats, model.PlayerStats{
			PlayerID:    p.ID,
			Name:        p.Name,
			Goals:       p.Goals,
			Assists:     p.Assists,
			GamesPlayed: p.GamesPlayed,
			TotalPoints: p.Goals + p.Assists,
		})
	}
	sortAndRank(stats, func(s *model.PlayerStats) int { return s.TotalPoints })
	return stats, nil
}

// GetPlayerStatsForDate replays the events of the games played on the given
// calendar date. Counters are ignored, so the view needs no separate storage.
func (c *controller) GetPlayerStatsForDate(ctx context.Context, date time.Time) ([]model.PlayerStats, error) {
	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}
	games, err := c.db.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}

	want := date.Format(time.DateOnly)
	var scoped []model.Game
	for _, g := range games {
		if g.Date.Format(time.DateOnly) == want {
			scoped = append(scoped, g)
		}
	}

	stats := statsFromGames(players, scoped)
	sortAndRank(stats, func(s *model.PlayerStats) int { return s.TotalPoints })
	return stats, nil
}

func (c *controller) TopScorers(ctx context.Context, n int) ([]model.PlayerStats, error) {
	return c.topBy(ctx, n, func(s *model.PlayerStats) int { return s.Goals })
}

func (c *controller) TopAssists(ctx context.Context, n int) ([]model.PlayerStats, error) {
	return c.topBy(ctx, n, func(s *model.PlayerStats) int { return s.Assists })
}

func (c *controller) topBy(ctx context.Context, n int, metric func(*model.PlayerStats) int) ([]model.PlayerStats, error) {
	stats, err := c.GetPlayerStats(ctx)
	if err != nil {
		return nil, err
	}

	filtered := stats[:0]
	for _, s := range stats {
		if metric(&s) > 0 {
			filtered = append(filtered, s)
		}
	}
	sortAndRank(filtered, metric)
	if n > 0 && len(filtered) > n {
		filtered = filtered[:n]
	}
	return filtered, nil
}

// GetGoalkeeperStats tallies conceded goals per goalkeeper: for every game a
// goalkeeper appears in, they concede the game's total score minus any goals
// they scored personally. Sorted by conceded-per-game average, best first.
func (c *controller) GetGoalkeeperStats(ctx context.Context) ([]model.GoalkeeperStats, error) {
	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}
	games, err := c.db.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}

	var stats []model.GoalkeeperStats
	for _, p := range players {
		if p.Bucket() != model.POS_GK {
			continue
		}
		gk := model.GoalkeeperStats{PlayerID: p.ID, Name: p.Name}
		for _, g := range games {
			participated := false
			ownScored := 0
			for _, e := range g.Events {
				if e.PlayerID != p.ID {
					continue
				}
				participated = true
				if e.Kind == model.EventGoal {
					ownScored++
				}
			}
			if !participated {
				continue
			}
			gk.GamesPlayed++
			if conceded := g.HomeGoals + g.AwayGoals - ownScored; conceded > 0 {
				gk.GoalsConceded += conceded
			}
		}
		stats = append(stats, gk)
	}

	slices.SortFunc(stats, func(a, b model.GoalkeeperStats) int {
		if d := concededAverage(&a) - concededAverage(&b); d != 0 {
			if d < 0 {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	for i := range stats {
		if i > 0 && concededAverage(&stats[i]) == concededAverage(&stats[i-1]) {
			stats[i].Rank = stats[i-1].Rank
		} else {
			stats[i].Rank = i + 1
		}
	}
	return stats, nil
}

func concededAverage(g *model.GoalkeeperStats) float64 {
	if g.GamesPlayed == 0 {
		return 0
	}
	return float64(g.GoalsConceded) / float64(g.GamesPlayed)
}

// statsFromGames folds an arbitrary set of games into per-player rollups with
// the same rules the cumulative counters follow: goals and assists from their
// events, one game played per distinct appearance. Every roster player gets a
// row, so a full replay matches the counters exactly.
func statsFromGames(players []model.Player, games []model.Game) []model.PlayerStats {
	byID := make(map[string]*model.PlayerStats, len(players))
	stats := make([]model.PlayerStats, 0, len(players))
	for _, p := range players {
		stats = append(stats, model.PlayerStats{PlayerID: p.ID, Name: p.Name})
	}
	for i := range stats {
		byID[stats[i].PlayerID] = &stats[i]
	}

	for _, g := range games {
		for _, id := range g.Participants() {
			if s, ok := byID[id]; ok {
				s.GamesPlayed++
			}
		}
		for _, e := range g.Events {
			s, ok := byID[e.PlayerID]
			if !ok {
				continue // deleted player, history keeps only the snapshot
			}
			switch e.Kind {
			case model.EventGoal:
				s.Goals++
			case model.EventAssist:
				s.Assists++
			}
		}
	}

	for i := range stats {
		stats[i].TotalPoints = stats[i].Goals + stats[i].Assists
	}
	return stats
}

// sortAndRank orders the stats descending by the metric (name ascending as a
// stable tiebreak) and assigns dense ranks: tied values share a rank, and the
// rank of a tied group is one more than the number of strictly better rows.
func sortAndRank(stats []model.PlayerStats, metric func(*model.PlayerStats) int) {
	slices.SortFunc(stats, func(a, b model.PlayerStats) int {
		if d := metric(&b) - metric(&a); d != 0 {
			return d
		}
		return strings.Compare(a.Name, b.Name)
	})
	for i := range stats {
		if i > 0 && metric(&stats[i]) == metric(&stats[i-1]) {
			stats[i].Rank = stats[i-1].Rank
		} else {
			stats[i].Rank = i + 1
		}
	}
}

package model

import (
	"reflect"
	"testing"
)

func TestParseEventKind(t *testing.T) {
	tests := []struct {
		input    string
		expected EventKind
		ok       bool
	}{
		{input: "goal", expected: EventGoal, ok: true},
		{input: "assist", expected: EventAssist, ok: true},
		{input: "own_goal", expected: EventOwnGoal, ok: true},
		{input: "goal_conceded", expected: EventGoalConceded, ok: true},
		{input: "Goal", expected: "", ok: false},
		{input: "penalty", expected: "", ok: false},
		{input: "", expected: "", ok: false},
	}

	for _, tc := range tests {
		k, ok := ParseEventKind(tc.input)
		if k != tc.expected || ok != tc.ok {
			t.Errorf("input: '%s', expected: ('%s', %v), got ('%s', %v)", tc.input, tc.expected, tc.ok, k, ok)
		}
	}
}

func TestGameParticipants(t *testing.T) {
	g := &Game{
		Events: []GameEvent{
			{PlayerID: "a", Kind: EventGoal},
			{PlayerID: "b", Kind: EventAssist},
			{PlayerID: "a", Kind: EventGoal},
			{PlayerID: "c", Kind: EventGoalConceded},
			{PlayerID: "b", Kind: EventGoal},
		},
	}

	expected := []string{"a", "b", "c"}
	if ids := g.Participants(); !reflect.DeepEqual(ids, expected) {
		t.Errorf("expected %v, got %v", expected, ids)
	}
}

func TestGoalkeeperAverage(t *testing.T) {
	tests := []struct {
		name     string
		stats    GoalkeeperStats
		expected string
	}{
		{name: "no games", stats: GoalkeeperStats{}, expected: "0.00"},
		{name: "whole number", stats: GoalkeeperStats{GamesPlayed: 2, GoalsConceded: 4}, expected: "2.00"},
		{name: "fraction", stats: GoalkeeperStats{GamesPlayed: 3, GoalsConceded: 5}, expected: "1.67"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if a := tc.stats.Average(); a != tc.expected {
				t.Errorf("expected '%s', got '%s'", tc.expected, a)
			}
		})
	}
}

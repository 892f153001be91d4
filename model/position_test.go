package model

import (
	"errors"
	"testing"
)

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Position
		err      error
	}{
		{input: "Goleiro", expected: POS_GK},
		{input: "Zagueiro", expected: POS_DEF},
		{input: "Lateral Direito", expected: POS_DEF},
		{input: "Lateral Esquerdo", expected: POS_DEF},
		{input: "Volante", expected: POS_MID},
		{input: "Meio-campo", expected: POS_MID},
		{input: "Meia-atacante", expected: POS_AM},
		{input: "Ponta Direita", expected: POS_AM},
		{input: "Ponta Esquerda", expected: POS_AM},
		{input: "Centroavante", expected: POS_PIV},
		{input: "Pivo", expected: POS_PIV},
		{input: "goleiro", expected: POS_UNKNOWN, err: ErrUnknownRole},
		{input: "Atacante", expected: POS_UNKNOWN, err: ErrUnknownRole},
		{input: "", expected: POS_UNKNOWN, err: ErrUnknownRole},
	}

	for _, tc := range tests {
		a, err := ClassifyRole(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
		if !errors.Is(err, tc.err) {
			t.Errorf("input: '%s', expected error: '%v', got '%v'", tc.input, tc.err, err)
		}
	}
}

func TestClassifyRoleCoversAllLabels(t *testing.T) {
	for _, label := range RoleLabels {
		if _, err := ClassifyRole(label); err != nil {
			t.Errorf("label '%s' does not classify: %v", label, err)
		}
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input    string
		expected Position
	}{
		{input: "goalkeeper", expected: POS_GK},
		{input: "defender", expected: POS_DEF},
		{input: "midfielder", expected: POS_MID},
		{input: "attacking_midfielder", expected: POS_AM},
		{input: "pivot", expected: POS_PIV},
		{input: "GK", expected: POS_UNKNOWN},
		{input: "striker", expected: POS_UNKNOWN},
		{input: "", expected: POS_UNKNOWN},
	}

	for _, tc := range tests {
		a := ParsePosition(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestFormationTotalsSeven(t *testing.T) {
	total := 0
	for _, pos := range DraftBuckets {
		total += Formation[pos]
	}
	if total != FormationSize {
		t.Errorf("formation sums to %d, expected %d", total, FormationSize)
	}
}

package web

import (
	"testing"
	"time"

	"github.com/jardellitieri/placar-magico/model"
)

func TestDateFormatter(t *testing.T) {
	tests := []struct {
		d    time.Time
		want string
	}{
		{d: time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), want: "2026-08-23"},
		{d: time.Date(2019, 9, 3, 0, 0, 0, 0, time.UTC), want: "2019-09-03"},
		{d: time.Time{}, want: "Never"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := dateFormatter(tc.d)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestBucketFormatter(t *testing.T) {
	tests := []struct {
		pos  model.Position
		want string
	}{
		{pos: model.POS_GK, want: "Goleiro"},
		{pos: model.POS_DEF, want: "Zagueiro"},
		{pos: model.POS_MID, want: "Meio-campo"},
		{pos: model.POS_AM, want: "Meia-atacante"},
		{pos: model.POS_PIV, want: "Pivô"},
		{pos: model.POS_UNKNOWN, want: "UNK"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := bucketFormatter(tc.pos)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestLevelFormatter(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{level: 1, want: "Nível 1"},
		{level: 2, want: "Nível 2"},
		{level: 9, want: "Nível 9"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := levelFormatter(tc.level)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestLevelForSouls(t *testing.T) {
	cases := []struct {
		souls int
		want  int
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{530, 2},
		{999, 2},
		{1000, 3},
		{-10, 1},
	}
	for _, tc := range cases {
		if got := LevelForSouls(tc.souls); got != tc.want {
			t.Fatalf("LevelForSouls(%d) = %d, want %d", tc.souls, got, tc.want)
		}
	}
}

func TestRewardStateValidate(t *testing.T) {
	if err := NewRewardState().Validate(); err != nil {
		t.Fatalf("expected initial reward state valid, got %v", err)
	}
	if err := (RewardState{Souls: -1, Level: 1}).Validate(); !errors.Is(err, ErrNegativeSouls) {
		t.Fatalf("expected ErrNegativeSouls, got %v", err)
	}
	if err := (RewardState{Souls: 600, Level: 1}).Validate(); err == nil {
		t.Fatal("expected stale level to be rejected")
	}
}

func TestRecentAchievementsNewestFirstCappedAtLimit(t *testing.T) {
	var log []Achievement
	for i := 1; i <= 5; i++ {
		log = append(log, Achievement{ID: fmt.Sprintf("a%d", i), Title: fmt.Sprintf("t%d", i)})
	}
	got := RecentAchievements(log, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 achievements, got %d", len(got))
	}
	if got[0].ID != "a5" || got[1].ID != "a4" || got[2].ID != "a3" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if log[0].ID != "a1" || log[4].ID != "a5" {
		t.Fatalf("log must not be mutated: %+v", log)
	}

	short := RecentAchievements(log[:2], 3)
	if len(short) != 2 || short[0].ID != "a2" {
		t.Fatalf("unexpected short projection: %+v", short)
	}
	if RecentAchievements(nil, 3) != nil {
		t.Fatal("expected nil for empty log")
	}
}

func TestLevelUpTitle(t *testing.T) {
	if got := LevelUpTitle(2); got != "Level 2 Reached" {
		t.Fatalf("unexpected title %q", got)
	}
}

package store

import (
	"fmt"
	"math"

	"github.com/sandeepkv93/tasksouls/internal/model"
)

type CatalogEntry struct {
	Title       string
	Description string
}

// Catalog is the fixed set of randomly drawn achievements. Level-up
// achievements are never part of it.
var Catalog = []CatalogEntry{
	{Title: "Bonfire Keeper", Description: "Complete a task at the bonfire"},
	{Title: "Undead Warrior", Description: "Another task vanquished"},
	{Title: "Praise the Sun", Description: "Productivity intensifies"},
}

// awardCompletion runs the reward cascade for an incomplete->complete edge.
// Level is recomputed from the post-award souls total and the catalog draw
// always runs, whether or not a level-up happened.
func awardCompletion(s State, env Env) (State, []Effect) {
	effects := []Effect{PlaySound{Sound: env.Sound}}

	amount, err := drawReward(env.Rand)
	if err != nil {
		effects = append(effects, RandomFailed{Stage: "reward", Cause: err.Error()})
	}
	prevLevel := s.Reward.Level
	s.Reward.Souls += amount
	s.Reward.Level = model.LevelForSouls(s.Reward.Souls)
	effects = append(effects, SoulsAwarded{Amount: amount, Total: s.Reward.Souls})

	if s.Reward.Level > prevLevel {
		effects = append(effects, LevelUp{From: prevLevel, To: s.Reward.Level})
		var unlocked []Effect
		s, unlocked = unlockAchievement(s, model.LevelUpTitle(s.Reward.Level), model.LevelUpDescription(s.Reward.Level), env)
		effects = append(effects, unlocked...)
	}

	// A source that failed the reward draw is not trusted for the catalog.
	if err != nil {
		return s, effects
	}
	entry, ok, err := drawCatalog(env.Rand)
	if err != nil {
		effects = append(effects, RandomFailed{Stage: "achievement", Cause: err.Error()})
	}
	if ok {
		var unlocked []Effect
		s, unlocked = unlockAchievement(s, entry.Title, entry.Description, env)
		effects = append(effects, unlocked...)
	}
	return s, effects
}

func drawReward(r RandomSource) (amount int, err error) {
	amount = model.RewardMin
	if r == nil {
		return amount, fmt.Errorf("store: no random source")
	}
	defer func() {
		if rec := recover(); rec != nil {
			amount, err = model.RewardMin, fmt.Errorf("store: random source panicked: %v", rec)
		}
	}()
	span := model.RewardMax - model.RewardMin + 1
	n := r.IntN(span)
	if n < 0 || n >= span {
		return model.RewardMin, fmt.Errorf("store: reward draw %d out of range [0,%d)", n, span)
	}
	return model.RewardMin + n, nil
}

func drawCatalog(r RandomSource) (entry CatalogEntry, ok bool, err error) {
	if r == nil || len(Catalog) == 0 {
		return CatalogEntry{}, false, nil
	}
	defer func() {
		if rec := recover(); rec != nil {
			entry, ok, err = CatalogEntry{}, false, fmt.Errorf("store: random source panicked: %v", rec)
		}
	}()
	f := r.Float64()
	if math.IsNaN(f) || f < 0 || f >= 1 {
		return CatalogEntry{}, false, fmt.Errorf("store: chance draw %v out of range [0,1)", f)
	}
	if f >= AchievementChance {
		return CatalogEntry{}, false, nil
	}
	idx := r.IntN(len(Catalog))
	if idx < 0 || idx >= len(Catalog) {
		return CatalogEntry{}, false, fmt.Errorf("store: catalog draw %d out of range", idx)
	}
	return Catalog[idx], true, nil
}

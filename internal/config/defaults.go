package config

import (
	_ "embed"
)

//go:embed defaults/garbage.yaml
var defaultGarbageYAML []byte

//go:embed defaults/hook.yaml
var defaultHookYAML []byte

//go:embed defaults/snowplow.yaml
var defaultSnowYAML []byte

//go:embed defaults/sand.yaml
var defaultSandYAML []byte

// DefaultGarbageConfig returns the default garbage game configuration.
func DefaultGarbageConfig() GarbageConfig {
	return GarbageConfig{
		Belt: GarbageBelt{
			SpawnBaseMs:     1500,
			SpawnStepMs:     300,
			SpawnFloorMs:    600,
			FallSpeedMin:    0.3,
			FallSpeedJitter: 0.2,
			ResolveLine:     82,
		},
		Scoring: GarbageScoring{
			BasePoints: 10,
			ComboStep:  2,
			ComboCap:   10,
			Penalty:    5,
		},
		Shifts: []ShiftConfig{
			{Name: "Morgunvakt", Quota: 10, SpeedMod: 1.0},
			{Name: "Eftirmiðdagur", Quota: 15, SpeedMod: 1.3},
			{Name: "Næturvakt", Quota: 25, SpeedMod: 1.7},
			{Name: "Helgarvakt", Quota: 40, SpeedMod: 2.2},
		},
		RoundTime: 60,
	}
}

// DefaultHookConfig returns the default hook crane configuration.
func DefaultHookConfig() HookConfig {
	return HookConfig{
		Arm: HookArm{
			ExtendSpeed:  1.5,
			RetractSpeed: 3.0,
			MaxReach:     35,
			ArmOffset:    15,
			Tolerance:    8,
			DriftGain:    0.1,
			DriftDecay:   0.8,
			TruckStep:    4,
			TruckMax:     90,
		},
		Container: HookContainer{
			ZoneMin:   50,
			ZoneMax:   90,
			MoveLevel: 3,
			MoveSpeed: 0.1,
			ResetMs:   1000,
			WindLevel: 2,
		},
		Points: map[string]int{
			"normal":   100,
			"heavy":    150,
			"priority": 300,
			"bonus":    500,
		},
		RoundTime:    45,
		TimePerLevel: 10,
		QuotaPer:     3,
	}
}

// DefaultSnowConfig returns the default snow plow configuration.
func DefaultSnowConfig() SnowConfig {
	return SnowConfig{
		GridW:           12,
		GridH:           10,
		ObstacleBase:    0.08,
		ObstacleStep:    0.01,
		IceChance:       0.15,
		DeepChance:      0.2,
		ItemChance:      0.05,
		ClearPoints:     10,
		ObstaclePenalty: 0,
		TimeBase:        60,
		TimeStep:        2,
	}
}

// DefaultSandConfig returns the default sand excavator configuration.
func DefaultSandConfig() SandConfig {
	return SandConfig{
		RotateStep:      2,
		ArmStep:         2,
		DigRotationMax:  30,
		DigHeightMin:    70,
		DumpRotationMin: 150,
		DumpHeightMin:   20,
		BasePoints:      50,
		LevelBonus:      10,
		BonusTime:       30,
		RoundTime:       60,
		Levels: []SandLevel{
			{Name: "Nýliði", Wind: 0, Moving: false, Quota: 200, Speed: 0},
			{Name: "Vanur", Wind: 0, Moving: true, Quota: 400, Speed: 0.2},
			{Name: "Fagmaður", Wind: 1, Moving: true, Quota: 600, Speed: 0.5},
			{Name: "Meistari", Wind: 3, Moving: true, Quota: 1000, Speed: 0.8},
		},
	}
}

// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// ShiftConfig is one row of the garbage game's shift table.
type ShiftConfig struct {
	Name     string  `yaml:"name"`
	Quota    int     `yaml:"quota"`
	SpeedMod float64 `yaml:"speed_mod"`
}

// GarbageConfig contains all tuning for the garbage sorting game.
type GarbageConfig struct {
	Belt    GarbageBelt    `yaml:"belt"`
	Scoring GarbageScoring `yaml:"scoring"`
	Shifts  []ShiftConfig  `yaml:"shifts"`

	RoundTime int `yaml:"round_time"` // Seconds
}

// GarbageBelt defines spawn and fall behavior for the conveyor.
type GarbageBelt struct {
	SpawnBaseMs     int     `yaml:"spawn_base_ms"`  // Interval at shift 0
	SpawnStepMs     int     `yaml:"spawn_step_ms"`  // Reduction per shift
	SpawnFloorMs    int     `yaml:"spawn_floor_ms"` // Hard minimum
	FallSpeedMin    float64 `yaml:"fall_speed_min"`
	FallSpeedJitter float64 `yaml:"fall_speed_jitter"`
	ResolveLine     float64 `yaml:"resolve_line"` // Round-space y where items hit the bins
}

// GarbageScoring defines point values for the garbage game.
type GarbageScoring struct {
	BasePoints int `yaml:"base_points"`
	ComboStep  int `yaml:"combo_step"`
	ComboCap   int `yaml:"combo_cap"`
	Penalty    int `yaml:"penalty"`
}

// HookConfig contains all tuning for the hook crane game.
type HookConfig struct {
	Arm       HookArm        `yaml:"arm"`
	Container HookContainer  `yaml:"container"`
	Points    map[string]int `yaml:"points"` // Weight class -> points

	RoundTime    int `yaml:"round_time"`     // Seconds at level 1
	TimePerLevel int `yaml:"time_per_level"` // Extra seconds per level
	QuotaPer     int `yaml:"quota_per"`      // Containers per level = level * quota_per
}

// HookArm defines the crane arm's reach and wind behavior.
type HookArm struct {
	ExtendSpeed  float64 `yaml:"extend_speed"`
	RetractSpeed float64 `yaml:"retract_speed"`
	MaxReach     float64 `yaml:"max_reach"`
	ArmOffset    float64 `yaml:"arm_offset"` // Tip x relative to the truck
	Tolerance    float64 `yaml:"tolerance"`  // Hit window around the container
	DriftGain    float64 `yaml:"drift_gain"`
	DriftDecay   float64 `yaml:"drift_decay"`
	TruckStep    float64 `yaml:"truck_step"`
	TruckMax     float64 `yaml:"truck_max"`
}

// HookContainer defines where containers sit and how they move.
type HookContainer struct {
	ZoneMin   float64 `yaml:"zone_min"`
	ZoneMax   float64 `yaml:"zone_max"`
	MoveLevel int     `yaml:"move_level"`  // First level with a moving container
	MoveSpeed float64 `yaml:"move_speed"`  // Per-level speed factor
	ResetMs   int     `yaml:"reset_ms"`    // Delay before the next container appears
	WindLevel int     `yaml:"wind_level"`  // First level with wind
}

// SnowConfig contains all tuning for the snow plow game.
type SnowConfig struct {
	GridW int `yaml:"grid_w"`
	GridH int `yaml:"grid_h"`

	ObstacleBase float64 `yaml:"obstacle_base"` // Chance at level 1
	ObstacleStep float64 `yaml:"obstacle_step"` // Added per level
	IceChance    float64 `yaml:"ice_chance"`
	DeepChance   float64 `yaml:"deep_chance"`
	ItemChance   float64 `yaml:"item_chance"`

	ClearPoints     int `yaml:"clear_points"`
	ObstaclePenalty int `yaml:"obstacle_penalty"`
	TimeBase        int `yaml:"time_base"` // Seconds at level 1
	TimeStep        int `yaml:"time_step"` // Seconds removed per level
}

// SandLevel is one row of the sand game's level table.
type SandLevel struct {
	Name   string  `yaml:"name"`
	Wind   float64 `yaml:"wind"`
	Moving bool    `yaml:"moving"`
	Quota  int     `yaml:"quota"` // Level score required to advance
	Speed  float64 `yaml:"speed"` // Container oscillation speed
}

// SandConfig contains all tuning for the excavator sand game.
type SandConfig struct {
	RotateStep float64 `yaml:"rotate_step"`
	ArmStep    float64 `yaml:"arm_step"`

	DigRotationMax  float64 `yaml:"dig_rotation_max"`
	DigHeightMin    float64 `yaml:"dig_height_min"`
	DumpRotationMin float64 `yaml:"dump_rotation_min"`
	DumpHeightMin   float64 `yaml:"dump_height_min"`

	BasePoints int `yaml:"base_points"`
	LevelBonus int `yaml:"level_bonus"`
	BonusTime  int `yaml:"bonus_time"` // Seconds granted on level-up
	RoundTime  int `yaml:"round_time"`

	Levels []SandLevel `yaml:"levels"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// SpeedFactorForPreset returns the global motion/spawn scaling for a preset.
// "fixed" keeps the configured values and disables nothing else; the shift
// tables already provide in-round progression.
func SpeedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}

// ApplyGarbagePreset scales the garbage game's shift speeds for a preset.
func ApplyGarbagePreset(cfg *GarbageConfig, preset DifficultyPreset) {
	factor := SpeedFactorForPreset(preset)
	for i := range cfg.Shifts {
		cfg.Shifts[i].SpeedMod *= factor
	}
}

// ApplyHookPreset scales the hook game's wind onset and timing for a preset.
func ApplyHookPreset(cfg *HookConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Container.WindLevel++
		cfg.TimePerLevel += 5
	case DifficultyHard:
		if cfg.Container.WindLevel > 1 {
			cfg.Container.WindLevel--
		}
		cfg.RoundTime -= 10
	}
}

// ApplySnowPreset scales the snow game's hazards for a preset.
func ApplySnowPreset(cfg *SnowConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.IceChance *= 0.5
		cfg.TimeStep = 0
	case DifficultyHard:
		cfg.IceChance *= 1.5
		cfg.ObstacleBase += 0.04
	}
}

// ApplySandPreset scales the sand game's wind for a preset.
func ApplySandPreset(cfg *SandConfig, preset DifficultyPreset) {
	factor := SpeedFactorForPreset(preset)
	for i := range cfg.Levels {
		cfg.Levels[i].Wind *= factor
		cfg.Levels[i].Speed *= factor
	}
}

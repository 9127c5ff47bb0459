package config

// PhysicsConfig holds the values shared by every moving body.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	Friction         float64 `yaml:"friction"`
	TileSize         int     `yaml:"tile_size"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpriteOffsetX float64 `yaml:"sprite_offset_x"`
	SpriteOffsetY float64 `yaml:"sprite_offset_y"`

	// Jumping
	JumpSpeed        float64 `yaml:"jump_speed"`
	MaxJumps         int     `yaml:"max_jumps"`
	WallJumpSpeedX   float64 `yaml:"wall_jump_speed_x"`
	WallJumpSpeedY   float64 `yaml:"wall_jump_speed_y"`
	WallSlideMaxFall float64 `yaml:"wall_slide_max_fall"`
	AirborneTicks    int     `yaml:"airborne_ticks"`   // air time before counting as airborne
	FallDeathTicks   int     `yaml:"fall_death_ticks"` // air time before free-fall death

	// Dash
	DashDuration        int     `yaml:"dash_duration"`
	DashActiveThreshold int     `yaml:"dash_active_threshold"` // timer above this is an active dash
	DashSpeed           float64 `yaml:"dash_speed"`
	DashHandoff         float64 `yaml:"dash_handoff"` // velocity factor on the last active tick
	DashBurstCount      int     `yaml:"dash_burst_count"`
	DashBurstMinSpeed   float64 `yaml:"dash_burst_min_speed"`
	DashBurstSpeedRange float64 `yaml:"dash_burst_speed_range"`
	DashTrailSpeed      float64 `yaml:"dash_trail_speed"`
	DashParticleFrames  int     `yaml:"dash_particle_frames"` // particles start at a random cursor below this
}

// EnemyConfig contains enemy AI configuration
type EnemyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Patrol
	PatrolChance   float64 `yaml:"patrol_chance"`
	PatrolMinTicks int     `yaml:"patrol_min_ticks"`
	PatrolMaxTicks int     `yaml:"patrol_max_ticks"`
	PatrolSpeed    float64 `yaml:"patrol_speed"`
	ProbeAhead     float64 `yaml:"probe_ahead"`
	ProbeBelow     float64 `yaml:"probe_below"`

	// Shooting
	ShotBand        float64 `yaml:"shot_band"` // max vertical distance to the player
	MuzzleOffset    float64 `yaml:"muzzle_offset"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	MuzzleSparks    int     `yaml:"muzzle_sparks"`
	GunOffset       float64 `yaml:"gun_offset"`
}

// EffectsConfig tunes particles, sparks and projectiles.
type EffectsConfig struct {
	SparkDecay       float64 `yaml:"spark_decay"`
	SparkBaseSpeed   float64 `yaml:"spark_base_speed"`
	StreakBaseSpeed  float64 `yaml:"streak_base_speed"`
	ImpactSparks     int     `yaml:"impact_sparks"`
	ExplosionCount   int     `yaml:"explosion_count"`
	ExplosionSpeed   float64 `yaml:"explosion_speed"`
	ExplosionFrames  int     `yaml:"explosion_frames"`
	ProjectileMaxAge int     `yaml:"projectile_max_age"`

	// Leaves
	LeafChanceDivisor float64 `yaml:"leaf_chance_divisor"`
	LeafVelocityX     float64 `yaml:"leaf_velocity_x"`
	LeafVelocityY     float64 `yaml:"leaf_velocity_y"`
	LeafWobbleFreq    float64 `yaml:"leaf_wobble_freq"`
	LeafWobbleAmp     float64 `yaml:"leaf_wobble_amp"`
	LeafInset         float64 `yaml:"leaf_inset"`
	LeafRegionW       float64 `yaml:"leaf_region_w"`
	LeafRegionH       float64 `yaml:"leaf_region_h"`
}

// CameraConfig controls the follow camera.
type CameraConfig struct {
	Smoothing float64 `yaml:"smoothing"` // divisor of the remaining distance per tick
}

// CloudConfig controls the parallax cloud layer.
type CloudConfig struct {
	Count      int     `yaml:"count"`
	Spread     float64 `yaml:"spread"`
	MinSpeed   float64 `yaml:"min_speed"`
	SpeedRange float64 `yaml:"speed_range"`
	MinDepth   float64 `yaml:"min_depth"`
	DepthRange float64 `yaml:"depth_range"`
}

// DisplayConfig is the logical screen and tick rate.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
	TPS    int `yaml:"tps"`
}

var (
	Physics PhysicsConfig
	Player  PlayerConfig
	Enemy   EnemyConfig
	Effects EffectsConfig
	Camera  CameraConfig
	Clouds  CloudConfig
	Display DisplayConfig
)

func init() {
	Physics = PhysicsConfig{
		Gravity:          0.1,
		TerminalVelocity: 5,
		Friction:         0.1,
		TileSize:         16,
	}

	Player = PlayerConfig{
		Width:         8,
		Height:        15,
		SpriteOffsetX: -3,
		SpriteOffsetY: -3,

		JumpSpeed:        3,
		MaxJumps:         1,
		WallJumpSpeedX:   3.5,
		WallJumpSpeedY:   2.5,
		WallSlideMaxFall: 0.5,
		AirborneTicks:    4,
		FallDeathTicks:   120,

		DashDuration:        60,
		DashActiveThreshold: 50,
		DashSpeed:           8,
		DashHandoff:         0.1,
		DashBurstCount:      20,
		DashBurstMinSpeed:   0.5,
		DashBurstSpeedRange: 0.5,
		DashTrailSpeed:      3,
		DashParticleFrames:  4,
	}

	Enemy = EnemyConfig{
		Width:  8,
		Height: 15,

		PatrolChance:   0.01,
		PatrolMinTicks: 30,
		PatrolMaxTicks: 120,
		PatrolSpeed:    0.5,
		ProbeAhead:     8,
		ProbeBelow:     16,

		ShotBand:        16,
		MuzzleOffset:    7,
		ProjectileSpeed: 1.5,
		MuzzleSparks:    4,
		GunOffset:       4,
	}

	Effects = EffectsConfig{
		SparkDecay:       0.1,
		SparkBaseSpeed:   2,
		StreakBaseSpeed:  5,
		ImpactSparks:     4,
		ExplosionCount:   30,
		ExplosionSpeed:   5,
		ExplosionFrames:  8,
		ProjectileMaxAge: 360,

		LeafChanceDivisor: 39999,
		LeafVelocityX:     -0.1,
		LeafVelocityY:     0.3,
		LeafWobbleFreq:    0.035,
		LeafWobbleAmp:     0.3,
		LeafInset:         4,
		LeafRegionW:       23,
		LeafRegionH:       13,
	}

	Camera = CameraConfig{
		Smoothing: 20,
	}

	Clouds = CloudConfig{
		Count:      16,
		Spread:     999,
		MinSpeed:   0.1,
		SpeedRange: 0.05,
		MinDepth:   0.2,
		DepthRange: 0.6,
	}

	Display = DisplayConfig{
		Width:  320,
		Height: 240,
		Scale:  3,
		TPS:    60,
	}
}

package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer every drawer registers on.
const Default = ecs.LayerID(0)

// GeneralConfig contains window and tick-loop configuration.
type GeneralConfig struct {
	Width  int
	Height int
	Title  string

	// AssetsDir is resolved relative to the working directory. Missing
	// resources degrade to silent/not-ready, they never abort startup.
	AssetsDir string

	// MaxTickDeltaMs bounds the simulation step after a stall (window
	// dragged, tab backgrounded) so the fight never fast-forwards.
	MaxTickDeltaMs float64
}

// FighterConfig contains per-fighter tuning.
type FighterConfig struct {
	MaxHealth    int
	AttackDamage int
	WalkSpeed    float64 // world units per second

	// Sprite sheet geometry
	SheetKey    string // directory under images/
	FrameWidth  int
	FrameHeight int
	Scale       float64

	// Initial round layout
	SpawnX float64
	SpawnY float64
	Facing float64 // -1 or +1
}

// CombatConfig contains hit-resolution and AI tuning shared by both sides.
type CombatConfig struct {
	// Enemy AI
	AttackRange           float64 // horizontal distance that triggers attacks
	EnemyAttackCooldownMs float64
	StunAttackDelayMs     float64 // extra cooldown after recovering from a taunt stun

	// Hurtbox, as fractions of the scaled frame
	HurtboxWidthRatio  float64
	HurtboxHeightRatio float64

	// Hitbox, as fractions of the scaled frame. The box's top edge sits
	// HitboxRaiseRatio frame-heights above the ground contact point and
	// the box starts HitboxForwardRatio frame-widths in front of the
	// fighter in its facing direction.
	HitboxWidthRatio   float64
	HitboxHeightRatio  float64
	HitboxRaiseRatio   float64
	HitboxForwardRatio float64

	// Active swing window, as fractions of the attack animation's
	// effective frame count.
	WindowStartRatio float64
	WindowEndRatio   float64
}

// MatchConfig contains round lifecycle timing and banner literals.
type MatchConfig struct {
	CountdownMs float64
	ReadyHalfMs float64 // "READY" and "FIGHT!" each hold for one half

	BannerReady     string
	BannerFight     string
	BannerPlayerWin string
	BannerEnemyWin  string
}

// StageConfig contains the arena map and the fallback used when the map
// cannot be loaded.
type StageConfig struct {
	MapFile string
	MarginX float64 // fighters stay this far inside the stage edges

	// Fallbacks when no map is available
	MinX            float64
	MaxX            float64
	FloorY          float64
	BackgroundColor color.RGBA
}

var C = GeneralConfig{
	Width:          960,
	Height:         540,
	Title:          "Street Duel",
	AssetsDir:      "assets",
	MaxTickDeltaMs: 50,
}

var Player = FighterConfig{
	MaxHealth:    120,
	AttackDamage: 10,
	WalkSpeed:    120,
	SheetKey:     "player",
	FrameWidth:   80,
	FrameHeight:  80,
	Scale:        1.5,
	SpawnX:       300,
	SpawnY:       460,
	Facing:       1,
}

var Enemy = FighterConfig{
	MaxHealth:    180,
	AttackDamage: 12,
	WalkSpeed:    100,
	SheetKey:     "enemy",
	FrameWidth:   80,
	FrameHeight:  80,
	Scale:        1.5,
	SpawnX:       660,
	SpawnY:       460,
	Facing:       -1,
}

var Combat = CombatConfig{
	AttackRange:           70,
	EnemyAttackCooldownMs: 900,
	StunAttackDelayMs:     800,

	HurtboxWidthRatio:  0.45,
	HurtboxHeightRatio: 0.60,

	HitboxWidthRatio:   0.50,
	HitboxHeightRatio:  0.35,
	HitboxRaiseRatio:   0.75,
	HitboxForwardRatio: 0.10,

	WindowStartRatio: 0.3,
	WindowEndRatio:   0.7,
}

var Match = MatchConfig{
	CountdownMs: 3000,
	ReadyHalfMs: 700,

	BannerReady:     "READY",
	BannerFight:     "FIGHT!",
	BannerPlayerWin: "YOU WIN!",
	BannerEnemyWin:  "YOU LOSE..",
}

var Stage = StageConfig{
	MapFile: "levels/arena.tmx",
	MarginX: 60,

	MinX:            60,
	MaxX:            900,
	FloorY:          460,
	BackgroundColor: color.RGBA{24, 20, 37, 255},
}

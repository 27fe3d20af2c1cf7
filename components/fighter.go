package components

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/arcadebit/streetduel/assets"
	"github.com/arcadebit/streetduel/assets/animations"
	"github.com/arcadebit/streetduel/config"
)

// Box is an axis-aligned rectangle in world space.
type Box struct {
	X, Y, W, H float64
}

// Overlaps reports strict AABB overlap; rectangles that merely touch do
// not count as hits.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.X+o.W && b.X+b.W > o.X && b.Y < o.Y+o.H && b.Y+b.H > o.Y
}

// FighterData is one combatant: position, facing, health, the owned
// animation set and the per-swing combat flags. X/Y is the ground
// contact point; sprites draw bottom-anchored onto it.
type FighterData struct {
	X      float64
	Y      float64
	Facing float64 // -1 or +1
	Scale  float64

	FrameWidth  int
	FrameHeight int

	Animations map[config.AnimID]*animations.Animation
	Current    config.AnimID

	MaxHealth    int
	Health       int
	AttackDamage int
	WalkSpeed    float64

	// HasLandedHit is cleared when an attack starts and set after that
	// swing's first successful hit, so one swing damages at most once.
	HasLandedHit bool

	// Stunned locks the fighter into its taunt pose until the taunt
	// animation finishes.
	Stunned bool

	// NextAttackReadyAt is compared against the synthetic match clock,
	// never wall time.
	NextAttackReadyAt float64

	// Sounds per animation role; missing cues are nil and silent.
	Sounds map[config.AnimID]*assets.Sound

	// Object mirrors the hurtbox inside the collision space.
	Object *resolv.Object
}

var Fighter = donburi.NewComponentType[FighterData]()

// CurrentAnimation returns the active animation, nil if the fighter does
// not own one under the current role.
func (f *FighterData) CurrentAnimation() *animations.Animation {
	return f.Animations[f.Current]
}

// HasAnimation reports whether the fighter owns the given role.
func (f *FighterData) HasAnimation(id config.AnimID) bool {
	return f.Animations[id] != nil
}

func (f *FighterData) sound(id config.AnimID) *assets.Sound {
	if f.Sounds == nil {
		return nil
	}
	return f.Sounds[id]
}

// SetAnimation switches the active animation. Requests are ignored when
// the role is unchanged, unknown, or blocked by stun (a stunned fighter
// may only show taunt). Every owned animation is reset on a switch so an
// animation always restarts from frame zero when resumed.
func (f *FighterData) SetAnimation(id config.AnimID) {
	if id == f.Current {
		return
	}
	if f.Stunned && id != config.AnimTaunt {
		return
	}
	if !f.HasAnimation(id) {
		return
	}

	for _, a := range f.Animations {
		a.Reset()
	}
	if f.Current == config.AnimWalk {
		f.sound(config.AnimWalk).Stop()
	}
	f.Current = id
	if id == config.AnimAttack {
		f.HasLandedHit = false
	}
	switch id {
	case config.AnimWalk, config.AnimAttack, config.AnimTaunt:
		f.sound(id).Play()
	}
}

// Update advances the active animation by deltaMs and settles transient
// states: a stunned fighter is forced back onto taunt, and a finished
// attack drops to idle.
func (f *FighterData) Update(deltaMs float64) {
	cur := f.CurrentAnimation()
	if cur != nil {
		cur.Update(deltaMs)
	}
	if f.Stunned && f.Current != config.AnimTaunt {
		f.SetAnimation(config.AnimTaunt)
		return
	}
	if f.Current == config.AnimAttack && cur != nil && cur.Finished() {
		f.SetAnimation(config.AnimIdle)
	}
}

func (f *FighterData) frameSize() (float64, float64) {
	return float64(f.FrameWidth) * f.Scale, float64(f.FrameHeight) * f.Scale
}

// Hurtbox is where the fighter can be damaged: a band centered on x and
// standing on the ground contact point. Defined in every animation.
func (f *FighterData) Hurtbox() Box {
	fw, fh := f.frameSize()
	w := fw * config.Combat.HurtboxWidthRatio
	h := fh * config.Combat.HurtboxHeightRatio
	return Box{X: f.X - w/2, Y: f.Y - h, W: w, H: h}
}

// AttackWindowActive reports whether the current attack frame can land a
// hit: only the middle of the swing counts, never windup or recovery.
func (f *FighterData) AttackWindowActive() bool {
	if f.Current != config.AnimAttack {
		return false
	}
	a := f.CurrentAnimation()
	if a == nil || !a.Ready() {
		return false
	}
	n := a.EffectiveFrameCount()
	if n <= 1 {
		return false
	}
	lo := int(math.Floor(config.Combat.WindowStartRatio * float64(n)))
	hi := int(math.Ceil(config.Combat.WindowEndRatio * float64(n)))
	return a.Index() >= lo && a.Index() <= hi
}

// Hitbox is the attack's damaging region, defined only while the swing
// window is active. It floats in front of the fighter at torso height.
func (f *FighterData) Hitbox() (Box, bool) {
	if !f.AttackWindowActive() {
		return Box{}, false
	}
	fw, fh := f.frameSize()
	w := fw * config.Combat.HitboxWidthRatio
	h := fh * config.Combat.HitboxHeightRatio
	top := f.Y - fh*config.Combat.HitboxRaiseRatio
	forward := fw * config.Combat.HitboxForwardRatio
	var x float64
	if f.Facing >= 0 {
		x = f.X + forward
	} else {
		x = f.X - forward - w
	}
	return Box{X: x, Y: top, W: w, H: h}, true
}

// TakeDamage reduces health, flooring at zero. Negative amounts are
// ignored.
func (f *FighterData) TakeDamage(amount int) {
	if amount < 0 {
		return
	}
	f.Health -= amount
	if f.Health < 0 {
		f.Health = 0
	}
}

// HealthFraction is the presenter-facing health ratio in [0, 1].
func (f *FighterData) HealthFraction() float64 {
	if f.MaxHealth <= 0 {
		return 0
	}
	return float64(f.Health) / float64(f.MaxHealth)
}

// ForceTauntStun locks the fighter into its taunt pose, restarting it,
// and pushes the next allowed attack nowMs+delay into the future. A
// fighter without a taunt animation cannot be stunned.
func (f *FighterData) ForceTauntStun(nowMs float64) {
	if !f.HasAnimation(config.AnimTaunt) {
		return
	}
	f.Stunned = true
	for _, a := range f.Animations {
		a.Reset()
	}
	if f.Current == config.AnimWalk {
		f.sound(config.AnimWalk).Stop()
	}
	f.Current = config.AnimTaunt
	f.HasLandedHit = false
	f.NextAttackReadyAt = nowMs + config.Combat.StunAttackDelayMs
	f.sound(config.AnimTaunt).Play()
}

// SyncObject mirrors the hurtbox into the collision space.
func (f *FighterData) SyncObject() {
	if f.Object == nil {
		return
	}
	hb := f.Hurtbox()
	f.Object.X = hb.X
	f.Object.Y = hb.Y
	f.Object.W = hb.W
	f.Object.H = hb.H
	f.Object.Update()
}

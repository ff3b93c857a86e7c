package controller

import (
	"errors"
	"math"
	"time"
)

// Tuning holds the movement constants. It is loaded once per character and
// stays fixed for that character's lifetime.
type Tuning struct {
	MoveForce          float64 `yaml:"move_force"`
	MaxVelocity        float64 `yaml:"max_velocity"`
	DampingCoefficient float64 `yaml:"damping_coefficient"`

	GroundedGraceDistance  float64 `yaml:"grounded_grace_distance"`
	JumpVelocity           float64 `yaml:"jump_velocity"`
	JumpDampingCoefficient float64 `yaml:"jump_damping_coefficient"`

	SlideForce           float64       `yaml:"slide_force"`
	SlideSquish          float64       `yaml:"slide_squish"`
	SlideDuration        time.Duration `yaml:"slide_duration"`
	CeilingGraceDistance float64       `yaml:"ceiling_grace_distance"`
	RestoreRetryDelay    time.Duration `yaml:"restore_retry_delay"`
	MaxRestoreRetries    int           `yaml:"max_restore_retries"`

	WallGraceDistance      float64 `yaml:"wall_grace_distance"`
	WallProbeHeight        float64 `yaml:"wall_probe_height"`
	WallClingFactor        float64 `yaml:"wall_cling_factor"`
	WallJumpForceX         float64 `yaml:"wall_jump_force_x"`
	WallJumpForceY         float64 `yaml:"wall_jump_force_y"`
	NonClingableSurfaceTag string  `yaml:"non_clingable_surface_tag"`

	GroundLayerFilter  string `yaml:"ground_layer_filter"`
	GroundCheckOffset  Vec2   `yaml:"ground_check_offset"`
	CeilingCheckOffset Vec2   `yaml:"ceiling_check_offset"`
}

// DefaultTuning returns the stock movement constants.
func DefaultTuning() Tuning {
	return Tuning{
		MoveForce:          15,
		MaxVelocity:        6,
		DampingCoefficient: 0.97,

		GroundedGraceDistance:  0.05,
		JumpVelocity:           12,
		JumpDampingCoefficient: 0.5,

		SlideForce:           45,
		SlideSquish:          0.5,
		SlideDuration:        500 * time.Millisecond,
		CeilingGraceDistance: 0.1,
		RestoreRetryDelay:    100 * time.Millisecond,
		MaxRestoreRetries:    50,

		WallGraceDistance:      0.05,
		WallProbeHeight:        0.1,
		WallClingFactor:        0.9,
		WallJumpForceX:         6,
		WallJumpForceY:         10,
		NonClingableSurfaceTag: "glass",

		GroundLayerFilter: "ground",
	}
}

// Validate returns a copy of t that is safe to run with. Non-finite values
// are rejected in favour of the default, out-of-range values are clamped.
// Every correction is reported as an *InvalidNumericConfigError in the
// joined error.
func (t Tuning) Validate() (Tuning, error) {
	def := DefaultTuning()
	v := validator{}

	v.nonNegative("MoveForce", &t.MoveForce, def.MoveForce)
	v.nonNegative("MaxVelocity", &t.MaxVelocity, def.MaxVelocity)
	v.openUnit("DampingCoefficient", &t.DampingCoefficient, def.DampingCoefficient)

	v.nonNegative("GroundedGraceDistance", &t.GroundedGraceDistance, def.GroundedGraceDistance)
	v.nonNegative("JumpVelocity", &t.JumpVelocity, def.JumpVelocity)
	v.openUnit("JumpDampingCoefficient", &t.JumpDampingCoefficient, def.JumpDampingCoefficient)

	v.nonNegative("SlideForce", &t.SlideForce, def.SlideForce)
	v.halfOpenUnit("SlideSquish", &t.SlideSquish, def.SlideSquish)
	v.duration("SlideDuration", &t.SlideDuration, def.SlideDuration)
	v.nonNegative("CeilingGraceDistance", &t.CeilingGraceDistance, def.CeilingGraceDistance)
	v.duration("RestoreRetryDelay", &t.RestoreRetryDelay, def.RestoreRetryDelay)
	if t.MaxRestoreRetries < 0 {
		v.report("MaxRestoreRetries", float64(t.MaxRestoreRetries), 0, "must not be negative")
		t.MaxRestoreRetries = 0
	}

	v.nonNegative("WallGraceDistance", &t.WallGraceDistance, def.WallGraceDistance)
	v.nonNegative("WallProbeHeight", &t.WallProbeHeight, def.WallProbeHeight)
	v.openUnit("WallClingFactor", &t.WallClingFactor, def.WallClingFactor)
	v.nonNegative("WallJumpForceX", &t.WallJumpForceX, def.WallJumpForceX)
	v.nonNegative("WallJumpForceY", &t.WallJumpForceY, def.WallJumpForceY)

	v.finite("GroundCheckOffset.X", &t.GroundCheckOffset.X, 0)
	v.finite("GroundCheckOffset.Y", &t.GroundCheckOffset.Y, 0)
	v.finite("CeilingCheckOffset.X", &t.CeilingCheckOffset.X, 0)
	v.finite("CeilingCheckOffset.Y", &t.CeilingCheckOffset.Y, 0)

	if t.GroundLayerFilter == "" {
		t.GroundLayerFilter = def.GroundLayerFilter
	}

	return t, errors.Join(v.errs...)
}

// closest representable values inside open coefficient ranges
const (
	minCoefficient = 1e-3
	maxCoefficient = 1 - 1e-3
)

type validator struct {
	errs []error
}

func (v *validator) report(field string, value, replacement float64, reason string) {
	v.errs = append(v.errs, &InvalidNumericConfigError{
		Field:       field,
		Value:       value,
		Replacement: replacement,
		Reason:      reason,
	})
}

func (v *validator) finite(field string, p *float64, def float64) bool {
	if math.IsNaN(*p) || math.IsInf(*p, 0) {
		v.report(field, *p, def, "not a finite number")
		*p = def
		return false
	}
	return true
}

func (v *validator) nonNegative(field string, p *float64, def float64) {
	if !v.finite(field, p, def) {
		return
	}
	if *p < 0 {
		v.report(field, *p, 0, "must not be negative")
		*p = 0
	}
}

// openUnit keeps *p inside (0,1).
func (v *validator) openUnit(field string, p *float64, def float64) {
	if !v.finite(field, p, def) {
		return
	}
	switch {
	case *p <= 0:
		v.report(field, *p, minCoefficient, "must be in (0,1)")
		*p = minCoefficient
	case *p >= 1:
		v.report(field, *p, maxCoefficient, "must be in (0,1)")
		*p = maxCoefficient
	}
}

// halfOpenUnit keeps *p inside (0,1].
func (v *validator) halfOpenUnit(field string, p *float64, def float64) {
	if !v.finite(field, p, def) {
		return
	}
	switch {
	case *p <= 0:
		v.report(field, *p, minCoefficient, "must be in (0,1]")
		*p = minCoefficient
	case *p > 1:
		v.report(field, *p, 1, "must be in (0,1]")
		*p = 1
	}
}

func (v *validator) duration(field string, p *time.Duration, def time.Duration) {
	if *p < 0 {
		v.report(field, p.Seconds(), def.Seconds(), "must not be negative")
		*p = def
	}
}

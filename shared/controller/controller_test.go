package controller

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestNoInputDampsHorizontalSpeed(t *testing.T) {
	for _, vx := range []float64{5.5, -3, 0.01, 0, 12} {
		r := newRig(DefaultTuning())
		r.body.vel = Vec2{X: vx}
		r.frame(1)
		got := r.body.vel.X
		if vx == 0 {
			if got != 0 {
				t.Errorf("vx=0: got %v", got)
			}
			continue
		}
		if math.Abs(got) >= math.Abs(vx) {
			t.Errorf("vx=%v: |v'| = %v not smaller", vx, math.Abs(got))
		}
		if math.Signbit(got) != math.Signbit(vx) {
			t.Errorf("vx=%v: sign flipped to %v", vx, got)
		}
	}
}

func TestLocomotionClampsWholeVelocity(t *testing.T) {
	tuning := DefaultTuning()
	tests := []struct {
		name string
		v    Vec2
		key  Key
	}{
		{"already at cap", Vec2{X: 6}, KeyMoveRight},
		{"far over cap", Vec2{X: -20}, KeyMoveLeft},
		{"diagonal fall", Vec2{X: 3, Y: -8}, KeyMoveRight},
		{"from rest", Vec2{}, KeyMoveLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(tuning)
			r.body.vel = tt.v
			r.input.held[tt.key] = true
			r.c.FixedStep(testDt)
			if l := r.body.vel.Len(); l > tuning.MaxVelocity+eps {
				t.Errorf("|v| = %v, want <= %v", l, tuning.MaxVelocity)
			}
		})
	}
}

func TestLeftWinsWhenBothHeld(t *testing.T) {
	r := newRig(DefaultTuning())
	r.input.held[KeyMoveLeft] = true
	r.input.held[KeyMoveRight] = true
	r.frame(1)

	want := -DefaultTuning().MoveForce * testDt
	if !near(r.body.vel.X, want) {
		t.Errorf("vx = %v, want %v", r.body.vel.X, want)
	}
	if !r.c.State().FacingLeft {
		t.Error("expected facing left")
	}
}

func TestJumpAndReleaseDamping(t *testing.T) {
	r := newRig(DefaultTuning())
	r.ground()
	r.frame(1)

	r.input.press(KeyJump)
	r.c.FixedStep(testDt)
	if r.body.vel.Y != 12 {
		t.Fatalf("vy after jump = %v, want 12", r.body.vel.Y)
	}
	if !r.c.State().Jumping {
		t.Fatal("expected jumping")
	}
	r.c.RenderStep()
	r.input.endFrame()

	r.input.release(KeyJump)
	r.c.RenderStep()
	if r.body.vel.Y != 6 {
		t.Fatalf("vy after release = %v, want 6", r.body.vel.Y)
	}
	r.input.endFrame()

	r.c.RenderStep()
	// a repeated release edge must not damp the same jump twice
	r.input.up[KeyJump] = true
	r.c.RenderStep()
	if r.body.vel.Y != 6 {
		t.Errorf("vy re-damped to %v", r.body.vel.Y)
	}
	if got := r.c.State().JumpPhase; got != JumpReleased {
		t.Errorf("phase = %v, want released", got)
	}
}

func TestReleaseWhileFallingDoesNotDamp(t *testing.T) {
	r := newRig(DefaultTuning())
	r.ground()
	r.input.press(KeyJump)
	r.frame(1)

	r.airborne()
	r.body.vel.Y = -2
	r.input.release(KeyJump)
	r.frame(0)
	if r.body.vel.Y != -2 {
		t.Errorf("vy = %v, want -2", r.body.vel.Y)
	}
}

func TestNoSecondLaunchWithoutLanding(t *testing.T) {
	r := newRig(DefaultTuning())
	r.ground()
	r.input.press(KeyJump)
	r.frame(1)
	if r.c.Stats().Jumps != 1 {
		t.Fatalf("jumps = %d, want 1", r.c.Stats().Jumps)
	}

	r.airborne()
	r.input.release(KeyJump)
	r.frame(1)
	r.input.press(KeyJump)
	r.frame(3)
	if r.c.Stats().Jumps != 1 {
		t.Fatalf("airborne press launched: jumps = %d", r.c.Stats().Jumps)
	}

	// landing with jump still held keeps the jump latched
	r.ground()
	r.body.vel = Vec2{}
	r.frame(2)
	if r.c.Stats().Jumps != 1 {
		t.Fatalf("held jump relaunched on landing: jumps = %d", r.c.Stats().Jumps)
	}

	r.input.release(KeyJump)
	r.frame(1)
	if r.c.State().Jumping {
		t.Fatal("jumping should clear after landing with jump released")
	}
	r.input.press(KeyJump)
	r.frame(1)
	if r.c.Stats().Jumps != 2 {
		t.Errorf("jumps = %d, want 2", r.c.Stats().Jumps)
	}
}

func TestGroundedNeedsHitAndNonRisingVelocity(t *testing.T) {
	r := newRig(DefaultTuning())
	r.ground()
	r.frame(1)
	if !r.c.State().Grounded {
		t.Fatal("expected grounded")
	}

	r.airborne()
	r.frame(1)
	if r.c.State().Grounded {
		t.Fatal("grounded should clear on a missed probe")
	}

	r.ground()
	r.body.vel.Y = 3
	r.frame(1)
	if r.c.State().Grounded {
		t.Error("grounded while rising")
	}

	r.body.vel.Y = 0
	r.probe.hits[Down] = Hit{Hit: true, Distance: 0.2}
	r.frame(1)
	if r.c.State().Grounded {
		t.Error("grounded on a hit beyond the grace distance")
	}
}

func TestGroundProbeGeometry(t *testing.T) {
	tuning := DefaultTuning()
	tuning.GroundCheckOffset = Vec2{X: 0.1, Y: 0.02}
	r := newRig(tuning)
	r.frame(1)

	c, ok := r.probe.lastCast(Down)
	if !ok {
		t.Fatal("no ground probe")
	}
	if !near(c.origin.X, testWidth/2+0.1) || !near(c.origin.Y, 0.02) {
		t.Errorf("origin = %v", c.origin)
	}
	if c.length != tuning.GroundedGraceDistance || c.layer != "ground" {
		t.Errorf("length %v layer %q", c.length, c.layer)
	}
}

func TestWallTracking(t *testing.T) {
	tests := []struct {
		name     string
		hits     map[Direction]Hit
		wantSide WallSide
		wantTag  string
	}{
		{"none", nil, WallNone, ""},
		{"left", map[Direction]Hit{Left: {Hit: true, SurfaceTag: "stone"}}, WallLeft, "stone"},
		{"right", map[Direction]Hit{Right: {Hit: true, Distance: 0.03, SurfaceTag: "glass"}}, WallRight, "glass"},
		{"both prefers left", map[Direction]Hit{
			Left:  {Hit: true, SurfaceTag: "stone"},
			Right: {Hit: true, SurfaceTag: "glass"},
		}, WallLeft, "stone"},
		{"out of reach", map[Direction]Hit{Left: {Hit: true, Distance: 1}}, WallNone, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(DefaultTuning())
			for d, h := range tt.hits {
				r.probe.hits[d] = h
			}
			r.frame(1)
			s := r.c.State()
			if s.WallSide != tt.wantSide || s.WallSurfaceTag != tt.wantTag {
				t.Errorf("side %v tag %q, want %v %q", s.WallSide, s.WallSurfaceTag, tt.wantSide, tt.wantTag)
			}
			if s.TouchingWall != (tt.wantSide != WallNone) ||
				s.TouchingLeftWall != (tt.wantSide == WallLeft) ||
				s.TouchingRightWall != (tt.wantSide == WallRight) {
				t.Errorf("flags %+v", s)
			}
		})
	}
}

func TestWallTrackingClearsWhenWallGone(t *testing.T) {
	r := newRig(DefaultTuning())
	r.probe.hits[Right] = Hit{Hit: true, SurfaceTag: "stone"}
	r.frame(1)
	delete(r.probe.hits, Right)
	r.frame(1)
	if s := r.c.State(); s.TouchingWall || s.WallSurfaceTag != "" {
		t.Errorf("wall state not cleared: %+v", s)
	}
}

func slideRig(t *testing.T) *rig {
	t.Helper()
	r := newRig(DefaultTuning())
	r.ground()
	r.input.held[KeyMoveLeft] = true
	r.frame(1)
	r.input.held[KeyMoveLeft] = false
	return r
}

func TestSlideShrinksAndRestoresAfterDuration(t *testing.T) {
	r := slideRig(t)
	before := r.body.vel.X

	r.input.press(KeySlide)
	r.frame(1)
	want := before*DefaultTuning().DampingCoefficient - 45
	if !near(r.body.vel.X, want) {
		t.Fatalf("vx = %v, want %v", r.body.vel.X, want)
	}
	squished := testHeight * 0.5
	if col := r.body.Collider(); !near(col.Height, squished) || !near(col.Offset, -(testHeight-squished)/2) {
		t.Fatalf("collider = %+v", col)
	}
	r.input.release(KeySlide)

	// 25 steps of 20ms make up the 0.5s slide
	for i := 1; i < 25; i++ {
		r.frame(1)
		if !r.c.State().Sliding || !near(r.body.col.Height, squished) {
			t.Fatalf("step %d: slide ended early, collider %+v", i, r.body.col)
		}
	}
	r.frame(1)
	s := r.c.State()
	if s.Sliding || s.RestorePending {
		t.Fatalf("slide still active: %+v", s)
	}
	if r.body.col != (Collider{Height: testHeight}) {
		t.Errorf("collider = %+v, want restored", r.body.col)
	}
}

func TestSlideCancelledByWall(t *testing.T) {
	r := slideRig(t)
	r.input.press(KeySlide)
	r.frame(3)

	r.probe.hits[Left] = Hit{Hit: true, SurfaceTag: "stone"}
	r.frame(1)
	if r.c.State().Sliding {
		t.Fatal("slide should end on wall contact")
	}
	if r.body.col.Height != testHeight {
		t.Fatalf("collider = %+v, want restored", r.body.col)
	}

	// still holding slide: no new slide until the key is released
	r.frame(2)
	if r.c.Stats().Slides != 1 {
		t.Errorf("slides = %d, want 1", r.c.Stats().Slides)
	}
}

func TestSlideImpulseSuppressedByFacingWall(t *testing.T) {
	r := slideRig(t)
	r.probe.hits[Left] = Hit{Hit: true, SurfaceTag: "stone"}
	before := r.body.vel.X

	r.input.press(KeySlide)
	r.frame(1)
	if !near(r.body.vel.X, before*DefaultTuning().DampingCoefficient) {
		t.Errorf("vx = %v, impulse not suppressed", r.body.vel.X)
	}
}

func TestSlideNeedsGround(t *testing.T) {
	r := newRig(DefaultTuning())
	r.input.press(KeySlide)
	r.frame(1)
	if r.c.State().Sliding || r.body.resizes != 0 {
		t.Error("slid while airborne")
	}
}

func TestSlideRestoreWaitsForCeiling(t *testing.T) {
	r := slideRig(t)
	r.input.press(KeySlide)
	r.frame(1)
	r.input.release(KeySlide)
	r.probe.hits[Up] = Hit{Hit: true, Distance: 0.5}

	r.frame(30)
	if c, _ := r.probe.lastCast(Up); !near(c.length, testHeight*0.5+DefaultTuning().CeilingGraceDistance) {
		t.Errorf("ceiling probe length = %v", c.length)
	}
	s := r.c.State()
	if s.Sliding || !s.RestorePending || !s.TouchingCeiling {
		t.Fatalf("want pending restore under ceiling, got %+v", s)
	}
	if !near(r.body.col.Height, testHeight*0.5) {
		t.Fatalf("collider grew under ceiling: %+v", r.body.col)
	}

	delete(r.probe.hits, Up)
	restored := false
	for i := 0; i < 6 && !restored; i++ {
		r.frame(1)
		restored = r.body.col.Height == testHeight
	}
	if !restored {
		t.Fatal("collider not restored within one retry delay of the ceiling clearing")
	}
	if r.c.State().RestorePending {
		t.Error("restore still pending")
	}
}

func TestSlideRestoreForcedAfterMaxRetries(t *testing.T) {
	tuning := DefaultTuning()
	tuning.MaxRestoreRetries = 3
	r := newRig(tuning)
	r.ground()
	r.probe.hits[Up] = Hit{Hit: true}
	r.input.press(KeySlide)
	r.frame(1)
	r.input.release(KeySlide)

	// slide 0.5s, then 3 deferrals of 0.1s each
	r.frame(25 + 3*5 + 1)
	if got := r.c.Stats().ForcedRestores; got != 1 {
		t.Fatalf("forced restores = %d, want 1", got)
	}
	if r.body.roomCalls != 1 {
		t.Errorf("MakeRoom calls = %d, want 1", r.body.roomCalls)
	}
	if r.body.col.Height != testHeight || r.c.State().RestorePending {
		t.Errorf("collider %+v pending %v", r.body.col, r.c.State().RestorePending)
	}
}

func TestTeardownCancelsPendingRestore(t *testing.T) {
	r := newRig(DefaultTuning())
	r.ground()
	r.probe.hits[Up] = Hit{Hit: true}
	r.input.press(KeySlide)
	r.frame(1)
	r.input.release(KeySlide)
	r.frame(26)
	if !r.c.State().RestorePending {
		t.Fatal("expected pending restore")
	}

	r.c.Teardown()
	resizes := r.body.resizes
	delete(r.probe.hits, Up)
	r.frame(20)
	if r.body.resizes != resizes {
		t.Error("collider touched after teardown")
	}
	if r.c.State().RestorePending {
		t.Error("restore still pending after teardown")
	}
}

func TestWallClingScenario(t *testing.T) {
	tuning := DefaultTuning()
	tuning.MaxVelocity = 100
	r := newRig(tuning)
	r.probe.hits[Left] = Hit{Hit: true, SurfaceTag: "stone"}
	r.input.held[KeyMoveLeft] = true
	r.body.vel = Vec2{Y: -10}

	r.c.FixedStep(testDt)
	if !near(r.body.vel.Y, -9) {
		t.Errorf("vy = %v, want -9", r.body.vel.Y)
	}
	if !r.c.State().ClingingToWall {
		t.Error("expected clinging")
	}
}

func TestWallClingConditions(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		grounded bool
		vy       float64
		key      Key
	}{
		{"glass", "glass", false, -4, KeyMoveLeft},
		{"grounded", "stone", true, 0, KeyMoveLeft},
		{"rising", "stone", false, 4, KeyMoveLeft},
		{"pushing away", "stone", false, -4, KeyMoveRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(DefaultTuning())
			r.probe.hits[Left] = Hit{Hit: true, SurfaceTag: tt.tag}
			if tt.grounded {
				r.ground()
			}
			r.input.held[tt.key] = true
			r.body.vel = Vec2{Y: tt.vy}
			r.c.FixedStep(testDt)
			s := r.c.State()
			if s.ClingingToWall {
				t.Errorf("clinging with %+v", s)
			}
		})
	}
}

func TestClingImpliesWallAndAirborne(t *testing.T) {
	r := newRig(DefaultTuning())
	r.probe.hits[Right] = Hit{Hit: true, SurfaceTag: "stone"}
	r.input.held[KeyMoveRight] = true
	r.body.vel = Vec2{Y: -3}
	for i := 0; i < 20; i++ {
		r.frame(1)
		s := r.c.State()
		if s.ClingingToWall && (!s.TouchingWall || s.Grounded) {
			t.Fatalf("step %d: %+v", i, s)
		}
	}
}

func TestWallJump(t *testing.T) {
	tests := []struct {
		name  string
		wall  Direction
		face  Key
		wantX float64
	}{
		{"left wall facing left", Left, KeyMoveLeft, 6},
		{"right wall facing right", Right, KeyMoveRight, -6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(DefaultTuning())
			r.probe.hits[tt.wall] = Hit{Hit: true, SurfaceTag: "stone"}
			r.input.held[tt.face] = true
			r.body.vel = Vec2{Y: -2}
			r.frame(1)

			r.input.press(KeyJump)
			r.frame(1)
			if r.body.vel != (Vec2{X: tt.wantX, Y: 10}) {
				t.Fatalf("v = %v", r.body.vel)
			}
			if r.c.Stats().WallJumps != 1 {
				t.Fatalf("stats %+v state %+v", r.c.Stats(), r.c.State())
			}
			r.frame(0)
			if r.c.State().WallJumping {
				t.Error("wallJumping should only last one step")
			}
		})
	}
}

func TestWallJumpFlagSetForInjectingStep(t *testing.T) {
	r := newRig(DefaultTuning())
	r.probe.hits[Left] = Hit{Hit: true, SurfaceTag: "stone"}
	r.frame(1)
	r.input.press(KeyJump)
	r.c.RenderStep()
	if !r.c.State().WallJumping {
		t.Error("expected wallJumping on the injecting step")
	}
}

func TestWallJumpSuppressed(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		grounded bool
	}{
		{"glass", "glass", false},
		{"grounded", "stone", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(DefaultTuning())
			r.probe.hits[Left] = Hit{Hit: true, SurfaceTag: tt.tag}
			if tt.grounded {
				r.ground()
			}
			r.frame(1)
			r.input.down[KeyJump] = true
			r.c.RenderStep()
			if r.c.Stats().WallJumps != 0 || r.c.State().WallJumping {
				t.Error("wall jump fired")
			}
		})
	}
}

func TestGroundJumpBesideWallLaunchesOnce(t *testing.T) {
	r := newRig(DefaultTuning())
	r.ground()
	r.probe.hits[Right] = Hit{Hit: true, SurfaceTag: "stone"}
	r.input.held[KeyMoveRight] = true
	r.frame(1)

	r.input.press(KeyJump)
	r.frame(1)
	if r.c.Stats().Jumps != 1 || r.c.Stats().WallJumps != 0 {
		t.Fatalf("stats %+v, want one ground jump only", r.c.Stats())
	}
	if r.body.vel.Y != 12 {
		t.Errorf("vy = %v, want the ground launch 12", r.body.vel.Y)
	}

	// A fresh press in the air still kicks off the wall.
	r.airborne()
	r.input.release(KeyJump)
	r.frame(1)
	r.input.press(KeyJump)
	r.frame(1)
	if r.c.Stats().WallJumps != 1 {
		t.Errorf("wall jumps = %d after an airborne press, want 1", r.c.Stats().WallJumps)
	}
}

func TestWallJumpNotTruncatedOnRelease(t *testing.T) {
	r := newRig(DefaultTuning())
	r.probe.hits[Left] = Hit{Hit: true, SurfaceTag: "stone"}
	r.input.held[KeyMoveLeft] = true
	r.body.vel = Vec2{Y: -2}
	r.frame(1)

	r.input.press(KeyJump)
	r.c.RenderStep()
	r.input.endFrame()
	r.input.release(KeyJump)
	r.c.RenderStep()
	if r.body.vel.Y != 10 {
		t.Errorf("vy = %v after release, want the wall jump's 10 untouched", r.body.vel.Y)
	}
}

func TestAnimationExport(t *testing.T) {
	r := newRig(DefaultTuning())
	r.frame(0)
	for _, p := range []string{ParamJumping, ParamSliding, ParamGrounded} {
		v, ok := r.anim[p]
		if !ok || v {
			t.Errorf("%s = %v (set %v), want false", p, v, ok)
		}
	}

	r.ground()
	r.input.press(KeySlide)
	r.frame(1)
	if !r.anim[ParamSliding] || !r.anim[ParamGrounded] || r.anim[ParamJumping] {
		t.Errorf("anim = %v", r.anim)
	}
}

func TestNewReportsMissingCollaborators(t *testing.T) {
	c, err := New(DefaultTuning(), Deps{})
	if !errors.Is(err, ErrConfigurationMissing) {
		t.Fatalf("err = %v, want ErrConfigurationMissing", err)
	}
	if c == nil {
		t.Fatal("controller should still be returned")
	}
	c.FixedStep(testDt)
	c.RenderStep()
	c.Teardown()

	body := newFakeBody()
	c, err = New(DefaultTuning(), Deps{Body: body})
	if !errors.Is(err, ErrConfigurationMissing) {
		t.Fatalf("err = %v", err)
	}
	body.vel = Vec2{X: 2}
	c.FixedStep(testDt)
	c.RenderStep()
	if body.vel.X >= 2 {
		t.Errorf("locomotion should still damp without prober/input, vx = %v", body.vel.X)
	}
}

func TestNewRejectsZeroHeightCollider(t *testing.T) {
	body := newFakeBody()
	body.col.Height = 0
	c, err := New(DefaultTuning(), Deps{Body: body, Prober: newFakeProber(), Input: newFakeInput(), Animator: fakeAnimator{}})
	if !errors.Is(err, ErrConfigurationMissing) {
		t.Fatalf("err = %v", err)
	}
	body.vel = Vec2{X: 1}
	c.FixedStep(testDt)
	if body.vel.X != 1 {
		t.Error("body steered without a collider")
	}
}

func TestElapsedAdvancesWithFixedSteps(t *testing.T) {
	r := newRig(DefaultTuning())
	r.frame(50)
	if got := r.c.Elapsed().Seconds(); !near(got, 1) {
		t.Errorf("elapsed = %v", got)
	}
}

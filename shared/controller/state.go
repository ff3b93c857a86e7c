package controller

import "time"

// Locomotion is the horizontal axis of the movement state.
type Locomotion uint8

const (
	LocomotionIdle Locomotion = iota
	LocomotionMoving
	LocomotionSliding
)

func (l Locomotion) String() string {
	switch l {
	case LocomotionIdle:
		return "idle"
	case LocomotionMoving:
		return "moving"
	case LocomotionSliding:
		return "sliding"
	}
	return "unknown"
}

// JumpPhase is the vertical axis. JumpReleased means the release damping
// has already been applied to the current jump.
type JumpPhase uint8

const (
	JumpNone JumpPhase = iota
	JumpRising
	JumpReleased
)

func (p JumpPhase) String() string {
	switch p {
	case JumpNone:
		return "none"
	case JumpRising:
		return "rising"
	case JumpReleased:
		return "released"
	}
	return "unknown"
}

// WallSide is the lateral axis: which wall, if any, the character touches.
type WallSide uint8

const (
	WallNone WallSide = iota
	WallLeft
	WallRight
)

func (s WallSide) String() string {
	switch s {
	case WallNone:
		return "none"
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	}
	return "unknown"
}

type slidePhase uint8

const (
	slideIdle slidePhase = iota
	slideActive
	// shrunk collider waiting for the ceiling to clear
	slideRestorePending
)

// movementState is owned by one Controller and only mutated by its steps.
type movementState struct {
	facingLeft bool
	moving     bool

	grounded bool
	jump     JumpPhase
	launched bool // ground jump since the last render step

	slide         slidePhase
	slideDeadline time.Duration
	slideLatched  bool
	restoreAt     time.Duration
	restoreTries  int

	wallSide    WallSide
	wallTag     string
	ceiling     bool
	clinging    bool
	wallJumping bool

	defaultHeight float64
}

func (s *movementState) locomotion() Locomotion {
	switch {
	case s.slide == slideActive:
		return LocomotionSliding
	case s.moving:
		return LocomotionMoving
	}
	return LocomotionIdle
}

// State is a read-only snapshot of the movement state.
type State struct {
	Velocity Vec2
	Collider Collider

	FacingLeft bool
	Grounded   bool
	Jumping    bool
	Sliding    bool

	TouchingWall      bool
	TouchingLeftWall  bool
	TouchingRightWall bool
	TouchingCeiling   bool
	ClingingToWall    bool
	WallJumping       bool
	WallSurfaceTag    string

	RestorePending        bool
	DefaultColliderHeight float64

	Locomotion Locomotion
	JumpPhase  JumpPhase
	WallSide   WallSide
}

// Stats counts resolved events over a controller's lifetime.
type Stats struct {
	Jumps          int
	Slides         int
	WallJumps      int
	ForcedRestores int
}

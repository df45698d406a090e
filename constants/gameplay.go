package constants

import "time"

// Lane geometry. Three fixed lateral travel positions; the player plane
// sits at z=0, collectibles spawn ahead at negative z and drift toward
// positive z past the camera.
const (
	LaneCount = 3
	LaneWidth = 4.0 // world units between lane centers
)

// LaneX returns the world x coordinate of a lane center
func LaneX(lane int) float64 {
	return (float64(lane) - 1) * LaneWidth
}

const (
	// TravelSpeed is the constant forward speed in world units per second
	TravelSpeed = 40.0

	// SpawnDistance is how far ahead of the player a collectible appears.
	// Far enough to be past the horizon fade, close enough to arrive
	// within a few seconds at TravelSpeed.
	SpawnDistance = 120.0

	// ReapDistance is the behind-camera threshold; a collectible whose z
	// exceeds it is removed without a reveal
	ReapDistance = 10.0

	// CaptureRadius is player half-size plus a tolerance margin
	PlayerHalfSize   = 0.8
	CaptureTolerance = 0.5
	CaptureRadius    = PlayerHalfSize + CaptureTolerance

	// Collectible bob: vertical sinusoid of elapsed game time, phase
	// seeded per entity so same-lane collectibles stay out of lockstep
	BobAmplitude = 0.6
	BobSpeed     = 2.0 // radians per second
	CollectibleY = 1.5 // rest height above the road
)

// Spawn cadence: probabilistic with a forced floor. A spawn is allowed
// when fewer than SpawnCap collectibles are live ahead of the player, the
// minimum interval has elapsed, and the per-tick draw succeeds. Once the
// interval has been exceeded by SpawnForcedAfter the draw is bypassed so
// the lane is never starved under bad luck.
const (
	SpawnCap         = 3
	SpawnMinInterval = 1200 * time.Millisecond
	SpawnForcedAfter = 4 * time.Second
	SpawnChance      = 0.03 // per-tick draw once the interval has elapsed

	// ProfileOriginWeight is the chance a spawn binds a profile fact
	// rather than a project fact, once both origins have data
	ProfileOriginWeight = 0.5

	// AntiRepeatAttempts bounds the resample loop when a draw matches
	// the previously shown fact
	AntiRepeatAttempts = 1
)

// Reveal effect lifetime, tick-denominated. A reveal holds fully opaque
// for the grace period, then fades at a fixed per-tick rate.
const (
	RevealGraceTicks  = 120
	RevealDecayRate   = 0.0025 // opacity per tick
	RevealDriftY      = -0.004 // world units per tick, near-zero for readability
	RevealDriftZ      = 0.002
	RevealSpinRate    = 0.01 // radians per tick
	RevealRiseOffset  = 2.0  // spawn offset above the pickup point
	RevealTowardCam   = 3.0  // spawn offset toward the camera
	RevealMaxTextCols = 46   // display cell budget before truncation
)

// Player motion
const (
	LaneChangeSpeed = 14.0 // world units per second toward the target lane
	TiltMax         = 1.0
	TiltDecayRate   = 0.08 // per tick, cosmetic roll returning to level
)

const (
	// TickRate is the frame scheduler frequency
	TickRate     = 60
	TickInterval = time.Second / TickRate
)

// Event queue sizing, power of two for mask arithmetic
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)

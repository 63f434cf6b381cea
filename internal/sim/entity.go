// Package sim implements the shared round engine behind all four games:
// round lifecycle, countdown, score/combo/quota bookkeeping, the live
// entity set with exactly-once resolution, entity spawning, and the small
// motion policies (fall, oscillation, drift, slide) the games compose.
//
// The package is pure simulation state: no Bubble Tea, no logging, no
// clocks. Everything advances on explicit ticks so rounds are
// deterministic under a fixed seed and tick rate.
package sim

// Entity is a transient simulated object owned by exactly one round:
// a falling trash item, a container waiting for the hook, a snow-covered
// grid cell, or a sand load. Position is in normalized round-space
// (0-100 on the relevant axes).
type Entity struct {
	ID   uint64 // Unique within the round, never reused
	Kind string // Variant tag from the per-game catalog

	X, Y float64 // Position in round-space
	Rate float64 // Advance per tick on the primary axis

	// Resolution payload: whatever the game needs to score the entity
	// when it reaches the resolution zone.
	Label    string // Display name (e.g. "Pizzakassi")
	Category string // Correct category/bin/weight class
	Points   int    // Base point value
}

// Package pace spaces out search steps so a human can follow them.
//
// A Scheduler is consulted once per emitted step; Await returns when the
// next step may proceed. Ticker enforces a fixed interval measured from the
// previous resolution, so the delay is per step and lag never accumulates
// into bursts. Immediate never waits and is meant for tests, benchmarks and
// headless runs.
//
// Presets
//
//	Fast   30ms
//	Normal 100ms (DefaultPreset)
//	Slow   250ms
//
// A run reads its interval once when it starts. Changing the preset affects
// the next run only.
//
// Cancellation
//
//	Await returns ctx.Err() as soon as the context is done, so a superseded
//	run stops at its next step boundary.
package pace

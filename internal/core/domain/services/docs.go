// Package services implements the order-lifecycle analytics engine.
//
// The engine is a set of pure, synchronous value types:
//   - Aggregator: the single-pass orchestrator producing a summary.Summary
//   - DelayDetector: open orders whose loading day has passed
//   - BacklogTracker: dense per-day, per-agent outstanding counts
//   - TrendSmoother: trailing moving averages over daily series
//
// None of them read the system clock or perform I/O; "now" is always an
// argument. Input slices are read, never modified, so concurrent runs over
// one snapshot are safe.
package services

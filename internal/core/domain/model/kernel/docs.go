// Package kernel holds the value objects shared across the dashboard domain.
//
//   - DayKey: a calendar day in YYYY-MM-DD form, the key of every daily series
//   - Calendar: parsing of heterogeneous date inputs and bucketing into day
//     and hour keys in one configured time zone
//   - Clock: the injected time source; only the composition root reads the
//     system clock
//   - UUID: identifiers for import batches
//
// All types are immutable and safe for concurrent use.
package kernel

// Package delivery models the shipment records the dashboard aggregates.
//
// An Order is a read snapshot handed over by the delivery store or the batch
// import pathway. Its status and dates stay in their raw textual form so a
// single malformed cell never blocks a whole batch; the analytics engine
// parses them record by record and skips what it cannot read.
//
// The Taxonomy maps numeric status codes onto the lifecycle buckets
//
//	New (10) ──> InProgress (30, 31, 35, 40) ──> Done (50, 60, 70, 80, 90)
//
// and reports every other code as Unknown.
package delivery

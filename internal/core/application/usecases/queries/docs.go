// Package queries contains the read operations behind the dashboard views.
// Handlers load the order snapshot through ports.DeliveryOrderReader and run
// the current engine at an explicit instant; none of them writes.
package queries

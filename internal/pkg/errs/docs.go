// Package errs provides the typed errors shared by the dashboard service.
//
// Every error type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound) with a struct carrying the
// offending parameter and an optional cause. Unwrap returns the sentinel so
// callers classify failures with errors.Is, e.g. the HTTP adapter maps every
// validation sentinel to 400 and ErrObjectNotFound to 404.
package errs

package delivery

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"dashboard/internal/pkg/errs"
)

// Bucket is the lifecycle stage derived from a status code.
type Bucket int

const (
	// Unknown marks codes outside the closed status set. Such orders count in
	// totals but are never done, delayed or outstanding.
	Unknown Bucket = iota
	New
	InProgress
	Done
)

func (b Bucket) String() string {
	switch b {
	case New:
		return "new"
	case InProgress:
		return "inProgress"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// IsOpen reports whether an order in this bucket is still outstanding.
func (b Bucket) IsOpen() bool {
	return b == New || b == InProgress
}

var (
	// NewCodes are orders registered but not yet touched by the warehouse.
	NewCodes = []int{10}
	// InProgressCodes cover picking through loading.
	InProgressCodes = []int{30, 31, 35, 40}
	// CanonicalDoneCodes is the done set applied everywhere, post-dispatch
	// states 80 and 90 included.
	CanonicalDoneCodes = []int{50, 60, 70, 80, 90}
	// LegacyDoneCodes is the narrower set some dashboard views used. It is
	// kept so deployments that still report against it can select it
	// explicitly; it is never mixed with the canonical set.
	LegacyDoneCodes = []int{50, 60, 70}
)

// ErrStatusIsMalformed is returned for status values that are not integers.
var ErrStatusIsMalformed = errors.New("status is not numeric")

// ParseStatusCode reads a raw status such as "40" or " 60 ".
// A float form of an integer, as spreadsheets produce ("40.0"), is accepted.
func ParseStatusCode(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errs.NewValueIsRequiredError("status")
	}
	if code, err := strconv.Atoi(s); err == nil {
		return code, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		return int(f), nil
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%w: %q", ErrStatusIsMalformed, s))
}

// Taxonomy classifies status codes. Build it once via NewTaxonomy and share it.
type Taxonomy struct {
	buckets map[int]Bucket
}

// NewTaxonomy returns the taxonomy with the canonical done set.
func NewTaxonomy() Taxonomy {
	t, _ := NewTaxonomyWithDoneCodes(CanonicalDoneCodes)
	return t
}

// NewTaxonomyWithDoneCodes builds a taxonomy with a custom done set. Done
// codes may not overlap the new or in-progress sets.
func NewTaxonomyWithDoneCodes(doneCodes []int) (Taxonomy, error) {
	if len(doneCodes) == 0 {
		return Taxonomy{}, errs.NewValueIsRequiredError("done codes")
	}

	buckets := make(map[int]Bucket, len(NewCodes)+len(InProgressCodes)+len(doneCodes))
	for _, c := range NewCodes {
		buckets[c] = New
	}
	for _, c := range InProgressCodes {
		buckets[c] = InProgress
	}
	for _, c := range doneCodes {
		if existing, ok := buckets[c]; ok && existing != Done {
			return Taxonomy{}, errs.NewValueIsInvalidErrorWithCause(
				"done codes",
				fmt.Errorf("%d is already classified as %s", c, existing),
			)
		}
		buckets[c] = Done
	}
	return Taxonomy{buckets: buckets}, nil
}

// Classify maps a status code to its bucket.
func (t Taxonomy) Classify(code int) Bucket {
	return t.buckets[code]
}

// DoneCodes returns the configured done set in ascending order.
func (t Taxonomy) DoneCodes() []int {
	codes := make([]int, 0, len(t.buckets))
	for code, b := range t.buckets {
		if b == Done {
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)
	return codes
}

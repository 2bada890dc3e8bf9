// Package importbatch models one upload of delivery records into the store.
package importbatch

import (
	"errors"
	"strings"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"
)

// Batch records who delivered a set of orders and how many were accepted.
type Batch struct {
	id         kernel.UUID
	source     string
	accepted   int
	importedAt time.Time
}

// NewBatch creates a batch with a fresh identifier.
func NewBatch(source string, accepted int, importedAt time.Time) (*Batch, error) {
	return RestoreBatch(kernel.NewUUID(), source, accepted, importedAt)
}

// RestoreBatch rebuilds a persisted batch.
func RestoreBatch(id kernel.UUID, source string, accepted int, importedAt time.Time) (*Batch, error) {
	var err error
	if e := id.Validate(); e != nil {
		err = errors.Join(err, e)
	}
	if strings.TrimSpace(source) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("source"))
	}
	if accepted < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidError("accepted"))
	}
	if importedAt.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("importedAt"))
	}
	if err != nil {
		return nil, err
	}

	return &Batch{
		id:         id,
		source:     strings.TrimSpace(source),
		accepted:   accepted,
		importedAt: importedAt,
	}, nil
}

func (b *Batch) ID() kernel.UUID {
	return b.id
}

func (b *Batch) Source() string {
	return b.source
}

func (b *Batch) Accepted() int {
	return b.accepted
}

func (b *Batch) ImportedAt() time.Time {
	return b.importedAt
}

// Validate re-checks the invariants of a batch that may not have come from a constructor.
func (b *Batch) Validate() error {
	if b == nil {
		return errs.NewValueIsRequiredError("batch")
	}
	_, err := RestoreBatch(b.id, b.source, b.accepted, b.importedAt)
	return err
}

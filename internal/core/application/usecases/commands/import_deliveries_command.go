package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

// MaxImportSize bounds the orders accepted in one import.
const MaxImportSize = 50_000

var ErrImportDeliveriesCommandIsNotConstructed = errors.New(
	"ImportDeliveriesCommand must be created via NewImportDeliveriesCommand constructor",
)

// ImportDeliveriesCommand upserts a batch of delivery records.
//
// Only the delivery number and weight are checked here. Status codes and
// dates are stored as received; the engine reports malformed values in its
// diagnostics instead of rejecting the import.
type ImportDeliveriesCommand struct { //nolint:recvcheck //using for validation
	source string
	orders []delivery.Order

	guard guard.ConstructorGuard
}

// NewImportDeliveriesCommand copies orders so later changes by the caller
// do not leak into the import.
func NewImportDeliveriesCommand(source string, orders []delivery.Order) (ImportDeliveriesCommand, error) {
	cmd := ImportDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSource(source),
		cmd.setOrders(orders),
	); err != nil {
		return ImportDeliveriesCommand{}, err
	}

	return cmd, nil
}

func (c ImportDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrImportDeliveriesCommandIsNotConstructed)
}

// Source names the system the records came from.
func (c ImportDeliveriesCommand) Source() string {
	return c.source
}

// Orders returns the records to import. The slice must not be modified.
func (c ImportDeliveriesCommand) Orders() []delivery.Order {
	return c.orders
}

func (c *ImportDeliveriesCommand) setSource(source string) error {
	source = strings.TrimSpace(source)
	if source == "" {
		return errs.NewValueIsRequiredError("source")
	}

	c.source = source
	return nil
}

func (c *ImportDeliveriesCommand) setOrders(orders []delivery.Order) error {
	if len(orders) == 0 {
		return errs.NewValueIsRequiredError("orders")
	}
	if len(orders) > MaxImportSize {
		return errs.NewValueIsOutOfRangeError("orders", len(orders), 1, MaxImportSize)
	}

	var err error
	for i, o := range orders {
		if validationErr := o.Validate(); validationErr != nil {
			err = errors.Join(err, fmt.Errorf("orders[%d]: %w", i, validationErr))
		}
	}
	if err != nil {
		return err
	}

	c.orders = slices.Clone(orders)
	return nil
}

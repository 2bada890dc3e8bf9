package commands_test

import (
	"testing"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/domain/model/delivery"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImportDeliveriesCommand_ValidInput(t *testing.T) {
	orders := []delivery.Order{{DeliveryNo: "D1", Status: "garbage"}}

	cmd, err := commands.NewImportDeliveriesCommand(" sap ", orders)
	require.NoError(t, err)
	assert.Equal(t, "sap", cmd.Source())
	assert.Equal(t, orders, cmd.Orders())
	assert.NoError(t, cmd.Validate())

	orders[0].DeliveryNo = "changed"
	assert.Equal(t, "D1", cmd.Orders()[0].DeliveryNo)
}

func TestNewImportDeliveriesCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewImportDeliveriesCommand("", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "source")
	assert.Contains(t, err.Error(), "orders")
}

func TestNewImportDeliveriesCommand_ReportsEveryBadOrder(t *testing.T) {
	orders := []delivery.Order{
		{DeliveryNo: "ok"},
		{DeliveryNo: ""},
		{DeliveryNo: "  "},
	}

	_, err := commands.NewImportDeliveriesCommand("csv", orders)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "orders[1]")
	assert.Contains(t, err.Error(), "orders[2]")
	assert.NotContains(t, err.Error(), "orders[0]")
}

func TestNewImportDeliveriesCommand_TooLarge(t *testing.T) {
	orders := make([]delivery.Order, commands.MaxImportSize+1)

	_, err := commands.NewImportDeliveriesCommand("csv", orders)

	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestImportDeliveriesCommand_NotConstructed(t *testing.T) {
	assert.ErrorIs(t, commands.ImportDeliveriesCommand{}.Validate(), commands.ErrImportDeliveriesCommandIsNotConstructed)
}

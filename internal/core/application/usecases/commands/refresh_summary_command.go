package commands

import (
	"errors"
	"strings"

	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

// Refresh triggers, used as metric labels.
const (
	TriggerSchedule = "schedule"
	TriggerImport   = "import"
	TriggerStartup  = "startup"
)

var ErrRefreshSummaryCommandIsNotConstructed = errors.New(
	"RefreshSummaryCommand must be created via NewRefreshSummaryCommand constructor",
)

// RefreshSummaryCommand recomputes the published summary from the whole store.
type RefreshSummaryCommand struct { //nolint:recvcheck //using for validation
	trigger string

	guard guard.ConstructorGuard
}

func NewRefreshSummaryCommand(trigger string) (RefreshSummaryCommand, error) {
	cmd := RefreshSummaryCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.setTrigger(trigger); err != nil {
		return RefreshSummaryCommand{}, err
	}
	return cmd, nil
}

func (c RefreshSummaryCommand) Validate() error {
	return c.guard.Validate(ErrRefreshSummaryCommandIsNotConstructed)
}

// Trigger names what started the refresh.
func (c RefreshSummaryCommand) Trigger() string {
	return c.trigger
}

func (c *RefreshSummaryCommand) setTrigger(trigger string) error {
	trigger = strings.TrimSpace(trigger)
	if trigger == "" {
		return errs.NewValueIsRequiredError("trigger")
	}

	c.trigger = trigger
	return nil
}

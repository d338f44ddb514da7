package commands

import (
	"errors"

	"parcellocker/internal/pkg/guard"
)

var ErrRefreshDataCommandIsNotConstructed = errors.New(
	"RefreshDataCommand must be created via NewRefreshDataCommand constructor",
)

// RefreshDataCommand reloads all four datasets from their stored locations
// and rebuilds the purchase summary.
//
// Example:
//
//	cmd := NewRefreshDataCommand()
//	handler := NewRefreshDataCommandHandler(catalog, summaries, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("refresh failed: %w", err)
//	}
type RefreshDataCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshDataCommand creates a refresh command. It takes no parameters;
// every dataset is read from the location its repository was built with.
func NewRefreshDataCommand() RefreshDataCommand {
	return RefreshDataCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RefreshDataCommand) Validate() error {
	return c.guard.Validate(ErrRefreshDataCommandIsNotConstructed)
}

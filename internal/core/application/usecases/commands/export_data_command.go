package commands

import (
	"errors"

	"parcellocker/internal/pkg/guard"
)

var ErrExportDataCommandIsNotConstructed = errors.New(
	"ExportDataCommand must be created via NewExportDataCommand constructor",
)

// ExportDataCommand copies the cached datasets into another record store,
// for example to seed a database from JSON files.
type ExportDataCommand struct {
	guard guard.ConstructorGuard
}

// NewExportDataCommand creates an export command.
func NewExportDataCommand() ExportDataCommand {
	return ExportDataCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ExportDataCommand) Validate() error {
	return c.guard.Validate(ErrExportDataCommandIsNotConstructed)
}

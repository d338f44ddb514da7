package commands

import (
	"errors"
	"strings"

	"parcellocker/internal/core/domain/model/parcel"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var ErrNotifyFreeLockerCommandIsNotConstructed = errors.New(
	"NotifyFreeLockerCommand must be created via NewNotifyFreeLockerCommand constructor",
)

// NotifyFreeLockerCommand asks for the nearest free locker for a parcel and
// tells both the user and the receiver waiting on that locker.
//
// Example:
//
//	p, _ := parcel.NewParcel("P001", 5, 10, 1)
//	cmd, err := NewNotifyFreeLockerCommand("john.doe@gmail.com", p)
//	if err != nil {
//	    return err
//	}
//	if err = handler.Handle(ctx, cmd); errors.Is(err, services.ErrLockerNotFound) {
//	    // nothing was sent
//	}
type NotifyFreeLockerCommand struct { //nolint:recvcheck //using for validation
	email  string
	parcel parcel.Parcel

	guard guard.ConstructorGuard
}

// NewNotifyFreeLockerCommand creates the command. The email must be
// non-blank and the parcel constructed.
func NewNotifyFreeLockerCommand(email string, p parcel.Parcel) (NotifyFreeLockerCommand, error) {
	cmd := NotifyFreeLockerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setParcel(p),
	); err != nil {
		return NotifyFreeLockerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyFreeLockerCommand) Validate() error {
	return c.guard.Validate(ErrNotifyFreeLockerCommandIsNotConstructed)
}

// Email returns the email of the user looking for a locker.
func (c NotifyFreeLockerCommand) Email() string {
	return c.email
}

// Parcel returns the parcel to be placed.
func (c NotifyFreeLockerCommand) Parcel() parcel.Parcel {
	return c.parcel
}

func (c *NotifyFreeLockerCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *NotifyFreeLockerCommand) setParcel(p parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.parcel = p
	return nil
}

package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

// DateLayout is the ISO calendar date layout used for delivery dates.
const DateLayout = "2006-01-02"

var (
	// ErrDeliveryIsNotConstructed is returned when a zero-value Delivery is used.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrSenderIsReceiver is returned when both parties of a delivery are the same user.
	ErrSenderIsReceiver = errors.New("sender and receiver must differ")

	// ErrSentAfterExpected is returned when the sent date is later than the expected delivery date.
	ErrSentAfterExpected = errors.New("sent date is after expected delivery date")
)

// Delivery sends one parcel through one locker from a sender to a receiver.
//
// A Delivery has no identity beyond its attribute tuple; it is comparable and
// two deliveries with equal attributes are the same map key.
//
// Invariants:
//   - sender email differs from receiver email
//   - sent date is not after the expected delivery date
//   - both dates are calendar dates at midnight UTC
type Delivery struct {
	parcelID             string
	lockerID             string
	senderEmail          string
	receiverEmail        string
	sentDate             time.Time
	expectedDeliveryDate time.Time
	guard                guard.ConstructorGuard
}

// NewDelivery creates a Delivery. The time-of-day and zone of both dates
// are discarded; only the calendar date is kept.
//
// Parameters:
//   - parcelID, lockerID: references to the parcel and the locker, not blank
//   - senderEmail, receiverEmail: the two parties, not blank and different
//   - sentDate, expectedDeliveryDate: sentDate must not fall after
//     expectedDeliveryDate once both are truncated to a date
//
// Returns:
//   - Delivery: a valid delivery
//   - error: every failed field, joined; a party or date conflict is an
//     errs.ValueIsInvalidError whose Cause is ErrSenderIsReceiver or
//     ErrSentAfterExpected
//
// Example:
//
//	d, err := delivery.NewDelivery("P001", "L001",
//	    "john.doe@gmail.com", "jane.smith@gmail.com",
//	    time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
//	    time.Date(2023, 12, 8, 0, 0, 0, 0, time.UTC))
//	d.DurationDays() // 7
func NewDelivery(
	parcelID, lockerID, senderEmail, receiverEmail string,
	sentDate, expectedDeliveryDate time.Time,
) (Delivery, error) {
	d := Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setRequired("parcel_id", &d.parcelID, parcelID),
		d.setRequired("locker_id", &d.lockerID, lockerID),
		d.setParties(senderEmail, receiverEmail),
		d.setDates(sentDate, expectedDeliveryDate),
	); err != nil {
		return Delivery{}, err
	}

	return d, nil
}

// Validate checks that the Delivery was built by NewDelivery.
func (d Delivery) Validate() error {
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ParcelID returns the referenced parcel identifier.
func (d Delivery) ParcelID() string { return d.parcelID }

// LockerID returns the referenced locker identifier.
func (d Delivery) LockerID() string { return d.lockerID }

// SenderEmail returns the sender's email.
func (d Delivery) SenderEmail() string { return d.senderEmail }

// ReceiverEmail returns the receiver's email.
func (d Delivery) ReceiverEmail() string { return d.receiverEmail }

// SentDate returns the date the parcel was sent.
func (d Delivery) SentDate() time.Time { return d.sentDate }

// ExpectedDeliveryDate returns the date the parcel is expected in the locker.
func (d Delivery) ExpectedDeliveryDate() time.Time { return d.expectedDeliveryDate }

// DurationDays returns the whole days between sending and expected delivery.
// It is never negative.
func (d Delivery) DurationDays() int {
	return int(d.expectedDeliveryDate.Sub(d.sentDate).Hours() / 24)
}

// String renders the delivery for logs.
func (d Delivery) String() string {
	return fmt.Sprintf("Delivery(%s via %s, %s -> %s, %s..%s)",
		d.parcelID, d.lockerID, d.senderEmail, d.receiverEmail,
		d.sentDate.Format(DateLayout), d.expectedDeliveryDate.Format(DateLayout))
}

// Date truncates t to its calendar date at midnight UTC.
func Date(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func (d *Delivery) setRequired(name string, field *string, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*field = value
	return nil
}

func (d *Delivery) setParties(sender, receiver string) error {
	if err := errors.Join(
		d.setRequired("sender_email", &d.senderEmail, sender),
		d.setRequired("receiver_email", &d.receiverEmail, receiver),
	); err != nil {
		return err
	}
	if sender == receiver {
		return errs.NewValueIsInvalidErrorWithCause("receiver_email", ErrSenderIsReceiver)
	}
	return nil
}

func (d *Delivery) setDates(sent, expected time.Time) error {
	sent, expected = Date(sent), Date(expected)
	if sent.After(expected) {
		return errs.NewValueIsInvalidErrorWithCause("sent_date", ErrSentAfterExpected)
	}
	d.sentDate = sent
	d.expectedDeliveryDate = expected
	return nil
}

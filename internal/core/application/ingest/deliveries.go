package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"parcellocker/internal/core/domain/model/delivery"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"
)

// DeliverySchema describes delivery records:
//
//	{"parcel_id": "P12345", "locker_id": "L001",
//	 "sender_email": "alice.smith@example.com", "receiver_email": "john.doe@example.com",
//	 "sent_date": "2023-12-01", "expected_delivery_date": "2023-12-05"}
//
// Dates may be "2006-01-02" strings, whole Unix timestamps in seconds or
// time.Time values. The date order is validated only when both dates parse;
// any other representation fails conversion.
func DeliverySchema() Schema[delivery.Delivery] {
	return Schema[delivery.Delivery]{
		Kind: KindDelivery,
		Required: []string{
			"parcel_id", "locker_id", "sender_email", "receiver_email",
			"sent_date", "expected_delivery_date",
		},
		Rules: []Rule{
			identifierRule("parcel_id"),
			identifierRule("locker_id"),
			partiesRule,
			dateOrderRule,
		},
		Build:  buildDelivery,
		Encode: encodeDelivery,
	}
}

func partiesRule(_ context.Context, rec ports.Record) error {
	sender, err := stringField(rec, "sender_email")
	if err != nil {
		return err
	}
	receiver, err := stringField(rec, "receiver_email")
	if err != nil {
		return err
	}
	if strings.TrimSpace(sender) == "" || strings.TrimSpace(receiver) == "" {
		return errors.New("sender_email and receiver_email must not be blank")
	}
	if sender == receiver {
		return fmt.Errorf("sender and receiver are both %s", sender)
	}
	return nil
}

func dateOrderRule(_ context.Context, rec ports.Record) error {
	sent, err := parseDate(rec["sent_date"])
	if err != nil {
		return nil //nolint:nilerr // unparsable dates are reported by the converter
	}
	expected, err := parseDate(rec["expected_delivery_date"])
	if err != nil {
		return nil //nolint:nilerr // unparsable dates are reported by the converter
	}
	if sent.After(expected) {
		return fmt.Errorf("sent_date %s is after expected_delivery_date %s",
			sent.Format(delivery.DateLayout), expected.Format(delivery.DateLayout))
	}
	return nil
}

func buildDelivery(rec ports.Record, _ *slog.Logger) (delivery.Delivery, error) {
	sent, err := parseDate(rec["sent_date"])
	if err != nil {
		return delivery.Delivery{}, errs.NewConversionErrorWithCause(KindDelivery, "sent_date", rec["sent_date"], err)
	}
	expected, err := parseDate(rec["expected_delivery_date"])
	if err != nil {
		return delivery.Delivery{}, errs.NewConversionErrorWithCause(
			KindDelivery, "expected_delivery_date", rec["expected_delivery_date"], err)
	}

	return delivery.NewDelivery(
		textField(rec, "parcel_id"),
		textField(rec, "locker_id"),
		textField(rec, "sender_email"),
		textField(rec, "receiver_email"),
		sent,
		expected,
	)
}

func encodeDelivery(d delivery.Delivery) ports.Record {
	return ports.Record{
		"parcel_id":              d.ParcelID(),
		"locker_id":              d.LockerID(),
		"sender_email":           d.SenderEmail(),
		"receiver_email":         d.ReceiverEmail(),
		"sent_date":              d.SentDate().Format(delivery.DateLayout),
		"expected_delivery_date": d.ExpectedDeliveryDate().Format(delivery.DateLayout),
	}
}

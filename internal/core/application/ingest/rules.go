package ingest

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

// Entity kinds as they appear in logs and conversion errors.
const (
	KindUser     = "user"
	KindParcel   = "parcel"
	KindLocker   = "locker"
	KindDelivery = "delivery"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("known_city", knownCity); err != nil {
		panic(fmt.Sprintf("ingest: register known_city validation: %v", err))
	}
	return v
}

func knownCity(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := kernel.ParseCity(s)
	return err == nil
}

// MXResolver looks up mail exchangers. *net.Resolver satisfies it.
type MXResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

func emailRule(key string) Rule {
	return func(_ context.Context, rec ports.Record) error {
		email, err := stringField(rec, key)
		if err != nil {
			return err
		}
		if err = validate.Var(email, "required,email"); err != nil {
			return fmt.Errorf("%s %q is not a valid email address", key, email)
		}
		return nil
	}
}

func deliverableRule(key string, resolver MXResolver) Rule {
	return func(ctx context.Context, rec ports.Record) error {
		email, err := stringField(rec, key)
		if err != nil {
			return err
		}
		domain := email[strings.LastIndex(email, "@")+1:]
		mx, err := resolver.LookupMX(ctx, domain)
		if err != nil {
			return fmt.Errorf("domain %s of %s is not deliverable: %w", domain, key, err)
		}
		if len(mx) == 0 {
			return fmt.Errorf("domain %s of %s has no mail exchanger", domain, key)
		}
		return nil
	}
}

func cityRule(_ context.Context, rec ports.Record) error {
	city, err := stringField(rec, "city")
	if err != nil {
		return err
	}
	if err = validate.Var(city, "known_city"); err != nil {
		return fmt.Errorf("city %q is not a known city", city)
	}
	return nil
}

func coordinatesRule(_ context.Context, rec ports.Record) error {
	lat, latOK := toFloat(rec["latitude"])
	lon, lonOK := toFloat(rec["longitude"])
	if !latOK || !lonOK {
		return errors.New("latitude and longitude must be numbers")
	}
	_, err := kernel.NewLocation(lat, lon)
	return err
}

func identifierRule(key string) Rule {
	return func(_ context.Context, rec ports.Record) error {
		if strings.TrimSpace(textField(rec, key)) == "" {
			return fmt.Errorf("%s must not be blank", key)
		}
		return nil
	}
}

func positiveRule(keys ...string) Rule {
	return func(_ context.Context, rec ports.Record) error {
		for _, key := range keys {
			n, ok := toInt(rec[key])
			if !ok || validate.Var(n, "gt=0") != nil {
				return fmt.Errorf("%s must be a positive integer, got %v", key, rec[key])
			}
		}
		return nil
	}
}

// textField renders the value under key as text. Strings are returned as
// they are and other scalars in their default format.
func textField(rec ports.Record, key string) string {
	switch v := rec[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

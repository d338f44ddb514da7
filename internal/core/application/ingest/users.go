package ingest

import (
	"log/slog"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/user"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"
)

// UserSchema describes user records:
//
//	{"email": "john.doe@gmail.com", "name": "John", "surname": "Doe",
//	 "city": "New York", "latitude": 40.712776, "longitude": -74.005974}
//
// A non-nil resolver additionally requires the email domain to publish a
// mail exchanger.
func UserSchema(resolver MXResolver) Schema[user.User] {
	rules := []Rule{emailRule("email")}
	if resolver != nil {
		rules = append(rules, deliverableRule("email", resolver))
	}
	rules = append(rules, cityRule, coordinatesRule)

	return Schema[user.User]{
		Kind:     KindUser,
		Required: []string{"email", "name", "surname", "city", "latitude", "longitude"},
		Rules:    rules,
		Build:    buildUser,
		Encode:   encodeUser,
	}
}

func buildUser(rec ports.Record, _ *slog.Logger) (user.User, error) {
	city, err := kernel.ParseCity(textField(rec, "city"))
	if err != nil {
		return user.User{}, errs.NewConversionErrorWithCause(KindUser, "city", rec["city"], err)
	}

	lat, ok := toFloat(rec["latitude"])
	if !ok {
		return user.User{}, errs.NewConversionError(KindUser, "latitude", rec["latitude"])
	}
	lon, ok := toFloat(rec["longitude"])
	if !ok {
		return user.User{}, errs.NewConversionError(KindUser, "longitude", rec["longitude"])
	}
	location, err := kernel.NewLocation(lat, lon)
	if err != nil {
		return user.User{}, errs.NewConversionErrorWithCause(KindUser, "latitude", rec["latitude"], err)
	}

	return user.NewUser(textField(rec, "email"), textField(rec, "name"), textField(rec, "surname"), city, location)
}

func encodeUser(u user.User) ports.Record {
	return ports.Record{
		"email":     u.Email(),
		"name":      u.Name(),
		"surname":   u.Surname(),
		"city":      u.City().String(),
		"latitude":  u.Location().Latitude(),
		"longitude": u.Location().Longitude(),
	}
}

package queries

import (
	"context"
	"fmt"

	"parcellocker/internal/core/domain/model/delivery"
	"parcellocker/internal/core/ports"
)

// LocateParcelQueryHandler answers LocateParcelQuery from the cached
// deliveries.
type LocateParcelQueryHandler struct {
	deliveries ports.EntitySource[delivery.Delivery]
}

// NewLocateParcelQueryHandler creates the handler.
func NewLocateParcelQueryHandler(deliveries ports.EntitySource[delivery.Delivery]) LocateParcelQueryHandler {
	return LocateParcelQueryHandler{deliveries: deliveries}
}

// Handle finds the locker of the last delivery carrying the parcel. A parcel
// without deliveries is not an error; Found is false and Message says so.
func (h LocateParcelQueryHandler) Handle(_ context.Context, query LocateParcelQuery) (LocateParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LocateParcelQueryResponse{}, err
	}

	res := LocateParcelQueryResponse{
		ParcelID: query.Number(),
		Message:  "Your package does not exist",
	}

	for _, d := range h.deliveries.Get() {
		if d.ParcelID() == query.Number() {
			res.LockerID = d.LockerID()
			res.Found = true
		}
	}

	if res.Found {
		res.Message = fmt.Sprintf("Your package %s is in locker %s", res.ParcelID, res.LockerID)
	}

	return res, nil
}

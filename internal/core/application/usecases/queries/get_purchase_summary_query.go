package queries

import (
	"errors"

	"parcellocker/internal/pkg/guard"
)

var ErrGetPurchaseSummaryQueryIsNotConstructed = errors.New(
	"GetPurchaseSummaryQuery must be created via NewGetPurchaseSummaryQuery constructor",
)

// GetPurchaseSummaryQuery asks for the deliveries sent by each user.
type GetPurchaseSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPurchaseSummaryQuery() GetPurchaseSummaryQuery {
	return GetPurchaseSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPurchaseSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseSummaryQueryIsNotConstructed)
}

// GetPurchaseSummaryQueryResponse lists senders ordered by email.
type GetPurchaseSummaryQueryResponse struct {
	Senders []SenderSummary
}

type SenderSummary struct {
	Email      string
	Name       string
	Surname    string
	Deliveries []SentDelivery
}

// SentDelivery is one distinct delivery and how often it was recorded.
type SentDelivery struct {
	ParcelID             string
	LockerID             string
	ReceiverEmail        string
	SentDate             string
	ExpectedDeliveryDate string
	Count                int
}

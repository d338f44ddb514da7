package queries

import (
	"errors"
	"math"

	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var ErrGetStatisticsQueryIsNotConstructed = errors.New(
	"GetStatisticsQuery must be created via NewGetStatisticsQuery constructor",
)

// GetStatisticsQuery asks for the usage figures of the whole locker network
// and the top most active senders and receivers.
type GetStatisticsQuery struct {
	top   int
	guard guard.ConstructorGuard
}

// NewGetStatisticsQuery creates the query. top must be positive.
func NewGetStatisticsQuery(top int) (GetStatisticsQuery, error) {
	if top <= 0 {
		return GetStatisticsQuery{}, errs.NewValueIsOutOfRangeError("top", top, 1, math.MaxInt)
	}
	return GetStatisticsQuery{top: top, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatisticsQueryIsNotConstructed)
}

// Top returns how many senders and receivers to rank.
func (q GetStatisticsQuery) Top() int {
	return q.top
}

// GetStatisticsQueryResponse is the statistics read model. Per-locker lists
// are ordered by ascending locker id.
type GetStatisticsQueryResponse struct {
	ParcelSizes   []ParcelSize
	Usage         []LockerUsage
	Violations    []CapacityViolation
	MostUsedSizes []LockerSizes
	TopSenders    []Party
	TopReceivers  []Party

	// LongestDelivery is nil when there are no deliveries.
	LongestDelivery *LongestDelivery
}

type ParcelSize struct {
	ParcelID string
	Size     string
}

type LockerUsage struct {
	LockerID string
	Small    int
	Medium   int
	Large    int
	Total    int
}

type CapacityViolation struct {
	LockerID string
	Size     string
	Used     int
	Capacity int
}

type LockerSizes struct {
	LockerID string
	Sizes    []string
}

// Party is a ranked sender or receiver. FarthestLocker is empty when no
// locker lies at a positive distance from the user.
type Party struct {
	Email          string
	Deliveries     int
	FarthestLocker string
	MaxDistanceKm  float64
}

type LongestDelivery struct {
	SenderEmail string
	Days        int
}

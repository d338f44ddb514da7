package http

// Error is the JSON body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ParcelRequest describes a parcel looking for a locker.
type ParcelRequest struct {
	Email    string `json:"email" validate:"required,email"`
	ParcelID string `json:"parcel_id" validate:"required"`
	Height   int    `json:"height" validate:"required,gt=0"`
	Length   int    `json:"length" validate:"required,gt=0"`
	Weight   int    `json:"weight" validate:"required,gt=0"`
}

type SendReportRequest struct {
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body"`
}

type LockerMatch struct {
	LockerID     string       `json:"locker_id"`
	Size         string       `json:"size"`
	Compartments Compartments `json:"compartments"`
	DistanceKm   float64      `json:"distance_km"`
}

type Compartments struct {
	Small  int `json:"small"`
	Medium int `json:"medium"`
	Large  int `json:"large"`
}

type ParcelLocation struct {
	ParcelID string `json:"parcel_id"`
	LockerID string `json:"locker_id,omitempty"`
	Found    bool   `json:"found"`
	Message  string `json:"message"`
}

type Statistics struct {
	ParcelSizes     []ParcelSize        `json:"parcel_sizes"`
	Usage           []LockerUsage       `json:"usage"`
	Violations      []CapacityViolation `json:"violations"`
	MostUsedSizes   []LockerSizes       `json:"most_used_sizes"`
	TopSenders      []Party             `json:"top_senders"`
	TopReceivers    []Party             `json:"top_receivers"`
	LongestDelivery *LongestDelivery    `json:"longest_delivery"`
}

type ParcelSize struct {
	ParcelID string `json:"parcel_id"`
	Size     string `json:"size"`
}

type LockerUsage struct {
	LockerID string `json:"locker_id"`
	Small    int    `json:"small"`
	Medium   int    `json:"medium"`
	Large    int    `json:"large"`
	Total    int    `json:"total"`
}

type CapacityViolation struct {
	LockerID string `json:"locker_id"`
	Size     string `json:"size"`
	Used     int    `json:"used"`
	Capacity int    `json:"capacity"`
}

type LockerSizes struct {
	LockerID string   `json:"locker_id"`
	Sizes    []string `json:"sizes"`
}

type Party struct {
	Email          string  `json:"email"`
	Deliveries     int     `json:"deliveries"`
	FarthestLocker string  `json:"farthest_locker"`
	MaxDistanceKm  float64 `json:"max_distance_km"`
}

type LongestDelivery struct {
	SenderEmail string `json:"sender_email"`
	Days        int    `json:"days"`
}

type PurchaseSummary struct {
	Senders []SenderSummary `json:"senders"`
}

type SenderSummary struct {
	Email      string         `json:"email"`
	Name       string         `json:"name"`
	Surname    string         `json:"surname"`
	Deliveries []SentDelivery `json:"deliveries"`
}

type SentDelivery struct {
	ParcelID             string `json:"parcel_id"`
	LockerID             string `json:"locker_id"`
	ReceiverEmail        string `json:"receiver_email"`
	SentDate             string `json:"sent_date"`
	ExpectedDeliveryDate string `json:"expected_delivery_date"`
	Count                int    `json:"count"`
}

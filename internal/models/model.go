package models

import "time"

// Location is a WGS-84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Offer represents a premise submitted for rent by a landlord.
type Offer struct {
	OfferID       string    `json:"offer_id"`
	Landlord      string    `json:"landlord"`
	StartingPrice int64     `json:"starting_price"`
	Location      Location  `json:"location"`
	CreatedAt     time.Time `json:"created_at"`
}

// Request represents a tenant's criteria for a premise they wish to rent.
type Request struct {
	RequestID string    `json:"request_id"`
	Tenant    string    `json:"tenant"`
	MinPrice  int64     `json:"min_price"`
	MaxPrice  int64     `json:"max_price"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// Bid is a bidder's current amount within one auction. A ledger holds
// at most one Bid per bidder identity.
type Bid struct {
	OfferID  string    `json:"offer_id"`
	Bidder   string    `json:"bidder"`
	Amount   int64     `json:"amount"`
	PlacedAt time.Time `json:"placed_at"`
}

// AuctionStatus is the lifecycle stage of an auction. Transitions are
// monotonic: bidding -> confirming -> completed.
type AuctionStatus string

const (
	StatusBidding    AuctionStatus = "bidding"
	StatusConfirming AuctionStatus = "confirming"
	StatusCompleted  AuctionStatus = "completed"
)

// ServiceDemand is a citizen's request for a neighbourhood service.
// Demands are recorded as-is; they take no part in matching or auctions.
type ServiceDemand struct {
	DemandID  string    `json:"demand_id"`
	Citizen   string    `json:"citizen"`
	Service   string    `json:"service"`
	Priority  string    `json:"priority"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

package notify

import (
	"time"

	model "premise-hub/internal/models"
)

// Kind tags an outbound auction event.
type Kind string

const (
	KindAuctionStart        Kind = "auction-start"
	KindOutbidNotification  Kind = "outbid-notification"
	KindAuctionStop         Kind = "auction-stop"
	KindConfirmationRequest Kind = "confirmation-request"
	KindAuctionLost         Kind = "auction-lost"
	KindAuctionCompleted    Kind = "auction-completed"
)

// Notification is one addressed event ready for the transport.
type Notification struct {
	To      string `json:"to"`
	Kind    Kind   `json:"kind"`
	Payload any    `json:"payload"`
}

// AuctionStart is sent to each newly enrolled bidder.
type AuctionStart struct {
	OfferID           string         `json:"offer_id"`
	StartingPrice     int64          `json:"starting_price"`
	Location          model.Location `json:"location"`
	CurrentHighestBid *int64         `json:"current_highest_bid,omitempty"`
	EndTime           time.Time      `json:"end_time"`
}

// OutbidNotification is sent to each bidder whose current amount was beaten.
type OutbidNotification struct {
	OfferID           string `json:"offer_id"`
	CurrentHighestBid int64  `json:"current_highest_bid"`
}

// AuctionStop is sent to every bidder when the bidding phase ends.
type AuctionStop struct {
	OfferID string `json:"offer_id"`
}

// ConfirmationRequest asks the current confirming bidder to confirm their win.
type ConfirmationRequest struct {
	OfferID   string `json:"offer_id"`
	BidAmount int64  `json:"bid_amount"`
}

// AuctionLost is sent to every bidder ranked below the confirmed winner.
type AuctionLost struct {
	OfferID string `json:"offer_id"`
}

// AuctionCompleted is sent to the offer's landlord once a winner confirmed.
type AuctionCompleted struct {
	OfferID    string `json:"offer_id"`
	FinalPrice int64  `json:"final_price"`
}

package helpers

import (
	model "premise-hub/internal/models"
)

// LocationDTO uses pointers so that 0.0 coordinates survive the
// required-field check.
type LocationDTO struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lon *float64 `json:"lon" binding:"required"`
}

// ToLocation converts the DTO to the domain type.
func (l LocationDTO) ToLocation() model.Location {
	return model.Location{Lat: *l.Lat, Lon: *l.Lon}
}

// Inbound message DTOs, one per message tag

type RentalOfferMessage struct {
	Sender        string      `json:"sender" binding:"required"`
	StartingPrice int64       `json:"starting_price" binding:"required,gt=0"`
	Location      LocationDTO `json:"location" binding:"required"`
}

type RegisterRentalMessage struct {
	Sender   string      `json:"sender" binding:"required"`
	MinPrice int64       `json:"min_price" binding:"gte=0"`
	MaxPrice int64       `json:"max_price" binding:"required,gt=0"`
	Location LocationDTO `json:"location" binding:"required"`
}

type BidMessage struct {
	Sender  string `json:"sender" binding:"required"`
	OfferID string `json:"offer_id" binding:"required"`
	Amount  *int64 `json:"amount" binding:"required,gte=0"`
}

type ConfirmationResponseMessage struct {
	Sender    string `json:"sender" binding:"required"`
	OfferID   string `json:"offer_id" binding:"required"`
	Confirmed *bool  `json:"confirmed" binding:"required"`
}

type ServiceDemandMessage struct {
	Sender   string      `json:"sender" binding:"required"`
	Service  string      `json:"service" binding:"required"`
	Priority string      `json:"priority" binding:"required"`
	Location LocationDTO `json:"location" binding:"required"`
}

type SubscriptionRequest struct {
	Party       string `json:"party" binding:"required"`
	CallbackURL string `json:"callback_url" binding:"required,url"`
}

// Acknowledgement carries the identifier assigned to an accepted message.
type Acknowledgement struct {
	OfferID   string `json:"offer_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	DemandID  string `json:"demand_id,omitempty"`
}

package hub

import (
	"time"

	model "premise-hub/internal/models"
)

// AuctionView is a read-only snapshot of one active auction, safe to use
// outside the coordinator loop.
type AuctionView struct {
	OfferID          string              `json:"offer_id"`
	Landlord         string              `json:"landlord"`
	Status           model.AuctionStatus `json:"status"`
	EndOfBidding     time.Time           `json:"end_of_bidding"`
	ConfirmingBidder string              `json:"confirming_bidder,omitempty"`
	ConfirmBy        *time.Time          `json:"confirm_by,omitempty"`
	Bids             []model.Bid         `json:"bids"`
}

func (a *auction) view() AuctionView {
	v := AuctionView{
		OfferID:          a.offer.OfferID,
		Landlord:         a.offer.Landlord,
		Status:           a.status,
		EndOfBidding:     a.endOfBidding,
		ConfirmingBidder: a.confirming,
		Bids:             a.ledger.Ranking(),
	}
	if a.status == model.StatusConfirming && a.confirming != "" {
		confirmBy := a.confirmBy
		v.ConfirmBy = &confirmBy
	}
	return v
}

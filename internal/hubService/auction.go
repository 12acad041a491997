package hub

import (
	"time"

	"premise-hub/internal/ledger"
	model "premise-hub/internal/models"
	"premise-hub/internal/notify"
)

// auction is the per-offer state machine. All transitions run on the
// coordinator loop; methods return the addressed notifications the
// transition produced so the caller can hand them to the dispatcher
// after the mutation is complete.
type auction struct {
	offer        model.Offer
	ledger       *ledger.Ledger
	status       model.AuctionStatus
	endOfBidding time.Time
	confirming   string // current confirming bidder, empty outside the cascade
	confirmBy    time.Time
}

func newAuction(offer model.Offer, now time.Time, duration time.Duration) *auction {
	return &auction{
		offer:        offer,
		ledger:       ledger.New(offer.OfferID),
		status:       model.StatusBidding,
		endOfBidding: now.Add(duration),
	}
}

// enroll admits a matching requester as a bidder at the offer's starting
// price. Admission is only possible while bidding is open; a requester
// already enrolled is not re-admitted and receives no notification.
func (a *auction) enroll(bidder string, now time.Time) (notify.Notification, bool) {
	if a.status != model.StatusBidding {
		return notify.Notification{}, false
	}
	if !a.ledger.Accept(bidder, a.offer.StartingPrice, now) {
		return notify.Notification{}, false
	}

	payload := notify.AuctionStart{
		OfferID:       a.offer.OfferID,
		StartingPrice: a.offer.StartingPrice,
		Location:      a.offer.Location,
		EndTime:       a.endOfBidding,
	}
	if ranking := a.ledger.Ranking(); len(ranking) > 0 {
		highest := ranking[0].Amount
		payload.CurrentHighestBid = &highest
	}
	return notify.Notification{To: bidder, Kind: notify.KindAuctionStart, Payload: payload}, true
}

// placeBid applies one bid. Accepted bids push the end-of-bidding deadline
// later (never earlier) and produce an outbid notification for every
// bidder whose current amount the new bid beats. Late or non-increasing
// bids are dropped without side effects.
func (a *auction) placeBid(bidder string, amount int64, now time.Time, extend time.Duration) ([]notify.Notification, bool) {
	if a.status != model.StatusBidding {
		return nil, false
	}
	if !a.ledger.Accept(bidder, amount, now) {
		return nil, false
	}

	if deadline := now.Add(extend); deadline.After(a.endOfBidding) {
		a.endOfBidding = deadline
	}

	highest := a.ledger.Ranking()[0].Amount
	var notifications []notify.Notification
	for _, loser := range a.ledger.Outbid(amount) {
		if loser == bidder {
			continue
		}
		notifications = append(notifications, notify.Notification{
			To:   loser,
			Kind: notify.KindOutbidNotification,
			Payload: notify.OutbidNotification{
				OfferID:           a.offer.OfferID,
				CurrentHighestBid: highest,
			},
		})
	}
	return notifications, true
}

// confirm applies a confirmation response. Only the current confirming
// bidder is heard; an explicit decline does not advance the cascade (the
// confirmation timeout is the only path past a non-confirming leader).
// Returns done=true when the auction completed and must leave the active
// set.
func (a *auction) confirm(bidder string, confirmed bool) ([]notify.Notification, bool) {
	if a.status != model.StatusConfirming || bidder != a.confirming {
		return nil, false
	}
	if !confirmed {
		return nil, false
	}

	ranking := a.ledger.Ranking()
	idx := rankIndex(ranking, bidder)
	if idx < 0 {
		return nil, false
	}

	notifications := make([]notify.Notification, 0, len(ranking)-idx)
	for _, lower := range ranking[idx+1:] {
		notifications = append(notifications, notify.Notification{
			To:      lower.Bidder,
			Kind:    notify.KindAuctionLost,
			Payload: notify.AuctionLost{OfferID: a.offer.OfferID},
		})
	}
	notifications = append(notifications, notify.Notification{
		To:   a.offer.Landlord,
		Kind: notify.KindAuctionCompleted,
		Payload: notify.AuctionCompleted{
			OfferID:    a.offer.OfferID,
			FinalPrice: ranking[idx].Amount,
		},
	})

	a.status = model.StatusCompleted
	return notifications, true
}

// advance evaluates the auction's deadlines against now and fires at most
// one transition: end of bidding, or one step of the confirmation cascade.
// Returns done=true when the auction completed.
func (a *auction) advance(now time.Time, confirmWindow time.Duration) ([]notify.Notification, bool) {
	switch a.status {
	case model.StatusBidding:
		if now.Before(a.endOfBidding) {
			return nil, false
		}
		return a.closeBidding(now, confirmWindow)
	case model.StatusConfirming:
		if now.Before(a.confirmBy) {
			return nil, false
		}
		return a.promoteNext(now, confirmWindow)
	}
	return nil, false
}

// closeBidding ends the bidding phase: every bidder is told the auction
// stopped and the highest-ranked bidder is asked to confirm. With no bids
// at all the auction completes silently with no winner.
func (a *auction) closeBidding(now time.Time, confirmWindow time.Duration) ([]notify.Notification, bool) {
	a.status = model.StatusConfirming

	ranking := a.ledger.Ranking()
	if len(ranking) == 0 {
		a.status = model.StatusCompleted
		return nil, true
	}

	notifications := make([]notify.Notification, 0, len(ranking)+1)
	for _, bid := range ranking {
		notifications = append(notifications, notify.Notification{
			To:      bid.Bidder,
			Kind:    notify.KindAuctionStop,
			Payload: notify.AuctionStop{OfferID: a.offer.OfferID},
		})
	}

	a.confirming = ranking[0].Bidder
	a.confirmBy = now.Add(confirmWindow)
	notifications = append(notifications, notify.Notification{
		To:   a.confirming,
		Kind: notify.KindConfirmationRequest,
		Payload: notify.ConfirmationRequest{
			OfferID:   a.offer.OfferID,
			BidAmount: ranking[0].Amount,
		},
	})
	return notifications, false
}

// promoteNext moves the confirmation cascade one rank down after a
// timeout. When no lower-ranked bidder remains the auction completes with
// no winner and no notification.
func (a *auction) promoteNext(now time.Time, confirmWindow time.Duration) ([]notify.Notification, bool) {
	ranking := a.ledger.Ranking()
	idx := rankIndex(ranking, a.confirming)
	if idx < 0 || idx+1 >= len(ranking) {
		a.status = model.StatusCompleted
		a.confirming = ""
		return nil, true
	}

	next := ranking[idx+1]
	a.confirming = next.Bidder
	a.confirmBy = now.Add(confirmWindow)
	return []notify.Notification{{
		To:   a.confirming,
		Kind: notify.KindConfirmationRequest,
		Payload: notify.ConfirmationRequest{
			OfferID:   a.offer.OfferID,
			BidAmount: next.Amount,
		},
	}}, false
}

func rankIndex(ranking []model.Bid, bidder string) int {
	for i, bid := range ranking {
		if bid.Bidder == bidder {
			return i
		}
	}
	return -1
}

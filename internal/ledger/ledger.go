package ledger

import (
	"sort"
	"time"

	model "premise-hub/internal/models"
)

// entry is a bidder's current bid plus the order in which it was first
// accepted, used as the final ranking tie-break.
type entry struct {
	bid model.Bid
	seq int64
}

// Ledger tracks each bidder's current amount within one auction. A bidder
// has at most one entry; a newly accepted bid replaces the previous one.
// The ledger is not safe for concurrent use; the coordinator's event loop
// is the only writer.
type Ledger struct {
	offerID string
	entries map[string]entry
	nextSeq int64
}

// New creates an empty ledger for the given offer.
func New(offerID string) *Ledger {
	return &Ledger{
		offerID: offerID,
		entries: make(map[string]entry),
	}
}

// Accept records a bid and reports whether it was accepted. A bidder's
// first bid is always recorded. A re-bid is accepted only if strictly
// greater than that bidder's own previous amount; the ledger-wide maximum
// is never consulted, so a trailing bidder may always raise their own bid.
func (l *Ledger) Accept(bidder string, amount int64, at time.Time) bool {
	prev, ok := l.entries[bidder]
	if ok && amount <= prev.bid.Amount {
		return false
	}

	seq := prev.seq
	if !ok {
		seq = l.nextSeq
		l.nextSeq++
	}
	l.entries[bidder] = entry{
		bid: model.Bid{
			OfferID:  l.offerID,
			Bidder:   bidder,
			Amount:   amount,
			PlacedAt: at,
		},
		seq: seq,
	}
	return true
}

// Outbid returns the identities of every bidder whose current amount is
// strictly less than the given amount.
func (l *Ledger) Outbid(amount int64) []string {
	var losers []string
	for bidder, e := range l.entries {
		if e.bid.Amount < amount {
			losers = append(losers, bidder)
		}
	}
	return losers
}

// Ranking returns all current bids ordered by amount descending, ties
// broken by earliest timestamp, then by acceptance order so that bids
// recorded in the same instant rank deterministically.
func (l *Ledger) Ranking() []model.Bid {
	ordered := make([]entry, 0, len(l.entries))
	for _, e := range l.entries {
		ordered = append(ordered, e)
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.bid.Amount != b.bid.Amount {
			return a.bid.Amount > b.bid.Amount
		}
		if !a.bid.PlacedAt.Equal(b.bid.PlacedAt) {
			return a.bid.PlacedAt.Before(b.bid.PlacedAt)
		}
		return a.seq < b.seq
	})

	bids := make([]model.Bid, len(ordered))
	for i, e := range ordered {
		bids[i] = e.bid
	}
	return bids
}

// Bidders returns the identities of every enrolled bidder, in no
// particular order.
func (l *Ledger) Bidders() []string {
	bidders := make([]string, 0, len(l.entries))
	for bidder := range l.entries {
		bidders = append(bidders, bidder)
	}
	return bidders
}

// Bid returns a bidder's current bid, if any.
func (l *Ledger) Bid(bidder string) (model.Bid, bool) {
	e, ok := l.entries[bidder]
	return e.bid, ok
}

// Len returns the number of enrolled bidders.
func (l *Ledger) Len() int {
	return len(l.entries)
}

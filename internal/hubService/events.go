package hub

import (
	"time"

	model "premise-hub/internal/models"
)

// event is one unit of work for the coordinator loop. Inbound messages,
// scheduler ticks and read queries all arrive through the same queue, so
// every mutation of the shared state is applied by a single goroutine.
type event interface {
	isEvent()
}

type offerEvent struct {
	offer model.Offer
}

type requestEvent struct {
	request model.Request
}

type bidEvent struct {
	offerID string
	bidder  string
	amount  int64
}

type confirmEvent struct {
	offerID   string
	bidder    string
	confirmed bool
}

type demandEvent struct {
	demand model.ServiceDemand
}

type tickEvent struct {
	now time.Time
}

// queryEvent runs a read closure on the loop; the closure replies on a
// channel owned by the caller.
type queryEvent struct {
	run func()
}

func (offerEvent) isEvent()   {}
func (requestEvent) isEvent() {}
func (bidEvent) isEvent()     {}
func (confirmEvent) isEvent() {}
func (demandEvent) isEvent()  {}
func (tickEvent) isEvent()    {}
func (queryEvent) isEvent()   {}

package repository

import (
	"fmt"
	"sync"

	"premise-hub/internal/huberrors"
	model "premise-hub/internal/models"
)

// RegistryDB defines the offer/request/demand storage interface for the hub
type RegistryDB interface {
	AddOffer(offer model.Offer) error
	AddRequest(req model.Request) error
	AddDemand(demand model.ServiceDemand) error
	OfferByID(offerID string) (model.Offer, error)
	Offers() []model.Offer
	Requests() []model.Request
	Demands() []model.ServiceDemand
}

// MemoryRegistry is a concurrency-safe in-memory implementation of RegistryDB
type MemoryRegistry struct {
	mu       sync.RWMutex
	offers   map[string]model.Offer // key: offerID
	requests map[string]model.Request
	demands  map[string]model.ServiceDemand
	// submission order, so snapshots list entries oldest first
	offerOrder   []string
	requestOrder []string
	demandOrder  []string
}

// NewMemoryRegistry creates a new in-memory registry instance
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		offers:   make(map[string]model.Offer),
		requests: make(map[string]model.Request),
		demands:  make(map[string]model.ServiceDemand),
	}
}

// AddOffer appends a rental offer to the offer store
func (r *MemoryRegistry) AddOffer(offer model.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.offers[offer.OfferID]; ok {
		return fmt.Errorf("add offer %s: %w", offer.OfferID, huberrors.ErrDuplicateOffer)
	}
	r.offers[offer.OfferID] = offer
	r.offerOrder = append(r.offerOrder, offer.OfferID)
	return nil
}

// AddRequest appends a rental request to the request store
func (r *MemoryRegistry) AddRequest(req model.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[req.RequestID]; ok {
		return fmt.Errorf("add request %s: %w", req.RequestID, huberrors.ErrDuplicateRequest)
	}
	r.requests[req.RequestID] = req
	r.requestOrder = append(r.requestOrder, req.RequestID)
	return nil
}

// AddDemand appends a citizen service demand to the demand store
func (r *MemoryRegistry) AddDemand(demand model.ServiceDemand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.demands[demand.DemandID]; ok {
		return fmt.Errorf("add demand %s: %w", demand.DemandID, huberrors.ErrDuplicateDemand)
	}
	r.demands[demand.DemandID] = demand
	r.demandOrder = append(r.demandOrder, demand.DemandID)
	return nil
}

// OfferByID returns the offer with the given identifier
func (r *MemoryRegistry) OfferByID(offerID string) (model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offer, ok := r.offers[offerID]
	if !ok {
		return model.Offer{}, fmt.Errorf("get offer %s: %w", offerID, huberrors.ErrOfferNotFound)
	}
	return offer, nil
}

// Offers returns all registered offers in submission order
func (r *MemoryRegistry) Offers() []model.Offer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offers := make([]model.Offer, 0, len(r.offerOrder))
	for _, id := range r.offerOrder {
		offers = append(offers, r.offers[id])
	}
	return offers
}

// Requests returns all registered requests in submission order
func (r *MemoryRegistry) Requests() []model.Request {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := make([]model.Request, 0, len(r.requestOrder))
	for _, id := range r.requestOrder {
		requests = append(requests, r.requests[id])
	}
	return requests
}

// Demands returns all recorded service demands in submission order
func (r *MemoryRegistry) Demands() []model.ServiceDemand {
	r.mu.RLock()
	defer r.mu.RUnlock()

	demands := make([]model.ServiceDemand, 0, len(r.demandOrder))
	for _, id := range r.demandOrder {
		demands = append(demands, r.demands[id])
	}
	return demands
}

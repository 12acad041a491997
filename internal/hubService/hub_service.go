package hub

import (
	"context"
	"fmt"
	"time"

	"premise-hub/internal/huberrors"
	"premise-hub/internal/matching"
	model "premise-hub/internal/models"
	"premise-hub/internal/notify"
	"premise-hub/internal/repository"
	"premise-hub/utils"
)

// Config holds the coordinator's timing and matching parameters.
type Config struct {
	AuctionTime   time.Duration // bidding phase length for a new auction
	ExtendTime    time.Duration // anti-snipe extension on each accepted bid
	ConfirmWindow time.Duration // how long a confirming bidder may respond
	TickInterval  time.Duration // scheduler period
	ProximityKm   float64       // matcher radius
}

// DefaultConfig mirrors the production defaults of the original system.
func DefaultConfig() Config {
	return Config{
		AuctionTime:   120 * time.Second,
		ExtendTime:    60 * time.Second,
		ConfirmWindow: 30 * time.Second,
		TickInterval:  time.Second,
		ProximityKm:   matching.DefaultProximityKm,
	}
}

// Notifier hands addressed events to the transport. Dispatch must not
// block and must never fail the operation that produced the events.
type Notifier interface {
	Dispatch(notifications ...notify.Notification)
}

// HubService is the auction coordinator. It owns the offer/request
// registry and the active-auction set; all state is mutated exclusively
// by Run's event loop, which drains inbound messages, scheduler ticks and
// read queries from a single queue.
type HubService struct {
	cfg      Config
	registry repository.RegistryDB
	notifier Notifier
	events   chan event
	auctions map[string]*auction // key: offerID, at most one auction per offer
	now      func() time.Time
}

const eventQueueSize = 256

// NewHubService creates a coordinator. Zero config fields fall back to
// the defaults.
func NewHubService(registry repository.RegistryDB, notifier Notifier, cfg Config) *HubService {
	def := DefaultConfig()
	if cfg.AuctionTime <= 0 {
		cfg.AuctionTime = def.AuctionTime
	}
	if cfg.ExtendTime <= 0 {
		cfg.ExtendTime = def.ExtendTime
	}
	if cfg.ConfirmWindow <= 0 {
		cfg.ConfirmWindow = def.ConfirmWindow
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = def.TickInterval
	}
	if cfg.ProximityKm <= 0 {
		cfg.ProximityKm = def.ProximityKm
	}

	return &HubService{
		cfg:      cfg,
		registry: registry,
		notifier: notifier,
		events:   make(chan event, eventQueueSize),
		auctions: make(map[string]*auction),
		now:      time.Now,
	}
}

// Run drains the event queue until the context is cancelled. The ticker
// feeds the same loop as inbound messages, so scheduler sweeps and
// message handling never interleave.
func (s *HubService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.events:
			s.apply(ev)
		case now := <-ticker.C:
			s.apply(tickEvent{now: now})
		}
	}
}

func (s *HubService) apply(ev event) {
	switch ev := ev.(type) {
	case offerEvent:
		s.handleOffer(ev.offer)
	case requestEvent:
		s.handleRequest(ev.request)
	case bidEvent:
		s.handleBid(ev.offerID, ev.bidder, ev.amount)
	case confirmEvent:
		s.handleConfirmation(ev.offerID, ev.bidder, ev.confirmed)
	case demandEvent:
		s.handleDemand(ev.demand)
	case tickEvent:
		s.handleTick(ev.now)
	case queryEvent:
		ev.run()
	}
}

// SubmitOffer enqueues a landlord's rental offer and returns its assigned
// identifier.
func (s *HubService) SubmitOffer(landlord string, startingPrice int64, location model.Location) string {
	offer := model.Offer{
		OfferID:       utils.GenerateID(),
		Landlord:      landlord,
		StartingPrice: startingPrice,
		Location:      location,
		CreatedAt:     s.now().UTC(),
	}
	s.events <- offerEvent{offer: offer}
	return offer.OfferID
}

// SubmitRequest enqueues a tenant's rental request and returns its
// assigned identifier.
func (s *HubService) SubmitRequest(tenant string, minPrice, maxPrice int64, location model.Location) string {
	req := model.Request{
		RequestID: utils.GenerateID(),
		Tenant:    tenant,
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		Location:  location,
		CreatedAt: s.now().UTC(),
	}
	s.events <- requestEvent{request: req}
	return req.RequestID
}

// PlaceBid enqueues a bid. Stale or invalid bids are dropped by the loop
// without feedback to the sender.
func (s *HubService) PlaceBid(bidder, offerID string, amount int64) {
	s.events <- bidEvent{offerID: offerID, bidder: bidder, amount: amount}
}

// Confirm enqueues a confirmation response for the given auction.
func (s *HubService) Confirm(bidder, offerID string, confirmed bool) {
	s.events <- confirmEvent{offerID: offerID, bidder: bidder, confirmed: confirmed}
}

// SubmitDemand validates and enqueues a citizen service demand.
func (s *HubService) SubmitDemand(citizen, service, priority string, location model.Location) (string, error) {
	if !model.IsServiceOption(service) {
		return "", fmt.Errorf("submit demand for %q: %w", service, huberrors.ErrUnknownService)
	}
	if !model.IsDemandPriority(priority) {
		return "", fmt.Errorf("submit demand with priority %q: %w", priority, huberrors.ErrUnknownPriority)
	}

	demand := model.ServiceDemand{
		DemandID:  utils.GenerateID(),
		Citizen:   citizen,
		Service:   service,
		Priority:  priority,
		Location:  location,
		CreatedAt: s.now().UTC(),
	}
	s.events <- demandEvent{demand: demand}
	return demand.DemandID, nil
}

// Offers returns all registered offers.
func (s *HubService) Offers() []model.Offer {
	return s.registry.Offers()
}

// Requests returns all registered requests.
func (s *HubService) Requests() []model.Request {
	return s.registry.Requests()
}

// Demands returns all recorded service demands.
func (s *HubService) Demands() []model.ServiceDemand {
	return s.registry.Demands()
}

// Auctions returns a snapshot of every active auction. The read runs on
// the coordinator loop so it never observes a half-applied transition.
func (s *HubService) Auctions() []AuctionView {
	var views []AuctionView
	s.query(func() {
		views = make([]AuctionView, 0, len(s.auctions))
		for _, a := range s.auctions {
			views = append(views, a.view())
		}
	})
	return views
}

// Auction returns a snapshot of the active auction for an offer.
func (s *HubService) Auction(offerID string) (AuctionView, error) {
	var (
		view  AuctionView
		found bool
	)
	s.query(func() {
		if a, ok := s.auctions[offerID]; ok {
			view = a.view()
			found = true
		}
	})
	if !found {
		return AuctionView{}, fmt.Errorf("get auction %s: %w", offerID, huberrors.ErrAuctionNotFound)
	}
	return view, nil
}

func (s *HubService) query(run func()) {
	done := make(chan struct{})
	s.events <- queryEvent{run: func() {
		run()
		close(done)
	}}
	<-done
}

func (s *HubService) handleOffer(offer model.Offer) {
	if err := s.registry.AddOffer(offer); err != nil {
		utils.Warn("rejected rental offer", map[string]any{"offer_id": offer.OfferID, "error": err.Error()})
		return
	}
	utils.Info("rental offer registered", map[string]any{
		"offer_id":       offer.OfferID,
		"landlord":       offer.Landlord,
		"starting_price": offer.StartingPrice,
	})
	s.maybeStartAuction(offer)
}

func (s *HubService) handleRequest(req model.Request) {
	if err := s.registry.AddRequest(req); err != nil {
		utils.Warn("rejected rental request", map[string]any{"request_id": req.RequestID, "error": err.Error()})
		return
	}
	utils.Info("rental request registered", map[string]any{
		"request_id": req.RequestID,
		"tenant":     req.Tenant,
		"min_price":  req.MinPrice,
		"max_price":  req.MaxPrice,
	})

	for _, offer := range s.registry.Offers() {
		if !matching.Matches(offer, req, s.cfg.ProximityKm) {
			continue
		}
		a, ok := s.auctions[offer.OfferID]
		if !ok {
			s.maybeStartAuction(offer)
			continue
		}
		// Join a running auction at its starting price; once the bidding
		// phase is over the requester is too late.
		if n, enrolled := a.enroll(req.Tenant, s.now()); enrolled {
			s.notifier.Dispatch(n)
			utils.Info("bidder joined running auction", map[string]any{
				"offer_id": offer.OfferID,
				"bidder":   req.Tenant,
			})
		} else {
			utils.Debug("requester not admitted to auction", map[string]any{
				"offer_id": offer.OfferID,
				"tenant":   req.Tenant,
				"status":   string(a.status),
			})
		}
	}
}

// maybeStartAuction creates an auction for the offer when at least one
// matching request exists, enrolling every matching requester as an
// initial bidder at the offer's starting price.
func (s *HubService) maybeStartAuction(offer model.Offer) {
	if _, ok := s.auctions[offer.OfferID]; ok {
		return
	}

	var bidders []string
	for _, req := range s.registry.Requests() {
		if matching.Matches(offer, req, s.cfg.ProximityKm) {
			bidders = append(bidders, req.Tenant)
		}
	}
	if len(bidders) == 0 {
		return
	}

	now := s.now()
	a := newAuction(offer, now, s.cfg.AuctionTime)
	s.auctions[offer.OfferID] = a

	var notifications []notify.Notification
	for _, bidder := range bidders {
		if n, enrolled := a.enroll(bidder, now); enrolled {
			notifications = append(notifications, n)
		}
	}
	s.notifier.Dispatch(notifications...)

	utils.Info("auction started", map[string]any{
		"offer_id":       offer.OfferID,
		"starting_price": offer.StartingPrice,
		"bidders":        a.ledger.Len(),
		"end_time":       a.endOfBidding.UTC().Format(time.RFC3339),
	})
}

func (s *HubService) handleBid(offerID, bidder string, amount int64) {
	a, ok := s.auctions[offerID]
	if !ok {
		utils.Debug("bid for unknown auction dropped", map[string]any{"offer_id": offerID, "bidder": bidder})
		return
	}

	notifications, accepted := a.placeBid(bidder, amount, s.now(), s.cfg.ExtendTime)
	if !accepted {
		utils.Debug("bid rejected", map[string]any{
			"offer_id": offerID,
			"bidder":   bidder,
			"amount":   amount,
			"status":   string(a.status),
		})
		return
	}

	s.notifier.Dispatch(notifications...)
	utils.Info("bid accepted", map[string]any{
		"offer_id": offerID,
		"bidder":   bidder,
		"amount":   amount,
		"end_time": a.endOfBidding.UTC().Format(time.RFC3339),
	})
}

func (s *HubService) handleConfirmation(offerID, bidder string, confirmed bool) {
	a, ok := s.auctions[offerID]
	if !ok {
		utils.Debug("confirmation for unknown auction dropped", map[string]any{"offer_id": offerID, "bidder": bidder})
		return
	}

	notifications, done := a.confirm(bidder, confirmed)
	if !done {
		utils.Debug("confirmation ignored", map[string]any{
			"offer_id":  offerID,
			"bidder":    bidder,
			"confirmed": confirmed,
			"status":    string(a.status),
		})
		return
	}

	delete(s.auctions, offerID)
	s.notifier.Dispatch(notifications...)
	utils.Info("auction completed", map[string]any{
		"offer_id": offerID,
		"winner":   bidder,
	})
}

func (s *HubService) handleDemand(demand model.ServiceDemand) {
	if err := s.registry.AddDemand(demand); err != nil {
		utils.Warn("rejected service demand", map[string]any{"demand_id": demand.DemandID, "error": err.Error()})
		return
	}
	utils.Info("service demand recorded", map[string]any{
		"demand_id": demand.DemandID,
		"citizen":   demand.Citizen,
		"service":   demand.Service,
		"priority":  demand.Priority,
	})
}

// handleTick advances every active auction's deadlines. Auctions are
// independent; each fires at most one transition per tick.
func (s *HubService) handleTick(now time.Time) {
	for offerID, a := range s.auctions {
		notifications, done := a.advance(now, s.cfg.ConfirmWindow)
		if done {
			delete(s.auctions, offerID)
			utils.Info("auction closed without winner", map[string]any{"offer_id": offerID})
		}
		if len(notifications) > 0 {
			s.notifier.Dispatch(notifications...)
		}
	}
}

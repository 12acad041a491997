package handler

import (
	"fmt"
	"net/http"

	"premise-hub/internal/huberrors"
	hub "premise-hub/internal/hubService"
	model "premise-hub/internal/models"
	"premise-hub/services/hub/helpers"
	"premise-hub/utils"

	"github.com/gin-gonic/gin"
)

// HubCoordinator is the handler-facing surface of the auction coordinator.
type HubCoordinator interface {
	SubmitOffer(landlord string, startingPrice int64, location model.Location) string
	SubmitRequest(tenant string, minPrice, maxPrice int64, location model.Location) string
	PlaceBid(bidder, offerID string, amount int64)
	Confirm(bidder, offerID string, confirmed bool)
	SubmitDemand(citizen, service, priority string, location model.Location) (string, error)
	Offers() []model.Offer
	Requests() []model.Request
	Demands() []model.ServiceDemand
	Auctions() []hub.AuctionView
	Auction(offerID string) (hub.AuctionView, error)
}

type MessageHandler struct {
	hub    HubCoordinator
	routes map[string]gin.HandlerFunc // message tag -> handler, built once
}

func NewMessageHandler(hub HubCoordinator) *MessageHandler {
	h := &MessageHandler{hub: hub}
	h.routes = map[string]gin.HandlerFunc{
		"rental-offer":          h.handleRentalOffer,
		"register-rental":       h.handleRegisterRental,
		"bid":                   h.handleBid,
		"confirmation-response": h.handleConfirmationResponse,
		"service-demand":        h.handleServiceDemand,
	}
	return h
}

// HandleMessage handles POST /messages/:tag by dispatching through the
// static tag table.
func (h *MessageHandler) HandleMessage(c *gin.Context) {
	tag := c.Param("tag")
	route, ok := h.routes[tag]
	if !ok {
		err := fmt.Errorf("unknown message tag %q: %w", tag, huberrors.ErrInvalidMessage)
		utils.JSONError(c, http.StatusNotFound, err, "unknown message tag")
		utils.Warn("HandleMessage: unknown message tag", map[string]any{"tag": tag})
		return
	}
	route(c)
}

func (h *MessageHandler) handleRentalOffer(c *gin.Context) {
	var msg helpers.RentalOfferMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		helpers.HandleBindError(c, "handleRentalOffer", err)
		return
	}

	offerID := h.hub.SubmitOffer(msg.Sender, msg.StartingPrice, msg.Location.ToLocation())

	utils.JSONResponse(c, http.StatusAccepted, helpers.Acknowledgement{OfferID: offerID}, "rental offer accepted")
	helpers.LogSuccess("handleRentalOffer", "rental offer accepted", map[string]any{
		"offer_id":       offerID,
		"sender":         msg.Sender,
		"starting_price": msg.StartingPrice,
	})
}

func (h *MessageHandler) handleRegisterRental(c *gin.Context) {
	var msg helpers.RegisterRentalMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		helpers.HandleBindError(c, "handleRegisterRental", err)
		return
	}
	if msg.MaxPrice < msg.MinPrice {
		err := fmt.Errorf("max_price below min_price: %w", huberrors.ErrInvalidMessage)
		utils.JSONError(c, http.StatusBadRequest, err, "invalid message payload")
		utils.Warn("handleRegisterRental: invalid price range", map[string]any{
			"sender":    msg.Sender,
			"min_price": msg.MinPrice,
			"max_price": msg.MaxPrice,
		})
		return
	}

	requestID := h.hub.SubmitRequest(msg.Sender, msg.MinPrice, msg.MaxPrice, msg.Location.ToLocation())

	utils.JSONResponse(c, http.StatusAccepted, helpers.Acknowledgement{RequestID: requestID}, "rental request accepted")
	helpers.LogSuccess("handleRegisterRental", "rental request accepted", map[string]any{
		"request_id": requestID,
		"sender":     msg.Sender,
	})
}

// handleBid acknowledges every well-formed bid with 202: stale or
// non-increasing bids are dropped by the coordinator without feedback,
// so the transport layer has nothing to report.
func (h *MessageHandler) handleBid(c *gin.Context) {
	var msg helpers.BidMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		helpers.HandleBindError(c, "handleBid", err)
		return
	}

	h.hub.PlaceBid(msg.Sender, msg.OfferID, *msg.Amount)

	utils.JSONResponse(c, http.StatusAccepted, nil, "bid accepted for processing")
	helpers.LogSuccess("handleBid", "bid accepted for processing", map[string]any{
		"offer_id": msg.OfferID,
		"sender":   msg.Sender,
		"amount":   *msg.Amount,
	})
}

func (h *MessageHandler) handleConfirmationResponse(c *gin.Context) {
	var msg helpers.ConfirmationResponseMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		helpers.HandleBindError(c, "handleConfirmationResponse", err)
		return
	}

	h.hub.Confirm(msg.Sender, msg.OfferID, *msg.Confirmed)

	utils.JSONResponse(c, http.StatusAccepted, nil, "confirmation accepted for processing")
	helpers.LogSuccess("handleConfirmationResponse", "confirmation accepted for processing", map[string]any{
		"offer_id":  msg.OfferID,
		"sender":    msg.Sender,
		"confirmed": *msg.Confirmed,
	})
}

func (h *MessageHandler) handleServiceDemand(c *gin.Context) {
	var msg helpers.ServiceDemandMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		helpers.HandleBindError(c, "handleServiceDemand", err)
		return
	}

	demandID, err := h.hub.SubmitDemand(msg.Sender, msg.Service, msg.Priority, msg.Location.ToLocation())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("handleServiceDemand: rejected demand", map[string]any{
			"sender":  msg.Sender,
			"service": msg.Service,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusAccepted, helpers.Acknowledgement{DemandID: demandID}, "service demand accepted")
	helpers.LogSuccess("handleServiceDemand", "service demand accepted", map[string]any{
		"demand_id": demandID,
		"sender":    msg.Sender,
		"service":   msg.Service,
	})
}

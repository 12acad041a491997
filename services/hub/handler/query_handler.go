package handler

import (
	"fmt"
	"net/http"

	"premise-hub/services/hub/helpers"
	"premise-hub/utils"

	"github.com/gin-gonic/gin"
)

// GetOffersHandler handles GET /offers
func (h *MessageHandler) GetOffersHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.hub.Offers(), "offers retrieved successfully")
}

// GetRequestsHandler handles GET /requests
func (h *MessageHandler) GetRequestsHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.hub.Requests(), "requests retrieved successfully")
}

// GetDemandsHandler handles GET /demands
func (h *MessageHandler) GetDemandsHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.hub.Demands(), "service demands retrieved successfully")
}

// GetAuctionsHandler handles GET /auctions
func (h *MessageHandler) GetAuctionsHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.hub.Auctions(), "active auctions retrieved successfully")
}

// GetAuctionHandler handles GET /auctions/:offer_id
func (h *MessageHandler) GetAuctionHandler(c *gin.Context) {
	offerID := c.Param("offer_id")
	view, err := h.hub.Auction(offerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Info("GetAuctionHandler: auction lookup failed", map[string]any{"offer_id": offerID, "error": err.Error()})
		return
	}
	utils.JSONResponse(c, http.StatusOK, view, "auction retrieved successfully")
}

package handler

import (
	"net/http"

	"premise-hub/services/hub/helpers"
	"premise-hub/utils"

	"github.com/gin-gonic/gin"
)

// Subscriber registers a party's callback URL with the outbound transport.
type Subscriber interface {
	Subscribe(party, callbackURL string)
}

type SubscriptionHandler struct {
	subscriber Subscriber
}

func NewSubscriptionHandler(subscriber Subscriber) *SubscriptionHandler {
	return &SubscriptionHandler{subscriber: subscriber}
}

// SubscribeHandler handles POST /subscriptions
func (h *SubscriptionHandler) SubscribeHandler(c *gin.Context) {
	var req helpers.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubscribeHandler", err)
		return
	}

	h.subscriber.Subscribe(req.Party, req.CallbackURL)

	utils.JSONResponse(c, http.StatusCreated, nil, "subscription registered")
	helpers.LogSuccess("SubscribeHandler", "subscription registered", map[string]any{
		"party": req.Party,
	})
}

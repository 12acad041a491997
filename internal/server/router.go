package server

import (
	hub "premise-hub/internal/hubService"
	handler "premise-hub/services/hub/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the hub. The subscriber is
// optional; pass nil when the outbound transport has no subscription
// surface (e.g. the loopback used in tests).
func SetupRouter(hubService *hub.HubService, subscriber handler.Subscriber) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	messageHandler := handler.NewMessageHandler(hubService)

	messages := router.Group("/messages")
	{
		messages.POST("/:tag", messageHandler.HandleMessage)
	}

	offers := router.Group("/offers")
	{
		offers.GET("", messageHandler.GetOffersHandler)
	}

	requests := router.Group("/requests")
	{
		requests.GET("", messageHandler.GetRequestsHandler)
	}

	demands := router.Group("/demands")
	{
		demands.GET("", messageHandler.GetDemandsHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", messageHandler.GetAuctionsHandler)
		auctions.GET("/:offer_id", messageHandler.GetAuctionHandler)
	}

	if subscriber != nil {
		subscriptionHandler := handler.NewSubscriptionHandler(subscriber)
		router.POST("/subscriptions", subscriptionHandler.SubscribeHandler)
	}

	return router
}

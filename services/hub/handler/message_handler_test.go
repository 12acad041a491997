package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"premise-hub/internal/huberrors"
	hub "premise-hub/internal/hubService"
	model "premise-hub/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func setupRouter(h *MessageHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/messages/:tag", h.HandleMessage)
	router.GET("/auctions/:offer_id", h.GetAuctionHandler)
	router.GET("/offers", h.GetOffersHandler)
	return router
}

func postMessage(t *testing.T, router *gin.Engine, tag string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, "/messages/"+tag, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleMessage_RentalOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHub := NewMockHubCoordinator(ctrl)
	router := setupRouter(NewMessageHandler(mockHub))

	tests := []struct {
		name           string
		body           any
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "valid_offer",
			body: map[string]any{
				"sender":         "landlord1",
				"starting_price": 120,
				"location":       map[string]float64{"lat": 52.2, "lon": 21.0},
			},
			mockSetup: func() {
				mockHub.EXPECT().
					SubmitOffer("landlord1", int64(120), model.Location{Lat: 52.2, Lon: 21.0}).
					Return("offer1")
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "invalid_json",
			body:           `{not json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing_sender",
			body: map[string]any{
				"starting_price": 120,
				"location":       map[string]float64{"lat": 52.2, "lon": 21.0},
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "zero_starting_price",
			body: map[string]any{
				"sender":         "landlord1",
				"starting_price": 0,
				"location":       map[string]float64{"lat": 52.2, "lon": 21.0},
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing_location",
			body: map[string]any{
				"sender":         "landlord1",
				"starting_price": 120,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			w := postMessage(t, router, "rental-offer", tc.body)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusAccepted {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]any)
				require.Equal(t, "offer1", data["offer_id"])
			}
		})
	}
}

func TestHandleMessage_RegisterRental(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHub := NewMockHubCoordinator(ctrl)
	router := setupRouter(NewMessageHandler(mockHub))

	tests := []struct {
		name           string
		body           any
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "valid_request",
			body: map[string]any{
				"sender":    "tenant1",
				"min_price": 100,
				"max_price": 200,
				"location":  map[string]float64{"lat": 52.2, "lon": 21.0},
			},
			mockSetup: func() {
				mockHub.EXPECT().
					SubmitRequest("tenant1", int64(100), int64(200), model.Location{Lat: 52.2, Lon: 21.0}).
					Return("request1")
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name: "zero_min_price_is_valid",
			body: map[string]any{
				"sender":    "tenant1",
				"min_price": 0,
				"max_price": 200,
				"location":  map[string]float64{"lat": 52.2, "lon": 21.0},
			},
			mockSetup: func() {
				mockHub.EXPECT().
					SubmitRequest("tenant1", int64(0), int64(200), model.Location{Lat: 52.2, Lon: 21.0}).
					Return("request2")
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name: "max_below_min",
			body: map[string]any{
				"sender":    "tenant1",
				"min_price": 200,
				"max_price": 100,
				"location":  map[string]float64{"lat": 52.2, "lon": 21.0},
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "negative_min_price",
			body: map[string]any{
				"sender":    "tenant1",
				"min_price": -10,
				"max_price": 100,
				"location":  map[string]float64{"lat": 52.2, "lon": 21.0},
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			w := postMessage(t, router, "register-rental", tc.body)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestHandleMessage_Bid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHub := NewMockHubCoordinator(ctrl)
	router := setupRouter(NewMessageHandler(mockHub))

	t.Run("valid_bid", func(t *testing.T) {
		mockHub.EXPECT().PlaceBid("tenant1", "offer1", int64(140))

		w := postMessage(t, router, "bid", map[string]any{
			"sender":   "tenant1",
			"offer_id": "offer1",
			"amount":   140,
		})
		require.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("zero_amount_is_wellformed", func(t *testing.T) {
		mockHub.EXPECT().PlaceBid("tenant1", "offer1", int64(0))

		w := postMessage(t, router, "bid", map[string]any{
			"sender":   "tenant1",
			"offer_id": "offer1",
			"amount":   0,
		})
		require.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("missing_amount", func(t *testing.T) {
		w := postMessage(t, router, "bid", map[string]any{
			"sender":   "tenant1",
			"offer_id": "offer1",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative_amount", func(t *testing.T) {
		w := postMessage(t, router, "bid", map[string]any{
			"sender":   "tenant1",
			"offer_id": "offer1",
			"amount":   -5,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleMessage_ConfirmationResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHub := NewMockHubCoordinator(ctrl)
	router := setupRouter(NewMessageHandler(mockHub))

	t.Run("confirmed_true", func(t *testing.T) {
		mockHub.EXPECT().Confirm("tenant1", "offer1", true)

		w := postMessage(t, router, "confirmation-response", map[string]any{
			"sender":    "tenant1",
			"offer_id":  "offer1",
			"confirmed": true,
		})
		require.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("confirmed_false_is_wellformed", func(t *testing.T) {
		mockHub.EXPECT().Confirm("tenant1", "offer1", false)

		w := postMessage(t, router, "confirmation-response", map[string]any{
			"sender":    "tenant1",
			"offer_id":  "offer1",
			"confirmed": false,
		})
		require.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("missing_confirmed", func(t *testing.T) {
		w := postMessage(t, router, "confirmation-response", map[string]any{
			"sender":   "tenant1",
			"offer_id": "offer1",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleMessage_ServiceDemand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHub := NewMockHubCoordinator(ctrl)
	router := setupRouter(NewMessageHandler(mockHub))

	t.Run("valid_demand", func(t *testing.T) {
		mockHub.EXPECT().
			SubmitDemand("citizen1", "Pharmacy", "High", model.Location{Lat: 52.2, Lon: 21.0}).
			Return("demand1", nil)

		w := postMessage(t, router, "service-demand", map[string]any{
			"sender":   "citizen1",
			"service":  "Pharmacy",
			"priority": "High",
			"location": map[string]float64{"lat": 52.2, "lon": 21.0},
		})
		require.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("unknown_service", func(t *testing.T) {
		mockHub.EXPECT().
			SubmitDemand("citizen1", "Spaceport", "High", model.Location{Lat: 52.2, Lon: 21.0}).
			Return("", huberrors.ErrUnknownService)

		w := postMessage(t, router, "service-demand", map[string]any{
			"sender":   "citizen1",
			"service":  "Spaceport",
			"priority": "High",
			"location": map[string]float64{"lat": 52.2, "lon": 21.0},
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleMessage_UnknownTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHub := NewMockHubCoordinator(ctrl)
	router := setupRouter(NewMessageHandler(mockHub))

	w := postMessage(t, router, "no-such-tag", map[string]any{"sender": "tenant1"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHub := NewMockHubCoordinator(ctrl)
	router := setupRouter(NewMessageHandler(mockHub))

	t.Run("auction_found", func(t *testing.T) {
		mockHub.EXPECT().
			Auction("offer1").
			Return(hub.AuctionView{OfferID: "offer1", Landlord: "landlord1", Status: model.StatusBidding}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auctions/offer1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, "offer1", data["offer_id"])
		require.Equal(t, "bidding", data["status"])
	})

	t.Run("auction_not_found", func(t *testing.T) {
		mockHub.EXPECT().
			Auction("offerX").
			Return(hub.AuctionView{}, huberrors.ErrAuctionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/auctions/offerX", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetOffersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHub := NewMockHubCoordinator(ctrl)
	router := setupRouter(NewMessageHandler(mockHub))

	mockHub.EXPECT().Offers().Return([]model.Offer{
		{OfferID: "offer1", Landlord: "landlord1", StartingPrice: 120},
	})

	req := httptest.NewRequest(http.MethodGet, "/offers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	offers := resp["data"].([]any)
	require.Len(t, offers, 1)
}

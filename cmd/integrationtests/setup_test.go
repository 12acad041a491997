package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	hub "premise-hub/internal/hubService"
	"premise-hub/internal/notify"
	"premise-hub/internal/repository"
	"premise-hub/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testConfig compresses the production timings so a full auction runs in
// under a second.
func testConfig() hub.Config {
	return hub.Config{
		AuctionTime:   400 * time.Millisecond,
		ExtendTime:    100 * time.Millisecond,
		ConfirmWindow: 300 * time.Millisecond,
		TickInterval:  20 * time.Millisecond,
	}
}

// SetupTestHub starts a hub with a loopback transport and returns the
// router plus the loopback for reading party event queues.
func SetupTestHub(t *testing.T) (*gin.Engine, *notify.Loopback) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	loopback := notify.NewLoopback()
	dispatcher := notify.NewDispatcher(loopback)
	t.Cleanup(dispatcher.Close)

	hubService := hub.NewHubService(repository.NewMemoryRegistry(), dispatcher, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hubService.Run(ctx)

	return server.SetupRouter(hubService, nil), loopback
}

// SetupWebhookHub starts a hub whose outbound transport is the webhook
// sender, exposing the /subscriptions route.
func SetupWebhookHub(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	webhook := notify.NewWebhook()
	dispatcher := notify.NewDispatcher(webhook)
	t.Cleanup(dispatcher.Close)

	hubService := hub.NewHubService(repository.NewMemoryRegistry(), dispatcher, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hubService.Run(ctx)

	return server.SetupRouter(hubService, webhook)
}

// PostMessage delivers one inbound message envelope to the hub.
func PostMessage(t *testing.T, router *gin.Engine, tag string, body any) *httptest.ResponseRecorder {
	t.Helper()

	reqBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/messages/"+tag, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// PostJSON posts a JSON body to an arbitrary route.
func PostJSON(t *testing.T, router *gin.Engine, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	reqBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// GetJSON performs a GET and parses the response envelope.
func GetJSON(t *testing.T, router *gin.Engine, url string) map[string]any {
	t.Helper()

	req := httptest.NewRequest("GET", url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// WaitEvent blocks until the party receives its next event or the
// timeout elapses.
func WaitEvent(t *testing.T, loopback *notify.Loopback, party string, timeout time.Duration) notify.Notification {
	t.Helper()

	select {
	case n := <-loopback.Events(party):
		return n
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event for %s", party)
		return notify.Notification{}
	}
}

// RequireNoEvent asserts the party receives nothing within the window.
func RequireNoEvent(t *testing.T, loopback *notify.Loopback, party string, window time.Duration) {
	t.Helper()

	select {
	case n := <-loopback.Events(party):
		t.Fatalf("unexpected event for %s: %s", party, n.Kind)
	case <-time.After(window):
	}
}

// decodeJSON decodes a request body into v.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// AcknowledgedID extracts an identifier from a 202 acknowledgement.
func AcknowledgedID(t *testing.T, w *httptest.ResponseRecorder, field string) string {
	t.Helper()

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "acknowledgement has no data")
	id, ok := data[field].(string)
	require.True(t, ok, "acknowledgement missing %s", field)
	return id
}

package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sbilibin2017/currency-exchanger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateBroadcaster(t *testing.T) {
	broadcaster := NewStateBroadcaster()

	srv := httptest.NewServer(broadcaster.Handler())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// give the server a moment to register the client
	require.Eventually(t, func() bool {
		broadcaster.mu.Lock()
		defer broadcaster.mu.Unlock()
		return len(broadcaster.clients) == 1
	}, 2*time.Second, 5*time.Millisecond)

	broadcaster.Broadcast(models.ExchangeViewState{
		SellCurrency:    "EUR",
		ReceiveCurrency: "USD",
		SellAmount:      100,
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var state models.ExchangeViewState
	require.NoError(t, json.Unmarshal(msg, &state))
	assert.Equal(t, "EUR", state.SellCurrency)
	assert.Equal(t, "USD", state.ReceiveCurrency)
	assert.Equal(t, 100.0, state.SellAmount)
}

func TestStateBroadcaster_NoClients(t *testing.T) {
	broadcaster := NewStateBroadcaster()

	assert.NotPanics(t, func() {
		broadcaster.Broadcast(models.ExchangeViewState{})
	})
}

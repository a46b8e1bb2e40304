package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/katalvlaran/lvlgen/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	return conn
}

func intp(v int) *int { return &v }

func TestWebSocket_Generate(t *testing.T) {
	ts := httptest.NewServer(server.New(testConfig()))
	defer ts.Close()
	conn := dial(t, ts)
	defer conn.Close()

	seed := int64(4)
	req := server.Request{Seed: &seed, Width: intp(21), Height: intp(21), RoomAttempts: intp(8)}
	require.NoError(t, conn.WriteJSON(req))
	var first server.Response
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, seed, first.Seed)
	assert.Len(t, first.Grid, 21)

	// The connection stays open for further requests.
	require.NoError(t, conn.WriteJSON(req))
	var second server.Response
	require.NoError(t, conn.ReadJSON(&second))
	assert.Equal(t, first.Grid, second.Grid)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestWebSocket_Errors(t *testing.T) {
	ts := httptest.NewServer(server.New(testConfig()))
	defer ts.Close()
	conn := dial(t, ts)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	var reply map[string]interface{}
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Contains(t, reply["error"], "malformed request")
	assert.Equal(t, float64(http.StatusBadRequest), reply["status"])

	require.NoError(t, conn.WriteJSON(server.Request{Width: intp(8)}))
	reply = nil
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, float64(http.StatusBadRequest), reply["status"])

	// Both odd; their product wraps to -1 in 64-bit int arithmetic.
	half := 1 << 16
	require.NoError(t, conn.WriteJSON(server.Request{Width: intp(half*half + 1), Height: intp(half*half - 1)}))
	reply = nil
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, float64(http.StatusRequestEntityTooLarge), reply["status"])

	// A valid request after failures is still served.
	require.NoError(t, conn.WriteJSON(server.Request{Width: intp(11), Height: intp(11)}))
	var ok server.Response
	require.NoError(t, conn.ReadJSON(&ok))
	assert.Equal(t, 11, ok.Width)
}

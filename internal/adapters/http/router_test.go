package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dkeye/rooms/internal/adapters/signal"
	"github.com/dkeye/rooms/internal/app"
	"github.com/dkeye/rooms/internal/app/notify"
	"github.com/dkeye/rooms/internal/app/orch"
	"github.com/dkeye/rooms/internal/config"
	"github.com/dkeye/rooms/internal/domain"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router http.Handler
	orch   *orch.Orchestrator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := &config.Config{Mode: "release", Secret: "test-secret", SendBuffer: 8, ReadLimit: 4096}
	hub := signal.NewHub()
	handler := notify.NewHandler(hub)
	store := app.NewStore(context.Background(), nil, handler)
	o := orch.New(store, handler, app.SimplePolicy{MaxDropped: 4})
	hub.Pressure = o.OnBackPressure
	t.Cleanup(func() { require.NoError(t, o.Close()) })

	ctl := signal.NewSignalWSController(o, hub, cfg)
	return &testEnv{router: SetupRouter(context.Background(), cfg, o, ctl), orch: o}
}

func (e *testEnv) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestClientTokenCookie(t *testing.T) {
	e := newTestEnv(t)
	w, _ := e.do(t, http.MethodGet, "/api/rooms", "")
	require.Equal(t, http.StatusOK, w.Code)

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionName {
			found = true
			require.True(t, c.HttpOnly)
		}
	}
	require.True(t, found)
}

func TestAdmin_RoomLifecycle(t *testing.T) {
	e := newTestEnv(t)

	w, body := e.do(t, http.MethodPost, "/api/rooms", `{"room":"r1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "r1", body["room"])

	w, body = e.do(t, http.MethodPost, "/api/rooms", `{"room":"r1"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, float64(domain.CodeRoomCannotCreate), body["code"])

	w, _ = e.do(t, http.MethodPost, "/api/rooms", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, body = e.do(t, http.MethodGet, "/api/rooms", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []any{"r1"}, body["rooms"])

	w, _ = e.do(t, http.MethodGet, "/api/rooms/missing/participants", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	e.orch.JoinRoom("alice", "r1", true, domain.NewRequest("pid-a", nil))

	w, body = e.do(t, http.MethodGet, "/api/rooms/r1/participants", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body["participants"], 1)

	w, body = e.do(t, http.MethodGet, "/api/rooms/r1/publishers", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, body["participants"])

	w, body = e.do(t, http.MethodDelete, "/api/rooms/r1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body["participants"], 1)

	w, _ = e.do(t, http.MethodDelete, "/api/rooms/r1", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmin_Participants(t *testing.T) {
	e := newTestEnv(t)
	e.orch.JoinRoom("alice", "r1", true, domain.NewRequest("pid-a", nil))
	e.orch.JoinRoom("bob", "r1", true, domain.NewRequest("pid-b", nil))

	w, body := e.do(t, http.MethodGet, "/api/participants/pid-a", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "alice", body["name"])

	w, body = e.do(t, http.MethodGet, "/api/participants/pid-a/subscribers", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, body["participants"])

	w, _ = e.do(t, http.MethodPost, "/api/participants/pid-a/mute", `{"type":"loud"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, body = e.do(t, http.MethodPost, "/api/participants/pid-a/mute", `{"type":"audio"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, float64(domain.CodeUserNotStreaming), body["code"])

	w, body = e.do(t, http.MethodPost, "/api/participants/pid-b/subscriptions/alice/mute", "")
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, float64(domain.CodeMediaMute), body["code"])

	w, _ = e.do(t, http.MethodDelete, "/api/participants/pid-a", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w, _ = e.do(t, http.MethodDelete, "/api/participants/pid-a", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	members, err := e.orch.Participants("r1")
	require.NoError(t, err)
	require.Equal(t, []domain.Participant{{ID: "pid-b", Name: "bob"}}, members)
}

func TestSignalOverWebsocket(t *testing.T) {
	e := newTestEnv(t)
	srv := httptest.NewServer(e.router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/signal"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })

	require.NoError(t, ws.WriteMessage(websocket.TextMessage,
		[]byte(`{"jsonrpc":"2.0","id":1,"method":"joinRoom","params":{"user":"alice","room":"r1"}}`)))
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))

	var resp struct {
		ID     int `json:"id"`
		Result struct {
			Value []any `json:"value"`
		} `json:"result"`
	}
	require.NoError(t, ws.ReadJSON(&resp))
	require.Equal(t, 1, resp.ID)
	require.Empty(t, resp.Result.Value)

	require.Eventually(t, func() bool { return len(e.orch.Rooms()) == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, ws.Close())
	require.Eventually(t, func() bool { return len(e.orch.Rooms()) == 0 }, 2*time.Second, 10*time.Millisecond)
}

package signal

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/dkeye/rooms/internal/app"
	"github.com/dkeye/rooms/internal/app/notify"
	"github.com/dkeye/rooms/internal/app/orch"
	"github.com/dkeye/rooms/internal/config"
	"github.com/dkeye/rooms/internal/core"
	"github.com/dkeye/rooms/internal/domain"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu      sync.Mutex
	frames  []core.Frame
	full    bool
	closed  bool
	flushed bool
}

func (f *fakeConn) TrySend(fr core.Frame) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.flushed {
		return ErrClosed
	}
	if f.full {
		return ErrBackpressure
	}
	f.frames = append(f.frames, fr)
	return nil
}

func (f *fakeConn) CloseAfterFlush() {
	f.mu.Lock()
	f.flushed = true
	f.mu.Unlock()
}

func (f *fakeConn) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// take returns the decoded frames received so far and forgets them.
func (f *fakeConn) take(t *testing.T) []map[string]any {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]any, 0, len(f.frames))
	for _, fr := range f.frames {
		var m map[string]any
		require.NoError(t, json.Unmarshal(fr, &m))
		out = append(out, m)
	}
	f.frames = nil
	return out
}

func errorCode(t *testing.T, msg map[string]any) int {
	t.Helper()
	e, ok := msg["error"].(map[string]any)
	require.True(t, ok, "expected error in %v", msg)
	return int(e["code"].(float64))
}

func TestHub_ResponsesAndNotifications(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}
	hub.Bind("pid-a", conn)
	id := 7

	hub.SendResponse(domain.NewRequest("pid-a", &id), notify.Empty{})
	hub.SendResponse(domain.NewRequest("pid-a", nil), notify.Empty{})
	hub.SendErrorResponse(domain.NewRequest("pid-a", &id), nil, domain.NewError(domain.CodeRoomNotFound, "missing"))
	hub.SendNotification("pid-a", notify.MethodRoomClosed, notify.RoomParams{Room: "r"})
	hub.SendNotification("pid-unknown", notify.MethodRoomClosed, notify.RoomParams{Room: "r"})

	frames := conn.take(t)
	require.Len(t, frames, 3)
	require.Equal(t, "2.0", frames[0]["jsonrpc"])
	require.Equal(t, float64(7), frames[0]["id"])
	require.Equal(t, map[string]any{}, frames[0]["result"])
	require.Equal(t, int(domain.CodeRoomNotFound), errorCode(t, frames[1]))
	require.Equal(t, notify.MethodRoomClosed, frames[2]["method"])
	require.Equal(t, map[string]any{"room": "r"}, frames[2]["params"])

	hub.CloseSession(domain.NewRequest("pid-a", &id))
	require.True(t, conn.flushed)

	hub.Unbind("pid-a")
	require.Zero(t, hub.Len())
}

func TestHub_BackpressureKicks(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{full: true}
	hub.Bind("pid-a", conn)

	calls := make(chan int, 4)
	hub.Pressure = func(pid domain.ParticipantID, dropped int) app.BackpressureAction {
		calls <- dropped
		return app.SimplePolicy{MaxDropped: 2}.OnBackPressure(pid, dropped)
	}

	hub.SendNotification("pid-a", notify.MethodMediaError, notify.ErrorParams{Error: "x"})
	hub.SendNotification("pid-a", notify.MethodMediaError, notify.ErrorParams{Error: "x"})

	got := []int{<-calls, <-calls}
	require.ElementsMatch(t, []int{1, 2}, got)
	require.Eventually(t, conn.isClosed, time.Second, 10*time.Millisecond)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	require.True(t, rl.Allow("pid-a"))
	require.True(t, rl.Allow("pid-a"))
	require.False(t, rl.Allow("pid-a"))
	require.True(t, rl.Allow("pid-b"))

	rl.Forget("pid-a")
	require.True(t, rl.Allow("pid-a"))

	unlimited := NewRateLimiter(0, 0)
	for i := 0; i < 100; i++ {
		require.True(t, unlimited.Allow("pid-a"))
	}
}

func TestSenderName(t *testing.T) {
	require.Equal(t, "alice", senderName("alice_webcam"))
	require.Equal(t, "john_doe", senderName("john_doe"))
	require.Equal(t, "bob", senderName("bob"))
}

type testServer struct {
	ctl *SignalWSController
	hub *Hub
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	hub := NewHub()
	handler := notify.NewHandler(hub)
	store := app.NewStore(context.Background(), nil, handler)
	o := orch.New(store, handler, app.SimplePolicy{MaxDropped: 4})
	t.Cleanup(func() { require.NoError(t, o.Close()) })
	hub.Pressure = o.OnBackPressure

	cfg := &config.Config{SendBuffer: 8, RateLimit: 0}
	return &testServer{ctl: NewSignalWSController(o, hub, cfg), hub: hub}
}

func (s *testServer) connect(pid domain.ParticipantID) *fakeConn {
	conn := &fakeConn{}
	s.hub.Bind(pid, conn)
	return conn
}

func TestController_JoinAndMessage(t *testing.T) {
	s := newTestServer(t)
	alice := s.connect("pid-a")
	bob := s.connect("pid-b")

	s.ctl.HandleMessage("pid-a", []byte(`{"jsonrpc":"2.0","id":1,"method":"joinRoom","params":{"user":"alice","room":"r1"}}`))
	frames := alice.take(t)
	require.Len(t, frames, 1)
	require.Equal(t, map[string]any{"value": []any{}}, frames[0]["result"])

	s.ctl.HandleMessage("pid-b", []byte(`{"jsonrpc":"2.0","id":1,"method":"joinRoom","params":{"user":"bob","room":"r1"}}`))
	frames = bob.take(t)
	require.Len(t, frames, 1)
	require.Equal(t, map[string]any{"value": []any{map[string]any{"id": "alice"}}}, frames[0]["result"])
	frames = alice.take(t)
	require.Len(t, frames, 1)
	require.Equal(t, notify.MethodParticipantJoined, frames[0]["method"])
	require.Equal(t, map[string]any{"id": "bob"}, frames[0]["params"])

	s.ctl.HandleMessage("pid-b", []byte(`{"jsonrpc":"2.0","id":2,"method":"sendMessage","params":{"message":"hi","userMessage":"alice","roomMessage":"r1"}}`))
	frames = bob.take(t)
	require.Len(t, frames, 1)
	require.Equal(t, int(domain.CodeIdentityMismatch), errorCode(t, frames[0]))
	require.Empty(t, alice.take(t))

	s.ctl.HandleMessage("pid-b", []byte(`{"jsonrpc":"2.0","id":3,"method":"sendMessage","params":{"message":"hi","userMessage":"bob","roomMessage":"r1"}}`))
	frames = bob.take(t)
	require.Len(t, frames, 2)
	require.Equal(t, float64(3), frames[0]["id"])
	require.Equal(t, notify.MethodSendMessage, frames[1]["method"])
	frames = alice.take(t)
	require.Len(t, frames, 1)
	require.Equal(t, map[string]any{"room": "r1", "user": "bob", "message": "hi"}, frames[0]["params"])

	s.ctl.HandleMessage("pid-a", []byte(`{"jsonrpc":"2.0","id":4,"method":"leaveRoom","params":{}}`))
	frames = alice.take(t)
	require.Len(t, frames, 1)
	require.Equal(t, float64(4), frames[0]["id"])
	require.True(t, alice.flushed)
	frames = bob.take(t)
	require.Len(t, frames, 1)
	require.Equal(t, map[string]any{"name": "alice"}, frames[0]["params"])
}

func TestController_SubscribeUnknownSender(t *testing.T) {
	s := newTestServer(t)
	alice := s.connect("pid-a")
	bob := s.connect("pid-b")

	s.ctl.HandleMessage("pid-a", []byte(`{"jsonrpc":"2.0","id":1,"method":"joinRoom","params":{"user":"alice","room":"r1"}}`))
	s.ctl.HandleMessage("pid-b", []byte(`{"jsonrpc":"2.0","id":1,"method":"joinRoom","params":{"user":"bob","room":"r1"}}`))
	alice.take(t)
	bob.take(t)

	s.ctl.HandleMessage("pid-a", []byte(`{"jsonrpc":"2.0","id":2,"method":"receiveVideoFrom","params":{"sender":"ghost_webcam","sdpOffer":"v=0"}}`))
	frames := alice.take(t)
	require.Len(t, frames, 1)
	require.Equal(t, int(domain.CodeUserNotFound), errorCode(t, frames[0]))
	require.Empty(t, bob.take(t))
}

func TestController_BadRequests(t *testing.T) {
	s := newTestServer(t)
	alice := s.connect("pid-a")

	s.ctl.HandleMessage("pid-a", []byte(`not json`))
	s.ctl.HandleMessage("pid-a", []byte(`{"jsonrpc":"2.0","id":1,"method":"dance"}`))
	s.ctl.HandleMessage("pid-a", []byte(`{"jsonrpc":"2.0","id":2,"method":"joinRoom","params":{"room":"r1"}}`))
	s.ctl.HandleMessage("pid-a", []byte(`{"jsonrpc":"2.0","id":3,"method":"publishVideo","params":{"sdpOffer":"v=0"}}`))
	s.ctl.HandleMessage("pid-a", []byte(`{"jsonrpc":"2.0","id":4,"method":"ping"}`))

	frames := alice.take(t)
	require.Len(t, frames, 5)
	for _, f := range frames[:3] {
		require.Equal(t, int(domain.CodeTransportRequest), errorCode(t, f))
	}
	require.Equal(t, int(domain.CodeUserNotFound), errorCode(t, frames[3]))
	require.Equal(t, map[string]any{"value": "pong"}, frames[4]["result"])
}

func TestController_DisconnectLeaves(t *testing.T) {
	s := newTestServer(t)
	alice := s.connect("pid-a")
	bob := s.connect("pid-b")

	s.ctl.HandleMessage("pid-a", []byte(`{"jsonrpc":"2.0","id":1,"method":"joinRoom","params":{"user":"alice","room":"r1"}}`))
	s.ctl.HandleMessage("pid-b", []byte(`{"jsonrpc":"2.0","id":1,"method":"joinRoom","params":{"user":"bob","room":"r1"}}`))
	alice.take(t)
	bob.take(t)

	s.ctl.disconnect("pid-a")

	frames := bob.take(t)
	require.Len(t, frames, 1)
	require.Equal(t, notify.MethodParticipantLeft, frames[0]["method"])
	require.Equal(t, 1, s.hub.Len())

	members, err := s.ctl.Orch.Participants("r1")
	require.NoError(t, err)
	require.Equal(t, []domain.Participant{{ID: "pid-b", Name: "bob"}}, members)
}

func TestController_RequestIDsEchoedVerbatim(t *testing.T) {
	s := newTestServer(t)
	alice := s.connect("pid-a")

	// Given string, numeric, null and object ids
	s.ctl.HandleMessage("pid-a", []byte(`{"jsonrpc":"2.0","id":"join-1","method":"joinRoom","params":{"user":"alice","room":"r1"}}`))
	s.ctl.HandleMessage("pid-a", []byte(`{"jsonrpc":"2.0","id":42,"method":"ping"}`))
	s.ctl.HandleMessage("pid-a", []byte(`{"jsonrpc":"2.0","id":"pé","method":"ping"}`))
	s.ctl.HandleMessage("pid-a", []byte(`{"jsonrpc":"2.0","id":null,"method":"ping"}`))
	s.ctl.HandleMessage("pid-a", []byte(`{"jsonrpc":"2.0","id":{"n":1},"method":"ping"}`))

	// Then each answer carries the id exactly as sent
	frames := alice.take(t)
	require.Len(t, frames, 4)
	require.Equal(t, "join-1", frames[0]["id"])
	require.Equal(t, map[string]any{"value": []any{}}, frames[0]["result"])
	require.Equal(t, float64(42), frames[1]["id"])
	require.Equal(t, "pé", frames[2]["id"])

	// And an id that is neither a number nor a string is refused with a null id
	require.Contains(t, frames[3], "id")
	require.Nil(t, frames[3]["id"])
	require.Equal(t, int(domain.CodeTransportRequest), errorCode(t, frames[3]))
}

func TestHub_TrackedIDReleasedOnResponse(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}
	hub.Bind("pid-a", conn)

	seq := hub.Track("pid-a", json.RawMessage(`"abc"`))
	require.NotNil(t, seq)
	require.Nil(t, hub.Track("pid-a", nil))
	require.Nil(t, hub.Track("pid-unknown", json.RawMessage(`1`)))

	req := domain.NewRequest("pid-a", seq)
	hub.SendResponse(req, notify.Empty{})
	hub.SendResponse(req, notify.Empty{})

	frames := conn.take(t)
	require.Len(t, frames, 2)
	require.Equal(t, "abc", frames[0]["id"])
	require.Equal(t, float64(*seq), frames[1]["id"])
}

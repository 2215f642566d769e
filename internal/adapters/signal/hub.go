package signal

import (
	"encoding/json"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/dkeye/rooms/internal/app"
	"github.com/dkeye/rooms/internal/core"
	"github.com/dkeye/rooms/internal/domain"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// PressureFunc reacts to a participant whose queue is full. dropped counts
// consecutive frames that could not be queued.
type PressureFunc func(pid domain.ParticipantID, dropped int) app.BackpressureAction

type binding struct {
	conn    core.SignalConnection
	dropped atomic.Int64

	// ids maps the sequence a request carries inside the coordinator back
	// to the id the client sent.
	mu  sync.Mutex
	seq int
	ids map[int]json.RawMessage
}

func (b *binding) track(raw json.RawMessage) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	if b.ids == nil {
		b.ids = make(map[int]json.RawMessage)
	}
	b.ids[b.seq] = raw
	return b.seq
}

func (b *binding) take(seq int) (json.RawMessage, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	raw, ok := b.ids[seq]
	delete(b.ids, seq)
	return raw, ok
}

// Hub maps participants to their signaling connections and implements
// core.UserNotifier on top of them.
type Hub struct {
	mu    sync.RWMutex
	conns map[domain.ParticipantID]*binding

	Pressure PressureFunc
}

var _ core.UserNotifier = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{conns: make(map[domain.ParticipantID]*binding)}
}

func (h *Hub) Bind(pid domain.ParticipantID, conn core.SignalConnection) {
	h.mu.Lock()
	h.conns[pid] = &binding{conn: conn}
	h.mu.Unlock()
}

func (h *Hub) Unbind(pid domain.ParticipantID) {
	h.mu.Lock()
	delete(h.conns, pid)
	h.mu.Unlock()
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

func (h *Hub) lookup(pid domain.ParticipantID) (*binding, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	b, ok := h.conns[pid]
	return b, ok
}

// Track records the client's request id for pid and returns the sequence
// the request is correlated by until its response is sent. A nil raw id
// marks a notification and yields nil.
func (h *Hub) Track(pid domain.ParticipantID, raw json.RawMessage) *int {
	if raw == nil {
		return nil
	}
	b, ok := h.lookup(pid)
	if !ok {
		return nil
	}
	seq := b.track(raw)
	return &seq
}

// responseID is the id echoed back for req: the client's original id when
// it was tracked, the sequence itself otherwise.
func (h *Hub) responseID(req domain.Request) json.RawMessage {
	if req.RequestID == nil {
		return nil
	}
	if b, ok := h.lookup(req.ParticipantID); ok {
		if raw, ok := b.take(*req.RequestID); ok {
			return raw
		}
	}
	return json.RawMessage(strconv.Itoa(*req.RequestID))
}

func (h *Hub) send(pid domain.ParticipantID, v any) {
	b, ok := h.lookup(pid)
	if !ok {
		log.Debug().Str("module", "signal.hub").Str("pid", string(pid)).Msg("no connection")
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal.hub").Msg("marshal")
		return
	}
	err = b.conn.TrySend(data)
	switch {
	case err == nil:
		b.dropped.Store(0)
	case errors.Is(err, ErrBackpressure):
		dropped := int(b.dropped.Add(1))
		log.Warn().Str("module", "signal.hub").Str("pid", string(pid)).Int("dropped", dropped).Msg("backpressure")
		if h.Pressure != nil {
			go h.onPressure(pid, b, dropped)
		}
	default:
		log.Debug().Err(err).Str("module", "signal.hub").Str("pid", string(pid)).Msg("send")
	}
}

func (h *Hub) onPressure(pid domain.ParticipantID, b *binding, dropped int) {
	if h.Pressure(pid, dropped) == app.KickMember {
		log.Warn().Str("module", "signal.hub").Str("pid", string(pid)).Msg("closing slow connection")
		b.conn.Close()
	}
}

func (h *Hub) SendResponse(req domain.Request, result any) {
	if req.RequestID == nil {
		return
	}
	h.send(req.ParticipantID, rpcResponse{JSONRPC: jsonrpcVersion, ID: h.responseID(req), Result: result})
}

func (h *Hub) SendErrorResponse(req domain.Request, data any, err error) {
	h.send(req.ParticipantID, rpcResponse{
		JSONRPC: jsonrpcVersion,
		ID:      h.responseID(req),
		Error: &rpcError{
			Code:    int(domain.CodeOf(err)),
			Message: err.Error(),
			Data:    data,
		},
	})
}

func (h *Hub) SendNotification(pid domain.ParticipantID, method string, params any) {
	h.send(pid, rpcNotification{JSONRPC: jsonrpcVersion, Method: method, Params: params})
}

// CloseSession closes the requester's connection once its pending frames
// are written.
func (h *Hub) CloseSession(req domain.Request) {
	b, ok := h.lookup(req.ParticipantID)
	if !ok {
		return
	}
	b.conn.CloseAfterFlush()
}

package signal

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/dkeye/rooms/internal/app/orch"
	"github.com/dkeye/rooms/internal/config"
	"github.com/dkeye/rooms/internal/core"
	"github.com/dkeye/rooms/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrBackpressure = errors.New("backpressure")
	ErrClosed       = errors.New("connection closed")
)

type SignalWSController struct {
	Orch    *orch.Orchestrator
	Hub     *Hub
	Limiter *RateLimiter

	validate   *validator.Validate
	readLimit  int64
	pingPeriod time.Duration
	sendBuffer int
}

func NewSignalWSController(o *orch.Orchestrator, hub *Hub, cfg *config.Config) *SignalWSController {
	return &SignalWSController{
		Orch:       o,
		Hub:        hub,
		Limiter:    NewRateLimiter(cfg.RateLimit, cfg.RateBurst),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		readLimit:  cfg.ReadLimit,
		pingPeriod: cfg.PingPeriod,
		sendBuffer: cfg.SendBuffer,
	}
}

// WsSignalConn queues outbound frames for a single websocket writer.
type WsSignalConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

var _ core.SignalConnection = (*WsSignalConn)(nil)

func NewWsSignalConn(conn *websocket.Conn, buffer int) *WsSignalConn {
	return &WsSignalConn{conn: conn, send: make(chan core.Frame, buffer)}
}

func (c *WsSignalConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClosed
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

// CloseAfterFlush lets the write pump drain the queue before closing.
func (c *WsSignalConn) CloseAfterFlush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *WsSignalConn) Close() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
	c.mu.Unlock()
	_ = c.conn.Close()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleSignal upgrades the request and serves one participant over it.
// Every connection is a new participant id; the client token only tags logs.
func (ctl *SignalWSController) HandleSignal(ctx context.Context, c *gin.Context) {
	pid := domain.ParticipantID(uuid.NewString())
	client := c.GetString("client_token")
	log.Info().Str("module", "signal").Str("pid", string(pid)).Str("client", client).Msg("new WS connection")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("ws upgrade")
		return
	}
	if ctl.readLimit > 0 {
		ws.SetReadLimit(ctl.readLimit)
	}

	conn := NewWsSignalConn(ws, ctl.sendBuffer)
	ctl.Hub.Bind(pid, conn)

	ctx, cancel := context.WithCancel(ctx)
	go ctl.writePump(ctx, conn)
	go func() {
		defer cancel()
		ctl.readPump(ctx, pid, conn)
	}()
}

// disconnect leaves the room on behalf of a participant whose socket went away.
func (ctl *SignalWSController) disconnect(pid domain.ParticipantID) {
	if _, err := ctl.Orch.ParticipantInfo(pid); err == nil {
		ctl.Orch.LeaveRoom(domain.NewRequest(pid, nil))
	}
	ctl.Hub.Unbind(pid)
	ctl.Limiter.Forget(pid)
}

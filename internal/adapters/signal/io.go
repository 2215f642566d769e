package signal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dkeye/rooms/internal/domain"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const writeWait = 5 * time.Second

func (ctl *SignalWSController) writePump(ctx context.Context, c *WsSignalConn) {
	var ping <-chan time.Time
	if ctl.pingPeriod > 0 {
		ticker := time.NewTicker(ctl.pingPeriod)
		defer ticker.Stop()
		ping = ticker.C
	}
	defer func() { _ = c.conn.Close() }()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("writePump ctx done")
			return
		case <-ping:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Warn().Err(err).Str("module", "signal").Msg("writePump ping")
				return
			}
		case data, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
				log.Info().Str("module", "signal").Msg("writePump drained")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *SignalWSController) readPump(ctx context.Context, pid domain.ParticipantID, c *WsSignalConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("pid", string(pid)).Msg("readPump closing")
		ctl.disconnect(pid)
		c.Close()
	}()

	if ctl.pingPeriod > 0 {
		pongWait := ctl.pingPeriod * 10 / 9
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		c.conn.SetPongHandler(func(string) error {
			return c.conn.SetReadDeadline(time.Now().Add(pongWait))
		})
	}

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("pid", string(pid)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Error().Err(err).Str("module", "signal").Str("pid", string(pid)).Msg("readPump read error")
				}
				return
			}
			ctl.HandleMessage(pid, data)
		}
	}
}

// HandleMessage decodes one JSON-RPC request and dispatches it.
func (ctl *SignalWSController) HandleMessage(pid domain.ParticipantID, data []byte) {
	var msg rpcRequest
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Error().Err(err).Str("module", "signal").Str("pid", string(pid)).Msg("bad json")
		ctl.Hub.SendErrorResponse(domain.NewRequest(pid, nil), nil,
			domain.NewError(domain.CodeTransportRequest, "malformed request: %v", err))
		return
	}
	id, err := requestID(msg.ID)
	if err != nil {
		ctl.Hub.SendErrorResponse(domain.NewRequest(pid, nil), nil,
			domain.NewError(domain.CodeTransportRequest, "malformed request: %v", err))
		return
	}
	req := domain.NewRequest(pid, ctl.Hub.Track(pid, id))
	if !ctl.Limiter.Allow(pid) {
		ctl.Hub.SendErrorResponse(req, nil, domain.NewError(domain.CodeTransportRequest, "too many requests"))
		return
	}

	handler, ok := ctl.handlers()[msg.Method]
	if !ok {
		log.Warn().Str("module", "signal").Str("method", msg.Method).Msg("unknown method")
		ctl.Hub.SendErrorResponse(req, nil, domain.NewError(domain.CodeTransportRequest, "unknown method %q", msg.Method))
		return
	}
	handler(req, msg.Params)
}

type methodHandler func(req domain.Request, params json.RawMessage)

func (ctl *SignalWSController) handlers() map[string]methodHandler {
	return map[string]methodHandler{
		MethodJoinRoom:             ctl.handleJoin,
		MethodLeaveRoom:            ctl.handleLeave,
		MethodSendMessage:          ctl.handleSendMessage,
		MethodPublishVideo:         ctl.handlePublish,
		MethodUnpublishVideo:       ctl.handleUnpublish,
		MethodReceiveVideoFrom:     ctl.handleReceiveVideo,
		MethodUnsubscribeFromVideo: ctl.handleUnsubscribe,
		MethodOnIceCandidate:       ctl.handleCandidate,
		MethodPing:                 ctl.handlePing,
	}
}

// decode unmarshals and validates params into dst. On failure the error
// response has already been sent.
func (ctl *SignalWSController) decode(req domain.Request, params json.RawMessage, dst any) bool {
	if len(params) > 0 {
		if err := json.Unmarshal(params, dst); err != nil {
			ctl.Hub.SendErrorResponse(req, nil, domain.NewError(domain.CodeTransportRequest, "bad params: %v", err))
			return false
		}
	}
	if err := ctl.validate.Struct(dst); err != nil {
		ctl.Hub.SendErrorResponse(req, nil, domain.NewError(domain.CodeTransportRequest, "invalid params: %v", err))
		return false
	}
	return true
}

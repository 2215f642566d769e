package signal

import (
	"encoding/json"

	"github.com/dkeye/rooms/internal/domain"
)

func (ctl *SignalWSController) handlePing(req domain.Request, _ json.RawMessage) {
	ctl.Hub.SendResponse(req, pongResult{Value: "pong"})
}

package signal

import (
	"encoding/json"

	"github.com/dkeye/rooms/internal/domain"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handleJoin(req domain.Request, params json.RawMessage) {
	var p joinRoomParams
	if !ctl.decode(req, params, &p) {
		return
	}
	log.Info().
		Str("module", "signal").
		Str("pid", string(req.ParticipantID)).
		Str("room", p.Room).
		Bool("data_channels", p.DataChannels).
		Msg("join")
	ctl.Orch.JoinRoom(p.User, domain.RoomName(p.Room), true, req)
}

// handleLeave leaves the current room; the connection is closed afterwards.
func (ctl *SignalWSController) handleLeave(req domain.Request, _ json.RawMessage) {
	log.Info().Str("module", "signal").Str("pid", string(req.ParticipantID)).Msg("leave")
	ctl.Orch.LeaveRoom(req)
}

func (ctl *SignalWSController) handleSendMessage(req domain.Request, params json.RawMessage) {
	var p sendMessageParams
	if !ctl.decode(req, params, &p) {
		return
	}
	ctl.Orch.SendMessage(p.Message, p.UserMessage, domain.RoomName(p.RoomMessage), req)
}

package orch

import (
	"github.com/dkeye/rooms/internal/domain"
	"github.com/rs/zerolog/log"
)

// JoinRoom adds the requester to room. The outcome lists the participants
// that were present before the join.
func (o *Orchestrator) JoinRoom(userName string, room domain.RoomName, webParticipant bool, req domain.Request) {
	pid := req.ParticipantID
	existing, err := guard("joinRoom", func() ([]domain.Participant, error) {
		return o.Store.JoinRoom(userName, room, webParticipant, domain.NewSessionInfo(pid, room), pid)
	})
	if err != nil {
		logFailure("joinRoom", req, identity{name: userName, room: room}, err)
		existing = nil
	} else {
		log.Info().Str("module", "orch").Str("pid", string(pid)).Str("user", userName).Str("room", string(room)).Msg("joined")
	}
	o.Notifier.OnParticipantJoined(req, room, userName, existing, err)
}

// LeaveRoom removes the requester from its room. The outcome lists the
// participants that remain.
func (o *Orchestrator) LeaveRoom(req domain.Request) {
	id := o.identify(req.ParticipantID)
	remaining, err := guard("leaveRoom", func() ([]domain.Participant, error) {
		return o.Store.LeaveRoom(req.ParticipantID)
	})
	if err != nil {
		logFailure("leaveRoom", req, id, err)
		remaining = nil
	} else {
		log.Info().Str("module", "orch").Str("pid", string(req.ParticipantID)).Str("user", id.name).Str("room", string(id.room)).Msg("left")
	}
	o.Notifier.OnParticipantLeft(req, id.name, remaining, err)
}

type delivery struct {
	participants []domain.Participant
}

// SendMessage broadcasts message to the requester's room once the claimed
// user and room match the requester's session.
func (o *Orchestrator) SendMessage(message, userName string, roomName domain.RoomName, req domain.Request) {
	pid := req.ParticipantID
	d, err := guard("sendMessage", func() (delivery, error) {
		name, err := o.Store.ParticipantName(pid)
		if err != nil {
			return delivery{}, err
		}
		room, err := o.Store.RoomName(pid)
		if err != nil {
			return delivery{}, err
		}
		if name != userName || room != roomName {
			return delivery{}, domain.NewError(domain.CodeIdentityMismatch,
				"message from %q in %q does not match participant %q in %q", userName, roomName, name, room)
		}
		participants, err := o.Store.Participants(room)
		if err != nil {
			return delivery{}, err
		}
		return delivery{participants: participants}, nil
	})
	if err != nil {
		logFailure("sendMessage", req, identity{name: userName, room: roomName}, err)
	}
	o.Notifier.OnSendMessage(req, message, userName, roomName, d.participants, err)
}

// EvictParticipant forces pid out of its room and notifies both the room
// and the evicted participant.
func (o *Orchestrator) EvictParticipant(pid domain.ParticipantID) error {
	info, err := o.Store.ParticipantInfo(pid)
	if err != nil {
		return err
	}
	remaining, err := o.Store.LeaveRoom(pid)
	if err != nil {
		return err
	}
	log.Info().Str("module", "orch").Str("pid", string(pid)).Str("user", info.Name).Msg("evicted")
	o.Notifier.OnPeerLeft(info.Name, remaining)
	o.Notifier.OnParticipantEvicted(info)
	return nil
}

// CloseRoom tears the room down and tells everyone who was in it.
func (o *Orchestrator) CloseRoom(room domain.RoomName) ([]domain.Participant, error) {
	participants, err := o.Store.CloseRoom(room)
	if err != nil {
		return nil, err
	}
	log.Info().Str("module", "orch").Str("room", string(room)).Int("participants", len(participants)).Msg("room closed")
	o.Notifier.OnRoomClosed(room, participants)
	return participants, nil
}

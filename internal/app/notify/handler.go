// Package notify turns coordinator outcomes into responses for the requester
// and notifications for the rest of the room.
package notify

import (
	"github.com/dkeye/rooms/internal/core"
	"github.com/dkeye/rooms/internal/domain"
	"github.com/rs/zerolog/log"
)

// Notification methods sent to participants.
const (
	MethodParticipantJoined      = "participantJoined"
	MethodParticipantLeft        = "participantLeft"
	MethodParticipantEvicted     = "participantEvicted"
	MethodParticipantPublished   = "participantPublished"
	MethodParticipantUnpublished = "participantUnpublished"
	MethodSendMessage            = "sendMessage"
	MethodIceCandidate           = "iceCandidate"
	MethodRoomClosed             = "roomClosed"
	MethodMediaError             = "mediaError"
)

// DefaultStreamID names the single stream every publisher exposes.
const DefaultStreamID = "webcam"

type Stream struct {
	ID string `json:"id"`
}

// ParticipantEntry describes an existing participant in a join response.
type ParticipantEntry struct {
	ID      string   `json:"id"`
	Streams []Stream `json:"streams,omitempty"`
}

type JoinResult struct {
	Value []ParticipantEntry `json:"value"`
}

type SDPAnswerResult struct {
	SDPAnswer string `json:"sdpAnswer"`
}

type Empty struct{}

type IDParams struct {
	ID string `json:"id"`
}

type NameParams struct {
	Name string `json:"name"`
}

type PublishedParams struct {
	ID      string   `json:"id"`
	Streams []Stream `json:"streams"`
}

type MessageParams struct {
	Room    domain.RoomName `json:"room"`
	User    string          `json:"user"`
	Message string          `json:"message"`
}

type CandidateParams struct {
	EndpointName  string `json:"endpointName"`
	Candidate     string `json:"candidate"`
	SDPMid        string `json:"sdpMid,omitempty"`
	SDPMLineIndex uint16 `json:"sdpMLineIndex"`
}

type RoomParams struct {
	Room domain.RoomName `json:"room"`
}

type ErrorParams struct {
	Error string `json:"error"`
}

// Handler is the default Notifier. The requester always hears back before
// any peer is notified.
type Handler struct {
	Users core.UserNotifier
}

var _ core.Notifier = (*Handler)(nil)

func NewHandler(users core.UserNotifier) *Handler {
	return &Handler{Users: users}
}

func streamsOf(p domain.Participant) []Stream {
	if !p.Streaming {
		return nil
	}
	return []Stream{{ID: DefaultStreamID}}
}

// broadcast sends method to every participant except skip.
func (h *Handler) broadcast(participants []domain.Participant, skip domain.ParticipantID, method string, params any) {
	for _, p := range participants {
		if p.ID == skip {
			continue
		}
		h.Users.SendNotification(p.ID, method, params)
	}
}

func (h *Handler) OnParticipantJoined(req domain.Request, room domain.RoomName, userName string, existing []domain.Participant, err error) {
	if err != nil {
		h.Users.SendErrorResponse(req, nil, err)
		return
	}
	result := JoinResult{Value: make([]ParticipantEntry, 0, len(existing))}
	for _, p := range existing {
		result.Value = append(result.Value, ParticipantEntry{ID: p.Name, Streams: streamsOf(p)})
	}
	h.Users.SendResponse(req, result)
	h.broadcast(existing, req.ParticipantID, MethodParticipantJoined, IDParams{ID: userName})
	log.Debug().Str("module", "notify").Str("room", string(room)).Str("user", userName).Int("peers", len(existing)).Msg("join notified")
}

func (h *Handler) OnParticipantLeft(req domain.Request, userName string, remaining []domain.Participant, err error) {
	if err != nil {
		h.Users.SendErrorResponse(req, nil, err)
		return
	}
	h.Users.SendResponse(req, Empty{})
	h.broadcast(remaining, req.ParticipantID, MethodParticipantLeft, NameParams{Name: userName})
	h.Users.CloseSession(req)
}

func (h *Handler) OnPublishMedia(req domain.Request, userName, sdpAnswer string, participants []domain.Participant, err error) {
	if err != nil {
		h.Users.SendErrorResponse(req, nil, err)
		return
	}
	h.Users.SendResponse(req, SDPAnswerResult{SDPAnswer: sdpAnswer})
	h.broadcast(participants, req.ParticipantID, MethodParticipantPublished, PublishedParams{
		ID:      userName,
		Streams: []Stream{{ID: DefaultStreamID}},
	})
}

func (h *Handler) OnUnpublishMedia(req domain.Request, userName string, participants []domain.Participant, err error) {
	if err != nil {
		h.Users.SendErrorResponse(req, nil, err)
		return
	}
	h.Users.SendResponse(req, Empty{})
	h.broadcast(participants, req.ParticipantID, MethodParticipantUnpublished, NameParams{Name: userName})
}

func (h *Handler) OnSubscribe(req domain.Request, sdpAnswer string, err error) {
	if err != nil {
		h.Users.SendErrorResponse(req, nil, err)
		return
	}
	h.Users.SendResponse(req, SDPAnswerResult{SDPAnswer: sdpAnswer})
}

func (h *Handler) OnUnsubscribe(req domain.Request, err error) {
	h.ack(req, err)
}

func (h *Handler) OnRecvIceCandidate(req domain.Request, err error) {
	h.ack(req, err)
}

func (h *Handler) ack(req domain.Request, err error) {
	if err != nil {
		h.Users.SendErrorResponse(req, nil, err)
		return
	}
	h.Users.SendResponse(req, Empty{})
}

// OnSendMessage delivers the message to every participant, the sender included.
func (h *Handler) OnSendMessage(req domain.Request, message, userName string, room domain.RoomName, participants []domain.Participant, err error) {
	if err != nil {
		h.Users.SendErrorResponse(req, nil, err)
		return
	}
	h.Users.SendResponse(req, Empty{})
	h.broadcast(participants, "", MethodSendMessage, MessageParams{Room: room, User: userName, Message: message})
}

func (h *Handler) OnPeerLeft(userName string, remaining []domain.Participant) {
	h.broadcast(remaining, "", MethodParticipantLeft, NameParams{Name: userName})
}

func (h *Handler) OnParticipantEvicted(p domain.Participant) {
	h.Users.SendNotification(p.ID, MethodParticipantEvicted, Empty{})
}

func (h *Handler) OnRoomClosed(room domain.RoomName, participants []domain.Participant) {
	h.broadcast(participants, "", MethodRoomClosed, RoomParams{Room: room})
}

func (h *Handler) OnIceCandidate(room domain.RoomName, pid domain.ParticipantID, endpointName string, cand domain.Candidate) {
	params := CandidateParams{EndpointName: endpointName, Candidate: cand.Candidate}
	if cand.SDPMid != nil {
		params.SDPMid = *cand.SDPMid
	}
	if cand.SDPMLineIndex != nil {
		params.SDPMLineIndex = *cand.SDPMLineIndex
	}
	h.Users.SendNotification(pid, MethodIceCandidate, params)
}

func (h *Handler) OnMediaError(room domain.RoomName, participants []domain.Participant, description string) {
	log.Warn().Str("module", "notify").Str("room", string(room)).Str("error", description).Msg("media error")
	h.broadcast(participants, "", MethodMediaError, ErrorParams{Error: description})
}

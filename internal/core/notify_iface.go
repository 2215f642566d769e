//go:generate go run go.uber.org/mock/mockgen -source=notify_iface.go -destination=../mocks/mock_notify.go -package=mocks
package core

import "github.com/dkeye/rooms/internal/domain"

// Notifier receives exactly one outcome per client request.
// On failure err is non-nil and the payload arguments carry whatever context
// was resolved before the failure (possibly zero values).
type Notifier interface {
	OnParticipantJoined(req domain.Request, room domain.RoomName, userName string, existing []domain.Participant, err error)
	OnParticipantLeft(req domain.Request, userName string, remaining []domain.Participant, err error)
	OnPublishMedia(req domain.Request, userName, sdpAnswer string, participants []domain.Participant, err error)
	OnUnpublishMedia(req domain.Request, userName string, participants []domain.Participant, err error)
	OnSubscribe(req domain.Request, sdpAnswer string, err error)
	OnUnsubscribe(req domain.Request, err error)
	OnRecvIceCandidate(req domain.Request, err error)
	OnSendMessage(req domain.Request, message, userName string, room domain.RoomName, participants []domain.Participant, err error)

	RoomEvents
}

// RoomEvents are broadcasts not tied to a single request.
type RoomEvents interface {
	OnPeerLeft(userName string, remaining []domain.Participant)
	OnParticipantEvicted(p domain.Participant)
	OnRoomClosed(room domain.RoomName, participants []domain.Participant)

	MediaEvents
}

// MediaEvents are raised by the store's media layer.
type MediaEvents interface {
	OnIceCandidate(room domain.RoomName, pid domain.ParticipantID, endpointName string, cand domain.Candidate)
	OnMediaError(room domain.RoomName, participants []domain.Participant, description string)
}

// UserNotifier is the transport-facing side: it delivers responses to the
// requester and notifications to any participant.
type UserNotifier interface {
	SendResponse(req domain.Request, result any)
	SendErrorResponse(req domain.Request, data any, err error)
	SendNotification(pid domain.ParticipantID, method string, params any)
	CloseSession(req domain.Request)
}

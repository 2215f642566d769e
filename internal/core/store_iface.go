//go:generate go run go.uber.org/mock/mockgen -source=store_iface.go -destination=../mocks/mock_store.go -package=mocks
package core

import "github.com/dkeye/rooms/internal/domain"

// MediaElement is an opaque media processing handle chained into a
// publisher's outgoing media. The coordinator passes it through untouched.
type MediaElement interface {
	ElementID() string
}

// MediaPipeline is the per-room media resource handle.
type MediaPipeline interface {
	ID() string
	Room() domain.RoomName
}

// SessionStore owns rooms, participants and media topology.
// Each call is atomic; every failure is a *domain.RoomError.
type SessionStore interface {
	JoinRoom(userName string, room domain.RoomName, webParticipant bool, info domain.SessionInfo, pid domain.ParticipantID) ([]domain.Participant, error)
	LeaveRoom(pid domain.ParticipantID) ([]domain.Participant, error)

	PublishMedia(pid domain.ParticipantID, isOffer bool, sdp string, loopback domain.LoopbackConfig, elements ...MediaElement) (string, error)
	GeneratePublishOffer(pid domain.ParticipantID) (string, error)
	UnpublishMedia(pid domain.ParticipantID) error
	Subscribe(remoteName, sdpOffer string, pid domain.ParticipantID) (string, error)
	Unsubscribe(remoteName string, pid domain.ParticipantID) error
	OnIceCandidate(endpointName string, cand domain.Candidate, pid domain.ParticipantID) error

	RoomName(pid domain.ParticipantID) (domain.RoomName, error)
	ParticipantName(pid domain.ParticipantID) (string, error)
	ParticipantInfo(pid domain.ParticipantID) (domain.Participant, error)

	Rooms() []domain.RoomName
	Participants(room domain.RoomName) ([]domain.Participant, error)
	Publishers(room domain.RoomName) ([]domain.Participant, error)
	Subscribers(room domain.RoomName) ([]domain.Participant, error)
	PeerPublishers(pid domain.ParticipantID) ([]domain.Participant, error)
	PeerSubscribers(pid domain.ParticipantID) ([]domain.Participant, error)

	CreateRoom(info domain.SessionInfo) error
	CloseRoom(room domain.RoomName) ([]domain.Participant, error)
	Pipeline(pid domain.ParticipantID) (MediaPipeline, error)

	AddMediaElement(pid domain.ParticipantID, element MediaElement, kind *domain.MediaKind) error
	RemoveMediaElement(pid domain.ParticipantID, element MediaElement) error

	MutePublishedMedia(muteType domain.MutedMediaType, pid domain.ParticipantID) error
	UnmutePublishedMedia(pid domain.ParticipantID) error
	MuteSubscribedMedia(remoteName string, muteType domain.MutedMediaType, pid domain.ParticipantID) error
	UnmuteSubscribedMedia(remoteName string, pid domain.ParticipantID) error

	IsClosed() bool
	Close() error
}

package orch

import (
	"github.com/dkeye/rooms/internal/core"
	"github.com/dkeye/rooms/internal/domain"
)

// The calls below are administrative and bypass the Notifier: results and
// failures go straight back to the caller.

func (o *Orchestrator) Rooms() []domain.RoomName {
	return o.Store.Rooms()
}

func (o *Orchestrator) Participants(room domain.RoomName) ([]domain.Participant, error) {
	return o.Store.Participants(room)
}

func (o *Orchestrator) Publishers(room domain.RoomName) ([]domain.Participant, error) {
	return o.Store.Publishers(room)
}

func (o *Orchestrator) Subscribers(room domain.RoomName) ([]domain.Participant, error) {
	return o.Store.Subscribers(room)
}

func (o *Orchestrator) PeerPublishers(pid domain.ParticipantID) ([]domain.Participant, error) {
	return o.Store.PeerPublishers(pid)
}

func (o *Orchestrator) PeerSubscribers(pid domain.ParticipantID) ([]domain.Participant, error) {
	return o.Store.PeerSubscribers(pid)
}

func (o *Orchestrator) ParticipantInfo(pid domain.ParticipantID) (domain.Participant, error) {
	return o.Store.ParticipantInfo(pid)
}

func (o *Orchestrator) CreateRoom(info domain.SessionInfo) error {
	return o.Store.CreateRoom(info)
}

func (o *Orchestrator) Pipeline(pid domain.ParticipantID) (core.MediaPipeline, error) {
	return o.Store.Pipeline(pid)
}

// GeneratePublishOffer starts a server-offered publish; the client answers
// through Publish with isOffer false.
func (o *Orchestrator) GeneratePublishOffer(pid domain.ParticipantID) (string, error) {
	return o.Store.GeneratePublishOffer(pid)
}

func (o *Orchestrator) AddMediaElement(pid domain.ParticipantID, element core.MediaElement, kind *domain.MediaKind) error {
	return o.Store.AddMediaElement(pid, element, kind)
}

func (o *Orchestrator) RemoveMediaElement(pid domain.ParticipantID, element core.MediaElement) error {
	return o.Store.RemoveMediaElement(pid, element)
}

func (o *Orchestrator) MutePublishedMedia(muteType domain.MutedMediaType, pid domain.ParticipantID) error {
	return o.Store.MutePublishedMedia(muteType, pid)
}

func (o *Orchestrator) UnmutePublishedMedia(pid domain.ParticipantID) error {
	return o.Store.UnmutePublishedMedia(pid)
}

func (o *Orchestrator) MuteSubscribedMedia(remoteName string, muteType domain.MutedMediaType, pid domain.ParticipantID) error {
	return o.Store.MuteSubscribedMedia(remoteName, muteType, pid)
}

func (o *Orchestrator) UnmuteSubscribedMedia(remoteName string, pid domain.ParticipantID) error {
	return o.Store.UnmuteSubscribedMedia(remoteName, pid)
}

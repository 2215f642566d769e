package orch

import (
	"github.com/dkeye/rooms/internal/core"
	"github.com/dkeye/rooms/internal/domain"
	"github.com/rs/zerolog/log"
)

// Publish negotiates the requester's outgoing media. The room's participants
// are captured before the call.
func (o *Orchestrator) Publish(req domain.Request, isOffer bool, sdp string, loopback domain.LoopbackConfig, elements ...core.MediaElement) {
	pid := req.ParticipantID
	id := o.identify(pid)
	var participants []domain.Participant
	if id.room != "" {
		participants = o.enrich("publishVideo", id.room)
	}
	answer, err := guard("publishVideo", func() (string, error) {
		return o.Store.PublishMedia(pid, isOffer, sdp, loopback, elements...)
	})
	if err != nil {
		logFailure("publishVideo", req, id, err)
		answer, participants = "", nil
	} else {
		log.Info().Str("module", "orch").Str("pid", string(pid)).Str("user", id.name).Bool("loopback", loopback.Enabled).Msg("published")
	}
	o.Notifier.OnPublishMedia(req, id.name, answer, participants, err)
}

// PublishOffer publishes from a client offer with optional plain loopback.
func (o *Orchestrator) PublishOffer(req domain.Request, sdpOffer string, doLoopback bool, elements ...core.MediaElement) {
	o.Publish(req, true, sdpOffer, domain.LoopbackConfig{Enabled: doLoopback}, elements...)
}

// Unpublish stops the requester's outgoing media. The room's participants
// are read after the teardown.
func (o *Orchestrator) Unpublish(req domain.Request) {
	pid := req.ParticipantID
	id := o.identify(pid)
	err := exec("unpublishVideo", func() error { return o.Store.UnpublishMedia(pid) })
	var participants []domain.Participant
	if err != nil {
		logFailure("unpublishVideo", req, id, err)
	} else {
		participants = o.enrich("unpublishVideo", id.room)
		log.Info().Str("module", "orch").Str("pid", string(pid)).Str("user", id.name).Msg("unpublished")
	}
	o.Notifier.OnUnpublishMedia(req, id.name, participants, err)
}

// Subscribe connects the requester to remoteName's published media.
func (o *Orchestrator) Subscribe(remoteName, sdpOffer string, req domain.Request) {
	pid := req.ParticipantID
	answer, err := guard("receiveVideoFrom", func() (string, error) {
		return o.Store.Subscribe(remoteName, sdpOffer, pid)
	})
	if err != nil {
		logFailure("receiveVideoFrom", req, o.identify(pid), err)
		answer = ""
	}
	o.Notifier.OnSubscribe(req, answer, err)
}

func (o *Orchestrator) Unsubscribe(remoteName string, req domain.Request) {
	pid := req.ParticipantID
	err := exec("unsubscribeFromVideo", func() error { return o.Store.Unsubscribe(remoteName, pid) })
	if err != nil {
		logFailure("unsubscribeFromVideo", req, o.identify(pid), err)
	}
	o.Notifier.OnUnsubscribe(req, err)
}

// OnIceCandidate hands a client candidate to the endpoint named endpointName.
func (o *Orchestrator) OnIceCandidate(endpointName, candidate string, sdpMLineIndex uint16, sdpMid string, req domain.Request) {
	pid := req.ParticipantID
	cand := domain.Candidate{Candidate: candidate, SDPMid: &sdpMid, SDPMLineIndex: &sdpMLineIndex}
	err := exec("onIceCandidate", func() error { return o.Store.OnIceCandidate(endpointName, cand, pid) })
	if err != nil {
		logFailure("onIceCandidate", req, o.identify(pid), err)
	}
	o.Notifier.OnRecvIceCandidate(req, err)
}

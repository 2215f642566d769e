package signal

import (
	"encoding/json"
	"strings"

	"github.com/dkeye/rooms/internal/app/notify"
	"github.com/dkeye/rooms/internal/domain"
	"github.com/rs/zerolog/log"
)

const streamSuffix = "_" + notify.DefaultStreamID

// senderName strips the stream id clients append to the publisher's name.
func senderName(sender string) string {
	return strings.TrimSuffix(sender, streamSuffix)
}

func (ctl *SignalWSController) handlePublish(req domain.Request, params json.RawMessage) {
	var p publishVideoParams
	if !ctl.decode(req, params, &p) {
		return
	}
	log.Info().Str("module", "signal").Str("pid", string(req.ParticipantID)).Bool("loopback", p.DoLoopback).Msg("publish")
	ctl.Orch.PublishOffer(req, p.SDPOffer, p.DoLoopback)
}

func (ctl *SignalWSController) handleUnpublish(req domain.Request, _ json.RawMessage) {
	ctl.Orch.Unpublish(req)
}

func (ctl *SignalWSController) handleReceiveVideo(req domain.Request, params json.RawMessage) {
	var p receiveVideoParams
	if !ctl.decode(req, params, &p) {
		return
	}
	sender := senderName(p.Sender)
	log.Info().Str("module", "signal").Str("pid", string(req.ParticipantID)).Str("sender", sender).Msg("receive video")
	ctl.Orch.Subscribe(sender, p.SDPOffer, req)
}

func (ctl *SignalWSController) handleUnsubscribe(req domain.Request, params json.RawMessage) {
	var p unsubscribeParams
	if !ctl.decode(req, params, &p) {
		return
	}
	ctl.Orch.Unsubscribe(senderName(p.Sender), req)
}

func (ctl *SignalWSController) handleCandidate(req domain.Request, params json.RawMessage) {
	var p candidateParams
	if !ctl.decode(req, params, &p) {
		return
	}
	ctl.Orch.OnIceCandidate(p.EndpointName, p.Candidate, p.SDPMLineIndex, p.SDPMid, req)
}

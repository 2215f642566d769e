package app

import (
	"context"

	"github.com/dkeye/rooms/internal/core"
	"github.com/dkeye/rooms/internal/domain"
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"
)

// newEndpoint creates and starts a connection for pid. endpointName is the
// name candidates are reported under.
func (s *Store) newEndpoint(r *room, pid domain.ParticipantID, endpointName string) (core.MediaConnection, error) {
	conn, err := s.media.NewConnection(pid, endpointName)
	if err != nil {
		return nil, domain.NewError(domain.CodeMediaEndpoint, "create endpoint %q: %v", endpointName, err)
	}
	roomName := r.name
	conn.OnICECandidate(func(cand domain.Candidate) {
		if s.events != nil {
			s.events.OnIceCandidate(roomName, pid, endpointName, cand)
		}
	})
	conn.OnClosed(func() {
		// Runs on a pion goroutine; never touch r.mu synchronously here.
		go s.reportMediaFailure(r, pid, endpointName, conn)
	})
	if err := conn.Start(s.ctx); err != nil {
		_ = release(conn)
		return nil, domain.NewError(domain.CodeMediaEndpoint, "start endpoint %q: %v", endpointName, err)
	}
	return conn, nil
}

// reportMediaFailure drops the state held for a dead endpoint and tells the
// room about it.
func (s *Store) reportMediaFailure(r *room, pid domain.ParticipantID, endpointName string, conn core.MediaConnection) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	if p, ok := r.participants[pid]; ok {
		switch {
		case p.publisher == conn:
			s.stopPublishing(r, p)
		case p.subscriptions[endpointName] == conn:
			delete(p.subscriptions, endpointName)
			if snd := r.byName(endpointName); snd != nil {
				r.pipeline.RetireSubscriber(snd.id, p.id)
			}
		}
	}
	if err := release(conn); err != nil {
		log.Debug().Err(err).Str("module", "app.store").Str("pid", string(pid)).Msg("release failed endpoint")
	}
	members := r.snapshot(nil)
	r.mu.Unlock()
	log.Warn().Str("module", "app.store").Str("pid", string(pid)).Str("endpoint", endpointName).Msg("media endpoint closed unexpectedly")
	if s.events != nil {
		s.events.OnMediaError(r.name, members, "media endpoint "+endpointName+" of "+string(pid)+" closed")
	}
}

// publisherEndpoint returns p's publishing connection, creating it on first use.
// The bool reports whether it was created by this call.
func (s *Store) publisherEndpoint(r *room, p *participant) (core.MediaConnection, bool, error) {
	if p.publisher != nil {
		return p.publisher, false, nil
	}
	conn, err := s.newEndpoint(r, p.id, p.name)
	if err != nil {
		return nil, false, err
	}
	pid := p.id
	pipeline := r.pipeline
	conn.OnTrack(func(ctx context.Context, track *webrtc.TrackRemote, _ *webrtc.RTPReceiver) {
		pipeline.StartRelay(ctx, pid, track)
	})
	return conn, true, nil
}

// bindLoopback feeds the publisher's own tracks back over its connection,
// restricted to loopback.ConnectionType when set.
func (s *Store) bindLoopback(r *room, pid domain.ParticipantID, conn core.MediaConnection, loopback domain.LoopbackConfig) {
	pipeline := r.pipeline
	conn.OnTrack(func(ctx context.Context, track *webrtc.TrackRemote, _ *webrtc.RTPReceiver) {
		kind := pipeline.StartRelay(ctx, pid, track)
		if loopback.ConnectionType != nil && *loopback.ConnectionType != kind {
			return
		}
		if err := pipeline.Attach(pid, pid, kind, conn); err != nil {
			log.Warn().Err(err).Str("module", "app.store").Str("pid", string(pid)).Msg("loopback attach")
		}
	})
}

// PublishMedia negotiates p's outgoing media. With isOffer the sdp is the
// client's offer and the answer is returned; otherwise sdp answers an offer from
// GeneratePublishOffer and is returned unchanged once applied.
func (s *Store) PublishMedia(
	pid domain.ParticipantID,
	isOffer bool,
	sdp string,
	loopback domain.LoopbackConfig,
	elements ...core.MediaElement,
) (string, error) {
	if s.IsClosed() {
		return "", errClosed()
	}
	r, p, unlock, err := s.locate(pid, true)
	if err != nil {
		return "", err
	}
	defer unlock()

	if loopback.AlternativeSource != "" && !hasElement(p.elements, loopback.AlternativeSource) && !containsElement(elements, loopback.AlternativeSource) {
		return "", domain.NewError(domain.CodeMediaEndpoint, "loopback source %q is not a media element of %q", loopback.AlternativeSource, p.name)
	}

	conn, created, err := s.publisherEndpoint(r, p)
	if err != nil {
		return "", err
	}
	answer := sdp
	if isOffer {
		answer, err = conn.ApplyOfferAndCreateAnswer(sdp)
	} else {
		err = conn.ApplyAnswer(sdp)
	}
	if err != nil {
		if created {
			_ = release(conn)
		}
		return "", domain.NewError(domain.CodeMediaSDP, "publish negotiation for %q: %v", p.name, err)
	}

	p.publisher = conn
	p.streaming = true
	p.loopback = loopback
	r.pipeline.Prepare(pid, conn.IncomingCodecs())
	if loopback.Enabled {
		s.bindLoopback(r, pid, conn, loopback)
	}
	for _, el := range elements {
		if !hasElement(p.elements, el.ElementID()) {
			p.elements = append(p.elements, mediaElement{element: el})
		}
	}
	log.Info().Str("module", "app.store").Str("pid", string(pid)).Bool("offer", isOffer).Bool("loopback", loopback.Enabled).Msg("media published")
	return answer, nil
}

func (s *Store) GeneratePublishOffer(pid domain.ParticipantID) (string, error) {
	if s.IsClosed() {
		return "", errClosed()
	}
	r, p, unlock, err := s.locate(pid, true)
	if err != nil {
		return "", err
	}
	defer unlock()

	conn, created, err := s.publisherEndpoint(r, p)
	if err != nil {
		return "", err
	}
	offer, err := conn.CreateAndSetOffer()
	if err != nil {
		if created {
			_ = release(conn)
		}
		return "", domain.NewError(domain.CodeMediaSDP, "generate offer for %q: %v", p.name, err)
	}
	p.publisher = conn
	return offer, nil
}

func (s *Store) UnpublishMedia(pid domain.ParticipantID) error {
	if s.IsClosed() {
		return errClosed()
	}
	r, p, unlock, err := s.locate(pid, true)
	if err != nil {
		return err
	}
	defer unlock()

	if !p.streaming {
		return domain.NewError(domain.CodeUserNotStreaming, "participant %q is not streaming", p.name)
	}
	s.stopPublishing(r, p)
	log.Info().Str("module", "app.store").Str("pid", string(pid)).Msg("media unpublished")
	return nil
}

// stopPublishing releases p's publisher and every subscription to it.
// Callers hold r.mu for writing.
func (s *Store) stopPublishing(r *room, p *participant) {
	r.pipeline.StopRelay(p.id)
	if p.publisher != nil {
		if err := release(p.publisher); err != nil {
			log.Warn().Err(err).Str("module", "app.store").Str("pid", string(p.id)).Msg("release publisher")
		}
	}
	p.publisher = nil
	p.streaming = false
	p.loopback = domain.LoopbackConfig{}
	for _, other := range r.participants {
		if conn, ok := other.subscriptions[p.name]; ok {
			delete(other.subscriptions, p.name)
			_ = release(conn)
		}
	}
}

// sender finds a streaming participant by name in r.
func sender(r *room, remoteName string) (*participant, error) {
	snd := r.byName(remoteName)
	if snd == nil {
		return nil, domain.NewError(domain.CodeUserNotFound, "user %q not found in room %q", remoteName, r.name)
	}
	if !snd.streaming {
		return nil, domain.NewError(domain.CodeUserNotStreaming, "user %q is not streaming", remoteName)
	}
	return snd, nil
}

func (s *Store) Subscribe(remoteName, sdpOffer string, pid domain.ParticipantID) (string, error) {
	if s.IsClosed() {
		return "", errClosed()
	}
	r, p, unlock, err := s.locate(pid, true)
	if err != nil {
		return "", err
	}
	defer unlock()

	if remoteName == p.name {
		return "", domain.NewError(domain.CodeUserNotStreaming, "%q cannot subscribe to itself, use loopback on publish", p.name)
	}
	snd, err := sender(r, remoteName)
	if err != nil {
		return "", err
	}
	if old, ok := p.subscriptions[remoteName]; ok {
		r.pipeline.RetireSubscriber(snd.id, p.id)
		_ = release(old)
		delete(p.subscriptions, remoteName)
	}

	conn, err := s.newEndpoint(r, p.id, remoteName)
	if err != nil {
		return "", err
	}
	tracks, err := r.pipeline.Subscribe(snd.id, p.id, conn)
	if err != nil {
		r.pipeline.RetireSubscriber(snd.id, p.id)
		_ = release(conn)
		return "", domain.NewError(domain.CodeMediaEndpoint, "attach %q tracks: %v", remoteName, err)
	}
	if tracks == 0 {
		_ = release(conn)
		return "", domain.NewError(domain.CodeUserNotStreaming, "user %q publishes no media", remoteName)
	}
	answer, err := conn.ApplyOfferAndCreateAnswer(sdpOffer)
	if err != nil {
		r.pipeline.RetireSubscriber(snd.id, p.id)
		_ = release(conn)
		return "", domain.NewError(domain.CodeMediaSDP, "subscribe negotiation %q -> %q: %v", remoteName, p.name, err)
	}
	p.subscriptions[remoteName] = conn
	log.Info().Str("module", "app.store").Str("pid", string(pid)).Str("sender", remoteName).Int("tracks", tracks).Msg("subscribed")
	return answer, nil
}

func (s *Store) Unsubscribe(remoteName string, pid domain.ParticipantID) error {
	if s.IsClosed() {
		return errClosed()
	}
	r, p, unlock, err := s.locate(pid, true)
	if err != nil {
		return err
	}
	defer unlock()

	snd := r.byName(remoteName)
	if snd == nil {
		return domain.NewError(domain.CodeUserNotFound, "user %q not found in room %q", remoteName, r.name)
	}
	conn, ok := p.subscriptions[remoteName]
	if !ok {
		return domain.NewError(domain.CodeMediaEndpoint, "%q is not subscribed to %q", p.name, remoteName)
	}
	delete(p.subscriptions, remoteName)
	r.pipeline.RetireSubscriber(snd.id, p.id)
	if err := release(conn); err != nil {
		log.Warn().Err(err).Str("module", "app.store").Str("pid", string(pid)).Msg("release subscription")
	}
	log.Info().Str("module", "app.store").Str("pid", string(pid)).Str("sender", remoteName).Msg("unsubscribed")
	return nil
}

// OnIceCandidate routes a client candidate to the endpoint it names: the
// participant's own name is its publisher, any other name a subscription.
func (s *Store) OnIceCandidate(endpointName string, cand domain.Candidate, pid domain.ParticipantID) error {
	if s.IsClosed() {
		return errClosed()
	}
	_, p, unlock, err := s.locate(pid, false)
	if err != nil {
		return err
	}
	defer unlock()

	var conn core.MediaConnection
	if endpointName == p.name {
		conn = p.publisher
	} else {
		conn = p.subscriptions[endpointName]
	}
	if conn == nil {
		return domain.NewError(domain.CodeMediaEndpoint, "no endpoint %q for %q", endpointName, p.name)
	}
	if err := conn.AddICECandidate(cand); err != nil {
		return domain.NewError(domain.CodeMediaWebRTC, "add candidate to %q: %v", endpointName, err)
	}
	return nil
}

func hasElement(els []mediaElement, id string) bool {
	for _, el := range els {
		if el.element.ElementID() == id {
			return true
		}
	}
	return false
}

func containsElement(els []core.MediaElement, id string) bool {
	for _, el := range els {
		if el.ElementID() == id {
			return true
		}
	}
	return false
}

func (s *Store) AddMediaElement(pid domain.ParticipantID, element core.MediaElement, kind *domain.MediaKind) error {
	_, p, unlock, err := s.locate(pid, true)
	if err != nil {
		return err
	}
	defer unlock()
	if hasElement(p.elements, element.ElementID()) {
		return domain.NewError(domain.CodeMediaEndpoint, "element %q already added to %q", element.ElementID(), p.name)
	}
	p.elements = append(p.elements, mediaElement{element: element, kind: kind})
	return nil
}

func (s *Store) RemoveMediaElement(pid domain.ParticipantID, element core.MediaElement) error {
	_, p, unlock, err := s.locate(pid, true)
	if err != nil {
		return err
	}
	defer unlock()
	for i, el := range p.elements {
		if el.element.ElementID() == element.ElementID() {
			p.elements = append(p.elements[:i], p.elements[i+1:]...)
			return nil
		}
	}
	return domain.NewError(domain.CodeMediaEndpoint, "element %q not found for %q", element.ElementID(), p.name)
}

func (s *Store) MutePublishedMedia(muteType domain.MutedMediaType, pid domain.ParticipantID) error {
	r, p, unlock, err := s.locate(pid, false)
	if err != nil {
		return err
	}
	defer unlock()
	if !p.streaming {
		return domain.NewError(domain.CodeUserNotStreaming, "participant %q is not streaming", p.name)
	}
	r.pipeline.MutePublisher(p.id, muteType)
	return nil
}

func (s *Store) UnmutePublishedMedia(pid domain.ParticipantID) error {
	r, p, unlock, err := s.locate(pid, false)
	if err != nil {
		return err
	}
	defer unlock()
	if !p.streaming {
		return domain.NewError(domain.CodeUserNotStreaming, "participant %q is not streaming", p.name)
	}
	r.pipeline.UnmutePublisher(p.id)
	return nil
}

func (s *Store) subscription(r *room, p *participant, remoteName string) (*participant, error) {
	snd := r.byName(remoteName)
	if snd == nil {
		return nil, domain.NewError(domain.CodeUserNotFound, "user %q not found in room %q", remoteName, r.name)
	}
	if _, ok := p.subscriptions[remoteName]; !ok {
		return nil, domain.NewError(domain.CodeMediaMute, "%q is not subscribed to %q", p.name, remoteName)
	}
	return snd, nil
}

func (s *Store) MuteSubscribedMedia(remoteName string, muteType domain.MutedMediaType, pid domain.ParticipantID) error {
	r, p, unlock, err := s.locate(pid, false)
	if err != nil {
		return err
	}
	defer unlock()
	snd, err := s.subscription(r, p, remoteName)
	if err != nil {
		return err
	}
	r.pipeline.MuteSubscriber(snd.id, p.id, muteType)
	return nil
}

func (s *Store) UnmuteSubscribedMedia(remoteName string, pid domain.ParticipantID) error {
	r, p, unlock, err := s.locate(pid, false)
	if err != nil {
		return err
	}
	defer unlock()
	snd, err := s.subscription(r, p, remoteName)
	if err != nil {
		return err
	}
	r.pipeline.UnmuteSubscriber(snd.id, p.id)
	return nil
}

package rtc

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dkeye/rooms/internal/core"
	"github.com/dkeye/rooms/internal/domain"
	"github.com/pion/webrtc/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// WebRTCConnection is one pion PeerConnection serving a single endpoint:
// a participant's publisher or one of its subscriptions.
type WebRTCConnection struct {
	pc       *webrtc.PeerConnection
	pid      domain.ParticipantID
	endpoint string
	cancel   context.CancelFunc

	closed atomic.Bool
	failed atomic.Bool

	mu       sync.RWMutex
	onICE    func(domain.Candidate)
	onTrack  func(ctx context.Context, track *webrtc.TrackRemote, receiver *webrtc.RTPReceiver)
	onClosed func()
}

var _ core.MediaConnection = (*WebRTCConnection)(nil)

func NewWebRTCConnection(cfg webrtc.Configuration, pid domain.ParticipantID, endpoint string) (*WebRTCConnection, error) {
	pc, err := webrtc.NewPeerConnection(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "new peer connection")
	}
	return &WebRTCConnection{pc: pc, pid: pid, endpoint: endpoint}, nil
}

func (c *WebRTCConnection) logger() *zerolog.Logger {
	l := log.With().Str("module", "webrtc").Str("pid", string(c.pid)).Str("endpoint", c.endpoint).Logger()
	return &l
}

func (c *WebRTCConnection) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.pc.OnICEConnectionStateChange(func(s webrtc.ICEConnectionState) {
		c.logger().Info().Str("ice_state", s.String()).Msg("ICE state")
		if s == webrtc.ICEConnectionStateFailed ||
			s == webrtc.ICEConnectionStateClosed {
			cancel()
		}
	})

	c.pc.OnConnectionStateChange(func(s webrtc.PeerConnectionState) {
		c.logger().Info().Str("peer_connection_state", s.String()).Msg("Peer state")
		if s == webrtc.PeerConnectionStateFailed ||
			s == webrtc.PeerConnectionStateClosed {
			c.fail()
		}
	})

	c.pc.OnICECandidate(func(cand *webrtc.ICECandidate) {
		if cand == nil {
			return
		}
		c.mu.RLock()
		fn := c.onICE
		c.mu.RUnlock()
		if fn != nil {
			fn(fromICECandidateInit(cand.ToJSON()))
		}
	})

	c.pc.OnTrack(func(track *webrtc.TrackRemote, receiver *webrtc.RTPReceiver) {
		c.logger().Info().
			Str("kind", track.Kind().String()).
			Str("track_id", track.ID()).
			Str("stream_id", track.StreamID()).
			Msg("OnTrack received")
		c.mu.RLock()
		fn := c.onTrack
		c.mu.RUnlock()
		if fn != nil {
			fn(ctx, track, receiver)
		}
	})

	go func() {
		<-ctx.Done()
		c.fail()
	}()
	return nil
}

// fail runs the closed callback once, unless Close got there first.
func (c *WebRTCConnection) fail() {
	if c.closed.Load() || !c.failed.CompareAndSwap(false, true) {
		return
	}
	c.mu.RLock()
	fn := c.onClosed
	c.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

func (c *WebRTCConnection) ApplyOfferAndCreateAnswer(sdpOffer string) (string, error) {
	offer := webrtc.SessionDescription{Type: webrtc.SDPTypeOffer, SDP: sdpOffer}
	if err := c.pc.SetRemoteDescription(offer); err != nil {
		return "", errors.Wrap(err, "set remote offer")
	}
	answer, err := c.pc.CreateAnswer(nil)
	if err != nil {
		return "", errors.Wrap(err, "create answer")
	}
	if err := c.pc.SetLocalDescription(answer); err != nil {
		return "", errors.Wrap(err, "set local answer")
	}
	return c.pc.LocalDescription().SDP, nil
}

func (c *WebRTCConnection) CreateAndSetOffer() (string, error) {
	offer, err := c.pc.CreateOffer(nil)
	if err != nil {
		return "", errors.Wrap(err, "create offer")
	}
	if err := c.pc.SetLocalDescription(offer); err != nil {
		return "", errors.Wrap(err, "set local offer")
	}
	return c.pc.LocalDescription().SDP, nil
}

func (c *WebRTCConnection) ApplyAnswer(sdpAnswer string) error {
	answer := webrtc.SessionDescription{Type: webrtc.SDPTypeAnswer, SDP: sdpAnswer}
	return errors.Wrap(c.pc.SetRemoteDescription(answer), "set remote answer")
}

// IncomingCodecs lists the first negotiated codec of every transceiver that
// receives media, keyed by kind.
func (c *WebRTCConnection) IncomingCodecs() map[domain.MediaKind]webrtc.RTPCodecCapability {
	out := make(map[domain.MediaKind]webrtc.RTPCodecCapability)
	for _, tr := range c.pc.GetTransceivers() {
		switch tr.Direction() {
		case webrtc.RTPTransceiverDirectionRecvonly, webrtc.RTPTransceiverDirectionSendrecv:
		default:
			continue
		}
		recv := tr.Receiver()
		if recv == nil {
			continue
		}
		codecs := recv.GetParameters().Codecs
		if len(codecs) == 0 {
			continue
		}
		kind := domain.MediaKindAudio
		if tr.Kind() == webrtc.RTPCodecTypeVideo {
			kind = domain.MediaKindVideo
		}
		if _, ok := out[kind]; !ok {
			out[kind] = codecs[0].RTPCodecCapability
		}
	}
	return out
}

// Close tears the PeerConnection down. The closed callback does not run.
func (c *WebRTCConnection) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	if c.cancel != nil {
		c.cancel()
	}
	if err := c.pc.Close(); err != nil {
		c.logger().Error().Err(err).Msg("close error")
		return errors.Wrap(err, "close peer connection")
	}
	c.logger().Info().Msg("closed")
	return nil
}

func (c *WebRTCConnection) IsClosed() bool {
	return c.closed.Load()
}

func (c *WebRTCConnection) AddICECandidate(cand domain.Candidate) error {
	return c.pc.AddICECandidate(toICECandidateInit(cand))
}

func (c *WebRTCConnection) OnICECandidate(fn func(domain.Candidate)) {
	c.mu.Lock()
	c.onICE = fn
	c.mu.Unlock()
}

// OnTrack sets application-level callback for remote tracks.
func (c *WebRTCConnection) OnTrack(fn func(ctx context.Context, track *webrtc.TrackRemote, receiver *webrtc.RTPReceiver)) {
	c.mu.Lock()
	c.onTrack = fn
	c.mu.Unlock()
}

// OnClosed sets the callback for a connection that failed or was closed remotely.
func (c *WebRTCConnection) OnClosed(fn func()) {
	c.mu.Lock()
	c.onClosed = fn
	c.mu.Unlock()
}

// AddLocalTrack attaches a local static RTP track to the PeerConnection.
func (c *WebRTCConnection) AddLocalTrack(track *webrtc.TrackLocalStaticRTP) (*webrtc.RTPSender, error) {
	sender, err := c.pc.AddTrack(track)
	if err != nil {
		return nil, errors.Wrap(err, "add track")
	}
	return sender, nil
}

func toICECandidateInit(cand domain.Candidate) webrtc.ICECandidateInit {
	return webrtc.ICECandidateInit{
		Candidate:     cand.Candidate,
		SDPMid:        cand.SDPMid,
		SDPMLineIndex: cand.SDPMLineIndex,
	}
}

func fromICECandidateInit(ci webrtc.ICECandidateInit) domain.Candidate {
	return domain.Candidate{
		Candidate:     ci.Candidate,
		SDPMid:        ci.SDPMid,
		SDPMLineIndex: ci.SDPMLineIndex,
	}
}

package sfu

import (
	"context"
	"maps"
	"sync"
	"sync/atomic"

	"github.com/dkeye/rooms/internal/domain"
	"github.com/pion/rtp"
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog"
)

// Relay fans one publisher track out to its subscribers. A relay exists from
// the moment the publish is negotiated; its source is bound when the first
// packet of that kind arrives.
type Relay struct {
	Kind  domain.MediaKind
	Codec webrtc.RTPCodecCapability

	// muted is set by the publisher side and silences every subscriber.
	muted atomic.Bool

	mu        sync.RWMutex
	src       *webrtc.TrackRemote
	cancel    context.CancelFunc
	stopped   bool
	outTracks map[domain.ParticipantID]*OutTrack
}

func NewRelay(kind domain.MediaKind, codec webrtc.RTPCodecCapability) *Relay {
	return &Relay{
		Kind:      kind,
		Codec:     codec,
		outTracks: make(map[domain.ParticipantID]*OutTrack),
	}
}

// start binds src and runs the forwarding loop. It reports false when the
// relay already has a source or was stopped.
func (r *Relay) start(ctx context.Context, src *webrtc.TrackRemote, logger *zerolog.Logger) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.src != nil || r.stopped {
		return false
	}
	if got := src.Codec().MimeType; r.Codec.MimeType != "" && got != r.Codec.MimeType {
		logger.Warn().Str("negotiated", r.Codec.MimeType).Str("received", got).Msg("source codec differs from negotiated codec")
	}
	relayCtx, cancel := context.WithCancel(ctx)
	r.src = src
	r.cancel = cancel
	go r.loop(relayCtx, src, logger)
	return true
}

func (r *Relay) Started() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.src != nil
}

// loop reads RTP packets from the source track and forwards them to all OutTracks.
func (r *Relay) loop(ctx context.Context, src *webrtc.TrackRemote, logger *zerolog.Logger) {
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("relay ctx done, retiring out tracks")
			r.retireAll()
			return
		default:
		}
		pkt, _, err := src.ReadRTP()
		if err != nil {
			logger.Error().Err(err).Msg("relay read RTP error, stopping")
			r.retireAll()
			return
		}
		r.forward(pkt, logger)
	}
}

func (r *Relay) forward(pkt *rtp.Packet, logger *zerolog.Logger) {
	r.mu.RLock()
	snapshot := maps.Clone(r.outTracks)
	r.mu.RUnlock()

	if r.muted.Load() {
		return
	}
	var dirty []domain.ParticipantID
	for dst, ot := range snapshot {
		if ot.State() == TrackRetired {
			dirty = append(dirty, dst)
			continue
		}
		if err := ot.Write(pkt); err != nil {
			logger.Warn().Err(err).Str("dst_pid", string(dst)).Msg("write RTP failed, retiring out track")
			dirty = append(dirty, dst)
		}
	}

	if len(dirty) > 0 {
		r.sweep(dirty)
	}
}

func (r *Relay) sweep(dirty []domain.ParticipantID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, pid := range dirty {
		if ot, ok := r.outTracks[pid]; ok && ot.State() == TrackRetired {
			delete(r.outTracks, pid)
		}
	}
}

func (r *Relay) retireAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retireLocked()
}

func (r *Relay) retireLocked() {
	for _, ot := range r.outTracks {
		ot.Retire()
	}
}

func (r *Relay) AddOutTrack(dst domain.ParticipantID, ot *OutTrack) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.outTracks[dst]; ok {
		old.Retire()
	}
	r.outTracks[dst] = ot
}

func (r *Relay) outTrack(dst domain.ParticipantID) (*OutTrack, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ot, ok := r.outTracks[dst]
	return ot, ok
}

// Subscribers lists destinations with a live (not retired) out track.
func (r *Relay) Subscribers() []domain.ParticipantID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ParticipantID, 0, len(r.outTracks))
	for dst, ot := range r.outTracks {
		if ot.State() != TrackRetired {
			out = append(out, dst)
		}
	}
	return out
}

func (r *Relay) stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	r.retireLocked()
	if r.cancel != nil {
		r.cancel()
	}
}

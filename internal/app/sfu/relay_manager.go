package sfu

import (
	"context"
	"sync"

	"github.com/dkeye/rooms/internal/core"
	"github.com/dkeye/rooms/internal/domain"
	"github.com/google/uuid"
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"
)

// RelayManager holds the relays of one room. It is the room's media pipeline.
type RelayManager struct {
	id   string
	room domain.RoomName

	mu     sync.RWMutex
	relays map[domain.ParticipantID]map[domain.MediaKind]*Relay
}

var _ core.MediaPipeline = (*RelayManager)(nil)

func NewRelayManager(room domain.RoomName) *RelayManager {
	return &RelayManager{
		id:     uuid.NewString(),
		room:   room,
		relays: make(map[domain.ParticipantID]map[domain.MediaKind]*Relay),
	}
}

func (m *RelayManager) ID() string            { return m.id }
func (m *RelayManager) Room() domain.RoomName { return m.room }

func kindOf(track *webrtc.TrackRemote) domain.MediaKind {
	switch track.Kind() {
	case webrtc.RTPCodecTypeAudio:
		return domain.MediaKindAudio
	case webrtc.RTPCodecTypeVideo:
		return domain.MediaKindVideo
	}
	return domain.MediaKindData
}

// Prepare registers an unbound relay for each negotiated kind the publisher
// has no relay for yet, so subscribers can attach before media flows.
func (m *RelayManager) Prepare(pid domain.ParticipantID, codecs map[domain.MediaKind]webrtc.RTPCodecCapability) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byKind, ok := m.relays[pid]
	if !ok {
		byKind = make(map[domain.MediaKind]*Relay)
		m.relays[pid] = byKind
	}
	for kind, codec := range codecs {
		if _, ok := byKind[kind]; !ok {
			byKind[kind] = NewRelay(kind, codec)
		}
	}
}

// StartRelay binds the publisher's track to the prepared relay of its kind
// and starts forwarding. A relay that already has a source is replaced.
func (m *RelayManager) StartRelay(ctx context.Context, pid domain.ParticipantID, track *webrtc.TrackRemote) domain.MediaKind {
	kind := kindOf(track)
	logger := log.With().
		Str("module", "sfu").
		Str("room", string(m.room)).
		Str("pid", string(pid)).
		Str("kind", string(kind)).
		Logger()

	m.mu.RLock()
	relay, ok := m.relays[pid][kind]
	m.mu.RUnlock()
	if ok && relay.start(ctx, track, &logger) {
		logger.Info().Msg("relay source bound")
		return kind
	}

	relay = NewRelay(kind, track.Codec().RTPCodecCapability)
	if m.addRelay(pid, relay) {
		logger.Info().Msg("replaced existing relay")
	}
	relay.start(ctx, track, &logger)
	logger.Info().Msg("relay started")
	return kind
}

// addRelay registers relay and reports whether one was replaced.
func (m *RelayManager) addRelay(pid domain.ParticipantID, relay *Relay) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	byKind, ok := m.relays[pid]
	if !ok {
		byKind = make(map[domain.MediaKind]*Relay)
		m.relays[pid] = byKind
	}
	old, replaced := byKind[relay.Kind]
	if replaced {
		old.stop()
	}
	byKind[relay.Kind] = relay
	return replaced
}

func (m *RelayManager) relaysOf(pid domain.ParticipantID) []*Relay {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Relay, 0, len(m.relays[pid]))
	for _, r := range m.relays[pid] {
		out = append(out, r)
	}
	return out
}

// Subscribe attaches a local copy of every track of src to dst's connection.
// It returns the number of tracks attached.
func (m *RelayManager) Subscribe(src, dst domain.ParticipantID, conn core.MediaConnection) (int, error) {
	n := 0
	for _, relay := range m.relaysOf(src) {
		ok, err := attach(relay, src, dst, conn)
		if err != nil {
			return n, err
		}
		if ok {
			n++
		}
	}
	log.Debug().Str("module", "sfu").Str("src", string(src)).Str("dst", string(dst)).Int("tracks", n).Msg("subscribed")
	return n, nil
}

// Attach connects the single relay of the given kind from src to dst.
func (m *RelayManager) Attach(src, dst domain.ParticipantID, kind domain.MediaKind, conn core.MediaConnection) error {
	m.mu.RLock()
	relay, ok := m.relays[src][kind]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	_, err := attach(relay, src, dst, conn)
	return err
}

func attach(relay *Relay, src, dst domain.ParticipantID, conn core.MediaConnection) (bool, error) {
	if relay.Codec.MimeType == "" {
		return false, nil
	}
	local, err := webrtc.NewTrackLocalStaticRTP(relay.Codec, string(relay.Kind), string(src))
	if err != nil {
		return false, err
	}
	if _, err := conn.AddLocalTrack(local); err != nil {
		return false, err
	}
	relay.AddOutTrack(dst, NewOutTrack(local))
	return true, nil
}

// RetireSubscriber marks every OutTrack from src to dst as TrackRetired.
func (m *RelayManager) RetireSubscriber(src, dst domain.ParticipantID) {
	for _, relay := range m.relaysOf(src) {
		if ot, ok := relay.outTrack(dst); ok {
			ot.Retire()
		}
	}
}

// StopRelay stops all relays of a publisher and removes them from the manager.
func (m *RelayManager) StopRelay(src domain.ParticipantID) {
	m.mu.Lock()
	byKind, ok := m.relays[src]
	delete(m.relays, src)
	m.mu.Unlock()
	if !ok {
		return
	}
	for _, relay := range byKind {
		relay.stop()
	}
}

// MutePublisher silences the publisher's relays covered by mt for everyone.
func (m *RelayManager) MutePublisher(src domain.ParticipantID, mt domain.MutedMediaType) {
	for _, relay := range m.relaysOf(src) {
		if mt.Covers(relay.Kind) {
			relay.muted.Store(true)
		}
	}
}

func (m *RelayManager) UnmutePublisher(src domain.ParticipantID) {
	for _, relay := range m.relaysOf(src) {
		relay.muted.Store(false)
	}
}

// MuteSubscriber silences the tracks covered by mt that flow from src to dst only.
func (m *RelayManager) MuteSubscriber(src, dst domain.ParticipantID, mt domain.MutedMediaType) {
	for _, relay := range m.relaysOf(src) {
		if !mt.Covers(relay.Kind) {
			continue
		}
		if ot, ok := relay.outTrack(dst); ok {
			ot.Mute()
		}
	}
}

func (m *RelayManager) UnmuteSubscriber(src, dst domain.ParticipantID) {
	for _, relay := range m.relaysOf(src) {
		if ot, ok := relay.outTrack(dst); ok {
			ot.Unmute()
		}
	}
}

// HasRelay reports whether a relay exists for pid.
func (m *RelayManager) HasRelay(pid domain.ParticipantID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.relays[pid]) > 0
}

// Close stops every relay in the room.
func (m *RelayManager) Close() {
	m.mu.Lock()
	relays := m.relays
	m.relays = make(map[domain.ParticipantID]map[domain.MediaKind]*Relay)
	m.mu.Unlock()
	for _, byKind := range relays {
		for _, relay := range byKind {
			relay.stop()
		}
	}
	log.Info().Str("module", "sfu").Str("room", string(m.room)).Msg("pipeline closed")
}

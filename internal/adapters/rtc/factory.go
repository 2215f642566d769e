package rtc

import (
	"github.com/dkeye/rooms/internal/core"
	"github.com/dkeye/rooms/internal/domain"
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"
)

const DefaultSTUN = "stun:stun.l.google.com:19302"

func DefaultWebRTCConfig() webrtc.Configuration {
	return NewWebRTCConfig([]string{DefaultSTUN})
}

// NewWebRTCConfig builds a configuration from ICE server URLs. An empty list
// yields host candidates only.
func NewWebRTCConfig(iceServers []string) webrtc.Configuration {
	cfg := webrtc.Configuration{}
	if len(iceServers) > 0 {
		cfg.ICEServers = []webrtc.ICEServer{{URLs: iceServers}}
	}
	return cfg
}

// Factory creates pion-backed media connections for the session store.
type Factory struct {
	Config webrtc.Configuration
}

var _ core.MediaFactory = (*Factory)(nil)

func NewFactory(cfg webrtc.Configuration) *Factory {
	return &Factory{Config: cfg}
}

func (f *Factory) NewConnection(pid domain.ParticipantID, endpointName string) (core.MediaConnection, error) {
	conn, err := NewWebRTCConnection(f.Config, pid, endpointName)
	if err != nil {
		log.Error().Err(err).Str("module", "webrtc").Str("pid", string(pid)).Str("endpoint", endpointName).Msg("new connection")
		return nil, err
	}
	return conn, nil
}

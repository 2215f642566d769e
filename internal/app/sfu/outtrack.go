package sfu

import (
	"sync/atomic"

	"github.com/pion/rtp"
	"github.com/pion/webrtc/v4"
)

// TrackState is the lifecycle of one subscriber copy of a relayed track.
type TrackState int32

const (
	TrackLive TrackState = iota
	TrackMuted
	TrackRetired
)

func (s TrackState) String() string {
	switch s {
	case TrackLive:
		return "live"
	case TrackMuted:
		return "muted"
	case TrackRetired:
		return "retired"
	}
	return "unknown"
}

// OutTrack is the local track a subscriber receives a relayed source on.
// Retired is terminal.
type OutTrack struct {
	Track *webrtc.TrackLocalStaticRTP
	state atomic.Int32
}

func NewOutTrack(track *webrtc.TrackLocalStaticRTP) *OutTrack {
	return &OutTrack{Track: track}
}

func (ot *OutTrack) State() TrackState {
	return TrackState(ot.state.Load())
}

func (ot *OutTrack) Mute() bool {
	return ot.state.CompareAndSwap(int32(TrackLive), int32(TrackMuted))
}

func (ot *OutTrack) Unmute() bool {
	return ot.state.CompareAndSwap(int32(TrackMuted), int32(TrackLive))
}

func (ot *OutTrack) Retire() {
	ot.state.Store(int32(TrackRetired))
}

// Write forwards pkt when the track is live. A write error retires the track.
func (ot *OutTrack) Write(pkt *rtp.Packet) error {
	if ot.State() != TrackLive {
		return nil
	}
	if err := ot.Track.WriteRTP(pkt); err != nil {
		ot.Retire()
		return err
	}
	return nil
}

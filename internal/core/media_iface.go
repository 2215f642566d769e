//go:generate go run go.uber.org/mock/mockgen -source=media_iface.go -destination=../mocks/mock_media.go -package=mocks
package core

import (
	"context"

	"github.com/dkeye/rooms/internal/domain"
	"github.com/pion/webrtc/v4"
)

type MediaConnection interface {
	// Start configures internal callbacks and binds the connection lifetime to ctx.
	Start(ctx context.Context) error
	// Close should stop all underlying media resources.
	Close() error
	IsClosed() bool
	AddICECandidate(domain.Candidate) error
	ApplyOfferAndCreateAnswer(sdpOffer string) (string, error)
	CreateAndSetOffer() (string, error)
	ApplyAnswer(sdpAnswer string) error
	// IncomingCodecs reports the codec negotiated for each kind the remote side sends.
	IncomingCodecs() map[domain.MediaKind]webrtc.RTPCodecCapability
	// OnICECandidate sets a callback for newly gathered local ICE candidates.
	OnICECandidate(func(domain.Candidate))
	// OnTrack sets a callback that will be invoked when a new remote track arrives.
	OnTrack(func(ctx context.Context, track *webrtc.TrackRemote, receiver *webrtc.RTPReceiver))
	// AddLocalTrack attaches a local static RTP track to the underlying PeerConnection.
	AddLocalTrack(track *webrtc.TrackLocalStaticRTP) (*webrtc.RTPSender, error)
	// OnClosed sets a callback for cleanup media session.
	OnClosed(func())
}

// MediaFactory creates one connection per endpoint. endpointName is the
// publisher's own name for its publishing endpoint, or the remote user's
// name for a subscribing endpoint.
type MediaFactory interface {
	NewConnection(pid domain.ParticipantID, endpointName string) (MediaConnection, error)
}

package domain

import "strings"

// MediaKind filters a media element or relay by track kind.
type MediaKind string

const (
	MediaKindAudio MediaKind = "audio"
	MediaKindVideo MediaKind = "video"
	MediaKindData  MediaKind = "data"
)

// MutedMediaType selects which tracks a mute applies to.
type MutedMediaType string

const (
	MuteAll   MutedMediaType = "all"
	MuteAudio MutedMediaType = "audio"
	MuteVideo MutedMediaType = "video"
)

func ParseMutedMediaType(s string) (MutedMediaType, error) {
	switch t := MutedMediaType(strings.ToLower(s)); t {
	case MuteAll, MuteAudio, MuteVideo:
		return t, nil
	case "":
		return MuteAll, nil
	}
	return "", NewError(CodeMediaMute, "unknown mute type %q", s)
}

// Covers reports whether muting t silences tracks of the given kind.
func (t MutedMediaType) Covers(kind MediaKind) bool {
	switch t {
	case MuteAll:
		return kind == MediaKindAudio || kind == MediaKindVideo
	case MuteAudio:
		return kind == MediaKindAudio
	case MuteVideo:
		return kind == MediaKindVideo
	}
	return false
}

// LoopbackConfig describes the optional self-monitor path of a publisher.
// AlternativeSource may be nil, in which case the publisher's own media is used.
type LoopbackConfig struct {
	Enabled           bool
	AlternativeSource string
	ConnectionType    *MediaKind
}

// Candidate is a connectivity candidate as exchanged over signaling.
type Candidate struct {
	Candidate     string  `json:"candidate"`
	SDPMid        *string `json:"sdpMid,omitempty"`
	SDPMLineIndex *uint16 `json:"sdpMLineIndex,omitempty"`
}

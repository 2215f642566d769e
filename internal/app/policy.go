package app

import "github.com/dkeye/rooms/internal/domain"

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	KickMember
	DropFrame
)

// Policy decides what happens to a participant whose outbound signaling
// queue is full. dropped counts consecutive undelivered frames.
type Policy interface {
	OnBackPressure(pid domain.ParticipantID, dropped int) BackpressureAction
}

// SimplePolicy drops frames until MaxDropped in a row, then evicts.
type SimplePolicy struct {
	MaxDropped int
}

func (p SimplePolicy) OnBackPressure(_ domain.ParticipantID, dropped int) BackpressureAction {
	if dropped >= p.MaxDropped {
		return KickMember
	}
	return DropFrame
}

package core

// Frame is a raw encoded signaling message.
type Frame []byte

// SignalConnection abstracts for a system messaging transport
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	// CloseAfterFlush stops accepting frames and closes once the queued ones are written.
	CloseAfterFlush()
	Close()
}

package domain

type RoomName string

// SessionInfo describes who asked for a room's media session to be created.
type SessionInfo struct {
	ParticipantID ParticipantID
	RoomName      RoomName
}

func NewSessionInfo(pid ParticipantID, room RoomName) SessionInfo {
	return SessionInfo{ParticipantID: pid, RoomName: room}
}

type RoomInfo struct {
	Name             RoomName `json:"name"`
	ParticipantCount int      `json:"participant_count"`
}

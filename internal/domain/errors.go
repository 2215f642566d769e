package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code classifies every failure reported to a client.
type Code int

const (
	CodeUserGeneric      Code = 101
	CodeUserNotFound     Code = 102
	CodeUserClosed       Code = 103
	CodeExistingUser     Code = 104
	CodeUserNotStreaming Code = 105
	CodeIdentityMismatch Code = 106
	CodeRoomGeneric      Code = 201
	CodeRoomNotFound     Code = 202
	CodeRoomClosed       Code = 203
	CodeRoomCannotCreate Code = 204
	CodeMediaGeneric     Code = 301
	CodeMediaSDP         Code = 302
	CodeMediaEndpoint    Code = 303
	CodeMediaWebRTC      Code = 304
	CodeMediaMute        Code = 307
	CodeTransportRequest Code = 801
	CodeGeneric          Code = 999
)

var codeNames = map[Code]string{
	CodeUserGeneric:      "user-error",
	CodeUserNotFound:     "participant-not-found",
	CodeUserClosed:       "participant-closed",
	CodeExistingUser:     "participant-exists",
	CodeUserNotStreaming: "participant-not-streaming",
	CodeIdentityMismatch: "identity-mismatch",
	CodeRoomGeneric:      "room-error",
	CodeRoomNotFound:     "room-not-found",
	CodeRoomClosed:       "room-closed",
	CodeRoomCannotCreate: "room-cannot-be-created",
	CodeMediaGeneric:     "media-error",
	CodeMediaSDP:         "media-negotiation-error",
	CodeMediaEndpoint:    "media-endpoint-error",
	CodeMediaWebRTC:      "media-webrtc-error",
	CodeMediaMute:        "media-mute-error",
	CodeTransportRequest: "transport-request-error",
	CodeGeneric:          "internal-error",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// RoomError is the single failure type crossing the store boundary.
type RoomError struct {
	Code    Code
	Message string
}

func (e *RoomError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code Code, format string, args ...any) *RoomError {
	return &RoomError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the Code carried by err. Unclassified errors are CodeGeneric.
func CodeOf(err error) Code {
	var re *RoomError
	if errors.As(err, &re) {
		return re.Code
	}
	return CodeGeneric
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

package signal

import (
	"encoding/json"

	"github.com/pkg/errors"
)

const jsonrpcVersion = "2.0"

// Client methods.
const (
	MethodJoinRoom             = "joinRoom"
	MethodLeaveRoom            = "leaveRoom"
	MethodSendMessage          = "sendMessage"
	MethodPublishVideo         = "publishVideo"
	MethodUnpublishVideo       = "unpublishVideo"
	MethodReceiveVideoFrom     = "receiveVideoFrom"
	MethodUnsubscribeFromVideo = "unsubscribeFromVideo"
	MethodOnIceCandidate       = "onIceCandidate"
	MethodPing                 = "ping"
)

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

var errBadID = errors.New("id must be a number or a string")

// requestID checks a raw id. Absent and null ids both mean a notification.
func requestID(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	switch c := raw[0]; {
	case c == '"', c == '-', c >= '0' && c <= '9':
		return raw, nil
	}
	return nil, errBadID
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcNotification struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type joinRoomParams struct {
	User         string `json:"user" validate:"required,max=36"`
	Room         string `json:"room" validate:"required"`
	DataChannels bool   `json:"dataChannels"`
}

type sendMessageParams struct {
	Message     string `json:"message" validate:"required"`
	UserMessage string `json:"userMessage" validate:"required"`
	RoomMessage string `json:"roomMessage" validate:"required"`
}

type publishVideoParams struct {
	SDPOffer   string `json:"sdpOffer" validate:"required"`
	DoLoopback bool   `json:"doLoopback"`
}

type receiveVideoParams struct {
	Sender   string `json:"sender" validate:"required"`
	SDPOffer string `json:"sdpOffer" validate:"required"`
}

type unsubscribeParams struct {
	Sender string `json:"sender" validate:"required"`
}

type candidateParams struct {
	EndpointName  string `json:"endpointName" validate:"required"`
	Candidate     string `json:"candidate" validate:"required"`
	SDPMid        string `json:"sdpMid"`
	SDPMLineIndex uint16 `json:"sdpMLineIndex"`
}

type emptyParams struct{}

type pongResult struct {
	Value string `json:"value"`
}

package http

import (
	"net/http"

	"github.com/dkeye/rooms/internal/app/orch"
	"github.com/dkeye/rooms/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type createRoomRequest struct {
	Room string `json:"room" binding:"required,max=64"`
}

type muteRequest struct {
	Type string `json:"type"`
}

type adminHandler struct {
	orch *orch.Orchestrator
}

// RegisterAdmin mounts the room administration endpoints on api.
func RegisterAdmin(api *gin.RouterGroup, o *orch.Orchestrator) {
	h := &adminHandler{orch: o}

	rooms := api.Group("/rooms")
	rooms.GET("", h.listRooms)
	rooms.POST("", h.createRoom)
	rooms.DELETE("/:room", h.closeRoom)
	rooms.GET("/:room/participants", h.roomList(o.Participants))
	rooms.GET("/:room/publishers", h.roomList(o.Publishers))
	rooms.GET("/:room/subscribers", h.roomList(o.Subscribers))

	participants := api.Group("/participants")
	participants.GET("/:pid", h.participantInfo)
	participants.DELETE("/:pid", h.evict)
	participants.GET("/:pid/publishers", h.peerList(o.PeerPublishers))
	participants.GET("/:pid/subscribers", h.peerList(o.PeerSubscribers))
	participants.POST("/:pid/mute", h.mutePublished)
	participants.DELETE("/:pid/mute", h.unmutePublished)
	participants.POST("/:pid/subscriptions/:remote/mute", h.muteSubscribed)
	participants.DELETE("/:pid/subscriptions/:remote/mute", h.unmuteSubscribed)
}

func statusOf(code domain.Code) int {
	switch code {
	case domain.CodeUserNotFound, domain.CodeRoomNotFound:
		return http.StatusNotFound
	case domain.CodeExistingUser, domain.CodeRoomCannotCreate, domain.CodeRoomClosed,
		domain.CodeUserNotStreaming, domain.CodeMediaMute, domain.CodeMediaEndpoint:
		return http.StatusConflict
	case domain.CodeTransportRequest:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	code := domain.CodeOf(err)
	status := statusOf(code)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("module", "adapters.http").Str("path", c.FullPath()).Msg("admin request failed")
	}
	c.JSON(status, gin.H{"code": int(code), "error": err.Error()})
}

func pidParam(c *gin.Context) domain.ParticipantID {
	return domain.ParticipantID(c.Param("pid"))
}

// muteType reads the optional mute type from the body. An empty body mutes everything.
func muteType(c *gin.Context) (domain.MutedMediaType, bool) {
	var req muteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, domain.NewError(domain.CodeTransportRequest, "bad body: %v", err))
			return "", false
		}
	}
	mt, err := domain.ParseMutedMediaType(req.Type)
	if err != nil {
		fail(c, domain.NewError(domain.CodeTransportRequest, "%v", err))
		return "", false
	}
	return mt, true
}

func (h *adminHandler) listRooms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rooms": h.orch.Rooms()})
}

func (h *adminHandler) createRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.NewError(domain.CodeTransportRequest, "bad body: %v", err))
		return
	}
	room := domain.RoomName(req.Room)
	if err := h.orch.CreateRoom(domain.NewSessionInfo("", room)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"room": room})
}

func (h *adminHandler) closeRoom(c *gin.Context) {
	participants, err := h.orch.CloseRoom(domain.RoomName(c.Param("room")))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"participants": participants})
}

func (h *adminHandler) roomList(list func(domain.RoomName) ([]domain.Participant, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		participants, err := list(domain.RoomName(c.Param("room")))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"participants": participants})
	}
}

func (h *adminHandler) peerList(list func(domain.ParticipantID) ([]domain.Participant, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		participants, err := list(pidParam(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"participants": participants})
	}
}

func (h *adminHandler) participantInfo(c *gin.Context) {
	info, err := h.orch.ParticipantInfo(pidParam(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *adminHandler) evict(c *gin.Context) {
	if err := h.orch.EvictParticipant(pidParam(c)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *adminHandler) mutePublished(c *gin.Context) {
	mt, ok := muteType(c)
	if !ok {
		return
	}
	if err := h.orch.MutePublishedMedia(mt, pidParam(c)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *adminHandler) unmutePublished(c *gin.Context) {
	if err := h.orch.UnmutePublishedMedia(pidParam(c)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *adminHandler) muteSubscribed(c *gin.Context) {
	mt, ok := muteType(c)
	if !ok {
		return
	}
	if err := h.orch.MuteSubscribedMedia(c.Param("remote"), mt, pidParam(c)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *adminHandler) unmuteSubscribed(c *gin.Context) {
	if err := h.orch.UnmuteSubscribedMedia(c.Param("remote"), pidParam(c)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

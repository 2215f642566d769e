package app

import (
	"sync"

	"github.com/dkeye/rooms/internal/domain"
	"github.com/rs/zerolog/log"
)

// Registry indexes which room a participant is bound to.
type Registry struct {
	mu    sync.RWMutex
	rooms map[domain.ParticipantID]domain.RoomName
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[domain.ParticipantID]domain.RoomName),
	}
}

// Claim binds pid to room unless pid is already bound somewhere.
func (r *Registry) Claim(pid domain.ParticipantID, room domain.RoomName) (domain.RoomName, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.rooms[pid]; ok {
		return cur, false
	}
	r.rooms[pid] = room
	log.Debug().Str("module", "app.registry").Str("pid", string(pid)).Str("room", string(room)).Msg("bound participant")
	return room, true
}

func (r *Registry) Release(pid domain.ParticipantID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, pid)
	log.Debug().Str("module", "app.registry").Str("pid", string(pid)).Msg("released participant")
}

func (r *Registry) RoomOf(pid domain.ParticipantID) (domain.RoomName, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[pid]
	return room, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

package app

import (
	"slices"
	"strings"
	"sync"

	"github.com/dkeye/rooms/internal/app/sfu"
	"github.com/dkeye/rooms/internal/core"
	"github.com/dkeye/rooms/internal/domain"
	"github.com/rs/zerolog/log"
)

// participant is the store-side state of one joined member.
type participant struct {
	id        domain.ParticipantID
	name      string
	web       bool
	streaming bool

	publisher     core.MediaConnection
	loopback      domain.LoopbackConfig
	elements      []mediaElement
	subscriptions map[string]core.MediaConnection // keyed by remote user name
}

type mediaElement struct {
	element core.MediaElement
	kind    *domain.MediaKind
}

func (p *participant) view() domain.Participant {
	return domain.Participant{ID: p.id, Name: p.name, Streaming: p.streaming}
}

// room is guarded by its own mutex; calls on different rooms never contend.
type room struct {
	name     domain.RoomName
	creator  domain.ParticipantID
	pipeline *sfu.RelayManager

	mu           sync.RWMutex
	closed       bool
	participants map[domain.ParticipantID]*participant
}

func newRoom(name domain.RoomName, creator domain.ParticipantID) *room {
	return &room{
		name:         name,
		creator:      creator,
		pipeline:     sfu.NewRelayManager(name),
		participants: make(map[domain.ParticipantID]*participant),
	}
}

func (r *room) byName(name string) *participant {
	for _, p := range r.participants {
		if p.name == name {
			return p
		}
	}
	return nil
}

// snapshot returns participants matching keep, sorted by name. Callers hold r.mu.
func (r *room) snapshot(keep func(*participant) bool) []domain.Participant {
	out := make([]domain.Participant, 0, len(r.participants))
	for _, p := range r.participants {
		if keep == nil || keep(p) {
			out = append(out, p.view())
		}
	}
	slices.SortFunc(out, func(a, b domain.Participant) int { return strings.Compare(a.Name, b.Name) })
	return out
}

type RoomManager struct {
	mu     sync.RWMutex
	rooms  map[domain.RoomName]*room
	closed bool
}

func NewRoomManager() *RoomManager {
	return &RoomManager{rooms: make(map[domain.RoomName]*room)}
}

func (f *RoomManager) Get(name domain.RoomName) (*room, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	r, ok := f.rooms[name]
	return r, ok
}

// GetOrCreate returns the named room, creating it if needed. It reports false
// once the manager has been drained.
func (f *RoomManager) GetOrCreate(name domain.RoomName, creator domain.ParticipantID) (*room, bool) {
	f.mu.RLock()
	r, ok := f.rooms[name]
	closed := f.closed
	f.mu.RUnlock()
	if ok || closed {
		return r, ok
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, false
	}
	if r, ok = f.rooms[name]; ok {
		return r, true
	}
	r = newRoom(name, creator)
	f.rooms[name] = r
	log.Info().Str("module", "app.rooms").Str("room", string(name)).Msg("room created")
	return r, true
}

// Create adds a room and reports false if one with that name already exists.
func (f *RoomManager) Create(name domain.RoomName, creator domain.ParticipantID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rooms[name]; ok || f.closed {
		return false
	}
	f.rooms[name] = newRoom(name, creator)
	log.Info().Str("module", "app.rooms").Str("room", string(name)).Msg("room created")
	return true
}

// Remove drops the entry only if it still points at r.
func (f *RoomManager) Remove(r *room) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cur, ok := f.rooms[r.name]; ok && cur == r {
		delete(f.rooms, r.name)
		log.Info().Str("module", "app.rooms").Str("room", string(r.name)).Msg("room removed")
	}
}

func (f *RoomManager) List() []domain.RoomInfo {
	f.mu.RLock()
	all := make([]*room, 0, len(f.rooms))
	for _, r := range f.rooms {
		all = append(all, r)
	}
	f.mu.RUnlock()

	out := make([]domain.RoomInfo, 0, len(all))
	for _, r := range all {
		r.mu.RLock()
		out = append(out, domain.RoomInfo{Name: r.name, ParticipantCount: len(r.participants)})
		r.mu.RUnlock()
	}
	slices.SortFunc(out, func(a, b domain.RoomInfo) int { return strings.Compare(string(a.Name), string(b.Name)) })
	return out
}

// Drain removes and returns every room. No room can be created afterwards.
func (f *RoomManager) Drain() []*room {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	out := make([]*room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, r)
	}
	f.rooms = make(map[domain.RoomName]*room)
	return out
}

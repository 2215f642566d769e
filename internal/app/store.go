package app

import (
	"context"
	"sync"

	"github.com/dkeye/rooms/internal/core"
	"github.com/dkeye/rooms/internal/domain"
	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
)

// Store is the in-memory SessionStore. Each operation locks at most one room.
type Store struct {
	registry *Registry
	rooms    *RoomManager

	media  core.MediaFactory
	events core.MediaEvents

	ctx    context.Context
	cancel context.CancelFunc

	closeMu sync.Mutex
	closed  bool
}

var _ core.SessionStore = (*Store)(nil)

func NewStore(parent context.Context, media core.MediaFactory, events core.MediaEvents) *Store {
	ctx, cancel := context.WithCancel(parent)
	return &Store{
		registry: NewRegistry(),
		rooms:    NewRoomManager(),
		media:    media,
		events:   events,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func errClosed() error {
	return domain.NewError(domain.CodeRoomClosed, "session store is closed")
}

// locate resolves pid to its room and participant and locks the room.
// The returned unlock must be called exactly once.
func (s *Store) locate(pid domain.ParticipantID, write bool) (*room, *participant, func(), error) {
	name, ok := s.registry.RoomOf(pid)
	if !ok {
		return nil, nil, nil, domain.NewError(domain.CodeUserNotFound, "participant %q is not in any room", pid)
	}
	r, ok := s.rooms.Get(name)
	if !ok {
		return nil, nil, nil, domain.NewError(domain.CodeRoomNotFound, "room %q not found", name)
	}
	unlock := r.mu.RUnlock
	if write {
		r.mu.Lock()
		unlock = r.mu.Unlock
	} else {
		r.mu.RLock()
	}
	if r.closed {
		unlock()
		return nil, nil, nil, domain.NewError(domain.CodeRoomClosed, "room %q is closed", name)
	}
	p, ok := r.participants[pid]
	if !ok {
		unlock()
		return nil, nil, nil, domain.NewError(domain.CodeUserNotFound, "participant %q not found in room %q", pid, name)
	}
	return r, p, unlock, nil
}

// lockRoom read-locks a room by name.
func (s *Store) lockRoom(name domain.RoomName) (*room, error) {
	r, ok := s.rooms.Get(name)
	if !ok {
		return nil, domain.NewError(domain.CodeRoomNotFound, "room %q not found", name)
	}
	r.mu.RLock()
	if r.closed {
		r.mu.RUnlock()
		return nil, domain.NewError(domain.CodeRoomClosed, "room %q is closed", name)
	}
	return r, nil
}

// JoinRoom adds the participant, creating the room on first join, and returns
// the participants that were already there.
func (s *Store) JoinRoom(
	userName string,
	roomName domain.RoomName,
	webParticipant bool,
	info domain.SessionInfo,
	pid domain.ParticipantID,
) ([]domain.Participant, error) {
	if s.IsClosed() {
		return nil, errClosed()
	}
	if err := domain.ValidateUsername(userName); err != nil {
		return nil, domain.NewError(domain.CodeUserGeneric, "invalid user name %q: %v", userName, err)
	}
	if roomName == "" {
		return nil, domain.NewError(domain.CodeRoomCannotCreate, "empty room name")
	}
	if cur, ok := s.registry.Claim(pid, roomName); !ok {
		return nil, domain.NewError(domain.CodeExistingUser, "participant %q already joined room %q", pid, cur)
	}

	for {
		r, ok := s.rooms.GetOrCreate(roomName, info.ParticipantID)
		if !ok {
			s.registry.Release(pid)
			return nil, errClosed()
		}
		r.mu.Lock()
		if r.closed {
			// Lost a race with the last leaver; the next GetOrCreate makes a fresh room.
			r.mu.Unlock()
			s.rooms.Remove(r)
			continue
		}
		if r.byName(userName) != nil {
			r.mu.Unlock()
			s.registry.Release(pid)
			return nil, domain.NewError(domain.CodeExistingUser, "user %q already exists in room %q", userName, roomName)
		}
		existing := r.snapshot(nil)
		r.participants[pid] = &participant{
			id:            pid,
			name:          userName,
			web:           webParticipant,
			subscriptions: make(map[string]core.MediaConnection),
		}
		r.mu.Unlock()
		log.Info().Str("module", "app.store").Str("pid", string(pid)).Str("user", userName).Str("room", string(roomName)).Msg("participant joined")
		return existing, nil
	}
}

// LeaveRoom removes the participant and every media link touching it. The
// room is closed when its last participant leaves.
func (s *Store) LeaveRoom(pid domain.ParticipantID) ([]domain.Participant, error) {
	if s.IsClosed() {
		return nil, errClosed()
	}
	r, p, unlock, err := s.locate(pid, true)
	if err != nil {
		return nil, err
	}
	s.dropParticipant(r, p)
	remaining := r.snapshot(nil)
	empty := len(r.participants) == 0
	if empty {
		r.closed = true
	}
	unlock()

	s.registry.Release(pid)
	if empty {
		r.pipeline.Close()
		s.rooms.Remove(r)
	}
	log.Info().Str("module", "app.store").Str("pid", string(pid)).Str("room", string(r.name)).Int("remaining", len(remaining)).Msg("participant left")
	return remaining, nil
}

// dropParticipant releases p's media and everyone's subscriptions to p.
// Callers hold r.mu for writing.
func (s *Store) dropParticipant(r *room, p *participant) {
	delete(r.participants, p.id)
	if err := s.releaseMedia(r, p); err != nil {
		log.Warn().Err(err).Str("module", "app.store").Str("pid", string(p.id)).Msg("release media")
	}
	for _, other := range r.participants {
		if conn, ok := other.subscriptions[p.name]; ok {
			delete(other.subscriptions, p.name)
			if err := release(conn); err != nil {
				log.Warn().Err(err).Str("module", "app.store").Str("pid", string(other.id)).Msg("release subscription")
			}
		}
	}
}

// releaseMedia closes p's publisher and subscriber endpoints.
func (s *Store) releaseMedia(r *room, p *participant) error {
	var errs error
	r.pipeline.StopRelay(p.id)
	if p.publisher != nil {
		errs = multierr.Append(errs, release(p.publisher))
		p.publisher = nil
	}
	p.streaming = false
	for remote, conn := range p.subscriptions {
		if sender := r.byName(remote); sender != nil {
			r.pipeline.RetireSubscriber(sender.id, p.id)
		}
		errs = multierr.Append(errs, release(conn))
		delete(p.subscriptions, remote)
	}
	return errs
}

// release closes a connection without triggering its failure callback.
func release(conn core.MediaConnection) error {
	conn.OnClosed(nil)
	if conn.IsClosed() {
		return nil
	}
	return conn.Close()
}

func (s *Store) RoomName(pid domain.ParticipantID) (domain.RoomName, error) {
	name, ok := s.registry.RoomOf(pid)
	if !ok {
		return "", domain.NewError(domain.CodeUserNotFound, "participant %q is not in any room", pid)
	}
	return name, nil
}

func (s *Store) ParticipantName(pid domain.ParticipantID) (string, error) {
	info, err := s.ParticipantInfo(pid)
	if err != nil {
		return "", err
	}
	return info.Name, nil
}

func (s *Store) ParticipantInfo(pid domain.ParticipantID) (domain.Participant, error) {
	_, p, unlock, err := s.locate(pid, false)
	if err != nil {
		return domain.Participant{}, err
	}
	defer unlock()
	return p.view(), nil
}

func (s *Store) Rooms() []domain.RoomName {
	infos := s.rooms.List()
	out := make([]domain.RoomName, 0, len(infos))
	for _, info := range infos {
		out = append(out, info.Name)
	}
	return out
}

func (s *Store) roomSnapshot(name domain.RoomName, keep func(r *room, p *participant) bool) ([]domain.Participant, error) {
	r, err := s.lockRoom(name)
	if err != nil {
		return nil, err
	}
	defer r.mu.RUnlock()
	return r.snapshot(func(p *participant) bool { return keep == nil || keep(r, p) }), nil
}

func (s *Store) Participants(name domain.RoomName) ([]domain.Participant, error) {
	return s.roomSnapshot(name, nil)
}

func (s *Store) Publishers(name domain.RoomName) ([]domain.Participant, error) {
	return s.roomSnapshot(name, func(_ *room, p *participant) bool { return p.streaming })
}

func (s *Store) Subscribers(name domain.RoomName) ([]domain.Participant, error) {
	return s.roomSnapshot(name, func(_ *room, p *participant) bool { return len(p.subscriptions) > 0 })
}

// PeerPublishers lists the participants pid is subscribed to.
func (s *Store) PeerPublishers(pid domain.ParticipantID) ([]domain.Participant, error) {
	r, p, unlock, err := s.locate(pid, false)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return r.snapshot(func(other *participant) bool {
		_, ok := p.subscriptions[other.name]
		return ok && other.id != p.id
	}), nil
}

// PeerSubscribers lists the participants subscribed to pid.
func (s *Store) PeerSubscribers(pid domain.ParticipantID) ([]domain.Participant, error) {
	r, p, unlock, err := s.locate(pid, false)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return r.snapshot(func(other *participant) bool {
		_, ok := other.subscriptions[p.name]
		return ok && other.id != p.id
	}), nil
}

func (s *Store) CreateRoom(info domain.SessionInfo) error {
	if s.IsClosed() {
		return errClosed()
	}
	if info.RoomName == "" {
		return domain.NewError(domain.CodeRoomCannotCreate, "empty room name")
	}
	if !s.rooms.Create(info.RoomName, info.ParticipantID) {
		return domain.NewError(domain.CodeRoomCannotCreate, "room %q already exists", info.RoomName)
	}
	return nil
}

// CloseRoom tears the room down and returns the members it had at that moment.
func (s *Store) CloseRoom(name domain.RoomName) ([]domain.Participant, error) {
	r, ok := s.rooms.Get(name)
	if !ok {
		return nil, domain.NewError(domain.CodeRoomNotFound, "room %q not found", name)
	}
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, domain.NewError(domain.CodeRoomClosed, "room %q is already closed", name)
	}
	members, err := s.closeLocked(r)
	r.mu.Unlock()

	r.pipeline.Close()
	s.rooms.Remove(r)
	if err != nil {
		log.Warn().Err(err).Str("module", "app.store").Str("room", string(name)).Msg("room closed with media errors")
	}
	return members, nil
}

// closeLocked marks r closed and releases every member. Callers hold r.mu.
func (s *Store) closeLocked(r *room) ([]domain.Participant, error) {
	members := r.snapshot(nil)
	var errs error
	for _, p := range r.participants {
		errs = multierr.Append(errs, s.releaseMedia(r, p))
		s.registry.Release(p.id)
	}
	r.participants = make(map[domain.ParticipantID]*participant)
	r.closed = true
	return members, errs
}

func (s *Store) Pipeline(pid domain.ParticipantID) (core.MediaPipeline, error) {
	r, _, unlock, err := s.locate(pid, false)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return r.pipeline, nil
}

func (s *Store) IsClosed() bool {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	return s.closed
}

// Close releases every room. Calls after the first are no-ops.
func (s *Store) Close() error {
	s.closeMu.Lock()
	if s.closed {
		s.closeMu.Unlock()
		return nil
	}
	s.closed = true
	s.closeMu.Unlock()

	var errs error
	for _, r := range s.rooms.Drain() {
		r.mu.Lock()
		if !r.closed {
			_, err := s.closeLocked(r)
			errs = multierr.Append(errs, err)
		}
		r.mu.Unlock()
		r.pipeline.Close()
	}
	s.cancel()
	log.Info().Str("module", "app.store").Msg("session store closed")
	return errs
}

// Package orch coordinates client requests over the session store. It holds
// no session state of its own and reports exactly one outcome per request.
package orch

import (
	"github.com/dkeye/rooms/internal/app"
	"github.com/dkeye/rooms/internal/core"
	"github.com/dkeye/rooms/internal/domain"
	"github.com/rs/zerolog/log"
)

type Orchestrator struct {
	Store    core.SessionStore
	Notifier core.Notifier
	Policy   app.Policy
}

func New(store core.SessionStore, notifier core.Notifier, policy app.Policy) *Orchestrator {
	return &Orchestrator{Store: store, Notifier: notifier, Policy: policy}
}

// guard runs step and turns a panic into a generic failure.
func guard[T any](op string, step func() (T, error)) (res T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			res = zero
			err = domain.NewError(domain.CodeGeneric, "%s: unexpected failure: %v", op, r)
			log.Error().Str("module", "orch").Str("op", op).Interface("panic", r).Msg("recovered")
		}
	}()
	return step()
}

// exec is guard for steps without a result.
func exec(op string, step func() error) error {
	_, err := guard(op, func() (struct{}, error) { return struct{}{}, step() })
	return err
}

// identity is the best-effort description of a requester.
type identity struct {
	name string
	room domain.RoomName
}

// identify resolves the participant's name and room. Lookup failures leave
// the fields empty.
func (o *Orchestrator) identify(pid domain.ParticipantID) identity {
	var id identity
	if name, err := guard("lookup name", func() (string, error) { return o.Store.ParticipantName(pid) }); err == nil {
		id.name = name
	}
	if room, err := guard("lookup room", func() (domain.RoomName, error) { return o.Store.RoomName(pid) }); err == nil {
		id.room = room
	}
	return id
}

// enrich fetches the room's participants after a successful primary step.
// A failure yields no context rather than a failed outcome.
func (o *Orchestrator) enrich(op string, room domain.RoomName) []domain.Participant {
	participants, err := guard(op+" context", func() ([]domain.Participant, error) { return o.Store.Participants(room) })
	if err != nil {
		log.Warn().Err(err).Str("module", "orch").Str("op", op).Str("room", string(room)).Msg("context unavailable")
		return nil
	}
	return participants
}

func logFailure(op string, req domain.Request, id identity, err error) {
	log.Warn().
		Err(err).
		Str("module", "orch").
		Str("op", op).
		Str("pid", string(req.ParticipantID)).
		Str("user", id.name).
		Str("room", string(id.room)).
		Stringer("code", domain.CodeOf(err)).
		Msg("request failed")
}

// OnBackPressure applies the policy to a participant whose outbound queue overflowed.
func (o *Orchestrator) OnBackPressure(pid domain.ParticipantID, dropped int) app.BackpressureAction {
	if o.Policy == nil {
		return app.NoAction
	}
	action := o.Policy.OnBackPressure(pid, dropped)
	switch action {
	case app.KickMember:
		if err := o.EvictParticipant(pid); err != nil {
			log.Warn().Err(err).Str("module", "orch").Str("pid", string(pid)).Msg("evict slow participant")
		}
	case app.DropFrame, app.NoAction:
	}
	return action
}

// Close closes the store unless it is closed already.
func (o *Orchestrator) Close() error {
	if o.Store.IsClosed() {
		return nil
	}
	return o.Store.Close()
}

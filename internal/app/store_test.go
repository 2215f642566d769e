package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dkeye/rooms/internal/domain"
	"github.com/dkeye/rooms/internal/mocks"
	"github.com/pion/webrtc/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	pidA     domain.ParticipantID = "pid-a"
	pidB     domain.ParticipantID = "pid-b"
	pidC     domain.ParticipantID = "pid-c"
	testRoom domain.RoomName      = "room1"
)

var testCodecs = map[domain.MediaKind]webrtc.RTPCodecCapability{
	domain.MediaKindAudio: {MimeType: webrtc.MimeTypeOpus, ClockRate: 48000, Channels: 2},
	domain.MediaKindVideo: {MimeType: webrtc.MimeTypeVP8, ClockRate: 90000},
}

// newTestConn mocks a started connection that receives the given kinds.
func newTestConn(ctrl *gomock.Controller, kinds ...domain.MediaKind) *mocks.MockMediaConnection {
	codecs := make(map[domain.MediaKind]webrtc.RTPCodecCapability, len(kinds))
	for _, k := range kinds {
		codecs[k] = testCodecs[k]
	}
	c := mocks.NewMockMediaConnection(ctrl)
	c.EXPECT().IncomingCodecs().Return(codecs).AnyTimes()
	c.EXPECT().OnICECandidate(gomock.Any()).AnyTimes()
	c.EXPECT().OnClosed(gomock.Any()).AnyTimes()
	c.EXPECT().OnTrack(gomock.Any()).AnyTimes()
	c.EXPECT().Start(gomock.Any()).Return(nil).AnyTimes()
	c.EXPECT().IsClosed().Return(false).AnyTimes()
	return c
}

func newTestStore(t *testing.T) (*Store, *mocks.MockMediaFactory, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockMediaFactory(ctrl)
	s := NewStore(context.Background(), factory, nil)
	t.Cleanup(func() { _ = s.Close() })
	return s, factory, ctrl
}

func join(t *testing.T, s *Store, name string, pid domain.ParticipantID) []domain.Participant {
	t.Helper()
	existing, err := s.JoinRoom(name, testRoom, true, domain.NewSessionInfo(pid, testRoom), pid)
	require.NoError(t, err)
	return existing
}

func TestStore_JoinLeave(t *testing.T) {
	s, _, _ := newTestStore(t)

	require.Empty(t, join(t, s, "alice", pidA))
	require.Equal(t, []domain.Participant{{ID: pidA, Name: "alice"}}, join(t, s, "bob", pidB))

	_, err := s.JoinRoom("alice", testRoom, true, domain.NewSessionInfo(pidC, testRoom), pidC)
	require.True(t, domain.IsCode(err, domain.CodeExistingUser))
	_, err = s.RoomName(pidC)
	require.True(t, domain.IsCode(err, domain.CodeUserNotFound))

	_, err = s.JoinRoom("alice2", "other", true, domain.NewSessionInfo(pidA, "other"), pidA)
	require.True(t, domain.IsCode(err, domain.CodeExistingUser))

	remaining, err := s.LeaveRoom(pidA)
	require.NoError(t, err)
	require.Equal(t, []domain.Participant{{ID: pidB, Name: "bob"}}, remaining)

	_, err = s.LeaveRoom(pidA)
	require.True(t, domain.IsCode(err, domain.CodeUserNotFound))

	remaining, err = s.LeaveRoom(pidB)
	require.NoError(t, err)
	require.Empty(t, remaining)
	require.Empty(t, s.Rooms())
}

func TestStore_JoinValidation(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.JoinRoom("", testRoom, true, domain.NewSessionInfo(pidA, testRoom), pidA)
	require.True(t, domain.IsCode(err, domain.CodeUserGeneric))

	_, err = s.JoinRoom("alice", "", true, domain.NewSessionInfo(pidA, ""), pidA)
	require.True(t, domain.IsCode(err, domain.CodeRoomCannotCreate))
}

func TestStore_CreateRoom(t *testing.T) {
	s, _, _ := newTestStore(t)

	require.NoError(t, s.CreateRoom(domain.NewSessionInfo("", testRoom)))
	err := s.CreateRoom(domain.NewSessionInfo("", testRoom))
	require.True(t, domain.IsCode(err, domain.CodeRoomCannotCreate))
	require.Equal(t, []domain.RoomName{testRoom}, s.Rooms())

	participants, err := s.Participants(testRoom)
	require.NoError(t, err)
	require.Empty(t, participants)

	_, err = s.Participants("missing")
	require.True(t, domain.IsCode(err, domain.CodeRoomNotFound))
}

func TestStore_PublishSubscribe(t *testing.T) {
	s, factory, ctrl := newTestStore(t)
	join(t, s, "alice", pidA)
	join(t, s, "bob", pidB)

	pub := newTestConn(ctrl, domain.MediaKindAudio)
	sub := newTestConn(ctrl)
	factory.EXPECT().NewConnection(pidA, "alice").Return(pub, nil)
	factory.EXPECT().NewConnection(pidB, "alice").Return(sub, nil)
	pub.EXPECT().ApplyOfferAndCreateAnswer("offer-a").Return("answer-a", nil)
	sub.EXPECT().AddLocalTrack(gomock.Any()).Return(nil, nil)
	sub.EXPECT().ApplyOfferAndCreateAnswer("offer-b").Return("answer-b", nil)

	answer, err := s.PublishMedia(pidA, true, "offer-a", domain.LoopbackConfig{})
	require.NoError(t, err)
	require.Equal(t, "answer-a", answer)

	publishers, err := s.Publishers(testRoom)
	require.NoError(t, err)
	require.Equal(t, []domain.Participant{{ID: pidA, Name: "alice", Streaming: true}}, publishers)

	answer, err = s.Subscribe("alice", "offer-b", pidB)
	require.NoError(t, err)
	require.Equal(t, "answer-b", answer)

	subscribers, err := s.Subscribers(testRoom)
	require.NoError(t, err)
	require.Equal(t, []domain.Participant{{ID: pidB, Name: "bob"}}, subscribers)

	peers, err := s.PeerPublishers(pidB)
	require.NoError(t, err)
	require.Equal(t, []domain.Participant{{ID: pidA, Name: "alice", Streaming: true}}, peers)

	peers, err = s.PeerSubscribers(pidA)
	require.NoError(t, err)
	require.Equal(t, []domain.Participant{{ID: pidB, Name: "bob"}}, peers)

	_, err = s.Subscribe("ghost", "offer", pidB)
	require.True(t, domain.IsCode(err, domain.CodeUserNotFound))
	_, err = s.Subscribe("bob", "offer", pidA)
	require.True(t, domain.IsCode(err, domain.CodeUserNotStreaming))

	pub.EXPECT().Close().Return(nil)
	sub.EXPECT().Close().Return(nil)
	require.NoError(t, s.UnpublishMedia(pidA))

	subscribers, err = s.Subscribers(testRoom)
	require.NoError(t, err)
	require.Empty(t, subscribers)

	err = s.UnpublishMedia(pidA)
	require.True(t, domain.IsCode(err, domain.CodeUserNotStreaming))
}

func TestStore_PublishNegotiationFailure(t *testing.T) {
	s, factory, ctrl := newTestStore(t)
	join(t, s, "alice", pidA)

	pub := newTestConn(ctrl)
	factory.EXPECT().NewConnection(pidA, "alice").Return(pub, nil)
	pub.EXPECT().ApplyOfferAndCreateAnswer("garbage").Return("", errors.New("invalid sdp"))
	pub.EXPECT().Close().Return(nil)

	_, err := s.PublishMedia(pidA, true, "garbage", domain.LoopbackConfig{})
	require.True(t, domain.IsCode(err, domain.CodeMediaSDP))

	info, err := s.ParticipantInfo(pidA)
	require.NoError(t, err)
	require.False(t, info.Streaming)
}

func TestStore_EndpointFailure(t *testing.T) {
	s, factory, _ := newTestStore(t)
	join(t, s, "alice", pidA)

	factory.EXPECT().NewConnection(pidA, "alice").Return(nil, errors.New("no ports"))

	_, err := s.PublishMedia(pidA, true, "offer", domain.LoopbackConfig{})
	require.True(t, domain.IsCode(err, domain.CodeMediaEndpoint))
}

func TestStore_GeneratedOfferThenAnswer(t *testing.T) {
	s, factory, ctrl := newTestStore(t)
	join(t, s, "alice", pidA)

	pub := newTestConn(ctrl)
	factory.EXPECT().NewConnection(pidA, "alice").Return(pub, nil).Times(1)
	pub.EXPECT().CreateAndSetOffer().Return("server-offer", nil)
	pub.EXPECT().ApplyAnswer("client-answer").Return(nil)

	offer, err := s.GeneratePublishOffer(pidA)
	require.NoError(t, err)
	require.Equal(t, "server-offer", offer)

	answer, err := s.PublishMedia(pidA, false, "client-answer", domain.LoopbackConfig{})
	require.NoError(t, err)
	require.Equal(t, "client-answer", answer)

	pub.EXPECT().Close().Return(nil)
}

func TestStore_LoopbackSource(t *testing.T) {
	s, factory, ctrl := newTestStore(t)
	join(t, s, "alice", pidA)

	filter := mocks.NewMockMediaElement(ctrl)
	filter.EXPECT().ElementID().Return("filter").AnyTimes()
	loopback := domain.LoopbackConfig{Enabled: true, AlternativeSource: "filter"}

	_, err := s.PublishMedia(pidA, true, "offer", loopback)
	require.True(t, domain.IsCode(err, domain.CodeMediaEndpoint))

	pub := newTestConn(ctrl)
	factory.EXPECT().NewConnection(pidA, "alice").Return(pub, nil)
	pub.EXPECT().ApplyOfferAndCreateAnswer("offer").Return("answer", nil)

	_, err = s.PublishMedia(pidA, true, "offer", loopback, filter)
	require.NoError(t, err)

	err = s.AddMediaElement(pidA, filter, nil)
	require.True(t, domain.IsCode(err, domain.CodeMediaEndpoint))
	require.NoError(t, s.RemoveMediaElement(pidA, filter))
	err = s.RemoveMediaElement(pidA, filter)
	require.True(t, domain.IsCode(err, domain.CodeMediaEndpoint))

	pub.EXPECT().Close().Return(nil)
}

func TestStore_OnIceCandidate(t *testing.T) {
	s, factory, ctrl := newTestStore(t)
	join(t, s, "alice", pidA)
	cand := domain.Candidate{Candidate: "candidate:1"}

	err := s.OnIceCandidate("alice", cand, pidA)
	require.True(t, domain.IsCode(err, domain.CodeMediaEndpoint))

	pub := newTestConn(ctrl)
	factory.EXPECT().NewConnection(pidA, "alice").Return(pub, nil)
	pub.EXPECT().ApplyOfferAndCreateAnswer("offer").Return("answer", nil)
	_, err = s.PublishMedia(pidA, true, "offer", domain.LoopbackConfig{})
	require.NoError(t, err)

	pub.EXPECT().AddICECandidate(cand).Return(nil)
	require.NoError(t, s.OnIceCandidate("alice", cand, pidA))

	pub.EXPECT().AddICECandidate(cand).Return(errors.New("bad candidate"))
	err = s.OnIceCandidate("alice", cand, pidA)
	require.True(t, domain.IsCode(err, domain.CodeMediaWebRTC))

	pub.EXPECT().Close().Return(nil)
}

func TestStore_Mute(t *testing.T) {
	s, factory, ctrl := newTestStore(t)
	join(t, s, "alice", pidA)
	join(t, s, "bob", pidB)

	err := s.MutePublishedMedia(domain.MuteAll, pidA)
	require.True(t, domain.IsCode(err, domain.CodeUserNotStreaming))
	err = s.MuteSubscribedMedia("alice", domain.MuteAudio, pidB)
	require.True(t, domain.IsCode(err, domain.CodeMediaMute))

	pub := newTestConn(ctrl, domain.MediaKindAudio, domain.MediaKindVideo)
	sub := newTestConn(ctrl)
	factory.EXPECT().NewConnection(pidA, "alice").Return(pub, nil)
	factory.EXPECT().NewConnection(pidB, "alice").Return(sub, nil)
	pub.EXPECT().ApplyOfferAndCreateAnswer(gomock.Any()).Return("answer", nil)
	sub.EXPECT().AddLocalTrack(gomock.Any()).Return(nil, nil).Times(2)
	sub.EXPECT().ApplyOfferAndCreateAnswer(gomock.Any()).Return("answer", nil)
	_, err = s.PublishMedia(pidA, true, "offer", domain.LoopbackConfig{})
	require.NoError(t, err)
	_, err = s.Subscribe("alice", "offer", pidB)
	require.NoError(t, err)

	require.NoError(t, s.MutePublishedMedia(domain.MuteVideo, pidA))
	require.NoError(t, s.UnmutePublishedMedia(pidA))
	require.NoError(t, s.MuteSubscribedMedia("alice", domain.MuteAudio, pidB))
	require.NoError(t, s.UnmuteSubscribedMedia("alice", pidB))

	err = s.UnmuteSubscribedMedia("ghost", pidB)
	require.True(t, domain.IsCode(err, domain.CodeUserNotFound))

	sub.EXPECT().Close().Return(nil)
	require.NoError(t, s.Unsubscribe("alice", pidB))
	err = s.Unsubscribe("alice", pidB)
	require.True(t, domain.IsCode(err, domain.CodeMediaEndpoint))

	pub.EXPECT().Close().Return(nil)
}

func TestStore_CloseRoom(t *testing.T) {
	s, _, _ := newTestStore(t)
	join(t, s, "alice", pidA)
	join(t, s, "bob", pidB)

	members, err := s.CloseRoom(testRoom)
	require.NoError(t, err)
	require.Equal(t, []domain.Participant{{ID: pidA, Name: "alice"}, {ID: pidB, Name: "bob"}}, members)

	_, err = s.ParticipantName(pidA)
	require.True(t, domain.IsCode(err, domain.CodeUserNotFound))
	_, err = s.CloseRoom(testRoom)
	require.True(t, domain.IsCode(err, domain.CodeRoomNotFound))

	require.Empty(t, join(t, s, "alice", pidA))
}

func TestStore_PublisherFailureStopsStreaming(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockMediaFactory(ctrl)
	events := mocks.NewMockMediaEvents(ctrl)
	s := NewStore(context.Background(), factory, events)
	join(t, s, "alice", pidA)
	join(t, s, "bob", pidB)

	var onClosed func()
	var closed atomic.Bool
	pub := mocks.NewMockMediaConnection(ctrl)
	pub.EXPECT().OnICECandidate(gomock.Any()).AnyTimes()
	pub.EXPECT().OnTrack(gomock.Any()).AnyTimes()
	pub.EXPECT().OnClosed(gomock.Any()).Do(func(f func()) {
		if f != nil {
			onClosed = f
		}
	}).AnyTimes()
	pub.EXPECT().IsClosed().DoAndReturn(closed.Load).AnyTimes()
	pub.EXPECT().Close().DoAndReturn(func() error {
		closed.Store(true)
		return nil
	}).Times(1)
	pub.EXPECT().Start(gomock.Any()).Return(nil)
	pub.EXPECT().ApplyOfferAndCreateAnswer("offer").Return("answer", nil)
	pub.EXPECT().IncomingCodecs().Return(testCodecs)
	factory.EXPECT().NewConnection(pidA, "alice").Return(pub, nil)

	// Given alice publishing
	_, err := s.PublishMedia(pidA, true, "offer", domain.LoopbackConfig{})
	require.NoError(t, err)
	require.NotNil(t, onClosed)

	reported := make(chan struct{})
	events.EXPECT().
		OnMediaError(testRoom, []domain.Participant{{ID: pidA, Name: "alice"}, {ID: pidB, Name: "bob"}}, gomock.Any()).
		Do(func(domain.RoomName, []domain.Participant, string) { close(reported) })

	// When her publisher endpoint dies
	onClosed()
	select {
	case <-reported:
	case <-time.After(time.Second):
		t.Fatal("media error was not reported")
	}

	// Then she is no longer streaming and nobody can subscribe to the dead source
	info, err := s.ParticipantInfo(pidA)
	require.NoError(t, err)
	require.False(t, info.Streaming)
	_, err = s.Subscribe("alice", "offer", pidB)
	require.True(t, domain.IsCode(err, domain.CodeUserNotStreaming))

	require.NoError(t, s.Close())
}

func TestStore_SubscriptionFailureDropsSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockMediaFactory(ctrl)
	events := mocks.NewMockMediaEvents(ctrl)
	s := NewStore(context.Background(), factory, events)
	t.Cleanup(func() { _ = s.Close() })
	join(t, s, "alice", pidA)
	join(t, s, "bob", pidB)

	pub := newTestConn(ctrl, domain.MediaKindAudio)
	factory.EXPECT().NewConnection(pidA, "alice").Return(pub, nil)
	pub.EXPECT().ApplyOfferAndCreateAnswer("offer-a").Return("answer-a", nil)
	pub.EXPECT().Close().Return(nil)
	_, err := s.PublishMedia(pidA, true, "offer-a", domain.LoopbackConfig{})
	require.NoError(t, err)

	var onClosed func()
	sub := mocks.NewMockMediaConnection(ctrl)
	sub.EXPECT().OnICECandidate(gomock.Any()).AnyTimes()
	sub.EXPECT().OnClosed(gomock.Any()).Do(func(f func()) {
		if f != nil {
			onClosed = f
		}
	}).AnyTimes()
	sub.EXPECT().Start(gomock.Any()).Return(nil)
	sub.EXPECT().AddLocalTrack(gomock.Any()).Return(nil, nil)
	sub.EXPECT().ApplyOfferAndCreateAnswer("offer-b").Return("answer-b", nil)
	sub.EXPECT().IsClosed().Return(true).AnyTimes()
	factory.EXPECT().NewConnection(pidB, "alice").Return(sub, nil)
	_, err = s.Subscribe("alice", "offer-b", pidB)
	require.NoError(t, err)

	reported := make(chan struct{})
	events.EXPECT().OnMediaError(testRoom, gomock.Any(), gomock.Any()).
		Do(func(domain.RoomName, []domain.Participant, string) { close(reported) })

	onClosed()
	select {
	case <-reported:
	case <-time.After(time.Second):
		t.Fatal("media error was not reported")
	}

	peers, err := s.PeerPublishers(pidB)
	require.NoError(t, err)
	require.Empty(t, peers)
	info, err := s.ParticipantInfo(pidA)
	require.NoError(t, err)
	require.True(t, info.Streaming)
}

func TestStore_Close(t *testing.T) {
	s, _, _ := newTestStore(t)
	join(t, s, "alice", pidA)

	require.False(t, s.IsClosed())
	require.NoError(t, s.Close())
	require.True(t, s.IsClosed())
	require.NoError(t, s.Close())

	_, err := s.JoinRoom("bob", testRoom, true, domain.NewSessionInfo(pidB, testRoom), pidB)
	require.True(t, domain.IsCode(err, domain.CodeRoomClosed))
	require.Empty(t, s.Rooms())

	// A join that got past the store check still cannot create a room.
	_, ok := s.rooms.GetOrCreate("late", pidB)
	require.False(t, ok)
	require.False(t, s.rooms.Create("late", pidB))
	require.Empty(t, s.Rooms())
}

func TestStore_SubscribeBeforeFirstPacket(t *testing.T) {
	s, factory, ctrl := newTestStore(t)
	join(t, s, "alice", pidA)
	join(t, s, "bob", pidB)

	pub := newTestConn(ctrl, domain.MediaKindAudio, domain.MediaKindVideo)
	sub := newTestConn(ctrl)
	factory.EXPECT().NewConnection(pidA, "alice").Return(pub, nil)
	factory.EXPECT().NewConnection(pidB, "alice").Return(sub, nil)
	pub.EXPECT().ApplyOfferAndCreateAnswer("offer-a").Return("answer-a", nil)

	// Given alice published but no RTP has reached the server yet
	_, err := s.PublishMedia(pidA, true, "offer-a", domain.LoopbackConfig{})
	require.NoError(t, err)

	// When bob subscribes right away
	sub.EXPECT().AddLocalTrack(gomock.Any()).Return(nil, nil).Times(2)
	sub.EXPECT().ApplyOfferAndCreateAnswer("offer-b").Return("answer-b", nil)
	answer, err := s.Subscribe("alice", "offer-b", pidB)

	// Then both negotiated tracks are attached and wait for media
	require.NoError(t, err)
	require.Equal(t, "answer-b", answer)
	r, ok := s.rooms.Get(testRoom)
	require.True(t, ok)
	require.True(t, r.pipeline.HasRelay(pidA))

	pub.EXPECT().Close().Return(nil)
	sub.EXPECT().Close().Return(nil)
}

func TestStore_SubscribeToPublisherWithoutMedia(t *testing.T) {
	s, factory, ctrl := newTestStore(t)
	join(t, s, "alice", pidA)
	join(t, s, "bob", pidB)

	pub := newTestConn(ctrl)
	sub := newTestConn(ctrl)
	factory.EXPECT().NewConnection(pidA, "alice").Return(pub, nil)
	factory.EXPECT().NewConnection(pidB, "alice").Return(sub, nil)
	pub.EXPECT().ApplyOfferAndCreateAnswer("offer-a").Return("answer-a", nil)
	_, err := s.PublishMedia(pidA, true, "offer-a", domain.LoopbackConfig{})
	require.NoError(t, err)

	sub.EXPECT().Close().Return(nil)
	_, err = s.Subscribe("alice", "offer-b", pidB)
	require.True(t, domain.IsCode(err, domain.CodeUserNotStreaming))

	peers, err := s.PeerPublishers(pidB)
	require.NoError(t, err)
	require.Empty(t, peers)

	pub.EXPECT().Close().Return(nil)
}

func TestStore_SelfSubscribeRejected(t *testing.T) {
	s, factory, ctrl := newTestStore(t)
	join(t, s, "alice", pidA)

	pub := newTestConn(ctrl, domain.MediaKindAudio)
	factory.EXPECT().NewConnection(pidA, "alice").Return(pub, nil).Times(1)
	pub.EXPECT().ApplyOfferAndCreateAnswer("offer").Return("answer", nil)
	_, err := s.PublishMedia(pidA, true, "offer", domain.LoopbackConfig{})
	require.NoError(t, err)

	_, err = s.Subscribe("alice", "offer", pidA)
	require.True(t, domain.IsCode(err, domain.CodeUserNotStreaming))

	// Candidates for her own name still reach the publisher.
	cand := domain.Candidate{Candidate: "candidate:1"}
	pub.EXPECT().AddICECandidate(cand).Return(nil)
	require.NoError(t, s.OnIceCandidate("alice", cand, pidA))

	pub.EXPECT().Close().Return(nil)
}

func TestStore_ConcurrentJoinLeave(t *testing.T) {
	s, _, _ := newTestStore(t)
	const workers, rounds = 8, 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			pid := domain.ParticipantID(fmt.Sprintf("pid-%d", w))
			name := fmt.Sprintf("user-%d", w)
			for i := 0; i < rounds; i++ {
				_, err := s.JoinRoom(name, testRoom, true, domain.NewSessionInfo(pid, testRoom), pid)
				if err != nil {
					t.Errorf("join %s: %v", name, err)
					return
				}
				if _, err := s.LeaveRoom(pid); err != nil {
					t.Errorf("leave %s: %v", name, err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	require.Empty(t, s.Rooms())
	require.Zero(t, s.registry.Len())
}

package domain

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	t.Run("should unwrap a wrapped room error", func(t *testing.T) {
		req := require.New(t)
		err := errors.Wrap(NewError(CodeRoomNotFound, "room %q", "r1"), "closing")

		req.Equal(CodeRoomNotFound, CodeOf(err))
		req.True(IsCode(err, CodeRoomNotFound))
		req.Contains(err.Error(), "room-not-found")
	})

	t.Run("should classify foreign errors as generic", func(t *testing.T) {
		req := require.New(t)
		req.Equal(CodeGeneric, CodeOf(errors.New("boom")))
		req.False(IsCode(nil, CodeGeneric))
	})
}

func TestParseMutedMediaType(t *testing.T) {
	req := require.New(t)

	mt, err := ParseMutedMediaType("AUDIO")
	req.NoError(err)
	req.Equal(MuteAudio, mt)
	req.True(mt.Covers(MediaKindAudio))
	req.False(mt.Covers(MediaKindVideo))

	mt, err = ParseMutedMediaType("")
	req.NoError(err)
	req.Equal(MuteAll, mt)

	_, err = ParseMutedMediaType("smell")
	req.Equal(CodeMediaMute, CodeOf(err))
}

func TestValidateUsername(t *testing.T) {
	req := require.New(t)
	req.ErrorIs(ValidateUsername(""), ErrUsernameEmpty)
	req.ErrorIs(ValidateUsername("0123456789012345678901234567890123456789"), ErrUsernameTooLong)
	req.NoError(ValidateUsername("alice"))
}

package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAudioKey(t *testing.T) {
	audioKey, err := DeriveAudioKey("speech.txt")
	require.NoError(t, err)
	assert.Equal(t, "speech.mp3", audioKey)
}

func TestDeriveAudioKey_NestedKey(t *testing.T) {
	audioKey, err := DeriveAudioKey("uploads/2024/notes from meeting.txt")
	require.NoError(t, err)
	assert.Equal(t, "uploads/2024/notes from meeting.mp3", audioKey)
}

func TestDeriveAudioKey_OnlyTrailingSuffixChanges(t *testing.T) {
	audioKey, err := DeriveAudioKey("archive.txt.txt")
	require.NoError(t, err)
	assert.Equal(t, "archive.txt.mp3", audioKey)
}

func TestDeriveAudioKey_RejectsOtherExtensions(t *testing.T) {
	_, err := DeriveAudioKey("notes.md")
	require.Error(t, err)
	assert.Equal(t, ErrorKindInvalidKey, KindOf(err))
}

func TestDeriveAudioKey_RejectsEmptyKey(t *testing.T) {
	_, err := DeriveAudioKey("")
	require.Error(t, err)
	assert.Equal(t, ErrorKindInvalidKey, KindOf(err))
}

func TestKindOf_WrappedError(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("fetching: %w", NewSourceReadError(cause))

	assert.Equal(t, ErrorKindSourceRead, KindOf(err))
	assert.True(t, errors.Is(err, cause))
}

func TestKindOf_UntaggedError(t *testing.T) {
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
}

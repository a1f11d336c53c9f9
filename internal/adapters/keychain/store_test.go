package keychain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/skillpilot/skillpilot/internal/domain"
)

func TestStore(t *testing.T) {
	keyring.MockInit()
	s := NewStore()

	_, err := s.Get("server-1")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)

	require.NoError(t, s.Set("server-1", "hunter2"))
	got, err := s.Get("server-1")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)

	require.NoError(t, s.Set("server-1", "rotated"))
	got, err = s.Get("server-1")
	require.NoError(t, err)
	assert.Equal(t, "rotated", got)

	require.NoError(t, s.Delete("server-1"))
	require.NoError(t, s.Delete("server-1"), "deleting twice is fine")
	_, err = s.Get("server-1")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

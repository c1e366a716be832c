package securestore_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadYaafay/storefront-core/securestore"
)

func TestSetGetDelete(t *testing.T) {
	s, err := securestore.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("token", "abc123"))

	got, ok, err := s.Get("token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc123", got)

	require.NoError(t, s.Set("token", "xyz789"))
	got, _, _ = s.Get("token")
	assert.Equal(t, "xyz789", got)

	require.NoError(t, s.Delete("token"))
	_, ok, err = s.Get("token")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting again is a no-op
	require.NoError(t, s.Delete("token"))
}

func TestMissingKeyIsAbsenceNotError(t *testing.T) {
	s, err := securestore.New(t.TempDir())
	require.NoError(t, err)

	_, ok, err := s.Get("never-set")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValuesAreOwnerOnly(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}
	dir := t.TempDir()
	s, err := securestore.New(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("user", `{"id":"1"}`))

	info, err := os.Stat(filepath.Join(dir, "user"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

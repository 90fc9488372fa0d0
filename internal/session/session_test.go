package session

import (
	"testing"

	"github.com/catalystcommunity/vcdctl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, vdc *config.VDCRef) {
	t.Helper()
	require.NoError(t, config.SaveProfile(&config.Profile{
		Endpoint: "https://vcd.example.com/api",
		Org:      "acme",
		User:     "admin",
		VDCInUse: vdc,
	}))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("VCDCTL_CONFIG_DIR", t.TempDir())

	require.NoError(t, StoreToken("session-token"))

	token, err := LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "session-token", token)

	require.NoError(t, ClearToken())
}

func TestStoreTokenEmpty(t *testing.T) {
	err := StoreToken("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token cannot be empty")
}

func TestRestore(t *testing.T) {
	t.Run("no profile means not logged in", func(t *testing.T) {
		t.Setenv("VCDCTL_CONFIG_DIR", t.TempDir())

		_, err := Restore(false)
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})

	t.Run("profile without token means not logged in", func(t *testing.T) {
		t.Setenv("VCDCTL_CONFIG_DIR", t.TempDir())
		writeProfile(t, nil)

		_, err := Restore(false)
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})

	t.Run("vdc required but none selected", func(t *testing.T) {
		t.Setenv("VCDCTL_CONFIG_DIR", t.TempDir())
		writeProfile(t, nil)
		require.NoError(t, StoreToken("session-token"))

		_, err := Restore(true)
		assert.ErrorIs(t, err, ErrNoVDCSelected)
	})

	t.Run("restores platform-scoped session without vdc", func(t *testing.T) {
		t.Setenv("VCDCTL_CONFIG_DIR", t.TempDir())
		writeProfile(t, nil)
		require.NoError(t, StoreToken("session-token"))

		sess, err := Restore(false)
		require.NoError(t, err)
		assert.NotNil(t, sess.Client)
		assert.Equal(t, "acme", sess.Profile.Org)

		_, err = sess.VDC()
		assert.ErrorIs(t, err, ErrNoVDCSelected)
	})

	t.Run("restores vdc-scoped session", func(t *testing.T) {
		t.Setenv("VCDCTL_CONFIG_DIR", t.TempDir())
		writeProfile(t, &config.VDCRef{Name: "vdc-a", ID: "urn:vdc:1"})
		require.NoError(t, StoreToken("session-token"))

		sess, err := Restore(true)
		require.NoError(t, err)

		vdc, err := sess.VDC()
		require.NoError(t, err)
		assert.Equal(t, "urn:vdc:1", vdc.ID())
	})
}

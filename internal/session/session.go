package session

import (
	"errors"
	"fmt"
	"os"

	"github.com/catalystcommunity/vcdctl/internal/config"
	"github.com/catalystcommunity/vcdctl/internal/vcloud"
)

var (
	// ErrNotLoggedIn is returned when no cached session exists
	ErrNotLoggedIn = errors.New("not logged in, run 'vcdctl login' first")
	// ErrNoVDCSelected is returned when a VDC-scoped operation is attempted
	// without an in-use virtual datacenter
	ErrNoVDCSelected = errors.New("no VDC selected, run 'vcdctl vdc use <name>' first")
)

// Session is the read-only per-invocation context: an authenticated client
// plus the profile it was restored from. Commands requiring a selected VDC
// pass requireVDC to Restore and fail fast before any remote call.
type Session struct {
	Client  *vcloud.Client
	Profile *config.Profile
}

// Restore rebuilds a session from the cached profile and token. It performs
// no remote calls; an expired token surfaces as an auth error on the first
// operation that uses it.
func Restore(requireVDC bool) (*Session, error) {
	profile, err := config.LoadProfile()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}

	if requireVDC && profile.VDCInUse == nil {
		return nil, ErrNoVDCSelected
	}

	token, err := LoadToken()
	if err != nil {
		return nil, ErrNotLoggedIn
	}

	client, err := vcloud.NewClient(profile.Endpoint, token)
	if err != nil {
		return nil, fmt.Errorf("failed to build API client: %w", err)
	}

	return &Session{Client: client, Profile: profile}, nil
}

// VDC returns a handle for the in-use virtual datacenter. Callers that
// passed requireVDC to Restore can rely on the selection being present.
func (s *Session) VDC() (*vcloud.VDC, error) {
	if s.Profile.VDCInUse == nil {
		return nil, ErrNoVDCSelected
	}
	return vcloud.NewVDC(s.Client, s.Profile.VDCInUse.ID)
}

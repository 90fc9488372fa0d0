package network

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/catalystcommunity/vcdctl/internal/config"
	"github.com/catalystcommunity/vcdctl/internal/session"
	"github.com/catalystcommunity/vcdctl/internal/vcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestNetworkCommandRegistration(t *testing.T) {
	t.Run("network command registered", func(t *testing.T) {
		assert.NotNil(t, Command)
		assert.Equal(t, "network", Command.Name)
		assert.Len(t, Command.Commands, 3)

		var externalCmd, directCmd, isolatedCmd bool
		for _, cmd := range Command.Commands {
			switch cmd.Name {
			case "external":
				externalCmd = true
			case "direct":
				directCmd = true
			case "isolated":
				isolatedCmd = true
			}
		}

		assert.True(t, externalCmd, "external command should be registered")
		assert.True(t, directCmd, "direct command should be registered")
		assert.True(t, isolatedCmd, "isolated command should be registered")
	})

	t.Run("external subcommands registered", func(t *testing.T) {
		require.NotNil(t, ExternalCommand)
		assert.Len(t, ExternalCommand.Commands, 4)

		names := make(map[string]bool)
		for _, cmd := range ExternalCommand.Commands {
			names[cmd.Name] = true
		}
		assert.True(t, names["create"])
		assert.True(t, names["list"])
		assert.True(t, names["delete"])
		assert.True(t, names["update"], "update is external-only")
	})

	t.Run("direct and isolated subcommands registered", func(t *testing.T) {
		for _, group := range []*cli.Command{DirectCommand, IsolatedCommand} {
			require.NotNil(t, group)
			assert.Len(t, group.Commands, 3)

			names := make(map[string]bool)
			for _, cmd := range group.Commands {
				names[cmd.Name] = true
			}
			assert.True(t, names["create"])
			assert.True(t, names["list"])
			assert.True(t, names["delete"])
			assert.False(t, names["update"], "update must not exist for %s networks", group.Name)
		}
	})
}

func TestParseIPRanges(t *testing.T) {
	t.Run("preserves input order", func(t *testing.T) {
		ranges, err := parseIPRanges([]string{"10.0.0.2-10.0.0.9", "10.0.0.20-10.0.0.29"})
		require.NoError(t, err)
		require.Len(t, ranges, 2)
		assert.Equal(t, vcloud.IPRange{Start: "10.0.0.2", End: "10.0.0.9"}, ranges[0])
		assert.Equal(t, vcloud.IPRange{Start: "10.0.0.20", End: "10.0.0.29"}, ranges[1])
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		for _, value := range []string{"10.0.0.2", "10.0.0.2-", "-10.0.0.9"} {
			_, err := parseIPRanges([]string{value})
			assert.Error(t, err, "value %q should be rejected", value)
		}
	})
}

func TestConfirm(t *testing.T) {
	defer func() { stdin = os.Stdin }()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes confirms", input: "yes\n", want: true},
		{name: "uppercase yes confirms", input: "YES\n", want: true},
		{name: "no declines", input: "no\n", want: false},
		{name: "bare y declines", input: "y\n", want: false},
		{name: "empty input declines", input: "\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdin = strings.NewReader(tt.input)
			assert.Equal(t, tt.want, confirm("Delete?"))
		})
	}
}

// recordedRequest captures one request the mock vCloud server received
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     []byte
}

// newMockServer starts an httptest server that records every request and
// answers with the given status and body
func newMockServer(t *testing.T, status int, response string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		requests = append(requests, recordedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Body:     body,
		})

		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	return server, &requests
}

const taskResponse = `{"id":"task-1","operation":"networkOp","status":"queued"}`

// setupSession writes a cached session (profile plus token file) pointing
// at the given endpoint, mirroring what login would have stored
func setupSession(t *testing.T, endpoint string, vdc *config.VDCRef) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("VCDCTL_CONFIG_DIR", dir)

	require.NoError(t, config.SaveProfile(&config.Profile{
		Endpoint: endpoint,
		Org:      "acme",
		User:     "admin",
		VDCInUse: vdc,
	}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, session.FallbackFileName), []byte("test-token"), 0600))
}

func testVDC() *config.VDCRef {
	return &config.VDCRef{Name: "vdc-a", ID: "urn:vdc:1"}
}

// runCommand dispatches through the network command tree exactly as main does
func runCommand(t *testing.T, args ...string) error {
	t.Helper()

	root := &cli.Command{
		Name:     "vcdctl",
		Commands: []*cli.Command{Command},
	}
	return root.Run(context.Background(), append([]string{"vcdctl"}, args...))
}

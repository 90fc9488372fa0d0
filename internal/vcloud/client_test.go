package vcloud

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHTTPClient implements HTTPClient for testing
type mockHTTPClient struct {
	DoFunc func(method, path string, body interface{}) ([]byte, error)
	calls  int
}

func (m *mockHTTPClient) Do(method, path string, body interface{}) ([]byte, error) {
	m.calls++
	return m.DoFunc(method, path, body)
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		apiURL  string
		token   string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid client",
			apiURL:  "https://vcd.example.com/api",
			token:   "test-token",
			wantErr: false,
		},
		{
			name:    "valid client with trailing slash",
			apiURL:  "https://vcd.example.com/api/",
			token:   "test-token",
			wantErr: false,
		},
		{
			name:    "empty API URL",
			apiURL:  "",
			token:   "test-token",
			wantErr: true,
			errMsg:  "API URL cannot be empty",
		},
		{
			name:    "empty token",
			apiURL:  "https://vcd.example.com/api",
			token:   "",
			wantErr: true,
			errMsg:  "session token cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.apiURL, tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, client)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, client)
				assert.Equal(t, "https://vcd.example.com/api", client.baseURL)
				assert.Equal(t, "test-token", client.token)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "POST", r.Method)
			require.Equal(t, "/sessions", r.URL.Path)

			user, password, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "admin@acme", user)
			assert.Equal(t, "secret", password)

			json.NewEncoder(w).Encode(SessionInfo{Token: "session-token", Org: "acme", User: "admin"})
		}))
		defer server.Close()

		info, err := Login(server.URL, "acme", "admin", "secret")
		require.NoError(t, err)
		assert.Equal(t, "session-token", info.Token)
		assert.Equal(t, "acme", info.Org)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(APIError{Code: 401, Message: "authentication failed"})
		}))
		defer server.Close()

		info, err := Login(server.URL, "acme", "admin", "wrong")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "authentication failed")
		assert.Nil(t, info)
	})

	t.Run("empty org", func(t *testing.T) {
		info, err := Login("https://vcd.example.com/api", "", "admin", "secret")
		assert.Error(t, err)
		assert.Nil(t, info)
	})
}

func TestAPIErrorDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIError{Message: "duplicate network name"})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "token")
	require.NoError(t, err)

	_, err = NewPlatform(client).DeleteExternalNetwork("ext-net1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "duplicate network name", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
}

func TestListVDCs(t *testing.T) {
	t.Run("preserves server order", func(t *testing.T) {
		mock := &mockHTTPClient{
			DoFunc: func(method, path string, body interface{}) ([]byte, error) {
				assert.Equal(t, "GET", method)
				assert.Equal(t, "/admin/vdcs", path)
				return json.Marshal([]VDCRecord{
					{Name: "vdc-b", ID: "urn:vdc:2"},
					{Name: "vdc-a", ID: "urn:vdc:1"},
				})
			},
		}
		client := &Client{baseURL: "http://test", token: "t", httpClient: mock}

		vdcs, err := client.ListVDCs()
		require.NoError(t, err)
		require.Len(t, vdcs, 2)
		assert.Equal(t, "vdc-b", vdcs[0].Name)
		assert.Equal(t, "vdc-a", vdcs[1].Name)
	})

	t.Run("get by name", func(t *testing.T) {
		mock := &mockHTTPClient{
			DoFunc: func(method, path string, body interface{}) ([]byte, error) {
				return json.Marshal([]VDCRecord{{Name: "vdc-a", ID: "urn:vdc:1"}})
			},
		}
		client := &Client{baseURL: "http://test", token: "t", httpClient: mock}

		vdc, err := client.GetVDC("vdc-a")
		require.NoError(t, err)
		assert.Equal(t, "urn:vdc:1", vdc.ID)

		_, err = client.GetVDC("missing")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

package vcloud

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// NewClient creates a new vCloud Director API client authenticated with a
// session token
func NewClient(apiURL string, token string) (*Client, error) {
	if apiURL == "" {
		return nil, fmt.Errorf("API URL cannot be empty")
	}
	if token == "" {
		return nil, fmt.Errorf("session token cannot be empty")
	}

	// Remove trailing slash from URL
	apiURL = strings.TrimSuffix(apiURL, "/")

	httpClient := &defaultHTTPClient{
		baseURL: apiURL,
		authorize: func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		},
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}

	return &Client{
		baseURL:    apiURL,
		token:      token,
		httpClient: httpClient,
	}, nil
}

// Login authenticates against the sessions endpoint with basic credentials
// and returns the session info including the bearer token for later calls
func Login(apiURL, org, user, password string) (*SessionInfo, error) {
	if apiURL == "" {
		return nil, fmt.Errorf("API URL cannot be empty")
	}
	if org == "" || user == "" {
		return nil, fmt.Errorf("organization and user cannot be empty")
	}

	apiURL = strings.TrimSuffix(apiURL, "/")

	httpClient := &defaultHTTPClient{
		baseURL: apiURL,
		authorize: func(req *http.Request) {
			// vCloud style user@org basic auth
			req.SetBasicAuth(fmt.Sprintf("%s@%s", user, org), password)
		},
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}

	respBody, err := httpClient.Do("POST", "/sessions", nil)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	var info SessionInfo
	if err := json.Unmarshal(respBody, &info); err != nil {
		return nil, fmt.Errorf("failed to parse session response: %w", err)
	}
	if info.Token == "" {
		return nil, fmt.Errorf("server returned no session token")
	}

	return &info, nil
}

// ListVDCs enumerates the org virtual datacenters visible to the session
func (c *Client) ListVDCs() ([]VDCRecord, error) {
	respBody, err := c.httpClient.Do("GET", "/admin/vdcs", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list VDCs: %w", err)
	}

	var vdcs []VDCRecord
	if err := json.Unmarshal(respBody, &vdcs); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return vdcs, nil
}

// GetVDC looks up a virtual datacenter by name
func (c *Client) GetVDC(name string) (*VDCRecord, error) {
	if name == "" {
		return nil, fmt.Errorf("VDC name cannot be empty")
	}

	vdcs, err := c.ListVDCs()
	if err != nil {
		return nil, err
	}

	for i := range vdcs {
		if vdcs[i].Name == name {
			return &vdcs[i], nil
		}
	}

	return nil, fmt.Errorf("VDC %q not found", name)
}

// defaultHTTPClient implements HTTPClient using net/http
type defaultHTTPClient struct {
	baseURL   string
	authorize func(*http.Request)
	client    *http.Client
}

// Do performs an HTTP request against the API
func (c *defaultHTTPClient) Do(method, path string, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	url := c.baseURL + path
	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Check for API errors
	if resp.StatusCode >= 400 {
		var apiErr APIError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Message != "" {
			if apiErr.Code == 0 {
				apiErr.Code = resp.StatusCode
			}
			return nil, &apiErr
		}
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

package vcloud

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// VDC is a handle for operations scoped to an org virtual datacenter.
// Direct and isolated org networks live inside a VDC.
type VDC struct {
	client *Client
	id     string
}

// NewVDC derives a VDC handle from an authenticated client and a VDC id
func NewVDC(client *Client, id string) (*VDC, error) {
	if id == "" {
		return nil, fmt.Errorf("VDC id cannot be empty")
	}
	return &VDC{client: client, id: id}, nil
}

// ID returns the identifier of the virtual datacenter this handle is bound to
func (v *VDC) ID() string {
	return v.id
}

// CreateDirectNetwork creates an org VDC network directly connected to an
// external network and returns the first queued task
func (v *VDC) CreateDirectNetwork(spec DirectNetworkSpec) (*Task, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("network name cannot be empty")
	}
	if spec.ParentNetworkName == "" {
		return nil, fmt.Errorf("parent external network name cannot be empty")
	}

	path := fmt.Sprintf("/vdc/%s/networks/direct", url.PathEscape(v.id))
	respBody, err := v.client.httpClient.Do("POST", path, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to create direct network: %w", err)
	}

	var task Task
	if err := json.Unmarshal(respBody, &task); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &task, nil
}

// ListDirectNetworks enumerates the directly connected org networks in the
// VDC, preserving the order reported by the server
func (v *VDC) ListDirectNetworks() ([]NetworkSummary, error) {
	path := fmt.Sprintf("/vdc/%s/networks/direct", url.PathEscape(v.id))
	respBody, err := v.client.httpClient.Do("GET", path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list direct networks: %w", err)
	}

	var networks []NetworkSummary
	if err := json.Unmarshal(respBody, &networks); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return networks, nil
}

// DeleteDirectNetwork deletes a directly connected org network by name.
// force asks the server to delete even if the network is in use.
func (v *VDC) DeleteDirectNetwork(name string, force bool) (*Task, error) {
	return v.deleteNetwork("direct", name, force)
}

// CreateIsolatedNetwork creates an isolated org VDC network, optionally with
// an embedded DHCP pool, and returns the first queued task
func (v *VDC) CreateIsolatedNetwork(spec IsolatedNetworkSpec) (*Task, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("network name cannot be empty")
	}
	if spec.GatewayIP == "" {
		return nil, fmt.Errorf("gateway IP cannot be empty")
	}
	if spec.Netmask == "" {
		return nil, fmt.Errorf("netmask cannot be empty")
	}

	path := fmt.Sprintf("/vdc/%s/networks/isolated", url.PathEscape(v.id))
	respBody, err := v.client.httpClient.Do("POST", path, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to create isolated network: %w", err)
	}

	var task Task
	if err := json.Unmarshal(respBody, &task); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &task, nil
}

// ListIsolatedNetworks enumerates the isolated org networks in the VDC,
// preserving the order reported by the server
func (v *VDC) ListIsolatedNetworks() ([]NetworkSummary, error) {
	path := fmt.Sprintf("/vdc/%s/networks/isolated", url.PathEscape(v.id))
	respBody, err := v.client.httpClient.Do("GET", path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list isolated networks: %w", err)
	}

	var networks []NetworkSummary
	if err := json.Unmarshal(respBody, &networks); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return networks, nil
}

// DeleteIsolatedNetwork deletes an isolated org network by name
func (v *VDC) DeleteIsolatedNetwork(name string, force bool) (*Task, error) {
	return v.deleteNetwork("isolated", name, force)
}

func (v *VDC) deleteNetwork(kind, name string, force bool) (*Task, error) {
	if name == "" {
		return nil, fmt.Errorf("network name cannot be empty")
	}

	path := fmt.Sprintf("/vdc/%s/networks/%s/%s", url.PathEscape(v.id), kind, url.PathEscape(name))
	if force {
		path += "?force=true"
	}

	respBody, err := v.client.httpClient.Do("DELETE", path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to delete %s network: %w", kind, err)
	}

	var task Task
	if err := json.Unmarshal(respBody, &task); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &task, nil
}

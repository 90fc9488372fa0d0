package vcloud

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Platform is a handle for system-scoped operations. External networks are
// managed at the platform level and require no VDC selection.
type Platform struct {
	client *Client
}

// NewPlatform derives a platform handle from an authenticated client
func NewPlatform(client *Client) *Platform {
	return &Platform{client: client}
}

// CreateExternalNetwork creates an external network backed by one or more
// vCenter port groups and returns the first queued task
func (p *Platform) CreateExternalNetwork(spec ExternalNetworkSpec) (*Task, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("network name cannot be empty")
	}
	if spec.VimServerName == "" {
		return nil, fmt.Errorf("vCenter server name cannot be empty")
	}
	if spec.GatewayIP == "" {
		return nil, fmt.Errorf("gateway IP cannot be empty")
	}
	if spec.Netmask == "" {
		return nil, fmt.Errorf("netmask cannot be empty")
	}
	if len(spec.PortGroups) == 0 {
		return nil, fmt.Errorf("at least one port group is required")
	}
	if len(spec.IPRanges) == 0 {
		return nil, fmt.Errorf("at least one IP range is required")
	}

	respBody, err := p.client.httpClient.Do("POST", "/admin/extension/externalnets", spec)
	if err != nil {
		return nil, fmt.Errorf("failed to create external network: %w", err)
	}

	var task Task
	if err := json.Unmarshal(respBody, &task); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &task, nil
}

// ListExternalNetworks enumerates all external networks in the system,
// preserving the order reported by the server
func (p *Platform) ListExternalNetworks() ([]NetworkSummary, error) {
	respBody, err := p.client.httpClient.Do("GET", "/admin/extension/externalnets", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list external networks: %w", err)
	}

	var networks []NetworkSummary
	if err := json.Unmarshal(respBody, &networks); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return networks, nil
}

// DeleteExternalNetwork deletes an external network by name
func (p *Platform) DeleteExternalNetwork(name string) (*Task, error) {
	if name == "" {
		return nil, fmt.Errorf("network name cannot be empty")
	}

	path := "/admin/extension/externalnets/" + url.PathEscape(name)
	respBody, err := p.client.httpClient.Do("DELETE", path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to delete external network: %w", err)
	}

	var task Task
	if err := json.Unmarshal(respBody, &task); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &task, nil
}

// UpdateExternalNetwork updates the name and/or description of an external
// network. Empty newName or newDescription forwards the current value, so a
// call with neither still succeeds as a no-op update.
func (p *Platform) UpdateExternalNetwork(name, newName, newDescription string) (*Task, error) {
	if name == "" {
		return nil, fmt.Errorf("network name cannot be empty")
	}

	update := ExternalNetworkUpdate{Name: newName, Description: newDescription}
	if update.Name == "" {
		update.Name = name
	}

	path := "/admin/extension/externalnets/" + url.PathEscape(name)
	respBody, err := p.client.httpClient.Do("PUT", path, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update external network: %w", err)
	}

	var task Task
	if err := json.Unmarshal(respBody, &task); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &task, nil
}

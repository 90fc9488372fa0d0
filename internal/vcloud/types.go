package vcloud

// Client represents a vCloud Director API client
type Client struct {
	baseURL string
	token   string
	// httpClient is exposed for testing
	httpClient HTTPClient
}

// HTTPClient interface for HTTP operations (allows mocking)
type HTTPClient interface {
	Do(method, path string, body interface{}) ([]byte, error)
}

// Task represents a queued asynchronous operation on the server.
// The CLI prints tasks and never polls them to completion.
type Task struct {
	ID        string `json:"id"`
	Operation string `json:"operation"`
	Status    string `json:"status"`
}

// NetworkSummary is the minimal projection returned by list operations
type NetworkSummary struct {
	Name string `json:"name"`
}

// IPRange is a contiguous address range in start-end form
type IPRange struct {
	Start string `json:"startAddress"`
	End   string `json:"endAddress"`
}

// ExternalNetworkSpec is the request payload for creating an external network.
// PortGroups and IPRanges must each hold at least one entry; the client
// rejects the request locally before any call is made otherwise.
type ExternalNetworkSpec struct {
	Name           string    `json:"name"`
	VimServerName  string    `json:"vimServerName"`
	PortGroups     []string  `json:"portGroups"`
	GatewayIP      string    `json:"gatewayIp"`
	Netmask        string    `json:"netmask"`
	IPRanges       []IPRange `json:"ipRanges"`
	Description    string    `json:"description,omitempty"`
	PrimaryDNSIP   string    `json:"primaryDnsIp,omitempty"`
	SecondaryDNSIP string    `json:"secondaryDnsIp,omitempty"`
	DNSSuffix      string    `json:"dnsSuffix,omitempty"`
}

// ExternalNetworkUpdate carries the attributes an update may change. Name
// always holds the resulting name (the current one when no rename was
// requested); an omitted description leaves the current description in
// place, so an update with neither attribute is a successful no-op.
type ExternalNetworkUpdate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// DirectNetworkSpec is the request payload for creating a directly
// connected org VDC network
type DirectNetworkSpec struct {
	Name              string `json:"name"`
	ParentNetworkName string `json:"parentNetworkName"`
	Description       string `json:"description,omitempty"`
	IsShared          bool   `json:"isShared"`
}

// DHCPSpec describes an optional DHCP pool embedded in an isolated network
type DHCPSpec struct {
	Enabled          bool   `json:"enabled"`
	DefaultLeaseTime int    `json:"defaultLeaseTime,omitempty"`
	MaxLeaseTime     int    `json:"maxLeaseTime,omitempty"`
	RangeStart       string `json:"rangeStart,omitempty"`
	RangeEnd         string `json:"rangeEnd,omitempty"`
}

// IsolatedNetworkSpec is the request payload for creating an isolated org
// VDC network. DHCP and DNS optionals are forwarded verbatim; consistency
// (range inside subnet etc.) is validated by the server, not here.
type IsolatedNetworkSpec struct {
	Name           string    `json:"name"`
	GatewayIP      string    `json:"gatewayIp"`
	Netmask        string    `json:"netmask"`
	Description    string    `json:"description,omitempty"`
	PrimaryDNSIP   string    `json:"primaryDnsIp,omitempty"`
	SecondaryDNSIP string    `json:"secondaryDnsIp,omitempty"`
	DNSSuffix      string    `json:"dnsSuffix,omitempty"`
	IPRangeStart   string    `json:"ipRangeStart,omitempty"`
	IPRangeEnd     string    `json:"ipRangeEnd,omitempty"`
	DHCP           *DHCPSpec `json:"dhcp,omitempty"`
	IsShared       bool      `json:"isShared"`
}

// VDCRecord identifies an org virtual datacenter visible to the session
type VDCRecord struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// SessionInfo is the response to a successful login
type SessionInfo struct {
	Token string `json:"token"`
	Org   string `json:"org"`
	User  string `json:"user"`
}

// APIError is a structured error response from the vCloud API
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the default directory name for vcdctl configs
	DefaultConfigDir = ".vcdctl"
	// ProfileFileName is the file the active session profile is stored in
	ProfileFileName = "profile.yaml"
)

// VDCRef records the org virtual datacenter currently in use. Direct and
// isolated network commands operate on this selection.
type VDCRef struct {
	Name string `yaml:"name"`
	ID   string `yaml:"id"`
}

// Profile holds the cached session state written at login time. It is read
// at the start of every command and never mutated by network operations.
type Profile struct {
	Endpoint string  `yaml:"endpoint"`
	Org      string  `yaml:"org"`
	User     string  `yaml:"user"`
	VDCInUse *VDCRef `yaml:"vdc_in_use,omitempty"`
}

// Validate checks that the profile holds a usable session reference
func (p *Profile) Validate() error {
	if p.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if p.Org == "" {
		return fmt.Errorf("org is required")
	}
	if p.User == "" {
		return fmt.Errorf("user is required")
	}
	return nil
}

// GetConfigDir returns the vcdctl configuration directory path.
// Defaults to ~/.vcdctl/ unless overridden by environment.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("VCDCTL_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, DefaultConfigDir), nil
}

// ProfilePath returns the path of the active profile file
func ProfilePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ProfileFileName), nil
}

// LoadProfile reads and parses the active profile. A missing file is
// reported as os.ErrNotExist so callers can distinguish "never logged in"
// from a corrupt profile.
func LoadProfile() (*Profile, error) {
	path, err := ProfilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	return &profile, nil
}

// SaveProfile writes the profile with owner-only permissions
func SaveProfile(profile *Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	path, err := ProfilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	return nil
}

// RemoveProfile deletes the active profile if present
func RemoveProfile() error {
	path, err := ProfilePath()
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove profile: %w", err)
	}

	return nil
}

package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/catalystcommunity/vcdctl/internal/config"
	"github.com/zalando/go-keyring"
)

const (
	// KeyringService is the service name used in the OS keyring
	KeyringService = "vcdctl"
	// KeyringUser is the user/account name for the session token
	KeyringUser = "session-token"
	// FallbackFileName is the filename for fallback file storage
	FallbackFileName = "token"
)

// StoreToken stores the vCloud session token in the OS keyring.
// Falls back to file storage if keyring is unavailable.
func StoreToken(token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	err := keyring.Set(KeyringService, KeyringUser, token)
	if err == nil {
		return nil
	}

	return storeTokenInFile(token)
}

// LoadToken retrieves the vCloud session token from the OS keyring.
// Falls back to file storage if keyring is unavailable.
func LoadToken() (string, error) {
	token, err := keyring.Get(KeyringService, KeyringUser)
	if err == nil {
		return token, nil
	}

	return loadTokenFromFile()
}

// ClearToken removes the session token from both keyring and file storage
func ClearToken() error {
	keyringErr := keyring.Delete(KeyringService, KeyringUser)

	fileErr := deleteTokenFile()

	if keyringErr != nil && fileErr != nil {
		return fmt.Errorf("failed to clear token from keyring (%v) and file (%v)", keyringErr, fileErr)
	}

	return nil
}

func tokenFilePath() (string, error) {
	configDir, err := config.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, FallbackFileName), nil
}

func storeTokenInFile(token string) error {
	tokenPath, err := tokenFilePath()
	if err != nil {
		return fmt.Errorf("failed to get token file path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(tokenPath), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// 0600: the token is a bearer credential
	if err := os.WriteFile(tokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

func loadTokenFromFile() (string, error) {
	tokenPath, err := tokenFilePath()
	if err != nil {
		return "", fmt.Errorf("failed to get token file path: %w", err)
	}

	data, err := os.ReadFile(tokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no session token found in keyring or file storage")
		}
		return "", fmt.Errorf("failed to read token file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

func deleteTokenFile() error {
	tokenPath, err := tokenFilePath()
	if err != nil {
		return err
	}

	if err := os.Remove(tokenPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no token file to delete")
		}
		return err
	}

	return nil
}

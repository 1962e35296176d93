package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Credential errors.
var (
	// ErrCredentialsNotFound indicates no credentials file was found.
	ErrCredentialsNotFound = errors.New("credentials file not found")

	// ErrCredentialsInvalid indicates the credentials file is malformed.
	ErrCredentialsInvalid = errors.New("invalid credentials format")
)

// Environment variables that override the credentials file.
const (
	EnvAppID  = "BAIDU_APP_ID"
	EnvAppKey = "BAIDU_APP_KEY"
)

// Credentials holds the API app id and secret key.
type Credentials struct {
	AppID  string
	AppKey string
}

// DefaultCredentialPath returns the default credentials file location,
// $HOME/.baidufanyi_key. The file holds the app id on line 1 and the app
// key on line 2.
func DefaultCredentialPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".baidufanyi_key")
}

// LoadCredentials resolves credentials from the environment and the key
// file. BAIDU_APP_ID / BAIDU_APP_KEY (including values from an optional
// .env file) win over the file; the file is only read for whatever the
// environment leaves unset. An empty path means DefaultCredentialPath.
func LoadCredentials(path string) (*Credentials, error) {
	// .env is optional; real environment variables still apply without it.
	_ = godotenv.Load()

	creds := &Credentials{
		AppID:  os.Getenv(EnvAppID),
		AppKey: os.Getenv(EnvAppKey),
	}
	if creds.AppID != "" && creds.AppKey != "" {
		return creds, nil
	}

	if path == "" {
		path = DefaultCredentialPath()
	}
	fromFile, err := readCredentialFile(path)
	if err != nil {
		return nil, err
	}
	if creds.AppID == "" {
		creds.AppID = fromFile.AppID
	}
	if creds.AppKey == "" {
		creds.AppKey = fromFile.AppKey
	}
	return creds, nil
}

// SaveCredentials writes the key file with owner-only permissions.
func SaveCredentials(path string, creds *Credentials) error {
	if path == "" {
		path = DefaultCredentialPath()
	}
	if path == "" {
		return errors.New("no credential path available")
	}
	data := creds.AppID + "\n" + creds.AppKey + "\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// readCredentialFile parses the two-line key file.
func readCredentialFile(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCredentialsNotFound, path)
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: expected app id on line 1 and app key on line 2", ErrCredentialsInvalid)
	}
	creds := &Credentials{
		AppID:  strings.TrimSpace(lines[0]),
		AppKey: strings.TrimSpace(lines[1]),
	}
	if creds.AppID == "" || creds.AppKey == "" {
		return nil, fmt.Errorf("%w: empty app id or app key", ErrCredentialsInvalid)
	}
	return creds, nil
}

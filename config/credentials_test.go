package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCredentials_File(t *testing.T) {
	t.Setenv(EnvAppID, "")
	t.Setenv(EnvAppKey, "")
	path := writeFile(t, "key", "my-id\nmy-key\n")

	creds, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "my-id", creds.AppID)
	assert.Equal(t, "my-key", creds.AppKey)
}

func TestLoadCredentials_EnvWins(t *testing.T) {
	t.Setenv(EnvAppID, "env-id")
	t.Setenv(EnvAppKey, "env-key")

	creds, err := LoadCredentials(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Equal(t, "env-id", creds.AppID)
	assert.Equal(t, "env-key", creds.AppKey)
}

func TestLoadCredentials_EnvFillsPartially(t *testing.T) {
	t.Setenv(EnvAppID, "env-id")
	t.Setenv(EnvAppKey, "")
	path := writeFile(t, "key", "file-id\nfile-key\n")

	creds, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "env-id", creds.AppID)
	assert.Equal(t, "file-key", creds.AppKey)
}

func TestLoadCredentials_Missing(t *testing.T) {
	t.Setenv(EnvAppID, "")
	t.Setenv(EnvAppKey, "")

	_, err := LoadCredentials(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
}

func TestLoadCredentials_Malformed(t *testing.T) {
	t.Setenv(EnvAppID, "")
	t.Setenv(EnvAppKey, "")

	tests := []struct {
		name    string
		content string
	}{
		{name: "single line", content: "only-id"},
		{name: "empty key line", content: "id\n\n"},
		{name: "empty file", content: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "key", tt.content)
			_, err := LoadCredentials(path)
			assert.ErrorIs(t, err, ErrCredentialsInvalid)
		})
	}
}

func TestSaveCredentials_RoundTrip(t *testing.T) {
	t.Setenv(EnvAppID, "")
	t.Setenv(EnvAppKey, "")
	path := filepath.Join(t.TempDir(), "key")

	require.NoError(t, SaveCredentials(path, &Credentials{AppID: "a", AppKey: "b"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	creds, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "a", creds.AppID)
	assert.Equal(t, "b", creds.AppKey)
}

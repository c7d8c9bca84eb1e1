package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"token_sign_key": "sign-key",
			"token_issuer": "tadabbur-test",
			"token_duration": "24h"
		},
		"storage": {
			"db": {"dsn": "postgres://localhost/tadabbur"},
			"files": {"audio_dir": "/var/lib/tadabbur/audio"}
		},
		"server": {"http_address": "0.0.0.0:8080", "request_timeout": "30s"},
		"quran": {"api_base_url": "https://api.alquran.cloud/v1", "translation_edition": "en.sahih"},
		"share": {"public_base_url": "https://notes.example.org"},
		"workers": {"sync_interval": "5m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "tadabbur-test", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://localhost/tadabbur", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/tadabbur/audio", cfg.Storage.Files.AudioDir)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "en.sahih", cfg.Quran.TranslationEdition)
	assert.Equal(t, "https://notes.example.org", cfg.Share.PublicBaseURL)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidBody(t *testing.T) {
	path := writeTempJSON(t, `{"server": `)
	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"90s"`)))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, d.UnmarshalJSON([]byte(`"not-a-duration"`)))
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_MergePriority(t *testing.T) {
	// first source wins: env-like config already holds a DSN, the JSON
	// layer must not overwrite it but must fill the gaps.
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "postgres://from-env/db"}},
		},
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "postgres://from-json/db"}},
			Server:  Server{HTTPAddress: "0.0.0.0:8080"},
			App:     App{TokenDuration: time.Hour},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "postgres://from-env/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
}

func TestConfigBuilder_AppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, defaultQuranAPIBaseURL, cfg.Quran.APIBaseURL)
	assert.Equal(t, defaultTranslationEdition, cfg.Quran.TranslationEdition)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 15 * time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: "/home/u/.tadabbur/cache.db"}},
		Workers: ClientWorkers{SyncInterval: 5 * time.Minute},
	}
	require.NoError(t, valid.validate())

	noStore := *valid
	noStore.Storage.DB.DSN = ""
	assert.ErrorIs(t, noStore.validate(), ErrInvalidStorageConfigs)

	memStore := *valid
	memStore.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, memStore.validate(), ErrInvalidStorageConfigs)

	noAdapter := *valid
	noAdapter.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, noAdapter.validate(), ErrInvalidAdapterConfigs)

	noSync := *valid
	noSync.Workers.SyncInterval = 0
	assert.ErrorIs(t, noSync.validate(), ErrInvalidWorkerConfigs)
}

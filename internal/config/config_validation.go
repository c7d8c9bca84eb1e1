// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anas Zait

package config

import "strings"

// defaults applied after merging when the operator left a field unset.
const (
	defaultQuranAPIBaseURL    = "https://api.alquran.cloud/v1"
	defaultTranslationEdition = "en.sahih"
	defaultTokenIssuer        = "tadabbur"
)

// applyDefaults fills optional fields that have safe fallbacks. Secrets
// and addresses have no defaults; validate catches those.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Quran.APIBaseURL == "" {
		cfg.Quran.APIBaseURL = defaultQuranAPIBaseURL
	}
	if cfg.Quran.TranslationEdition == "" {
		cfg.Quran.TranslationEdition = defaultTranslationEdition
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Only cross-binary invariants live here; requirements specific to one
// binary (e.g. the server's Postgres DSN) are checked where the binary
// assembles its dependencies, since the same config type also serves the
// client.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

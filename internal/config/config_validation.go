// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAuthConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: dsn is empty", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: address is empty", ErrInvalidServerConfigs)
	}
	if cfg.Server.PublicURL != "" {
		if _, err := url.ParseRequestURI(cfg.Server.PublicURL); err != nil {
			return fmt.Errorf("%w: public url: %w", ErrInvalidServerConfigs, err)
		}
	}

	if !cfg.Adapter.Disabled && cfg.Adapter.UpstreamURL != "" {
		if _, err := url.ParseRequestURI(cfg.Adapter.UpstreamURL); err != nil {
			return fmt.Errorf("%w: upstream url: %w", ErrInvalidAdapterConfigs, err)
		}
		if cfg.Adapter.RequestTimeout <= 0 {
			return fmt.Errorf("%w: upstream timeout must be positive", ErrInvalidAdapterConfigs)
		}
	}

	sync := cfg.App.Sync
	if sync.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive", ErrInvalidAppConfigs)
	}
	if sync.ReadingThreshold < 0 || sync.FinishedThreshold > 100 || sync.ReadingThreshold > sync.FinishedThreshold {
		return fmt.Errorf("%w: thresholds must satisfy 0 <= reading <= finished <= 100", ErrInvalidAppConfigs)
	}
	if sync.StatusSyncBuffer < 0 {
		return fmt.Errorf("%w: status sync buffer is negative", ErrInvalidAppConfigs)
	}

	return nil
}

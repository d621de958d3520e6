// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before any other source.
const (
	DefaultHTTPAddress          = "localhost:8080"
	DefaultRequestTimeout       = 60 * time.Second
	DefaultUpstreamURL          = "https://storeapi.kobo.com"
	DefaultUpstreamTimeout      = 30 * time.Second
	DefaultPageSize             = 100
	DefaultStatusSyncBuffer     = 10 * time.Second
	DefaultReadingThreshold     = 1.0
	DefaultFinishedThreshold    = 99.0
	DefaultCbxConversionLimitMB = 100
	DefaultTokenIssuer          = "go-kobo-sync"
	DefaultLogLevel             = "info"
	DefaultDSN                  = "kobo-sync.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
			Version:  "dev",
			Sync: Sync{
				PageSize:             DefaultPageSize,
				StatusSyncBuffer:     DefaultStatusSyncBuffer,
				ReadingThreshold:     DefaultReadingThreshold,
				FinishedThreshold:    DefaultFinishedThreshold,
				CbxConversionLimitMB: DefaultCbxConversionLimitMB,
			},
		},
		Auth: Auth{
			TokenIssuer: DefaultTokenIssuer,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    DefaultDSN,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			UpstreamURL:    DefaultUpstreamURL,
			RequestTimeout: DefaultUpstreamTimeout,
		},
	}
}

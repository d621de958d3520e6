package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON names and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		Version  string `json:"version"`
		Sync     struct {
			PageSize             int      `json:"page_size"`
			StatusSyncBuffer     Duration `json:"status_sync_buffer"`
			ReadingThreshold     float64  `json:"reading_threshold"`
			FinishedThreshold    float64  `json:"finished_threshold"`
			ConvertToKepub       bool     `json:"convert_to_kepub"`
			ConvertCbxToEpub     bool     `json:"convert_cbx_to_epub"`
			CbxConversionLimitMB int64    `json:"cbx_conversion_limit_mb"`
		} `json:"sync"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		PublicURL      string   `json:"public_url"`
	} `json:"server,omitempty"`

	Adapter struct {
		UpstreamURL    string   `json:"upstream_url"`
		RequestTimeout Duration `json:"request_timeout"`
		Disabled       bool     `json:"disabled"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			Version:  jsonCfg.App.Version,
			Sync: Sync{
				PageSize:             jsonCfg.App.Sync.PageSize,
				StatusSyncBuffer:     time.Duration(jsonCfg.App.Sync.StatusSyncBuffer),
				ReadingThreshold:     jsonCfg.App.Sync.ReadingThreshold,
				FinishedThreshold:    jsonCfg.App.Sync.FinishedThreshold,
				ConvertToKepub:       jsonCfg.App.Sync.ConvertToKepub,
				ConvertCbxToEpub:     jsonCfg.App.Sync.ConvertCbxToEpub,
				CbxConversionLimitMB: jsonCfg.App.Sync.CbxConversionLimitMB,
			},
		},
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			PublicURL:      jsonCfg.Server.PublicURL,
		},
		Adapter: Adapter{
			UpstreamURL:    jsonCfg.Adapter.UpstreamURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Disabled:       jsonCfg.Adapter.Disabled,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
type StructuredJSONConfig struct {
	App struct {
		Env     string `json:"env"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		APIBaseURL     string   `json:"api_base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Site struct {
		Address          string   `json:"address"`
		CacheTTL         Duration `json:"cache_ttl"`
		RotationInterval Duration `json:"rotation_interval"`
		AllowedOrigins   []string `json:"allowed_origins"`
	} `json:"site,omitempty"`
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
			Env:     jsonCfg.App.Env,
			Version: jsonCfg.App.Version,
		},
		Adapter: Adapter{
			APIBaseURL:     jsonCfg.Adapter.APIBaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Site: Site{
			Address:          jsonCfg.Site.Address,
			CacheTTL:         time.Duration(jsonCfg.Site.CacheTTL),
			RotationInterval: time.Duration(jsonCfg.Site.RotationInterval),
			AllowedOrigins:   jsonCfg.Site.AllowedOrigins,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

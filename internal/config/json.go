package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted by
// the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Name         string `json:"name"`
		Version      string `json:"version"`
		Debug        bool   `json:"debug"`
		IsProduction bool   `json:"is_production"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver              string   `json:"driver"`
			DSN                 string   `json:"dsn"`
			CreatedStamp        string   `json:"created_stamp"`
			Pooled              bool     `json:"pooled"`
			MaxOpenConns        int      `json:"max_open_conns"`
			RequireAffectedRows bool     `json:"require_affected_rows"`
			ConnectRetries      uint64   `json:"connect_retries"`
			ConnectRetryDelay   Duration `json:"connect_retry_delay"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		StaticDir      string   `json:"static_dir"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
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
			Name:         jsonCfg.App.Name,
			Version:      jsonCfg.App.Version,
			Debug:        jsonCfg.App.Debug,
			IsProduction: jsonCfg.App.IsProduction,
		},
		Storage: Storage{
			DB: DB{
				Driver:              jsonCfg.Storage.DB.Driver,
				DSN:                 jsonCfg.Storage.DB.DSN,
				CreatedStamp:        jsonCfg.Storage.DB.CreatedStamp,
				Pooled:              jsonCfg.Storage.DB.Pooled,
				MaxOpenConns:        jsonCfg.Storage.DB.MaxOpenConns,
				RequireAffectedRows: jsonCfg.Storage.DB.RequireAffectedRows,
				ConnectRetries:      jsonCfg.Storage.DB.ConnectRetries,
				ConnectRetryDelay:   time.Duration(jsonCfg.Storage.DB.ConnectRetryDelay),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			StaticDir:      jsonCfg.Server.StaticDir,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		JSONFilePath: "",
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

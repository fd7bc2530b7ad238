package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with durations decoded
// from strings such as "30s" or "24h".
type StructuredJSONConfig struct {
	App App `json:"app"`

	JWT struct {
		SignKey  string   `json:"sign_key"`
		Issuer   string   `json:"issuer"`
		Audience string   `json:"audience"`
		ValidFor Duration `json:"valid_for"`
	} `json:"jwt"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		StaticDir      string   `json:"static_dir"`
	} `json:"server"`

	Storage Storage `json:"storage"`

	Cache struct {
		Implementation   string   `json:"implementation"`
		DefaultTTL       Duration `json:"default_ttl"`
		EvictionInterval Duration `json:"eviction_interval"`
		Redis            Redis    `json:"redis"`
	} `json:"cache"`

	Hash           Hash           `json:"hash"`
	Files          Files          `json:"files"`
	Firebase       Firebase       `json:"firebase"`
	MobileSecurity MobileSecurity `json:"mobile_security"`
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
		App: jsonCfg.App,
		JWT: JWT{
			SignKey:  jsonCfg.JWT.SignKey,
			Issuer:   jsonCfg.JWT.Issuer,
			Audience: jsonCfg.JWT.Audience,
			ValidFor: time.Duration(jsonCfg.JWT.ValidFor),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			StaticDir:      jsonCfg.Server.StaticDir,
		},
		Storage: jsonCfg.Storage,
		Cache: Cache{
			Implementation:   jsonCfg.Cache.Implementation,
			DefaultTTL:       time.Duration(jsonCfg.Cache.DefaultTTL),
			EvictionInterval: time.Duration(jsonCfg.Cache.EvictionInterval),
			Redis:            jsonCfg.Cache.Redis,
		},
		Hash:           jsonCfg.Hash,
		Files:          jsonCfg.Files,
		Firebase:       jsonCfg.Firebase,
		MobileSecurity: jsonCfg.MobileSecurity,
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

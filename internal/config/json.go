package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version         string `json:"version"`
		CodecPassphrase string `json:"codec_passphrase"`
	} `json:"app,omitempty"`

	Ledger struct {
		Backend   string `json:"backend"`
		SafeIndex bool   `json:"safe_index"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`

		SQLitePath string `json:"sqlite_path"`
		GatewayURL string `json:"gateway_url"`
	} `json:"ledger,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Access struct {
		ContractAddress string `json:"contract_address"`
		ChainID         int64  `json:"chain_id"`
		DurationDays    int    `json:"duration_days"`
	} `json:"access,omitempty"`
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
			Version:         jsonCfg.App.Version,
			CodecPassphrase: jsonCfg.App.CodecPassphrase,
		},
		Ledger: Ledger{
			Backend:   jsonCfg.Ledger.Backend,
			SafeIndex: jsonCfg.Ledger.SafeIndex,
			Redis: Redis{
				Address:  jsonCfg.Ledger.Redis.Address,
				Password: jsonCfg.Ledger.Redis.Password,
				DB:       jsonCfg.Ledger.Redis.DB,
			},
			SQLitePath: jsonCfg.Ledger.SQLitePath,
			GatewayURL: jsonCfg.Ledger.GatewayURL,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Access: Access{
			ContractAddress: jsonCfg.Access.ContractAddress,
			ChainID:         jsonCfg.Access.ChainID,
			DurationDays:    jsonCfg.Access.DurationDays,
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

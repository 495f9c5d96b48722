package config

import (
	"encoding/json"
	"os"

	"github.com/beaconhq/beacon-go/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Zero-value
// fields are treated as absent and do not overwrite earlier layers.
type JsonConfig struct {
	IngestEndpoint string `json:"ingest_endpoint"`
	APIKey         string `json:"api_key"`
	AppVersion     string `json:"app_version"`
	UserID         string `json:"user_id"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file
// path comes from the -c or -config flags; when neither is given no JSON
// is loaded. Read or unmarshal errors panic (caller may recover).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.IngestEndpoint != "" {
		cfg.IngestEndpoint = jc.IngestEndpoint
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.AppVersion != "" {
		cfg.AppVersion = jc.AppVersion
	}
	if jc.UserID != "" {
		cfg.UserID = jc.UserID
	}
}

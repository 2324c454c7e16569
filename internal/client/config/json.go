package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mbelyaev/eventmap-client/internal/flagx"
	"github.com/mbelyaev/eventmap-client/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify timeouts either as strings like "10s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	ServerEndpointURL string         `json:"server_endpoint_url"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	CachePath         string         `json:"cache_path"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. With no flag, nothing is loaded. Read or
// unmarshal errors panic; config is resolved once at startup and a broken
// file should stop the program immediately.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
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

	if jc.ServerEndpointURL != "" {
		cfg.ServerEndpointURL = jc.ServerEndpointURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.CachePath != "" {
		cfg.CachePath = jc.CachePath
	}
}

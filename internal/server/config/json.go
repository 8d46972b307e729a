package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/ecosocial/internal/flagx"
	"github.com/dmitrijs2005/ecosocial/internal/timex"
	"github.com/samber/oops"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// both "10s" strings and integer nanoseconds. Pointer fields distinguish
// absent keys from zero values so a partial file only overrides what it
// names.
type JsonConfig struct {
	EndpointAddrHTTP *string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC *string         `json:"endpoint_addr_grpc"`
	Storage          *string         `json:"storage"`
	DatabaseDSN      *string         `json:"database_dsn"`
	LogLevel         *string         `json:"log_level"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
	Argon2Time       *uint32         `json:"argon2_time"`
	Argon2Memory     *uint32         `json:"argon2_memory"`
	Argon2Threads    *uint8          `json:"argon2_threads"`
	TokenBytes       *int            `json:"token_bytes"`
}

// parseJson overlays values from the file named by -c or -config. Without
// either flag nothing is loaded.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return oops.Code("CONFIG_INVALID").With("path", path).Wrapf(err, "reading config file")
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return oops.Code("CONFIG_INVALID").With("path", path).Wrapf(err, "decoding config file")
	}

	setIf(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.Storage, c.Storage)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.LogLevel, c.LogLevel)
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	setIf(&config.Argon2Time, c.Argon2Time)
	setIf(&config.Argon2Memory, c.Argon2Memory)
	setIf(&config.Argon2Threads, c.Argon2Threads)
	setIf(&config.TokenBytes, c.TokenBytes)

	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

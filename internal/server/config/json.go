package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/courtbook/internal/flagx"
	"github.com/dmitrijs2005/courtbook/internal/timex"
)

// JsonConfig is the on-disk shape of the -c/-config file. Durations accept
// either "10s" style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP            string         `json:"endpoint_addr_http"`
	Store                       string         `json:"store"`
	MongoURI                    string         `json:"mongo_uri"`
	MongoDatabase               string         `json:"mongo_database"`
	MongoConnectTimeout         timex.Duration `json:"mongo_connect_timeout"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	PasswordCost                int            `json:"password_cost"`
	LogLevel                    string         `json:"log_level"`
}

// parseJson overlays values from the file given with -c or -config. Keys
// missing from the file leave the current value untouched. An unreadable
// file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	overlay(&config.Store, c.Store)
	overlay(&config.MongoURI, c.MongoURI)
	overlay(&config.MongoDatabase, c.MongoDatabase)
	overlay(&config.MongoConnectTimeout, c.MongoConnectTimeout.Duration)
	overlay(&config.SecretKey, c.SecretKey)
	overlay(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration.Duration)
	overlay(&config.PasswordCost, c.PasswordCost)
	overlay(&config.LogLevel, c.LogLevel)
}

func overlay[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}

// Package config handles configuration for the server: defaults, a dotenv
// file and COURTBOOK_* environment variables, a JSON overlay and finally
// command-line flags, each layer overriding the previous one.
package config

import "time"

// Store backends accepted in Config.Store.
const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Config holds runtime settings for the courtbook server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP API.
//   - Store: StoreMongo or StoreMemory.
//   - MongoURI / MongoDatabase: connection string and database name.
//   - MongoConnectTimeout: bound on connect plus initial ping.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default in prod.
//   - AccessTokenValidityDuration: access token lifetime.
//   - PasswordCost: bcrypt cost for stored passwords.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP            string
	Store                       string
	MongoURI                    string
	MongoDatabase               string
	MongoConnectTimeout         time.Duration
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	PasswordCost                int
	LogLevel                    string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key is insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.Store = StoreMongo
	c.MongoURI = "mongodb://localhost:27017"
	c.MongoDatabase = "courtbook"
	c.MongoConnectTimeout = 10 * time.Second
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 60 * time.Minute
	c.PasswordCost = 10
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then the environment,
// then an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

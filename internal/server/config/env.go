package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/courtbook/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Environment variables read by parseEnv.
const (
	EnvAddress        = "COURTBOOK_ADDRESS"
	EnvStore          = "COURTBOOK_STORE"
	EnvMongoURI       = "COURTBOOK_MONGO_URI"
	EnvMongoDatabase  = "COURTBOOK_MONGO_DATABASE"
	EnvMongoTimeout   = "COURTBOOK_MONGO_TIMEOUT"
	EnvSecretKey      = "COURTBOOK_SECRET_KEY"
	EnvAccessTokenTTL = "COURTBOOK_ACCESS_TOKEN_TTL"
	EnvPasswordCost   = "COURTBOOK_PASSWORD_COST"
	EnvLogLevel       = "COURTBOOK_LOG_LEVEL"
)

// parseEnv loads the dotenv file named by -env-file (default ".env") into
// the process environment and then copies the COURTBOOK_* variables that are
// set into config. Variables already present in the environment take
// precedence over the file. A missing default file is not an error; a
// missing explicit file, or a malformed value, panics.
func parseEnv(config *Config) {
	file := flagx.EnvFileFlag()
	explicit := file != ""
	if !explicit {
		file = defaultEnvFile
	}

	if err := godotenv.Load(file); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			panic(fmt.Errorf("loading %s: %w", file, err))
		}
	}

	setString(&config.EndpointAddrHTTP, EnvAddress)
	setString(&config.Store, EnvStore)
	setString(&config.MongoURI, EnvMongoURI)
	setString(&config.MongoDatabase, EnvMongoDatabase)
	setDuration(&config.MongoConnectTimeout, EnvMongoTimeout)
	setString(&config.SecretKey, EnvSecretKey)
	setDuration(&config.AccessTokenValidityDuration, EnvAccessTokenTTL)
	setInt(&config.PasswordCost, EnvPasswordCost)
	setString(&config.LogLevel, EnvLogLevel)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	*dst = d
}

func setInt(dst *int, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	*dst = n
}

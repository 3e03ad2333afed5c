package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/courtbook/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string      HTTP bind address (e.g. ":8080")
//	-store string  mongo or memory
//	-d string      MongoDB connection URI
//	-n string      MongoDB database name
//	-w int         MongoDB connect timeout, seconds
//	-s string      JWT HMAC secret key
//	-t int         access token validity, minutes
//	-cost int      bcrypt cost
//	-l string      log level
//
// os.Args is filtered with flagx.FilterArgs first so -c, -env-file and any
// other component's flags are ignored here.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-store", "-d", "-n", "-w", "-s", "-t", "-cost", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.Store, "store", config.Store, "store backend: mongo or memory")
	fs.StringVar(&config.MongoURI, "d", config.MongoURI, "MongoDB URI")
	fs.StringVar(&config.MongoDatabase, "n", config.MongoDatabase, "MongoDB database name")
	connectTimeout := fs.Int("w", int(config.MongoConnectTimeout.Seconds()), "MongoDB connect timeout (in seconds)")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	fs.IntVar(&config.PasswordCost, "cost", config.PasswordCost, "bcrypt cost")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.MongoConnectTimeout = time.Duration(*connectTimeout) * time.Second
	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}

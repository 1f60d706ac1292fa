package config

import (
	"flag"
	"os"
	"time"

	"github.com/joshradin/federeddit/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags:
//
//	-a string   HTTP bind address (e.g. ":8081")
//	-d string   PostgreSQL DSN
//	-s string   token signing secret
//	-t int      token validity, hours
//
// os.Args is filtered to the flags handled here so other components'
// flags do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t"})

	fs := flag.NewFlagSet("usersvc", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run the server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "token signing secret")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Hours()), "token validity (in hours)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Hour
}

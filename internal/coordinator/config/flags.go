package config

import (
	"flag"
	"os"
	"time"

	"github.com/joshradin/federeddit/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags:
//
//	-a string   HTTP bind address (e.g. ":8080")
//	-u string   users-service base URL
//	-w int      auth call timeout, seconds
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-w"})

	fs := flag.NewFlagSet("coordinator", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run the server")
	fs.StringVar(&config.AuthorityURL, "u", config.AuthorityURL, "users service base URL")

	authTimeout := fs.Int("w", int(config.AuthTimeout.Seconds()), "auth call timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AuthTimeout = time.Duration(*authTimeout) * time.Second
}

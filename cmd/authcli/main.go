package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joshradin/federeddit/internal/cli"
	"github.com/joshradin/federeddit/internal/client"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-s server] register|login\n", os.Args[0])
	os.Exit(2)
}

func main() {
	server := flag.String("s", "http://localhost:8081", "users service base URL")
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
	}

	c := client.NewHTTPClient(*server, 10*time.Second)
	app := cli.NewApp(c, os.Stdin, os.Stdout)
	ctx := context.Background()

	var err error
	switch flag.Arg(0) {
	case "register":
		err = app.Register(ctx)
	case "login":
		err = app.LogIn(ctx)
	default:
		usage()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

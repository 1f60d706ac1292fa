package main

import (
	"context"
	"log"

	"github.com/joshradin/federeddit/internal/server"
	"github.com/joshradin/federeddit/internal/server/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app := server.NewApp(cfg)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

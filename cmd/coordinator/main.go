package main

import (
	"context"
	"log"

	"github.com/joshradin/federeddit/internal/coordinator"
	"github.com/joshradin/federeddit/internal/coordinator/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app := coordinator.NewApp(cfg)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/userdesk/internal/client/cli"
	"github.com/dmitrijs2005/userdesk/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, closeDB, err := cli.NewAppFromConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer func() {
		if err := closeDB(); err != nil {
			log.Printf("close database: %v", err)
		}
	}()

	app.Run(ctx)

}

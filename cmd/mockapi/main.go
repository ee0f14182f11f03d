package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/userdesk/internal/mockapi"
	"github.com/dmitrijs2005/userdesk/internal/mockapi/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	if err := mockapi.NewApp(cfg).Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}

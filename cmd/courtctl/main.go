package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/courtbook/internal/admin"
	"github.com/dmitrijs2005/courtbook/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	if err := admin.Run(ctx, os.Args[1:], cfg, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}

}

package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/ecosocial/internal/buildinfo"
	"github.com/dmitrijs2005/ecosocial/internal/server"
	"github.com/dmitrijs2005/ecosocial/internal/server/config"
	"github.com/joho/godotenv"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	// a missing .env is fine
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/mkornilov/tastebook/internal/buildinfo"
	"github.com/mkornilov/tastebook/internal/client/cli"
	"github.com/mkornilov/tastebook/internal/client/config"
	"github.com/mkornilov/tastebook/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}

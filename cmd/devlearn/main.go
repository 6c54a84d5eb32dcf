package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/devlearn/internal/buildinfo"
	"github.com/dmitrijs2005/devlearn/internal/cli"
	"github.com/dmitrijs2005/devlearn/internal/config"
	"github.com/dmitrijs2005/devlearn/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	go func() {
		<-ctx.Done()
		_ = os.Stdin.Close()
	}()

	app.Run(ctx)

	if err := app.Close(context.Background()); err != nil {
		logger.Error(context.Background(), "error closing app", "err", err)
	}
}

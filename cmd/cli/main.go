package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/greencareers/internal/client/cli"
	"github.com/dmitrijs2005/greencareers/internal/client/config"
	"github.com/dmitrijs2005/greencareers/internal/flagx"
)

var configFlags = []string{"-a", "-k", "-tf", "-rt", "-c", "-config"}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx, flagx.Positional(os.Args[1:], configFlags)); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			log.Printf("%v", err)
		}
		os.Exit(1)
	}

}

package main

import (
	"context"
	"errors"
	"os"

	"github.com/azuraxkenya/megaon/internal/app"
	"github.com/azuraxkenya/megaon/internal/config"
	"github.com/azuraxkenya/megaon/internal/logger"
)

func main() {
	l := logger.New(os.Stdout)

	err := app.New(config.MustLoadConfig(), l).Run()
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		l.Info("graceful shutdown")
	default:
		l.WithError(err).Fatal("server stopped")
	}
}

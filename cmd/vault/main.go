package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := newApplication(os.Stdin, os.Stdout, os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	err := app.rootCommand().ExecuteContext(ctx)
	app.close()
	stop()

	if err != nil {
		app.report(err)
		os.Exit(1)
	}
}

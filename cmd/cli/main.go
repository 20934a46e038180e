package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/xJoaG/cpphub-cli/internal/buildinfo"
	"github.com/xJoaG/cpphub-cli/internal/client/cli"
	"github.com/xJoaG/cpphub-cli/internal/client/config"
	"github.com/xJoaG/cpphub-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}

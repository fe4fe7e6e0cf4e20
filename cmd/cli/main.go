package main

import (
	"context"

	"github.com/dmitrijs2005/studyhub/internal/client/cli"
	"github.com/dmitrijs2005/studyhub/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app := cli.NewApp(cfg)
	app.Run(ctx)

}

package main

import (
	"context"
	"log"
	"os"

	"github.com/easyapt/easyapt-go/internal/buildinfo"
	"github.com/easyapt/easyapt-go/internal/client/cli"
	"github.com/easyapt/easyapt-go/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}

package main

import (
	"context"
	"flag"
	"os"

	platformcmd "github.com/louisbranch/randomzh/internal/platform/cmd"
	"github.com/louisbranch/randomzh/internal/platform/config"
	"github.com/louisbranch/randomzh/internal/tools/randomzh"
)

func main() {
	cfg, err := randomzh.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse config: %v", err)
	}

	err = platformcmd.RunWithTelemetry(context.Background(), platformcmd.ServiceRandomZH, func(ctx context.Context) error {
		return randomzh.Run(ctx, cfg, os.Stdout, os.Stderr)
	})
	if err != nil {
		config.Exitf("Error: %v", err)
	}
}

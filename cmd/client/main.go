package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/proxin187/Server-For-School/internal/app"
	"github.com/proxin187/Server-For-School/internal/shared/config"
	"github.com/proxin187/Server-For-School/internal/shared/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run returns the process exit code: 0 once the greeting is sent, 1 on
// any config, connect or send failure, 2 on bad flags.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("client", flag.ContinueOnError)
	flags.SetOutput(stderr)
	iniPath := flags.String("config", "configs/client.ini", "Path to client.ini (optional)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	// 1. Load config; a missing file means built-in defaults.
	cfg, err := config.Load(*iniPath)
	if err != nil {
		// Use standard fmt before logger is initialized.
		fmt.Fprintf(stderr, "Fatal: %v\n", err)
		return 1
	}

	// 2. Logger
	if err := logger.Init(cfg.LogConf, stderr); err != nil {
		fmt.Fprintf(stderr, "Fatal: Failed to initialize logger: %v\n", err)
		return 1
	}

	client, err := app.NewClient(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create client")
		return 1
	}
	endpoint := client.Endpoint()
	logger.Debug().
		Str("host", endpoint.Host).
		Uint16("port", endpoint.Port.Value()).
		Int("connect_timeout", cfg.ConnectTimeout).
		Int("write_timeout", cfg.WriteTimeout).
		Msg("Client configured")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. One connect, one send.
	if err := client.Run(ctx); err != nil {
		logger.Error().Err(err).Str("endpoint", endpoint.Address()).Msg("Greeting run failed")
		return 1
	}
	return 0
}

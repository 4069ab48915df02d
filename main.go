package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-sim/utils"
	"github.com/sheikhrachel/gol-sim/view"
)

const defaultConfigFile = "config.json"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "gol:", err)
		os.Exit(1)
	}
}

// loadConfig reads the JSON config file (GOL_CONFIG, or config.json) and then
// applies command line flags on top of it
func loadConfig(args []string) (utils.Config, error) {
	filename := os.Getenv("GOL_CONFIG")
	if filename == "" {
		filename = defaultConfigFile
	}

	config, err := utils.LoadConfig(filename)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		// Load configuration - fallback to defaults if file doesn't exist
		config = utils.DefaultConfig()
	}

	fs := flag.NewFlagSet("gol", flag.ContinueOnError)
	config.Bind(fs)
	if err = fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[loadConfig] failed to parse flags")
	}
	return config, nil
}

func run(args []string) error {
	config, err := loadConfig(args)
	if err != nil {
		return err
	}

	a, err := initializeGame(config)
	if err != nil {
		return err
	}
	defer a.close()

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting",
		"width", config.Width, "height", config.Height,
		"tps", config.TicksPerSecond, "headless", config.Headless,
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return a.driver.Run(ctx)
	})
	eg.Go(func() error {
		return a.consumer.Run(ctx)
	})

	err = eg.Wait()
	if errors.Is(err, view.ErrQuit) || errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		a.logger.Error("shutting down", "err", err)
		return err
	}
	a.logger.Info("shut down gracefully")
	return nil
}

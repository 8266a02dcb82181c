//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"exacto/app"
	"exacto/hal"
	"exacto/internal/buildinfo"
	"exacto/internal/config"
	"exacto/internal/logging"
)

type options struct {
	headless   bool
	terminal   bool
	hz         int
	ticks      uint64
	script     string
	configPath string
	noColor    bool
}

func main() {
	var opts options
	flags := pflag.NewFlagSet("exacto", pflag.ExitOnError)
	flags.BoolVar(&opts.headless, "headless", false, "Run without a window.")
	flags.BoolVar(&opts.terminal, "terminal", false, "Render the sight in the terminal.")
	flags.IntVar(&opts.hz, "hz", 0, "Tick rate for headless and terminal mode.")
	flags.Uint64Var(&opts.ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flags.StringVar(&opts.script, "script", "", "Encoder script for headless mode: '<' up, '>' down, '.' click.")
	flags.StringVar(&opts.configPath, "config", "", "Firing profile (yaml, json or toml).")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored log output.")
	flags.String("log-level", "info", "Log level: trace, debug, info, warn, error.")
	flags.Int("range", 10, "Initial range in meters.")
	_ = flags.Parse(os.Args[1:])

	_ = viper.BindPFlag("logLevel", flags.Lookup("log-level"))
	_ = viper.BindPFlag("range", flags.Lookup("range"))

	if err := run(opts); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if err := config.Load(opts.configPath); err != nil {
		return err
	}
	profile, err := config.Current()
	if err != nil {
		return err
	}

	log := logging.New(os.Stderr, profile.LogLevel, opts.noColor)
	engine, err := profile.Config()
	if err != nil {
		return err
	}

	cfg := app.DefaultConfig()
	cfg.Sight = profile.Sight()
	cfg.Engine = engine
	if opts.headless {
		cfg.SplashFrames = 0
	}

	log.Info().
		Str("version", buildinfo.Short()).
		Str("config", viper.ConfigFileUsed()).
		Int("range", int(cfg.Sight.Range)).
		Msg("starting " + buildinfo.Name)

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case opts.headless:
		return hal.RunHeadless(ctx, log, newApp, hal.HeadlessConfig{Hz: opts.hz, Ticks: opts.ticks, Script: opts.script})
	case opts.terminal:
		return hal.RunTerminal(ctx, log, newApp, hal.TerminalConfig{Hz: opts.hz})
	}
	if opts.script != "" {
		log.Warn().Msg("--script only applies to --headless")
	}
	return hal.RunWindow(log, newApp)
}

// Command drifttable prints the engine's drift over a range sweep for a
// firing profile.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"exacto/internal/config"
	"exacto/internal/logging"
)

func main() {
	flags := pflag.NewFlagSet("drifttable", pflag.ExitOnError)
	from := flags.Int("from", 5, "First range in meters.")
	to := flags.Int("to", 100, "Last range in meters.")
	every := flags.Int("every", 5, "Range increment in meters.")
	configPath := flags.String("config", "", "Firing profile (yaml, json or toml).")
	logLevel := flags.String("log-level", "warn", "Log level.")
	_ = flags.Parse(os.Args[1:])

	log := logging.New(os.Stderr, *logLevel, false)

	if err := config.Load(*configPath); err != nil {
		log.Fatal().Err(err).Msg("load profile")
	}
	profile, err := config.Current()
	if err != nil {
		log.Fatal().Err(err).Msg("profile")
	}
	cfg, err := profile.Config()
	if err != nil {
		log.Fatal().Err(err).Msg("engine config")
	}
	log.Debug().Interface("profile", profile).Msg("loaded")

	rows, err := sweep(cfg, *from, *to, *every)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := writeTable(os.Stdout, rows); err != nil {
		log.Fatal().Err(err).Msg("write table")
	}
}

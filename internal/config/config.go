// Package config is for app wide settings that are unmarshalled
// from Viper (see: /internal/cli)
package config

import (
	"log"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/centerstar-bio/starmsa/internal/alignment"
)

// ScoringConfig holds the alignment scoring values
type ScoringConfig struct {
	// score added when aligned bases match
	Match int `mapstructure:"match"`

	// score added when aligned bases differ
	Mismatch int `mapstructure:"mismatch"`

	// score added per gap position
	Gap int `mapstructure:"gap"`
}

// ServerConfig is settings for the HTTP server
type ServerConfig struct {
	// host to bind to
	Host string `mapstructure:"host"`

	// port to listen on
	Port int `mapstructure:"port"`
}

// OutputConfig is settings for formatted output
type OutputConfig struct {
	// column width for wrapped FASTA output
	Width int `mapstructure:"width"`
}

// Config is the root-level settings struct and is a mix
// of settings available in starmsa.yaml and those
// available from the command line
type Config struct {
	// alignment scoring values
	Scoring ScoringConfig `mapstructure:"scoring"`

	// number of goroutines for the score matrix phase
	Workers int `mapstructure:"workers"`

	// HTTP server settings
	Server ServerConfig `mapstructure:"server"`

	// output settings
	Output OutputConfig `mapstructure:"output"`
}

// Setup registers defaults and reads starmsa.yaml from the working
// directory or $HOME, if present. Settings can be overridden with
// STARMSA_* environment variables.
func Setup() {
	viper.SetDefault("scoring.match", 1)
	viper.SetDefault("scoring.mismatch", -1)
	viper.SetDefault("scoring.gap", -2)
	viper.SetDefault("workers", runtime.NumCPU())
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("output.width", 80)

	viper.SetConfigName("starmsa")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")

	viper.SetEnvPrefix("STARMSA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("reading config file: %v", err)
		}
	}
}

// New returns a new Config struct populated by
// Viper settings (either from the local starmsa.yaml)
// and/or command line arguments
func New() Config {
	var c Config

	err := viper.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return c
}

// Scheme returns the scoring scheme described by the config.
func (c Config) Scheme() *alignment.ScoringScheme {
	return alignment.NewScoringScheme(c.Scoring.Match, c.Scoring.Mismatch, c.Scoring.Gap)
}

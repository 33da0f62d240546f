package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Defaults match the layout the dashboard grew up with: the document next
// to the tool, the JV-Link export where the collector drops it.
const (
	defaultDataFile = "data_2026.json"
	defaultJVLinkDB = "jvlink.db"
)

// config holds the file locations, the only setup that differs per machine.
type config struct {
	DataFile string `yaml:"data_file"`
	JVLinkDB string `yaml:"jvlink_db"`
}

// loadConfig reads the YAML config file, then applies environment variable
// overrides. A missing file is fine; every field has a default.
func loadConfig(path string) config {
	var cfg config

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("file", path).Msg("cannot read config")
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Warn().Err(err).Str("file", path).Msg("cannot parse config")
			cfg = config{}
		}
	}

	if v := os.Getenv("KD_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("KD_JVLINK_DB"); v != "" {
		cfg.JVLinkDB = v
	}
	return cfg
}

// ledgerPath resolves the ledger document location: flag, then env/config,
// then default.
func ledgerPath() string {
	if *dataFile != "" {
		return *dataFile
	}
	if cfg := loadConfig(*configFile); cfg.DataFile != "" {
		return cfg.DataFile
	}
	return defaultDataFile
}

// jvlinkPath resolves the JV-Link database location the same way.
func jvlinkPath() string {
	if *jvlinkFile != "" {
		return *jvlinkFile
	}
	if cfg := loadConfig(*configFile); cfg.JVLinkDB != "" {
		return cfg.JVLinkDB
	}
	return defaultJVLinkDB
}

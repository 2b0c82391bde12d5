package config

import (
	"time"

	"hydro/core"

	"github.com/fox-one/pkg/config"
)

const (
	defaultChainID         = 1
	defaultWatcherInterval = 15 * time.Second
)

// Load load config file, HYDRO_* env vars override the file
func Load(cfgFile string, cfg *core.Config) error {
	config.AutomaticLoadEnv("HYDRO")
	if err := config.LoadYaml(cfgFile, cfg); err != nil {
		return err
	}

	defaults(cfg)
	return nil
}

func defaults(cfg *core.Config) {
	if cfg.Ethereum.ChainID == 0 {
		cfg.Ethereum.ChainID = defaultChainID
	}

	if cfg.Watcher.Interval <= 0 {
		cfg.Watcher.Interval = defaultWatcherInterval
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 9000
	}
}

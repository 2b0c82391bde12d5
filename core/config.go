package core

import (
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Config hydro client config
type Config struct {
	App      App       `json:"app"`
	Ethereum Ethereum  `json:"ethereum"`
	Hydro    Hydro     `json:"hydro"`
	Wallet   Wallet    `json:"wallet"`
	DB       db.Config `json:"db"`
	Watcher  Watcher   `json:"watcher"`
	Server   Server    `json:"server"`
}

// App app config
type App struct {
	Location string `json:"location"`
}

// Ethereum node config
type Ethereum struct {
	NodeURL string `json:"node_url"`
	ChainID int64  `json:"chain_id"`
}

// Hydro protocol contract config
type Hydro struct {
	Address string `json:"address"`
}

// Wallet signing wallet config
type Wallet struct {
	PrivateKey string `json:"private_key"`
	GasLimit   uint64 `json:"gas_limit"`
	// GasPrice in wei, zero means suggested by the node
	GasPrice int64 `json:"gas_price"`
}

// Watcher auction watcher config
type Watcher struct {
	Interval time.Duration `json:"interval"`
}

// Server api server config
type Server struct {
	Port int `json:"port"`
}

// HasDB check if fill history is enabled
func (c *Config) HasDB() bool {
	return c.DB.Dialect != ""
}

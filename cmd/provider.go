package cmd

import (
	"math/big"
	"time"

	"hydro/core"
	"hydro/service/asset"
	"hydro/service/auction"
	"hydro/service/fund"
	"hydro/service/protocol"
	"hydro/service/reader"
	"hydro/store/fill"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
)

const assetCacheExpiration = time.Hour

func provideConfig() *core.Config {
	return &cfg
}

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideEthClient() *ethclient.Client {
	client, err := ethclient.Dial(cfg.Ethereum.NodeURL)
	if err != nil {
		panic(err)
	}

	return client
}

func provideContract() common.Address {
	if !common.IsHexAddress(cfg.Hydro.Address) {
		panic("invalid hydro contract address: " + cfg.Hydro.Address)
	}

	return common.HexToAddress(cfg.Hydro.Address)
}

func provideTransactOpts() *bind.TransactOpts {
	key, err := crypto.HexToECDSA(cfg.Wallet.PrivateKey)
	if err != nil {
		panic(err)
	}

	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(cfg.Ethereum.ChainID))
	if err != nil {
		panic(err)
	}

	auth.GasLimit = cfg.Wallet.GasLimit
	if cfg.Wallet.GasPrice > 0 {
		auth.GasPrice = big.NewInt(cfg.Wallet.GasPrice)
	}

	return auth
}

// ---------------store-----------------------------------------

// provideFillStore nil without db config, fill history is optional
func provideFillStore() core.IFillStore {
	if !cfg.HasDB() {
		return nil
	}

	return fill.New(provideDatabase())
}

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

// ------------------service------------------------------------

func provideProtocolReader(client *ethclient.Client) core.IProtocolReader {
	return protocol.NewReader(provideContract(), client)
}

func provideProtocolTransactor(client *ethclient.Client, auth *bind.TransactOpts) core.IProtocolTransactor {
	return protocol.NewTransactor(provideContract(), client, auth)
}

func provideAssetService(client *ethclient.Client) core.IAssetService {
	return asset.New(client, assetCacheExpiration)
}

func provideAuctionService(
	reader core.IProtocolReader,
	transactor core.IProtocolTransactor,
	assets core.IAssetService,
	fills core.IFillStore,
) core.IAuctionService {
	return auction.New(reader, transactor, assets, fills)
}

func provideFundService(transactor core.IProtocolTransactor) core.IFundService {
	return fund.New(transactor)
}

func provideReportService(
	protocol core.IProtocolReader,
	assets core.IAssetService,
	auctions core.IAuctionService,
) core.IReportService {
	return reader.New(protocol, assets, auctions)
}

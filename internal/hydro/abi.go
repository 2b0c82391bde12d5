package hydro

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// HydroABI subset of the hydro v2 contract abi used by this client
const HydroABI = `[
{"type":"function","name":"getAllMarketsCount","stateMutability":"view","inputs":[],"outputs":[{"name":"count","type":"uint256"}]},
{"type":"function","name":"getMarket","stateMutability":"view","inputs":[{"name":"marketID","type":"uint16"}],"outputs":[{"name":"market","type":"tuple","components":[
	{"name":"baseAsset","type":"address"},
	{"name":"quoteAsset","type":"address"},
	{"name":"liquidateRate","type":"uint256"},
	{"name":"withdrawRate","type":"uint256"},
	{"name":"auctionRatioStart","type":"uint256"},
	{"name":"auctionRatioPerBlock","type":"uint256"},
	{"name":"borrowEnable","type":"bool"}]}]},
{"type":"function","name":"getAsset","stateMutability":"view","inputs":[{"name":"assetAddress","type":"address"}],"outputs":[{"name":"asset","type":"tuple","components":[
	{"name":"lendingPoolToken","type":"address"},
	{"name":"priceOracle","type":"address"},
	{"name":"interestModel","type":"address"}]}]},
{"type":"function","name":"getAssetOraclePrice","stateMutability":"view","inputs":[{"name":"assetAddress","type":"address"}],"outputs":[{"name":"price","type":"uint256"}]},
{"type":"function","name":"getTotalBorrow","stateMutability":"view","inputs":[{"name":"asset","type":"address"}],"outputs":[{"name":"amount","type":"uint256"}]},
{"type":"function","name":"getTotalSupply","stateMutability":"view","inputs":[{"name":"asset","type":"address"}],"outputs":[{"name":"amount","type":"uint256"}]},
{"type":"function","name":"getInterestRates","stateMutability":"view","inputs":[{"name":"asset","type":"address"},{"name":"extraBorrowAmount","type":"uint256"}],"outputs":[{"name":"borrowInterestRate","type":"uint256"},{"name":"supplyInterestRate","type":"uint256"}]},
{"type":"function","name":"getInsuranceBalance","stateMutability":"view","inputs":[{"name":"asset","type":"address"}],"outputs":[{"name":"amount","type":"uint256"}]},
{"type":"function","name":"getAuctionsCount","stateMutability":"view","inputs":[],"outputs":[{"name":"count","type":"uint32"}]},
{"type":"function","name":"getCurrentAuctions","stateMutability":"view","inputs":[],"outputs":[{"name":"auctionIDs","type":"uint32[]"}]},
{"type":"function","name":"getAuctionDetails","stateMutability":"view","inputs":[{"name":"auctionID","type":"uint32"}],"outputs":[{"name":"details","type":"tuple","components":[
	{"name":"borrower","type":"address"},
	{"name":"marketID","type":"uint16"},
	{"name":"debtAsset","type":"address"},
	{"name":"collateralAsset","type":"address"},
	{"name":"leftDebtAmount","type":"uint256"},
	{"name":"leftCollateralAmount","type":"uint256"},
	{"name":"ratio","type":"uint256"},
	{"name":"price","type":"uint256"},
	{"name":"finished","type":"bool"}]}]},
{"type":"function","name":"isAccountLiquidatable","stateMutability":"view","inputs":[{"name":"user","type":"address"},{"name":"marketID","type":"uint16"}],"outputs":[{"name":"isLiquidatable","type":"bool"}]},
{"type":"function","name":"getAccountDetails","stateMutability":"view","inputs":[{"name":"user","type":"address"},{"name":"marketID","type":"uint16"}],"outputs":[{"name":"details","type":"tuple","components":[
	{"name":"liquidatable","type":"bool"},
	{"name":"status","type":"uint8"},
	{"name":"debtsTotalUSDValue","type":"uint256"},
	{"name":"balancesTotalUSDValue","type":"uint256"}]}]},
{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"asset","type":"address"},{"name":"user","type":"address"}],"outputs":[{"name":"balance","type":"uint256"}]},
{"type":"function","name":"marketBalanceOf","stateMutability":"view","inputs":[{"name":"marketID","type":"uint16"},{"name":"asset","type":"address"},{"name":"user","type":"address"}],"outputs":[{"name":"balance","type":"uint256"}]},
{"type":"function","name":"getAmountSupplied","stateMutability":"view","inputs":[{"name":"asset","type":"address"},{"name":"user","type":"address"}],"outputs":[{"name":"amount","type":"uint256"}]},
{"type":"function","name":"getAmountBorrowed","stateMutability":"view","inputs":[{"name":"asset","type":"address"},{"name":"user","type":"address"},{"name":"marketID","type":"uint16"}],"outputs":[{"name":"amount","type":"uint256"}]},
{"type":"function","name":"batch","stateMutability":"payable","inputs":[{"name":"actions","type":"tuple[]","components":[
	{"name":"actionType","type":"uint8"},
	{"name":"encodedParams","type":"bytes"}]}],"outputs":[]},
{"type":"function","name":"fillAuctionWithAmount","stateMutability":"nonpayable","inputs":[{"name":"auctionID","type":"uint32"},{"name":"amount","type":"uint256"}],"outputs":[]}
]`

// ERC20ABI erc20 methods used for asset metadata
const ERC20ABI = `[
{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

var (
	// Hydro parsed hydro abi
	Hydro = mustParse(HydroABI)
	// ERC20 parsed erc20 abi
	ERC20 = mustParse(ERC20ABI)
)

func mustParse(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}

	return parsed
}

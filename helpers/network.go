package helpers

import "github.com/btcsuite/btcd/chaincfg"

const (
	Mainnet  = "mainnet"
	Testnet4 = "testnet4"
	Regtest  = "regtest"
)

// Networks lists the chains spaced can run on.
var Networks = []string{Mainnet, Testnet4, Regtest}

// NetworkParams returns address parameters for a network name, nil if unknown.
// testnet4 shares testnet3's address encoding.
func NetworkParams(network string) *chaincfg.Params {
	switch network {
	case Mainnet:
		return &chaincfg.MainNetParams
	case Testnet4, "testnet":
		return &chaincfg.TestNet3Params
	case Regtest:
		return &chaincfg.RegressionNetParams
	default:
		return nil
	}
}

package conf

import (
	"marketscan/common/types"
)

// Network chain-specific addresses of the marketplace and token contracts
type Network struct {
	Name         string
	Url          string                   //node url, %s is replaced with the configured api key
	Marketplace  types.Address            //marketplace contract emitting order events
	LANDProxy    types.Address            //LAND registry proxy
	EstateProxy  types.Address            //estate registry proxy
	DCLRegistrar types.Address            //name registrar
	Wearables    map[types.Address]string //wearable collection contract to collection tag
}

// CategoryOf resolves a token contract to its category.
func (n *Network) CategoryOf(addr types.Address) types.Category {
	switch addr {
	case n.LANDProxy:
		return types.CategoryParcel
	case n.EstateProxy:
		return types.CategoryEstate
	case n.DCLRegistrar:
		return types.CategoryENS
	}
	if _, ok := n.Wearables[addr]; ok {
		return types.CategoryWearable
	}
	return types.CategoryOther
}

// TokenContracts all contracts whose Transfer events are indexed.
func (n *Network) TokenContracts() []types.Address {
	addrs := []types.Address{n.LANDProxy, n.EstateProxy, n.DCLRegistrar}
	for addr := range n.Wearables {
		addrs = append(addrs, addr)
	}
	return addrs
}

var networks = map[int64]*Network{
	1337: {
		Name:         "localhost",
		Url:          "http://127.0.0.1:8545",
		Marketplace:  "0x8e5660b4ab70168b5a6feea0e0315cb49f8cb285",
		LANDProxy:    "0xf87e31492faf9a91b02ee0deaad50d51d56d5d4d",
		EstateProxy:  "0x959e104e1a4db6317fa58f8295f586e1a978c297",
		DCLRegistrar: "0x2a187453064356c898cae034eaed119e1663acb8",
		Wearables:    wearableContracts,
	},
	1: {
		Name:         "mainnet",
		Url:          "https://mainnet.infura.io/v3/%s",
		Marketplace:  "0x8e5660b4ab70168b5a6feea0e0315cb49f8cb285",
		LANDProxy:    "0xf87e31492faf9a91b02ee0deaad50d51d56d5d4d",
		EstateProxy:  "0x959e104e1a4db6317fa58f8295f586e1a978c297",
		DCLRegistrar: "0x2a187453064356c898cae034eaed119e1663acb8",
		Wearables:    wearableContracts,
	},
	5: {
		Name:         "goerli",
		Url:          "https://goerli.infura.io/v3/%s",
		Marketplace:  "0x5d01fbd3e22892be40f69bdae7ad921c8cda2612",
		LANDProxy:    "0x25b6b4bac4adb582a0abd475439da6730777fbf7",
		EstateProxy:  "0xc9a46712e6913c24d15b46ff12221a79c4e251dc",
		DCLRegistrar: "0x6b8da2752827cf926215b43bb8e46fd7b9ddac35",
		Wearables:    map[types.Address]string{},
	},
}

// wearableContracts mainnet wearable collections, contract to collection tag
var wearableContracts = map[types.Address]string{
	"0xc04528c14c8ffd84c7c1fb6719b4a89853035cdd": "exclusive_masks",
	"0xc1f4b0eea2bd6690930e6c66efd3e197d620b9c2": "halloween_2019",
	"0xc3af02c0fd486c8e9da5788b915d6fff3f049866": "xmas_2019",
	"0xf64dc33a192e056bb5f0e5049356a0498b502b50": "mch_collection",
	"0x32b7495895264ac9d0b12d32afd435453458b1c6": "community_contest",
	"0xd35147be6401dcb20811f2104c33de8e97ed6818": "dcl_launch",
	"0xbf53c33235cbfc22cef5a61a83484b86342679c5": "dg_summer_2020",
	"0x1e1d4e6262787c8a8783a37fee698bd42aa42bec": "dappcraft_moonminer",
	"0x201c3af8c471e5842428b74d1e7c0249adda2a92": "stay_safe",
	"0xa8ee490e4c4da48cc1653502c1a77479d4d818de": "dgtble_headspace",
	"0x09305998a531fade369ebe30adf868c96a34e813": "wonderzone_meteorchaser",
}

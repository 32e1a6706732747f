package main

import (
	"time"

	"marketscan/backend"
	"marketscan/conf"
	"marketscan/log"
	"marketscan/router"
	"marketscan/service"
)

// @title       marketplace indexer API
// @version     1.0
// @description Marketplace indexer back-end interface, reconciles NFT ownership and order state from the blockchain, provides information retrieval services for NFTs, parcels, estates, wearables, names, orders and accounts
func main() {
	if err := service.Init(conf.MysqlDsn, conf.ResetDB); err != nil {
		log.Fatal("database initialization failed:", err)
	}
	backend.Run(conf.ChainUrl, conf.Thread, time.Duration(conf.Interval)*time.Second)
	if err := router.Run(conf.ServerAddr); err != nil {
		log.Error("server failed to run:", err)
	}
}

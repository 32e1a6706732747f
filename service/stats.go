package service

import (
	"gorm.io/gorm"
	"marketscan/common/model"
	"marketscan/conf"
)

// Stats caches some database queries to speed up queries
type Stats struct {
	NextBlock     uint64      `json:"nextBlock"`     //next block number to index
	TotalNFT      int64       `json:"totalNFT"`      //total number of NFTs
	TotalAccount  int64       `json:"totalAccount"`  //total number of accounts
	TotalOrder    int64       `json:"totalOrder"`    //total number of orders
	TotalParcel   int64       `json:"totalParcel"`   //total number of parcels
	TotalEstate   int64       `json:"totalEstate"`   //total number of estates
	TotalWearable int64       `json:"totalWearable"` //total number of wearables
	TotalENS      int64       `json:"totalENS"`      //total number of names
	Count         model.Count `json:"count"`         //the aggregate singleton
}

var stats = Stats{}

// initStats initializes the query stats from the database
func initStats(db *gorm.DB) (err error) {
	var number *uint64
	if err = db.Model(&model.Block{}).Select("MAX(number)").Scan(&number).Error; err != nil {
		return
	}
	if number != nil {
		stats.NextBlock = *number + 1
	} else {
		stats.NextBlock = uint64(conf.StartBlock)
	}
	if err = db.Model(&model.NFT{}).Count(&stats.TotalNFT).Error; err != nil {
		return
	}
	if err = db.Model(&model.Account{}).Count(&stats.TotalAccount).Error; err != nil {
		return
	}
	if err = db.Model(&model.Order{}).Count(&stats.TotalOrder).Error; err != nil {
		return
	}
	if err = db.Model(&model.Parcel{}).Count(&stats.TotalParcel).Error; err != nil {
		return
	}
	if err = db.Model(&model.Estate{}).Count(&stats.TotalEstate).Error; err != nil {
		return
	}
	if err = db.Model(&model.Wearable{}).Count(&stats.TotalWearable).Error; err != nil {
		return
	}
	if err = db.Model(&model.ENS{}).Count(&stats.TotalENS).Error; err != nil {
		return
	}
	err = db.Find(&stats.Count, "id=?", model.CountId).Error
	return
}

// updateStats refreshes the cache after a block was written.
func updateStats(p *model.Parsed) {
	stats.NextBlock = uint64(p.Block.Number) + 1
	if count := p.Counts[model.CountId]; count != nil {
		stats.TotalParcel = int64(count.ParcelTotal)
		stats.TotalEstate = int64(count.EstateTotal)
		stats.TotalWearable = int64(count.WearableTotal)
		stats.TotalENS = int64(count.ENSTotal)
		stats.Count = *count
	}
	var number int64
	if err := DB.Model(&model.NFT{}).Count(&number).Error; err == nil {
		stats.TotalNFT = number
	}
	if err := DB.Model(&model.Order{}).Count(&number).Error; err == nil {
		stats.TotalOrder = number
	}
	if err := DB.Model(&model.Account{}).Count(&number).Error; err == nil {
		stats.TotalAccount = number
	}
}

// NextBlock the number of the next block to index
func NextBlock() uint64 {
	return stats.NextBlock
}

// FetchOverview returns the cached stats including the aggregate singleton.
func FetchOverview() Stats {
	return stats
}

package service

import (
	"strings"

	"marketscan/common/model"
)

// NFTsRes NFT paging return parameters
type NFTsRes struct {
	Total int64        `json:"total"` //The total number of NFTs
	NFTs  []*model.NFT `json:"nfts"`  //NFT list
}

func FetchNFTs(category, owner, search string, onSale bool, page, size int) (res NFTsRes, err error) {
	db := DB.Model(&model.NFT{})
	if category != "" {
		db = db.Where("category=?", category)
	}
	if owner != "" {
		db = db.Where("owner=?", strings.ToLower(owner))
	}
	if search != "" {
		db = db.Where("search_text LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if onSale {
		db = db.Where("search_order_status=?", "open")
	}
	err = db.Count(&res.Total).Error
	if err != nil {
		return
	}
	err = db.Order("created_at DESC").Offset((page - 1) * size).Limit(size).Find(&res.NFTs).Error
	return
}

func GetNFT(id string) (res model.NFT, err error) {
	err = DB.Where("id=?", id).First(&res).Error
	return
}

// OrdersRes order paging return parameters
type OrdersRes struct {
	Total  int64          `json:"total"`  //The total number of orders
	Orders []*model.Order `json:"orders"` //Order list
}

func FetchOrders(status, nftId, owner string, page, size int) (res OrdersRes, err error) {
	db := DB.Model(&model.Order{})
	if status != "" {
		db = db.Where("status=?", status)
	}
	if nftId != "" {
		db = db.Where("nft_id=?", nftId)
	}
	if owner != "" {
		db = db.Where("owner=?", strings.ToLower(owner))
	}
	err = db.Count(&res.Total).Error
	if err != nil {
		return
	}
	err = db.Order("created_at DESC").Offset((page - 1) * size).Limit(size).Find(&res.Orders).Error
	return
}

// ParcelsRes parcel paging return parameters
type ParcelsRes struct {
	Total   int64           `json:"total"`   //The total number of parcels
	Parcels []*model.Parcel `json:"parcels"` //Parcel list
}

func FetchParcels(minX, minY, maxX, maxY *int, owner string, page, size int) (res ParcelsRes, err error) {
	db := DB.Model(&model.Parcel{})
	if minX != nil {
		db = db.Where("x>=?", *minX)
	}
	if maxX != nil {
		db = db.Where("x<=?", *maxX)
	}
	if minY != nil {
		db = db.Where("y>=?", *minY)
	}
	if maxY != nil {
		db = db.Where("y<=?", *maxY)
	}
	if owner != "" {
		db = db.Where("owner=?", strings.ToLower(owner))
	}
	err = db.Count(&res.Total).Error
	if err != nil {
		return
	}
	err = db.Order("x, y").Offset((page - 1) * size).Limit(size).Find(&res.Parcels).Error
	return
}

// EstatesRes estate paging return parameters
type EstatesRes struct {
	Total   int64           `json:"total"`   //The total number of estates
	Estates []*model.Estate `json:"estates"` //Estate list
}

func FetchEstates(owner string, page, size int) (res EstatesRes, err error) {
	db := DB.Model(&model.Estate{})
	if owner != "" {
		db = db.Where("owner=?", strings.ToLower(owner))
	}
	err = db.Count(&res.Total).Error
	if err != nil {
		return
	}
	err = db.Order("id").Offset((page - 1) * size).Limit(size).Find(&res.Estates).Error
	return
}

// WearablesRes wearable paging return parameters
type WearablesRes struct {
	Total     int64             `json:"total"`     //The total number of wearables
	Wearables []*model.Wearable `json:"wearables"` //Wearable list
}

func FetchWearables(rarity, category, owner string, page, size int) (res WearablesRes, err error) {
	db := DB.Model(&model.Wearable{})
	if rarity != "" {
		db = db.Where("rarity=?", rarity)
	}
	if category != "" {
		db = db.Where("category=?", category)
	}
	if owner != "" {
		db = db.Where("owner=?", strings.ToLower(owner))
	}
	err = db.Count(&res.Total).Error
	if err != nil {
		return
	}
	err = db.Order("id").Offset((page - 1) * size).Limit(size).Find(&res.Wearables).Error
	return
}

// ENSsRes name paging return parameters
type ENSsRes struct {
	Total int64        `json:"total"` //The total number of names
	ENSs  []*model.ENS `json:"enss"`  //Name list
}

func FetchENSs(owner string, page, size int) (res ENSsRes, err error) {
	db := DB.Model(&model.ENS{})
	if owner != "" {
		db = db.Where("owner=?", strings.ToLower(owner))
	}
	err = db.Count(&res.Total).Error
	if err != nil {
		return
	}
	err = db.Order("id").Offset((page - 1) * size).Limit(size).Find(&res.ENSs).Error
	return
}

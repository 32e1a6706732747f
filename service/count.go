package service

import (
	"marketscan/common/model"
	"marketscan/common/types"
	"marketscan/log"
)

// GetCount returns the aggregate statistics singleton, creating it zeroed on
// first use. Never more than one instance exists, all increments are
// monotonic.
func GetCount(p *model.Parsed) *model.Count {
	count := p.Counts[model.CountId]
	if count == nil {
		count = &model.Count{
			ID:                   model.CountId,
			Started:              1,
			SalesManaTotal:       "0",
			DaoEarningsManaTotal: "0",
		}
		p.Counts[model.CountId] = count
		log.Infof("count singleton created")
	}
	return count
}

// GetCountRow reads the stored aggregate statistics singleton.
func GetCountRow() (res model.Count, err error) {
	err = DB.Where("id=?", model.CountId).First(&res).Error
	return
}

// CountMint increments the mint total of the NFT's category.
func CountMint(p *model.Parsed, nft *model.NFT) {
	count := GetCount(p)
	switch nft.Category {
	case types.CategoryParcel:
		count.ParcelTotal++
	case types.CategoryEstate:
		count.EstateTotal++
	case types.CategoryWearable:
		count.WearableTotal++
	case types.CategoryENS:
		count.ENSTotal++
	}
}

// CountOrder increments the order total and the order counter of the listed
// category.
func CountOrder(p *model.Parsed, order *model.Order) {
	count := GetCount(p)
	count.OrderTotal++
	switch order.Category {
	case types.CategoryParcel:
		count.OrderParcel++
	case types.CategoryEstate:
		count.OrderEstate++
	case types.CategoryWearable:
		count.OrderWearable++
	case types.CategoryENS:
		count.OrderENS++
	}
}

// CountSale adds a settled sale to the aggregate: one sale, the full price to
// the cumulative volume and the fee collector share to the DAO earnings.
func CountSale(p *model.Parsed, price types.BigInt, feesCollectorCutPerMillion int64) {
	count := GetCount(p)
	count.SalesTotal++
	count.SalesManaTotal = types.BigInt(BigIntAdd(string(count.SalesManaTotal), string(price)))
	count.DaoEarningsManaTotal = types.BigInt(BigIntAdd(string(count.DaoEarningsManaTotal), DaoCut(string(price), feesCollectorCutPerMillion)))
}

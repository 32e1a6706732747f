package service

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"marketscan/common/model"
	"marketscan/common/types"
	"marketscan/common/utils"
)

// Apply runs the block's events through the reconcilers in log order. The
// staged maps must already hold the prior state of every referenced entity,
// later events of the same block observe the effects of earlier ones.
func Apply(p *model.Parsed) {
	t, o := 0, 0
	for t < len(p.TransferEvents) || o < len(p.OrderEvents) {
		if o >= len(p.OrderEvents) || (t < len(p.TransferEvents) && p.TransferEvents[t].Index < p.OrderEvents[o].Index) {
			HandleTransfer(p, p.TransferEvents[t])
			t++
			continue
		}
		ev := p.OrderEvents[o]
		o++
		switch ev.Kind {
		case model.OrderEventCreated:
			HandleOrderCreated(p, ev)
		case model.OrderEventSuccessful:
			HandleOrderSuccessful(p, ev)
		case model.OrderEventCancelled:
			HandleOrderCancelled(p, ev)
		}
	}
}

// BlockInsert hydrates the staged maps with the prior state of every entity
// the block references, applies the events and writes everything back in one
// transaction. The query stats are refreshed after a successful write.
func BlockInsert(p *model.Parsed) error {
	if err := hydrate(p); err != nil {
		return err
	}
	Apply(p)
	err := DB.Transaction(func(t *gorm.DB) error {
		for _, nft := range p.NFTs {
			if err := t.Clauses(clause.OnConflict{UpdateAll: true}).Create(nft).Error; err != nil {
				return err
			}
		}
		for _, account := range p.Accounts {
			if err := t.Clauses(clause.OnConflict{UpdateAll: true}).Create(account).Error; err != nil {
				return err
			}
		}
		for _, order := range p.Orders {
			if err := t.Clauses(clause.OnConflict{UpdateAll: true}).Create(order).Error; err != nil {
				return err
			}
		}
		for _, parcel := range p.Parcels {
			if err := t.Clauses(clause.OnConflict{UpdateAll: true}).Create(parcel).Error; err != nil {
				return err
			}
		}
		for _, estate := range p.Estates {
			if err := t.Clauses(clause.OnConflict{UpdateAll: true}).Create(estate).Error; err != nil {
				return err
			}
		}
		for _, wearable := range p.Wearables {
			if err := t.Clauses(clause.OnConflict{UpdateAll: true}).Create(wearable).Error; err != nil {
				return err
			}
		}
		for _, ens := range p.ENSs {
			if err := t.Clauses(clause.OnConflict{UpdateAll: true}).Create(ens).Error; err != nil {
				return err
			}
		}
		for _, count := range p.Counts {
			if err := t.Clauses(clause.OnConflict{UpdateAll: true}).Create(count).Error; err != nil {
				return err
			}
		}
		return t.Create(p.Block).Error
	})
	if err == nil {
		updateStats(p)
	}
	return err
}

// hydrate loads the prior state of every entity the block's events reference
// into the staged maps. Entities already staged are left untouched.
func hydrate(p *model.Parsed) error {
	var nftIds []string
	for _, ev := range p.TransferEvents {
		if tokenId, ok := utils.ParseTokenId(string(ev.TokenId)); ok {
			nftIds = append(nftIds, utils.NFTId(ev.Category, ev.Contract, tokenId))
		}
	}
	var orderIds []types.Hash
	for _, ev := range p.OrderEvents {
		nftIds = append(nftIds, utils.NFTId(ev.Category, ev.Contract, ev.TokenId))
		orderIds = append(orderIds, ev.OrderId)
	}
	if len(nftIds) > 0 {
		var nfts []*model.NFT
		if err := DB.Find(&nfts, "id IN ?", nftIds).Error; err != nil {
			return err
		}
		for _, nft := range nfts {
			if p.NFTs[nft.ID] == nil {
				p.NFTs[nft.ID] = nft
			}
			if nft.ActiveOrderId != nil {
				orderIds = append(orderIds, *nft.ActiveOrderId)
			}
		}
		if err := hydrateSubEntities(p, nftIds); err != nil {
			return err
		}
	}
	if len(orderIds) > 0 {
		var orders []*model.Order
		if err := DB.Find(&orders, "id IN ?", orderIds).Error; err != nil {
			return err
		}
		for _, order := range orders {
			if p.Orders[order.ID] == nil {
				p.Orders[order.ID] = order
			}
		}
	}
	var addrs []types.Address
	for _, ev := range p.TransferEvents {
		addrs = append(addrs, utils.LowerAddress(ev.To))
	}
	for _, ev := range p.OrderEvents {
		addrs = append(addrs, utils.LowerAddress(ev.Seller))
		if ev.Buyer != "" {
			addrs = append(addrs, utils.LowerAddress(ev.Buyer))
		}
	}
	if len(addrs) > 0 {
		var accounts []*model.Account
		if err := DB.Find(&accounts, "address IN ?", addrs).Error; err != nil {
			return err
		}
		for _, account := range accounts {
			if p.Accounts[account.Address] == nil {
				p.Accounts[account.Address] = account
			}
		}
	}
	var counts []*model.Count
	if err := DB.Find(&counts, "id=?", model.CountId).Error; err != nil {
		return err
	}
	for _, count := range counts {
		if p.Counts[count.ID] == nil {
			p.Counts[count.ID] = count
		}
	}
	return nil
}

func hydrateSubEntities(p *model.Parsed, ids []string) error {
	var parcels []*model.Parcel
	if err := DB.Find(&parcels, "id IN ?", ids).Error; err != nil {
		return err
	}
	for _, parcel := range parcels {
		if p.Parcels[parcel.ID] == nil {
			p.Parcels[parcel.ID] = parcel
		}
	}
	var estates []*model.Estate
	if err := DB.Find(&estates, "id IN ?", ids).Error; err != nil {
		return err
	}
	for _, estate := range estates {
		if p.Estates[estate.ID] == nil {
			p.Estates[estate.ID] = estate
		}
	}
	var wearables []*model.Wearable
	if err := DB.Find(&wearables, "id IN ?", ids).Error; err != nil {
		return err
	}
	for _, wearable := range wearables {
		if p.Wearables[wearable.ID] == nil {
			p.Wearables[wearable.ID] = wearable
		}
	}
	var enss []*model.ENS
	if err := DB.Find(&enss, "id IN ?", ids).Error; err != nil {
		return err
	}
	for _, ens := range enss {
		if p.ENSs[ens.ID] == nil {
			p.ENSs[ens.ID] = ens
		}
	}
	return nil
}

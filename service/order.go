package service

import (
	"marketscan/common/model"
	"marketscan/common/types"
	"marketscan/common/utils"
	"marketscan/conf"
	"marketscan/log"
)

// CancelActiveOrder moves an open order to cancelled. Sold and cancelled are
// absorbing, invoking it on either is a no-op and the order is returned
// unchanged.
func CancelActiveOrder(order *model.Order, now types.Uint64) bool {
	if order.Status != types.OrderOpen {
		return false
	}
	order.Status = types.OrderCancelled
	order.UpdatedAt = now
	return true
}

// UpdateNFTOrderProperties synchronizes the NFT's denormalized order fields
// with the given order. This is the single writer of those fields: an open
// order copies them, a sold or cancelled order clears them all.
func UpdateNFTOrderProperties(nft *model.NFT, order *model.Order) {
	if order.Status == types.OrderOpen {
		setNFTOrderProperties(nft, order)
	} else {
		ClearNFTOrderProperties(nft)
	}
}

func setNFTOrderProperties(nft *model.NFT, order *model.Order) {
	id := order.ID
	status, price, createdAt, expiresAt := order.Status, order.Price, order.CreatedAt, order.ExpiresAt
	nft.ActiveOrderId = &id
	nft.SearchOrderStatus = &status
	nft.SearchOrderPrice = &price
	nft.SearchOrderCreatedAt = &createdAt
	nft.SearchOrderExpiresAt = &expiresAt
}

// ClearNFTOrderProperties clears the denormalized order fields together,
// never partially.
func ClearNFTOrderProperties(nft *model.NFT) {
	nft.ActiveOrderId = nil
	nft.SearchOrderStatus = nil
	nft.SearchOrderPrice = nil
	nft.SearchOrderCreatedAt = nil
	nft.SearchOrderExpiresAt = nil
}

// HandleOrderCreated stages a new open order and caches it on the listed NFT.
func HandleOrderCreated(p *model.Parsed, ev *model.OrderEvent) {
	id := utils.NFTId(ev.Category, ev.Contract, ev.TokenId)
	order := &model.Order{
		ID:        ev.OrderId,
		NFTId:     id,
		Category:  ev.Category,
		Owner:     ev.Seller,
		Status:    types.OrderOpen,
		Price:     ev.Price,
		ExpiresAt: ev.ExpiresAt,
		CreatedAt: ev.Timestamp,
		UpdatedAt: ev.Timestamp,
	}
	p.Orders[order.ID] = order
	loadOrCreateAccount(p, ev.Seller)

	nft := p.NFTs[id]
	if nft == nil {
		log.Warnf("order %v created for unknown NFT %v", ev.OrderId, id)
	} else {
		// a previous open order is stale the moment a newer one appears
		if nft.ActiveOrderId != nil && *nft.ActiveOrderId != order.ID {
			if old := p.Orders[*nft.ActiveOrderId]; old != nil {
				CancelActiveOrder(old, ev.Timestamp)
			}
		}
		nft.UpdatedAt = ev.Timestamp
		UpdateNFTOrderProperties(nft, order)
	}
	CountOrder(p, order)
}

// HandleOrderSuccessful settles an order: the order goes to sold, the NFT
// changes owner and the sale is added to the aggregate and the trade stats of
// both accounts. The marketplace transfers the token before emitting the
// settlement, so the transfer at the lower log index has already cancelled
// the listing by the time this runs; settlement wins over that cancellation.
func HandleOrderSuccessful(p *model.Parsed, ev *model.OrderEvent) {
	id := utils.NFTId(ev.Category, ev.Contract, ev.TokenId)
	buyer := loadOrCreateAccount(p, ev.Buyer)
	seller := loadOrCreateAccount(p, ev.Seller)

	order := p.Orders[ev.OrderId]
	if order == nil {
		log.Warnf("successful order %v not found", ev.OrderId)
	} else {
		order.Status = types.OrderSold
		order.Buyer = &ev.Buyer
		order.UpdatedAt = ev.Timestamp
	}

	nft := p.NFTs[id]
	if nft == nil {
		log.Warnf("order %v settled for unknown NFT %v", ev.OrderId, id)
	} else {
		soldAt := ev.Timestamp
		nft.Owner = buyer.Address
		nft.SoldAt = &soldAt
		nft.UpdatedAt = ev.Timestamp
		nft.Sales++
		nft.Volume = types.BigInt(BigIntAdd(string(nft.Volume), string(ev.Price)))
		if order != nil {
			UpdateNFTOrderProperties(nft, order)
		} else {
			ClearNFTOrderProperties(nft)
		}
		mirrorOwner(p, nft)
	}

	seller.Sales++
	seller.Earned = types.BigInt(BigIntAdd(string(seller.Earned), string(ev.Price)))
	buyer.Purchases++
	buyer.Spent = types.BigInt(BigIntAdd(string(buyer.Spent), string(ev.Price)))
	CountSale(p, ev.Price, conf.FeesCollectorCutPerMillion)
}

// HandleOrderCancelled cancels an open order and clears the NFT's cached
// order fields.
func HandleOrderCancelled(p *model.Parsed, ev *model.OrderEvent) {
	order := p.Orders[ev.OrderId]
	if order == nil {
		log.Warnf("cancelled order %v not found", ev.OrderId)
	} else {
		CancelActiveOrder(order, ev.Timestamp)
	}
	id := utils.NFTId(ev.Category, ev.Contract, ev.TokenId)
	if nft := p.NFTs[id]; nft != nil {
		nft.UpdatedAt = ev.Timestamp
		ClearNFTOrderProperties(nft)
	}
}

package service

import (
	"testing"

	"marketscan/common/model"
	"marketscan/common/types"
	"marketscan/common/utils"
	"marketscan/conf"
)

// A listing and a sale of a freshly minted token in the same block must be
// applied in log order, the later events observing the earlier ones.
func TestApplyOrdering(t *testing.T) {
	p := newTestParsed(1000)
	tokenId := utils.EncodeLANDTokenId(-3, 8)
	p.Coordinates[tokenId] = model.Coordinate{X: -3, Y: 8}
	p.TransferEvents = []*model.TransferEvent{
		mintEvent(types.CategoryParcel, conf.Chain.LANDProxy, tokenId, aliceAddr, 1000),
	}
	p.TransferEvents[0].Index = 1
	p.OrderEvents = []*model.OrderEvent{
		{
			Kind: model.OrderEventCreated, OrderId: "0x0f",
			Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
			TokenId: tokenId, Seller: aliceAddr, Price: "300", ExpiresAt: "9000000",
			Index: 4, Timestamp: 1000,
		},
		{
			Kind: model.OrderEventSuccessful, OrderId: "0x0f",
			Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
			TokenId: tokenId, Seller: aliceAddr, Buyer: bobAddr, Price: "300",
			Index: 7, Timestamp: 1000,
		},
	}

	Apply(p)

	id := utils.NFTId(types.CategoryParcel, conf.Chain.LANDProxy, tokenId)
	nft := p.NFTs[id]
	if nft == nil {
		t.Fatal("mint not applied")
	}
	if nft.Owner != bobAddr {
		t.Error("sale after mint must move the token", nft.Owner)
	}
	if p.Orders["0x0f"].Status != types.OrderSold {
		t.Error("order not settled")
	}
	count := p.Counts[model.CountId]
	if count.ParcelTotal != 1 || count.OrderTotal != 1 || count.SalesTotal != 1 {
		t.Error("counts", count.ParcelTotal, count.OrderTotal, count.SalesTotal)
	}
	if p.Parcels[id].Owner != bobAddr {
		t.Error("parcel owner not mirrored")
	}
}

// The marketplace moves the token to the buyer before emitting the
// settlement, so a sale arrives as Transfer followed by OrderSuccessful in
// the same transaction. The transfer cancels the listing first; the
// settlement must still end sold with the buyer recorded.
func TestSaleAfterTransferInSameTransaction(t *testing.T) {
	p := newTestParsed(1000)
	tokenId := utils.EncodeLANDTokenId(6, -9)
	p.Coordinates[tokenId] = model.Coordinate{X: 6, Y: -9}
	p.TransferEvents = []*model.TransferEvent{
		mintEvent(types.CategoryParcel, conf.Chain.LANDProxy, tokenId, aliceAddr, 1000),
		{
			Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
			TokenId: tokenId, From: aliceAddr, To: bobAddr, Index: 6, Timestamp: 1000,
		},
	}
	p.TransferEvents[0].Index = 1
	p.OrderEvents = []*model.OrderEvent{
		{
			Kind: model.OrderEventCreated, OrderId: "0x2a",
			Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
			TokenId: tokenId, Seller: aliceAddr, Price: "700", ExpiresAt: "9000000",
			Index: 4, Timestamp: 1000,
		},
		{
			Kind: model.OrderEventSuccessful, OrderId: "0x2a",
			Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
			TokenId: tokenId, Seller: aliceAddr, Buyer: bobAddr, Price: "700",
			Index: 7, Timestamp: 1000,
		},
	}

	Apply(p)

	order := p.Orders["0x2a"]
	if order.Status != types.OrderSold {
		t.Error("settlement must win over the transfer cancellation", order.Status)
	}
	if order.Buyer == nil || *order.Buyer != bobAddr {
		t.Error("buyer not recorded")
	}
	id := utils.NFTId(types.CategoryParcel, conf.Chain.LANDProxy, tokenId)
	nft := p.NFTs[id]
	if nft.Owner != bobAddr || nft.SoldAt == nil || nft.Sales != 1 || nft.Volume != "700" {
		t.Error("NFT sale figures", nft.Owner, nft.SoldAt, nft.Sales, nft.Volume)
	}
	if nft.ActiveOrderId != nil || nft.SearchOrderStatus != nil {
		t.Error("sold order left cached on the NFT")
	}
	count := p.Counts[model.CountId]
	if count.SalesTotal != 1 || count.SalesManaTotal != "700" {
		t.Error("sale count", count.SalesTotal, count.SalesManaTotal)
	}
	seller, buyer := p.Accounts[aliceAddr], p.Accounts[bobAddr]
	if seller.Sales != 1 || seller.Earned != "700" || buyer.Purchases != 1 || buyer.Spent != "700" {
		t.Error("trade stats", seller.Sales, buyer.Purchases)
	}
}

// A transfer with a higher log index than a cancellation must run after it.
func TestApplyInterleaving(t *testing.T) {
	p := newTestParsed(2000)
	tokenId := utils.EncodeLANDTokenId(5, 5)
	p.Coordinates[tokenId] = model.Coordinate{X: 5, Y: 5}
	nft, _ := HandleTransfer(p, mintEvent(types.CategoryParcel, conf.Chain.LANDProxy, tokenId, aliceAddr, 1900))
	HandleOrderCreated(p, &model.OrderEvent{
		Kind: model.OrderEventCreated, OrderId: "0x10",
		Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
		TokenId: tokenId, Seller: aliceAddr, Price: "300", ExpiresAt: "9000000", Timestamp: 1900,
	})

	p.OrderEvents = []*model.OrderEvent{{
		Kind: model.OrderEventCancelled, OrderId: "0x10",
		Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
		TokenId: tokenId, Seller: aliceAddr, Index: 2, Timestamp: 2000,
	}}
	p.TransferEvents = []*model.TransferEvent{{
		Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
		TokenId: tokenId, From: aliceAddr, To: bobAddr, Index: 3, Timestamp: 2000,
	}}

	Apply(p)

	if p.Orders["0x10"].Status != types.OrderCancelled {
		t.Error("order not cancelled")
	}
	if nft.Owner != bobAddr || nft.ActiveOrderId != nil {
		t.Error("transfer after cancellation", nft.Owner)
	}
}

package service

import (
	"testing"

	"marketscan/common/model"
	"marketscan/common/types"
	"marketscan/common/utils"
	"marketscan/conf"
)

func TestCancelActiveOrder(t *testing.T) {
	order := &model.Order{ID: "0x01", Status: types.OrderOpen}
	if !CancelActiveOrder(order, 100) {
		t.Fatal("open order not cancelled")
	}
	if order.Status != types.OrderCancelled || order.UpdatedAt != 100 {
		t.Error("cancel result", order.Status, order.UpdatedAt)
	}
	// cancelled and sold are absorbing
	if CancelActiveOrder(order, 200) {
		t.Error("cancelled twice")
	}
	if order.UpdatedAt != 100 {
		t.Error("second cancel mutated the order")
	}
	sold := &model.Order{ID: "0x02", Status: types.OrderSold}
	if CancelActiveOrder(sold, 300) || sold.Status != types.OrderSold {
		t.Error("sold order cancelled")
	}
}

func TestUpdateNFTOrderProperties(t *testing.T) {
	nft := &model.NFT{ID: "parcel-0xabc-1"}
	order := &model.Order{ID: "0x01", Status: types.OrderOpen, Price: "500", CreatedAt: 10, ExpiresAt: "9000000"}

	UpdateNFTOrderProperties(nft, order)
	if nft.ActiveOrderId == nil || *nft.ActiveOrderId != "0x01" {
		t.Fatal("active order id")
	}
	if nft.SearchOrderStatus == nil || *nft.SearchOrderStatus != types.OrderOpen ||
		nft.SearchOrderPrice == nil || *nft.SearchOrderPrice != "500" ||
		nft.SearchOrderCreatedAt == nil || *nft.SearchOrderCreatedAt != 10 ||
		nft.SearchOrderExpiresAt == nil || *nft.SearchOrderExpiresAt != "9000000" {
		t.Error("order fields not copied")
	}

	order.Status = types.OrderSold
	UpdateNFTOrderProperties(nft, order)
	if nft.ActiveOrderId != nil || nft.SearchOrderStatus != nil || nft.SearchOrderPrice != nil ||
		nft.SearchOrderCreatedAt != nil || nft.SearchOrderExpiresAt != nil {
		t.Error("order fields not cleared together")
	}
}

func TestOrderLifecycle(t *testing.T) {
	p := newTestParsed(1000)
	tokenId := utils.EncodeLANDTokenId(2, 3)
	p.Coordinates[tokenId] = model.Coordinate{X: 2, Y: 3}
	nft, _ := HandleTransfer(p, mintEvent(types.CategoryParcel, conf.Chain.LANDProxy, tokenId, aliceAddr, 1000))

	HandleOrderCreated(p, &model.OrderEvent{
		Kind: model.OrderEventCreated, OrderId: "0xaa",
		Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
		TokenId: tokenId, Seller: aliceAddr, Price: "1000000", ExpiresAt: "9000000", Timestamp: 1100,
	})
	count := p.Counts[model.CountId]
	if count.OrderTotal != 1 || count.OrderParcel != 1 {
		t.Error("order count", count.OrderTotal, count.OrderParcel)
	}

	// a second listing cancels the first
	HandleOrderCreated(p, &model.OrderEvent{
		Kind: model.OrderEventCreated, OrderId: "0xbb",
		Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
		TokenId: tokenId, Seller: aliceAddr, Price: "2000000", ExpiresAt: "9000000", Timestamp: 1200,
	})
	if p.Orders["0xaa"].Status != types.OrderCancelled {
		t.Error("stale order not cancelled")
	}
	if *nft.ActiveOrderId != "0xbb" || *nft.SearchOrderPrice != "2000000" {
		t.Error("active order not replaced")
	}

	HandleOrderSuccessful(p, &model.OrderEvent{
		Kind: model.OrderEventSuccessful, OrderId: "0xbb",
		Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
		TokenId: tokenId, Seller: aliceAddr, Buyer: bobAddr, Price: "2000000", Timestamp: 1300,
	})
	order := p.Orders["0xbb"]
	if order.Status != types.OrderSold || order.Buyer == nil || *order.Buyer != bobAddr {
		t.Error("order settlement", order.Status)
	}
	if nft.Owner != bobAddr || nft.SoldAt == nil || *nft.SoldAt != 1300 {
		t.Error("NFT sale", nft.Owner, nft.SoldAt)
	}
	if nft.Sales != 1 || nft.Volume != "2000000" {
		t.Error("NFT trade figures", nft.Sales, nft.Volume)
	}
	if nft.ActiveOrderId != nil {
		t.Error("sold order left cached")
	}
	if p.Parcels[nft.ID].Owner != bobAddr {
		t.Error("parcel owner not mirrored after sale")
	}
	seller, buyer := p.Accounts[aliceAddr], p.Accounts[bobAddr]
	if seller.Sales != 1 || seller.Earned != "2000000" {
		t.Error("seller stats", seller.Sales, seller.Earned)
	}
	if buyer.Purchases != 1 || buyer.Spent != "2000000" {
		t.Error("buyer stats", buyer.Purchases, buyer.Spent)
	}
	if count.SalesTotal != 1 || count.SalesManaTotal != "2000000" {
		t.Error("sale count", count.SalesTotal, count.SalesManaTotal)
	}
}

func TestOrderCancelledEvent(t *testing.T) {
	p := newTestParsed(1000)
	tokenId := utils.EncodeLANDTokenId(4, 4)
	p.Coordinates[tokenId] = model.Coordinate{X: 4, Y: 4}
	nft, _ := HandleTransfer(p, mintEvent(types.CategoryParcel, conf.Chain.LANDProxy, tokenId, aliceAddr, 1000))
	HandleOrderCreated(p, &model.OrderEvent{
		Kind: model.OrderEventCreated, OrderId: "0xcc",
		Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
		TokenId: tokenId, Seller: aliceAddr, Price: "500", ExpiresAt: "9000000", Timestamp: 1100,
	})

	HandleOrderCancelled(p, &model.OrderEvent{
		Kind: model.OrderEventCancelled, OrderId: "0xcc",
		Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
		TokenId: tokenId, Seller: aliceAddr, Timestamp: 1200,
	})
	if p.Orders["0xcc"].Status != types.OrderCancelled {
		t.Error("order not cancelled")
	}
	if nft.ActiveOrderId != nil || nft.SearchOrderStatus != nil {
		t.Error("order fields not cleared")
	}
	if nft.Owner != aliceAddr {
		t.Error("cancellation must not change the owner")
	}
}

func TestOrderForUnknownNFT(t *testing.T) {
	p := newTestParsed(1000)
	HandleOrderCreated(p, &model.OrderEvent{
		Kind: model.OrderEventCreated, OrderId: "0xdd",
		Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
		TokenId: "12345", Seller: aliceAddr, Price: "500", ExpiresAt: "9000000", Timestamp: 1100,
	})
	// the order is staged and counted even when the NFT is unknown
	if p.Orders["0xdd"] == nil || p.Orders["0xdd"].Status != types.OrderOpen {
		t.Error("order not staged")
	}
	if p.Counts[model.CountId].OrderTotal != 1 {
		t.Error("order not counted")
	}
}

package service

import (
	"testing"

	"marketscan/common/model"
	"marketscan/common/types"
	"marketscan/common/utils"
	"marketscan/conf"
)

const (
	aliceAddr = types.Address("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")
	bobAddr   = types.Address("0xb04cc2aba7e5626a1216a1c9c60255e06cac0e04")
)

func newTestParsed(timestamp types.Uint64) *model.Parsed {
	return model.NewParsed(&model.Block{Number: 100, Timestamp: timestamp})
}

func mintEvent(category types.Category, contract types.Address, tokenId types.BigInt, to types.Address, timestamp types.Uint64) *model.TransferEvent {
	return &model.TransferEvent{
		Contract:  contract,
		Category:  category,
		TokenId:   tokenId,
		From:      utils.ZeroAddress,
		To:        to,
		Timestamp: timestamp,
	}
}

func TestMintParcel(t *testing.T) {
	p := newTestParsed(1000)
	tokenId := utils.EncodeLANDTokenId(10, -5)
	p.Coordinates[tokenId] = model.Coordinate{X: 10, Y: -5}

	nft, account := HandleTransfer(p, mintEvent(types.CategoryParcel, conf.Chain.LANDProxy, tokenId, aliceAddr, 1000))
	if nft == nil || account == nil {
		t.Fatal("mint dropped")
	}
	if nft.ID != utils.NFTId(types.CategoryParcel, conf.Chain.LANDProxy, tokenId) {
		t.Error("unexpected id", nft.ID)
	}
	if nft.Owner != aliceAddr || account.Address != aliceAddr {
		t.Error("owner not set", nft.Owner)
	}
	if nft.CreatedAt != 1000 || nft.TransferredAt != 1000 {
		t.Error("timestamps", nft.CreatedAt, nft.TransferredAt)
	}
	if nft.Name == nil || *nft.Name != "10,-5" {
		t.Error("parcel name", nft.Name)
	}
	if !nft.SearchIsLand || nft.SearchParcelX == nil || *nft.SearchParcelX != 10 || *nft.SearchParcelY != -5 {
		t.Error("parcel search fields")
	}
	if nft.SearchParcelIsInBounds == nil || !*nft.SearchParcelIsInBounds {
		t.Error("in bounds")
	}
	if nft.SearchDistanceToPlaza != 10 {
		t.Error("distance to plaza", nft.SearchDistanceToPlaza)
	}
	if nft.SearchText != "10,-5" {
		t.Error("search text", nft.SearchText)
	}
	parcel := p.Parcels[nft.ID]
	if parcel == nil || parcel.X != 10 || parcel.Y != -5 || parcel.Owner != aliceAddr {
		t.Error("parcel entity")
	}
	if p.Counts[model.CountId].ParcelTotal != 1 {
		t.Error("count not incremented")
	}
	if len(p.Estates)+len(p.Wearables)+len(p.ENSs) != 0 {
		t.Error("mint leaked into other categories")
	}
}

func TestMintParcelWithoutCoordinates(t *testing.T) {
	p := newTestParsed(1000)
	nft, _ := HandleTransfer(p, mintEvent(types.CategoryParcel, conf.Chain.LANDProxy, "7", aliceAddr, 1000))
	if nft == nil {
		t.Fatal("mint dropped")
	}
	// no coordinates, the NFT keeps the generic mint defaults
	if len(p.Parcels) != 0 {
		t.Error("parcel built without coordinates")
	}
	if nft.SearchIsLand || nft.SearchDistanceToPlaza != -1 || nft.SearchEstateSize != 1 {
		t.Error("mint defaults", nft.SearchIsLand, nft.SearchDistanceToPlaza, nft.SearchEstateSize)
	}
	if nft.SearchParcelIsInBounds == nil || !*nft.SearchParcelIsInBounds {
		t.Error("in bounds default")
	}
	if p.Counts[model.CountId].ParcelTotal != 1 {
		t.Error("anomaly must still count the mint")
	}
}

func TestMintEstate(t *testing.T) {
	p := newTestParsed(2000)
	nft, _ := HandleTransfer(p, mintEvent(types.CategoryEstate, conf.Chain.EstateProxy, "3", aliceAddr, 2000))
	estate := p.Estates[nft.ID]
	if estate == nil || estate.Size != 0 || estate.Owner != aliceAddr {
		t.Fatal("estate entity")
	}
	if !nft.SearchIsLand || nft.SearchDistanceToPlaza != -1 || nft.SearchAdjacentToRoad {
		t.Error("estate search fields")
	}
	// the NFT-level default is not overwritten by the estate build
	if nft.SearchEstateSize != 1 {
		t.Error("estate size default", nft.SearchEstateSize)
	}
	if nft.TokenURI != nil {
		t.Error("estate registry has no tokenURI")
	}
	if p.Counts[model.CountId].EstateTotal != 1 {
		t.Error("count not incremented")
	}
}

func TestMintWearable(t *testing.T) {
	p := newTestParsed(3000)
	contract := types.Address("0x201c3af8c471e5842428b74d1e7c0249adda2a92")
	uri := "https://wearable-api.decentraland.org/v2/collections/stay_safe/wearables/protection_mask_funny/55"
	p.TokenURIs[model.TokenURIKey(contract, "55")] = uri

	nft, _ := HandleTransfer(p, mintEvent(types.CategoryWearable, contract, "55", aliceAddr, 3000))
	if nft.TokenURI == nil || *nft.TokenURI != uri {
		t.Fatal("tokenURI not filled")
	}
	wearable := p.Wearables[nft.ID]
	if wearable == nil {
		t.Fatal("wearable entity missing")
	}
	if wearable.Representation != "protection_mask_funny" || wearable.Name != "protection mask funny" {
		t.Error("representation", wearable.Representation, wearable.Name)
	}
	if wearable.Category != "mask" || wearable.Rarity != "epic" {
		t.Error("catalog lookup", wearable.Category, wearable.Rarity)
	}
	if !nft.SearchIsWearableHead || !nft.SearchIsWearableAccessory {
		t.Error("mask is head and accessory")
	}
	if nft.SearchText != "protection mask funny" {
		t.Error("search text", nft.SearchText)
	}
	if p.Counts[model.CountId].WearableTotal != 1 {
		t.Error("count not incremented")
	}
}

func TestMintENS(t *testing.T) {
	p := newTestParsed(4000)
	nft, _ := HandleTransfer(p, mintEvent(types.CategoryENS, conf.Chain.DCLRegistrar, "9", aliceAddr, 4000))
	if nft.TokenURI == nil || *nft.TokenURI != "" {
		t.Error("registrar tokenURI must be the empty string")
	}
	ens := p.ENSs[nft.ID]
	if ens == nil || ens.Owner != aliceAddr || ens.Subdomain != nil {
		t.Error("ens entity")
	}
	if p.Counts[model.CountId].ENSTotal != 1 {
		t.Error("count not incremented")
	}
}

func TestTransferResetsTradeFigures(t *testing.T) {
	p := newTestParsed(1000)
	tokenId := utils.EncodeLANDTokenId(1, 2)
	p.Coordinates[tokenId] = model.Coordinate{X: 1, Y: 2}
	nft, _ := HandleTransfer(p, mintEvent(types.CategoryParcel, conf.Chain.LANDProxy, tokenId, aliceAddr, 1000))
	soldAt := types.Uint64(1500)
	nft.Sales, nft.Volume, nft.SoldAt = 3, "999", &soldAt

	nft2, _ := HandleTransfer(p, &model.TransferEvent{
		Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
		TokenId: tokenId, From: aliceAddr, To: bobAddr, Timestamp: 2000,
	})
	if nft2 != nft {
		t.Fatal("transfer must reuse the staged NFT")
	}
	if nft.Sales != 0 || nft.Volume != "0" || nft.SoldAt != nil {
		t.Error("trade figures not reset")
	}
	if nft.Owner != bobAddr || nft.TransferredAt != 2000 {
		t.Error("owner change", nft.Owner, nft.TransferredAt)
	}
	if nft.CreatedAt != 1000 {
		t.Error("mint timestamp must survive transfers")
	}
	if p.Parcels[nft.ID].Owner != bobAddr {
		t.Error("parcel owner not mirrored")
	}
	// both accounts now exist, the mint count is unchanged
	if p.Accounts[aliceAddr] == nil || p.Accounts[bobAddr] == nil {
		t.Error("accounts")
	}
	if p.Counts[model.CountId].ParcelTotal != 1 {
		t.Error("transfer must not mint")
	}
}

func TestTransferInvalidatesOrder(t *testing.T) {
	p := newTestParsed(1000)
	tokenId := utils.EncodeLANDTokenId(0, 7)
	p.Coordinates[tokenId] = model.Coordinate{X: 0, Y: 7}
	nft, _ := HandleTransfer(p, mintEvent(types.CategoryParcel, conf.Chain.LANDProxy, tokenId, aliceAddr, 1000))

	HandleOrderCreated(p, &model.OrderEvent{
		Kind: model.OrderEventCreated, OrderId: "0x01",
		Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
		TokenId: tokenId, Seller: aliceAddr, Price: "500", ExpiresAt: "9000000", Timestamp: 1100,
	})
	if nft.ActiveOrderId == nil || *nft.ActiveOrderId != "0x01" {
		t.Fatal("order not cached on the NFT")
	}

	HandleTransfer(p, &model.TransferEvent{
		Contract: conf.Chain.LANDProxy, Category: types.CategoryParcel,
		TokenId: tokenId, From: aliceAddr, To: bobAddr, Timestamp: 1200,
	})
	if p.Orders["0x01"].Status != types.OrderCancelled {
		t.Error("open order must be cancelled by a transfer")
	}
	if nft.ActiveOrderId != nil || nft.SearchOrderStatus != nil || nft.SearchOrderPrice != nil ||
		nft.SearchOrderCreatedAt != nil || nft.SearchOrderExpiresAt != nil {
		t.Error("order fields must be cleared together")
	}
}

func TestTransferWithoutPriorRecord(t *testing.T) {
	p := newTestParsed(1000)
	// non-mint transfer of a never-seen token, logged and patched up
	nft, account := HandleTransfer(p, &model.TransferEvent{
		Contract: conf.Chain.EstateProxy, Category: types.CategoryEstate,
		TokenId: "77", From: aliceAddr, To: bobAddr, Timestamp: 1000,
	})
	if nft == nil || account == nil {
		t.Fatal("anomalous transfer dropped")
	}
	if nft.Owner != bobAddr || nft.CreatedAt != 0 {
		t.Error("patched NFT", nft.Owner, nft.CreatedAt)
	}
	if p.Counts[model.CountId] != nil && p.Counts[model.CountId].EstateTotal != 0 {
		t.Error("anomaly must not count as mint")
	}
}

func TestIllegalTokenId(t *testing.T) {
	p := newTestParsed(1000)
	nft, account := HandleTransfer(p, mintEvent(types.CategoryParcel, conf.Chain.LANDProxy, "", aliceAddr, 1000))
	if nft != nil || account != nil {
		t.Error("empty token id must be dropped")
	}
	if len(p.NFTs) != 0 || len(p.Accounts) != 0 {
		t.Error("dropped event must stage nothing")
	}
}

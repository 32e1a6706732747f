package service

import (
	"fmt"
	"strings"

	"marketscan/common/model"
	"marketscan/common/types"
	"marketscan/log"
)

// specialize builds or updates the category sub-entity of an NFT. Each branch
// is independent, a transfer in one category never touches the entities of
// another.
func specialize(p *model.Parsed, nft *model.NFT, mint bool) {
	switch nft.Category {
	case types.CategoryParcel:
		specializeParcel(p, nft, mint)
	case types.CategoryEstate:
		specializeEstate(p, nft, mint)
	case types.CategoryWearable:
		specializeWearable(p, nft, mint)
	case types.CategoryENS:
		specializeENS(p, nft, mint)
	}
}

// mirrorOwner re-synchronizes the sub-entity owner after an ownership change
// outside the transfer path (sale settlement).
func mirrorOwner(p *model.Parsed, nft *model.NFT) {
	switch nft.Category {
	case types.CategoryParcel:
		if parcel := p.Parcels[nft.ID]; parcel != nil {
			parcel.Owner = nft.Owner
		}
	case types.CategoryEstate:
		if estate := p.Estates[nft.ID]; estate != nil {
			estate.Owner = nft.Owner
		}
	case types.CategoryWearable:
		if wearable := p.Wearables[nft.ID]; wearable != nil {
			wearable.Owner = nft.Owner
		}
	case types.CategoryENS:
		if ens := p.ENSs[nft.ID]; ens != nil {
			ens.Owner = nft.Owner
		}
	}
}

func specializeParcel(p *model.Parsed, nft *model.NFT, mint bool) {
	if !mint {
		if parcel := p.Parcels[nft.ID]; parcel != nil {
			parcel.Owner = nft.Owner
		} else {
			log.Warnf("parcel %v not found", nft.ID)
		}
		return
	}
	coord, ok := p.Coordinates[nft.TokenId]
	if !ok {
		// without coordinates there is nothing to derive, the NFT keeps
		// its generic defaults
		log.Warnf("no coordinates for parcel token %v", nft.TokenId)
		return
	}
	parcel := &model.Parcel{
		ID:      nft.ID,
		TokenId: nft.TokenId,
		X:       coord.X,
		Y:       coord.Y,
		Owner:   nft.Owner,
	}
	p.Parcels[parcel.ID] = parcel

	name := fmt.Sprintf("%v,%v", coord.X, coord.Y)
	image := parcelImage(coord.X, coord.Y)
	inBounds := parcelInBounds(coord.X, coord.Y)
	nft.Name = &name
	nft.Image = &image
	nft.SearchIsLand = true
	nft.SearchParcelX = &parcel.X
	nft.SearchParcelY = &parcel.Y
	nft.SearchParcelIsInBounds = &inBounds
	nft.SearchDistanceToPlaza = distanceToPlaza(coord.X, coord.Y)
	nft.SearchAdjacentToRoad = adjacentToRoad(coord.X, coord.Y)
	nft.SearchText = name
}

func specializeEstate(p *model.Parsed, nft *model.NFT, mint bool) {
	if !mint {
		if estate := p.Estates[nft.ID]; estate != nil {
			estate.Owner = nft.Owner
		} else {
			log.Warnf("estate %v not found", nft.ID)
		}
		return
	}
	estate := &model.Estate{
		ID:      nft.ID,
		TokenId: nft.TokenId,
		Owner:   nft.Owner,
		Size:    0,
	}
	p.Estates[estate.ID] = estate

	// estates are land but have no single position
	nft.SearchIsLand = true
	nft.SearchDistanceToPlaza = -1
	nft.SearchAdjacentToRoad = false
}

func specializeWearable(p *model.Parsed, nft *model.NFT, mint bool) {
	if !mint {
		if wearable := p.Wearables[nft.ID]; wearable != nil {
			wearable.Owner = nft.Owner
		} else {
			log.Warnf("wearable %v not found", nft.ID)
		}
		return
	}
	wearable := buildWearable(nft)
	if wearable == nil {
		// unknown representation, nothing to attach
		return
	}
	p.Wearables[wearable.ID] = wearable

	image := wearableImage(wearable)
	nft.Name = &wearable.Name
	nft.Image = &image
	nft.SearchIsWearableHead = isWearableHead(wearable.Category)
	nft.SearchIsWearableAccessory = isWearableAccessory(wearable.Category)
	nft.SearchWearableCategory = &wearable.Category
	nft.SearchWearableRarity = &wearable.Rarity
	nft.SearchWearableBodyShapes = wearable.BodyShapes
	nft.SearchText = strings.ToLower(wearable.Name)
}

func specializeENS(p *model.Parsed, nft *model.NFT, mint bool) {
	if !mint {
		if ens := p.ENSs[nft.ID]; ens != nil {
			ens.Owner = nft.Owner
		} else {
			log.Warnf("ens %v not found", nft.ID)
		}
		return
	}
	ens := &model.ENS{
		ID:      nft.ID,
		TokenId: nft.TokenId,
		Owner:   nft.Owner,
	}
	p.ENSs[ens.ID] = ens
}

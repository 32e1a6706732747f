package service

import (
	"marketscan/common/model"
	"marketscan/common/types"
	"marketscan/common/utils"
	"marketscan/conf"
	"marketscan/log"
)

// HandleTransfer reconciles one ERC721 Transfer event against the staged
// entity maps: it creates or updates the NFT, lazily creates the destination
// account, invalidates a stale open order on a non-mint transfer, dispatches
// the category sub-entity build and feeds the aggregate counters on mint.
// Returns nil when the event's token id cannot be parsed.
func HandleTransfer(p *model.Parsed, ev *model.TransferEvent) (*model.NFT, *model.Account) {
	tokenId, ok := utils.ParseTokenId(string(ev.TokenId))
	if !ok {
		return nil, nil
	}
	id := utils.NFTId(ev.Category, ev.Contract, tokenId)
	nft, existed := p.NFTs[id]
	if !existed {
		nft = &model.NFT{ID: id}
		p.NFTs[id] = nft
	}
	account := loadOrCreateAccount(p, ev.To)

	nft.TokenId = tokenId
	nft.Owner = account.Address
	nft.ContractAddress = ev.Contract
	nft.Category = ev.Category
	nft.UpdatedAt = ev.Timestamp
	nft.TransferredAt = ev.Timestamp
	// sales and volume describe the token since its last transfer, the
	// cumulative figures live on Count
	nft.SoldAt = nil
	nft.Sales = 0
	nft.Volume = "0"

	setTokenURI(p, nft)

	if ev.From == utils.ZeroAddress {
		// mint: uniform search defaults so range and existence queries
		// behave the same across categories
		nft.CreatedAt = ev.Timestamp
		nft.SearchText = ""
		nft.SearchIsLand = false
		nft.SearchEstateSize = 1
		nft.SearchDistanceToPlaza = -1
		inBounds := true
		nft.SearchParcelIsInBounds = &inBounds
		CountMint(p, nft)
	} else {
		if !existed {
			log.Warnf("transfer of NFT %v with no prior record", id)
		} else if nft.ActiveOrderId != nil {
			if order := p.Orders[*nft.ActiveOrderId]; order != nil {
				CancelActiveOrder(order, ev.Timestamp)
			} else {
				log.Warnf("active order %v of NFT %v not found", *nft.ActiveOrderId, id)
			}
			ClearNFTOrderProperties(nft)
		}
	}

	specialize(p, nft, ev.From == utils.ZeroAddress)

	// idempotent lazy-create, the specializer must not have removed it
	account = loadOrCreateAccount(p, ev.To)
	return nft, account
}

// setTokenURI applies the per-contract tokenURI rule: the registry contracts
// have no URI method, everything else is filled once from the lookup cache.
func setTokenURI(p *model.Parsed, nft *model.NFT) {
	switch nft.ContractAddress {
	case conf.Chain.LANDProxy, conf.Chain.EstateProxy:
		nft.TokenURI = nil
	case conf.Chain.DCLRegistrar:
		empty := ""
		nft.TokenURI = &empty
	default:
		if nft.TokenURI == nil {
			if uri, ok := p.TokenURIs[model.TokenURIKey(nft.ContractAddress, nft.TokenId)]; ok {
				nft.TokenURI = &uri
			}
		}
	}
}

// loadOrCreateAccount returns the staged account, creating it on first
// reference. Accounts are never deleted.
func loadOrCreateAccount(p *model.Parsed, addr types.Address) *model.Account {
	addr = utils.LowerAddress(addr)
	account := p.Accounts[addr]
	if account == nil {
		account = &model.Account{Address: addr, Spent: "0", Earned: "0"}
		p.Accounts[addr] = account
	}
	return account
}

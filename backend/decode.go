package backend

import (
	"context"

	"marketscan/common/model"
	"marketscan/common/types"
	"marketscan/common/utils"
	"marketscan/conf"
	"marketscan/log"
	"marketscan/node"
)

// decode fetches one block and turns its logs into a Parsed ready for
// reconciliation. NotFound is returned when the block has not been mined yet.
func decode(client *node.Client, ctx context.Context, number types.Uint64) (*model.Parsed, error) {
	block, err := client.BlockHeader(ctx, number)
	if err != nil {
		return nil, err
	}
	addresses := append(conf.Chain.TokenContracts(), conf.Chain.Marketplace)
	logs, err := client.FilterLogs(ctx, number, addresses)
	if err != nil {
		return nil, err
	}
	p := model.NewParsed(block)
	for _, eventLog := range logs {
		if eventLog.Removed {
			continue
		}
		if eventLog.Address == conf.Chain.Marketplace {
			if ev := utils.UnpackOrderLog(eventLog); ev != nil {
				ev.Category = conf.Chain.CategoryOf(ev.Contract)
				ev.Index = eventLog.Index
				ev.Timestamp = block.Timestamp
				p.OrderEvents = append(p.OrderEvents, ev)
			}
			continue
		}
		if ev := utils.UnpackTransferLog(eventLog); ev != nil {
			ev.Category = conf.Chain.CategoryOf(ev.Contract)
			ev.Index = eventLog.Index
			ev.Timestamp = block.Timestamp
			p.TransferEvents = append(p.TransferEvents, ev)
		}
	}
	if err = resolveLookups(client, ctx, p); err != nil {
		return nil, err
	}
	block.TotalTransfers = types.Uint64(len(p.TransferEvents))
	block.TotalOrders = types.Uint64(len(p.OrderEvents))
	return p, nil
}

// resolveLookups fills the external lookup maps the reconciler relies on:
// LAND coordinates decoded from the tokenId and wearable tokenURIs read from
// the collection contracts.
func resolveLookups(client *node.Client, ctx context.Context, p *model.Parsed) error {
	for _, ev := range p.TransferEvents {
		switch ev.Category {
		case types.CategoryParcel:
			if _, ok := p.Coordinates[ev.TokenId]; ok {
				continue
			}
			x, y, err := utils.DecodeLANDTokenId(ev.TokenId)
			if err != nil {
				log.Warnf("block %v: undecodable LAND tokenId %v: %v", p.Block.Number, ev.TokenId, err)
				continue
			}
			p.Coordinates[ev.TokenId] = model.Coordinate{X: x, Y: y}
		case types.CategoryWearable:
			if ev.From != utils.ZeroAddress {
				continue
			}
			key := model.TokenURIKey(ev.Contract, ev.TokenId)
			if _, ok := p.TokenURIs[key]; ok {
				continue
			}
			uri, err := utils.TokenURI(client, ctx, ev.Contract, ev.TokenId)
			if err != nil {
				return err
			}
			p.TokenURIs[key] = uri
		}
	}
	return nil
}

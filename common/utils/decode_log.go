package utils

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"marketscan/common/model"
	"marketscan/common/types"
)

var (
	erc721TransferEventId = types.Hash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")

	marketplaceABI abi.ABI

	orderCreatedEventId    types.Hash
	orderSuccessfulEventId types.Hash
	orderCancelledEventId  types.Hash
)

const marketplaceABIJSON = `[
{"anonymous":false,"inputs":[{"indexed":false,"name":"id","type":"bytes32"},{"indexed":true,"name":"assetId","type":"uint256"},{"indexed":true,"name":"seller","type":"address"},{"indexed":false,"name":"nftAddress","type":"address"},{"indexed":false,"name":"priceInWei","type":"uint256"},{"indexed":false,"name":"expiresAt","type":"uint256"}],"name":"OrderCreated","type":"event"},
{"anonymous":false,"inputs":[{"indexed":false,"name":"id","type":"bytes32"},{"indexed":true,"name":"assetId","type":"uint256"},{"indexed":true,"name":"seller","type":"address"},{"indexed":false,"name":"nftAddress","type":"address"},{"indexed":false,"name":"totalPrice","type":"uint256"},{"indexed":true,"name":"buyer","type":"address"}],"name":"OrderSuccessful","type":"event"},
{"anonymous":false,"inputs":[{"indexed":false,"name":"id","type":"bytes32"},{"indexed":true,"name":"assetId","type":"uint256"},{"indexed":true,"name":"seller","type":"address"},{"indexed":false,"name":"nftAddress","type":"address"}],"name":"OrderCancelled","type":"event"}]`

func init() {
	marketplaceABI, _ = abi.JSON(strings.NewReader(marketplaceABIJSON))
	orderCreatedEventId = types.Hash(strings.ToLower(marketplaceABI.Events["OrderCreated"].ID.Hex()))
	orderSuccessfulEventId = types.Hash(strings.ToLower(marketplaceABI.Events["OrderSuccessful"].ID.Hex()))
	orderCancelledEventId = types.Hash(strings.ToLower(marketplaceABI.Events["OrderCancelled"].ID.Hex()))
}

// UnpackTransferLog parses an ERC721 Transfer event, nil when the log is
// something else. ERC20 Transfer shares the topic but carries only 3 topics.
func UnpackTransferLog(log *model.EventLog) *model.TransferEvent {
	if len(log.Topics) != 4 || log.Topics[0] != erc721TransferEventId {
		return nil
	}
	return &model.TransferEvent{
		Contract: LowerAddress(log.Address),
		From:     topicAddress(log.Topics[1]),
		To:       topicAddress(log.Topics[2]),
		TokenId:  HexToBigInt(string(log.Topics[3][2:])),
		TxHash:   log.TxHash,
	}
}

// UnpackOrderLog parses a marketplace order event, nil when the log is
// something else.
func UnpackOrderLog(log *model.EventLog) *model.OrderEvent {
	if len(log.Topics) < 3 {
		return nil
	}
	var kind model.OrderEventKind
	var name string
	switch log.Topics[0] {
	case orderCreatedEventId:
		kind, name = model.OrderEventCreated, "OrderCreated"
	case orderSuccessfulEventId:
		kind, name = model.OrderEventSuccessful, "OrderSuccessful"
	case orderCancelledEventId:
		kind, name = model.OrderEventCancelled, "OrderCancelled"
	default:
		return nil
	}
	data, err := hex.DecodeString(strings.TrimPrefix(log.Data, "0x"))
	if err != nil {
		return nil
	}
	vals, err := marketplaceABI.Unpack(name, data)
	if err != nil {
		return nil
	}
	ev := &model.OrderEvent{
		Kind:    kind,
		OrderId: types.Hash("0x" + hex.EncodeToString(bytes32(vals[0]))),
		TokenId: HexToBigInt(string(log.Topics[1][2:])),
		Seller:  topicAddress(log.Topics[2]),
		TxHash:  log.TxHash,
	}
	ev.Contract = types.Address(strings.ToLower(vals[1].(common.Address).Hex()))
	switch kind {
	case model.OrderEventCreated:
		ev.Price = types.BigInt(vals[2].(*big.Int).Text(10))
		ev.ExpiresAt = types.BigInt(vals[3].(*big.Int).Text(10))
	case model.OrderEventSuccessful:
		ev.Price = types.BigInt(vals[2].(*big.Int).Text(10))
		if len(log.Topics) > 3 {
			ev.Buyer = topicAddress(log.Topics[3])
		}
	}
	return ev
}

func topicAddress(topic types.Hash) types.Address {
	return LowerAddress(types.Address("0x" + string(topic[26:])))
}

func bytes32(v interface{}) []byte {
	b := v.([32]byte)
	return b[:]
}
